package classify

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cxy13h/xml-parser/event"
)

// chunk invariance: the merged event sequence must not depend on how the
// input is fragmented.
func TestChunkInvariance(t *testing.T) {
	hierarchy := map[string][]string{
		"Action":      {"ToolName", "Description"},
		"Description": {"Feature"},
	}
	inputs := []string{
		"<Action><ToolName>image_gen</ToolName><Description><Feature>text to image</Feature></Description></Action>",
		"prefix<Action>body<Bad>x</Bad>tail</Action>suffix",
		"<Action><Desc",
		"no tags at all, just < and > loose",
		"<Action><ToolName>a</ToolName></Action><Action><ToolName>b</ToolName></Action>",
	}
	for _, input := range inputs {
		want := runAll(t, hierarchy, []string{input})

		// every two-way split
		for i := 1; i < len(input); i++ {
			got := runAll(t, hierarchy, []string{input[:i], input[i:]})
			if d := cmp.Diff(want, got); d != "" {
				t.Errorf("input %q split at %d (-whole +split):\n%s", input, i, d)
			}
		}

		// byte at a time
		chunks := make([]string, len(input))
		for i := range input {
			chunks[i] = input[i : i+1]
		}
		got := runAll(t, hierarchy, chunks)
		if d := cmp.Diff(want, got); d != "" {
			t.Errorf("input %q byte-wise (-whole +bytes):\n%s", input, d)
		}
	}
}

// content at every level concatenates back to the input when no tag is
// ever recognized between the delimiters actually present.
func TestVerbatimContentAcrossSplits(t *testing.T) {
	input := "a<b>c</b>d<e incomplete"
	for i := 1; i < len(input); i++ {
		c := New(nil)
		var evs []event.Event
		evs = append(evs, c.ProcessChunk(input[:i])...)
		evs = append(evs, c.ProcessChunk(input[i:])...)
		evs = append(evs, c.Finalize()...)
		concat := ""
		for _, ev := range evs {
			concat += ev.Payload
		}
		if concat != input {
			t.Errorf("split at %d: %q != %q", i, concat, input)
		}
	}
}
