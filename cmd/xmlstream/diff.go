package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/cxy13h/xml-parser"
	"github.com/cxy13h/xml-parser/event"
)

func runDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %d", cli.ErrUsage, len(args))
	}
	a, err := listingOf(cfg, args[0])
	if err != nil {
		return err
	}
	b, err := listingOf(cfg, args[1])
	if err != nil {
		return err
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(a, b, true)
	same := true
	for _, d := range diffs {
		if d.Type != diffpatch.DiffEqual {
			same = false
			break
		}
	}
	if cfg.useColor(cc) {
		fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
	} else {
		printPlainDiff(cc.Out, diffs)
	}
	if !same {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// listingOf classifies one input completely and renders its merged event
// sequence one event per line.
func listingOf(cfg *DiffConfig, file string) (string, error) {
	var (
		d   []byte
		err error
	)
	if file == "-" {
		d, err = io.ReadAll(os.Stdin)
	} else {
		d, err = os.ReadFile(file)
	}
	if err != nil {
		return "", fmt.Errorf("could not read %q: %w", file, err)
	}
	evs := event.Merge(xmlparser.ClassifyString(string(d), cfg.Hierarchy))
	sb := &strings.Builder{}
	for _, ev := range evs {
		fmt.Fprintln(sb, ev.String())
	}
	return sb.String(), nil
}

func printPlainDiff(w io.Writer, diffs []diffpatch.Diff) {
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			fmt.Fprintf(w, "+%s", d.Text)
		case diffpatch.DiffDelete:
			fmt.Fprintf(w, "-%s", d.Text)
		default:
			fmt.Fprint(w, d.Text)
		}
	}
}
