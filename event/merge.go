package event

// Merge collapses runs of adjacent Content events at the same level into a
// single Content event, preserving order otherwise. Chunked input splits
// content arbitrarily; merging gives a canonical sequence independent of
// the split points.
func Merge(evs []Event) []Event {
	if len(evs) == 0 {
		return nil
	}
	res := make([]Event, 0, len(evs))
	for _, ev := range evs {
		n := len(res)
		if n > 0 && ev.Type == Content && res[n-1].Type == Content && res[n-1].Level == ev.Level {
			res[n-1].Payload += ev.Payload
			continue
		}
		res = append(res, ev)
	}
	return res
}
