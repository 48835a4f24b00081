package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/cxy13h/xml-parser/event"
)

// wireEvent is the JSON shape of one event, shared by -json rendering and
// the serve command.
type wireEvent struct {
	Kind    string `json:"kind"`
	Payload string `json:"payload"`
	Level   int    `json:"level"`
}

func toWire(ev event.Event) wireEvent {
	return wireEvent{Kind: ev.Type.String(), Payload: ev.Payload, Level: ev.Level}
}

func toWireAll(evs []event.Event) []wireEvent {
	res := make([]wireEvent, len(evs))
	for i, ev := range evs {
		res[i] = toWire(ev)
	}
	return res
}

type renderer struct {
	w      io.Writer
	json   bool
	color  bool
	filter *vm.Program
}

func newRenderer(cfg *MainConfig, cc *cli.Context, filter string) (*renderer, error) {
	r := &renderer{w: cc.Out, json: cfg.JSON, color: cfg.useColor(cc)}
	if filter != "" {
		prg, err := expr.Compile(filter,
			expr.Env(filterEnv(event.Event{})),
			expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("%w: bad -filter expression: %w", cli.ErrUsage, err)
		}
		r.filter = prg
	}
	return r, nil
}

func filterEnv(ev event.Event) map[string]any {
	return map[string]any{
		"kind":    ev.Type.String(),
		"payload": ev.Payload,
		"level":   ev.Level,
	}
}

func (r *renderer) renderAll(evs []event.Event) error {
	for _, ev := range evs {
		if err := r.render(ev); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) render(ev event.Event) error {
	if r.filter != nil {
		out, err := expr.Run(r.filter, filterEnv(ev))
		if err != nil {
			return fmt.Errorf("filter failed on %s: %w", ev, err)
		}
		if keep, _ := out.(bool); !keep {
			return nil
		}
	}
	if r.json {
		d, err := json.Marshal(toWire(ev))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(r.w, "%s\n", d)
		return err
	}
	indent := strings.Repeat("  ", ev.Level)
	var line string
	switch ev.Type {
	case event.Start:
		line = r.paint(color.GreenString, "<%s>", ev.Payload)
	case event.End:
		line = r.paint(color.RedString, "</%s>", ev.Payload)
	case event.Content:
		line = r.paint(color.CyanString, "%q", ev.Payload)
	}
	_, err := fmt.Fprintf(r.w, "%s%s\n", indent, line)
	return err
}

func (r *renderer) paint(f func(string, ...interface{}) string, format string, args ...any) string {
	if r.color {
		return f(format, args...)
	}
	return fmt.Sprintf(format, args...)
}
