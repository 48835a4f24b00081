package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/cxy13h/xml-parser/classify"
	"github.com/cxy13h/xml-parser/event"
	"github.com/cxy13h/xml-parser/flat"
	"github.com/cxy13h/xml-parser/hier"
	"github.com/cxy13h/xml-parser/outer"
	"github.com/cxy13h/xml-parser/stream"
)

func runClassify(cfg *ClassifyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Classify.Parse(cc, args)
	if err != nil {
		return err
	}
	rnd, err := newRenderer(cfg.MainConfig, cc, cfg.Filter)
	if err != nil {
		return err
	}
	var copts []classify.Option
	if cfg.SuppressWS {
		copts = append(copts, classify.SuppressWhitespace())
	}
	sopts := []stream.Option{stream.WithClassifyOptions(copts...)}
	if cfg.ChunkSize > 0 {
		sopts = append(sopts, stream.WithChunkSize(cfg.ChunkSize))
	}
	if len(args) == 0 {
		return classifyReader(cfg, rnd, cc.In, sopts)
	}
	for _, file := range args {
		if err := withFile(file, func(r io.Reader) error {
			return classifyReader(cfg, rnd, r, sopts)
		}); err != nil {
			return err
		}
	}
	return nil
}

func classifyReader(cfg *ClassifyConfig, rnd *renderer, r io.Reader, sopts []stream.Option) error {
	src := stream.NewSource(r, cfg.Hierarchy, sopts...)
	for {
		evs, err := src.Read()
		if rerr := rnd.renderAll(evs); rerr != nil {
			return rerr
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("error reading: %w", err)
		}
	}
}

// recognizer is the shared session surface of the degenerate recognizers.
type recognizer interface {
	ProcessChunk(chunk string) []event.Event
	Finalize() []event.Event
}

func runFlat(cfg *FlatConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Flat.Parse(cc, args)
	if err != nil {
		return err
	}
	rnd, err := newRenderer(cfg.MainConfig, cc, "")
	if err != nil {
		return err
	}
	return recognizeInputs(rnd, flat.New(), cc, args)
}

func runOuter(cfg *OuterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Outer.Parse(cc, args)
	if err != nil {
		return err
	}
	rnd, err := newRenderer(cfg.MainConfig, cc, "")
	if err != nil {
		return err
	}
	return recognizeInputs(rnd, outer.New(), cc, args)
}

func recognizeInputs(rnd *renderer, rec recognizer, cc *cli.Context, args []string) error {
	if len(args) == 0 {
		return recognizeReader(rnd, rec, cc.In)
	}
	for _, file := range args {
		if err := withFile(file, func(r io.Reader) error {
			return recognizeReader(rnd, rec, r)
		}); err != nil {
			return err
		}
	}
	return nil
}

func recognizeReader(rnd *renderer, rec recognizer, r io.Reader) error {
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if rerr := rnd.renderAll(rec.ProcessChunk(string(buf[:n]))); rerr != nil {
				return rerr
			}
		}
		if err == io.EOF {
			return rnd.renderAll(rec.Finalize())
		}
		if err != nil {
			return fmt.Errorf("error reading: %w", err)
		}
	}
}

func runHier(cfg *HierConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Hier.Parse(cc, args); err != nil {
		return err
	}
	_, err := fmt.Fprint(cc.Out, hier.Build(cfg.Hierarchy).Describe())
	return err
}

// withFile opens file (or stdin for "-") and passes it to fn.
func withFile(file string, fn func(io.Reader) error) error {
	if file == "-" {
		return fn(os.Stdin)
	}
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", file, err)
	}
	defer f.Close()
	if err := fn(f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}
