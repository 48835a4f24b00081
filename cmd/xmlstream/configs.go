package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render events with color'"`
	JSON  bool `cli:"name=json desc='render events as JSON lines'"`

	// Hierarchy is the declared parent -> children mapping, loaded from
	// the -hier YAML file. Empty means nothing is recognized.
	Hierarchy map[string][]string
	HierFile  string

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// outOpt redirects command output to a file; "-" keeps stdout.
func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.Create(a)
	if err != nil {
		return nil, fmt.Errorf("could not create output %q: %w", a, err)
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) closeOutputs() {
	if cfg.CloseOut != nil {
		cfg.CloseOut()
	}
}

func (cfg *MainConfig) hierOpt(cc *cli.Context, a string) (any, error) {
	d, err := os.ReadFile(a)
	if err != nil {
		return nil, fmt.Errorf("could not read hierarchy file %q: %w", a, err)
	}
	m := map[string][]string{}
	if err := yaml.Unmarshal(d, &m); err != nil {
		return nil, fmt.Errorf("could not parse hierarchy file %q: %w", a, err)
	}
	cfg.HierFile = a
	cfg.Hierarchy = m
	return nil, nil
}

// useColor decides whether to color event rendering: the -color flag
// forces it, otherwise color is used when writing to a terminal.
func (cfg *MainConfig) useColor(cc *cli.Context) bool {
	if cfg.Color {
		return true
	}
	f, ok := cc.Out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type ClassifyConfig struct {
	*MainConfig

	SuppressWS bool `cli:"name=sw desc='suppress whitespace-only content events'"`

	ChunkSize int
	Filter    string

	Classify *cli.Command
}

func (cfg *ClassifyConfig) chunkOpt(cc *cli.Context, a string) (any, error) {
	n, err := strconv.Atoi(a)
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("%w: -chunk wants a positive integer, got %q", cli.ErrUsage, a)
	}
	cfg.ChunkSize = n
	return n, nil
}

func (cfg *ClassifyConfig) filterOpt(cc *cli.Context, a string) (any, error) {
	cfg.Filter = a
	return a, nil
}

type FlatConfig struct {
	*MainConfig

	Flat *cli.Command
}

type OuterConfig struct {
	*MainConfig

	Outer *cli.Command
}

type HierConfig struct {
	*MainConfig

	Hier *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type ServeConfig struct {
	*MainConfig

	Serve *cli.Command
}
