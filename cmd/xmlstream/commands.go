package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "hier",
			Description: "YAML file declaring the tag hierarchy (parent: [children])",
			Type:        cli.NamedFuncOpt(cfg.hierOpt, "(filepath)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "xmlstream").
		WithSynopsis("xmlstream [opts] command [opts]").
		WithDescription("xmlstream classifies streamed tag markup into structural events.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return xmlstreamMain(cfg, cc, args)
		}).
		WithSubs(
			ClassifyCommand(cfg),
			FlatCommand(cfg),
			OuterCommand(cfg),
			HierCommand(cfg),
			DiffCommand(cfg),
			ServeCommand(cfg))
}

func xmlstreamMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer cfg.closeOutputs()
	rest, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(rest) == 0 {
		return cli.ErrNoCommandProvided
	}
	return runSub(cfg.Main, cc, rest[0], rest[1:])
}

// runSub looks up and runs one subcommand, rendering its usage on usage
// errors before exiting with the subcommand's exit code.
func runSub(cmd *cli.Command, cc *cli.Context, name string, args []string) error {
	sub := cmd.FindSub(cc, name)
	if sub == nil {
		return fmt.Errorf("%w: %q", cli.ErrNoSuchCommand, name)
	}
	err := sub.Run(cc, args)
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func ClassifyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ClassifyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts,
		&cli.Opt{
			Name:        "chunk",
			Description: "read chunk size in bytes",
			Type:        cli.NamedFuncOpt(cfg.chunkOpt, "(bytes)"),
		},
		&cli.Opt{
			Name:        "filter",
			Description: "expr filter over {kind, payload, level}",
			Type:        cli.NamedFuncOpt(cfg.filterOpt, "(expr)"),
		})

	cmd := cli.NewCommand("classify").
		WithAliases("c", "cl").
		WithSynopsis("classify [-chunk n] [-filter expr] [-sw] [files]").
		WithDescription("classify input against the declared hierarchy").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return runClassify(cfg, cc, args)
		})
	cfg.Classify = cmd
	return cmd
}

func FlatCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FlatConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("flat").
		WithSynopsis("flat [files]").
		WithDescription("recognize every well-formed tag regardless of position").
		WithRun(func(cc *cli.Context, args []string) error {
			return runFlat(cfg, cc, args)
		})
	cfg.Flat = cmd
	return cmd
}

func OuterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &OuterConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("outer").
		WithSynopsis("outer [files]").
		WithDescription("recognize only outermost tags, passing bodies through verbatim").
		WithRun(func(cc *cli.Context, args []string) error {
			return runOuter(cfg, cc, args)
		})
	cfg.Outer = cmd
	return cmd
}

func HierCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &HierConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("hier").
		WithSynopsis("hier").
		WithDescription("print the declared tag hierarchy").
		WithRun(func(cc *cli.Context, args []string) error {
			return runHier(cfg, cc, args)
		})
	cfg.Hier = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithSynopsis("diff <file1> <file2>").
		WithDescription("diff the event listings of two classified inputs").
		WithRun(func(cc *cli.Context, args []string) error {
			return runDiff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func ServeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ServeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("serve").
		WithSynopsis("serve").
		WithDescription("serve a classification session over JSON-RPC on stdio").
		WithRun(func(cc *cli.Context, args []string) error {
			return runServe(cfg, cc, args)
		})
	cfg.Serve = cmd
	return cmd
}
