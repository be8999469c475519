package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
	"github.com/signadot/manifest-merge/eval"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Indent: -1, Env: eval.Env{}}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "write the merged manifest here instead of over the base manifest",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "e",
			Description: "set a placeholder value, expanding ${...} in attribute values",
			Type:        cli.NamedFuncOpt(cli.FuncOpt(envOptTypeFunc(cfg.Env)), "(key=val)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "amerge").
		WithSynopsis("amerge [opts] <base_manifest> <patch_manifest>").
		WithDescription("amerge merges a patch Android manifest into a base Android manifest.\n" +
			"Patch elements matching a base element by tag and android:name have their\n" +
			"attributes merged, others are appended unless the base already has them.\n" +
			"The patch manifest may be - to read it from standard input.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return amerge(cfg, cc, args)
		})
}

func envOptTypeFunc(env eval.Env) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		if err := env.Set(a); err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		return 0, nil
	}
}
