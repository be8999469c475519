package main

import (
	"io"
	"os"

	"github.com/signadot/manifest-merge/encode"
	"github.com/signadot/manifest-merge/eval"
	"github.com/signadot/manifest-merge/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	N          bool `cli:"name=n aliases=dry-run desc='print the merged manifest instead of writing it'"`
	D          bool `cli:"name=d aliases=diff desc='print a diff of the base manifest against the merged one'"`
	V          bool `cli:"name=v desc='log each merge step'"`
	Color      bool `cli:"name=color desc='colorize output'"`
	Indent     int  `cli:"name=indent desc='indent output with n spaces, -1 keeps the input layout'"`
	Permissive bool `cli:"name=permissive desc='tolerate malformed input where possible'"`

	Out string
	Env eval.Env

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(_ *cli.Context, a string) (any, error) {
	cfg.Out = a
	return nil, nil
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParsePermissive(cfg.Permissive),
	}
}

// encOpts gives the encoding options for output to w. w is nil for file
// output, which is never coloured.
func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeIndent(cfg.Indent),
	}
	if w != nil && cfg.colorize(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	colorsSet := false
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			colorsSet = opt.Value != nil
			break
		}
	}
	if colorsSet {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
