package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/beevik/etree"
	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	manifest "github.com/signadot/manifest-merge"
	"github.com/signadot/manifest-merge/encode"
	"github.com/signadot/manifest-merge/eval"
	"github.com/signadot/manifest-merge/libdiff"
)

func amerge(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		cfg.Main.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if err := checkArgs(cfg, args); err != nil {
		cfg.Main.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Color {
		color.NoColor = false
	}
	return mergeFiles(cfg, cc.In, cc.Out, args[0], args[1])
}

func checkArgs(cfg *MainConfig, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: expected a base and a patch manifest, got %d arguments", cli.ErrUsage, len(args))
	}
	if args[0] == "-" && args[1] == "-" {
		return fmt.Errorf("%w: only one manifest may be read from standard input", cli.ErrUsage)
	}
	if args[0] == "-" && !cfg.N && cfg.Out == "" {
		return fmt.Errorf("%w: base manifest from standard input requires -n or -o", cli.ErrUsage)
	}
	return nil
}

func mergeFiles(cfg *MainConfig, in io.Reader, w io.Writer, basePath, patchPath string) error {
	base, err := readManifest(in, basePath, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	patch, err := readManifest(in, patchPath, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	var opts []manifest.MergeOpt
	if cfg.V {
		opts = append(opts, manifest.MergeTrace(logStep))
	}
	merged, res, err := manifest.Merge(base, patch, opts...)
	if err != nil {
		return fmt.Errorf("could not merge %s into %s: %w", patchPath, basePath, err)
	}
	if cfg.V {
		theLog.Info("done",
			"merged", res.Count(manifest.Merged),
			"appended", res.Count(manifest.Appended),
			"skipped", res.Count(manifest.Skipped))
	}
	if len(cfg.Env) != 0 {
		n, err := eval.ExpandDoc(merged, cfg.Env)
		if err != nil {
			return fmt.Errorf("could not expand placeholders: %w", err)
		}
		if cfg.V {
			theLog.Info("expanded", "attributes", n)
		}
	}

	dst := basePath
	if cfg.Out != "" {
		dst = cfg.Out
	}
	if cfg.D {
		if err := writeDiff(cfg, w, base, merged, basePath, dst); err != nil {
			return err
		}
	}
	if cfg.N {
		return encode.Encode(merged, w, cfg.encOpts(w)...)
	}
	if err := encode.WriteFile(dst, merged, cfg.encOpts(nil)...); err != nil {
		return fmt.Errorf("could not write %s: %w", dst, err)
	}
	fmt.Fprintf(w, "Merged %s into %s\n", patchPath, dst)
	return nil
}

func writeDiff(cfg *MainConfig, w io.Writer, from, to *etree.Document, fromName, toName string) error {
	a, err := encodeString(cfg, from)
	if err != nil {
		return err
	}
	b, err := encodeString(cfg, to)
	if err != nil {
		return err
	}
	return libdiff.Write(w, libdiff.Lines(a, b),
		libdiff.WriteNames(fromName, toName),
		libdiff.WriteColor(cfg.colorize(w)))
}

func encodeString(cfg *MainConfig, doc *etree.Document) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, buf, cfg.encOpts(nil)...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func logStep(s manifest.Step) {
	args := []any{"tag", s.Tag.Local}
	if s.Name != "" {
		args = append(args, "name", s.Name)
	}
	if s.Path != "" {
		args = append(args, "path", s.Path)
	}
	theLog.Info(s.Action.String(), args...)
	for _, c := range s.Changes {
		if c.Added {
			theLog.Info("  set", "attr", c.Key.String(), "value", c.New)
			continue
		}
		theLog.Info("  set", "attr", c.Key.String(), "value", libdiff.Value(c.Old, c.New))
	}
}
