package main

import (
	"fmt"
	"io"
	"os"

	"github.com/beevik/etree"
	"github.com/signadot/manifest-merge/parse"
)

func readManifest(in io.Reader, path string, opts ...parse.ParseOption) (*etree.Document, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = in
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parse.Parse(d, append(opts, parse.ParseFilename(path))...)
}
