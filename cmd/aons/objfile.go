package main

import (
	"fmt"
	"io"
	"os"

	"github.com/aons-format/go-aons/ir"
	"github.com/aons-format/go-aons/parse"

	"github.com/scott-cotton/cli"
)

// loadArg parses the aons document named by arg, with "-" meaning the
// command's input stream.
func loadArg(cc *cli.Context, arg string) (*ir.Node, error) {
	var r io.Reader
	if arg == "-" {
		r = cc.In
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	node, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return node, nil
}

// eachArg runs f once per named file, or once on "-" when args is
// empty.
func eachArg(cc *cli.Context, args []string, f func(arg string, node *ir.Node) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		node, err := loadArg(cc, arg)
		if err != nil {
			return err
		}
		if err := f(arg, node); err != nil {
			return err
		}
	}
	return nil
}
