package main

import (
	"fmt"

	"github.com/aons-format/go-aons/encode"
	"github.com/aons-format/go-aons/ir"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachArg(cc, args, func(arg string, node *ir.Node) error {
		if err := encode.Encode(node, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding %s: %w", arg, err)
		}
		return nil
	})
}
