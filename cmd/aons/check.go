package main

import (
	"fmt"
	"os"

	"github.com/aons-format/go-aons/encode"
	"github.com/aons-format/go-aons/ir"
	"github.com/aons-format/go-aons/schema"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.SchemaFile == "" {
		return fmt.Errorf("%w: check requires -s <schema-file>", cli.ErrUsage)
	}
	schemaNode, err := loadArg(cc, cfg.SchemaFile)
	if err != nil {
		return err
	}
	spec, err := schema.Compile(schemaNode)
	if err != nil {
		return fmt.Errorf("error compiling schema %s: %w", cfg.SchemaFile, err)
	}
	bad := 0
	err = eachArg(cc, args, func(arg string, node *ir.Node) error {
		res := schema.Validate(node, spec, schema.StrictKeys(cfg.Strict))
		if !res.Valid() {
			bad++
			for i := range res.Issues {
				fmt.Fprintf(os.Stderr, "%s: %s\n", arg, res.Issues[i].String())
			}
			return nil
		}
		if cfg.Defaults {
			filled := schema.ApplyDefaults(node, spec)
			return encode.Encode(filled, cc.Out, cfg.encOpts(cc.Out)...)
		}
		fmt.Fprintf(cc.Out, "%s: ok\n", arg)
		return nil
	})
	if err != nil {
		return err
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
