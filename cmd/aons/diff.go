package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/aons-format/go-aons/encode"
	"github.com/aons-format/go-aons/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two arguments", cli.ErrUsage)
	}
	a, err := loadArg(cc, args[0])
	if err != nil {
		return err
	}
	b, err := loadArg(cc, args[1])
	if err != nil {
		return err
	}
	if ir.Compare(a, b) == 0 {
		return nil
	}
	// diff the canonical renderings, uncolored so the texts line up
	sa := encode.MustString(a)
	sb := encode.MustString(b)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(sa, sb, true)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	if useColor(cfg.MainConfig, cc) {
		fmt.Fprint(cc.Out, diffCfg.DiffPrettyText(diffs))
	} else {
		fmt.Fprint(cc.Out, diffPlainText(diffs))
	}
	return cli.ExitCodeErr(1)
}

func useColor(cfg *MainConfig, cc *cli.Context) bool {
	if cfg.Color {
		return true
	}
	f, ok := cc.Out.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// diffPlainText marks insertions with {+ +} and deletions with [- -].
func diffPlainText(diffs []diffpatch.Diff) string {
	b := &strings.Builder{}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			b.WriteString("{+")
			b.WriteString(d.Text)
			b.WriteString("+}")
		case diffpatch.DiffDelete:
			b.WriteString("[-")
			b.WriteString(d.Text)
			b.WriteString("-]")
		case diffpatch.DiffEqual:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
