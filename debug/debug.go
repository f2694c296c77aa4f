// Package debug centralizes env-var gated debug switches.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse    bool
	Schema   bool
	Validate bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("AONS_DEBUG_PARSE")
	d.Schema = boolEnv("AONS_DEBUG_SCHEMA")
	d.Validate = boolEnv("AONS_DEBUG_VALIDATE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Schema() bool {
	return d.Schema
}
func Validate() bool {
	return d.Validate
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
