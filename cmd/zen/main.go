/*
zen is a console utility expanding emmet-like templates to markup.
Usage is

	zen [--config <file>] [-v...] expand [--file <name>]... [--format <format>] [--strict] [template]...
	zen [--config <file>] config

expand prints the expansion of every template argument and every --file, or of stdin if neither
is given. Formats are html (default), min (minified html), json, yaml, and tree.

config prints effective options as TOML.

--config <file> defines a YAML (.yaml, .yml) or TOML (.toml) options file;
ZEN_CLASS_MODE, ZEN_STRICT, ZEN_MINIFY, and ZEN_LOG_LEVEL environment variables override it.

-v increases log verbosity (-v info, -vv debug, -vvv trace).
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if e := newRootCmd().Execute(); e != nil {
		fmt.Fprintln(os.Stderr, e.Error())
		os.Exit(3)
	}
}
