package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	topic := ""
	if len(op.args) > 0 {
		topic = op.args[0]
	}
	help(topic)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	switch strings.ToLower(topic) {
	case "select", "variant", "variants":
		pterm.Info.Println("select <family>[, <variant>]")
		pterm.Println(`
	Selects the face of a family which matches a variant best, and loads it.
	Family names are case-insensitive; serif, sans-serif and monospace are
	generic families, configured with "generic" in the config file.

	A variant consists of words for style, weight and stretch, in any order:
	+---------+----------------------------------------------------+
	| style   | normal italic oblique                              |
	| weight  | thin extralight light regular medium semibold      |
	|         | bold extrabold black, or a number 100…900          |
	| stretch | ultra-condensed … condensed … expanded …           |
	|         | ultra-expanded                                     |
	+---------+----------------------------------------------------+
	Example:  select Go, bold italic
	`)
	case "resolve", "file", "line", "world":
		pterm.Info.Println("resolve <path> / file <path> / line <source-id> <line>")
		pterm.Println(`
	resolve reads a file as UTF-8 text and interns it as a source.
	file reads a file as raw bytes.
	line prints one line of an interned source.
	Relative paths are taken relative to the root directory (--root).
	Every outcome, including errors, is remembered per path.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	families               list font families
	faces [family]         list faces
	select <family>[, v]   select a face (see 'help select')
	metrics                vertical and line metrics of the selected face
	advance <gid> …        advance widths of glyphs of the selected face
	resolve <path>         intern a text source
	file <path>            read raw bytes
	line <id> <n>          print a line of a source
	inspect <path> [i]     parse a font file outside of the store
	help [topic]           this help
	quit                   leave
	Separate several commands with ';'.
	`)
	}
}
