// jot - JSON tree formatter
//
// Usage:
//
//	jot fmt [--indent WIDTH] [file]  Pretty-print JSON
//	jot compact [file]               Reformat JSON to its compact form
//	jot check [file]                 Validate JSON and report the first error
//
// If no file is given, reads from stdin.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/parchment-io/jot/jot"
)

type fmtCmd struct {
	Indent int    `arg:"-i,--indent" default:"2" help:"spaces per nesting level"`
	File   string `arg:"positional" help:"input file (defaults to stdin)"`
}

type compactCmd struct {
	File string `arg:"positional" help:"input file (defaults to stdin)"`
}

type checkCmd struct {
	File string `arg:"positional" help:"input file (defaults to stdin)"`
}

var args struct {
	Fmt     *fmtCmd     `arg:"subcommand:fmt" help:"pretty-print JSON"`
	Compact *compactCmd `arg:"subcommand:compact" help:"reformat JSON to its compact form"`
	Check   *checkCmd   `arg:"subcommand:check" help:"validate JSON and report the first error"`
}

func main() {
	p := arg.MustParse(&args)
	switch {
	case args.Fmt != nil:
		reformat(args.Fmt.File, args.Fmt.Indent)
	case args.Compact != nil:
		reformat(args.Compact.File, 0)
	case args.Check != nil:
		check(args.Check.File)
	default:
		p.WriteHelp(os.Stderr)
		os.Exit(1)
	}
}

// readInput returns the contents of path, or stdin for "" / "-".
func readInput(path string) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", errors.Wrap(err, "read stdin")
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "read input")
	}
	return string(data), nil
}

func reformat(path string, indent int) {
	text, err := readInput(path)
	if err != nil {
		fatal(err)
	}
	v, err := jot.Parse(text)
	if err != nil {
		fatal(err)
	}
	fmt.Println(v.Serialize(indent))
}

func check(path string) {
	text, err := readInput(path)
	if err != nil {
		fatal(err)
	}
	if _, err := jot.Parse(text); err != nil {
		fatal(err)
	}
	color.Green("ok")
}

func fatal(err error) {
	color.New(color.FgRed).Fprintln(os.Stderr, err)
	os.Exit(1)
}
