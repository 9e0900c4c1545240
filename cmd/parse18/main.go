package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Urethramancer/ippcode/opcode"
	"github.com/Urethramancer/ippcode/parser"
	"github.com/Urethramancer/ippcode/stats"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/tebeka/atexit"
)

// parse18 reads IPPcode18 source on stdin and prints its XML form.
func main() {
	out := bufio.NewWriter(os.Stdout)
	atexit.Register(func() { out.Flush() })
	atexit.Exit(run(os.Args, os.Stdin, out, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR %d: %v, for more info see: --help\n", parser.ExitInvocation, err)
		return parser.ExitInvocation
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	switch {
	case opts.help:
		opts.opt.PrintHelp()
		return 0
	case opts.opcodes:
		listOpcodes(stdout)
		return 0
	}

	res, err := parser.Parse(stdin)
	if err != nil {
		report(stderr, err)
		return parser.ExitCode(err)
	}

	if opts.wantStats() {
		v := stats.Values{Comments: res.Comments, Instructions: res.Instructions}
		if err := stats.Write(opts.stats, v); err != nil {
			fmt.Fprintf(stderr, "ERROR %d: %v\n", parser.ExitInvocation, err)
			return parser.ExitInvocation
		}
	}

	if _, err := res.Program.WriteTo(stdout); err != nil {
		fmt.Fprintf(stderr, "ERROR %d: writing document: %v\n", parser.ExitInvocation, err)
		return parser.ExitInvocation
	}
	return 0
}

func report(w io.Writer, err error) {
	var pe *parser.Error
	if !errors.As(err, &pe) {
		fmt.Fprintf(w, "ERROR %d: %v\n", parser.ExitCode(err), err)
		return
	}

	switch pe.Kind {
	case parser.KindInternal:
		slog.Error("opcode table defect", "line", pe.Line, "err", pe.Err)
		fmt.Fprintf(w, "INTERNAL ERROR: line %d: %v\n", pe.Line, pe.Err)
	case parser.KindHeader:
		fmt.Fprintf(w, "ERROR %d: semantic/lexical error on line: %d (invalid header)\n", parser.ExitLexical, pe.Line)
	default:
		fmt.Fprintf(w, "ERROR %d: semantic/lexical error on line: %d (%v)\n", parser.ExitLexical, pe.Line, pe.Err)
	}
}

func listOpcodes(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Opcode", "Arity", "Arguments"})
	for _, s := range opcode.All() {
		kinds := make([]string, len(s.Kinds))
		for i, k := range s.Kinds {
			kinds[i] = k.String()
		}
		t.AppendRow(table.Row{strings.ToUpper(s.Name), s.Arity, strings.Join(kinds, " ")})
	}
	t.Render()
}
