package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Urethramancer/ippcode/document"
	"github.com/Urethramancer/ippcode/listing"
	"github.com/tebeka/atexit"
)

// Exit statuses for documents that cannot be listed.
const (
	exitUsage     = 10
	exitMalformed = 31
	exitStructure = 32
)

// dis18 turns a program document back into IPPcode18 source.
func main() {
	out := bufio.NewWriter(os.Stdout)
	atexit.Register(func() { out.Flush() })
	atexit.Exit(run(os.Args, os.Stdin, out, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) > 3 {
		fmt.Fprintf(stderr, "Usage: %s [inputfile] [outputfile]\n", args[0])
		return exitUsage
	}

	in := stdin
	if len(args) >= 2 && args[1] != "-" {
		f, err := os.Open(args[1])
		if err != nil {
			fmt.Fprintf(stderr, "Error reading input file: %v\n", err)
			return exitUsage
		}
		defer f.Close()
		in = f
	}

	prog, err := document.Read(in)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitMalformed
	}

	text, err := listing.Render(prog)
	if err != nil {
		fmt.Fprintf(stderr, "Listing error: %v\n", err)
		if errors.Is(err, listing.ErrUnknownInstruction) {
			return exitStructure
		}
		return exitMalformed
	}

	if len(args) < 3 {
		io.WriteString(stdout, text)
		return 0
	}

	if err := os.WriteFile(args[2], []byte(text), 0644); err != nil {
		fmt.Fprintf(stderr, "Error writing output file: %v\n", err)
		return exitUsage
	}
	fmt.Fprintf(stdout, "Listing written to %s\n", args[2])
	return 0
}
