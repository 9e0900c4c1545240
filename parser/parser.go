// Package parser validates IPPcode18 source and builds its document.
package parser

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Urethramancer/ippcode/document"
	"github.com/Urethramancer/ippcode/opcode"
	"github.com/Urethramancer/ippcode/source"
)

// Header is the required first line of every program, compared without
// whitespace and ignoring case.
const Header = ".IPPcode18"

// Emitter receives validated instructions.
type Emitter interface {
	// Begin returns a scratch instruction for the given order and opcode.
	Begin(order int, opcode string) *document.Instruction
	// Commit adds a fully validated instruction to the program.
	Commit(*document.Instruction)
}

// Result summarises a successful run.
type Result struct {
	Program      *document.Program
	Lines        int
	Comments     int
	Instructions int
}

// Parser holds the state of one run over one input.
type Parser struct {
	src   *source.Reader
	out   Emitter
	order int
}

// New creates a parser reading r and emitting into out.
func New(r io.Reader, out Emitter) *Parser {
	return &Parser{src: source.New(r), out: out}
}

// Parse validates a whole program from r and returns its document.
func Parse(r io.Reader) (*Result, error) {
	b := document.NewBuilder(document.Language)
	p := New(r, b)
	if err := p.Run(); err != nil {
		return nil, err
	}

	c := p.Counters()
	return &Result{
		Program:      b.Program(),
		Lines:        c.Lines,
		Comments:     c.Comments,
		Instructions: p.order,
	}, nil
}

// Run checks the header and then every instruction, stopping at the
// first error.
func (p *Parser) Run() error {
	if err := CheckHeader(p.src); err != nil {
		return err
	}

	for {
		line, ok, err := p.src.Next()
		if err != nil {
			return fmt.Errorf("reading line %d: %w", p.src.Line()+1, err)
		}
		if !ok {
			break
		}

		p.order++
		in, err := p.parseInstruction(Tokenize(line))
		if err != nil {
			return lexicalError(p.src.Line(), err)
		}
		p.out.Commit(in)
		slog.Debug("instruction", "order", in.Order, "opcode", in.Opcode, "line", p.src.Line())
	}

	c := p.src.Counters()
	slog.Debug("parsed", "lines", c.Lines, "comments", c.Comments, "instructions", p.order)
	return nil
}

// Counters returns the line and comment totals read so far.
func (p *Parser) Counters() source.Counters {
	return p.src.Counters()
}

// Instructions is the number of instructions validated so far.
func (p *Parser) Instructions() int {
	return p.order
}

// CheckHeader consumes the first non-empty line and checks it is the
// language header.
func CheckHeader(src *source.Reader) error {
	line, ok, err := src.Next()
	if err != nil {
		return fmt.Errorf("reading header: %w", err)
	}
	if !ok {
		return &Error{Kind: KindHeader, Line: src.Line() + 1, Err: fmt.Errorf("%w: no header", ErrBadHeader)}
	}

	got := strings.Join(strings.Fields(line), "")
	if !strings.EqualFold(got, Header) {
		return &Error{Kind: KindHeader, Line: src.Line(), Err: fmt.Errorf("%w: %q", ErrBadHeader, got)}
	}
	return nil
}

// Tokenize splits an instruction line on runs of whitespace.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// parseInstruction validates a tokenized line as a whole. Nothing is
// emitted unless every argument is valid.
func (p *Parser) parseInstruction(fields []string) (*document.Instruction, error) {
	spec, ok := opcode.Lookup(fields[0])
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOpcode, fields[0])
	}
	if !spec.CheckArity(len(fields)) {
		return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, strings.ToUpper(spec.Name), spec.Arity, len(fields)-1)
	}

	in := p.out.Begin(p.order, strings.ToUpper(fields[0]))
	for i, kind := range spec.Kinds {
		arg, err := ValidateArg(fields[i+1], kind, i+1)
		if err != nil {
			return nil, err
		}
		in.Attach(arg)
	}
	return in, nil
}
