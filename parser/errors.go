package parser

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed run.
type ErrorKind int

const (
	// KindHeader is a missing or malformed header line.
	KindHeader ErrorKind = iota
	// KindLexical covers unknown opcodes, wrong argument counts and
	// malformed arguments.
	KindLexical
	// KindInternal means the opcode table asked for an argument kind the
	// validator does not know. It points at a defect, not at the input.
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindHeader:
		return "header"
	case KindLexical:
		return "lexical"
	case KindInternal:
		return "internal"
	}
	return fmt.Sprintf("errorkind(%d)", int(k))
}

// Process exit statuses.
const (
	// ExitInvocation covers bad options and input or output that cannot be used.
	ExitInvocation = 10
	// ExitLexical covers every header and lexical failure.
	ExitLexical = 21
)

var (
	ErrBadHeader     = errors.New("invalid header")
	ErrUnknownOpcode = errors.New("unknown opcode")
	ErrArity         = errors.New("wrong number of arguments")
	ErrBadArgument   = errors.New("invalid argument")
	ErrUnknownKind   = errors.New("unknown argument kind")
)

// Error is a parse failure tied to a source line.
type Error struct {
	Kind ErrorKind
	Line int
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ExitCode maps an error returned by the parser to the process status.
// A nil error is 0; errors from reading the input are invocation errors.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var pe *Error
	if errors.As(err, &pe) {
		return ExitLexical
	}
	return ExitInvocation
}

func lexicalError(line int, err error) *Error {
	if errors.Is(err, ErrUnknownKind) {
		return &Error{Kind: KindInternal, Line: line, Err: err}
	}
	return &Error{Kind: KindLexical, Line: line, Err: err}
}
