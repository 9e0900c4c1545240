// Package document holds the abstract syntax of a parsed IPPcode18
// program and its XML representation.
package document

// Language is written on the root element of every document.
const Language = "IPPcode18"

// Argument types as they appear in the type attribute.
const (
	TypeVar    = "var"
	TypeLabel  = "label"
	TypeType   = "type"
	TypeInt    = "int"
	TypeBool   = "bool"
	TypeString = "string"
)

// Argument is one validated instruction argument.
type Argument struct {
	// Position is 1-based and names the argN element.
	Position int
	Type     string
	// Value is kept unescaped.
	Value string
}

// Instruction is one validated source line.
type Instruction struct {
	Order  int
	Opcode string
	Args   []Argument
}

// Attach appends an argument in source order.
func (i *Instruction) Attach(arg Argument) {
	i.Args = append(i.Args, arg)
}

// Program is the document root.
type Program struct {
	Language     string
	Instructions []Instruction
}

// Builder accumulates validated instructions into a Program. Instructions
// are prepared on their own and only become part of the program on Commit.
type Builder struct {
	prog Program
}

// NewBuilder starts an empty program for the given language.
func NewBuilder(language string) *Builder {
	return &Builder{prog: Program{Language: language}}
}

// Begin returns a scratch instruction that is not yet part of the program.
func (b *Builder) Begin(order int, opcode string) *Instruction {
	return &Instruction{Order: order, Opcode: opcode}
}

// Commit appends a fully validated instruction to the program.
func (b *Builder) Commit(i *Instruction) {
	b.prog.Instructions = append(b.prog.Instructions, *i)
}

// Program returns the program built so far.
func (b *Builder) Program() *Program {
	return &b.prog
}
