package parser

import "github.com/Urethramancer/ippcode/document"

// Symbol is a symb argument: either a Constant or a VarRef.
type Symbol interface {
	Argument(pos int) document.Argument
	symbol()
}

// Constant is a typed literal such as int@5.
type Constant struct {
	Type  string
	Value string
}

// Argument returns the document form of the constant.
func (c Constant) Argument(pos int) document.Argument {
	return document.Argument{Position: pos, Type: c.Type, Value: c.Value}
}

func (Constant) symbol() {}

// VarRef names a variable in one of the frames.
type VarRef struct {
	Frame string
	Name  string
}

// Argument returns the document form of the variable.
func (v VarRef) Argument(pos int) document.Argument {
	return document.Argument{Position: pos, Type: document.TypeVar, Value: v.String()}
}

func (v VarRef) String() string {
	return v.Frame + "@" + v.Name
}

func (VarRef) symbol() {}
