package opcode

import (
	"fmt"
	"sort"
	"strings"
)

// Kind is the expected kind of an instruction argument.
type Kind int

const (
	// Var is a frame@name variable reference.
	Var Kind = iota
	// Symb is either a typed constant or a variable reference.
	Symb
	// Label is a bare identifier naming a jump target.
	Label
	// Type is one of the type names int, bool or string.
	Type
)

func (k Kind) String() string {
	switch k {
	case Var:
		return "var"
	case Symb:
		return "symb"
	case Label:
		return "label"
	case Type:
		return "type"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Spec describes one instruction of the language.
type Spec struct {
	Name  string
	Arity int
	Kinds []Kind
}

// CheckArity reports whether a tokenized line with the given number of
// fields (the opcode included) carries the right number of arguments.
func (s Spec) CheckArity(tokens int) bool {
	return s.Arity == tokens-1
}

// String returns the mnemonic followed by its argument kinds.
func (s Spec) String() string {
	parts := []string{strings.ToUpper(s.Name)}
	for _, k := range s.Kinds {
		parts = append(parts, "<"+k.String()+">")
	}
	return strings.Join(parts, " ")
}

var specs map[string]Spec

func init() {
	specs = make(map[string]Spec, len(table))
	for _, e := range table {
		if _, ok := specs[e.name]; ok {
			panic("opcode: duplicate table entry " + e.name)
		}
		if e.arity != len(e.kinds) {
			panic(fmt.Sprintf("opcode: %s declares %d arguments but lists %d kinds", e.name, e.arity, len(e.kinds)))
		}
		specs[e.name] = Spec{Name: e.name, Arity: e.arity, Kinds: e.kinds}
	}
}

// Lookup finds an instruction by mnemonic, ignoring case.
func Lookup(name string) (Spec, bool) {
	s, ok := specs[strings.ToLower(name)]
	return s, ok
}

// All returns every instruction, sorted by mnemonic.
func All() []Spec {
	list := make([]Spec, 0, len(specs))
	for _, s := range specs {
		list = append(list, s)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list
}
