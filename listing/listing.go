// Package listing turns a program document back into IPPcode18 source.
package listing

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Urethramancer/ippcode/document"
	"github.com/Urethramancer/ippcode/opcode"
)

// ErrUnknownInstruction is returned for opcodes missing from the table or
// used with the wrong number of arguments.
var ErrUnknownInstruction = errors.New("unknown instruction")

// Render returns the source text of p: the header, then one instruction
// per line in order. Labels start at the left margin, everything else
// is indented.
func Render(p *document.Program) (string, error) {
	ins := make([]document.Instruction, len(p.Instructions))
	copy(ins, p.Instructions)
	sort.SliceStable(ins, func(i, j int) bool { return ins[i].Order < ins[j].Order })

	var out strings.Builder
	out.WriteString(".IPPcode18\n")
	for _, in := range ins {
		spec, ok := opcode.Lookup(in.Opcode)
		if !ok || spec.Arity != len(in.Args) {
			return "", fmt.Errorf("order %d: %w: %s/%d", in.Order, ErrUnknownInstruction, in.Opcode, len(in.Args))
		}

		mn := strings.ToUpper(in.Opcode)
		if len(in.Args) == 0 {
			fmt.Fprintf(&out, "    %s\n", mn)
			continue
		}

		ops := make([]string, 0, len(in.Args))
		for _, a := range in.Args {
			ops = append(ops, Operand(a))
		}
		if spec.Name == "label" {
			fmt.Fprintf(&out, "%s %s\n", mn, ops[0])
			continue
		}
		fmt.Fprintf(&out, "    %-10s %s\n", mn, strings.Join(ops, " "))
	}
	return out.String(), nil
}

// Operand returns the source form of an argument. Constants get their
// type tag back; variables, labels and types are written as they are.
func Operand(a document.Argument) string {
	switch a.Type {
	case document.TypeInt, document.TypeBool, document.TypeString:
		return a.Type + "@" + a.Value
	}
	return a.Value
}
