package document

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// ErrMalformed is returned by Read for documents that do not follow the
// program/instruction/argN layout.
var ErrMalformed = errors.New("malformed program document")

// Element builds the XML tree for the program.
func (p *Program) Element() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.WriteSettings.CanonicalText = true

	root := doc.CreateElement("program")
	root.CreateAttr("language", p.Language)
	for _, in := range p.Instructions {
		ie := root.CreateElement("instruction")
		ie.CreateAttr("order", strconv.Itoa(in.Order))
		ie.CreateAttr("opcode", strings.ToUpper(in.Opcode))
		for _, a := range in.Args {
			ae := ie.CreateElement("arg" + strconv.Itoa(a.Position))
			ae.CreateAttr("type", a.Type)
			if a.Value != "" {
				ae.SetText(a.Value)
			}
		}
	}
	doc.Indent(2)
	return doc
}

// WriteTo renders the program as an indented XML document.
func (p *Program) WriteTo(w io.Writer) (int64, error) {
	return p.Element().WriteTo(w)
}

// String renders the program as XML.
func (p *Program) String() string {
	s, err := p.Element().WriteToString()
	if err != nil {
		return ""
	}
	return s
}

// Read decodes a document written by WriteTo.
func Read(r io.Reader) (*Program, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "program" {
		return nil, fmt.Errorf("%w: missing program element", ErrMalformed)
	}

	p := &Program{Language: root.SelectAttrValue("language", "")}
	for i, ie := range root.ChildElements() {
		if ie.Tag != "instruction" {
			return nil, fmt.Errorf("%w: unexpected element %q", ErrMalformed, ie.Tag)
		}
		order, err := strconv.Atoi(ie.SelectAttrValue("order", ""))
		if err != nil || order < 1 {
			return nil, fmt.Errorf("%w: instruction %d has a bad order", ErrMalformed, i+1)
		}
		opcode := ie.SelectAttrValue("opcode", "")
		if opcode == "" {
			return nil, fmt.Errorf("%w: instruction %d has no opcode", ErrMalformed, order)
		}

		in := Instruction{Order: order, Opcode: opcode}
		for j, ae := range ie.ChildElements() {
			pos, err := argPosition(ae.Tag)
			if err != nil || pos != j+1 {
				return nil, fmt.Errorf("%w: instruction %d: unexpected element %q", ErrMalformed, order, ae.Tag)
			}
			typ := ae.SelectAttrValue("type", "")
			if typ == "" {
				return nil, fmt.Errorf("%w: instruction %d: %s has no type", ErrMalformed, order, ae.Tag)
			}
			in.Attach(Argument{Position: pos, Type: typ, Value: ae.Text()})
		}
		p.Instructions = append(p.Instructions, in)
	}
	return p, nil
}

func argPosition(tag string) (int, error) {
	n, ok := strings.CutPrefix(tag, "arg")
	if !ok {
		return 0, fmt.Errorf("not an argument: %s", tag)
	}
	return strconv.Atoi(n)
}
