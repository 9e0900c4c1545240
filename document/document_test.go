package document_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/Urethramancer/ippcode/document"
)

func program(ins ...document.Instruction) *document.Program {
	b := document.NewBuilder(document.Language)
	for i := range ins {
		in := b.Begin(ins[i].Order, ins[i].Opcode)
		for _, a := range ins[i].Args {
			in.Attach(a)
		}
		b.Commit(in)
	}
	return b.Program()
}

var _ = Describe("Document", func() {
	Describe("Builder", func() {
		It("keeps uncommitted instructions out of the program", func() {
			b := document.NewBuilder(document.Language)
			in := b.Begin(1, "WRITE")
			in.Attach(document.Argument{Position: 1, Type: document.TypeInt, Value: "1"})
			Expect(b.Program().Instructions).To(BeEmpty())

			b.Commit(in)
			b.Begin(2, "MOVE")
			Expect(b.Program().Instructions).To(HaveLen(1))
			Expect(b.Program().Instructions[0].Order).To(Equal(1))
		})
	})

	Describe("writing", func() {
		It("renders the program layout", func() {
			p := program(document.Instruction{Order: 1, Opcode: "MOVE", Args: []document.Argument{
				{Position: 1, Type: document.TypeVar, Value: "GF@x"},
				{Position: 2, Type: document.TypeInt, Value: "5"},
			}})

			var buf bytes.Buffer
			_, err := p.WriteTo(&buf)
			Expect(err).NotTo(HaveOccurred())
			Expect(buf.String()).To(Equal(`<?xml version="1.0" encoding="UTF-8"?>
<program language="IPPcode18">
  <instruction order="1" opcode="MOVE">
    <arg1 type="var">GF@x</arg1>
    <arg2 type="int">5</arg2>
  </instruction>
</program>
`))
		})

		It("escapes markup once", func() {
			p := program(document.Instruction{Order: 1, Opcode: "WRITE", Args: []document.Argument{
				{Position: 1, Type: document.TypeString, Value: "a<b>&c"},
			}})
			Expect(p.String()).To(ContainSubstring(`<arg1 type="string">a&lt;b&gt;&amp;c</arg1>`))
		})

		It("closes empty arguments", func() {
			p := program(document.Instruction{Order: 1, Opcode: "WRITE", Args: []document.Argument{
				{Position: 1, Type: document.TypeString, Value: ""},
			}})
			Expect(p.String()).To(ContainSubstring(`<arg1 type="string"/>`))
		})

		It("upper-cases opcodes", func() {
			p := program(document.Instruction{Order: 1, Opcode: "break"})
			Expect(p.String()).To(ContainSubstring(`<instruction order="1" opcode="BREAK"/>`))
		})

		It("writes an empty program", func() {
			Expect(program().String()).To(ContainSubstring(`<program language="IPPcode18"/>`))
		})
	})

	Describe("reading", func() {
		It("reads back what it wrote", func() {
			p := program(
				document.Instruction{Order: 1, Opcode: "LABEL", Args: []document.Argument{
					{Position: 1, Type: document.TypeLabel, Value: "top"},
				}},
				document.Instruction{Order: 2, Opcode: "READ", Args: []document.Argument{
					{Position: 1, Type: document.TypeVar, Value: "LF@in"},
					{Position: 2, Type: document.TypeType, Value: "string"},
				}},
				document.Instruction{Order: 3, Opcode: "WRITE", Args: []document.Argument{
					{Position: 1, Type: document.TypeString, Value: "x<&>/010y"},
				}},
				document.Instruction{Order: 4, Opcode: "WRITE", Args: []document.Argument{
					{Position: 1, Type: document.TypeString, Value: ""},
				}},
			)

			got, err := document.Read(strings.NewReader(p.String()))
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(p))
		})

		DescribeTable("rejects malformed documents",
			func(src string) {
				_, err := document.Read(strings.NewReader(src))
				Expect(err).To(MatchError(document.ErrMalformed))
			},
			Entry("an empty input", ""),
			Entry("an unclosed element", `<program language="IPPcode18"><instruction`),
			Entry("another root", `<code/>`),
			Entry("a stray element", `<program><label/></program>`),
			Entry("a missing order", `<program><instruction opcode="BREAK"/></program>`),
			Entry("a zero order", `<program><instruction order="0" opcode="BREAK"/></program>`),
			Entry("a missing opcode", `<program><instruction order="1"/></program>`),
			Entry("arguments out of sequence", `<program><instruction order="1" opcode="WRITE"><arg2 type="int">1</arg2></instruction></program>`),
			Entry("a non-argument child", `<program><instruction order="1" opcode="WRITE"><value/></instruction></program>`),
			Entry("an untyped argument", `<program><instruction order="1" opcode="WRITE"><arg1>1</arg1></instruction></program>`),
		)
	})
})
