package opcode

type entry struct {
	name  string
	arity int
	kinds []Kind
}

// table is the IPPcode18 instruction set, keyed by lower-case mnemonic.
var table = []entry{
	// Frames and function calls
	{"move", 2, []Kind{Var, Symb}},
	{"createframe", 0, nil},
	{"pushframe", 0, nil},
	{"popframe", 0, nil},
	{"defvar", 1, []Kind{Var}},
	{"call", 1, []Kind{Label}},
	{"return", 0, nil},

	// Data stack
	{"pushs", 1, []Kind{Symb}},
	{"pops", 1, []Kind{Var}},

	// Arithmetic, relational and boolean
	{"add", 3, []Kind{Var, Symb, Symb}},
	{"sub", 3, []Kind{Var, Symb, Symb}},
	{"mul", 3, []Kind{Var, Symb, Symb}},
	{"idiv", 3, []Kind{Var, Symb, Symb}},
	{"lt", 3, []Kind{Var, Symb, Symb}},
	{"gt", 3, []Kind{Var, Symb, Symb}},
	{"eq", 3, []Kind{Var, Symb, Symb}},
	{"and", 3, []Kind{Var, Symb, Symb}},
	{"or", 3, []Kind{Var, Symb, Symb}},
	{"not", 2, []Kind{Var, Symb}},
	{"int2char", 2, []Kind{Var, Symb}},
	{"stri2int", 3, []Kind{Var, Symb, Symb}},

	// Input and output
	{"read", 2, []Kind{Var, Type}},
	{"write", 1, []Kind{Symb}},

	// Strings
	{"concat", 3, []Kind{Var, Symb, Symb}},
	{"strlen", 2, []Kind{Var, Symb}},
	{"getchar", 3, []Kind{Var, Symb, Symb}},
	{"setchar", 3, []Kind{Var, Symb, Symb}},

	// Types
	{"type", 2, []Kind{Var, Symb}},

	// Program flow
	{"label", 1, []Kind{Label}},
	{"jump", 1, []Kind{Label}},
	{"jumpifeq", 3, []Kind{Label, Symb, Symb}},
	{"jumpifneq", 3, []Kind{Label, Symb, Symb}},

	// Debugging
	{"dprint", 1, []Kind{Symb}},
	{"break", 0, nil},
}
