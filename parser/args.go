package parser

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Urethramancer/ippcode/document"
	"github.com/Urethramancer/ippcode/opcode"
)

var (
	// Identifiers may not start with a digit; _ - $ & % * count as letters.
	reIdentifier = regexp.MustCompile(`^[A-Za-z_\-$&%*][A-Za-z0-9_\-$&%*]*$`)
	reInt        = regexp.MustCompile(`^[+-]?[0-9]+$`)
	reEscape     = regexp.MustCompile(`/[0-9]{3}`)
)

// Frames a variable can live in.
var frames = map[string]bool{"GF": true, "LF": true, "TF": true}

// ValidateArg checks one raw argument token against the kind the opcode
// table expects at 1-based position pos.
func ValidateArg(token string, kind opcode.Kind, pos int) (document.Argument, error) {
	var (
		arg document.Argument
		err error
	)

	switch kind {
	case opcode.Var:
		var v VarRef
		v, err = ParseVar(token)
		arg = v.Argument(pos)
	case opcode.Symb:
		var s Symbol
		s, err = ParseSymbol(token)
		if err == nil {
			arg = s.Argument(pos)
		}
	case opcode.Label:
		err = checkIdentifier(token)
		arg = document.Argument{Position: pos, Type: document.TypeLabel, Value: token}
	case opcode.Type:
		if !isType(token) {
			err = fmt.Errorf("%q is not a type", token)
		}
		arg = document.Argument{Position: pos, Type: document.TypeType, Value: token}
	default:
		return document.Argument{}, fmt.Errorf("%w %v at argument %d", ErrUnknownKind, kind, pos)
	}

	if err != nil {
		return document.Argument{}, fmt.Errorf("%w %d (%s): %v", ErrBadArgument, pos, kind, err)
	}
	return arg, nil
}

// ParseVar parses a frame@name variable reference.
func ParseVar(s string) (VarRef, error) {
	if strings.Count(s, "@") != 1 {
		return VarRef{}, fmt.Errorf("%q is not a frame@name variable", s)
	}

	frame, name, _ := strings.Cut(s, "@")
	if !frames[frame] {
		return VarRef{}, fmt.Errorf("unknown frame %q", frame)
	}
	if err := checkIdentifier(name); err != nil {
		return VarRef{}, err
	}
	return VarRef{Frame: frame, Name: name}, nil
}

// ParseSymbol parses a symb argument. Tokens tagged with a type name are
// constants; everything else has to be a variable.
func ParseSymbol(s string) (Symbol, error) {
	if c, ok, err := tryParseConstant(s); ok || err != nil {
		return c, err
	}
	return ParseVar(s)
}

// tryParseConstant handles type@value. String values may themselves
// contain @, every other type takes exactly one.
func tryParseConstant(s string) (Constant, bool, error) {
	if !strings.Contains(s, "@") {
		return Constant{}, false, nil
	}

	parts := strings.Split(s, "@")
	typ, val := parts[0], parts[1]
	if len(parts) > 2 {
		if typ != document.TypeString {
			return Constant{}, false, fmt.Errorf("too many @ in %q", s)
		}
		val = strings.Join(parts[1:], "@")
	}

	if !isType(typ) {
		return Constant{}, false, nil
	}
	if err := checkLiteral(typ, val); err != nil {
		return Constant{}, false, err
	}
	return Constant{Type: typ, Value: val}, true, nil
}

func isType(s string) bool {
	switch s {
	case document.TypeInt, document.TypeBool, document.TypeString:
		return true
	}
	return false
}

func checkIdentifier(s string) error {
	if !reIdentifier.MatchString(s) {
		return fmt.Errorf("%q is not a valid identifier", s)
	}
	return nil
}

func checkLiteral(typ, val string) error {
	switch typ {
	case document.TypeInt:
		if !reInt.MatchString(val) {
			return fmt.Errorf("%q is not an integer", val)
		}
	case document.TypeBool:
		if val != "true" && val != "false" {
			return fmt.Errorf("%q is not a boolean", val)
		}
	case document.TypeString:
		return checkString(val)
	default:
		return fmt.Errorf("%w %q", ErrUnknownKind, typ)
	}
	return nil
}

// checkString accepts a string literal when every slash starts a three
// digit escape and the text can be carried by an XML document.
func checkString(val string) error {
	if len(reEscape.FindAllStringIndex(val, -1)) != strings.Count(val, "/") {
		return fmt.Errorf("bad escape sequence in %q", val)
	}
	if !utf8.ValidString(val) {
		return fmt.Errorf("string is not valid UTF-8")
	}
	for _, r := range val {
		if !isXMLChar(r) {
			return fmt.Errorf("string contains character %U", r)
		}
	}
	return nil
}

func isXMLChar(r rune) bool {
	switch {
	case r == '\t', r == '\n', r == '\r':
		return true
	case r < 0x20:
		return false
	case r >= 0xD800 && r <= 0xDFFF:
		return false
	case r == 0xFFFE, r == 0xFFFF:
		return false
	}
	return r <= utf8.MaxRune
}
