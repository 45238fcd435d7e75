package compiler

import "fmt"

// Kind identifies the category of a scanned token.
type Kind int

const (
	None    Kind = iota // invalid token
	Ident               // identifier
	Number              // decimal integer literal
	CharCon             // character constant 'c'

	// Operators
	Plus  // +
	Minus // -
	Times // *
	Slash // /
	Rem   // %
	Eql   // ==
	Neq   // !=
	Lss   // <
	Leq   // <=
	Gtr   // >
	Geq   // >=

	// Punctuation
	Assign    // =
	Semicolon // ;
	Comma     // ,
	Period    // .
	LPar      // (
	RPar      // )
	LBrack    // [
	RBrack    // ]
	LBrace    // {
	RBrace    // }

	// Keywords
	Class
	Else
	Final
	If
	New
	Print
	Program
	Read
	Return
	Void
	While

	EOF // sentinel: end of input
)

// kindNames is indexed by Kind and is used verbatim in "X expected" messages.
var kindNames = [...]string{
	None:      "none",
	Ident:     "identifier",
	Number:    "number",
	CharCon:   "char constant",
	Plus:      "+",
	Minus:     "-",
	Times:     "*",
	Slash:     "/",
	Rem:       "%",
	Eql:       "==",
	Neq:       "!=",
	Lss:       "<",
	Leq:       "<=",
	Gtr:       ">",
	Geq:       ">=",
	Assign:    "=",
	Semicolon: ";",
	Comma:     ",",
	Period:    ".",
	LPar:      "(",
	RPar:      ")",
	LBrack:    "[",
	RBrack:    "]",
	LBrace:    "{",
	RBrace:    "}",
	Class:     "class",
	Else:      "else",
	Final:     "final",
	If:        "if",
	New:       "new",
	Print:     "print",
	Program:   "program",
	Read:      "read",
	Return:    "return",
	Void:      "void",
	While:     "while",
	EOF:       "eof",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// keywords is sorted; lookups use binary search.
var keywords = [...]struct {
	name string
	kind Kind
}{
	{"class", Class},
	{"else", Else},
	{"final", Final},
	{"if", If},
	{"new", New},
	{"print", Print},
	{"program", Program},
	{"read", Read},
	{"return", Return},
	{"void", Void},
	{"while", While},
}

// Token is a single lexical unit produced by the Scanner.
type Token struct {
	Kind Kind
	Text string // source text of identifiers and literals
	Val  int    // value of numbers and character constants
	Line int    // 1-based source line
	Col  int    // 1-based source column
}

func (t Token) String() string {
	switch t.Kind {
	case Ident:
		return fmt.Sprintf("%-14s %-12q line %d col %d", t.Kind, t.Text, t.Line, t.Col)
	case Number, CharCon:
		return fmt.Sprintf("%-14s %-12d line %d col %d", t.Kind, t.Val, t.Line, t.Col)
	}
	return fmt.Sprintf("%-14s %-12s line %d col %d", t.Kind, "", t.Line, t.Col)
}
