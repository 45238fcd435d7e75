package compiler

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

func kindsOf(tokens []Token) []Kind {
	kinds := make([]Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	return kinds
}

func TestScanner(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Kind
	}{
		{
			name:     "Empty",
			input:    "",
			expected: []Kind{EOF},
		},
		{
			name:     "Constant Declaration",
			input:    "final int x = 5;",
			expected: []Kind{Final, Ident, Ident, Assign, Number, Semicolon, EOF},
		},
		{
			name:  "Operators",
			input: "+ - * / % == != < <= > >= = ; , . ( ) [ ] { }",
			expected: []Kind{
				Plus, Minus, Times, Slash, Rem, Eql, Neq, Lss, Leq, Gtr, Geq,
				Assign, Semicolon, Comma, Period, LPar, RPar, LBrack, RBrack, LBrace, RBrace, EOF,
			},
		},
		{
			name:  "Keywords",
			input: "class else final if new print program read return void while",
			expected: []Kind{
				Class, Else, Final, If, New, Print, Program, Read, Return, Void, While, EOF,
			},
		},
		{
			name:     "Keywords are case sensitive",
			input:    "Program WHILE whilex",
			expected: []Kind{Ident, Ident, Ident, EOF},
		},
		{
			name:     "Operators without blanks",
			input:    "a<=b!=c>=d==e",
			expected: []Kind{Ident, Leq, Ident, Neq, Ident, Geq, Ident, Eql, Ident, EOF},
		},
		{
			name:     "Comments",
			input:    "x // comment\n y // another",
			expected: []Kind{Ident, Ident, EOF},
		},
		{
			name:     "Slash is not a comment",
			input:    "a / b",
			expected: []Kind{Ident, Slash, Ident, EOF},
		},
		{
			name:     "Invalid characters",
			input:    "a @ ! b",
			expected: []Kind{Ident, None, None, Ident, EOF},
		},
		{
			name:     "Identifiers with digits",
			input:    "x1 a2b3 9z",
			expected: []Kind{Ident, Ident, Number, Ident, EOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, _ := Lex(tt.input)
			if got := kindsOf(tokens); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestScanner_Values(t *testing.T) {
	tokens, errs := Lex("final int x = 5;")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if tokens[1].Text != "int" {
		t.Errorf("token 1: expected identifier \"int\", got %q", tokens[1].Text)
	}
	if tokens[2].Text != "x" {
		t.Errorf("token 2: expected identifier \"x\", got %q", tokens[2].Text)
	}
	if tokens[4].Val != 5 {
		t.Errorf("token 4: expected value 5, got %d", tokens[4].Val)
	}
}

func TestScanner_Positions(t *testing.T) {
	tokens, _ := Lex("program P\n  {\n// note\n}")
	expected := []struct{ line, col int }{
		{1, 1}, // program
		{1, 9}, // P
		{2, 3}, // {
		{4, 1}, // }
	}
	for i, want := range expected {
		if tokens[i].Line != want.line || tokens[i].Col != want.col {
			t.Errorf("token %d (%s): expected %d:%d, got %d:%d",
				i, tokens[i].Kind, want.line, want.col, tokens[i].Line, tokens[i].Col)
		}
	}
}

func TestScanner_EOFRepeats(t *testing.T) {
	s := NewScanner("x", nil)
	if tok := s.Next(); tok.Kind != Ident {
		t.Fatalf("expected identifier, got %s", tok.Kind)
	}
	for i := 0; i < 3; i++ {
		if tok := s.Next(); tok.Kind != EOF {
			t.Errorf("call %d: expected eof, got %s", i, tok.Kind)
		}
	}
}

func TestScanner_NumberOverflow(t *testing.T) {
	tokens, errs := Lex("2147483647 2147483648")
	if tokens[0].Kind != Number || tokens[0].Val != math.MaxInt32 {
		t.Errorf("expected max int, got %s %d", tokens[0].Kind, tokens[0].Val)
	}
	if tokens[1].Kind != Number {
		t.Errorf("overflowing literal should still be a number, got %s", tokens[1].Kind)
	}
	if len(errs) != 1 || !strings.Contains(errs[0].Msg, "overflow") {
		t.Fatalf("expected one overflow error, got %v", errs)
	}
	if errs[0].Col != 12 {
		t.Errorf("expected error at col 12, got %d", errs[0].Col)
	}
}

func TestScanner_CharLiterals(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    Kind
		val     int
		wantErr string
	}{
		{name: "Plain", input: "'a'", kind: CharCon, val: 'a'},
		{name: "Newline", input: `'\n'`, kind: CharCon, val: '\n'},
		{name: "Return", input: `'\r'`, kind: CharCon, val: '\r'},
		{name: "Tab", input: `'\t'`, kind: CharCon, val: '\t'},
		{name: "Backslash", input: `'\\'`, kind: CharCon, val: '\\'},
		{name: "Quote", input: `'\''`, kind: CharCon, val: '\''},
		{name: "Empty", input: "''", kind: None, wantErr: "empty character constant"},
		{name: "Invalid Escape", input: `'\q'`, kind: None, wantErr: "invalid escape sequence"},
		{name: "Missing Quote", input: "'a", kind: None, wantErr: "missing closing quote"},
		{name: "Missing Quote Before Newline", input: "'\n'", kind: None, wantErr: "missing closing quote"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, errs := Lex(tt.input)
			tok := tokens[0]
			if tok.Kind != tt.kind {
				t.Fatalf("expected %s, got %s", tt.kind, tok.Kind)
			}
			if tt.wantErr == "" {
				if len(errs) != 0 {
					t.Fatalf("unexpected errors: %v", errs)
				}
				if tok.Val != tt.val {
					t.Errorf("expected value %d, got %d", tt.val, tok.Val)
				}
				return
			}
			if len(errs) == 0 || !strings.Contains(errs[0].Msg, tt.wantErr) {
				t.Fatalf("expected error %q, got %v", tt.wantErr, errs)
			}
			if errs[0].Kind != Lexical {
				t.Errorf("expected a lexical error, got %s", errs[0].Kind)
			}
		})
	}
}

func TestScanner_ResumesAfterBadChar(t *testing.T) {
	tokens, errs := Lex("'' x '\\q' y")
	expected := []Kind{None, Ident, None, Ident, EOF}
	if got := kindsOf(tokens); !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
	if len(errs) != 2 {
		t.Errorf("expected 2 errors, got %d: %v", len(errs), errs)
	}
}

func TestScanner_ASCIIIdentifiers(t *testing.T) {
	tokens, errs := Lex("xé x1é")
	expected := []Kind{Ident, None, Ident, None, EOF}
	if got := kindsOf(tokens); !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %v, got %v", expected, got)
	}
	if tokens[0].Text != "x" || tokens[2].Text != "x1" {
		t.Errorf("expected identifiers \"x\" and \"x1\", got %q and %q", tokens[0].Text, tokens[2].Text)
	}
	if len(errs) != 2 {
		t.Errorf("expected 2 errors, got %d: %v", len(errs), errs)
	}
}

func TestKindString(t *testing.T) {
	if Semicolon.String() != ";" {
		t.Errorf("expected \";\", got %q", Semicolon.String())
	}
	if Ident.String() != "identifier" {
		t.Errorf("expected \"identifier\", got %q", Ident.String())
	}
	if got := Kind(99).String(); got != "Kind(99)" {
		t.Errorf("expected \"Kind(99)\", got %q", got)
	}
}
