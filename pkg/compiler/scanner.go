package compiler

import (
	"fmt"
	"sort"
	"strconv"
)

// eofCh is the lookahead character once the source is exhausted.
const eofCh rune = -1

// Scanner holds all mutable state for a single scanning pass over src.
// It produces tokens lazily, one per call to Next.
type Scanner struct {
	src  []rune
	pos  int  // index of the next rune to read into ch
	ch   rune // lookahead character
	line int  // current 1-based source line
	col  int  // column of ch; 0 right after a newline

	errh       ErrorHandler
	ErrorCount int // number of lexical errors reported so far
}

// NewScanner returns a Scanner positioned at the start of src. Lexical errors
// are passed to errh, which may be nil.
func NewScanner(src string, errh ErrorHandler) *Scanner {
	s := &Scanner{}
	s.Init(src, errh)
	return s
}

// Init resets s to line 1, column 0 and primes the lookahead character.
func (s *Scanner) Init(src string, errh ErrorHandler) {
	s.src = []rune(src)
	s.pos = 0
	s.line = 1
	s.col = 0
	s.errh = errh
	s.ErrorCount = 0
	s.nextCh()
}

// nextCh reads the next source character into s.ch.
func (s *Scanner) nextCh() {
	if s.pos >= len(s.src) {
		s.ch = eofCh
		return
	}
	s.ch = s.src[s.pos]
	s.pos++
	s.col++
	if s.ch == '\n' {
		s.line++
		s.col = 0
	}
}

func (s *Scanner) error(line, col int, format string, args ...any) {
	s.ErrorCount++
	if s.errh != nil {
		s.errh(line, col, fmt.Sprintf(format, args...))
	}
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

// Next skips blanks and comments and returns the next token. At the end of
// input it returns an EOF token on every call.
func (s *Scanner) Next() Token {
	for s.ch != eofCh && s.ch <= ' ' {
		s.nextCh()
	}
	t := Token{Line: s.line, Col: s.col}

	ch := s.ch
	if isLetter(ch) {
		s.readName(&t)
		return t
	}
	if isDigit(ch) {
		s.readNumber(&t)
		return t
	}

	switch ch {
	case eofCh:
		t.Kind = EOF // no nextCh any more
		return t
	case '\'':
		s.nextCh()
		s.readCharCon(&t)
		return t
	}

	s.nextCh() // consume the character before the switch
	switch ch {
	case ';':
		t.Kind = Semicolon
	case '.':
		t.Kind = Period
	case ',':
		t.Kind = Comma
	case '+':
		t.Kind = Plus
	case '-':
		t.Kind = Minus
	case '*':
		t.Kind = Times
	case '%':
		t.Kind = Rem
	case '(':
		t.Kind = LPar
	case ')':
		t.Kind = RPar
	case '[':
		t.Kind = LBrack
	case ']':
		t.Kind = RBrack
	case '{':
		t.Kind = LBrace
	case '}':
		t.Kind = RBrace
	case '=':
		t.Kind = s.twoChar('=', Eql, Assign)
	case '<':
		t.Kind = s.twoChar('=', Leq, Lss)
	case '>':
		t.Kind = s.twoChar('=', Geq, Gtr)
	case '!':
		t.Kind = s.twoChar('=', Neq, None)
		if t.Kind == None {
			s.error(t.Line, t.Col, "invalid character '!'")
		}
	case '/':
		if s.ch == '/' {
			for s.ch != '\n' && s.ch != eofCh {
				s.nextCh()
			}
			return s.Next()
		}
		t.Kind = Slash
	default:
		t.Kind = None
		s.error(t.Line, t.Col, "invalid character %q", ch)
	}
	return t
}

// twoChar consumes second and returns long if it is the lookahead character,
// otherwise it returns short.
func (s *Scanner) twoChar(second rune, long, short Kind) Kind {
	if s.ch == second {
		s.nextCh()
		return long
	}
	return short
}

// readName collects an identifier or keyword. The first letter is still in s.ch.
func (s *Scanner) readName(t *Token) {
	start := s.pos - 1
	for isLetter(s.ch) || isDigit(s.ch) {
		s.nextCh()
	}
	end := s.pos - 1
	if s.ch == eofCh {
		end = s.pos
	}
	t.Text = string(s.src[start:end])

	i := sort.Search(len(keywords), func(i int) bool { return keywords[i].name >= t.Text })
	if i < len(keywords) && keywords[i].name == t.Text {
		t.Kind = keywords[i].kind
		return
	}
	t.Kind = Ident
}

// readNumber collects a decimal literal. An out-of-range literal is reported
// and keeps the largest representable value.
func (s *Scanner) readNumber(t *Token) {
	start := s.pos - 1
	for isDigit(s.ch) {
		s.nextCh()
	}
	end := s.pos - 1
	if s.ch == eofCh {
		end = s.pos
	}
	t.Text = string(s.src[start:end])
	t.Kind = Number

	v, err := strconv.ParseInt(t.Text, 10, 32)
	if err != nil {
		s.error(t.Line, t.Col, "number overflow")
	}
	t.Val = int(v)
}

// readCharCon collects a character constant. The opening quote has been consumed.
func (s *Scanner) readCharCon(t *Token) {
	t.Kind = None

	switch s.ch {
	case '\'':
		s.error(s.line, s.col, "empty character constant")
		s.nextCh()
		return
	case eofCh, '\n', '\r':
		s.error(s.line, s.col, "missing closing quote")
		return
	}

	valid := true
	if s.ch == '\\' {
		s.nextCh()
		switch s.ch {
		case 'n':
			t.Val = '\n'
		case 'r':
			t.Val = '\r'
		case 't':
			t.Val = '\t'
		case '\\':
			t.Val = '\\'
		case '\'':
			t.Val = '\''
		default:
			s.error(s.line, s.col, "invalid escape sequence")
			valid = false
		}
		if s.ch != eofCh {
			s.nextCh()
		}
	} else {
		t.Val = int(s.ch)
		s.nextCh()
	}

	if s.ch != '\'' {
		if valid {
			s.error(s.line, s.col, "missing closing quote")
		}
		return
	}
	s.nextCh()
	if valid {
		t.Kind = CharCon
		t.Text = string(rune(t.Val))
	}
}
