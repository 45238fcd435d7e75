package compiler

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result describes one compilation unit.
type Result struct {
	ID       uuid.UUID
	Errors   ErrorList
	Program  *Object // program object with its global declarations
	Entry    *Object // entry method, nil if missing
	Duration time.Duration
}

// OK reports whether code generation may proceed: no errors and an entry
// method.
func (r *Result) OK() bool {
	return len(r.Errors) == 0 && r.Entry != nil
}

// Compile scans and parses src, driving gen with the recognized operations.
// A nil gen discards them. The returned error is nil exactly when r.OK().
func Compile(src string, gen CodeGenerator, opts Options) (*Result, error) {
	if gen == nil {
		gen = NewTrace()
	}
	start := time.Now()
	res := &Result{ID: uuid.New()}

	p := NewParser(NewTable(), gen, opts)
	n := p.Parse(NewScanner(src, p.LexicalError))

	res.Errors = p.Errors()
	res.Program = p.Program()
	res.Entry = p.Entry()
	res.Duration = time.Since(start)

	p.log.Info("compiled",
		"unit", res.ID.String(),
		"program", res.Program.Name,
		"errors", n,
		"duration", res.Duration)

	switch {
	case res.Entry == nil:
		return res, fmt.Errorf("%w: %w", ErrNoEntry, res.Errors)
	case n > 0:
		return res, res.Errors
	}
	return res, nil
}

// Lex tokenises src and returns all tokens including the final EOF token,
// together with the lexical errors found on the way.
func Lex(src string) ([]Token, ErrorList) {
	var errs ErrorList
	s := NewScanner(src, func(line, col int, msg string) {
		errs.Add(Lexical, line, col, msg)
	})
	var tokens []Token
	for {
		tok := s.Next()
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens, errs
		}
	}
}
