package compiler

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorKind classifies a diagnostic by the phase that produced it.
type ErrorKind int

const (
	Lexical ErrorKind = iota
	Syntax
	Semantic
)

func (k ErrorKind) String() string {
	switch k {
	case Lexical:
		return "lexical"
	case Syntax:
		return "syntax"
	case Semantic:
		return "semantic"
	default:
		return "unknown"
	}
}

// MarshalText lets report encoders write the kind by name.
func (k ErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

var (
	// ErrNotClass is returned by FindField when the searched type is not a class.
	ErrNotClass = errors.New("not a class")

	// ErrNoEntry marks a program without an entry method.
	ErrNoEntry = errors.New("program contains no entry method")
)

// Diagnostic is a single reported error.
type Diagnostic struct {
	Kind ErrorKind `yaml:"kind"`
	Line int       `yaml:"line"`
	Col  int       `yaml:"col"`
	Msg  string    `yaml:"message"`
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("line %d col %d: %s", d.Line, d.Col, d.Msg)
}

// ErrorHandler receives lexical errors from the Scanner.
type ErrorHandler func(line, col int, msg string)

// ErrorList collects diagnostics in report order.
type ErrorList []Diagnostic

// Add appends a diagnostic.
func (l *ErrorList) Add(kind ErrorKind, line, col int, msg string) {
	*l = append(*l, Diagnostic{Kind: kind, Line: line, Col: col, Msg: msg})
}

// Count returns the number of diagnostics of the given kind.
func (l ErrorList) Count(kind ErrorKind) int {
	n := 0
	for _, d := range l {
		if d.Kind == kind {
			n++
		}
	}
	return n
}

// Sort orders the list by position, keeping report order for equal positions.
func (l ErrorList) Sort() {
	sort.SliceStable(l, func(i, j int) bool {
		if l[i].Line != l[j].Line {
			return l[i].Line < l[j].Line
		}
		return l[i].Col < l[j].Col
	})
}

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	}
	var sb strings.Builder
	for i, d := range l {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(d.Error())
	}
	return sb.String()
}

// Err returns nil for an empty list and the list itself otherwise.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}
