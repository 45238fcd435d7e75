package compiler

import (
	"fmt"
	"io"
	"log/slog"
)

// Parser is a recursive-descent parser for MicroJava. It pulls tokens from a
// TokenSource one lookahead ahead, resolves names in a Table and drives a
// CodeGenerator while it recognizes the grammar:
//
//	Program    = "program" ident {ConstDecl | ClassDecl | VarDecl} "{" {MethodDecl} "}"
//	ConstDecl  = "final" Type ident "=" (number | charConst) ";"
//	ClassDecl  = "class" ident "{" {VarDecl} "}"
//	VarDecl    = Type ident {"," ident} ";"
//	Type       = ident ["[" "]"]
//	MethodDecl = (Type | "void") ident "(" [FormPars] ")" {VarDecl} Block
//	FormPars   = Type ident {"," Type ident}
//	Statement  = Designator ("=" Expr | ActPars) ";"
//	           | "if" "(" Condition ")" Statement ["else" Statement]
//	           | "while" "(" Condition ")" Statement
//	           | "return" [Expr] ";"
//	           | "read" "(" Designator ")" ";"
//	           | "print" "(" Expr ["," number] ")" ";"
//	           | Block | ";"
//	Block      = "{" {Statement} "}"
//	Designator = ident {"." ident | "[" Expr "]"}
//	ActPars    = "(" [Expr {"," Expr}] ")"
//	Condition  = Expr Relop Expr
//	Expr       = ["-"] Term {Addop Term}
//	Term       = Factor {Mulop Factor}
//	Factor     = Designator [ActPars] | number | charConst
//	           | "new" ident ["[" Expr "]"] | "(" Expr ")"
//
// A Parser may be reused; Parse resets all per-run state.
type Parser struct {
	tab  *Table
	gen  CodeGenerator
	opts Options
	log  *slog.Logger
	sets grammarSets

	src     TokenSource
	t       Token // most recently recognized token
	la      Token // lookahead token
	sym     Kind  // always la.Kind
	errDist int   // tokens recognized since the last syntax error
	errs    ErrorList

	prog      *Object
	entry     *Object
	curMethod *Object
	voids     map[*Object]bool
}

// TokenSource supplies tokens to the Parser.
type TokenSource interface {
	Next() Token
}

// Recovery selects how the parser resumes after a syntax error.
type Recovery int

const (
	// RecoveryNone relies on error-distance suppression only.
	RecoveryNone Recovery = iota
	// RecoverySync additionally skips to the next synchronization token in
	// blocks and declaration lists.
	RecoverySync
)

func (r Recovery) String() string {
	if r == RecoverySync {
		return "sync"
	}
	return "none"
}

// ParseRecovery maps a configuration value to a Recovery mode.
func ParseRecovery(s string) (Recovery, error) {
	switch s {
	case "", "none":
		return RecoveryNone, nil
	case "sync":
		return RecoverySync, nil
	}
	return RecoveryNone, fmt.Errorf("unknown recovery mode %q", s)
}

// Options tunes a Parser.
type Options struct {
	EntryPoint       string   // name of the required entry method
	Recovery         Recovery // resynchronization strategy
	DuplicateCheck   bool     // report names declared twice in one scope
	MinErrorDistance int      // tokens that must separate two reported syntax errors
	Logger           *slog.Logger
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		EntryPoint:       "main",
		Recovery:         RecoveryNone,
		DuplicateCheck:   true,
		MinErrorDistance: 3,
	}
}

// NewParser returns a parser that declares names in tab and reports
// operations to gen.
func NewParser(tab *Table, gen CodeGenerator, opts Options) *Parser {
	if opts.EntryPoint == "" {
		opts.EntryPoint = "main"
	}
	if opts.MinErrorDistance <= 0 {
		opts.MinErrorDistance = 3
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Parser{
		tab:  tab,
		gen:  gen,
		opts: opts,
		log:  log,
		sets: newGrammarSets(),
	}
}

// Parse recognizes one compilation unit and returns the number of reported
// errors, lexical ones included.
func (p *Parser) Parse(src TokenSource) int {
	p.src = src
	p.tab.Reset()
	p.t, p.la = Token{}, Token{}
	p.errs = nil
	p.errDist = p.opts.MinErrorDistance
	p.prog, p.entry, p.curMethod = nil, nil, nil
	p.voids = make(map[*Object]bool)

	p.scan()
	p.program()
	if p.sym != EOF {
		p.error("end of file found before end of program")
	}
	if p.entry == nil {
		p.errs.Add(Semantic, p.la.Line, p.la.Col,
			fmt.Sprintf("program contains no '%s' method", p.opts.EntryPoint))
	}
	return len(p.errs)
}

// Errors returns the diagnostics of the last Parse in report order.
func (p *Parser) Errors() ErrorList {
	return p.errs
}

// Program returns the program object of the last Parse.
func (p *Parser) Program() *Object {
	return p.prog
}

// Entry returns the entry method of the last Parse, or nil.
func (p *Parser) Entry() *Object {
	return p.entry
}

// LexicalError is an ErrorHandler that records scanner errors.
func (p *Parser) LexicalError(line, col int, msg string) {
	p.errs.Add(Lexical, line, col, msg)
}

// scan makes the lookahead the current token and reads a new lookahead.
func (p *Parser) scan() {
	p.t = p.la
	p.la = p.src.Next()
	p.sym = p.la.Kind
	p.errDist++
}

// check consumes the lookahead if it is of kind expected and reports an error
// without consuming anything otherwise.
func (p *Parser) check(expected Kind) {
	if p.sym == expected {
		p.scan()
	} else {
		p.error(expected.String() + " expected")
	}
}

// expectIdent consumes an identifier and returns its name.
func (p *Parser) expectIdent() (string, bool) {
	if p.sym != Ident {
		p.error(Ident.String() + " expected")
		return "", false
	}
	p.scan()
	return p.t.Text, true
}

// error reports a syntax error at the lookahead token unless another one was
// reported less than MinErrorDistance tokens ago.
func (p *Parser) error(msg string) {
	if p.errDist >= p.opts.MinErrorDistance {
		p.errs.Add(Syntax, p.la.Line, p.la.Col, msg)
	}
	p.errDist = 0
}

// semError reports a semantic error at the current token. Semantic errors are
// never suppressed.
func (p *Parser) semError(format string, args ...any) {
	p.errs.Add(Semantic, p.t.Line, p.t.Col, fmt.Sprintf(format, args...))
}

// recover reports msg and skips at least one token, stopping at the first
// token in set.
func (p *Parser) recover(msg string, set kindSet) {
	p.error(msg)
	for {
		p.scan()
		if set.has(p.sym) || p.sym == EOF {
			return
		}
	}
}

func (p *Parser) syncing() bool {
	return p.opts.Recovery == RecoverySync
}

// declare inserts a name into the current scope. Without a name it returns
// an object that is not entered anywhere.
func (p *Parser) declare(kind ObjKind, name string, typ *Type) *Object {
	if name == "" {
		return &Object{Kind: kind, Name: NoObj.Name, Type: typ}
	}
	if p.opts.DuplicateCheck {
		if _, dup := p.tab.Lookup(name); dup {
			p.semError("%s declared twice", name)
		}
	}
	return p.tab.Insert(kind, name, typ)
}

func (p *Parser) openScope(owner string) {
	p.tab.OpenScope()
	p.log.Debug("open scope", "owner", owner, "level", p.tab.Level(), "line", p.t.Line)
}

func (p *Parser) closeScope(owner string) {
	p.log.Debug("close scope", "owner", owner, "level", p.tab.Level(), "vars", p.tab.NVars())
	p.tab.CloseScope()
}
