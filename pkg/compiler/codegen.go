package compiler

import (
	"fmt"
	"strings"
)

// CodeGenerator is the back end driven by the Parser. The parser calls it in
// source order as soon as the operands of an operation are known, so a
// generator can emit instructions for a stack machine directly.
//
// Operand handling follows a load-before-use protocol: the parser calls Load
// on the left operand of a binary operation before it parses the right one,
// and on the base of a field or element access before it parses the index.
// Load on an operand that is already on the stack must be a no-op.
type CodeGenerator interface {
	Load(x *Operand)
	Store(dst, src *Operand)

	Add(x, y *Operand)
	Sub(x, y *Operand)
	Mul(x, y *Operand)
	Div(x, y *Operand)
	Rem(x, y *Operand)
	Neg(x *Operand)

	// Index addresses element index of the array base, which is loaded already.
	Index(base, index *Operand)
	// New allocates an object of class t, or an array of t when length is non-nil.
	New(t *Type, length *Operand)

	Call(m *Object)
	// Pop discards the value of a call made as a statement.
	Pop(x *Operand)
	Return(x *Operand) // x is nil in void methods
	Read(x *Operand)
	Print(x *Operand, width int)

	// Pc returns the address of the next instruction.
	Pc() int
	// FalseJump emits a jump taken when "x op y" is false and returns the
	// address to patch with Fixup.
	FalseJump(op Kind, x, y *Operand) int
	// Jump emits an unconditional jump to target and returns its patch address.
	Jump(target int) int
	// Fixup patches the jump at adr to continue at the current Pc.
	Fixup(adr int)

	EnterMethod(m *Object)
	ExitMethod(m *Object)
}

// Trace is a CodeGenerator that records every call as one line of text. It
// stands in for a real back end in tests and in `mjc trace`.
type Trace struct {
	out   strings.Builder
	pc    int
	lines int
}

// NewTrace returns an empty Trace.
func NewTrace() *Trace {
	return &Trace{}
}

func (g *Trace) line(format string, args ...any) {
	fmt.Fprintf(&g.out, "%4d  "+format+"\n", append([]any{g.pc}, args...)...)
	g.pc++
	g.lines++
}

func (g *Trace) comment(format string, args ...any) {
	fmt.Fprintf(&g.out, "      ; "+format+"\n", args...)
}

func (g *Trace) Load(x *Operand) {
	if x.Kind == OpStack {
		return
	}
	g.line("load %s", x)
	x.Kind = OpStack
}

func (g *Trace) Store(dst, src *Operand) {
	g.Load(src)
	g.line("store %s", dst)
}

func (g *Trace) binary(op string, x, y *Operand) {
	g.Load(x)
	g.Load(y)
	g.line("%s", op)
	x.Kind = OpStack
}

func (g *Trace) Add(x, y *Operand) { g.binary("add", x, y) }
func (g *Trace) Sub(x, y *Operand) { g.binary("sub", x, y) }
func (g *Trace) Mul(x, y *Operand) { g.binary("mul", x, y) }
func (g *Trace) Div(x, y *Operand) { g.binary("div", x, y) }
func (g *Trace) Rem(x, y *Operand) { g.binary("rem", x, y) }

func (g *Trace) Neg(x *Operand) {
	g.Load(x)
	g.line("neg")
}

func (g *Trace) Index(base, index *Operand) {
	g.Load(index)
	g.line("index %s", base.Type)
}

func (g *Trace) New(t *Type, length *Operand) {
	if length != nil {
		g.Load(length)
		g.line("newarray %s", t)
		return
	}
	g.line("new %s", t)
}

func (g *Trace) Call(m *Object) {
	g.line("call %s", m.Name)
}

func (g *Trace) Pop(x *Operand) {
	g.line("pop")
}

func (g *Trace) Return(x *Operand) {
	if x != nil {
		g.Load(x)
	}
	g.line("return")
}

func (g *Trace) Read(x *Operand) {
	g.line("read %s", x.Type)
	g.line("store %s", x)
}

func (g *Trace) Print(x *Operand, width int) {
	g.Load(x)
	g.line("print %s width %d", x.Type, width)
}

func (g *Trace) Pc() int {
	return g.pc
}

func (g *Trace) FalseJump(op Kind, x, y *Operand) int {
	g.Load(x)
	g.Load(y)
	adr := g.pc
	g.line("jump if not %s", op)
	return adr
}

func (g *Trace) Jump(target int) int {
	adr := g.pc
	g.line("jump %d", target)
	return adr
}

func (g *Trace) Fixup(adr int) {
	g.comment("fixup %d -> %d", adr, g.pc)
}

func (g *Trace) EnterMethod(m *Object) {
	m.Adr = g.pc
	g.comment("method %s", m.Name)
	g.line("enter %d %d", m.NPars, len(m.Locals))
}

func (g *Trace) ExitMethod(m *Object) {
	g.line("exit")
}

// Len returns the number of recorded instructions.
func (g *Trace) Len() int {
	return g.lines
}

// String returns the recorded trace.
func (g *Trace) String() string {
	return g.out.String()
}

// Instructions returns the recorded instructions without addresses and
// comments.
func (g *Trace) Instructions() []string {
	var out []string
	for _, l := range strings.Split(g.out.String(), "\n") {
		l = strings.TrimSpace(l)
		if l == "" || strings.HasPrefix(l, ";") {
			continue
		}
		if _, rest, ok := strings.Cut(l, "  "); ok {
			l = strings.TrimSpace(rest)
		}
		out = append(out, l)
	}
	return out
}
