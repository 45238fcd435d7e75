package compiler

import (
	"fmt"
	"strings"
)

// ObjKind is the kind of a named entity in the symbol table.
type ObjKind int

const (
	ObjCon ObjKind = iota
	ObjVar
	ObjType
	ObjMeth
	ObjProg
)

func (k ObjKind) String() string {
	switch k {
	case ObjCon:
		return "Con"
	case ObjVar:
		return "Var"
	case ObjType:
		return "Type"
	case ObjMeth:
		return "Meth"
	case ObjProg:
		return "Prog"
	default:
		return "None"
	}
}

// Object is a symbol table entry.
type Object struct {
	Kind   ObjKind
	Name   string
	Type   *Type
	Val    int       // ObjCon: constant value
	Adr    int       // ObjVar: slot in its scope; ObjMeth: set by the code generator
	Level  int       // nesting level of the declaring scope
	NPars  int       // ObjMeth: number of parameters
	Locals []*Object // ObjMeth, ObjProg: parameters and locals in declaration order
}

// Params returns the formal parameters of a method.
func (o *Object) Params() []*Object {
	if o.NPars > len(o.Locals) {
		return o.Locals
	}
	return o.Locals[:o.NPars]
}

func (o *Object) String() string {
	return fmt.Sprintf("%s %s %s", o.Kind, o.Name, o.Type)
}

// NoObj is returned by failed lookups. Its type is NoType so checks on it
// never cascade.
var NoObj = &Object{Kind: ObjVar, Name: "???", Type: NoType}

// universe is the index of the outermost scope in the arena.
const universe = 0

type scope struct {
	outer  int // arena index of the enclosing scope, -1 for the universe
	locals []*Object
	nVars  int
}

// Table is the symbol table: an arena of scopes where each scope refers to
// its enclosing scope by index. Closed scopes stay in the arena but are no
// longer reachable from the current scope.
type Table struct {
	scopes []scope
	cur    int // arena index of the current scope
	level  int // nesting level of the current scope; -1 for the universe

	ChrObj *Object
	OrdObj *Object
	LenObj *Object
}

// NewTable returns a table whose universe holds the predeclared names.
func NewTable() *Table {
	t := &Table{}
	t.Reset()
	return t
}

// Reset discards every scope and rebuilds the universe.
func (t *Table) Reset() {
	t.scopes = t.scopes[:0]
	t.scopes = append(t.scopes, scope{outer: -1})
	t.cur = universe
	t.level = -1

	t.Insert(ObjType, "int", IntType)
	t.Insert(ObjType, "char", CharType)
	t.Insert(ObjCon, "null", NullType)
	t.ChrObj = t.predeclare("chr", CharType, "i", IntType)
	t.OrdObj = t.predeclare("ord", IntType, "ch", CharType)
	t.LenObj = t.predeclare("len", IntType, "a", NewArrayType(NoType))
}

func (t *Table) predeclare(name string, result *Type, par string, parType *Type) *Object {
	m := t.Insert(ObjMeth, name, result)
	m.NPars = 1
	m.Locals = []*Object{{Kind: ObjVar, Name: par, Type: parType, Level: 1}}
	return m
}

// OpenScope pushes a new scope nested in the current one.
func (t *Table) OpenScope() {
	t.scopes = append(t.scopes, scope{outer: t.cur})
	t.cur = len(t.scopes) - 1
	t.level++
}

// CloseScope pops the current scope. Closing the universe is an internal
// error and panics.
func (t *Table) CloseScope() {
	if t.cur == universe {
		panic("CloseScope called on the universe scope")
	}
	t.cur = t.scopes[t.cur].outer
	t.level--
}

// Level returns the nesting level of the current scope: -1 for the universe,
// 0 for the program scope.
func (t *Table) Level() int {
	return t.level
}

// Scope returns the arena index of the current scope.
func (t *Table) Scope() int {
	return t.cur
}

// Locals returns the objects of the current scope in declaration order.
func (t *Table) Locals() []*Object {
	locals := t.scopes[t.cur].locals
	out := make([]*Object, len(locals))
	copy(out, locals)
	return out
}

// NVars returns the number of variables declared in the current scope.
func (t *Table) NVars() int {
	return t.scopes[t.cur].nVars
}

// Insert creates an object in the current scope and returns it. Variables get
// the next free slot of the scope as address. Duplicates are not rejected.
func (t *Table) Insert(kind ObjKind, name string, typ *Type) *Object {
	s := &t.scopes[t.cur]
	obj := &Object{Kind: kind, Name: name, Type: typ, Level: t.level}
	if kind == ObjVar {
		obj.Adr = s.nVars
		s.nVars++
	}
	s.locals = append(s.locals, obj)
	return obj
}

// Lookup searches the current scope only.
func (t *Table) Lookup(name string) (*Object, bool) {
	return lookup(t.scopes[t.cur].locals, name)
}

// Find searches the current scope and then every enclosing scope. It returns
// NoObj if name is not declared.
func (t *Table) Find(name string) *Object {
	for i := t.cur; i >= 0; i = t.scopes[i].outer {
		if obj, ok := lookup(t.scopes[i].locals, name); ok {
			return obj
		}
	}
	return NoObj
}

// FindField searches the fields of a class type. It returns NoObj and
// ErrNotClass when typ is not a class, and NoObj alone when the field is
// absent. NoType yields NoObj without an error.
func (t *Table) FindField(name string, typ *Type) (*Object, error) {
	if typ == NoType {
		return NoObj, nil
	}
	if typ.Kind != TypeClass {
		return NoObj, ErrNotClass
	}
	if obj, ok := lookup(typ.Fields, name); ok {
		return obj, nil
	}
	return NoObj, nil
}

// lookup returns the most recently inserted object named name.
func lookup(locals []*Object, name string) (*Object, bool) {
	for i := len(locals) - 1; i >= 0; i-- {
		if locals[i].Name == name {
			return locals[i], true
		}
	}
	return nil, false
}

// String returns a dump of the scopes reachable from the current one,
// innermost first.
func (t *Table) String() string {
	var sb strings.Builder
	for i := t.cur; i >= 0; i = t.scopes[i].outer {
		fmt.Fprintf(&sb, "Scope %d:\n", i)
		locals := t.scopes[i].locals
		for j := len(locals) - 1; j >= 0; j-- {
			obj := locals[j]
			fmt.Fprintf(&sb, "  %-5s %-12s adr %-3d level %-2d %s\n", obj.Kind, obj.Name, obj.Adr, obj.Level, obj.Type)
		}
	}
	return sb.String()
}
