package compiler

import "fmt"

// OperandKind tells the code generator how an Operand is addressed.
type OperandKind int

const (
	OpCon    OperandKind = iota // constant; Val holds the value
	OpLocal                     // local variable; Adr is the slot in the method frame
	OpStatic                    // global variable; Adr is the slot in the data area
	OpStack                     // value already computed onto the expression stack
	OpFld                       // object field; base reference on the stack, Adr is the field index
	OpElem                      // array element; base and index on the stack
	OpMeth                      // method; Obj is the method object
)

var operandNames = [...]string{
	OpCon:    "Con",
	OpLocal:  "Local",
	OpStatic: "Static",
	OpStack:  "Stack",
	OpFld:    "Fld",
	OpElem:   "Elem",
	OpMeth:   "Meth",
}

func (k OperandKind) String() string {
	if int(k) >= 0 && int(k) < len(operandNames) {
		return operandNames[k]
	}
	return fmt.Sprintf("OperandKind(%d)", int(k))
}

// Operand is the resolved, typed result of a designator or expression as
// handed to the code generator.
//
//	x          Operand{Kind: OpLocal, Adr: 0, Type: int}
//	a[i]       Operand{Kind: OpElem, Type: int}
//	p.next     Operand{Kind: OpFld, Adr: 1, Type: Node}
//	'a'        Operand{Kind: OpCon, Val: 97, Type: char}
type Operand struct {
	Kind OperandKind
	Val  int
	Adr  int
	Type *Type
	Obj  *Object // the designated object, NoObj for computed values
}

// NewOperand builds the operand that designates obj.
func NewOperand(obj *Object) *Operand {
	x := &Operand{Type: obj.Type, Obj: obj, Val: obj.Val, Adr: obj.Adr}
	switch obj.Kind {
	case ObjCon:
		x.Kind = OpCon
	case ObjVar:
		if obj.Level == 0 {
			x.Kind = OpStatic
		} else {
			x.Kind = OpLocal
		}
	case ObjMeth:
		x.Kind = OpMeth
	default:
		// Type and program names are not values; the parser reports them.
		x.Kind = OpStack
		x.Type = NoType
	}
	return x
}

// NewConOperand returns a constant operand.
func NewConOperand(val int, typ *Type) *Operand {
	return &Operand{Kind: OpCon, Val: val, Type: typ, Obj: NoObj}
}

// NewStackOperand returns an operand for a value already on the expression stack.
func NewStackOperand(typ *Type) *Operand {
	return &Operand{Kind: OpStack, Type: typ, Obj: NoObj}
}

// Assignable reports whether x designates a storage location.
func (x *Operand) Assignable() bool {
	switch x.Kind {
	case OpLocal, OpStatic, OpFld, OpElem:
		return true
	}
	return false
}

func (x *Operand) String() string {
	switch x.Kind {
	case OpCon:
		return fmt.Sprintf("Con(%d %s)", x.Val, x.Type)
	case OpLocal, OpStatic:
		return fmt.Sprintf("%s(%s@%d %s)", x.Kind, x.Obj.Name, x.Adr, x.Type)
	case OpFld:
		return fmt.Sprintf("Fld(%s@%d %s)", x.Obj.Name, x.Adr, x.Type)
	case OpMeth:
		return fmt.Sprintf("Meth(%s)", x.Obj.Name)
	}
	return fmt.Sprintf("%s(%s)", x.Kind, x.Type)
}
