package compiler

// designator = ident {"." ident | "[" Expr "]"}
func (p *Parser) designator() *Operand {
	obj := NoObj
	if name, ok := p.expectIdent(); ok {
		obj = p.tab.Find(name)
		switch {
		case obj == NoObj:
			p.semError("%s not declared", name)
		case obj.Kind == ObjType || obj.Kind == ObjProg:
			p.semError("%s is not a value", name)
		}
	}
	x := NewOperand(obj)

	for p.sym == Period || p.sym == LBrack {
		if x.Kind == OpMeth {
			p.semError("method %s must be called", x.Obj.Name)
			x = NewStackOperand(NoType)
		}
		if p.sym == Period {
			p.scan()
			name, ok := p.expectIdent()
			if !ok {
				x = NewStackOperand(NoType)
				continue
			}
			fld, err := p.tab.FindField(name, x.Type)
			if err != nil {
				p.semError("%s: %v", describe(x), err)
			} else if fld == NoObj && x.Type != NoType {
				p.semError("%s is not a field", name)
			}
			p.gen.Load(x)
			x = &Operand{Kind: OpFld, Adr: fld.Adr, Type: fld.Type, Obj: fld}
			continue
		}

		p.scan()
		elem := NoType
		switch {
		case x.Type.Kind == TypeArr:
			elem = x.Type.Elem
		case x.Type != NoType:
			p.semError("%s is not an array", describe(x))
		}
		p.gen.Load(x)
		index := p.expr()
		if index.Type != IntType && index.Type != NoType {
			p.semError("index must be of type int")
		}
		p.gen.Index(x, index)
		x = &Operand{Kind: OpElem, Type: elem, Obj: NoObj}
		p.check(RBrack)
	}
	return x
}

// describe names x in a message: the declared name when there is one,
// otherwise the type of the computed value.
func describe(x *Operand) string {
	if x.Obj != NoObj {
		return x.Obj.Name
	}
	return x.Type.String()
}

// call parses ActPars for the designated method and emits the call. It
// returns the operand holding the result.
func (p *Parser) call(x *Operand) *Operand {
	var m *Object
	switch {
	case x.Kind == OpMeth:
		m = x.Obj
	case x.Type != NoType:
		p.semError("%s is not a method", describe(x))
	}
	p.actPars(m)
	if m == nil {
		return NewStackOperand(NoType)
	}
	p.gen.Call(m)
	return NewStackOperand(m.Type)
}

// actPars = "(" [Expr {"," Expr}] ")"
//
// The actual parameters are checked against the formals of m in order; m
// may be nil when the callee is unknown.
func (p *Parser) actPars(m *Object) {
	p.check(LPar)
	var formals []*Object
	if m != nil {
		formals = m.Params()
	}
	n := 0
	if p.sets.firstExpr.has(p.sym) {
		for {
			ap := p.expr()
			p.gen.Load(ap)
			if m != nil && n < len(formals) && !ap.Type.AssignableTo(formals[n].Type) {
				p.semError("parameter %d of %s: type mismatch", n+1, m.Name)
			}
			n++
			if p.sym != Comma {
				break
			}
			p.scan()
		}
	}
	if m != nil {
		switch {
		case n > len(formals):
			p.semError("too many actual parameters for %s", m.Name)
		case n < len(formals):
			p.semError("too few actual parameters for %s", m.Name)
		}
	}
	p.check(RPar)
}

// checkArith reports operands that cannot take part in arithmetic.
func (p *Parser) checkArith(x *Operand) {
	if !x.Type.IsArith() {
		p.semError("operand must be of type int or char")
	}
}

// arithType is the result type of an arithmetic operation. Errors in either
// operand yield NoType so they are not reported again.
func arithType(x, y *Operand) *Type {
	if x.Type == NoType || y.Type == NoType || !x.Type.IsArith() || !y.Type.IsArith() {
		return NoType
	}
	return IntType
}

// expr = ["-"] Term {Addop Term}
func (p *Parser) expr() *Operand {
	neg := false
	if p.sym == Minus {
		p.scan()
		neg = true
	}
	x := p.term()
	if neg {
		p.checkArith(x)
		typ := arithType(x, x)
		p.gen.Neg(x)
		x = NewStackOperand(typ)
	}
	for p.sym == Plus || p.sym == Minus {
		op := p.sym
		p.scan()
		p.checkArith(x)
		p.gen.Load(x)
		y := p.term()
		p.checkArith(y)
		typ := arithType(x, y)
		if op == Plus {
			p.gen.Add(x, y)
		} else {
			p.gen.Sub(x, y)
		}
		x = NewStackOperand(typ)
	}
	return x
}

// term = Factor {Mulop Factor}
func (p *Parser) term() *Operand {
	x := p.factor()
	for p.sym == Times || p.sym == Slash || p.sym == Rem {
		op := p.sym
		p.scan()
		p.checkArith(x)
		p.gen.Load(x)
		y := p.factor()
		p.checkArith(y)
		typ := arithType(x, y)
		switch op {
		case Times:
			p.gen.Mul(x, y)
		case Slash:
			p.gen.Div(x, y)
		default:
			p.gen.Rem(x, y)
		}
		x = NewStackOperand(typ)
	}
	return x
}

// factor = Designator [ActPars] | number | charConst
//
//	| "new" ident ["[" Expr "]"] | "(" Expr ")"
func (p *Parser) factor() *Operand {
	switch p.sym {
	case Ident:
		x := p.designator()
		if p.sym == LPar {
			if x.Kind == OpMeth && p.voids[x.Obj] {
				p.semError("void method %s used in an expression", x.Obj.Name)
			}
			return p.call(x)
		}
		if x.Kind == OpMeth {
			p.semError("method %s must be called", x.Obj.Name)
			return NewStackOperand(NoType)
		}
		return x

	case Number:
		p.scan()
		return NewConOperand(p.t.Val, IntType)

	case CharCon:
		p.scan()
		return NewConOperand(p.t.Val, CharType)

	case New:
		p.scan()
		typ := NoType
		name, ok := p.expectIdent()
		if ok {
			if obj := p.tab.Find(name); obj.Kind == ObjType {
				typ = obj.Type
			} else {
				p.semError("%s is not a valid type", name)
			}
		}
		if p.sym == LBrack {
			p.scan()
			n := p.expr()
			if n.Type != IntType && n.Type != NoType {
				p.semError("array size must be of type int")
			}
			p.check(RBrack)
			p.gen.New(typ, n)
			return NewStackOperand(NewArrayType(typ))
		}
		if typ != NoType && typ.Kind != TypeClass {
			p.semError("%s is not a class", name)
		}
		p.gen.New(typ, nil)
		return NewStackOperand(typ)

	case LPar:
		p.scan()
		x := p.expr()
		p.check(RPar)
		return x
	}

	p.error("invalid start of factor")
	return NewStackOperand(NoType)
}
