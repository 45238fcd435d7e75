package compiler

// block = "{" {Statement} "}"
func (p *Parser) block() {
	p.check(LBrace)
	for p.sym != RBrace && p.sym != EOF {
		if p.sets.firstStat.has(p.sym) {
			p.statement()
			continue
		}
		if !p.syncing() {
			break
		}
		p.recover("invalid statement", p.sets.syncStat)
	}
	p.check(RBrace)
}

func (p *Parser) statement() {
	switch p.sym {
	case Ident:
		x := p.designator()
		switch p.sym {
		case Assign:
			p.scan()
			y := p.expr()
			if !x.Assignable() {
				p.semError("cannot assign to %s", describe(x))
			} else if !y.Type.AssignableTo(x.Type) {
				p.semError("incompatible types in assignment")
			}
			p.gen.Store(x, y)
		case LPar:
			if r := p.call(x); r.Type != NoType {
				p.gen.Pop(r)
			}
		default:
			p.error("assignment or call expected")
		}
		p.check(Semicolon)

	case If:
		p.scan()
		p.check(LPar)
		adr := p.condition()
		p.check(RPar)
		p.statement()
		if p.sym == Else {
			p.scan()
			end := p.gen.Jump(0)
			p.gen.Fixup(adr)
			p.statement()
			p.gen.Fixup(end)
		} else {
			p.gen.Fixup(adr)
		}

	case While:
		p.scan()
		top := p.gen.Pc()
		p.check(LPar)
		adr := p.condition()
		p.check(RPar)
		p.statement()
		p.gen.Jump(top)
		p.gen.Fixup(adr)

	case Return:
		p.scan()
		p.returnStatement()
		p.check(Semicolon)

	case Read:
		p.scan()
		p.check(LPar)
		x := p.designator()
		if !x.Assignable() {
			p.semError("cannot read into %s", describe(x))
		} else if x.Type != IntType && x.Type != CharType && x.Type != NoType {
			p.semError("can only read int or char variables")
		}
		p.gen.Read(x)
		p.check(RPar)
		p.check(Semicolon)

	case Print:
		p.scan()
		p.check(LPar)
		x := p.expr()
		if x.Type != IntType && x.Type != CharType && x.Type != NoType {
			p.semError("can only print int or char values")
		}
		width := 0
		if p.sym == Comma {
			p.scan()
			if p.sym == Number {
				p.scan()
				width = p.t.Val
			} else {
				p.error(Number.String() + " expected")
			}
		}
		p.gen.Print(x, width)
		p.check(RPar)
		p.check(Semicolon)

	case LBrace:
		p.block()

	case Semicolon:
		p.scan()

	default:
		p.error("invalid statement")
	}
}

// returnStatement = [Expr], after "return".
func (p *Parser) returnStatement() {
	m := p.curMethod
	void := m == nil || p.voids[m]
	if !p.sets.firstExpr.has(p.sym) {
		if !void {
			p.semError("return value expected")
		}
		p.gen.Return(nil)
		return
	}
	x := p.expr()
	if void {
		p.semError("void method must not return a value")
	} else if !x.Type.AssignableTo(m.Type) {
		p.semError("return type does not match %s", m.Type)
	}
	p.gen.Return(x)
}

// condition = Expr Relop Expr
//
// It returns the patch address of the jump taken when the condition is false.
func (p *Parser) condition() int {
	x := p.expr()
	p.gen.Load(x)

	op := p.sym
	switch op {
	case Eql, Neq, Lss, Leq, Gtr, Geq:
		p.scan()
	default:
		p.error("relational operator expected")
		op = Eql
	}

	y := p.expr()
	if !x.Type.Compatible(y.Type) {
		p.semError("incompatible types in condition")
	} else if (x.Type.IsRef() || y.Type.IsRef()) && op != Eql && op != Neq {
		p.semError("only == and != may compare references")
	}
	return p.gen.FalseJump(op, x, y)
}
