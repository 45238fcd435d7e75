package compiler

// program = "program" ident {ConstDecl | ClassDecl | VarDecl} "{" {MethodDecl} "}"
func (p *Parser) program() {
	p.check(Program)
	name, _ := p.expectIdent()
	p.prog = p.declare(ObjProg, name, NoType)
	p.openScope(p.prog.Name)

decls:
	for {
		switch p.sym {
		case Final:
			p.constDecl()
		case Class:
			p.classDecl()
		case Ident:
			p.varDecl()
		case LBrace, Void, EOF:
			break decls
		default:
			if !p.syncing() {
				break decls
			}
			p.recover("invalid declaration", p.sets.syncDecl)
		}
	}

	p.check(LBrace)
	for p.sym != RBrace && p.sym != EOF {
		if p.sym == Ident || p.sym == Void {
			p.methodDecl()
			continue
		}
		if !p.syncing() {
			break
		}
		p.recover("invalid method declaration", p.sets.syncDecl)
	}
	p.check(RBrace)

	p.prog.Locals = p.tab.Locals()
	p.closeScope(p.prog.Name)
}

// constDecl = "final" Type ident "=" (number | charConst) ";"
func (p *Parser) constDecl() {
	p.check(Final)
	typ := p.typ()
	name, _ := p.expectIdent()
	obj := p.declare(ObjCon, name, typ)
	p.check(Assign)

	switch p.sym {
	case Number, CharCon:
		p.scan()
		litType := IntType
		if p.t.Kind == CharCon {
			litType = CharType
		}
		if !litType.AssignableTo(typ) {
			p.semError("incompatible types in constant declaration of %s", obj.Name)
		}
		obj.Val = p.t.Val
	default:
		p.error("number or char constant expected")
	}
	p.check(Semicolon)
}

// classDecl = "class" ident "{" {VarDecl} "}"
func (p *Parser) classDecl() {
	p.check(Class)
	name, _ := p.expectIdent()
	typ := NewClassType()
	p.declare(ObjType, name, typ)
	p.check(LBrace)

	p.openScope(name)
	for p.sym == Ident {
		p.varDecl()
	}
	typ.Fields = p.tab.Locals()
	typ.NFields = p.tab.NVars()
	p.closeScope(name)

	p.check(RBrace)
}

// varDecl = Type ident {"," ident} ";"
func (p *Parser) varDecl() {
	typ := p.typ()
	for {
		if name, ok := p.expectIdent(); ok {
			p.declare(ObjVar, name, typ)
		}
		if p.sym != Comma {
			break
		}
		p.scan()
	}
	p.check(Semicolon)
}

// typ = ident ["[" "]"]
//
// A name that does not denote a type yields NoType.
func (p *Parser) typ() *Type {
	typ := NoType
	if name, ok := p.expectIdent(); ok {
		obj := p.tab.Find(name)
		if obj.Kind == ObjType {
			typ = obj.Type
		} else {
			p.semError("%s is not a valid type", name)
		}
	}
	if p.sym == LBrack {
		p.scan()
		p.check(RBrack)
		typ = NewArrayType(typ)
	}
	return typ
}

// methodDecl = (Type | "void") ident "(" [FormPars] ")" {VarDecl} Block
func (p *Parser) methodDecl() {
	typ := NoType
	void := false
	if p.sym == Void {
		p.scan()
		void = true
	} else {
		typ = p.typ()
	}
	name, _ := p.expectIdent()
	m := p.declare(ObjMeth, name, typ)
	if void {
		p.voids[m] = true
	}
	p.curMethod = m

	p.openScope(m.Name)
	p.check(LPar)
	if p.sym == Ident {
		p.formPars()
	}
	m.NPars = p.tab.NVars()
	m.Locals = p.tab.Locals()
	p.check(RPar)

	if name == p.opts.EntryPoint && p.tab.Level() == 1 {
		p.entry = m
		if !void {
			p.semError("%s must be void", name)
		}
		if m.NPars > 0 {
			p.semError("%s must not have parameters", name)
		}
	}

	for p.sym == Ident {
		p.varDecl()
	}
	m.Locals = p.tab.Locals()

	p.gen.EnterMethod(m)
	p.log.Debug("method", "name", m.Name, "params", m.NPars, "locals", len(m.Locals))
	p.block()
	p.gen.ExitMethod(m)

	m.Locals = p.tab.Locals()
	p.closeScope(m.Name)
	p.curMethod = nil
}

// formPars = Type ident {"," Type ident}
func (p *Parser) formPars() {
	for {
		typ := p.typ()
		if name, ok := p.expectIdent(); ok {
			p.declare(ObjVar, name, typ)
		}
		if p.sym != Comma {
			break
		}
		p.scan()
	}
}
