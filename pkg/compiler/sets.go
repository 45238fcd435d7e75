package compiler

// kindSet is a set of token kinds. Every Kind fits into one bit.
type kindSet uint64

func setOf(kinds ...Kind) kindSet {
	var s kindSet
	for _, k := range kinds {
		s |= 1 << uint(k)
	}
	return s
}

func (s kindSet) has(k Kind) bool {
	return s&(1<<uint(k)) != 0
}

func (s kindSet) with(kinds ...Kind) kindSet {
	return s | setOf(kinds...)
}

func (s kindSet) without(kinds ...Kind) kindSet {
	return s &^ setOf(kinds...)
}

// grammarSets holds the first and recovery sets consulted by the parser.
type grammarSets struct {
	firstExpr kindSet // tokens that can start an Expr
	firstStat kindSet // tokens that can start a Statement
	syncStat  kindSet // resume points inside a Block
	syncDecl  kindSet // resume points in declaration lists
}

func newGrammarSets() grammarSets {
	var g grammarSets
	g.firstExpr = setOf(Ident, Number, CharCon, New, LPar, Minus)
	g.firstStat = setOf(Ident, If, While, Read, Return, Print, LBrace, Semicolon)
	// An identifier may start a statement or continue a broken one, so it is
	// no resume point.
	g.syncStat = g.firstStat.without(Ident).with(RBrace, EOF)
	g.syncDecl = setOf(Final, Ident, Class, LBrace, Void, EOF)
	return g
}
