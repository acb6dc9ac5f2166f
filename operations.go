// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"log"
)

// Scanset returns the set of variables (levels) found when following the high
// branch of node n. This is the dual of function Makeset. The result may be nil
// if there is an error. The result is not necessarily sorted (but follows the
// level order).
func (b *BDD) Scanset(n Node) []int {
	if err := b.checkptr(n); err != nil {
		b.seterror(err, "in call to Scanset")
		return nil
	}
	if n.id < 2 {
		return nil
	}
	res := []int{}
	for i := n.id; i > 1; i = b.high(i) {
		res = append(res, int(b.level(i)))
	}
	return res
}

// Makeset returns a node corresponding to the conjunction (the cube) of all the
// variable in varset, in their positive form. It is such that
// scanset(Makeset(a)) == a. It returns nil and sets the error condition in b
// if one of the variables is outside the scope of the BDD (see documentation
// for function *Ithvar*).
func (b *BDD) Makeset(varset []int) Node {
	res := b.one
	for _, level := range varset {
		v := b.Ithvar(level)
		if v == nil {
			return nil
		}
		res = b.Apply(res, v, OPand)
		if res == nil {
			return nil
		}
	}
	return res
}

// Not returns the negation of the expression corresponding to node n. It
// negates a BDD by exchanging all references to the zero-terminal with
// references to the one-terminal and vice versa.
func (b *BDD) Not(n Node) Node {
	if err := b.checkptr(n); err != nil {
		return b.seterror(err, "wrong operand in call to Not")
	}
	b.initref()
	b.pushref(n.id)
	res := b.not(n.id)
	b.popref(1)
	return b.retnode(res)
}

func (b *BDD) not(n int) int {
	if n < 0 {
		return -1
	}
	if n == 0 {
		return 1
	}
	if n == 1 {
		return 0
	}
	// The hash for a not operation is simply n
	if res := b.matchnot(n); res >= 0 {
		return res
	}
	low := b.pushref(b.not(b.low(n)))
	high := b.pushref(b.not(b.high(n)))
	res := b.makenode(b.level(n), low, high)
	b.popref(2)
	return b.setnot(n, res)
}

// Apply performs all of the basic bdd operations with two operands, such as
// AND, OR etc. Left and right are the operand and opr is the requested
// operation and must be one of the following:
//
//	Identifier    Description            Truth table
//
//	OPand         logical and            [0,0,0,1]
//	OPxor         logical xor            [0,1,1,0]
//	OPor          logical or             [0,1,1,1]
//	OPnand        logical not-and        [1,1,1,0]
//	OPnor         logical not-or         [1,0,0,0]
//	OPimp         implication            [1,1,0,1]
//	OPbiimp       equivalence            [1,0,0,1]
//	OPdiff        set difference         [0,0,1,0]
//	OPless        less than              [0,1,0,0]
//	OPinvimp      reverse implication    [1,0,1,1]
func (b *BDD) Apply(left Node, right Node, op Operator) Node {
	if err := b.checkptr(left); err != nil {
		return b.seterror(err, "wrong operand in call to Apply %s(left, ...)", op)
	}
	if err := b.checkptr(right); err != nil {
		return b.seterror(err, "wrong operand in call to Apply %s(..., right)", op)
	}
	if op < OPand || op > OPinvimp {
		return b.seterror(ErrInvalidNode, "unauthorized operation (%s) in apply", op)
	}
	b.applycache.op = int(op)
	b.initref()
	b.pushref(left.id)
	b.pushref(right.id)
	res := b.apply(left.id, right.id)
	b.popref(2)
	return b.retnode(res)
}

func (b *BDD) apply(left int, right int) int {
	// we check for errors
	if left < 0 || right < 0 {
		return -1
	}
	switch Operator(b.applycache.op) {
	case OPand:
		if left == right {
			return left
		}
		if (left == 0) || (right == 0) {
			return 0
		}
		if left == 1 {
			return right
		}
		if right == 1 {
			return left
		}
	case OPor:
		if left == right {
			return left
		}
		if (left == 1) || (right == 1) {
			return 1
		}
		if left == 0 {
			return right
		}
		if right == 0 {
			return left
		}
	case OPxor:
		if left == right {
			return 0
		}
		if left == 0 {
			return right
		}
		if right == 0 {
			return left
		}
	case OPnand:
		if (left == 0) || (right == 0) {
			return 1
		}
	case OPnor:
		if (left == 1) || (right == 1) {
			return 0
		}
	case OPimp:
		if left == 0 {
			return 1
		}
		if left == 1 {
			return right
		}
		if right == 1 {
			return 1
		}
		if left == right {
			return 1
		}
	case OPbiimp:
		if left == right {
			return 1
		}
		if left == 1 {
			return right
		}
		if right == 1 {
			return left
		}
	case OPdiff:
		if left == right {
			return 0
		}
		if right == 1 {
			return 0
		}
		if left == 0 {
			return 0
		}
		if right == 0 {
			return left
		}
	case OPless:
		if (left == right) || (left == 1) {
			return 0
		}
		if left == 0 {
			return right
		}
	case OPinvimp:
		if right == 0 {
			return 1
		}
		if right == 1 {
			return left
		}
		if left == 1 {
			return 1
		}
		if left == right {
			return 1
		}
	default:
		// unary operations, OPnot and OPsimplify, should not be used in apply
		if _DEBUG {
			log.Panicf("unauthorized operation (%s) in apply", Operator(b.applycache.op))
		}
		return -1
	}

	// we deal with the other cases where the two operands are constants
	if (left < 2) && (right < 2) {
		return Operator(b.applycache.op).eval(left, right)
	}
	if Operator(b.applycache.op).commutative() && left > right {
		left, right = right, left
	}
	if res := b.matchapply(left, right); res >= 0 {
		return res
	}
	leftlvl := b.level(left)
	rightlvl := b.level(right)
	var res int
	if leftlvl == rightlvl {
		low := b.pushref(b.apply(b.low(left), b.low(right)))
		high := b.pushref(b.apply(b.high(left), b.high(right)))
		res = b.makenode(leftlvl, low, high)
	} else {
		if leftlvl < rightlvl {
			low := b.pushref(b.apply(b.low(left), right))
			high := b.pushref(b.apply(b.high(left), right))
			res = b.makenode(leftlvl, low, high)
		} else {
			low := b.pushref(b.apply(left, b.low(right)))
			high := b.pushref(b.apply(left, b.high(right)))
			res = b.makenode(rightlvl, low, high)
		}
	}
	b.popref(2)
	return b.setapply(left, right, res)
}

// Ite, short for if-then-else operator, computes the BDD for the expression [(f
// /\ g) \/ (not f /\ h)] more efficiently than doing the three operations
// separately.
func (b *BDD) Ite(f, g, h Node) Node {
	if err := b.checkptr(f); err != nil {
		return b.seterror(err, "wrong operand in call to Ite (f)")
	}
	if err := b.checkptr(g); err != nil {
		return b.seterror(err, "wrong operand in call to Ite (g)")
	}
	if err := b.checkptr(h); err != nil {
		return b.seterror(err, "wrong operand in call to Ite (h)")
	}
	b.initref()
	b.pushref(f.id)
	b.pushref(g.id)
	b.pushref(h.id)
	res := b.ite(f.id, g.id, h.id)
	b.popref(3)
	return b.retnode(res)
}

// cofactors returns the successors of n for the variable at level top. A node
// that does not test this variable is its own cofactor.
func (b *BDD) cofactors(n int, top int32) (int, int) {
	if b.level(n) != top {
		return n, n
	}
	return b.low(n), b.high(n)
}

func (b *BDD) ite(f, g, h int) int {
	// we check for possible errors
	if f < 0 || g < 0 || h < 0 {
		return -1
	}
	switch {
	case f == 1:
		return g
	case f == 0:
		return h
	case g == h:
		return g
	case (g == 1) && (h == 0):
		return f
	case (g == 0) && (h == 1):
		return b.not(f)
	}
	if res := b.matchite(f, g, h); res >= 0 {
		return res
	}
	top := min(b.level(f), b.level(g), b.level(h))
	f0, f1 := b.cofactors(f, top)
	g0, g1 := b.cofactors(g, top)
	h0, h1 := b.cofactors(h, top)
	low := b.pushref(b.ite(f0, g0, h0))
	high := b.pushref(b.ite(f1, g1, h1))
	res := b.makenode(top, low, high)
	b.popref(2)
	return b.setite(f, g, h, res)
}

// Exist returns the existential quantification of n for the variables in
// varset, where varset is a node built with a method such as Makeset. We return
// nil and set the error flag in b if there is an error.
func (b *BDD) Exist(n, varset Node) Node {
	if err := b.checkptr(n); err != nil {
		return b.seterror(err, "wrong node in call to Exist")
	}
	if err := b.checkptr(varset); err != nil {
		return b.seterror(err, "wrong varset in call to Exist")
	}
	if varset.id < 2 { // we have an empty set or a constant
		return n
	}
	if err := b.quantset2cache(varset.id); err != nil {
		return nil
	}
	b.quantcache.id = (int(b.quantsetID) << 2) | cacheid_EXIST
	b.applycache.op = int(OPor)
	b.initref()
	b.pushref(n.id)
	b.pushref(varset.id)
	res := b.exist(n.id, varset.id)
	b.popref(2)
	return b.retnode(res)
}

// exist is the recursive part of Exist. Levels below quantlast hold no
// quantified variable, so nodes there are kept as is.
func (b *BDD) exist(n, varset int) int {
	switch {
	case n < 0:
		return -1
	case n < 2, b.level(n) > b.quantlast:
		return n
	}
	if res := b.matchquant(n, varset); res >= 0 {
		return res
	}
	low := b.pushref(b.exist(b.low(n), varset))
	high := b.pushref(b.exist(b.high(n), varset))
	var res int
	if level := b.level(n); b.quantset[level] == b.quantsetID {
		// applycache.op is OPor
		res = b.apply(low, high)
	} else {
		res = b.makenode(level, low, high)
	}
	b.popref(2)
	return b.setquant(n, varset, res)
}
