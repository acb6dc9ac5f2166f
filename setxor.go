// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// SetXor computes the literal-wise symmetric difference of two sets of
// literals, each represented by a cube (a conjunction of literals). A variable
// occurring in both cubes yields a literal whose polarity is the exclusive or
// of the two polarities; a variable occurring in only one cube is kept as is.
// For instance the result of SetXor on (x0 & -x1) and (x0 & x1 & x2) is
// (-x0 & x1 & x2).
//
// For operands that are not cubes, the operation distributes over the paths of
// each operand and the result is the disjunction of the cubes obtained for
// every pair of paths. The operation is commutative and, for cubes with the
// same support, SetXor(b, SetXor(a, b)) is equal to a.
func (b *BDD) SetXor(left, right Node) Node {
	if err := b.checkptr(left); err != nil {
		return b.seterror(err, "wrong operand in call to SetXor (left)")
	}
	if err := b.checkptr(right); err != nil {
		return b.seterror(err, "wrong operand in call to SetXor (right)")
	}
	// partial results are combined with a disjunction
	b.applycache.op = int(OPor)
	b.initref()
	b.pushref(left.id)
	b.pushref(right.id)
	res := b.setxor(left.id, right.id)
	b.popref(2)
	return b.retnode(res)
}

func (b *BDD) setxor(left, right int) int {
	if left < 0 || right < 0 {
		return -1
	}
	switch {
	case left == 0 || right == 0:
		return 0
	case left == 1:
		return right
	case right == 1:
		return left
	}
	if left > right {
		left, right = right, left
	}
	if res := b.matchsetxor(left, right); res >= 0 {
		return res
	}
	leftlvl := b.level(left)
	rightlvl := b.level(right)
	var res int
	switch {
	case leftlvl == rightlvl:
		// the variable occurs on both sides: the polarity of the result is the
		// xor of the polarities.
		neg := b.pushref(b.apply(
			b.pushref(b.setxor(b.low(left), b.low(right))),
			b.pushref(b.setxor(b.high(left), b.high(right)))))
		pos := b.pushref(b.apply(
			b.pushref(b.setxor(b.low(left), b.high(right))),
			b.pushref(b.setxor(b.high(left), b.low(right)))))
		res = b.makenode(leftlvl, neg, pos)
		b.popref(6)
	case leftlvl < rightlvl:
		low := b.pushref(b.setxor(b.low(left), right))
		high := b.pushref(b.setxor(b.high(left), right))
		res = b.makenode(leftlvl, low, high)
		b.popref(2)
	default:
		low := b.pushref(b.setxor(left, b.low(right)))
		high := b.pushref(b.setxor(left, b.high(right)))
		res = b.makenode(rightlvl, low, high)
		b.popref(2)
	}
	return b.setsetxor(left, right, res)
}
