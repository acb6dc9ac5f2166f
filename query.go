// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"math/big"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"
)

// Satcount computes the number of satisfying variable assignments for the
// function denoted by n. We return a result using arbitrary-precision
// arithmetic to avoid possible overflows. The result is zero (and we set the
// error flag of b) if there is an error.
func (b *BDD) Satcount(n Node) *big.Int {
	res := big.NewInt(0)
	if err := b.checkptr(n); err != nil {
		b.seterror(err, "wrong operand in call to Satcount")
		return res
	}
	// We compute 2^level with a bit shift 1 << level
	res.SetBit(res, int(b.level(n.id)), 1)
	satc := make(map[int]*big.Int)
	return res.Mul(res, b.satcount(n.id, satc))
}

func (b *BDD) satcount(n int, satc map[int]*big.Int) *big.Int {
	if n < 2 {
		return big.NewInt(int64(n))
	}
	// we use satc to memoize the value of satcount for each nodes
	res, ok := satc[n]
	if ok {
		return res
	}
	level := b.level(n)
	low := b.low(n)
	high := b.high(n)

	res = big.NewInt(0)
	two := big.NewInt(0)
	two.SetBit(two, int(b.level(low)-level-1), 1)
	res.Add(res, two.Mul(two, b.satcount(low, satc)))
	two = big.NewInt(0)
	two.SetBit(two, int(b.level(high)-level-1), 1)
	res.Add(res, two.Mul(two, b.satcount(high, satc)))
	satc[n] = res
	return res
}

// SatOne returns a single satisfying assignment of n, as a cube (a conjunction
// of literals) that implies n. At each node we follow the high branch, unless
// it leads to False. We return an error wrapping ErrUnsatisfiable if n is the
// constant False. This error does not change the error status of b.
func (b *BDD) SatOne(n Node) (Node, error) {
	if err := b.checkptr(n); err != nil {
		return nil, b.seterrorf(err, "wrong operand in call to SatOne")
	}
	if n.id == 0 {
		return nil, errors.Wrap(ErrUnsatisfiable, "in call to SatOne")
	}
	b.initref()
	b.pushref(n.id)
	res := b.satone(n.id)
	b.popref(1)
	if res < 0 {
		return nil, b.Err()
	}
	return b.retnode(res), nil
}

func (b *BDD) satone(n int) int {
	if n < 2 {
		return n
	}
	if res := b.matchsatone(n); res >= 0 {
		return res
	}
	var res int
	if high := b.high(n); high != 0 {
		sub := b.pushref(b.satone(high))
		res = b.makenode(b.level(n), 0, sub)
	} else {
		sub := b.pushref(b.satone(b.low(n)))
		res = b.makenode(b.level(n), sub, 0)
	}
	b.popref(1)
	return b.setsatone(n, res)
}

// Allsat Iterates through all legal variable assignments for n and calls the
// function f on each of them. We pass an int slice of length varnum to f where
// each entry is either  0 if the variable is false, 1 if it is true, and -1 if
// it is a don't care. We stop and return an error if f returns an error at some
// point.
//
// The following is an example of a callback handler that counts the number of
// possible assignments (such that we do not count don't care twice):
//
//	acc := new(int)
//	b.Allsat(n, func(varset []int) error {
//		*acc++
//		return nil
//	})
func (b *BDD) Allsat(n Node, f func([]int) error) error {
	if err := b.checkptr(n); err != nil {
		return errors.Wrap(err, "wrong node in call to Allsat")
	}
	prof := make([]int, b.varnum)
	for k := range prof {
		prof[k] = -1
	}
	// the function does not create new nodes, so we do not need to take care of
	// possible resizing
	return b.allsat(n.id, prof, f)
}

func (b *BDD) allsat(n int, prof []int, f func([]int) error) error {
	if n == 1 {
		return f(prof)
	}
	if n == 0 {
		return nil
	}

	if low := b.low(n); low != 0 {
		prof[b.level(n)] = 0
		for v := b.level(low) - 1; v > b.level(n); v-- {
			prof[v] = -1
		}
		if err := b.allsat(low, prof, f); err != nil {
			return err
		}
	}

	if high := b.high(n); high != 0 {
		prof[b.level(n)] = 1
		for v := b.level(high) - 1; v > b.level(n); v-- {
			prof[v] = -1
		}
		if err := b.allsat(high, prof, f); err != nil {
			return err
		}
	}
	return nil
}

// Allnodes applies function f over all the nodes accessible from the nodes in
// the sequence n..., or all the active nodes if n is absent. The parameters to
// function f are the id, level, and id's of the low and high successors of each
// node. The two constant nodes (True and False) have always the id 1 and 0,
// respectively.
//
// The order in which nodes are visited is not specified. The behavior is very
// similar to the one of Allsat. In particular, we stop the computation and
// return an error if f returns an error at some point.
func (b *BDD) Allnodes(f func(id, level, low, high int) error, n ...Node) error {
	for _, v := range n {
		if err := b.checkptr(v); err != nil {
			return errors.Wrap(err, "wrong node in call to Allnodes")
		}
	}
	// the function does not create new nodes, so we do not need to take care of
	// possible resizing.
	if len(n) == 0 {
		// we call f over all active nodes
		return b.allnodes(f)
	}
	return b.allnodesfrom(f, n)
}

func (b *BDD) allnodes(f func(id, level, low, high int) error) error {
	if err := f(0, int(b.nodes[0].level), 0, 0); err != nil {
		return err
	}
	if err := f(1, int(b.nodes[1].level), 1, 1); err != nil {
		return err
	}
	for k := 2; k < len(b.nodes); k++ {
		if b.nodes[k].low != -1 {
			if err := f(k, int(b.level(k)), b.low(k), b.high(k)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *BDD) allnodesfrom(f func(id, level, low, high int) error, n []Node) error {
	for _, v := range n {
		b.markrec(v.id)
	}
	// the marks are cleared even if f fails
	defer b.unmarkall()
	if err := f(0, int(b.nodes[0].level), 0, 0); err != nil {
		return err
	}
	if err := f(1, int(b.nodes[1].level), 1, 1); err != nil {
		return err
	}
	for k := 2; k < len(b.nodes); k++ {
		if b.ismarked(k) {
			if err := f(k, int(b.level(k)), b.low(k), b.high(k)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Support returns the set of variables that n depends on, that is the levels
// of all the nodes reachable from n. The result is empty for constants or if
// there is an error.
func (b *BDD) Support(n Node) mapset.Set[int] {
	res := mapset.NewSet[int]()
	if err := b.checkptr(n); err != nil {
		b.seterror(err, "wrong operand in call to Support")
		return res
	}
	if n.id < 2 {
		return res
	}
	err := b.Allnodes(func(id, level, low, high int) error {
		if id > 1 {
			res.Add(level)
		}
		return nil
	}, n)
	if err != nil {
		b.seterror(err, "in call to Support")
		return mapset.NewSet[int]()
	}
	return res
}
