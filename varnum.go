// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// SetVarnum sets the number of BDD variables and generates the nodes used for
// Ithvar and NIthvar. It may be called more than once, but only to increase the
// number of variables, and only as long as no other node than the constants
// and the variables was built, since existing nodes would no longer follow the
// variable order. We return an error wrapping ErrState otherwise. Note that
// variable nodes do not count: the number of variables can still grow after
// calls to Ithvar or NIthvar.
func (b *BDD) SetVarnum(num int) error {
	if b.closed {
		return errors.Wrap(ErrState, "call to SetVarnum on closed BDD")
	}
	if (num < 1) || (num > int(_MAXVAR)) {
		return errors.Wrapf(ErrCapacity, "bad number of variable (%d) in SetVarnum", num)
	}
	inum := int32(num)
	if inum < b.varnum {
		return errors.Wrapf(ErrState, "cannot decrease the number of variables (from %d to %d)", b.varnum, num)
	}
	if inum == b.varnum {
		return nil
	}
	if b.produced > 2*int(b.varnum) {
		return errors.Wrapf(ErrState, "cannot change the number of variables after %d nodes were built", b.produced-2*int(b.varnum))
	}
	oldvarnum := b.varnum
	b.varnum = inum
	// Constants always have the highest level.
	b.nodes[0].level = inum
	b.nodes[1].level = inum
	varset := make([][2]int, inum)
	copy(varset, b.varset)
	b.varset = varset

	// we stop at the last variable successfully allocated when the node table
	// is full
	truncate := func(k int32) error {
		b.varnum = k
		b.nodes[0].level, b.nodes[1].level = k, k
		b.varset = b.varset[:k]
		b.quantset = make([]int32, k)
		return errors.Wrapf(ErrOutOfNodes, "cannot allocate new variable %d in SetVarnum", k)
	}
	b.initref()
	for k := oldvarnum; k < inum; k++ {
		v0 := b.makenode(k, 0, 1)
		if v0 < 0 {
			return truncate(k)
		}
		b.nodes[v0].refcou = _MAXREFCOUNT
		b.pushref(v0)
		v1 := b.makenode(k, 1, 0)
		if v1 < 0 {
			b.nodes[v0].refcou = 0
			return truncate(k)
		}
		b.nodes[v1].refcou = _MAXREFCOUNT
		b.popref(1)
		b.varset[k] = [2]int{v0, v1}
	}

	// We also need to resize the quantification cache
	b.quantset = make([]int32, b.varnum)
	b.quantsetID = 0

	b.log.WithFields(logrus.Fields{"varnum": b.varnum, "nodes": len(b.nodes)}).Debug("set varnum")
	return nil
}
