// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"math"
	"runtime"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// inode returns a Node for known nodes, such as variables, that do not need to
// increase their reference count.
func (b *BDD) inode(n int) Node {
	return &ref{id: n, epoch: b.epoch}
}

// retnode creates a Node for external use and sets a finalizer on it so that we
// can reclaim the ressource during GC.
func (b *BDD) retnode(n int) Node {
	if n < 0 || n >= len(b.nodes) {
		if b.err == nil {
			b.seterror(ErrInvalidNode, "unexpected result (%d) in retnode", n)
		}
		return nil
	}
	if n == 0 {
		return b.zero
	}
	if n == 1 {
		return b.one
	}
	x := &ref{id: n, epoch: b.epoch}
	if b.nodes[n].refcou < _MAXREFCOUNT {
		b.nodes[n].refcou++
		runtime.SetFinalizer(x, b.nodefinalizer)
		if _DEBUG {
			atomic.AddUint64(&(b.setfinalizers), 1)
		}
	}
	return x
}

// checkptr returns an error if n is not a valid (and live) node of b.
func (b *BDD) checkptr(n Node) error {
	switch {
	case b.closed:
		return errors.Wrap(ErrState, "BDD closed")
	case n == nil:
		return errors.Wrap(ErrInvalidNode, "nil node")
	case n.epoch != b.epoch:
		return errors.Wrap(ErrState, "node built with another BDD")
	case n.id < 0:
		return errors.Wrap(ErrState, "node already released")
	case n.id >= len(b.nodes):
		return errors.Wrapf(ErrInvalidNode, "node %d not in table", n.id)
	case n.id >= 2 && b.nodes[n.id].low == -1:
		return errors.Wrapf(ErrInvalidNode, "node %d undefined", n.id)
	}
	return nil
}

// Release revokes the reference held by n, which cannot be used afterwards.
// This is not needed in general, since the reference is automatically released
// when n is reclaimed by the Go runtime, but it allows to reclaim the node
// during the next garbage collection. Releasing a constant is a no-op.
func (b *BDD) Release(n Node) error {
	if err := b.checkptr(n); err != nil {
		return err
	}
	if n.id < 2 {
		return nil
	}
	runtime.SetFinalizer(n, nil)
	if b.nodes[n.id].refcou > 0 && b.nodes[n.id].refcou < _MAXREFCOUNT {
		b.nodes[n.id].refcou--
	}
	n.id = -1
	return nil
}

// ************************************************************

// makenode returns the index of the node (level, low, high), building it if
// needed. We return -1 and set the error status of b if it is not possible to
// add a new node.
func (b *BDD) makenode(level int32, low int, high int) int {
	if _DEBUG {
		b.uniqueAccess++
	}
	if low < 0 || high < 0 {
		return -1
	}
	// check whether children are equal, in which case we can skip the node
	if low == high {
		return low
	}
	if level >= b.level(low) || level >= b.level(high) {
		b.seterror(ErrOrdering, "node (%d, %d:%d, %d:%d)", level, low, b.level(low), high, b.level(high))
		return -1
	}
	// otherwise try to find an existing node using the hash and next fields
	hash := b.nodehash(level, low, high)
	for res := b.nodes[hash].hash; res != 0; res = b.nodes[res].next {
		if b.nodes[res].level == level && b.nodes[res].low == low && b.nodes[res].high == high {
			if _DEBUG {
				b.uniqueHit++
			}
			return res
		}
		if _DEBUG {
			b.uniqueChain++
		}
	}
	if _DEBUG {
		b.uniqueMiss++
	}
	// If no existing node, we build one. If there is no available spot
	// (b.freepos == 0), we try garbage collection and, as a last resort,
	// resizing the BDD list.
	if b.freepos == 0 {
		b.gbc()
		// We also test if we are under the threshold for resising.
		if (b.freenum*100)/len(b.nodes) <= b.minfreenodes {
			if err := b.noderesize(); err == nil {
				b.cacheresize()
			}
		}
		if b.freepos == 0 {
			b.log.WithFields(logrus.Fields{"nodes": len(b.nodes), "gc": len(b.gcstat.history)}).Error("node table exhausted")
			b.seterror(ErrOutOfNodes, "table of %d nodes is full", len(b.nodes))
			return -1
		}
		hash = b.nodehash(level, low, high)
	}
	// We can now build the new node in the first available spot
	res := b.freepos
	b.freepos = b.nodes[b.freepos].next
	b.freenum--
	b.produced++
	b.nodes[res].level = level
	b.nodes[res].low = low
	b.nodes[res].high = high
	b.nodes[res].refcou = 0
	b.nodes[res].next = b.nodes[hash].hash
	b.nodes[hash].hash = res
	return res
}

// noderesize grows the node table, within the limits set by maxnodesize and
// maxnodeincrease, and rebuilds the unique table.
func (b *BDD) noderesize() error {
	oldsize := len(b.nodes)
	nodesize := len(b.nodes)
	if (oldsize >= b.maxnodesize) && (b.maxnodesize > 0) {
		return errors.Wrapf(ErrOutOfNodes, "already at max capacity (%d nodes)", b.maxnodesize)
	}
	if oldsize > (math.MaxInt32 >> 1) {
		nodesize = math.MaxInt32 - 1
	} else {
		nodesize = nodesize << 1
	}
	if b.maxnodeincrease > 0 && nodesize > (oldsize+b.maxnodeincrease) {
		nodesize = oldsize + b.maxnodeincrease
	}
	if (nodesize > b.maxnodesize) && (b.maxnodesize > 0) {
		nodesize = b.maxnodesize
	}
	nodesize = primeLte(nodesize)
	if nodesize <= oldsize {
		return errors.Wrapf(ErrOutOfNodes, "unable to grow size of BDD (%d nodes)", nodesize)
	}
	b.log.WithFields(logrus.Fields{"from": oldsize, "to": nodesize}).Debug("resizing node table")

	tmp := b.nodes
	b.nodes = make([]node, nodesize)
	copy(b.nodes, tmp)

	for n := oldsize; n < nodesize; n++ {
		b.nodes[n].low = -1
	}

	// We recompute the hashes since nodesize is modified, and we rebuild the
	// list of free nodes.
	for n := 0; n < nodesize; n++ {
		b.nodes[n].hash = 0
	}
	b.freepos = 0
	b.freenum = 0
	for n := nodesize - 1; n > 1; n-- {
		if b.nodes[n].low != -1 {
			hash := b.ptrhash(n)
			b.nodes[n].next = b.nodes[hash].hash
			b.nodes[hash].hash = n
		} else {
			b.nodes[n].next = b.freepos
			b.freepos = n
			b.freenum++
		}
	}
	return nil
}
