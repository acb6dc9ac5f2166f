// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// gcstat stores status information about garbage collections. We use a stack
// (slice) of objects to record the sequence of GC during a computation.
type gcstat struct {
	setfinalizers    uint64    // Total number of external references to BDD nodes
	calledfinalizers uint64    // Number of external references that were freed
	history          []gcpoint // Snaphot of GC stats at each occurrence
}

type gcpoint struct {
	nodes            int // Total number of allocated nodes in the nodetable
	freenodes        int // Number of free nodes in the nodetable
	setfinalizers    int // Total number of external references to BDD nodes
	calledfinalizers int // Number of external references that were freed
}

// deadqueue collects the index of nodes whose external reference has been
// reclaimed by the Go runtime. Finalizers run in their own goroutine, so we
// only decrement reference counts when we drain the queue, from the goroutine
// using the BDD.
type deadqueue struct {
	sync.Mutex
	ids []int
}

func (q *deadqueue) push(n int) {
	q.Lock()
	q.ids = append(q.ids, n)
	q.Unlock()
}

func (q *deadqueue) drain() []int {
	q.Lock()
	res := q.ids
	q.ids = nil
	q.Unlock()
	return res
}

// delrefs decrements the reference count of nodes that are no longer
// referenced from user code.
func (b *BDD) delrefs() {
	for _, n := range b.dead.drain() {
		if n < 2 || n >= len(b.nodes) || b.nodes[n].low == -1 {
			continue
		}
		if b.nodes[n].refcou > 0 && b.nodes[n].refcou < _MAXREFCOUNT {
			b.nodes[n].refcou--
		}
	}
}

// *************************************************************************

// AddRef increases the reference count on node n and returns n so that calls
// can be easily chained together. A call to AddRef can never raise an error,
// even if we access an unused node or a value outside the range of the BDD.
//
// Reference counting is done automatically for the Nodes returned by the
// library, so AddRef and DelRef are only needed when the index of a node is
// kept outside of a Node, for instance in a foreign data structure.
func (b *BDD) AddRef(n Node) Node {
	if b.checkptr(n) != nil || n.id < 2 {
		return n
	}
	if b.nodes[n.id].refcou < _MAXREFCOUNT {
		b.nodes[n.id].refcou++
	}
	return n
}

// DelRef decreases the reference count on a node and returns n so that calls
// can be easily chained together. A call to DelRef can never raise an error,
// even if we access an unused node or a value outside the range of the BDD.
func (b *BDD) DelRef(n Node) Node {
	if b.checkptr(n) != nil || n.id < 2 {
		return n
	}
	if b.nodes[n.id].refcou <= 0 {
		return n
	}
	if b.nodes[n.id].refcou < _MAXREFCOUNT {
		b.nodes[n.id].refcou--
	}
	return n
}

// GC explicitly starts a garbage collection of unused nodes. Nodes that are
// still referenced keep their index, so all the live Nodes stay valid.
func (b *BDD) GC() error {
	if b.closed {
		return b.checkptr(b.one)
	}
	b.initref()
	b.gbc()
	return nil
}

// *************************************************************************

// gbc is the garbage collector called for reclaiming memory, inside a call to
// makenode, when there are no free positions available. Allocated nodes that
// are not reclaimed do not move.
func (b *BDD) gbc() {
	b.delrefs()
	log := b.log.WithFields(logrus.Fields{
		"gc":    len(b.gcstat.history) + 1,
		"nodes": len(b.nodes),
		"free":  b.freenum,
	})
	log.Debug("starting GC")
	if _LOGLEVEL > 1 {
		b.logTable()
	}

	// we append the current stats to the GC history
	if _DEBUG {
		b.gcstat.history = append(b.gcstat.history, gcpoint{
			nodes:            len(b.nodes),
			freenodes:        b.freenum,
			setfinalizers:    int(atomic.LoadUint64(&(b.gcstat.setfinalizers))),
			calledfinalizers: int(atomic.LoadUint64(&(b.gcstat.calledfinalizers))),
		})
		atomic.StoreUint64(&(b.gcstat.setfinalizers), 0)
		atomic.StoreUint64(&(b.gcstat.calledfinalizers), 0)
	} else {
		b.gcstat.history = append(b.gcstat.history, gcpoint{
			nodes:     len(b.nodes),
			freenodes: b.freenum,
		})
	}
	// we mark the nodes in the refstack to avoid collecting them
	for _, r := range b.refstack {
		b.markrec(r)
	}
	// we also protect nodes with a positive refcount (and therefore also the
	// ones with a MAXREFCOUNT, such has variables)
	for k := range b.nodes {
		if b.nodes[k].refcou > 0 {
			b.markrec(k)
		}
		b.nodes[k].hash = 0
	}
	b.freepos = 0
	b.freenum = 0
	// we do a pass through the nodes list to update the hash chains and void
	// the unmarked nodes. After finishing this pass, b.freepos points to the
	// first free position in b.nodes, or it is 0 if we found none.
	for n := len(b.nodes) - 1; n > 1; n-- {
		if b.ismarked(n) && (b.nodes[n].low != -1) {
			b.unmarknode(n)
			hash := b.ptrhash(n)
			b.nodes[n].next = b.nodes[hash].hash
			b.nodes[hash].hash = n
		} else {
			b.nodes[n].low = -1
			b.nodes[n].refcou = 0
			b.nodes[n].next = b.freepos
			b.freepos = n
			b.freenum++
		}
	}
	// we also invalidate the caches
	b.cachereset()
	b.log.WithFields(logrus.Fields{
		"gc":    len(b.gcstat.history),
		"nodes": len(b.nodes),
		"free":  b.freenum,
	}).Debug("end GC")
	if _LOGLEVEL > 1 {
		b.logTable()
	}
}

// *************************************************************************
// RECURSIVE MARK / UNMARK

func (b *BDD) markrec(n int) {
	if n < 2 || b.ismarked(n) || (b.nodes[n].low == -1) {
		return
	}
	b.marknode(n)
	b.markrec(b.nodes[n].low)
	b.markrec(b.nodes[n].high)
}

func (b *BDD) unmarkall() {
	for k, v := range b.nodes {
		if k < 2 || !b.ismarked(k) || (v.low == -1) {
			continue
		}
		b.unmarknode(k)
	}
}

// *************************************************************************
// private functions to manipulate the refstack; used to prevent nodes that are
// currently being built (e.g. transient nodes built during an apply) to be
// reclaimed during GC.

func (b *BDD) initref() {
	b.refstack = b.refstack[:0]
}

func (b *BDD) pushref(n int) int {
	b.refstack = append(b.refstack, n)
	return n
}

func (b *BDD) popref(a int) {
	b.refstack = b.refstack[:len(b.refstack)-a]
}
