// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// BDD is the type of Binary Decision Diagrams. It abstracts the node table, the
// unicity table and the operation caches shared by all the Boolean functions
// built with it.
//
// A BDD is not safe for concurrent use; use one BDD per goroutine, or protect
// all the calls with the same lock. Different BDD are independent.
type BDD struct {
	varnum          int32       // number of BDD variables
	varset          [][2]int    // Set of variables used: we have a pair for each variable for its positive and negative occurrence
	refstack        []int       // Internal node reference stack
	nodes           []node      // List of all the BDD nodes. Constants are always kept at index 0 and 1
	freenum         int         // Number of free nodes
	freepos         int         // First free node
	produced        int         // Total number of new nodes ever produced
	maxnodesize     int         // Maximum total number of nodes (0 if no limit)
	maxnodeincrease int         // Maximum number of nodes that can be added to the table at each resize (0 if no limit)
	minfreenodes    int         // Minimum number of nodes that should be left after GC before triggering a resize
	quantset        []int32     // Current variable set for quant.
	quantsetID      int32       // Current id used in quantset
	quantlast       int32       // Current last variable to be quant.
	epoch           uint64      // Identifies the Nodes created by this BDD
	closed          bool        // Set after a call to Done
	zero            Node        // Constant false
	one             Node        // Constant true
	nodefinalizer   func(*ref)  // Finalizer used to decrement the ref count of external references
	dead            deadqueue   // Nodes whose external references were reclaimed by the runtime
	err             error       // Error status to help chain operations
	log             logrus.FieldLogger
	gcstat                      // Information about garbage collections
	cacheStat                   // Information about the caches
	applycache                  // Cache for apply and not results
	itecache                    // Cache for ITE results
	quantcache                  // Cache for exist results
	misccache                   // Cache for setxor and satone results
}

// Node is a reference to an element of a BDD. It represents the atomic unit of
// interactions and computations within a BDD.
//
// Nodes are handles: two different Node values may denote the same element, so
// nodes should be compared using method Equal. The element is protected from
// garbage collection as long as the handle is reachable, or until it is
// explicitly released with Release.
type Node *ref

type ref struct {
	id    int    // index in the node table, -1 if released
	epoch uint64 // epoch of the BDD that built this reference
}

var epochs uint64

// New returns a new BDD with varnum variables. Parameter varnum can be zero,
// in which case the variables must be declared later using SetVarnum.
//
// It is possible to set optional (configuration) parameters, such as the size
// of the initial node table (Nodesize) or the size for caches (Cachesize),
// using configs functions. The initial number of nodes is not critical since
// the table will be resized whenever there are too few nodes left after a
// garbage collection, unless its size is bounded with Maxnodesize. But it does
// have some impact on the efficency of the operations. We return an error
// wrapping ErrCapacity if one of the sizes is not valid.
func New(varnum int, options ...Option) (*BDD, error) {
	if (varnum < 0) || (varnum > int(_MAXVAR)) {
		return nil, errors.Wrapf(ErrCapacity, "bad number of variable (%d)", varnum)
	}
	config := makeconfigs(varnum)
	for _, f := range options {
		f(config)
	}
	if config.nodesize <= 0 || config.cachesize < 0 || config.cacheratio < 0 {
		return nil, errors.Wrapf(ErrCapacity, "bad sizes (nodes: %d, cache: %d)", config.nodesize, config.cachesize)
	}
	if config.maxnodesize > 0 && config.maxnodesize < 2*varnum+2 {
		return nil, errors.Wrapf(ErrCapacity, "maximal size (%d) too small for %d variables", config.maxnodesize, varnum)
	}
	b := &BDD{}
	b.epoch = atomic.AddUint64(&epochs, 1)
	b.log = config.logger
	if b.log == nil {
		b.log = defaultLogger()
	}
	b.minfreenodes = config.minfreenodes
	b.maxnodesize = config.maxnodesize
	b.maxnodeincrease = config.maxnodeincrease
	nodesize := primeGte(config.nodesize)
	if b.maxnodesize > 0 && nodesize > b.maxnodesize {
		nodesize = b.maxnodesize
	}
	if nodesize < 2*varnum+2 {
		nodesize = 2*varnum + 2
	}
	// initializing the list of nodes
	b.nodes = make([]node, nodesize)
	for k := range b.nodes {
		b.nodes[k] = node{
			refcou: 0,
			level:  0,
			low:    -1,
			high:   0,
			hash:   0,
			next:   k + 1,
		}
	}
	b.nodes[nodesize-1].next = 0
	b.nodes[0] = node{refcou: _MAXREFCOUNT, low: 0, high: 0}
	b.nodes[1] = node{refcou: _MAXREFCOUNT, low: 1, high: 1}
	b.freepos = 2
	b.freenum = nodesize - 2
	if nodesize == 2 {
		// only the constants fit, the free list is empty
		b.freepos = 0
	}
	b.zero = &ref{id: 0, epoch: b.epoch}
	b.one = &ref{id: 1, epoch: b.epoch}
	b.varset = make([][2]int, 0)
	b.refstack = make([]int, 0, 2*varnum+4)
	b.quantset = make([]int32, 0)
	b.gcstat.history = []gcpoint{}
	b.nodefinalizer = func(n *ref) {
		if _DEBUG {
			atomic.AddUint64(&(b.gcstat.calledfinalizers), 1)
		}
		b.dead.push(n.id)
	}
	b.cacheinit(config.cachesize, config.cacheratio)
	if varnum > 0 {
		if err := b.SetVarnum(varnum); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Done closes the BDD. All the Nodes built with b become stale and any further
// use of b returns an ErrState error.
func (b *BDD) Done() error {
	if b.closed {
		return errors.Wrap(ErrState, "BDD already closed")
	}
	b.closed = true
	b.nodes = nil
	b.varset = nil
	b.refstack = nil
	b.applycache.table = nil
	b.itecache.table = nil
	b.quantcache.table = nil
	b.misccache.table = nil
	b.log.WithField("produced", b.produced).Debug("bdd closed")
	return nil
}

// ************************************************************

// Varnum returns the number of defined variables.
func (b *BDD) Varnum() int {
	return int(b.varnum)
}

// Ithvar returns a BDD representing the i'th variable on success, otherwise we
// set the error status in the BDD and returns nil. The requested variable must
// be in the range [0..Varnum).
func (b *BDD) Ithvar(i int) Node {
	if b.closed {
		return b.seterror(ErrState, "call to Ithvar(%d) on closed BDD", i)
	}
	if (i < 0) || (int32(i) >= b.varnum) {
		return b.seterror(ErrUnknownVariable, "variable %d in call to Ithvar", i)
	}
	// we do not need to reference count variables
	return b.inode(b.varset[i][0])
}

// NIthvar returns a bdd representing the negation of the i'th variable on
// success, otherwise nil. See *ithvar* for further info.
func (b *BDD) NIthvar(i int) Node {
	if b.closed {
		return b.seterror(ErrState, "call to NIthvar(%d) on closed BDD", i)
	}
	if (i < 0) || (int32(i) >= b.varnum) {
		return b.seterror(ErrUnknownVariable, "variable %d in call to NIthvar", i)
	}
	return b.inode(b.varset[i][1])
}

// Label returns the variable (index) corresponding to node n in the BDD. We set
// the BDD to its error state and return -1 if we try to access a constant node.
func (b *BDD) Label(n Node) int {
	if err := b.checkptr(n); err != nil {
		b.seterror(err, "in call to Label")
		return -1
	}
	if n.id < 2 {
		b.seterror(ErrInvalidNode, "try to access label of constant node")
		return -1
	}
	return int(b.level(n.id))
}

// Low returns the false branch of a BDD. We return nil if there is an error
// and set the error flag in the BDD.
func (b *BDD) Low(n Node) Node {
	if err := b.checkptr(n); err != nil {
		return b.seterror(err, "in call to Low")
	}
	return b.retnode(b.low(n.id))
}

// High returns the true branch of a BDD. We return nil if there is an error
// and set the error flag in the BDD.
func (b *BDD) High(n Node) Node {
	if err := b.checkptr(n); err != nil {
		return b.seterror(err, "in call to High")
	}
	return b.retnode(b.high(n.id))
}

// True returns the constant true BDD.
func (b *BDD) True() Node {
	return b.one
}

// False returns the constant false BDD.
func (b *BDD) False() Node {
	return b.zero
}

// From returns a (constant) Node from a boolean value.
func (b *BDD) From(v bool) Node {
	if v {
		return b.one
	}
	return b.zero
}
