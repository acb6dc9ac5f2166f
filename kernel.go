// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// _MINFREENODES is the minimal number of nodes (%) that has to be left after a
// garbage collect unless a resize should be done.
const _MINFREENODES int = 20

// _MAXVAR is the maximal number of levels in the BDD. We use only the first 21
// bits for encoding levels (so also the max number of variables). The bit just
// above is used to mark nodes during garbage collection.
const _MAXVAR int32 = 0x1FFFFF

// _MARK is the bit used for marking nodes, stored in the level field.
const _MARK int32 = 0x200000

// _MAXREFCOUNT is the maximal value of the reference counter (refcou), also
// used to stick nodes (like constants and variables) in the node list. It is
// egal to 1023 (10 bits).
const _MAXREFCOUNT int32 = 0x3FF

// _DEFAULTMAXNODEINC is the default value for the maximal increase in the
// number of nodes during a resize. It is approx. one million nodes (1 048 576).
const _DEFAULTMAXNODEINC int = 1 << 20

// node is a slot in the node table. A free slot has low set to -1 and uses next
// to point to the next free slot (0 if last). Field hash is the head of the
// collision chain for the bucket of the same index in the unique table; it is
// meaningful for free and used slots alike.
type node struct {
	refcou int32 // Count the number of external references
	level  int32 // Order of the variable in the BDD, plus the mark bit
	low    int   // Reference to the false branch
	high   int   // Reference to the true branch
	hash   int   // Index where to (possibly) find node with this hash value
	next   int   // Next index to check in case of a collision, 0 if last
}

func (b *BDD) ismarked(n int) bool {
	return (b.nodes[n].level & _MARK) != 0
}

func (b *BDD) marknode(n int) {
	b.nodes[n].level |= _MARK
}

func (b *BDD) unmarknode(n int) {
	b.nodes[n].level &= _MAXVAR
}

func (b *BDD) level(n int) int32 {
	return b.nodes[n].level & _MAXVAR
}

func (b *BDD) low(n int) int {
	return b.nodes[n].low
}

func (b *BDD) high(n int) int {
	return b.nodes[n].high
}
