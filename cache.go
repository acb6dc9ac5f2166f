// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"fmt"
	"math"
)

// ************************************************************
// cache is used for caching apply/exist etc. results. Caches are direct-mapped:
// a new entry always overwrites the previous one with the same hash.
type cache struct {
	cacheratio int // value used to resize the caches as a factor of the number of nodes
	table      []cacheData
}

// cacheStat stores status information about cache usage
type cacheStat struct {
	uniqueAccess int // accesses to the unique node table
	uniqueChain  int // iterations through the cache chains in the unique node table
	uniqueHit    int // entries actually found in the the unique node table
	uniqueMiss   int // entries not found in the the unique node table
	opHit        int // entries found in the operator caches
	opMiss       int // entries not found in the operator caches
}

// cacheData is a unit of information stored in the caches
type cacheData struct {
	res int
	a   int
	b   int
	c   int
}

// ************************************************************

// Different kind of caches used in the bdd

type applycache struct {
	cache     // Cache for apply results
	op    int // Current operation during an apply
}

type itecache struct {
	cache // Cache for ITE results
}

type quantcache struct {
	cache     // Cache for exist results
	id    int // Current cache id for quantifications
}

type misccache struct {
	cache // Cache for other results
}

// ************************************************************

// Hash value modifiers to distinguish between entries in misccache
const cacheid_SETXOR int = 0x0
const cacheid_SATONE int = 0x1

// Hash value modifiers for quantification
const cacheid_EXIST int = 0x0

// ************************************************************

// Basic functions shared by all caches

func (bc *cache) cacheinit(size int) {
	// we never check if the creation of the slice panic because of lack of memory
	size = primeGte(size)
	bc.table = make([]cacheData, size)
	bc.cachereset()
}

func (bc *cache) cacheresize(nodesize int) {
	if bc.cacheratio > 0 {
		bc.cacheinit((nodesize * bc.cacheratio) / 100)
		return
	}
	bc.cachereset()
}

func (bc *cache) cachereset() {
	for k := range bc.table {
		bc.table[k].a = -1
	}
}

// *************************************************************************
// Setup and shutdown

func (b *BDD) cacheinit(cachesize, cacheratio int) {
	if cachesize <= 0 {
		cachesize = len(b.nodes)/5 + 1
	}
	if cacheratio > 0 {
		cachesize = int(math.Max(float64(cachesize), float64(len(b.nodes)*cacheratio/100)))
	}
	for _, c := range b.caches() {
		c.cacheratio = cacheratio
		c.cacheinit(cachesize)
	}
}

func (b *BDD) caches() []*cache {
	return []*cache{&b.applycache.cache, &b.itecache.cache, &b.quantcache.cache, &b.misccache.cache}
}

func (b *BDD) cachereset() {
	for _, c := range b.caches() {
		c.cachereset()
	}
}

func (b *BDD) cacheresize() {
	for _, c := range b.caches() {
		c.cacheresize(len(b.nodes))
	}
}

// *************************************************************************

// SetCacheratio sets the cache ratio for the operator caches.
//
// The ratio between the number of nodes in the BDD table and the number of
// entries in the operator cachetables is called the cache ratio. So a cache
// ratio of say, 25, allocates one cache entry for each four unique node
// entries. This value can be set to any positive value. When this is done the
// caches are resized instantly to fit the new ratio. The default is a fixed
// cache size determined at initialization time.
func (b *BDD) SetCacheratio(r int) error {
	if err := b.checkptr(b.one); err != nil {
		return err
	}
	if r <= 0 {
		return b.seterrorf(ErrCapacity, "negative ratio (%d) in call to SetCacheratio", r)
	}
	for _, c := range b.caches() {
		c.cacheratio = r
	}
	b.cacheresize()
	return nil
}

// ************************************************************
//
// Quantification Cache
//

// quantset2cache takes a variable list, similar to the ones generated with
// Makeset, and set the variables in the quantification cache.
func (b *BDD) quantset2cache(n int) error {
	if n < 2 {
		return b.seterrorf(ErrInvalidNode, "illegal variable (%d) in varset to cache", n)
	}
	b.quantsetID++
	if b.quantsetID == math.MaxInt32 {
		b.quantset = make([]int32, b.varnum)
		b.quantsetID = 1
	}
	for i := n; i > 1; i = b.nodes[i].high {
		b.quantset[b.level(i)] = b.quantsetID
		b.quantlast = b.level(i)
	}
	return nil
}

// ************************************************************

// String prints information about the cache performance. The information
// contains the number of accesses to the unique node table, the number of times
// a node was (not) found there and how many times a hash chain had to
// traversed. Hit and miss count is also given for the operator caches.
func (c cacheStat) String() string {
	res := fmt.Sprintf("Unique Access:  %d\n", c.uniqueAccess)
	res += fmt.Sprintf("Unique Chain:   %d\n", c.uniqueChain)
	res += fmt.Sprintf("Unique Hit:     %d\n", c.uniqueHit)
	res += fmt.Sprintf("Unique Miss:    %d\n", c.uniqueMiss)
	res += fmt.Sprintf("Operator Hits:  %d\n", c.opHit)
	res += fmt.Sprintf("Operator Miss:  %d", c.opMiss)
	return res
}
