// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// Hash functions

func _TRIPLE(a, b, c, len int) int {
	return int(_PAIR64(uint64(c), _PAIR(a, b, len), uint64(len)))
}

// _PAIR is a mapping function that maps (bijectively) a pair of integer (a, b)
// into a unique integer. It is therefore a perfect hash: no collisions
func _PAIR(a, b, len int) uint64 {
	return (((uint64(a+b) * uint64(a+b+1)) / 2) + uint64(a)) % uint64(len)
}

func _PAIR64(a, b, len uint64) uint64 {
	return (((((a + b) % len) * ((a + b + 1) % len)) / 2) + a) % len
}

// ************************************************************

// The hash function for nodes is #(level, low, high)

func (b *BDD) ptrhash(n int) int {
	return _TRIPLE(int(b.level(n)), b.nodes[n].low, b.nodes[n].high, len(b.nodes))
}

func (b *BDD) nodehash(level int32, low, high int) int {
	return _TRIPLE(int(level), low, high, len(b.nodes))
}

// ************************************************************

// The hash function for operation Not(n) is simply n.

func (b *BDD) matchnot(n int) int {
	entry := b.applycache.table[n%len(b.applycache.table)]
	if entry.a == n && entry.c == int(op_not) {
		b.opHit++
		return entry.res
	}
	b.opMiss++
	return -1
}

func (b *BDD) setnot(n int, res int) int {
	if res < 0 {
		return -1
	}
	b.applycache.table[n%len(b.applycache.table)] = cacheData{
		a:   n,
		b:   -1,
		c:   int(op_not),
		res: res,
	}
	return res
}

// ************************************************************

// The hash function for Apply is #(left, right, applycache.op).

func (b *BDD) matchapply(left, right int) int {
	entry := b.applycache.table[_TRIPLE(left, right, b.applycache.op, len(b.applycache.table))]
	if entry.a == left && entry.b == right && entry.c == b.applycache.op {
		b.opHit++
		return entry.res
	}
	b.opMiss++
	return -1
}

func (b *BDD) setapply(left, right, res int) int {
	if res < 0 {
		return -1
	}
	b.applycache.table[_TRIPLE(left, right, b.applycache.op, len(b.applycache.table))] = cacheData{
		a:   left,
		b:   right,
		c:   b.applycache.op,
		res: res,
	}
	return res
}

// ************************************************************

// The hash function for ITE is #(f,g,h).

func (b *BDD) matchite(f, g, h int) int {
	entry := b.itecache.table[_TRIPLE(f, g, h, len(b.itecache.table))]
	if entry.a == f && entry.b == g && entry.c == h {
		b.opHit++
		return entry.res
	}
	b.opMiss++
	return -1
}

func (b *BDD) setite(f, g, h, res int) int {
	if res < 0 {
		return -1
	}
	b.itecache.table[_TRIPLE(f, g, h, len(b.itecache.table))] = cacheData{
		a:   f,
		b:   g,
		c:   h,
		res: res,
	}
	return res
}

// ************************************************************

// The hash function for quantification is #(n, varset).

func (b *BDD) matchquant(n, varset int) int {
	entry := b.quantcache.table[_PAIR(n, varset, len(b.quantcache.table))]
	if entry.a == n && entry.b == varset && entry.c == b.quantcache.id {
		b.opHit++
		return entry.res
	}
	b.opMiss++
	return -1
}

func (b *BDD) setquant(n, varset, res int) int {
	if res < 0 {
		return -1
	}
	b.quantcache.table[_PAIR(n, varset, len(b.quantcache.table))] = cacheData{
		a:   n,
		b:   varset,
		c:   b.quantcache.id,
		res: res,
	}
	return res
}

// ************************************************************

// The hash function for SetXor is #(left, right, cacheid_SETXOR) and the one
// for SatOne is simply n. Both share the misc cache.

func (b *BDD) matchsetxor(left, right int) int {
	entry := b.misccache.table[_TRIPLE(left, right, cacheid_SETXOR, len(b.misccache.table))]
	if entry.a == left && entry.b == right && entry.c == cacheid_SETXOR {
		b.opHit++
		return entry.res
	}
	b.opMiss++
	return -1
}

func (b *BDD) setsetxor(left, right, res int) int {
	if res < 0 {
		return -1
	}
	b.misccache.table[_TRIPLE(left, right, cacheid_SETXOR, len(b.misccache.table))] = cacheData{
		a:   left,
		b:   right,
		c:   cacheid_SETXOR,
		res: res,
	}
	return res
}

func (b *BDD) matchsatone(n int) int {
	entry := b.misccache.table[n%len(b.misccache.table)]
	if entry.a == n && entry.c == cacheid_SATONE {
		b.opHit++
		return entry.res
	}
	b.opMiss++
	return -1
}

func (b *BDD) setsatone(n, res int) int {
	if res < 0 {
		return -1
	}
	b.misccache.table[n%len(b.misccache.table)] = cacheData{
		a:   n,
		b:   -1,
		c:   cacheid_SATONE,
		res: res,
	}
	return res
}
