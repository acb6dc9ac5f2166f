// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

// And returns the logical 'and' of a sequence of nodes.
func (b *BDD) And(n ...Node) Node {
	if len(n) == 1 {
		return n[0]
	}
	if len(n) == 0 {
		return b.one
	}
	return b.Apply(n[0], b.And(n[1:]...), OPand)
}

// Or returns the logical 'or' of a sequence of BDDs.
func (b *BDD) Or(n ...Node) Node {
	if len(n) == 1 {
		return n[0]
	}
	if len(n) == 0 {
		return b.zero
	}
	return b.Apply(n[0], b.Or(n[1:]...), OPor)
}

// Xor returns the exclusive or of two BDDs.
func (b *BDD) Xor(n1, n2 Node) Node {
	return b.Apply(n1, n2, OPxor)
}

// Imp returns the logical 'implication' between two BDDs.
func (b *BDD) Imp(n1, n2 Node) Node {
	return b.Apply(n1, n2, OPimp)
}

// Equiv returns the logical 'bi-implication' between two BDDs.
func (b *BDD) Equiv(n1, n2 Node) Node {
	return b.Apply(n1, n2, OPbiimp)
}

// Equal tests equivalence between nodes. Since the BDD is reduced and ordered,
// two nodes denote the same Boolean function exactly when they have the same
// index. Nodes from different BDDs, or released nodes, are never equal.
func (b *BDD) Equal(n1, n2 Node) bool {
	if n1 == n2 {
		return n1 != nil
	}
	if n1 == nil || n2 == nil {
		return false
	}
	if n1.id < 0 || n2.id < 0 {
		return false
	}
	return *n1 == *n2
}
