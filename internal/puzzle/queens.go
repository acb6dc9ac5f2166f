// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package puzzle builds BDD encodings of combinatorial puzzles, used for
// benchmarks and by the robdd command.
package puzzle

import (
	"github.com/dalzilio/robdd"
	"github.com/pkg/errors"
)

// Queens returns a BDD for the N-Queen chess problem, whose satisfying
// assignments are the solutions. It uses N*N variables corresponding to the
// squares in the chess board like:
//
//	0 4  8 12
//	1 5  9 13
//	2 6 10 14
//	3 7 11 15
//
// One solution is then that 2,4,11,13 should be true, meaning a queen should be
// placed there:
//
//	. X . .
//	. . . X
//	X . . .
//	. . X .
//
// The BDD b must have at least N*N variables.
func Queens(b *robdd.BDD, N int) (robdd.Node, error) {
	if N < 1 {
		return nil, errors.Errorf("bad board size %d", N)
	}
	if b.Varnum() < N*N {
		return nil, errors.Wrapf(robdd.ErrUnknownVariable, "%d variables needed, BDD has %d", N*N, b.Varnum())
	}
	queen := b.True()
	X := make([][]robdd.Node, N)
	for i := range X {
		X[i] = make([]robdd.Node, N)
		for j := range X[i] {
			X[i][j] = b.Ithvar(i*N + j)
		}
	}
	// Place a queen in each row
	for i := 0; i < N; i++ {
		e := b.False()
		for j := 0; j < N; j++ {
			e = b.Or(e, X[i][j])
		}
		queen = b.And(queen, e)
	}

	// Build requirements for each variable(field)
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			// No one in the same column
			a := b.True()
			for k := 0; k < N; k++ {
				if k != j {
					a = b.And(a, b.Imp(X[i][j], b.Not(X[i][k])))
				}
			}
			// No one in the same row
			r := b.True()
			for k := 0; k < N; k++ {
				if k != i {
					r = b.And(r, b.Imp(X[i][j], b.Not(X[k][j])))
				}
			}
			// No one in the same up-right diagonal
			c := b.True()
			for k := 0; k < N; k++ {
				ll := k - i + j
				if ll >= 0 && ll < N && k != i {
					c = b.And(c, b.Imp(X[i][j], b.Not(X[k][ll])))
				}
			}
			// No one in the same down-right diagonal
			d := b.True()
			for k := 0; k < N; k++ {
				ll := i + j - k
				if ll >= 0 && ll < N && k != i {
					d = b.And(d, b.Imp(X[i][j], b.Not(X[k][ll])))
				}
			}
			queen = b.And(queen, a, r, c, d)
		}
	}
	if b.Errored() {
		return nil, b.Err()
	}
	return queen, nil
}
