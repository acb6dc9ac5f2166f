// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//********************************************************************************************

func TestOperatorEval(t *testing.T) {
	var evalTests = []struct {
		op       Operator
		expected [4]int // values for 00, 01, 10 and 11
	}{
		{OPand, [4]int{0, 0, 0, 1}},
		{OPxor, [4]int{0, 1, 1, 0}},
		{OPor, [4]int{0, 1, 1, 1}},
		{OPnand, [4]int{1, 1, 1, 0}},
		{OPnor, [4]int{1, 0, 0, 0}},
		{OPimp, [4]int{1, 1, 0, 1}},
		{OPbiimp, [4]int{1, 0, 0, 1}},
		{OPdiff, [4]int{0, 0, 1, 0}},
		{OPless, [4]int{0, 1, 0, 0}},
		{OPinvimp, [4]int{1, 0, 1, 1}},
	}
	for _, tt := range evalTests {
		for k, v := range tt.expected {
			if actual := tt.op.eval(k>>1, k&1); actual != v {
				t.Errorf("%s(%d, %d): expected %d, actual %d", tt.op, k>>1, k&1, v, actual)
			}
		}
	}
}

func TestIteCofactors(t *testing.T) {
	bdd, err := New(4)
	require.NoError(t, err)
	x0, x1, x2, x3 := bdd.Ithvar(0), bdd.Ithvar(1), bdd.Ithvar(2), bdd.Ithvar(3)
	// operands with different top variables
	f := bdd.Xor(x1, x3)
	g := bdd.And(x0, x2)
	h := bdd.Or(x2, bdd.Not(x3))
	expected := bdd.Or(bdd.And(f, g), bdd.And(bdd.Not(f), h))
	assert.True(t, bdd.Equal(bdd.Ite(f, g, h), expected))
	assert.True(t, bdd.Equal(bdd.Ite(g, f, h), bdd.Or(bdd.And(g, f), bdd.And(bdd.Not(g), h))))
	assert.True(t, bdd.Equal(bdd.Ite(x0, bdd.True(), bdd.False()), x0))
	assert.True(t, bdd.Equal(bdd.Ite(x0, bdd.False(), bdd.True()), bdd.NIthvar(0)))
	assert.True(t, bdd.Equal(bdd.Ite(f, h, h), h))
}

//********************************************************************************************

func TestIte_1(t *testing.T) {
	bdd, err := New(4, Nodesize(5000), Cachesize(50))
	require.NoError(t, err)
	n1 := bdd.Makeset([]int{0, 2, 3})
	n2 := bdd.Makeset([]int{0, 3})
	actual := bdd.Equiv(bdd.Ite(n1, n2, bdd.Not(n2)), bdd.Or(bdd.And(n1, n2), bdd.And(bdd.Not(n1), bdd.Not(n2))))
	if !bdd.Equal(actual, bdd.True()) {
		t.Errorf("ite(f,g,h) <=> (f or g) and (-f or h): expected true, actual false")
	}
}

//********************************************************************************************

// TestOperations implements the same tests than the bddtest program in the
// Buddy distribution. It uses function Allsat for checking that all assignments
// are detected.

func TestOperations(t *testing.T) {
	bdd, err := New(4, Nodesize(1000), Cachesize(1000))
	require.NoError(t, err)
	varnum := 4

	test1_check := func(x Node) error {
		allsatBDD := x
		allsatSumBDD := bdd.False()
		// Calculate whole set of asignments and remove all assignments
		// from original set
		err := bdd.Allsat(x, func(varset []int) error {
			x := bdd.True()
			for k, v := range varset {
				switch v {
				case 0:
					x = bdd.And(x, bdd.NIthvar(k))
				case 1:
					x = bdd.And(x, bdd.Ithvar(k))
				}
			}
			t.Logf("Checking bdd with %-4s assignments\n", bdd.Satcount(x))
			// Sum up all assignments
			allsatSumBDD = bdd.Or(allsatSumBDD, x)
			// Remove assignment from initial set
			allsatBDD = bdd.Apply(allsatBDD, x, OPdiff)
			return nil
		})
		if err != nil {
			return err
		}

		// Now the summed set should be equal to the original set and the
		// subtracted set should be empty
		if !bdd.Equal(allsatSumBDD, x) {
			return fmt.Errorf("AllSat sum is not the initial BDD")
		}

		if !bdd.Equal(allsatBDD, bdd.False()) {
			return fmt.Errorf("AllSat is not False")
		}
		return nil
	}

	a := bdd.Ithvar(0)
	b := bdd.Ithvar(1)
	c := bdd.Ithvar(2)
	d := bdd.Ithvar(3)
	na := bdd.NIthvar(0)
	nb := bdd.NIthvar(1)
	nc := bdd.NIthvar(2)
	nd := bdd.NIthvar(3)

	assert.NoError(t, test1_check(bdd.True()))

	assert.NoError(t, test1_check(bdd.False()))

	// a & b | !a & !b
	assert.NoError(t, test1_check(bdd.Or(bdd.And(a, b), bdd.And(na, nb))))

	// a & b | c & d
	assert.NoError(t, test1_check(bdd.Or(bdd.And(a, b), bdd.And(c, d))))

	// a & !b | a & !d | a & b & !c
	assert.NoError(t, test1_check(bdd.Or(bdd.And(a, nb), bdd.And(a, nd), bdd.And(a, b, nc))))

	for i := 0; i < varnum; i++ {
		assert.NoError(t, test1_check(bdd.Ithvar(i)))
		assert.NoError(t, test1_check(bdd.NIthvar(i)))
	}

	set := bdd.True()
	for i := 0; i < 50; i++ {
		v := rand.Intn(varnum)
		s := rand.Intn(2)
		o := rand.Intn(2)

		if o == 0 {
			if s == 0 {
				set = bdd.And(set, bdd.Ithvar(v))
			} else {
				set = bdd.And(set, bdd.NIthvar(v))
			}
		} else {
			if s == 0 {
				set = bdd.Or(set, bdd.Ithvar(v))
			} else {
				set = bdd.Or(set, bdd.NIthvar(v))
			}
		}

		assert.NoError(t, test1_check(set))
	}
	assert.False(t, bdd.Errored(), bdd.Error())
}

//********************************************************************************************

func TestApplyTruthTables(t *testing.T) {
	bdd, err := New(2)
	require.NoError(t, err)
	x, y := bdd.Ithvar(0), bdd.Ithvar(1)
	for op := OPand; op <= OPinvimp; op++ {
		n := bdd.Apply(x, y, op)
		require.NotNil(t, n, "%s: %s", op, bdd.Error())
		for vx := 0; vx < 2; vx++ {
			for vy := 0; vy < 2; vy++ {
				// we restrict n with the assignment (vx, vy)
				r := bdd.And(n, literal(bdd, x, vx == 1), literal(bdd, y, vy == 1))
				expected := op.eval(vx, vy) == 1
				assert.Equal(t, expected, !bdd.Equal(r, bdd.False()), "%s(%d, %d)", op, vx, vy)
			}
		}
	}
}

// literal returns x if v is true, and its negation otherwise.
func literal(b *BDD, x Node, v bool) Node {
	if v {
		return x
	}
	return b.Not(x)
}

func TestApplyOnConstants(t *testing.T) {
	bdd, err := New(1)
	require.NoError(t, err)
	for op := OPand; op <= OPinvimp; op++ {
		for l := 0; l < 2; l++ {
			for r := 0; r < 2; r++ {
				res := bdd.Apply(bdd.From(l == 1), bdd.From(r == 1), op)
				assert.True(t, bdd.Equal(res, bdd.From(op.eval(l, r) == 1)), "%s(%d, %d)", op, l, r)
			}
		}
	}
}

func TestApplyBadOperator(t *testing.T) {
	bdd, err := New(2)
	require.NoError(t, err)
	assert.Nil(t, bdd.Apply(bdd.Ithvar(0), bdd.Ithvar(1), op_not))
	assert.ErrorIs(t, bdd.Err(), ErrInvalidNode)
}

func TestCanonicity(t *testing.T) {
	bdd, err := New(3)
	require.NoError(t, err)
	x, y, z := bdd.Ithvar(0), bdd.Ithvar(1), bdd.Ithvar(2)
	// (x & y) | (x & z) and x & (y | z) are the same function
	n1 := bdd.Or(bdd.And(x, y), bdd.And(x, z))
	n2 := bdd.And(x, bdd.Or(y, z))
	assert.True(t, bdd.Equal(n1, n2))
	assert.Equal(t, n1.id, n2.id)
	// two handles on the same variable are equal
	assert.True(t, bdd.Equal(bdd.Ithvar(1), y))
	assert.False(t, bdd.Equal(x, y))
	assert.False(t, bdd.Equal(nil, nil))
}

func TestCommutativity(t *testing.T) {
	bdd, err := New(4)
	require.NoError(t, err)
	a := bdd.Or(bdd.Ithvar(0), bdd.NIthvar(2))
	b := bdd.And(bdd.Ithvar(1), bdd.Ithvar(3))
	for _, op := range []Operator{OPand, OPor, OPxor, OPnand, OPnor, OPbiimp} {
		assert.True(t, bdd.Equal(bdd.Apply(a, b, op), bdd.Apply(b, a, op)), "%s", op)
	}
	// implication is not commutative
	assert.False(t, bdd.Equal(bdd.Imp(a, b), bdd.Imp(b, a)))
	assert.True(t, bdd.Equal(bdd.Imp(a, b), bdd.Apply(b, a, OPinvimp)))
}

func TestDeMorgan(t *testing.T) {
	bdd, err := New(4)
	require.NoError(t, err)
	a := bdd.Xor(bdd.Ithvar(0), bdd.Ithvar(3))
	b := bdd.Imp(bdd.Ithvar(1), bdd.NIthvar(2))
	assert.True(t, bdd.Equal(bdd.Not(bdd.And(a, b)), bdd.Or(bdd.Not(a), bdd.Not(b))))
	assert.True(t, bdd.Equal(bdd.Not(bdd.Or(a, b)), bdd.And(bdd.Not(a), bdd.Not(b))))
	assert.True(t, bdd.Equal(bdd.Not(bdd.Not(a)), a))
	assert.True(t, bdd.Equal(bdd.Not(bdd.Ithvar(2)), bdd.NIthvar(2)))
}

func TestExist(t *testing.T) {
	bdd, err := New(3)
	require.NoError(t, err)
	x, y, z := bdd.Ithvar(0), bdd.Ithvar(1), bdd.Ithvar(2)
	n := bdd.And(x, bdd.Or(y, z))
	assert.True(t, bdd.Equal(bdd.Exist(n, bdd.Makeset([]int{1, 2})), x))
	assert.True(t, bdd.Equal(bdd.Exist(n, bdd.Makeset([]int{0})), bdd.Or(y, z)))
	assert.True(t, bdd.Equal(bdd.Exist(n, bdd.True()), n))
	// results cached for one varset are not reused for another
	for i := 0; i < 3; i++ {
		assert.True(t, bdd.Equal(bdd.Exist(n, bdd.Makeset([]int{1})), x))
		assert.True(t, bdd.Equal(bdd.Exist(n, bdd.Makeset([]int{0, 1})), bdd.True()))
		assert.True(t, bdd.Equal(bdd.Exist(n, bdd.Makeset([]int{2})), bdd.Or(bdd.And(x, y), bdd.And(x, bdd.Not(y)))))
	}
	assert.False(t, bdd.Errored(), bdd.Error())
	assert.Equal(t, []int{1, 2}, bdd.Scanset(bdd.Makeset([]int{2, 1})))
}

func TestSatcount(t *testing.T) {
	bdd, err := New(10)
	require.NoError(t, err)
	assert.Zero(t, bdd.Satcount(bdd.True()).Cmp(big.NewInt(1024)))
	assert.Zero(t, bdd.Satcount(bdd.False()).Sign())
	assert.Zero(t, bdd.Satcount(bdd.Ithvar(9)).Cmp(big.NewInt(512)))
	assert.Zero(t, bdd.Satcount(bdd.Xor(bdd.Ithvar(0), bdd.Ithvar(5))).Cmp(big.NewInt(512)))

	large, err := New(100)
	require.NoError(t, err)
	expected := new(big.Int).Lsh(big.NewInt(1), 100)
	assert.Zero(t, large.Satcount(large.True()).Cmp(expected))
}
