// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetXor(t *testing.T) {
	bdd, err := New(5, Nodesize(10000), Cachesize(10000))
	require.NoError(t, err)
	V := make([]Node, 5)
	for i := range V {
		V[i] = bdd.Ithvar(i)
	}
	a := bdd.And(V[0], bdd.Not(V[1]), V[2], bdd.Not(V[3]))
	b := bdd.And(V[0], V[1], V[2], bdd.Not(V[3]))
	c := bdd.And(bdd.Not(V[0]), V[1], bdd.Not(V[2]), bdd.Not(V[3]))

	var setxorTests = []struct {
		name     string
		left     Node
		right    Node
		expected Node
	}{
		{"a^b", a, b, c},
		{"b^a", b, a, c},
		{"b^c", b, c, a},
		{"c^b", c, b, a},
		{"a^c", a, c, b},
		{"c^a", c, a, b},
	}
	for _, tt := range setxorTests {
		actual := bdd.SetXor(tt.left, tt.right)
		assert.True(t, bdd.Equal(tt.expected, actual), "%s: expected %s, actual %s", tt.name, bdd.SetString(tt.expected), bdd.SetString(actual))
	}

	d := bdd.And(V[1], V[2], bdd.Not(V[3]), V[4])
	e := bdd.And(V[0], V[1], bdd.Not(V[2]), bdd.Not(V[3]), V[4])
	assert.True(t, bdd.Equal(e, bdd.SetXor(a, d)))
	assert.True(t, bdd.Equal(e, bdd.SetXor(d, a)))
	assert.False(t, bdd.Errored(), bdd.Error())
}

func TestSetXorConstants(t *testing.T) {
	bdd, err := New(3)
	require.NoError(t, err)
	x := bdd.And(bdd.Ithvar(0), bdd.NIthvar(2))
	assert.True(t, bdd.Equal(bdd.SetXor(x, bdd.True()), x))
	assert.True(t, bdd.Equal(bdd.SetXor(bdd.True(), x), x))
	assert.True(t, bdd.Equal(bdd.SetXor(x, bdd.False()), bdd.False()))
	assert.True(t, bdd.Equal(bdd.SetXor(bdd.True(), bdd.True()), bdd.True()))
	// a literal xor itself is its negative form
	assert.True(t, bdd.Equal(bdd.SetXor(bdd.Ithvar(1), bdd.Ithvar(1)), bdd.NIthvar(1)))
	assert.True(t, bdd.Equal(bdd.SetXor(bdd.NIthvar(1), bdd.NIthvar(1)), bdd.NIthvar(1)))
}

func TestSetXorDistributes(t *testing.T) {
	bdd, err := New(3)
	require.NoError(t, err)
	// (x0 | x1) has two paths: x0 and -x0 & x1
	n := bdd.Or(bdd.Ithvar(0), bdd.Ithvar(1))
	actual := bdd.SetXor(n, bdd.Ithvar(2))
	expected := bdd.Or(
		bdd.And(bdd.Ithvar(0), bdd.Ithvar(2)),
		bdd.And(bdd.NIthvar(0), bdd.Ithvar(1), bdd.Ithvar(2)))
	assert.True(t, bdd.Equal(expected, actual), "actual %s", bdd.SetString(actual))
	assert.True(t, bdd.Equal(actual, bdd.SetXor(bdd.Ithvar(2), n)))
}

func TestSetXorErrors(t *testing.T) {
	bdd, err := New(3)
	require.NoError(t, err)
	assert.Nil(t, bdd.SetXor(nil, bdd.True()))
	assert.ErrorIs(t, bdd.Err(), ErrInvalidNode)

	other, err := New(3)
	require.NoError(t, err)
	assert.Nil(t, other.SetXor(other.Ithvar(0), bdd.Ithvar(0)))
	assert.ErrorIs(t, other.Err(), ErrState)
}
