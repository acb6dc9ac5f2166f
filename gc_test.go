// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"math/big"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chain returns x0 & x1 & ... & xk-1 but builds (and drops) a lot of
// intermediate nodes in the process.
func chain(b *BDD, k int) Node {
	res := b.True()
	for i := 0; i < k; i++ {
		// xor with a fresh variable, then remove it again
		tmp := b.Xor(res, b.Ithvar((i+1)%k))
		tmp = b.Xor(tmp, b.Ithvar((i+1)%k))
		res = b.And(tmp, b.Ithvar(i))
	}
	return res
}

func TestGCTransparency(t *testing.T) {
	bdd, err := New(8, Nodesize(150), Maxnodesize(150), Cachesize(20))
	require.NoError(t, err)
	x := bdd.Or(bdd.And(bdd.Ithvar(0), bdd.Ithvar(3)), bdd.NIthvar(5))
	before := bdd.Print(x)
	count := bdd.Satcount(x)
	for i := 0; i < 20; i++ {
		n := chain(bdd, 8)
		require.NotNil(t, n, bdd.Error())
		runtime.GC()
		require.NoError(t, bdd.GC())
	}
	// live nodes never move and keep their meaning
	assert.Equal(t, before, bdd.Print(x))
	assert.Zero(t, count.Cmp(bdd.Satcount(x)))
	assert.True(t, bdd.Equal(x, bdd.Or(bdd.NIthvar(5), bdd.And(bdd.Ithvar(3), bdd.Ithvar(0)))))
	assert.Equal(t, 150, bdd.Snapshot().Nodes)
	assert.Greater(t, bdd.Snapshot().GCs, 0)
	assert.False(t, bdd.Errored(), bdd.Error())
}

func TestRelease(t *testing.T) {
	bdd, err := New(4)
	require.NoError(t, err)
	n := bdd.And(bdd.Ithvar(0), bdd.Ithvar(1))
	id := n.id
	require.NoError(t, bdd.Release(n))
	assert.ErrorIs(t, bdd.Release(n), ErrState)
	assert.Nil(t, bdd.Not(n))
	assert.ErrorIs(t, bdd.Err(), ErrState)

	require.NoError(t, bdd.GC())
	assert.Equal(t, -1, bdd.nodes[id].low, "released node should be reclaimed")
	// constants and variables are never released
	require.NoError(t, bdd.Release(bdd.True()))
	v := bdd.Ithvar(2)
	require.NoError(t, bdd.Release(v))
	require.NoError(t, bdd.GC())
	assert.True(t, bdd.Equal(bdd.Ithvar(2), bdd.Ithvar(2)))
	assert.Zero(t, bdd.Satcount(bdd.Ithvar(2)).Cmp(big.NewInt(8)))
}

func TestRefcount(t *testing.T) {
	bdd, err := New(4)
	require.NoError(t, err)
	n := bdd.And(bdd.Ithvar(0), bdd.Ithvar(1))
	id := n.id
	bdd.AddRef(n)
	require.NoError(t, bdd.Release(n))
	require.NoError(t, bdd.GC())
	// still referenced by AddRef
	assert.NotEqual(t, -1, bdd.nodes[id].low)
	m := bdd.And(bdd.Ithvar(1), bdd.Ithvar(0))
	assert.Equal(t, id, m.id)
	bdd.DelRef(m)
	require.NoError(t, bdd.Release(m))
	require.NoError(t, bdd.GC())
	assert.Equal(t, -1, bdd.nodes[id].low)
}

func TestOutOfNodes(t *testing.T) {
	// 10 variables use 22 slots, we keep all the nodes alive
	bdd, err := New(10, Nodesize(40), Maxnodesize(40))
	require.NoError(t, err)
	live := []Node{}
	var res Node
	for i := 0; i < 10 && !bdd.Errored(); i++ {
		for j := i + 1; j < 10 && !bdd.Errored(); j++ {
			res = bdd.Xor(bdd.Ithvar(i), bdd.Ithvar(j))
			live = append(live, res)
		}
	}
	assert.Nil(t, res)
	assert.ErrorIs(t, bdd.Err(), ErrOutOfNodes)
	assert.Equal(t, 40, bdd.Snapshot().Nodes)
	runtime.KeepAlive(live)
}

func TestResize(t *testing.T) {
	bdd, err := New(10, Nodesize(30), Maxnodeincrease(0))
	require.NoError(t, err)
	live := []Node{}
	for i := 0; i < 10; i++ {
		for j := i + 1; j < 10; j++ {
			live = append(live, bdd.Xor(bdd.Ithvar(i), bdd.Ithvar(j)))
		}
	}
	assert.False(t, bdd.Errored(), bdd.Error())
	assert.Greater(t, bdd.Snapshot().Nodes, 30)
	for _, n := range live {
		assert.Zero(t, bdd.Satcount(n).Cmp(big.NewInt(512)))
	}
}

func TestStaleHandles(t *testing.T) {
	b1, err := New(3)
	require.NoError(t, err)
	b2, err := New(3)
	require.NoError(t, err)
	n := b1.And(b1.Ithvar(0), b1.Ithvar(1))
	assert.Nil(t, b2.Not(n))
	assert.ErrorIs(t, b2.Err(), ErrState)

	require.NoError(t, b1.Done())
	assert.ErrorIs(t, b1.Done(), ErrState)
	assert.Nil(t, b1.Not(n))
	assert.ErrorIs(t, b1.Err(), ErrState)
	assert.Nil(t, b1.Ithvar(0))
	assert.ErrorIs(t, b1.GC(), ErrState)
	assert.ErrorIs(t, b1.SetVarnum(5), ErrState)
}

func TestDeadqueue(t *testing.T) {
	bdd, err := New(4)
	require.NoError(t, err)
	n := bdd.And(bdd.Ithvar(0), bdd.Ithvar(1))
	id := n.id
	assert.Equal(t, int32(1), bdd.nodes[id].refcou)
	// what the finalizer does when the handle is reclaimed
	bdd.dead.push(id)
	bdd.delrefs()
	assert.Equal(t, int32(0), bdd.nodes[id].refcou)
	runtime.KeepAlive(n)
}

// Finalizers run on their own goroutine while we collect; running this test
// with -race and the debug tag checks the finalizer counters.
func TestGCWithFinalizers(t *testing.T) {
	bdd, err := New(8, Nodesize(200))
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		for k := 0; k < 8; k++ {
			bdd.Xor(bdd.Ithvar(k), bdd.Ithvar((k+i)%8))
		}
		runtime.GC()
		require.NoError(t, bdd.GC())
	}
	assert.False(t, bdd.Errored(), bdd.Error())
	assert.GreaterOrEqual(t, bdd.Snapshot().GCs, 20)
}
