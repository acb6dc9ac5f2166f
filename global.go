// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"sync"

	"github.com/pkg/errors"
)

// The default BDD is shared by the package level functions Init, SetVarnum,
// Done and Default. It is an alternative to passing a *BDD around, for
// programs that only need one.
var global struct {
	sync.Mutex
	b *BDD
}

// Init initializes the default BDD with a node table of fixed capacity
// nodesize and operation caches with cachesize entries. It returns an error
// wrapping ErrCapacity if one of the sizes is not positive, and ErrState if
// the default BDD is already initialized. Variables must be declared
// afterwards with SetVarnum.
func Init(nodesize, cachesize int) error {
	if nodesize <= 0 || cachesize <= 0 {
		return errors.Wrapf(ErrCapacity, "bad sizes (nodes: %d, cache: %d) in Init", nodesize, cachesize)
	}
	global.Lock()
	defer global.Unlock()
	if global.b != nil {
		return errors.Wrap(ErrState, "default BDD already initialized")
	}
	b, err := New(0, Nodesize(nodesize), Maxnodesize(nodesize), Cachesize(cachesize))
	if err != nil {
		return err
	}
	global.b = b
	return nil
}

// SetVarnum sets the number of variables of the default BDD. See method
// SetVarnum of BDD for the restrictions.
func SetVarnum(num int) error {
	b, err := Default()
	if err != nil {
		return err
	}
	return b.SetVarnum(num)
}

// Done closes the default BDD. Nodes built with it become stale and Init can be
// called again.
func Done() error {
	global.Lock()
	defer global.Unlock()
	if global.b == nil {
		return errors.Wrap(ErrState, "default BDD not initialized")
	}
	err := global.b.Done()
	global.b = nil
	return err
}

// Default returns the default BDD, or an error wrapping ErrState if Init was
// not called.
func Default() (*BDD, error) {
	global.Lock()
	defer global.Unlock()
	if global.b == nil {
		return nil, errors.Wrap(ErrState, "default BDD not initialized")
	}
	return global.b, nil
}
