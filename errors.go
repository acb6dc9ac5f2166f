// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import (
	"github.com/pkg/errors"
)

// Errors reported by the library. Errors returned by a BDD wrap one of these
// values with some context, so they should be tested using errors.Is.
var (
	// ErrCapacity is returned when a size parameter (number of nodes, cache
	// entries or variables) is out of range.
	ErrCapacity = errors.New("bad capacity")

	// ErrState is returned when an operation is used on a BDD that is not
	// initialized or was already closed, when using a stale Node, or when
	// changing the number of variables after nodes have been built.
	ErrState = errors.New("bad state")

	// ErrOrdering signals that a node would break the variable order. This is
	// an internal error and should never happen.
	ErrOrdering = errors.New("variable ordering violated")

	// ErrOutOfNodes is returned when garbage collection (and resizing, if
	// allowed) cannot free enough space in the node table.
	ErrOutOfNodes = errors.New("unable to free memory or resize BDD")

	// ErrUnsatisfiable is returned when asking for a satisfying assignment of
	// the constant False.
	ErrUnsatisfiable = errors.New("unsatisfiable")

	// ErrUnknownVariable is returned when using a variable outside of the
	// range [0..Varnum).
	ErrUnknownVariable = errors.New("unknown variable")

	// ErrInvalidNode is returned when using a nil Node or a Node that does not
	// correspond to an active node in the table.
	ErrInvalidNode = errors.New("invalid node")
)

// Error returns the error status of the BDD. We return an empty string if
// there are no errors.
func (b *BDD) Error() string {
	if b.err == nil {
		return ""
	}
	return b.err.Error()
}

// Errored returns true if there was an error during a computation.
func (b *BDD) Errored() bool {
	return b.err != nil
}

// Err returns the first error that occurred during a computation, or nil.
func (b *BDD) Err() error {
	return b.err
}

// seterror records err, wrapped with the given context, as the error status of
// b and returns a nil Node so that it can be used in return position. Only the
// first error is kept; later ones are logged.
func (b *BDD) seterror(err error, format string, a ...interface{}) Node {
	b.seterrorf(err, format, a...)
	return nil
}

// seterrorf is like seterror but returns the wrapped error.
func (b *BDD) seterrorf(err error, format string, a ...interface{}) error {
	err = errors.Wrapf(err, format, a...)
	if b.err != nil {
		b.log.WithError(err).Debug("error while in error state")
		return err
	}
	b.err = err
	b.log.WithError(err).Warn("bdd error")
	return err
}
