// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package robdd defines a concrete type for Reduced Ordered Binary Decision
Diagrams (BDD), a data structure used to efficiently represent Boolean
functions over a fixed set of variables or, equivalently, sets of Boolean
vectors with a fixed size.

# Basics

Each BDD has a number of variables, Varnum, declared when it is initialized
(using the function New) or later with SetVarnum, and each variable is
represented by an (integer) index in the interval [0..Varnum), called a level.
Our library support the creation of multiple BDD with possibly different
number of variables. It is also possible to use a default BDD, shared by the
whole program, with the functions Init, SetVarnum, Default and Done.

Most operations over BDD return a Node; that is a reference to a "vertex" in
the BDD that includes a variable level, and the address of the low and high
branch for this node. Nodes are canonical: two Nodes denote the same Boolean
function if and only if they are Equal. Operations that fail return nil and
record the first error, which can be tested with Errored and retrieved with
Err. All the errors wrap one of the sentinel values, such as ErrOutOfNodes,
that can be tested using errors.Is.

# Implementation

For the most part, data structures and algorithms implemented in this library
are a direct adaptation of those found in the C-library BuDDy, developed by
Jorn Lind-Nielsen. Nodes are stored in a single table that also holds the
unicity table, as a set of hash chains, and operations use direct-mapped
caches that are invalidated after each garbage collection. The table has a
fixed capacity when Nodesize and Maxnodesize are equal; otherwise it grows
when there are too few free nodes left after a collection.

To get access to better statistics about caches and garbage collection, as
well as to unlock logging of some operations, you can compile your executable
with the build tag `debug`. Logs are emitted with logrus, see the Logger
option, and statistics can be exported to Prometheus with NewCollector.

# Automatic memory management

The library is written in pure Go, without the need for CGo. Like with MuDDy,
a ML interface to BuDDy, we piggyback on the garbage collection mechanism
offered by our host language. "External" references to BDD nodes made by user
code are automatically managed by the Go runtime: a node is reclaimed, during
the next garbage collection of the BDD, once all the Nodes referencing it are
unreachable. References can also be dropped eagerly with Release. Garbage
collection never moves a node, so live Nodes stay valid.
*/
package robdd
