// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "fmt"

// Operator describe the potential (binary) operations available on an Apply.
type Operator int

const (
	OPand       Operator = iota // Boolean conjunction
	OPxor                       // Exclusive or
	OPor                        // Disjunction
	OPnand                      // Negation of and
	OPnor                       // Negation of or
	OPimp                       // Implication
	OPbiimp                     // Equivalence
	OPdiff                      // Difference
	OPless                      // Set difference
	OPinvimp                    // Reverse implication
	op_not                      // Negation. Should not be used in apply, but used in caches
	op_simplify                 // same
)

var opnames = [12]string{
	OPand:       "and",
	OPxor:       "xor",
	OPor:        "or",
	OPnand:      "nand",
	OPnor:       "nor",
	OPimp:       "imp",
	OPbiimp:     "biimp",
	OPdiff:      "diff",
	OPless:      "less",
	OPinvimp:    "invimp",
	op_not:      "not",
	op_simplify: "simplify",
}

func (op Operator) String() string {
	if op < 0 || int(op) >= len(opnames) {
		return fmt.Sprintf("Operator(%d)", int(op))
	}
	return opnames[op]
}

// commutative reports whether the operands of op can be swapped. We use it to
// normalize the order of operands before a cache lookup.
func (op Operator) commutative() bool {
	switch op {
	case OPand, OPxor, OPor, OPnand, OPnor, OPbiimp:
		return true
	}
	return false
}

// optable gives the truth table of each binary operator. Bit 2*l+r is the
// value of (l op r) for the constants l and r.
var optable = [...]uint8{
	OPand:    0b1000,
	OPxor:    0b0110,
	OPor:     0b1110,
	OPnand:   0b0111,
	OPnor:    0b0001,
	OPimp:    0b1011,
	OPbiimp:  0b1001,
	OPdiff:   0b0100,
	OPless:   0b0010,
	OPinvimp: 0b1101,
}

// eval returns the value of (l op r) when l and r are the constant nodes 0 or
// 1.
func (op Operator) eval(l, r int) int {
	return int(optable[op]>>(2*l+r)) & 1
}
