package robinmap

import "golang.org/x/exp/constraints"

// Integer is the set of fixed-width, bit-comparable integer types accepted
// as keys by hashmap.NumericMap: its equality test compares stored hashes
// instead of keys, which is only sound for key types this narrow.
type Integer = constraints.Integer
