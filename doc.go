// Package robinmap provides the hashing and arithmetic primitives shared by
// the hash table implementations in the hashmap subpackage: a default hasher
// for Go's built-in key kinds, power-of-two rounding, a fast floor(log2), and
// a value-swap helper used by the Robin Hood displacement step.
package robinmap
