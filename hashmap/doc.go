// Package hashmap provides two bounded-probe Robin Hood hash tables: Map,
// for comparator-equality keys, and NumericMap, for fixed-width integer
// keys compared by hash alone. Both are open-addressed with linear probing,
// grow by doubling when either the load factor or the per-lookup probe
// budget would be exceeded, and delete via backshift rather than
// tombstones. Neither type is safe for concurrent use, supports iteration,
// or keeps references stable across a resize.
package hashmap
