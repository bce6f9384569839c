package hashmap

import (
	"github.com/mkrou/robinmap"
)

// NumericOptions configures NewNumeric. Zero-value fields fall back to
// defaults: Capacity to 16, LoadFactor to 0.88, Hasher to an invertible
// 64-bit avalanche mix (see numericHash).
type NumericOptions[K robinmap.Integer, V any] struct {
	Capacity   int
	LoadFactor float64
	Hasher     robinmap.HashFn[K]
}

// NumericMap is a hash table for fixed-width integer keys. Unlike Map, it
// never calls an equality operation on K: two keys are considered equal
// when their full 64-bit hashes match. This is only sound if the hasher
// never collides for the key domain in use — see numericHash's doc comment
// for why the default hasher meets that bar for any K up to 64 bits wide.
//
// Aside from key handling, NumericMap shares Map's probe protocol,
// non-upserting Insert, and backshift Remove exactly.
type NumericMap[K robinmap.Integer, V any] struct {
	core   *core[K, V]
	hasher robinmap.HashFn[K]
}

// numericHash is the default hasher for NumericMap. It is the MurmurHash3
// 64-bit finalizer: every step (xor-shift, odd-constant multiply mod 2^64)
// is individually invertible, so the function as a whole is a bijection on
// uint64. Consequently, for any integer key type of width <= 64 bits, two
// distinct key values can never hash to the same value — hash equality
// really does imply key equality, not just "collisions are improbable".
func numericHash[K robinmap.Integer](key K) uint64 {
	u := uint64(key)
	u ^= u >> 33
	u *= 0xff51afd7ed558ccd
	u ^= u >> 33
	u *= 0xc4ceb9fe1a85ec53
	u ^= u >> 33
	return u
}

// NewNumeric constructs a NumericMap from the given NumericOptions, filling
// in defaults for any zero-valued field.
func NewNumeric[K robinmap.Integer, V any](opts NumericOptions[K, V]) *NumericMap[K, V] {
	if opts.LoadFactor <= 0 {
		opts.LoadFactor = 0.88
	}
	if opts.Hasher == nil {
		opts.Hasher = numericHash[K]
	}

	return &NumericMap[K, V]{
		core:   newCore[K, V](uint64(opts.Capacity), opts.LoadFactor),
		hasher: opts.Hasher,
	}
}

// NewNumericMap constructs a NumericMap with default capacity (16), default
// load factor (0.88), and the default bijective hasher for K.
func NewNumericMap[K robinmap.Integer, V any]() *NumericMap[K, V] {
	return NewNumeric[K, V](NumericOptions[K, V]{})
}

// find scans the probe window for hash starting at home, comparing stored
// hashes rather than keys. It terminates early the moment a slot's PSL
// drops below the current probe distance i: Robin Hood displacement
// guarantees that a key belonging to home would carry PSL >= i at this
// position, so a smaller PSL here means that key's home lies further
// right and our target cannot be present at or beyond this slot.
func (m *NumericMap[K, V]) find(home uint64, hash uint64) (uint64, bool) {
	for i := uint8(0); i < m.core.probeLimit; i++ {
		idx := home + uint64(i)
		s := &m.core.entries[idx]
		if s.isEmpty() {
			return 0, false
		}
		if s.psl < int8(i) {
			return 0, false
		}
		if s.hash == hash {
			return idx, true
		}
	}
	return 0, false
}

// Insert maps key to val and reports true, unless key is already present,
// in which case the table is left untouched and Insert reports false. Use
// Update to overwrite an existing key's value.
func (m *NumericMap[K, V]) Insert(key K, val V) bool {
	if m.core.needsGrow() {
		m.core.grow()
	}

	hash := m.hasher(key)
	home := m.core.homeIndex(hash)

	if _, found := m.find(home, hash); found {
		return false
	}

	m.core.insertRaw(hash, key, val)
	return true
}

// Get returns the value stored for key, or false if key is absent.
func (m *NumericMap[K, V]) Get(key K) (V, bool) {
	hash := m.hasher(key)
	home := m.core.homeIndex(hash)
	if idx, found := m.find(home, hash); found {
		return m.core.entries[idx].value, true
	}
	var zero V
	return zero, false
}

// Fetch returns the value stored for key, or ErrKeyNotFound if key is
// absent.
func (m *NumericMap[K, V]) Fetch(key K) (V, error) {
	v, ok := m.Get(key)
	if !ok {
		return v, fetchError(key)
	}
	return v, nil
}

// Update overwrites the value stored for key. It is a silent no-op if key
// is absent.
func (m *NumericMap[K, V]) Update(key K, val V) {
	hash := m.hasher(key)
	home := m.core.homeIndex(hash)
	if idx, found := m.find(home, hash); found {
		m.core.entries[idx].value = val
	}
}

// Remove deletes key via backshift. It is a silent no-op if key is absent
// and never triggers a resize.
func (m *NumericMap[K, V]) Remove(key K) {
	hash := m.hasher(key)
	home := m.core.homeIndex(hash)
	if idx, found := m.find(home, hash); found {
		m.core.removeAt(idx)
	}
}

// Len returns the number of live entries.
func (m *NumericMap[K, V]) Len() int {
	return m.core.len()
}

// Cap returns the length of the backing array, including the probe-limit
// tail.
func (m *NumericMap[K, V]) Cap() int {
	return m.core.cap()
}

// Load returns count/capacity, the current load factor.
func (m *NumericMap[K, V]) Load() float64 {
	return m.core.load()
}
