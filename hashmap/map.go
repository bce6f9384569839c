package hashmap

import (
	"github.com/mkrou/robinmap"
)

// EqualFn decides key equality for a Map. It is fixed at construction time.
type EqualFn[K any] func(a, b K) bool

// defaultEqual wraps the '==' operator for comparable keys.
func defaultEqual[K comparable](a, b K) bool {
	return a == b
}

// Options configures New. Zero-value fields fall back to defaults:
// Capacity to 16, LoadFactor to 0.88, Hasher to robinmap.GetHasher[K](),
// Equal to '=='.
type Options[K comparable, V any] struct {
	Capacity   int
	LoadFactor float64
	Hasher     robinmap.HashFn[K]
	Equal      EqualFn[K]
}

// Map is a hash table with comparator-based key equality: open addressing,
// linear probing, Robin Hood displacement on insert, backshift on delete,
// and a hard per-lookup probe budget derived from capacity. It is not safe
// for concurrent use, does not support iteration, and keeps no tombstones.
type Map[K comparable, V any] struct {
	core   *core[K, V]
	hasher robinmap.HashFn[K]
	equal  EqualFn[K]
}

// New constructs a Map from the given Options, filling in defaults for any
// zero-valued field.
func New[K comparable, V any](opts Options[K, V]) *Map[K, V] {
	if opts.LoadFactor <= 0 {
		opts.LoadFactor = 0.88
	}
	if opts.Hasher == nil {
		opts.Hasher = robinmap.GetHasher[K]()
	}
	if opts.Equal == nil {
		opts.Equal = defaultEqual[K]
	}

	return &Map[K, V]{
		core:   newCore[K, V](uint64(opts.Capacity), opts.LoadFactor),
		hasher: opts.Hasher,
		equal:  opts.Equal,
	}
}

// NewMap constructs a Map with default capacity (16), default load factor
// (0.88), and the default hasher/equality for K.
func NewMap[K comparable, V any]() *Map[K, V] {
	return New[K, V](Options[K, V]{})
}

// find scans the probe window for key starting at home, terminating at the
// first empty slot. It returns the slot index and whether key was found.
func (m *Map[K, V]) find(home uint64, key K) (uint64, bool) {
	for i := uint8(0); i < m.core.probeLimit; i++ {
		idx := home + uint64(i)
		s := &m.core.entries[idx]
		if s.isEmpty() {
			return 0, false
		}
		if m.equal(s.key, key) {
			return idx, true
		}
	}
	return 0, false
}

// Insert maps key to val and reports true, unless key is already present,
// in which case the table is left untouched and Insert reports false. Use
// Update to overwrite an existing key's value.
func (m *Map[K, V]) Insert(key K, val V) bool {
	if m.core.needsGrow() {
		m.core.grow()
	}

	hash := m.hasher(key)
	home := m.core.homeIndex(hash)

	if _, found := m.find(home, key); found {
		return false
	}

	m.core.insertRaw(hash, key, val)
	return true
}

// Get returns the value stored for key, or false if key is absent.
func (m *Map[K, V]) Get(key K) (V, bool) {
	home := m.core.homeIndex(m.hasher(key))
	if idx, found := m.find(home, key); found {
		return m.core.entries[idx].value, true
	}
	var zero V
	return zero, false
}

// Fetch returns the value stored for key, or ErrKeyNotFound if key is
// absent.
func (m *Map[K, V]) Fetch(key K) (V, error) {
	v, ok := m.Get(key)
	if !ok {
		return v, fetchError(key)
	}
	return v, nil
}

// Update overwrites the value stored for key. It is a silent no-op if key
// is absent — callers that need to distinguish absence should call Get
// first.
func (m *Map[K, V]) Update(key K, val V) {
	home := m.core.homeIndex(m.hasher(key))
	if idx, found := m.find(home, key); found {
		m.core.entries[idx].value = val
	}
}

// Remove deletes key via backshift. It is a silent no-op if key is absent
// and never triggers a resize.
func (m *Map[K, V]) Remove(key K) {
	home := m.core.homeIndex(m.hasher(key))
	if idx, found := m.find(home, key); found {
		m.core.removeAt(idx)
	}
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int {
	return m.core.len()
}

// Cap returns the length of the backing array, including the probe-limit
// tail.
func (m *Map[K, V]) Cap() int {
	return m.core.cap()
}

// Load returns count/capacity, the current load factor.
func (m *Map[K, V]) Load() float64 {
	return m.core.load()
}
