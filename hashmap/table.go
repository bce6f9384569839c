package hashmap

import (
	"github.com/mkrou/robinmap"
)

// fibMultiplier64 is floor(2^64 / phi), the Fibonacci-hashing multiplier.
// Multiplying a hash by this and keeping the high bits spreads even a
// poorly-mixed hash across the table without a secondary mixing step.
const fibMultiplier64 = 0x9E3779B97F4A7C15

const minCapacity = 16

// core is the slot array, capacity/resize policy, and Robin Hood probe
// kernel shared by Map and NumericMap. It knows nothing about key equality:
// callers locate the slot for a key themselves (via their own equality
// hook) and hand core the index to act on.
type core[K any, V any] struct {
	entries    []slot[K, V]
	capacity   uint64
	probeLimit uint8
	shift      uint
	count      uint64
	loadFactor float64
}

func newCore[K any, V any](capacity uint64, loadFactor float64) *core[K, V] {
	if capacity < minCapacity {
		capacity = minCapacity
	}
	capacity = robinmap.NextPowerOf2(capacity)

	probeLimit := robinmap.Log2(capacity)
	if probeLimit > 15 {
		probeLimit = 15
	}

	return &core[K, V]{
		entries:    newSlots[K, V](capacity + probeLimit),
		capacity:   capacity,
		probeLimit: uint8(probeLimit),
		shift:      64 - uint(robinmap.Log2(capacity)),
		loadFactor: loadFactor,
	}
}

// homeIndex maps a hash to its home slot via Fibonacci multiply-shift.
func (c *core[K, V]) homeIndex(hash uint64) uint64 {
	return (hash * fibMultiplier64) >> c.shift
}

func (c *core[K, V]) needsGrow() bool {
	return c.count >= c.capacity || float64(c.count)/float64(c.capacity) > c.loadFactor
}

func (c *core[K, V]) len() int {
	return int(c.count)
}

// cap reports the full backing array length, including the probe-limit tail.
func (c *core[K, V]) cap() int {
	return len(c.entries)
}

func (c *core[K, V]) load() float64 {
	return float64(c.count) / float64(c.capacity)
}

// emplace runs the Robin Hood creed ("take from the rich, give to the
// poor") starting at idx: it walks forward, swapping *cand into any slot
// whose occupant has a smaller PSL, until an empty slot is found. It
// returns false if the candidate's PSL would reach probeLimit before a slot
// opens up. Swaps made before that point stay in c.entries, and *cand then
// holds the entry that was displaced last — the caller must grow the table
// and re-insert that entry from scratch.
func (c *core[K, V]) emplace(cand *slot[K, V], idx uint64) bool {
	for {
		if cand.psl == int8(c.probeLimit) {
			return false
		}

		s := &c.entries[idx]
		if s.isEmpty() {
			*s = *cand
			c.count++
			return true
		}

		if cand.psl > s.psl {
			robinmap.Swap(cand, s)
		}

		cand.psl++
		idx++
	}
}

// insertRaw places (key, value, hash) without any existence check — used
// both by callers that already confirmed the key is absent, and by grow's
// rebuild, where the old table's invariants already guarantee uniqueness.
// Whenever emplace gives up, it grows the table and re-inserts the entry
// emplace was left holding, as many times as emplace demands; this
// terminates because grow strictly doubles capacity.
func (c *core[K, V]) insertRaw(hash uint64, key K, value V) {
	cand := slot[K, V]{key: key, value: value, hash: hash, psl: 0}
	for !c.emplace(&cand, c.homeIndex(cand.hash)) {
		c.grow()
		cand.psl = 0
	}
}

// grow doubles capacity and re-homes every occupied slot.
func (c *core[K, V]) grow() {
	old := c.entries
	bigger := newCore[K, V](c.capacity*2, c.loadFactor)
	*c = *bigger

	for i := range old {
		if !old[i].isEmpty() {
			c.insertRaw(old[i].hash, old[i].key, old[i].value)
		}
	}
}

// removeAt clears the slot at idx and backshifts every subsequent
// not-at-home entry one slot earlier, restoring invariant 3 without
// tombstones. hole and next are two live cursors advanced in lockstep,
// which is what keeps this correct regardless of how far the next
// not-at-home run extends (a literal "idx-1" target does not track a hole
// that has already moved).
func (c *core[K, V]) removeAt(idx uint64) {
	c.entries[idx].clear()
	c.count--

	hole := idx
	next := idx + 1
	for next < uint64(len(c.entries)) && !c.entries[next].isEmpty() && c.entries[next].psl > 0 {
		c.entries[next].psl--
		c.entries[hole] = c.entries[next]
		c.entries[next].clear()
		hole = next
		next++
	}
}
