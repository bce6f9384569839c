package hashmap_test

import (
	"math/rand"
	"testing"

	"github.com/mkrou/robinmap/hashmap"
)

func TestNumericMapBasic(t *testing.T) {
	m := hashmap.NewNumericMap[uint64, string]()

	if !m.Insert(1, "a") || !m.Insert(2, "b") {
		t.Fatal("insert of fresh keys should report true")
	}
	if v, ok := m.Get(2); !ok || v != "b" {
		t.Fatalf("Get(2) = %q, %v, want \"b\", true", v, ok)
	}
	if _, ok := m.Get(3); ok {
		t.Fatal("Get(3) should report absent")
	}
}

func TestNumericMapInsertDoesNotUpsert(t *testing.T) {
	m := hashmap.NewNumericMap[uint32, int]()
	m.Insert(7, 100)

	if m.Insert(7, 200) {
		t.Fatal("second insert of an existing key should report false")
	}
	if v, _ := m.Get(7); v != 100 {
		t.Fatalf("value after duplicate insert = %d, want 100 (unchanged)", v)
	}
}

func TestNumericMapUpdateAndRemove(t *testing.T) {
	m := hashmap.NewNumericMap[uint64, int]()
	for i := uint64(1); i <= 200; i++ {
		m.Insert(i, int(i))
	}

	m.Update(50, -1)
	if v, _ := m.Get(50); v != -1 {
		t.Fatalf("Get(50) after Update = %d, want -1", v)
	}

	for i := uint64(2); i <= 200; i += 2 {
		m.Remove(i)
	}
	if m.Len() != 100 {
		t.Fatalf("Len() after removing evens = %d, want 100", m.Len())
	}
	for i := uint64(1); i <= 200; i += 2 {
		if v, ok := m.Get(i); !ok || v != int(i) {
			t.Fatalf("Get(%d) = %d, %v, want %d, true", i, v, ok, int(i))
		}
	}
}

func TestNumericMapManyKeys(t *testing.T) {
	m := hashmap.NewNumericMap[int64, int64]()
	const n = 5000

	for k := int64(0); k < n; k++ {
		if !m.Insert(k, k*2) {
			t.Fatalf("Insert(%d) should report true on first insertion", k)
		}
	}
	for k := int64(0); k < n; k++ {
		if v, ok := m.Get(k); !ok || v != k*2 {
			t.Fatalf("Get(%d) = %d, %v, want %d, true", k, v, ok, k*2)
		}
	}
}

func TestNumericMapClusteredKeysForceResize(t *testing.T) {
	m := hashmap.NewNumericMap[uint64, int]()
	const n = 10000
	const stride = 1 << 16 // pathologically clustered: every key shares low bits

	for i := uint64(0); i < n; i++ {
		key := i * stride
		if !m.Insert(key, int(i)) {
			t.Fatalf("Insert of clustered key %d should succeed", key)
		}
	}
	// Dense clustering forces long, overlapping probe runs from adjacent
	// homes, exactly the shape find's early-termination check must walk
	// through correctly rather than stopping on a stale PSL from a
	// neighboring home's overflow.
	for i := uint64(0); i < n; i++ {
		key := i * stride
		if v, ok := m.Get(key); !ok || v != int(i) {
			t.Fatalf("Get(%d) = %d, %v, want %d, true", key, v, ok, i)
		}
	}
}

func TestNumericMapFetchNotFound(t *testing.T) {
	m := hashmap.NewNumericMap[uint16, string]()
	m.Insert(1, "a")

	if _, err := m.Fetch(2); err == nil {
		t.Fatal("Fetch on an absent key should return an error")
	}
}

func TestNumericMapCrossCheckAgainstBuiltinMap(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	stdm := make(map[uint32]int64)
	m := hashmap.NewNumericMap[uint32, int64]()

	const nops = 20000
	for i := 0; i < nops; i++ {
		key := uint32(rng.Intn(2000))
		val := rng.Int63()

		switch rng.Intn(4) {
		case 0:
			v1, ok1 := m.Get(key)
			v2, ok2 := stdm[key]
			if ok1 != ok2 || v1 != v2 {
				t.Fatalf("Get(%d) = %d, %v, want %d, %v", key, v1, ok1, v2, ok2)
			}
		case 1, 2:
			_, existed := stdm[key]
			inserted := m.Insert(key, val)
			if inserted == existed {
				t.Fatalf("Insert(%d) reported %v, existed = %v", key, inserted, existed)
			}
			if !existed {
				stdm[key] = val
			}
		case 3:
			delete(stdm, key)
			m.Remove(key)
		}
	}

	if m.Len() != len(stdm) {
		t.Fatalf("Len() = %d, want %d", m.Len(), len(stdm))
	}
	for k, want := range stdm {
		if got, ok := m.Get(k); !ok || got != want {
			t.Fatalf("final Get(%d) = %d, %v, want %d, true", k, got, ok, want)
		}
	}
}
