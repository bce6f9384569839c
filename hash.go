package robinmap

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/segmentio/fasthash/fnv1a"
)

// HashFn is a function that returns the 64-bit hash of t.
type HashFn[T any] func(t T) uint64

// GetHasher returns a default hasher for Go's built-in key kinds. It panics
// if Key is a kind with no built-in hasher (e.g. a struct or slice type);
// such keys need an explicit HashFn passed at construction time.
func GetHasher[Key any]() HashFn[Key] {
	var key Key
	kind := reflect.ValueOf(&key).Elem().Type().Kind()

	switch kind {
	case reflect.Int, reflect.Uint, reflect.Uintptr:
		switch unsafe.Sizeof(key) {
		case 2:
			return *(*func(Key) uint64)(unsafe.Pointer(&hashWord))
		case 4:
			return *(*func(Key) uint64)(unsafe.Pointer(&hashDword))
		case 8:
			return *(*func(Key) uint64)(unsafe.Pointer(&hashQword))
		default:
			panic("robinmap: unsupported integer byte size")
		}

	case reflect.Int8, reflect.Uint8:
		return *(*func(Key) uint64)(unsafe.Pointer(&hashByte))
	case reflect.Int16, reflect.Uint16:
		return *(*func(Key) uint64)(unsafe.Pointer(&hashWord))
	case reflect.Int32, reflect.Uint32:
		return *(*func(Key) uint64)(unsafe.Pointer(&hashDword))
	case reflect.Int64, reflect.Uint64:
		return *(*func(Key) uint64)(unsafe.Pointer(&hashQword))
	case reflect.Float32:
		return *(*func(Key) uint64)(unsafe.Pointer(&hashFloat32))
	case reflect.Float64:
		return *(*func(Key) uint64)(unsafe.Pointer(&hashFloat64))
	case reflect.String:
		return *(*func(Key) uint64)(unsafe.Pointer(&hashString))

	default:
		panic(fmt.Sprintf("robinmap: unsupported key type %T of kind %v", key, kind))
	}
}

var hashByte = func(in uint8) uint64 {
	key := uint32(in)
	key *= 0xcc9e2d51
	key = (key << 15) | (key >> 17)
	key *= 0x1b873593
	return uint64(key)
}

var hashWord = func(in uint16) uint64 {
	key := uint32(in)
	key *= 0xcc9e2d51
	key = (key << 15) | (key >> 17)
	key *= 0x1b873593
	return uint64(key)
}

var hashDword = func(key uint32) uint64 {
	key *= 0xcc9e2d51
	key = (key << 15) | (key >> 17)
	key *= 0x1b873593
	return uint64(key)
}

var hashFloat32 = func(in float32) uint64 {
	key := *(*uint32)(unsafe.Pointer(&in))
	key *= 0xcc9e2d51
	key = (key << 15) | (key >> 17)
	key *= 0x1b873593
	return uint64(key)
}

// hashQword implements MurmurHash3's 64-bit finalizer. Every step here
// (xor-shift, odd-constant multiply mod 2^64) is individually invertible, so
// this function is a bijection on uint64 — no two distinct uint64 inputs ever
// produce the same output. hashmap.NumericMap's default hasher relies on
// exactly this property.
var hashQword = func(key uint64) uint64 {
	key ^= key >> 33
	key *= 0xff51afd7ed558ccd
	key ^= key >> 33
	key *= 0xc4ceb9fe1a85ec53
	key ^= key >> 33
	return key
}

var hashFloat64 = func(in float64) uint64 {
	key := *(*uint64)(unsafe.Pointer(&in))
	return hashQword(key)
}

var hashString = func(s string) uint64 {
	return fnv1a.HashString64(s)
}

// HashBytes hashes a byte slice with the same algorithm GetHasher uses for
// strings, for callers that index by []byte via a custom HashFn.
func HashBytes(b []byte) uint64 {
	return fnv1a.HashBytes64(b)
}
