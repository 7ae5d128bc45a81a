package sieve

import "fmt"

const bitWordShift = 5 // log2 of the 32-bit word width

// BitStore is a fixed-capacity, densely packed array of 1-bit flags over
// uint32 words. All bits initialize to false.
//
// TRUSTED-INDEX CONTRACT:
//
// SetTrue and TestFalse perform no bounds checks. They exist for the
// sieve inner loop, whose indices are provably in range by construction
// of its loop bounds; calling them with an out-of-range index corrupts
// or reads adjacent memory within the backing slice (or panics on slice
// bounds). Any caller that cannot prove its indices must use the checked
// Set and Test variants instead.
//
// The backing slice is sized 1 + capacity>>5 words, one word more than
// strictly required, so index capacity itself is addressable. This
// preserves the reference sizing; do not "fix" it without adjusting
// callers that rely on the inclusive upper bound.
//
// Thread-safety: none. A BitStore is exclusively owned by one Engine.
type BitStore struct {
	capacity uint64
	words    []uint32
}

// NewBitStore allocates a zero-initialized store addressing bit indices
// 0..capacity (inclusive, per the sizing note on BitStore). The only
// failure mode is allocation failure, which is fatal and surfaces as a
// runtime panic from make.
func NewBitStore(capacity uint64) *BitStore {
	return &BitStore{
		capacity: capacity,
		words:    make([]uint32, 1+(capacity>>bitWordShift)),
	}
}

// Capacity returns the number of addressable bits requested at
// construction.
func (b *BitStore) Capacity() uint64 { return b.capacity }

// SetTrue sets bit index to true. Unchecked; see the trusted-index
// contract. Setting an already-true bit is a no-op.
func (b *BitStore) SetTrue(index uint64) {
	b.words[index>>bitWordShift] |= 1 << (index & 31)
}

// TestFalse reports whether bit index is currently false. Unchecked; see
// the trusted-index contract. Pure read, no side effects.
func (b *BitStore) TestFalse(index uint64) bool {
	return b.words[index>>bitWordShift]&(1<<(index&31)) == 0
}

// Set is the checked variant of SetTrue for untrusted callers.
// It panics with a descriptive message on an out-of-range index.
func (b *BitStore) Set(index uint64) {
	if index > b.capacity {
		panic(fmt.Sprintf("sieve: bit index %d out of range (capacity %d)", index, b.capacity))
	}
	b.SetTrue(index)
}

// Test is the checked variant of TestFalse for untrusted callers.
// It panics with a descriptive message on an out-of-range index.
func (b *BitStore) Test(index uint64) bool {
	if index > b.capacity {
		panic(fmt.Sprintf("sieve: bit index %d out of range (capacity %d)", index, b.capacity))
	}
	return b.TestFalse(index)
}
