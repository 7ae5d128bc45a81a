package sieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitStore_New_AllBitsFalse(t *testing.T) {
	b := NewBitStore(256)

	for i := uint64(0); i < 256; i++ {
		assert.True(t, b.TestFalse(i), "bit %d should initialize to false", i)
	}
}

func TestBitStore_New_BackingWordCount(t *testing.T) {
	// One word more than strictly required, so index capacity itself
	// is addressable.
	cases := []struct {
		capacity uint64
		words    int
	}{
		{0, 1},
		{1, 1},
		{31, 1},
		{32, 2},
		{33, 2},
		{64, 3},
		{500, 16},
	}

	for _, tc := range cases {
		b := NewBitStore(tc.capacity)
		assert.Len(t, b.words, tc.words, "capacity %d", tc.capacity)
	}
}

func TestBitStore_SetTrue_Basic(t *testing.T) {
	b := NewBitStore(100)

	b.SetTrue(0)
	b.SetTrue(31)
	b.SetTrue(32)
	b.SetTrue(99)

	assert.False(t, b.TestFalse(0))
	assert.False(t, b.TestFalse(31))
	assert.False(t, b.TestFalse(32))
	assert.False(t, b.TestFalse(99))

	// Neighbors across word boundaries stay untouched.
	assert.True(t, b.TestFalse(1))
	assert.True(t, b.TestFalse(30))
	assert.True(t, b.TestFalse(33))
	assert.True(t, b.TestFalse(98))
}

func TestBitStore_SetTrue_Idempotent(t *testing.T) {
	b := NewBitStore(64)

	b.SetTrue(40)
	before := make([]uint32, len(b.words))
	copy(before, b.words)

	b.SetTrue(40)
	assert.Equal(t, before, b.words, "setting an already-true bit must not change the store")
}

func TestBitStore_SetTrue_InclusiveUpperIndex(t *testing.T) {
	// The extra backing word makes index capacity itself usable.
	b := NewBitStore(32)

	require.NotPanics(t, func() { b.SetTrue(32) })
	assert.False(t, b.TestFalse(32))
}

func TestBitStore_Checked_PanicsOutOfRange(t *testing.T) {
	b := NewBitStore(10)

	assert.Panics(t, func() { b.Set(11) })
	assert.Panics(t, func() { b.Test(11) })
}

func TestBitStore_Checked_InRange(t *testing.T) {
	b := NewBitStore(10)

	require.NotPanics(t, func() { b.Set(7) })
	assert.False(t, b.Test(7))
	assert.True(t, b.Test(6))
}

func TestBitStore_Capacity(t *testing.T) {
	b := NewBitStore(123)
	assert.Equal(t, uint64(123), b.Capacity())
}
