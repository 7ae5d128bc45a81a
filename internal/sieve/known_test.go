package sieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownCount_TabledLimits(t *testing.T) {
	count, ok := KnownCount(1_000)
	require.True(t, ok)
	assert.Equal(t, uint64(168), count)

	count, ok = KnownCount(100_000_000)
	require.True(t, ok)
	assert.Equal(t, uint64(5_761_455), count)
}

func TestKnownCount_UntabledLimit(t *testing.T) {
	_, ok := KnownCount(12_345)
	assert.False(t, ok)
}

func TestValidate_Match(t *testing.T) {
	e := sieved(100_000)

	valid, err := Validate(e)
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestValidate_AddsTwoAdjustment(t *testing.T) {
	// CountPrimes excludes 2; Validate must add 1 before comparing.
	// limit 1000: 167 odd primes + the number 2 = 168 tabled.
	e := sieved(1_000)

	require.Equal(t, uint64(167), e.CountPrimes())

	valid, err := Validate(e)
	require.NoError(t, err)
	assert.True(t, valid, "validation must account for the never-stored 2")
}

func TestValidate_UnknownLimit_Skipped(t *testing.T) {
	e := sieved(12_345)

	valid, err := Validate(e)
	assert.NoError(t, err, "unknown limit is a skip, not an error")
	assert.False(t, valid)
}

func TestValidate_Mismatch(t *testing.T) {
	// An unrun engine reports every odd candidate as prime, which
	// cannot match the table.
	e := New(1_000)

	valid, err := Validate(e)
	assert.False(t, valid)

	var mismatch *MismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, uint64(1_000), mismatch.Limit)
	assert.Equal(t, uint64(168), mismatch.Want)
	assert.Equal(t, uint64(500), mismatch.Got, "1 + 499 unmarked odd candidates")
}
