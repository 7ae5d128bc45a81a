package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/sievebench/internal/bench"
	"github.com/roach88/sievebench/internal/testutil"
)

// deterministicResult runs the benchmark against the manual clock so
// pass counts and durations are fixed.
func deterministicResult(t *testing.T, limit uint64, budget time.Duration) *bench.Result {
	t.Helper()
	clock := testutil.NewManualClock(epoch, time.Second)
	r := bench.NewRunner(bench.WithClock(clock))
	result, err := r.Run(limit, budget)
	require.NoError(t, err)
	return result
}

func TestFormatRecord(t *testing.T) {
	result := deterministicResult(t, 1_000, 5*time.Second)

	record := FormatRecord("sievebench", result)
	assert.Equal(t, "sievebench;2;6.000000;1;algorithm=base,faithful=yes,bits=1", record)
}

func TestFormatRecord_NoGrouping(t *testing.T) {
	result := deterministicResult(t, 1_000_000, 3*time.Second)

	assert.NotContains(t, FormatRecord("x", result), ",", "machine record must stay parser-friendly")
}

func TestNewReportData(t *testing.T) {
	result := deterministicResult(t, 1_000, 5*time.Second)

	data := NewReportData("lbl", result)
	assert.Equal(t, "lbl", data.Label)
	assert.Equal(t, uint64(1_000), data.Limit)
	assert.Equal(t, uint64(2), data.Passes)
	assert.Equal(t, 6.0, data.DurationSeconds)
	assert.Equal(t, uint64(168), data.CountedPrimes)
	assert.True(t, data.Valid)
	assert.True(t, data.Known)
	assert.Equal(t, result.RunID, data.RunID)
}

func TestWriteVerboseReport_Golden(t *testing.T) {
	result := deterministicResult(t, 1_000, 5*time.Second)

	buf := &bytes.Buffer{}
	WriteVerboseReport(buf, result, 10)

	g := goldie.New(t)
	g.Assert(t, "verbose_report", buf.Bytes())
}

func TestWriteVerboseReport_EmptyRun_Golden(t *testing.T) {
	result := deterministicResult(t, 1_000, 0)

	buf := &bytes.Buffer{}
	WriteVerboseReport(buf, result, 10)

	g := goldie.New(t)
	g.Assert(t, "verbose_report_empty", buf.Bytes())
}
