package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_Text(t *testing.T) {
	cmd := NewCheckCommand(&RootOptions{Format: "text"})
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--max", "10000"})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "ok    limit=10 primes=4")
	assert.Contains(t, out.String(), "ok    limit=1000 primes=168")
	assert.Contains(t, out.String(), "ok    limit=10000 primes=1229")
	assert.Contains(t, out.String(), "checked 4 limits, 0 failed")
}

func TestCheck_JSON(t *testing.T) {
	cmd := NewCheckCommand(&RootOptions{Format: "json"})
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--max", "1000"})

	require.NoError(t, cmd.Execute())

	var resp struct {
		Status string    `json:"status"`
		Data   checkData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))

	assert.Equal(t, "ok", resp.Status)
	assert.Zero(t, resp.Data.Failed)
	require.Len(t, resp.Data.Results, 3)
	assert.Equal(t, CheckResult{Limit: 10, Got: 4, Want: 4, Passed: true}, resp.Data.Results[0])
	assert.Equal(t, CheckResult{Limit: 1000, Got: 168, Want: 168, Passed: true}, resp.Data.Results[2])
}

func TestCheck_CeilingBelowTable(t *testing.T) {
	cmd := NewCheckCommand(&RootOptions{Format: "text"})
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--max", "5"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "checked 0 limits, 0 failed")
}
