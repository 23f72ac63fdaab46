package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"open-atmos/mechanism-configuration/pkg/history"
)

func listRuns(t *testing.T, args ...string) []*history.Run {
	t.Helper()
	out, err := execute(t, append([]string{"history", "list", "--format", "json"}, args...)...)
	require.NoError(t, err)

	var runs []*history.Run
	require.NoError(t, json.Unmarshal([]byte(out), &runs), out)
	return runs
}

func TestHistory_RecordAndList(t *testing.T) {
	dir := isolate(t)
	good := writeFile(t, dir, "good.yaml", validDocument)
	bad := writeFile(t, dir, "bad.yaml", invalidDocument)

	assert.Empty(t, listRuns(t))

	_, err := execute(t, "validate", "--record", good)
	require.NoError(t, err)
	_, err = execute(t, "validate", "--record", bad)
	require.Error(t, err)

	runs := listRuns(t)
	require.Len(t, runs, 2)
	assert.Equal(t, bad, runs[0].Source)
	assert.Equal(t, good, runs[1].Source)

	invalid := listRuns(t, "--invalid")
	require.Len(t, invalid, 1)
	assert.False(t, invalid[0].Valid)
	assert.NotEmpty(t, invalid[0].Errors)

	valid := listRuns(t, "--valid", "--schema", "development")
	require.Len(t, valid, 1)
	assert.Equal(t, good, valid[0].Source)

	assert.Len(t, listRuns(t, "--source", good), 1)
	assert.Len(t, listRuns(t, "--limit", "1"), 1)
	assert.Len(t, listRuns(t, "--since", "1h"), 2)
}

func TestHistory_ListFlags(t *testing.T) {
	isolate(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown schema", args: []string{"--schema", "v7"}},
		{name: "negative limit", args: []string{"--limit", "-1"}},
		{name: "valid and invalid", args: []string{"--valid", "--invalid"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, append([]string{"history", "list"}, tt.args...)...)
			assert.Error(t, err)
		})
	}
}

func TestHistory_Prune(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "good.yaml", validDocument)

	for range 3 {
		_, err := execute(t, "validate", "--record", path)
		require.NoError(t, err)
	}

	out, err := execute(t, "history", "prune", "--max-records", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted 2 runs")
	assert.Len(t, listRuns(t), 1)

	out, err = execute(t, "history", "prune")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted 0 runs")
}
