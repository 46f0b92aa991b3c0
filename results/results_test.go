package results_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathbench/results"
	"github.com/katalvlaran/pathbench/trial"
)

func sampleRecords() []trial.Record {
	return []trial.Record{
		{Trial: 0, MapSize: 50, ObstacleDensity: 0.1, MapType: "random", Algorithm: "Dijkstra",
			NodesExplored: 2301, PathLength: 99, TimeMS: 3.25, FoundPath: true, Seed: 40001},
		{Trial: 0, MapSize: 50, ObstacleDensity: 0.1, MapType: "random", Algorithm: "A*",
			NodesExplored: 410, PathLength: 99, TimeMS: 0.5, FoundPath: true, Seed: 40001},
		{Trial: 1, MapSize: 50, ObstacleDensity: 0.1, MapType: "random", Algorithm: "Greedy",
			NodesExplored: 12, PathLength: 0, TimeMS: 0.01, FoundPath: false, Seed: 40002},
	}
}

func TestWriter_StreamsHeaderAndRows(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	w, err := results.NewWriter(&buf)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(trial.Columns, ",")+"\n", buf.String(), "header is flushed immediately")

	recs := sampleRecords()
	require.NoError(t, w.Append(recs[0]))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2, "row is flushed on append")
	assert.Equal(t, "0,50,0.1,random,Dijkstra,2301,99,3.25,True,40001", lines[1])

	for _, r := range recs[1:] {
		require.NoError(t, w.Append(r))
	}
	assert.Equal(t, 3, w.Rows())
	require.NoError(t, w.Close())
	assert.ErrorIs(t, w.Append(recs[0]), results.ErrClosed)
	assert.NoError(t, w.Close(), "close is idempotent")

	got, err := results.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, recs, got)
}

func TestCreateAndLoad(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "out.csv")
	w, err := results.Create(path)
	require.NoError(t, err)
	for _, r := range sampleRecords() {
		require.NoError(t, w.Append(r))
	}

	// Readable before Close: every row is already on disk.
	got, err := results.Load(path)
	require.NoError(t, err)
	assert.Len(t, got, 3)
	require.NoError(t, w.Close())

	_, err = results.Load(filepath.Join(t.TempDir(), "missing.csv"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRead_Errors(t *testing.T) {
	t.Parallel()
	header := strings.Join(trial.Columns, ",")
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", results.ErrHeader},
		{"wrong header", "a,b,c\n", results.ErrHeader},
		{"renamed column", strings.Replace(header, "time_ms", "time", 1) + "\n", results.ErrHeader},
		{"short row", header + "\n1,2,3\n", trial.ErrBadRow},
		{"bad value", header + "\n1,50,0.1,random,A*,x,1,1,True,1\n", trial.ErrBadRow},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := results.Read(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestRead_HeaderOnly(t *testing.T) {
	t.Parallel()
	got, err := results.Read(strings.NewReader(strings.Join(trial.Columns, ",") + "\n"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTable_IsSink(t *testing.T) {
	t.Parallel()
	var sink results.Sink = &results.Table{}
	for _, r := range sampleRecords() {
		require.NoError(t, sink.Append(r))
	}
	require.NoError(t, sink.Flush())
	assert.Len(t, sink.(*results.Table).Records, 3)
}

// failingWriter rejects every write.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestNewWriter_HeaderFailure(t *testing.T) {
	t.Parallel()
	_, err := results.NewWriter(failingWriter{})
	assert.Error(t, err)
}
