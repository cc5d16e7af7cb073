package kclosest

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func TestLoggerRecordsQueries(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s, err := New(rangeInts(10), nil, WithLogger(logger))
	require.NoError(t, err)
	s.NearestKByHeapSort(5, 3)

	recs := decodeLines(t, &buf)
	require.Len(t, recs, 2)

	assert.Equal(t, "seeker created", recs[0]["msg"])
	assert.Equal(t, "Abs", recs[0]["metric"])
	assert.EqualValues(t, 10, recs[0]["items"])

	assert.Equal(t, "query completed", recs[1]["msg"])
	assert.Equal(t, "heapsort", recs[1]["strategy"])
	assert.EqualValues(t, 3, recs[1]["k"])
	assert.EqualValues(t, 3, recs[1]["results"])
	assert.EqualValues(t, 10, recs[1]["count"])
}

func TestLoggerRecordsInferenceFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, nil))

	_, err := New([]bool{true}, nil, WithLogger(logger))
	require.Error(t, err)

	recs := decodeLines(t, &buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "seeker creation failed", recs[0]["msg"])
	assert.Equal(t, "ERROR", recs[0]["level"])
}

func TestLoggerQueriesSkippedAboveDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	s, err := New(rangeInts(10), nil, WithLogger(logger))
	require.NoError(t, err)
	s.Nearest(5, 3)

	assert.Len(t, decodeLines(t, &buf), 1)
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, nil)).WithK(7).WithStrategy(StrategySelection).WithCount(3)
	logger.Info("hello")

	recs := decodeLines(t, &buf)
	require.Len(t, recs, 1)
	assert.EqualValues(t, 7, recs[0]["k"])
	assert.Equal(t, "selection", recs[0]["strategy"])
	assert.EqualValues(t, 3, recs[0]["count"])
}
