package eventlog

import (
	"os"
	"testing"
	"time"

	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/simulation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureLog_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	l := NewCaptureLog(dir, nil)
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	l.w.now = func() time.Time { return at }

	l.OnAgentCaptured(simulation.CaptureEvent{Tick: 10, FlockID: 1, AgentID: 4, Position: geometry.Vector3{X: 1, Y: 2, Z: 3}})
	l.OnAgentCaptured(simulation.CaptureEvent{Tick: 11, FlockID: 0, AgentID: 9})
	require.NoError(t, l.Close())

	recs, err := ReadCaptures(l.w.PathForHour("2026-03-04-05"))
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, CaptureRecord{Time: at, Tick: 10, FlockID: 1, AgentID: 4, Position: geometry.Vector3{X: 1, Y: 2, Z: 3}}, recs[0])
	assert.EqualValues(t, 11, recs[1].Tick)
	assert.Equal(t, 9, recs[1].AgentID)
}

func TestJSONLZstdWriter_RotatesHourly(t *testing.T) {
	dir := t.TempDir()
	w := NewJSONLZstdWriter(dir, "captures")
	at := time.Date(2026, 1, 1, 23, 59, 0, 0, time.UTC)
	w.now = func() time.Time { return at }

	require.NoError(t, w.Write(CaptureRecord{Tick: 1}))
	at = at.Add(2 * time.Minute)
	require.NoError(t, w.Write(CaptureRecord{Tick: 2}))
	require.NoError(t, w.Close())

	first, err := ReadCaptures(w.PathForHour("2026-01-01-23"))
	require.NoError(t, err)
	second, err := ReadCaptures(w.PathForHour("2026-01-02-00"))
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	assert.EqualValues(t, 2, second[0].Tick)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestJSONLZstdWriter_CloseWithoutWrites(t *testing.T) {
	w := NewJSONLZstdWriter(t.TempDir(), "captures")
	assert.NoError(t, w.Close())
}
