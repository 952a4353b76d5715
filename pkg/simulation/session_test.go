package simulation

import (
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/behavior"
	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestSession builds a session with one flock holding a single boid at pos.
func newTestSession(t *testing.T, pos geometry.Vector3) *Session {
	t.Helper()
	cfg := DefaultConfig()
	cfg.NumFlocks = 1
	cfg.NumBoids = 1
	b, err := behavior.New(pos, geometry.Vector3{X: 10}, cfg.Behavior)
	require.NoError(t, err)
	return NewSessionWithFlocks(cfg, nil, []*Flock{NewFlock(0, cfg.Behavior, []behavior.Boid{b})})
}

func TestNewSession(t *testing.T) {
	cfg := DefaultConfig()
	s, err := NewSession(cfg, nil, newTestRand())
	require.NoError(t, err)
	require.Len(t, s.Flocks(), cfg.NumFlocks)
	for i, f := range s.Flocks() {
		assert.Equal(t, i, f.ID)
		assert.Equal(t, cfg.NumBoids, f.Len())
	}
	assert.False(t, s.Target().Active)
	assert.Zero(t, s.TickCount())
}

func TestSession_ConnectionLifecycle(t *testing.T) {
	s := newTestSession(t, geometry.Vector3{X: 100, Y: 20})

	require.NoError(t, s.Connect("a"))
	assert.ErrorIs(t, s.Connect("a"), ErrDuplicateConnection)
	require.NoError(t, s.Connect("b"))
	assert.Equal(t, 2, s.NumConnections())

	idA, err := s.ClaimControl("a")
	require.NoError(t, err)
	assert.EqualValues(t, 1, idA)
	again, err := s.ClaimControl("a")
	require.NoError(t, err)
	assert.Equal(t, idA, again, "claiming twice returns the same object")
	idB, err := s.ClaimControl("b")
	require.NoError(t, err)
	assert.EqualValues(t, 2, idB)

	p, ok := s.Player(idA)
	require.True(t, ok)
	assert.Equal(t, "a", p.ConnectionID)
	assert.True(t, p.Body.Position.Eq(s.cfg.Player.Spawn))

	require.NoError(t, s.Disconnect("a"))
	_, ok = s.Player(idA)
	assert.False(t, ok, "object removed with its connection")
	assert.ErrorIs(t, s.Disconnect("a"), ErrUnknownConnection)
	_, err = s.ClaimControl("nobody")
	assert.ErrorIs(t, err, ErrUnknownConnection)
}

func TestSession_ApplyControlSnapshot(t *testing.T) {
	s := newTestSession(t, geometry.Vector3{X: 100, Y: 20})
	assert.ErrorIs(t, s.ApplyControlSnapshot("ghost", ControlSnapshot{}), ErrUnknownConnection)

	require.NoError(t, s.Connect("a"))
	require.NoError(t, s.ApplyControlSnapshot("a", ControlSnapshot{Buttons: ButtonForward, Yaw: 10}))
	require.NoError(t, s.ApplyControlSnapshot("a", ControlSnapshot{Buttons: ButtonBack, Yaw: 20, Pitch: 5}))
	c, ok := s.Connection("a")
	require.True(t, ok)
	assert.Equal(t, ControlSnapshot{Buttons: ButtonBack, Yaw: 20, Pitch: 5}, c.Controls, "last write wins")

	require.NoError(t, s.ApplyControlSnapshot("a", ControlSnapshot{Yaw: math.NaN(), Pitch: math.Inf(1)}))
	c, _ = s.Connection("a")
	assert.Equal(t, ControlSnapshot{Yaw: 20, Pitch: 5}, c.Controls, "non-finite angles keep the previous value")

	// no object yet: controls are kept but nothing moves
	_, err := s.Tick(0.1)
	require.NoError(t, err)
}

func TestSession_TickMovesPlayer(t *testing.T) {
	s := newTestSession(t, geometry.Vector3{X: 100, Y: 20})
	require.NoError(t, s.Connect("a"))
	id, err := s.ClaimControl("a")
	require.NoError(t, err)
	require.NoError(t, s.ApplyControlSnapshot("a", ControlSnapshot{Buttons: ButtonForward}))

	_, err = s.Tick(0.1)
	require.NoError(t, err)
	p, _ := s.Player(id)
	assert.Greater(t, p.Body.Velocity.Z, 0.0)
	assert.Greater(t, p.Body.Position.Z, s.cfg.Player.Spawn.Z)
	assert.InDelta(t, 0, p.Body.Velocity.X, 1e-9)
	assert.True(t, s.Target().Active, "a player activates the capture target")
	assert.True(t, s.Target().Position.Eq(p.Body.Position), "target follows the player")
}

func TestSession_TickRejectsBadTimeStep(t *testing.T) {
	s := newTestSession(t, geometry.Vector3{Y: 20})
	_, err := s.Tick(math.NaN())
	assert.ErrorIs(t, err, ErrInvalidTimeStep)
	_, err = s.Tick(-1)
	assert.ErrorIs(t, err, ErrNegativeTimeStep)
	assert.Zero(t, s.TickCount(), "rejected ticks are not counted")
}

func TestSession_TickCapturesNearPlayer(t *testing.T) {
	// player spawns at (0,5,0), boid flies at floor level right above it
	s := newTestSession(t, geometry.Vector3{X: 0, Y: 10, Z: 0})
	var seen []CaptureEvent
	s.AddObserver(CaptureObserverFunc(func(ev CaptureEvent) { seen = append(seen, ev) }))
	require.NoError(t, s.Connect("a"))
	_, err := s.ClaimControl("a")
	require.NoError(t, err)

	events, err := s.Tick(0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, CaptureEvent{Tick: 1, FlockID: 0, AgentID: 0, Position: geometry.Vector3{Y: 10}}, events[0])
	assert.Equal(t, events, seen)
	assert.Equal(t, 1, s.TotalCaptures())
	assert.True(t, s.Flocks()[0].Boids[0].Position().Eq(s.cfg.RemovedPosition))

	snap := s.Snapshot()
	assert.EqualValues(t, 1, snap.GetTick())
	require.Len(t, snap.GetCaptures(), 1)
	assert.True(t, snap.GetTargetActive())
}

func TestSession_TargetIsSticky(t *testing.T) {
	s := newTestSession(t, geometry.Vector3{X: 100, Y: 20})
	require.NoError(t, s.Connect("a"))
	_, err := s.ClaimControl("a")
	require.NoError(t, err)
	_, err = s.Tick(0)
	require.NoError(t, err)
	last := s.Target().Position

	require.NoError(t, s.Disconnect("a"))
	_, err = s.Tick(0)
	require.NoError(t, err)
	assert.True(t, s.Target().Active)
	assert.True(t, s.Target().Position.Eq(last), "target keeps the last player position")

	s.SetCaptureTarget(geometry.Vector3{X: 7}, false)
	assert.True(t, s.Target().Active, "deactivation is ignored")
	assert.True(t, s.Target().Position.Eq(geometry.Vector3{X: 7}))
}

func TestSession_TargetFollowsNewestPlayer(t *testing.T) {
	s := newTestSession(t, geometry.Vector3{X: 100, Y: 20})
	require.NoError(t, s.Connect("a"))
	require.NoError(t, s.Connect("b"))
	_, err := s.ClaimControl("a")
	require.NoError(t, err)
	idB, err := s.ClaimControl("b")
	require.NoError(t, err)
	require.NoError(t, s.ApplyControlSnapshot("b", ControlSnapshot{Buttons: ButtonRight}))

	_, err = s.Tick(0.5)
	require.NoError(t, err)
	pb, _ := s.Player(idB)
	assert.True(t, s.Target().Position.Eq(pb.Body.Position))
}

func TestSession_Snapshot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.NumFlocks = 2
	cfg.NumBoids = 3
	s, err := NewSession(cfg, nil, newTestRand())
	require.NoError(t, err)
	require.NoError(t, s.Connect("z"))
	require.NoError(t, s.Connect("y"))
	_, err = s.ClaimControl("z")
	require.NoError(t, err)
	_, err = s.ClaimControl("y")
	require.NoError(t, err)

	snap := s.Snapshot()
	require.Len(t, snap.GetAgents(), 6)
	for i, a := range snap.GetAgents() {
		assert.EqualValues(t, i/3, a.GetFlockId())
		assert.EqualValues(t, i%3, a.GetAgentId())
	}
	require.Len(t, snap.GetPlayers(), 2)
	assert.EqualValues(t, 1, snap.GetPlayers()[0].GetObjectId())
	assert.Equal(t, "z", snap.GetPlayers()[0].GetConnectionId())
	assert.EqualValues(t, 2, snap.GetPlayers()[1].GetObjectId())
	assert.Empty(t, snap.GetCaptures())
}
