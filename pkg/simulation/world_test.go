package simulation

import (
	"context"
	"testing"
	"time"

	"github.com/lao-tseu-is-alive/go-boids-arena/pb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
)

func spawnAuthority(t *testing.T, cfg *Config, snapshots chan *pb.WorldSnapshot, observers ...CaptureObserver) *actor.PID {
	t.Helper()
	ctx := context.Background()
	system, err := actor.NewActorSystem("ArenaTest", actor.WithLogger(golog.DiscardLogger))
	require.NoError(t, err)
	require.NoError(t, system.Start(ctx))
	t.Cleanup(func() { _ = system.Stop(ctx) })

	pid, err := system.Spawn(ctx, "arena", NewAuthorityActor(cfg, snapshots, newTestRand(), observers...))
	require.NoError(t, err)
	return pid
}

func TestAuthorityActor_ReadyHandshake(t *testing.T) {
	ctx := context.Background()
	pid := spawnAuthority(t, DefaultConfig(), nil)

	require.NoError(t, actor.Tell(ctx, pid, &pb.ClientConnected{ConnectionId: "c1"}))
	reply, err := actor.Ask(ctx, pid, &pb.ClientReady{ConnectionId: "c1"}, time.Second)
	require.NoError(t, err)
	auth, ok := reply.(*pb.ObjectAuthority)
	require.True(t, ok, "unexpected reply %T", reply)
	assert.Equal(t, "c1", auth.GetConnectionId())
	assert.EqualValues(t, 1, auth.GetObjectId())

	// unknown connections get no object
	reply, err = actor.Ask(ctx, pid, &pb.ClientReady{ConnectionId: "ghost"}, time.Second)
	require.NoError(t, err)
	assert.Zero(t, reply.(*pb.ObjectAuthority).GetObjectId())
}

func TestAuthorityActor_TickPublishesSnapshot(t *testing.T) {
	ctx := context.Background()
	cfg := DefaultConfig()
	cfg.NumFlocks = 2
	cfg.NumBoids = 4
	snapshots := make(chan *pb.WorldSnapshot, 4)
	pid := spawnAuthority(t, cfg, snapshots)

	require.NoError(t, actor.Tell(ctx, pid, &pb.ClientConnected{ConnectionId: "c1"}))
	_, err := actor.Ask(ctx, pid, &pb.ClientReady{ConnectionId: "c1"}, time.Second)
	require.NoError(t, err)
	require.NoError(t, actor.Tell(ctx, pid, &pb.ControlUpdate{
		ConnectionId: "c1",
		Controls:     &pb.ControlSnapshot{Buttons: uint32(ButtonForward)},
	}))
	require.NoError(t, actor.Tell(ctx, pid, &pb.Tick{DeltaSeconds: cfg.TickInterval()}))

	select {
	case snap := <-snapshots:
		assert.EqualValues(t, 1, snap.GetTick())
		assert.Len(t, snap.GetAgents(), 8)
		require.Len(t, snap.GetPlayers(), 1)
		assert.Greater(t, snap.GetPlayers()[0].GetPosition().GetZ(), 0.0)
		assert.True(t, snap.GetTargetActive())
	case <-time.After(2 * time.Second):
		t.Fatal("no snapshot published after a tick")
	}

	reply, err := actor.Ask(ctx, pid, &pb.GetWorldState{}, time.Second)
	require.NoError(t, err)
	assert.EqualValues(t, 1, reply.(*pb.WorldSnapshot).GetTick())
}

func TestAuthorityActor_RejectsNegativeTick(t *testing.T) {
	ctx := context.Background()
	pid := spawnAuthority(t, DefaultConfig(), nil)

	require.NoError(t, actor.Tell(ctx, pid, &pb.Tick{DeltaSeconds: -1}))
	reply, err := actor.Ask(ctx, pid, &pb.GetWorldState{}, time.Second)
	require.NoError(t, err)
	assert.Zero(t, reply.(*pb.WorldSnapshot).GetTick())
}
