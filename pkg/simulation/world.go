package simulation

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/lao-tseu-is-alive/go-boids-arena/pb"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
)

// AuthorityActor owns the arena Session. Every tick, connection event and
// control update arrives through its mailbox, so the session is only ever
// touched from one goroutine at a time.
type AuthorityActor struct {
	cfg     *Config
	session *Session
	rng     *rand.Rand
	// Communication with the transport layer
	snapshotCh chan<- *pb.WorldSnapshot
	observers  []CaptureObserver

	// --- Benchmark Stats ---
	tickCount    int
	msgRecvCount int
	dropped      int
	lastLogTime  time.Time
}

var _ actor.Actor = (*AuthorityActor)(nil)

// NewAuthorityActor creates the authority. snapshotCh may be nil when nobody
// consumes snapshots; rng may be nil to seed from the runtime.
func NewAuthorityActor(cfg *Config, snapshotCh chan<- *pb.WorldSnapshot, rng *rand.Rand, observers ...CaptureObserver) *AuthorityActor {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &AuthorityActor{
		cfg:         cfg,
		rng:         rng,
		snapshotCh:  snapshotCh,
		observers:   observers,
		lastLogTime: time.Now(),
	}
}

func (w *AuthorityActor) PreStart(ctx *actor.Context) error {
	session, err := NewSession(w.cfg, ctx.ActorSystem().Logger(), w.rng)
	if err != nil {
		return fmt.Errorf("failed to create arena session: %w", err)
	}
	for _, o := range w.observers {
		session.AddObserver(o)
	}
	w.session = session
	return nil
}

func (w *AuthorityActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		ctx.Logger().Infof("arena started: %d flocks of %d boids", w.cfg.NumFlocks, w.cfg.NumBoids)

	// 1. The main simulation step, driven by the Scheduler
	case *pb.Tick:
		w.tickCount++
		if _, err := w.session.Tick(msg.GetDeltaSeconds()); err != nil {
			ctx.Logger().Warnf("tick rejected: %v", err)
			return
		}
		w.logBenchmarks(ctx)
		w.pushSnapshot()

	// 2. Connection lifecycle, from the transport
	case *pb.ClientConnected:
		w.msgRecvCount++
		if err := w.session.Connect(msg.GetConnectionId()); err != nil {
			ctx.Logger().Warnf("connect: %v", err)
			return
		}
		ctx.Logger().Infof("client %s connected", msg.GetConnectionId())

	case *pb.ClientDisconnected:
		w.msgRecvCount++
		if err := w.session.Disconnect(msg.GetConnectionId()); err != nil {
			ctx.Logger().Warnf("disconnect: %v", err)
			return
		}
		ctx.Logger().Infof("client %s disconnected", msg.GetConnectionId())

	case *pb.ClientReady:
		w.msgRecvCount++
		objectID, err := w.session.ClaimControl(msg.GetConnectionId())
		if err != nil {
			ctx.Logger().Warnf("ready: %v", err)
			ctx.Response(&pb.ObjectAuthority{ConnectionId: msg.GetConnectionId()})
			return
		}
		ctx.Logger().Infof("client %s controls object %d", msg.GetConnectionId(), objectID)
		ctx.Response(&pb.ObjectAuthority{ConnectionId: msg.GetConnectionId(), ObjectId: objectID})

	// 3. Controls, last write wins until the next tick
	case *pb.ControlUpdate:
		w.msgRecvCount++
		if err := w.session.ApplyControlSnapshot(msg.GetConnectionId(), ControlsFromProto(msg.GetControls())); err != nil {
			ctx.Logger().Debugf("controls dropped: %v", err)
		}

	case *pb.GetWorldState:
		ctx.Response(w.session.Snapshot())

	default:
		ctx.Unhandled()
	}
}

func (w *AuthorityActor) PostStop(ctx *actor.Context) error {
	if w.session == nil {
		return nil
	}
	ctx.ActorSystem().Logger().Infof("arena %s is shutdown after %d ticks, %d captures",
		ctx.ActorName(), w.session.TickCount(), w.session.TotalCaptures())
	return nil
}

func (w *AuthorityActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(w.lastLogTime) >= time.Second {
		ctx.Logger().Infof("📊 TICK RATE: %d/sec | client msgs: %d | dropped snapshots: %d | clients: %d | captures: %d",
			w.tickCount, w.msgRecvCount, w.dropped, w.session.NumConnections(), w.session.TotalCaptures())
		w.tickCount = 0
		w.msgRecvCount = 0
		w.dropped = 0
		w.lastLogTime = time.Now()
	}
}

func (w *AuthorityActor) pushSnapshot() {
	if w.snapshotCh == nil {
		return
	}
	select {
	case w.snapshotCh <- w.session.Snapshot():
	default:
		// transport busy, skip frame
		w.dropped++
	}
}
