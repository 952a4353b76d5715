package client

import (
	"sync"

	"github.com/lao-tseu-is-alive/go-boids-arena/pb"
)

const recentCaptures = 8

// Replica is the client copy of the arena, fed by server frames on one
// goroutine and read by the render loop on another.
type Replica struct {
	mu           sync.RWMutex
	connectionID string
	objectID     uint32
	snapshot     *pb.WorldSnapshot
	captures     []*pb.CaptureEvent // most recent last
	captureCount int
	lastError    string
}

func NewReplica() *Replica {
	return &Replica{snapshot: &pb.WorldSnapshot{}}
}

// Apply folds one server frame into the replica.
func (r *Replica) Apply(msg *pb.ServerMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch msg.GetKind() {
	case pb.ServerMessageKind_SERVER_MESSAGE_KIND_WELCOME:
		r.connectionID = msg.GetWelcome().GetConnectionId()
	case pb.ServerMessageKind_SERVER_MESSAGE_KIND_SNAPSHOT:
		if msg.GetSnapshot() != nil {
			r.snapshot = msg.GetSnapshot()
		}
	case pb.ServerMessageKind_SERVER_MESSAGE_KIND_AUTHORITY:
		r.objectID = msg.GetAuthority().GetObjectId()
	case pb.ServerMessageKind_SERVER_MESSAGE_KIND_CAPTURE:
		r.captureCount++
		r.captures = append(r.captures, msg.GetCapture())
		if len(r.captures) > recentCaptures {
			r.captures = r.captures[len(r.captures)-recentCaptures:]
		}
	case pb.ServerMessageKind_SERVER_MESSAGE_KIND_ERROR:
		r.lastError = msg.GetError()
	}
}

// SetConnectionID records the id received during the handshake.
func (r *Replica) SetConnectionID(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.connectionID = id
}

// Snapshot returns the latest world state; never nil. Callers must not modify it.
func (r *Replica) Snapshot() *pb.WorldSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}

// ObjectID returns the owned object, 0 while observing.
func (r *Replica) ObjectID() uint32 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.objectID
}

// OwnPlayer returns the owned object as seen in the latest snapshot.
func (r *Replica) OwnPlayer() (*pb.PlayerState, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.objectID == 0 {
		return nil, false
	}
	for _, p := range r.snapshot.GetPlayers() {
		if p.GetObjectId() == r.objectID {
			return p, true
		}
	}
	return nil, false
}

// RecentCaptures returns up to the last few capture events, oldest first.
func (r *Replica) RecentCaptures() []*pb.CaptureEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*pb.CaptureEvent(nil), r.captures...)
}

// CaptureCount returns the captures seen since connecting.
func (r *Replica) CaptureCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.captureCount
}

// LastError returns the last error reported by the server.
func (r *Replica) LastError() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastError
}

// Reset forgets everything, used after a disconnect.
func (r *Replica) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.connectionID = ""
	r.objectID = 0
	r.snapshot = &pb.WorldSnapshot{}
	r.captures = nil
	r.captureCount = 0
	r.lastError = ""
}

// Receiver yields server frames, see ws.Client.
type Receiver interface {
	Receive() (*pb.ServerMessage, error)
}

// Pump applies frames from rx until it fails, and returns that error.
func Pump(rx Receiver, r *Replica) error {
	for {
		msg, err := rx.Receive()
		if err != nil {
			return err
		}
		r.Apply(msg)
	}
}
