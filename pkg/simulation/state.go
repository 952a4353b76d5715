package simulation

import (
	"sort"

	"github.com/lao-tseu-is-alive/go-boids-arena/pb"
	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/geometry"
)

// Vec3ToProto converts a vector into its wire form.
func Vec3ToProto(v geometry.Vector3) *pb.Vec3 {
	return &pb.Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// Vec3FromProto converts a wire vector; nil becomes the zero vector.
func Vec3FromProto(p *pb.Vec3) geometry.Vector3 {
	return geometry.Vector3{X: p.GetX(), Y: p.GetY(), Z: p.GetZ()}
}

// QuatToProto converts a rotation into its wire form.
func QuatToProto(q geometry.Quaternion) *pb.Quat {
	return &pb.Quat{W: q.W, X: q.X, Y: q.Y, Z: q.Z}
}

// QuatFromProto converts a wire rotation; nil becomes the identity.
func QuatFromProto(p *pb.Quat) geometry.Quaternion {
	if p == nil {
		return geometry.Identity
	}
	return geometry.Quaternion{W: p.W, X: p.X, Y: p.Y, Z: p.Z}
}

// ToProto converts the snapshot into the Protobuf "Envelope".
func (c ControlSnapshot) ToProto() *pb.ControlSnapshot {
	return &pb.ControlSnapshot{Buttons: uint32(c.Buttons), Yaw: c.Yaw, Pitch: c.Pitch}
}

// ControlsFromProto converts incoming controls; nil means nothing held.
func ControlsFromProto(p *pb.ControlSnapshot) ControlSnapshot {
	return ControlSnapshot{Buttons: Button(p.GetButtons()), Yaw: p.GetYaw(), Pitch: p.GetPitch()}
}

// ToProto converts the event into its wire form.
func (e CaptureEvent) ToProto() *pb.CaptureEvent {
	return &pb.CaptureEvent{
		Tick:     e.Tick,
		FlockId:  uint32(e.FlockID),
		AgentId:  uint32(e.AgentID),
		Position: Vec3ToProto(e.Position),
	}
}

// CaptureEventFromProto converts a wire capture event.
func CaptureEventFromProto(p *pb.CaptureEvent) CaptureEvent {
	return CaptureEvent{
		Tick:     p.GetTick(),
		FlockID:  int(p.GetFlockId()),
		AgentID:  int(p.GetAgentId()),
		Position: Vec3FromProto(p.GetPosition()),
	}
}

// Snapshot builds the replicated view of the arena after the last tick.
// Agents are ordered by flock then agent id, players by object id.
func (s *Session) Snapshot() *pb.WorldSnapshot {
	total := 0
	for _, f := range s.flocks {
		total += f.Len()
	}
	snap := &pb.WorldSnapshot{
		Tick:         s.tick,
		Agents:       make([]*pb.AgentState, 0, total),
		Players:      make([]*pb.PlayerState, 0, len(s.players)),
		TargetActive: s.target.Active,
		Target:       Vec3ToProto(s.target.Position),
	}
	for _, f := range s.flocks {
		for i := range f.Boids {
			b := &f.Boids[i]
			snap.Agents = append(snap.Agents, &pb.AgentState{
				FlockId:     uint32(f.ID),
				AgentId:     uint32(i),
				Position:    Vec3ToProto(b.Position()),
				Velocity:    Vec3ToProto(b.Velocity()),
				Orientation: QuatToProto(b.Orientation()),
			})
		}
	}
	for _, p := range s.players {
		snap.Players = append(snap.Players, &pb.PlayerState{
			ObjectId:     p.ObjectID,
			ConnectionId: p.ConnectionID,
			Position:     Vec3ToProto(p.Body.Position),
			Velocity:     Vec3ToProto(p.Body.Velocity),
			Orientation:  QuatToProto(p.Body.Rotation),
		})
	}
	sort.Slice(snap.Players, func(i, j int) bool {
		return snap.Players[i].ObjectId < snap.Players[j].ObjectId
	})
	for _, ev := range s.lastCaptures {
		snap.Captures = append(snap.Captures, ev.ToProto())
	}
	return snap
}
