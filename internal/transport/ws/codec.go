package ws

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-boids-arena/pb"
	"google.golang.org/protobuf/proto"
)

// ProtocolVersion is announced in HELLO and must match the server's.
const ProtocolVersion = 1

// Frames are binary websocket messages holding one protobuf envelope.

func encodeServer(msg *pb.ServerMessage) ([]byte, error) {
	b, err := proto.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", msg.GetKind(), err)
	}
	return b, nil
}

func decodeServer(b []byte) (*pb.ServerMessage, error) {
	msg := &pb.ServerMessage{}
	if err := proto.Unmarshal(b, msg); err != nil {
		return nil, fmt.Errorf("decode server frame: %w", err)
	}
	return msg, nil
}

func encodeClient(msg *pb.ClientMessage) ([]byte, error) {
	b, err := proto.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", msg.GetKind(), err)
	}
	return b, nil
}

func decodeClient(b []byte) (*pb.ClientMessage, error) {
	msg := &pb.ClientMessage{}
	if err := proto.Unmarshal(b, msg); err != nil {
		return nil, fmt.Errorf("decode client frame: %w", err)
	}
	return msg, nil
}

func snapshotFrame(s *pb.WorldSnapshot) *pb.ServerMessage {
	return &pb.ServerMessage{Kind: pb.ServerMessageKind_SERVER_MESSAGE_KIND_SNAPSHOT, Snapshot: s}
}

func captureFrame(ev *pb.CaptureEvent) *pb.ServerMessage {
	return &pb.ServerMessage{Kind: pb.ServerMessageKind_SERVER_MESSAGE_KIND_CAPTURE, Capture: ev}
}

func errorFrame(format string, args ...any) *pb.ServerMessage {
	return &pb.ServerMessage{Kind: pb.ServerMessageKind_SERVER_MESSAGE_KIND_ERROR, Error: fmt.Sprintf(format, args...)}
}
