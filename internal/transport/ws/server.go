package ws

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/lao-tseu-is-alive/go-boids-arena/pb"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
	"google.golang.org/protobuf/proto"
)

const (
	handshakeTimeout = 5 * time.Second
	writeTimeout     = 5 * time.Second
	readTimeout      = 60 * time.Second
	askTimeout       = 2 * time.Second
	clientQueue      = 16
)

// Authority receives connection events and controls. In production it is
// the arena actor, see PIDAuthority.
type Authority interface {
	Tell(ctx context.Context, msg proto.Message) error
	Ask(ctx context.Context, msg proto.Message, timeout time.Duration) (proto.Message, error)
}

// PIDAuthority forwards to an actor.
type PIDAuthority struct {
	PID *actor.PID
}

func (a PIDAuthority) Tell(ctx context.Context, msg proto.Message) error {
	return actor.Tell(ctx, a.PID, msg)
}

func (a PIDAuthority) Ask(ctx context.Context, msg proto.Message, timeout time.Duration) (proto.Message, error) {
	return actor.Ask(ctx, a.PID, msg, timeout)
}

type client struct {
	id  string
	out chan []byte
}

// Server accepts game clients and fans snapshots out to them.
type Server struct {
	authority  Authority
	tickRateHz float64
	logger     golog.Logger

	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[string]*client
	nextID  atomic.Uint64
	dropped atomic.Uint64
}

func NewServer(authority Authority, tickRateHz float64, logger golog.Logger) *Server {
	if logger == nil {
		logger = golog.DiscardLogger
	}
	return &Server{
		authority:  authority,
		tickRateHz: tickRateHz,
		logger:     logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  16 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true }, // LAN game
		},
		clients: make(map[string]*client),
	}
}

func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			s.logger.Warnf("upgrade from %s failed: %v", r.RemoteAddr, err)
			return
		}
		defer conn.Close()

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		c, ok := s.handshake(ctx, conn)
		if !ok {
			return
		}
		defer s.leave(c)

		// Writer goroutine.
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case b := <-c.out:
					_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
					if err := conn.WriteMessage(websocket.BinaryMessage, b); err != nil {
						cancel()
						return
					}
				}
			}
		}()

		// Reader loop.
		for {
			_ = conn.SetReadDeadline(time.Now().Add(readTimeout))
			_, b, err := conn.ReadMessage()
			if err != nil {
				return
			}
			msg, err := decodeClient(b)
			if err != nil {
				s.send(c, errorFrame("%v", err))
				continue
			}
			s.dispatch(ctx, c, msg)
		}
	}
}

func (s *Server) handshake(ctx context.Context, conn *websocket.Conn) (*client, bool) {
	_ = conn.SetReadDeadline(time.Now().Add(handshakeTimeout))
	_, b, err := conn.ReadMessage()
	if err != nil {
		return nil, false
	}
	msg, err := decodeClient(b)
	if err != nil || msg.GetKind() != pb.ClientMessageKind_CLIENT_MESSAGE_KIND_HELLO {
		reject(conn, "expected HELLO")
		return nil, false
	}
	if v := msg.GetHello().GetProtocolVersion(); v != ProtocolVersion {
		reject(conn, fmt.Sprintf("bad protocol version %d", v))
		return nil, false
	}

	c := &client{
		id:  fmt.Sprintf("c-%d", s.nextID.Add(1)),
		out: make(chan []byte, clientQueue),
	}
	if err := s.authority.Tell(ctx, &pb.ClientConnected{ConnectionId: c.id}); err != nil {
		s.logger.Errorf("failed to register %s: %v", c.id, err)
		reject(conn, "arena unavailable")
		return nil, false
	}
	s.mu.Lock()
	s.clients[c.id] = c
	s.mu.Unlock()

	welcome, err := encodeServer(&pb.ServerMessage{
		Kind: pb.ServerMessageKind_SERVER_MESSAGE_KIND_WELCOME,
		Welcome: &pb.Welcome{
			ConnectionId:    c.id,
			TickRateHz:      s.tickRateHz,
			ProtocolVersion: ProtocolVersion,
		},
	})
	if err == nil {
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		err = conn.WriteMessage(websocket.BinaryMessage, welcome)
	}
	if err != nil {
		s.leave(c)
		return nil, false
	}
	s.logger.Infof("client %s (%q) joined", c.id, msg.GetHello().GetName())
	return c, true
}

func (s *Server) dispatch(ctx context.Context, c *client, msg *pb.ClientMessage) {
	switch msg.GetKind() {
	case pb.ClientMessageKind_CLIENT_MESSAGE_KIND_CONTROLS:
		if err := s.authority.Tell(ctx, &pb.ControlUpdate{ConnectionId: c.id, Controls: msg.GetControls()}); err != nil {
			s.logger.Warnf("controls from %s lost: %v", c.id, err)
		}
	case pb.ClientMessageKind_CLIENT_MESSAGE_KIND_READY:
		reply, err := s.authority.Ask(ctx, &pb.ClientReady{ConnectionId: c.id}, askTimeout)
		if err != nil {
			s.send(c, errorFrame("ready: %v", err))
			return
		}
		auth, ok := reply.(*pb.ObjectAuthority)
		if !ok || auth.GetObjectId() == 0 {
			s.send(c, errorFrame("no object granted"))
			return
		}
		s.send(c, &pb.ServerMessage{Kind: pb.ServerMessageKind_SERVER_MESSAGE_KIND_AUTHORITY, Authority: auth})
	default:
		s.send(c, errorFrame("unexpected %s", msg.GetKind()))
	}
}

func (s *Server) leave(c *client) {
	s.mu.Lock()
	_, ok := s.clients[c.id]
	delete(s.clients, c.id)
	s.mu.Unlock()
	if !ok {
		return
	}
	if err := s.authority.Tell(context.Background(), &pb.ClientDisconnected{ConnectionId: c.id}); err != nil {
		s.logger.Warnf("failed to unregister %s: %v", c.id, err)
	}
	s.logger.Infof("client %s left", c.id)
}

// send queues a frame for one client, dropping it when the client lags.
func (s *Server) send(c *client, msg *pb.ServerMessage) {
	b, err := encodeServer(msg)
	if err != nil {
		s.logger.Errorf("%v", err)
		return
	}
	s.enqueue(c, b)
}

func (s *Server) enqueue(c *client, b []byte) {
	select {
	case c.out <- b:
	default:
		s.dropped.Add(1)
	}
}

// Broadcast sends the snapshot to every client, followed by one CAPTURE
// frame per capture it carries. Each frame is encoded once.
func (s *Server) Broadcast(snap *pb.WorldSnapshot) {
	frames := make([][]byte, 0, 1+len(snap.GetCaptures()))
	b, err := encodeServer(snapshotFrame(snap))
	if err != nil {
		s.logger.Errorf("%v", err)
		return
	}
	frames = append(frames, b)
	for _, ev := range snap.GetCaptures() {
		if b, err := encodeServer(captureFrame(ev)); err == nil {
			frames = append(frames, b)
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.clients {
		for _, f := range frames {
			s.enqueue(c, f)
		}
	}
}

// Run broadcasts every snapshot received until ctx is done or snapshots closes.
func (s *Server) Run(ctx context.Context, snapshots <-chan *pb.WorldSnapshot) {
	for {
		select {
		case <-ctx.Done():
			return
		case snap, ok := <-snapshots:
			if !ok {
				return
			}
			s.Broadcast(snap)
		}
	}
}

// NumClients returns the number of clients past the handshake.
func (s *Server) NumClients() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// Dropped returns how many frames were discarded for lagging clients.
func (s *Server) Dropped() uint64 { return s.dropped.Load() }

func reject(conn *websocket.Conn, reason string) {
	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason),
		time.Now().Add(time.Second))
}
