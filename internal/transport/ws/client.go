package ws

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/lao-tseu-is-alive/go-boids-arena/pb"
)

// Client is the game side of a connection.
type Client struct {
	conn    *websocket.Conn
	welcome *pb.Welcome

	wmu sync.Mutex
}

// Dial connects to url, says HELLO and waits for WELCOME.
func Dial(ctx context.Context, url, name string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	c := &Client{conn: conn}
	if err := c.write(&pb.ClientMessage{
		Kind:  pb.ClientMessageKind_CLIENT_MESSAGE_KIND_HELLO,
		Hello: &pb.Hello{ProtocolVersion: ProtocolVersion, Name: name},
	}); err != nil {
		_ = conn.Close()
		return nil, err
	}

	_ = conn.SetReadDeadline(time.Now().Add(handshakeTimeout))
	msg, err := c.Receive()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("handshake: %w", err)
	}
	if msg.GetKind() != pb.ServerMessageKind_SERVER_MESSAGE_KIND_WELCOME {
		_ = conn.Close()
		return nil, fmt.Errorf("handshake: got %s, want WELCOME", msg.GetKind())
	}
	_ = conn.SetReadDeadline(time.Time{})
	c.welcome = msg.GetWelcome()
	return c, nil
}

// ConnectionID returns the id the server assigned.
func (c *Client) ConnectionID() string { return c.welcome.GetConnectionId() }

// TickRateHz returns the server simulation rate.
func (c *Client) TickRateHz() float64 { return c.welcome.GetTickRateHz() }

// SendReady asks for a controllable object, answered by an AUTHORITY frame.
func (c *Client) SendReady() error {
	return c.write(&pb.ClientMessage{Kind: pb.ClientMessageKind_CLIENT_MESSAGE_KIND_READY})
}

// SendControls replaces the controls the server applies on the next tick.
func (c *Client) SendControls(cs *pb.ControlSnapshot) error {
	return c.write(&pb.ClientMessage{Kind: pb.ClientMessageKind_CLIENT_MESSAGE_KIND_CONTROLS, Controls: cs})
}

// Receive blocks for the next server frame.
func (c *Client) Receive() (*pb.ServerMessage, error) {
	_, b, err := c.conn.ReadMessage()
	if err != nil {
		return nil, err
	}
	return decodeServer(b)
}

func (c *Client) Close() error {
	c.wmu.Lock()
	defer c.wmu.Unlock()
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"),
		time.Now().Add(time.Second))
	return c.conn.Close()
}

func (c *Client) write(msg *pb.ClientMessage) error {
	b, err := encodeClient(msg)
	if err != nil {
		return err
	}
	c.wmu.Lock()
	defer c.wmu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return c.conn.WriteMessage(websocket.BinaryMessage, b)
}
