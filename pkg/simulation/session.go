package simulation

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/physics"
	golog "github.com/tochemey/goakt/v3/log"
)

var (
	ErrUnknownConnection   = errors.New("unknown connection")
	ErrDuplicateConnection = errors.New("connection already registered")
	ErrInvalidTimeStep     = errors.New("time step is not a number")
)

// Connection is the server-side view of one client.
type Connection struct {
	ID       string
	Controls ControlSnapshot
	ObjectID uint32 // 0 while the client only observes
}

// Player is a controllable object owned by a connection.
type Player struct {
	ObjectID     uint32
	ConnectionID string
	Body         *physics.Body
}

// Session is the authoritative simulation of one arena: the flocks, the
// player objects and the capture target. It is not safe for concurrent use;
// the AuthorityActor serializes every call.
type Session struct {
	cfg      *Config
	logger   golog.Logger
	flocks   []*Flock
	detector CaptureDetector
	target   CaptureTarget

	connections  map[string]*Connection
	players      map[uint32]*Player
	nextObjectID uint32

	observers    []CaptureObserver
	tick         uint64
	lastCaptures []CaptureEvent
	totalCapture int
}

// NewSession creates cfg.NumFlocks flocks of cfg.NumBoids boids.
func NewSession(cfg *Config, logger golog.Logger, rng *rand.Rand) (*Session, error) {
	spawn := Volume{Min: cfg.SpawnMin, Max: cfg.SpawnMax}
	flocks := make([]*Flock, 0, cfg.NumFlocks)
	for id := 0; id < cfg.NumFlocks; id++ {
		f, err := InitializeFlock(id, cfg.NumBoids, spawn, cfg, rng)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize flock %d: %w", id, err)
		}
		flocks = append(flocks, f)
	}
	return NewSessionWithFlocks(cfg, logger, flocks), nil
}

// NewSessionWithFlocks creates a session around already built flocks.
func NewSessionWithFlocks(cfg *Config, logger golog.Logger, flocks []*Flock) *Session {
	if logger == nil {
		logger = golog.DiscardLogger
	}
	return &Session{
		cfg:          cfg,
		logger:       logger,
		flocks:       flocks,
		detector:     NewCaptureDetector(cfg),
		connections:  make(map[string]*Connection),
		players:      make(map[uint32]*Player),
		nextObjectID: 1,
	}
}

// AddObserver registers o for capture notifications.
func (s *Session) AddObserver(o CaptureObserver) {
	s.observers = append(s.observers, o)
}

// Connect registers a new observing connection.
func (s *Session) Connect(id string) error {
	if _, ok := s.connections[id]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateConnection, id)
	}
	s.connections[id] = &Connection{ID: id}
	return nil
}

// Disconnect forgets the connection and removes its object, if any.
// The capture target keeps its last position.
func (s *Session) Disconnect(id string) error {
	conn, ok := s.connections[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownConnection, id)
	}
	if conn.ObjectID != 0 {
		delete(s.players, conn.ObjectID)
	}
	delete(s.connections, id)
	return nil
}

// ClaimControl gives the connection a controllable object at the configured
// spawn point and returns its id. Claiming twice returns the same object.
func (s *Session) ClaimControl(id string) (uint32, error) {
	conn, ok := s.connections[id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownConnection, id)
	}
	if conn.ObjectID != 0 {
		return conn.ObjectID, nil
	}
	p := s.cfg.Player
	body, err := physics.NewBody(p.Mass, p.LinearDamping, p.Spawn)
	if err != nil {
		return 0, fmt.Errorf("failed to create object for %s: %w", id, err)
	}
	objectID := s.nextObjectID
	s.nextObjectID++
	s.players[objectID] = &Player{ObjectID: objectID, ConnectionID: id, Body: body}
	conn.ObjectID = objectID
	return objectID, nil
}

// ApplyControlSnapshot stores the latest controls of a connection, replacing
// whatever was there.
func (s *Session) ApplyControlSnapshot(id string, c ControlSnapshot) error {
	conn, ok := s.connections[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownConnection, id)
	}
	if math.IsNaN(c.Yaw) || math.IsInf(c.Yaw, 0) {
		c.Yaw = conn.Controls.Yaw
	}
	if math.IsNaN(c.Pitch) || math.IsInf(c.Pitch, 0) {
		c.Pitch = conn.Controls.Pitch
	}
	conn.Controls = c
	return nil
}

// SetCaptureTarget moves the target. Activation is sticky: passing
// active=false does not disable an already active target.
func (s *Session) SetCaptureTarget(pos geometry.Vector3, active bool) {
	s.target.Position = pos
	s.target.Active = s.target.Active || active
}

// Tick runs one authoritative step of dt seconds and returns the captures
// that happened during it:
//  1. controls of every connection owning an object become forces,
//     then player objects integrate
//  2. every flock updates
//  3. the newest player object becomes the capture target, detectors run
func (s *Session) Tick(dt float64) ([]CaptureEvent, error) {
	if math.IsNaN(dt) {
		return nil, ErrInvalidTimeStep
	}
	if dt < 0 {
		return nil, fmt.Errorf("%w: %v", ErrNegativeTimeStep, dt)
	}
	s.tick++

	// 1. Controls and player physics
	ids := s.connectionIDs()
	for _, id := range ids {
		conn := s.connections[id]
		p, ok := s.players[conn.ObjectID]
		if !ok {
			continue
		}
		applyControls(p.Body, conn.Controls, s.cfg.Player)
	}
	for _, id := range ids {
		if p, ok := s.players[s.connections[id].ObjectID]; ok {
			s.integratePlayer(p, dt)
		}
	}

	// 2. Flocks
	for _, f := range s.flocks {
		if err := f.Update(dt); err != nil {
			return nil, err
		}
	}

	// 3. Capture
	if p := s.newestPlayer(); p != nil {
		s.SetCaptureTarget(p.Body.Position, true)
	}
	s.lastCaptures = s.lastCaptures[:0]
	if s.target.Active {
		for _, f := range s.flocks {
			for _, ev := range s.detector.Detect(f, s.target, s.tick) {
				s.notify(ev)
				s.lastCaptures = append(s.lastCaptures, ev)
			}
		}
	}
	return append([]CaptureEvent(nil), s.lastCaptures...), nil
}

func (s *Session) integratePlayer(p *Player, dt float64) {
	saved := p.Body.Save()
	p.Body.Integrate(dt)
	if !p.Body.Position.IsFinite() || !p.Body.Velocity.IsFinite() {
		s.logger.Warnf("object %d produced a non-finite state, step discarded", p.ObjectID)
		p.Body.Restore(saved)
	}
}

func (s *Session) notify(ev CaptureEvent) {
	s.totalCapture++
	s.logger.Infof("boid captured: flock=%d agent=%d tick=%d at %s", ev.FlockID, ev.AgentID, ev.Tick, ev.Position)
	for _, o := range s.observers {
		o.OnAgentCaptured(ev)
	}
}

// newestPlayer returns the most recently created object still in play.
func (s *Session) newestPlayer() *Player {
	var newest *Player
	for id, p := range s.players {
		if newest == nil || id > newest.ObjectID {
			newest = p
		}
	}
	return newest
}

func (s *Session) connectionIDs() []string {
	ids := make([]string, 0, len(s.connections))
	for id := range s.connections {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Flocks returns the flocks, indexed by flock id.
func (s *Session) Flocks() []*Flock { return s.flocks }

// Target returns the current capture target.
func (s *Session) Target() CaptureTarget { return s.target }

// TickCount returns how many ticks have run.
func (s *Session) TickCount() uint64 { return s.tick }

// TotalCaptures returns the number of captures since the session started.
func (s *Session) TotalCaptures() int { return s.totalCapture }

// Player returns the object with the given id.
func (s *Session) Player(objectID uint32) (*Player, bool) {
	p, ok := s.players[objectID]
	return p, ok
}

// Connection returns the connection with the given id.
func (s *Session) Connection(id string) (*Connection, bool) {
	c, ok := s.connections[id]
	return c, ok
}

// NumConnections returns the number of registered connections.
func (s *Session) NumConnections() int { return len(s.connections) }
