package scoreboard

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/simulation"
	golog "github.com/tochemey/goakt/v3/log"
	_ "modernc.org/sqlite"
)

// FlockScore is the capture tally of one flock.
type FlockScore struct {
	FlockID  int
	Captures int
	LastTick uint64
}

// Scoreboard persists captures to SQLite from a single writer goroutine so
// the arena never blocks on disk.
type Scoreboard struct {
	db     *sql.DB
	logger golog.Logger

	mu      sync.RWMutex // guards ch against Close
	ch      chan simulation.CaptureEvent
	closed  bool
	wg      sync.WaitGroup
	dropped atomic.Int64
}

var _ simulation.CaptureObserver = (*Scoreboard)(nil)

func Open(path string, logger golog.Logger) (*Scoreboard, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if logger == nil {
		logger = golog.DiscardLogger
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Scoreboard{
		db:     db,
		logger: logger,
		ch:     make(chan simulation.CaptureEvent, 4096),
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.loop()
	}()
	return s, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS captures (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			tick INTEGER NOT NULL,
			flock_id INTEGER NOT NULL,
			agent_id INTEGER NOT NULL,
			x REAL NOT NULL,
			y REAL NOT NULL,
			z REAL NOT NULL,
			recorded_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_captures_flock ON captures(flock_id, tick);`,
		`CREATE TABLE IF NOT EXISTS flock_scores (
			flock_id INTEGER PRIMARY KEY,
			captures INTEGER NOT NULL,
			last_tick INTEGER NOT NULL
		);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// OnAgentCaptured queues the capture; it is dropped when the writer lags.
func (s *Scoreboard) OnAgentCaptured(ev simulation.CaptureEvent) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- ev:
	default:
		s.dropped.Add(1)
	}
}

func (s *Scoreboard) loop() {
	ctx := context.Background()
	for ev := range s.ch {
		if err := s.record(ctx, ev); err != nil {
			s.logger.Errorf("scoreboard: %v", err)
		}
	}
}

func (s *Scoreboard) record(ctx context.Context, ev simulation.CaptureEvent) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO captures(tick,flock_id,agent_id,x,y,z,recorded_at) VALUES(?,?,?,?,?,?,?)`,
		ev.Tick, ev.FlockID, ev.AgentID, ev.Position.X, ev.Position.Y, ev.Position.Z,
		time.Now().UTC().Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("insert capture: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO flock_scores(flock_id,captures,last_tick) VALUES(?,1,?)
		 ON CONFLICT(flock_id) DO UPDATE SET captures=captures+1, last_tick=excluded.last_tick`,
		ev.FlockID, ev.Tick,
	); err != nil {
		return fmt.Errorf("update score: %w", err)
	}
	return tx.Commit()
}

// Tally returns the score of every flock that lost at least one boid,
// ordered by flock id.
func (s *Scoreboard) Tally(ctx context.Context) ([]FlockScore, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT flock_id,captures,last_tick FROM flock_scores ORDER BY flock_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FlockScore
	for rows.Next() {
		var fs FlockScore
		if err := rows.Scan(&fs.FlockID, &fs.Captures, &fs.LastTick); err != nil {
			return nil, err
		}
		out = append(out, fs)
	}
	return out, rows.Err()
}

// Flush stops accepting captures and waits until every queued one is
// written. Tally keeps working until Close.
func (s *Scoreboard) Flush() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.wg.Wait()
		return
	}
	s.closed = true
	close(s.ch)
	s.mu.Unlock()

	s.wg.Wait()
	if n := s.dropped.Load(); n > 0 {
		s.logger.Warnf("scoreboard dropped %d captures", n)
	}
}

// Dropped returns how many captures were discarded because the writer lagged.
func (s *Scoreboard) Dropped() int64 { return s.dropped.Load() }

// Close flushes queued captures and closes the database.
func (s *Scoreboard) Close() error {
	s.Flush()
	return s.db.Close()
}
