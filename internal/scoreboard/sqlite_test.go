package scoreboard

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"

	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/simulation"
	_ "modernc.org/sqlite"
)

func TestScoreboard_Tally(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores", "board.db")
	sb, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	sb.OnAgentCaptured(simulation.CaptureEvent{Tick: 5, FlockID: 2, AgentID: 1, Position: geometry.Vector3{X: 1}})
	sb.OnAgentCaptured(simulation.CaptureEvent{Tick: 8, FlockID: 2, AgentID: 3})
	sb.OnAgentCaptured(simulation.CaptureEvent{Tick: 9, FlockID: 0, AgentID: 0})
	if err := sb.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	// captures after Close are ignored
	sb.OnAgentCaptured(simulation.CaptureEvent{Tick: 10})

	sb, err = Open(path, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer sb.Close()
	got, err := sb.Tally(context.Background())
	if err != nil {
		t.Fatalf("Tally: %v", err)
	}
	want := []FlockScore{{FlockID: 0, Captures: 1, LastTick: 9}, {FlockID: 2, Captures: 2, LastTick: 8}}
	if len(got) != len(want) {
		t.Fatalf("Tally = %+v; want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Tally[%d] = %+v; want %+v", i, got[i], want[i])
		}
	}
}

func TestScoreboard_CaptureRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.db")
	sb, err := Open(path, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	sb.OnAgentCaptured(simulation.CaptureEvent{Tick: 42, FlockID: 3, AgentID: 7, Position: geometry.Vector3{X: 1.5, Y: 10, Z: -2}})
	if err := sb.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	defer db.Close()

	var (
		tick         int64
		flock, agent int
		x, y, z      float64
	)
	row := db.QueryRow(`SELECT tick,flock_id,agent_id,x,y,z FROM captures`)
	if err := row.Scan(&tick, &flock, &agent, &x, &y, &z); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if tick != 42 || flock != 3 || agent != 7 || x != 1.5 || y != 10 || z != -2 {
		t.Fatalf("row mismatch: tick=%d flock=%d agent=%d pos=(%v,%v,%v)", tick, flock, agent, x, y, z)
	}
}

func TestOpen_EmptyPath(t *testing.T) {
	if _, err := Open("", nil); err == nil {
		t.Fatal("Open(\"\") succeeded")
	}
}

func TestScoreboard_FlushThenTally(t *testing.T) {
	sb, err := Open(filepath.Join(t.TempDir(), "board.db"), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer sb.Close()
	for i := 0; i < 50; i++ {
		sb.OnAgentCaptured(simulation.CaptureEvent{Tick: uint64(i), FlockID: 1, AgentID: i})
	}
	sb.Flush()
	got, err := sb.Tally(context.Background())
	if err != nil {
		t.Fatalf("Tally: %v", err)
	}
	if len(got) != 1 || got[0].Captures != 50 || got[0].LastTick != 49 {
		t.Fatalf("Tally = %+v; want flock 1 with 50 captures, last tick 49", got)
	}
}

func TestScoreboard_ConcurrentDrops(t *testing.T) {
	// no writer goroutine: the one-slot queue fills and every other capture drops
	sb := &Scoreboard{ch: make(chan simulation.CaptureEvent, 1)}
	const notifiers = 32
	var wg sync.WaitGroup
	for i := 0; i < notifiers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			sb.OnAgentCaptured(simulation.CaptureEvent{Tick: uint64(id), FlockID: id % 5})
		}(i)
	}
	wg.Wait()
	if got := sb.Dropped(); got != notifiers-1 {
		t.Errorf("Dropped() = %d; want %d", got, notifiers-1)
	}
	if got := len(sb.ch); got != 1 {
		t.Errorf("queued = %d; want 1", got)
	}
}
