package eventlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/simulation"
	golog "github.com/tochemey/goakt/v3/log"
)

// JSONLZstdWriter appends one JSON document per line to hourly
// zstd-compressed files named <prefix>-YYYY-MM-DD-HH.jsonl.zst.
type JSONLZstdWriter struct {
	baseDir string
	prefix  string
	now     func() time.Time

	mu      sync.Mutex
	curHour string
	f       *os.File
	enc     *zstd.Encoder
	w       *bufio.Writer
}

func NewJSONLZstdWriter(baseDir, prefix string) *JSONLZstdWriter {
	return &JSONLZstdWriter{
		baseDir: baseDir,
		prefix:  prefix,
		now:     time.Now,
	}
}

func (w *JSONLZstdWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closeLocked()
}

func (w *JSONLZstdWriter) Write(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	hour := w.now().UTC().Format("2006-01-02-15")
	if hour != w.curHour {
		if err := w.rotateLocked(hour); err != nil {
			return err
		}
	}

	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	if err := w.w.WriteByte('\n'); err != nil {
		return err
	}
	return w.w.Flush()
}

func (w *JSONLZstdWriter) rotateLocked(hour string) error {
	if err := w.closeLocked(); err != nil {
		return err
	}
	if err := os.MkdirAll(w.baseDir, 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(w.PathForHour(hour), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return err
	}
	w.f = f
	w.enc = enc
	w.w = bufio.NewWriterSize(enc, 32*1024)
	w.curHour = hour
	return nil
}

func (w *JSONLZstdWriter) closeLocked() error {
	var err1 error
	if w.w != nil {
		_ = w.w.Flush()
	}
	if w.enc != nil {
		err1 = w.enc.Close()
		w.enc = nil
	}
	if w.f != nil {
		_ = w.f.Close()
		w.f = nil
	}
	w.w = nil
	w.curHour = ""
	return err1
}

// PathForHour returns the file holding the records of hour (UTC, 2006-01-02-15).
func (w *JSONLZstdWriter) PathForHour(hour string) string {
	return filepath.Join(w.baseDir, fmt.Sprintf("%s-%s.jsonl.zst", w.prefix, hour))
}

// CaptureRecord is one line of the capture log.
type CaptureRecord struct {
	Time     time.Time        `json:"time"`
	Tick     uint64           `json:"tick"`
	FlockID  int              `json:"flock_id"`
	AgentID  int              `json:"agent_id"`
	Position geometry.Vector3 `json:"position"`
}

// CaptureLog records every capture of the arena.
type CaptureLog struct {
	w      *JSONLZstdWriter
	logger golog.Logger
}

var _ simulation.CaptureObserver = (*CaptureLog)(nil)

func NewCaptureLog(dir string, logger golog.Logger) *CaptureLog {
	if logger == nil {
		logger = golog.DiscardLogger
	}
	return &CaptureLog{w: NewJSONLZstdWriter(dir, "captures"), logger: logger}
}

func (l *CaptureLog) OnAgentCaptured(ev simulation.CaptureEvent) {
	rec := CaptureRecord{
		Time:     l.w.now().UTC(),
		Tick:     ev.Tick,
		FlockID:  ev.FlockID,
		AgentID:  ev.AgentID,
		Position: ev.Position,
	}
	if err := l.w.Write(rec); err != nil {
		l.logger.Errorf("capture log: %v", err)
	}
}

func (l *CaptureLog) Close() error { return l.w.Close() }
