package simulation

import (
	"context"
	"time"

	"github.com/lao-tseu-is-alive/go-boids-arena/pb"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
)

// Scheduler drives the authority at the configured tick rate.
type Scheduler struct {
	pid    *actor.PID
	cfg    *Config
	logger golog.Logger
	now    func() time.Time
}

func NewScheduler(pid *actor.PID, cfg *Config, logger golog.Logger) *Scheduler {
	if logger == nil {
		logger = golog.DiscardLogger
	}
	return &Scheduler{pid: pid, cfg: cfg, logger: logger, now: time.Now}
}

// Run sends one Tick per interval until ctx is done. With FixedTimeStep the
// tick carries the configured interval, otherwise the wall time measured
// since the previous tick.
func (s *Scheduler) Run(ctx context.Context) error {
	interval := time.Duration(s.cfg.TickInterval() * float64(time.Second))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Infof("scheduler running at %.1f Hz (fixed step: %v)", s.cfg.TickRateHz, s.cfg.FixedTimeStep)
	last := s.now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			now := s.now()
			dt := s.stepSeconds(now.Sub(last))
			last = now
			if err := actor.Tell(ctx, s.pid, &pb.Tick{DeltaSeconds: dt}); err != nil {
				s.logger.Warnf("failed to deliver tick: %v", err)
			}
		}
	}
}

func (s *Scheduler) stepSeconds(elapsed time.Duration) float64 {
	if s.cfg.FixedTimeStep {
		return s.cfg.TickInterval()
	}
	if elapsed < 0 {
		return 0
	}
	return elapsed.Seconds()
}
