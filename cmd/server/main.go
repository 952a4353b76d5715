package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lao-tseu-is-alive/go-boids-arena/internal/eventlog"
	"github.com/lao-tseu-is-alive/go-boids-arena/internal/scoreboard"
	"github.com/lao-tseu-is-alive/go-boids-arena/internal/transport/ws"
	"github.com/lao-tseu-is-alive/go-boids-arena/pb"
	"github.com/lao-tseu-is-alive/go-boids-arena/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
)

func main() {
	var (
		configPath  = flag.String("config", "", "arena config, JSON or YAML (built-in defaults when empty)")
		schemaPath  = flag.String("schema", "", "JSON schema for the config (embedded schema when empty)")
		listen      = flag.String("listen", "", "listen address, overrides the config (e.g. :2345)")
		logLevel    = flag.String("log-level", "", "debug, info, warn or error; overrides the config")
		printConfig = flag.Bool("print-config", false, "print the effective config as YAML and exit")
	)
	flag.Parse()

	// 1. Configuration
	cfg := simulation.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = simulation.LoadConfig(*configPath, *schemaPath)
		if err != nil {
			log.Fatal(err)
		}
	}
	if *listen != "" {
		cfg.ListenAddr = *listen
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *printConfig {
		b, err := cfg.YAML()
		if err != nil {
			log.Fatal(err)
		}
		_, _ = os.Stdout.Write(b)
		return
	}
	logger, err := simulation.NewLogger(cfg.LogLevel, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Capture observers
	var observers []simulation.CaptureObserver
	var captureLog *eventlog.CaptureLog
	if cfg.EventLogDir != "" {
		captureLog = eventlog.NewCaptureLog(cfg.EventLogDir, logger)
		observers = append(observers, captureLog)
	}
	var scores *scoreboard.Scoreboard
	if cfg.ScoreDBPath != "" {
		scores, err = scoreboard.Open(cfg.ScoreDBPath, logger)
		if err != nil {
			log.Fatalf("scoreboard: %v", err)
		}
		observers = append(observers, scores)
	}

	// 3. Arena authority
	system, err := actor.NewActorSystem("BoidsArena",
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		log.Fatal(err)
	}
	if err := system.Start(ctx); err != nil {
		log.Fatal(err)
	}
	snapshots := make(chan *pb.WorldSnapshot, 4)
	pid, err := system.Spawn(ctx, "arena", simulation.NewAuthorityActor(cfg, snapshots, nil, observers...))
	if err != nil {
		log.Fatalf("failed to spawn arena: %v", err)
	}

	// 4. Transport and clock
	srv := ws.NewServer(ws.PIDAuthority{PID: pid}, cfg.TickRateHz, logger)
	go srv.Run(ctx, snapshots)
	go func() {
		if err := simulation.NewScheduler(pid, cfg, logger).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Errorf("scheduler stopped: %v", err)
		}
	}()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", srv.Handler())
	mux.HandleFunc("/healthz", func(rw http.ResponseWriter, r *http.Request) {
		rw.WriteHeader(http.StatusOK)
		_, _ = rw.Write([]byte("ok\n"))
	})
	httpSrv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		ctx2, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(ctx2)
	}()

	logger.Infof("arena listening on ws://%s/ws (%d flocks x %d boids, %.0f Hz)",
		cfg.ListenAddr, cfg.NumFlocks, cfg.NumBoids, cfg.TickRateHz)
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Errorf("ListenAndServe: %v", err)
	}

	// 5. Shutdown: stop the authority before closing its observers
	if err := system.Stop(context.Background()); err != nil {
		logger.Warnf("actor system stop: %v", err)
	}
	if captureLog != nil {
		_ = captureLog.Close()
	}
	if scores != nil {
		scores.Flush()
		if tally, err := scores.Tally(context.Background()); err == nil {
			for _, fs := range tally {
				logger.Infof("flock %d lost %d boids (last at tick %d)", fs.FlockID, fs.Captures, fs.LastTick)
			}
		}
		_ = scores.Close()
	}
}
