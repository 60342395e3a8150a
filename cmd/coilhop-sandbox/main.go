// Command coilhop-sandbox drives the simulation core in a terminal for tuning sessions
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/coilhop/config"
	"github.com/lixenwraith/coilhop/core"
	"github.com/lixenwraith/coilhop/engine"
	"github.com/lixenwraith/coilhop/event"
	"github.com/lixenwraith/coilhop/parameter"
	"github.com/lixenwraith/coilhop/status"
	"github.com/lixenwraith/coilhop/vmath"
)

var (
	configFlag = flag.String("config", "", "YAML tuning file overlaid on the defaults")
	seedFlag   = flag.Uint64("seed", 0, "Spawn seed, 0 derives one from the clock")
	debugFlag  = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	levelFlag  = flag.String("log-level", "debug", "Log level: debug, info, warn, error")
	dumpFlag   = flag.Bool("dump-config", false, "Print the effective tuning as YAML and exit")
)

const (
	statsInterval = 5 * time.Second

	// dropOffset is how far along the flight path a debug monster is placed (px)
	dropOffset = 150.0
)

var errQuit = errors.New("quit")

func main() {
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*levelFlag)); err != nil {
		level = slog.LevelDebug
	}
	logger, logFile := setupLogging(*debugFlag, level)
	if logFile != nil {
		defer logFile.Close()
	}
	slog.SetDefault(logger)

	cfg := config.DefaultConfig()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			fmt.Fprintf(os.Stderr, "config: %v (using defaults)\n", err)
			logger.Warn("config load failed", slog.Any("error", err))
		}
	}
	cfg = cfg.Sanitize(logger)

	if *dumpFlag {
		blob, err := cfg.Marshal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "marshal config: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(blob)
		return
	}

	seed := *seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	if err := run(cfg, seed, logger); err != nil {
		fmt.Fprintf(os.Stderr, "coilhop: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, seed uint64, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	fini := sync.OnceFunc(screen.Fini)
	defer fini()
	core.SetCrashHandler(fini)
	screen.HideCursor()

	scene := engine.NewScene(cfg, engine.Deps{
		Rand:   vmath.NewFastRand(seed),
		Logger: logger,
	})
	logger.Info("session started", slog.Uint64("seed", seed), slog.String("run", scene.RunID()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	rec := status.NewRecorder(status.NewRegistry())
	input := make(chan tcell.Event, 64)
	g.Go(core.Go(func() error {
		return pumpInput(gctx, screen, input)
	}))
	g.Go(core.Go(func() error {
		return reportStats(gctx, rec.Registry(), logger)
	}))
	g.Go(core.Go(func() error {
		// Finishing the screen unblocks PollEvent in the pump
		defer fini()
		return loop(gctx, screen, scene, engine.NewClock(cfg.Clock, nil), rec, input, logger)
	}))

	err = g.Wait()
	logger.LogAttrs(context.Background(), slog.LevelInfo, "session ended",
		append(rec.Registry().Attrs(), slog.Uint64("ticks", scene.Ticks()))...)
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// pumpInput forwards terminal events until the screen is finalized
func pumpInput(ctx context.Context, screen tcell.Screen, out chan<- tcell.Event) error {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		select {
		case out <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

// reportStats logs a metrics snapshot on a fixed interval
func reportStats(ctx context.Context, reg *status.Registry, logger *slog.Logger) error {
	ticker := time.NewTicker(statsInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			logger.LogAttrs(ctx, slog.LevelDebug, "stats", reg.Attrs()...)
		}
	}
}

func loop(ctx context.Context, screen tcell.Screen, scene *engine.Scene, clock *engine.Clock, rec *status.Recorder, input <-chan tcell.Event, logger *slog.Logger) error {
	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	ctl := &controls{}
	v := newView(scene.Config().World)
	v.stats = rec

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-input:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			ctl.handle(ev, time.Now())
			if ctl.quit {
				return errQuit
			}

		case <-ticker.C:
			if ctl.paused != clock.Paused() {
				if ctl.paused {
					clock.Pause()
				} else {
					clock.Resume()
				}
			}

			if ctl.takeDrop() {
				dropMonster(scene)
			}

			now := time.Now()
			steps := clock.Frame(scene.TimeScale(), func(dt float64) {
				scene.Tick(dt, ctl.next(now))
			})
			rec.Frame(steps, clock.Dropped())

			for _, ev := range scene.Events().Consume() {
				rec.Observe(ev)
				logEvent(logger, ev)
				v.lastEvent = ev.Type.String()
			}

			v.draw(screen, scene)
			if clock.Paused() {
				v.banner(screen, " PAUSED  p resume  q quit ")
			}
			screen.Show()
		}
	}
}

// dropMonster places a poisoning monster in the player's path for contact tuning
func dropMonster(scene *engine.Scene) {
	p := scene.Player()
	y := scene.Cycle().Altitude() + p.Radius
	if scene.Cycle().VelocityY() < 0 {
		y -= dropOffset
	} else {
		y += dropOffset
	}
	scene.Director().SpawnAt(core.MonsterA01, p.X, y, scene.Now())
}

func logEvent(logger *slog.Logger, ev event.GameEvent) {
	level := slog.LevelDebug
	switch ev.Type {
	case event.EventInstantDeath, event.EventPlayerDamaged:
		level = slog.LevelInfo
	}
	logger.Log(context.Background(), level, "event",
		slog.String("type", ev.Type.String()),
		slog.Uint64("tick", ev.Tick),
		slog.Any("payload", ev.Payload),
	)
}
