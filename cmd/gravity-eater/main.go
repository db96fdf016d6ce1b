package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/gravity-eater/audio"
	"github.com/lixenwraith/gravity-eater/config"
	"github.com/lixenwraith/gravity-eater/core"
	"github.com/lixenwraith/gravity-eater/engine"
	"github.com/lixenwraith/gravity-eater/event"
	"github.com/lixenwraith/gravity-eater/game"
	"github.com/lixenwraith/gravity-eater/logging"
	"github.com/lixenwraith/gravity-eater/parameter"
	"github.com/lixenwraith/gravity-eater/render"
	"github.com/lixenwraith/gravity-eater/store"
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.Parse(os.Args[0], os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	logger, closeLog, err := logging.Setup(cfg.Debug, logging.DefaultDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("terminal host failed", zap.Error(err))
		closeLog()
		fmt.Fprintf(os.Stderr, "Failed to run: %v\n", err)
		os.Exit(1)
	}
	closeLog()
}

// openStore returns the file store for the configured data dir, or memory if none resolves
func openStore(cfg *config.Config, log *zap.Logger) engine.HighScoreStore {
	dir := cfg.DataDir
	if dir == "" {
		var err error
		if dir, err = store.DefaultDir(); err != nil {
			log.Warn("high score kept in memory", zap.Error(err))
			return store.NewMemoryStore(0)
		}
	}
	fileStore := store.NewFileStore(dir)
	log.Debug("high score loaded", zap.String("path", fileStore.Path()), zap.Int("high", fileStore.Load()))
	return fileStore
}

// terminalHost owns the screen-facing side of one session
type terminalHost struct {
	game   *game.Game
	orch   *render.Orchestrator
	sound  *audio.SoundManager
	log    *zap.Logger
	snap   engine.Snapshot
	button bool // Primary button held in the previous mouse event
}

func run(cfg *config.Config, log *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashScreen(screen)
	finish := sync.OnceFunc(screen.Fini)
	defer finish()

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	orch := render.NewOrchestrator(screen, render.ParseColorMode(cfg.Color, screen))
	w, h := orch.LogicalSize()

	host := &terminalHost{
		game: game.New(w, h,
			game.WithLogger(log),
			game.WithStore(openStore(cfg, log)),
			game.WithSeed(cfg.SeedValue()),
		),
		orch:  orch,
		sound: audio.NewSoundManager(parameter.AudioMasterVolume),
		log:   log,
	}

	if cfg.Audio {
		if err := host.sound.Initialize(); err != nil {
			log.Warn("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			defer host.sound.Cleanup()
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	grp, ctx := errgroup.WithContext(ctx)

	events := make(chan tcell.Event, parameter.EventQueueSize)
	grp.Go(func() error {
		return pollEvents(ctx, screen, events)
	})

	loopErr := host.loop(ctx, events, cfg.FrameInterval())

	// Fini unblocks PollEvent so the poller can return
	cancel()
	finish()
	if err := grp.Wait(); err != nil {
		return err
	}
	return loopErr
}

// pollEvents forwards screen events until the screen is finalized
func pollEvents(ctx context.Context, screen tcell.Screen, out chan<- tcell.Event) error {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

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

// loop runs input handling and fixed-rate frames until quit
func (h *terminalHost) loop(ctx context.Context, events <-chan tcell.Event, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	h.frame(0)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if !h.handleEvent(ev) {
				return nil
			}

		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			last = now
			h.frame(dt)
		}
	}
}

// frame advances the game, plays cues and draws
func (h *terminalHost) frame(dt float64) {
	h.game.Tick(dt)

	for _, ev := range h.game.DrainEvents() {
		h.sound.HandleEvent(ev)
		if ev.Type == event.EventGameOver && ev.NewRecord {
			h.log.Debug("new record", zap.String("run", ev.RunID), zap.Int("score", ev.Score))
		}
	}

	h.game.SnapshotInto(&h.snap)
	h.orch.RenderFrame(&h.snap)
}

// handleEvent applies one input event, returns false to quit
func (h *terminalHost) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			h.game.PrimaryAction()
		case tcell.KeyEscape:
			h.game.TogglePause()
		case tcell.KeyRune:
			switch ev.Rune() {
			case ' ':
				h.game.PrimaryAction()
			case 'p', 'P':
				h.game.TogglePause()
			case 'q', 'Q':
				return false
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		p := h.orch.Projection().CellCenter(x, y)
		h.game.SetPointer(p.X, p.Y)

		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !h.button {
			h.game.PrimaryAction()
		}
		h.button = pressed

	case *tcell.EventResize:
		w, hgt := ev.Size()
		h.orch.Resize(w, hgt)
		lw, lh := h.orch.LogicalSize()
		h.game.Resize(lw, lh)
		h.log.Debug("resized", zap.Int("cols", w), zap.Int("rows", hgt))
	}
	return true
}
