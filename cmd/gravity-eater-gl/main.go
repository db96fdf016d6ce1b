package main

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/lixenwraith/gravity-eater/audio"
	"github.com/lixenwraith/gravity-eater/config"
	"github.com/lixenwraith/gravity-eater/engine"
	"github.com/lixenwraith/gravity-eater/game"
	"github.com/lixenwraith/gravity-eater/logging"
	"github.com/lixenwraith/gravity-eater/parameter"
	"github.com/lixenwraith/gravity-eater/render"
	"github.com/lixenwraith/gravity-eater/store"
)

// Colors are premultiplied alpha
var (
	colorBackground = color.RGBA{7, 10, 18, 255}
	colorFood       = color.RGBA{148, 255, 166, 255}
	colorHazard     = color.RGBA{242, 106, 106, 255}
	colorHazardRing = color.RGBA{109, 48, 48, 115}
	colorHalo       = color.RGBA{38, 51, 89, 89}
	colorPlayer     = color.RGBA{0, 0, 0, 255}
	colorHighlight  = color.RGBA{25, 25, 25, 25}
	colorShade      = color.RGBA{0, 0, 0, 115}
)

// Debug font metrics of ebitenutil.DebugPrint
const (
	glyphWidth  = 6
	glyphHeight = 16
	hudLeft     = 20
	hudTop      = 14
	hudSpacing  = 26
)

var errQuit = errors.New("quit")

// windowHost adapts game.Game to ebiten.Game
type windowHost struct {
	game  *game.Game
	sound *audio.SoundManager
	log   *zap.Logger
	snap  engine.Snapshot

	width, height int
}

func (w *windowHost) Update() error {
	x, y := ebiten.CursorPosition()
	w.game.SetPointer(float64(x), float64(y))

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.game.PrimaryAction()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		w.game.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return errQuit
	}

	w.game.Tick(1 / float64(ebiten.TPS()))
	w.sound.HandleEvents(w.game.DrainEvents())
	return nil
}

func (w *windowHost) Draw(screen *ebiten.Image) {
	w.game.SnapshotInto(&w.snap)
	s := &w.snap

	screen.Fill(colorBackground)

	for _, f := range s.Foods {
		vector.FillCircle(screen, float32(f.Pos.X), float32(f.Pos.Y), float32(f.Radius), colorFood, true)
	}
	for _, h := range s.Hazards {
		vector.FillCircle(screen, float32(h.Pos.X), float32(h.Pos.Y), float32(h.Radius), colorHazard, true)
		vector.StrokeCircle(screen, float32(h.Pos.X), float32(h.Pos.Y), float32(h.Radius+parameter.HazardRingOffset), 2, colorHazardRing, true)
	}

	p := s.Player
	halo := p.Radius + parameter.HaloOffset + math.Sin(s.Time*parameter.HaloFrequency)*parameter.HaloAmplitude
	vector.StrokeCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(halo), 2, colorHalo, true)
	vector.FillCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius), colorPlayer, true)
	vector.FillCircle(screen, float32(p.Pos.X-p.Radius*0.35), float32(p.Pos.Y-p.Radius*0.35), float32(p.Radius*0.25), colorHighlight, true)

	for i, line := range render.HUDLines(s) {
		ebitenutil.DebugPrintAt(screen, line, hudLeft, hudTop+i*hudSpacing)
	}
	w.drawBanner(screen, s)
}

func (w *windowHost) drawBanner(screen *ebiten.Image, s *engine.Snapshot) {
	title, lines, ok := render.Banner(s)
	if !ok {
		return
	}

	fw, fh := float64(w.width), float64(w.height)
	vector.FillRect(screen,
		float32(fw*parameter.BannerLeft), float32(fh*parameter.BannerTop),
		float32(fw*parameter.BannerWidth), float32(fh*parameter.BannerHeight),
		colorShade, false)

	centered := func(text string, y float64) {
		x := (w.width - len([]rune(text))*glyphWidth) / 2
		ebitenutil.DebugPrintAt(screen, text, x, int(y)-glyphHeight/2)
	}
	centered(title, fh*parameter.BannerTitleRow)
	for i, line := range lines {
		centered(line, fh*parameter.BannerSubRow+float64(i*30))
	}
}

// Layout keeps one logical unit per pixel and follows window resizes
func (w *windowHost) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != w.width || outsideHeight != w.height {
		w.width, w.height = outsideWidth, outsideHeight
		w.game.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

func openStore(cfg *config.Config, log *zap.Logger) engine.HighScoreStore {
	dir := cfg.DataDir
	if dir == "" {
		var err error
		if dir, err = store.DefaultDir(); err != nil {
			log.Warn("high score kept in memory", zap.Error(err))
			return store.NewMemoryStore(0)
		}
	}
	return store.NewFileStore(dir)
}

func main() {
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
	defer closeLog()

	host := &windowHost{
		game: game.New(float64(cfg.Width), float64(cfg.Height),
			game.WithLogger(logger),
			game.WithStore(openStore(cfg, logger)),
			game.WithSeed(cfg.SeedValue()),
		),
		sound:  audio.NewSoundManager(parameter.AudioMasterVolume),
		log:    logger,
		width:  cfg.Width,
		height: cfg.Height,
	}

	if cfg.Audio {
		if err := host.sound.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
		} else {
			defer host.sound.Cleanup()
		}
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Gravity Eater")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.FPS)

	if err := ebiten.RunGame(host); err != nil && !errors.Is(err, errQuit) {
		logger.Error("window host failed", zap.Error(err))
		closeLog()
		fmt.Fprintf(os.Stderr, "Failed to run: %v\n", err)
		os.Exit(1)
	}
}
