// Package gui shows the backdrop in a raylib window.
package gui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/folio/internal/clock"
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/frame"
	"github.com/san-kum/folio/internal/scene"
	"github.com/san-kum/folio/internal/surface"
	"github.com/san-kum/folio/internal/typewriter"
)

var (
	ColText    = rl.NewColor(230, 240, 255, 255)
	ColTextDim = rl.NewColor(90, 110, 130, 255)
	ColAccent  = rl.NewColor(0, 255, 170, 255)
)

const (
	windowW     = 1280
	windowH     = 720
	displayRate = 60
	introSize   = 20
	introWidth  = 56
)

type App struct {
	cfg    *config.Config
	logger *log.Logger
	seed   int64

	scene *scene.Scene
	sched *frame.Scheduler
	surf  *Surface

	timer  *clock.Manual
	writer *typewriter.Typewriter
	typed  string

	start   time.Time
	running bool
}

// initWindow opens a resizable 1280×720 window refreshing at 60 Hz. The
// scheduler throttles backdrop frames below that.
func initWindow() {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(windowW, windowH, "folio")
	rl.SetTargetFPS(displayRate)
	rl.SetExitKey(0)
}

func glowTexture() rl.Texture2D {
	img := rl.GenImageGradientRadial(32, 32, 0.0, rl.White, rl.NewColor(0, 0, 0, 0))
	defer rl.UnloadImage(img)
	return rl.LoadTextureFromImage(img)
}

func NewApp(cfg *config.Config, seed int64, logger *log.Logger) (*App, error) {
	a := &App{
		cfg:     cfg,
		logger:  logger,
		seed:    seed,
		timer:   clock.NewManual(),
		running: true,
		surf: &Surface{
			Target:     rl.LoadRenderTexture(windowW, windowH),
			Glow:       glowTexture(),
			Background: surface.Black,
		},
	}
	sc, err := scene.New(cfg, rand.New(rand.NewSource(seed)), windowW, windowH)
	if err != nil {
		return nil, err
	}
	a.scene = sc
	a.sched = frame.NewScheduler(cfg.FPS, frame.RendererFunc(a.renderFrame))

	tw := cfg.Typewriter
	a.writer = typewriter.New(tw.Paragraphs, tw.TypingSpeed, tw.ParagraphDelay)
	a.writer.Run(a.timer, tw.StartDelay, func(text string) { a.typed = text })
	return a, nil
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, seed int64, logger *log.Logger) error {
	initWindow()
	defer rl.CloseWindow()

	a, err := NewApp(cfg, seed, logger)
	if err != nil {
		return err
	}
	defer a.unload()
	logger.Info("gui started", "fps", cfg.FPS, "class", a.scene.Class(), "particles", a.scene.Field().Len())
	a.RunLoop()
	logger.Info("gui closed", "frames", a.sched.Frames(), "skipped", a.sched.Skipped())
	return nil
}

func (a *App) unload() {
	rl.UnloadRenderTexture(a.surf.Target)
	rl.UnloadTexture(a.surf.Glow)
}

func (a *App) RunLoop() {
	a.start = time.Now()
	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			return
		}
		a.Update()
		a.Draw()
	}
}

func (a *App) renderFrame() {
	rl.BeginTextureMode(a.surf.Target)
	a.scene.RenderFrame(a.surf)
	rl.EndTextureMode()
}

func (a *App) Update() {
	if rl.IsWindowResized() {
		a.resize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.running = !a.running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.reseed()
	}
	a.timer.Advance(time.Duration(float64(rl.GetFrameTime()) * float64(time.Second)))
	if a.running {
		a.sched.Frame(time.Since(a.start))
	}
}

func (a *App) resize(w, h int32) {
	rl.UnloadRenderTexture(a.surf.Target)
	a.surf.Target = rl.LoadRenderTexture(w, h)
	if err := a.scene.Resize(float64(w), float64(h)); err != nil {
		a.logger.Error("resize", "err", err)
		return
	}
	a.logger.Debug("resized", "w", w, "h", h, "class", a.scene.Class())
}

func (a *App) reseed() {
	a.seed = time.Now().UnixNano()
	w, h := a.surf.Size()
	sc, err := scene.New(a.cfg, rand.New(rand.NewSource(a.seed)), w, h)
	if err != nil {
		a.logger.Error("reseed", "err", err)
		return
	}
	a.scene = sc
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	tex := a.surf.Target.Texture
	// Render textures are stored upside down.
	src := rl.NewRectangle(0, 0, float32(tex.Width), -float32(tex.Height))
	rl.DrawTextureRec(tex, src, rl.Vector2{}, rl.White)

	a.drawIntro()
	a.DrawHUD()
	rl.EndDrawing()
}

func (a *App) drawIntro() {
	text := typewriter.Plain(a.typed)
	y := int32(rl.GetScreenHeight()) / 4
	for _, para := range strings.Split(text, "\n") {
		for _, line := range wrapWords(para, introWidth) {
			rl.DrawText(line, 60, y, introSize, ColText)
			y += introSize + 6
		}
	}
}

func wrapWords(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}

func (a *App) DrawHUD() {
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	rl.DrawText(a.cfg.Page.Title, 30, 24, 24, ColText)

	status, col := "RUNNING", ColAccent
	if !a.running {
		status, col = "PAUSED", ColTextDim
	}
	rl.DrawText(status, w-140, 28, 16, col)

	info := fmt.Sprintf("%d FPS · %s · %d particles · %d frames",
		rl.GetFPS(), a.scene.Class(), a.scene.Field().Len(), a.sched.Frames())
	rl.DrawText(info, 30, h-36, 14, ColTextDim)
	rl.DrawText("[SPACE] PAUSE  [R] RESEED  [Q] QUIT", w-360, h-36, 14, ColTextDim)
}
