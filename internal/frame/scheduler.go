package frame

import (
	"context"
	"errors"
	"time"
)

var ErrNoRenderer = errors.New("frame: scheduler has no renderer")

type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// Renderer draws one frame.
type Renderer interface {
	RenderFrame()
}

type RendererFunc func()

func (f RendererFunc) RenderFrame() { f() }

// Scheduler turns display refresh callbacks into throttled frames.
type Scheduler struct {
	renderer Renderer
	interval time.Duration
	state    State
	last     time.Duration
	ran      bool
	frames   int
	skipped  int
}

// NewScheduler throttles to fps frames per second; fps <= 0 renders on every
// refresh.
func NewScheduler(fps int, r Renderer) *Scheduler {
	s := &Scheduler{renderer: r}
	s.SetFPS(fps)
	return s
}

func (s *Scheduler) SetFPS(fps int) {
	if fps <= 0 {
		s.interval = 0
		return
	}
	s.interval = time.Second / time.Duration(fps)
}

func (s *Scheduler) Interval() time.Duration { return s.interval }
func (s *Scheduler) State() State            { return s.state }
func (s *Scheduler) Frames() int             { return s.frames }
func (s *Scheduler) Skipped() int            { return s.skipped }

// Start moves the scheduler from idle to running. There is no way back.
func (s *Scheduler) Start() { s.state = Running }

// Frame handles one refresh at timestamp ts and reports whether a frame was
// rendered. Refreshes closer than the target interval to the last rendered
// frame are skipped.
func (s *Scheduler) Frame(ts time.Duration) bool {
	if s.state == Idle {
		s.Start()
	}
	if s.ran && ts-s.last < s.interval {
		s.skipped++
		return false
	}
	s.last = ts
	s.ran = true
	s.frames++
	if s.renderer != nil {
		s.renderer.RenderFrame()
	}
	return true
}

// Source yields display refresh timestamps.
type Source interface {
	Next(ctx context.Context) (time.Duration, error)
}

// Run feeds refreshes from src into Frame until the context ends or the
// source fails.
func (s *Scheduler) Run(ctx context.Context, src Source) error {
	if s.renderer == nil {
		return ErrNoRenderer
	}
	s.Start()
	for {
		ts, err := src.Next(ctx)
		if err != nil {
			return err
		}
		s.Frame(ts)
	}
}

// TickerSource emits refreshes at a fixed display rate.
type TickerSource struct {
	ticker *time.Ticker
	start  time.Time
}

func NewTickerSource(hz int) *TickerSource {
	if hz <= 0 {
		hz = 60
	}
	return &TickerSource{ticker: time.NewTicker(time.Second / time.Duration(hz)), start: time.Now()}
}

func (t *TickerSource) Next(ctx context.Context) (time.Duration, error) {
	select {
	case <-ctx.Done():
		t.ticker.Stop()
		return 0, ctx.Err()
	case now := <-t.ticker.C:
		return now.Sub(t.start), nil
	}
}

func (t *TickerSource) Stop() { t.ticker.Stop() }
