package viz

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/folio/internal/clock"
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/frame"
	"github.com/san-kum/folio/internal/page"
	"github.com/san-kum/folio/internal/scene"
	"github.com/san-kum/folio/internal/typewriter"
)

const (
	width  = 80
	height = 24

	refreshRate     = 60
	historyCapacity = 120
	panelMin        = 34
	panelMax        = 64
	graphRows       = 7
	chromeRows      = 2

	gifPath = "folio.gif"
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/refreshRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Options configure the live model.
type Options struct {
	Config *config.Config
	Seed   int64
	Logger *log.Logger
	// DownloadDir receives the resume copy.
	DownloadDir string
}

// Model is the live terminal portfolio: the animated backdrop on the left,
// the scrolling page on the right.
type Model struct {
	cfg    *config.Config
	logger *log.Logger
	seed   int64
	dir    string

	width, height int
	panelW, rows  int

	canvas *Canvas
	scene  *scene.Scene
	sched  *frame.Scheduler

	timer  *clock.Manual
	writer *typewriter.Typewriter
	typed  string

	view   *PageView
	vp     *page.Viewport
	reveal *page.Reveal
	nav    *page.Navigator

	theme  Theme
	styles Styles

	start, lastTick time.Time
	lastFrame       time.Duration
	frameTimes      []float64

	running   bool
	showHelp  bool
	recorder  *Recorder
	status    string
	sceneErr  error
	pageReady bool
}

func NewModel(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	dir := opts.DownloadDir
	if dir == "" {
		dir = "."
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Model{
		cfg:     cfg,
		logger:  logger,
		seed:    opts.Seed,
		dir:     dir,
		timer:   clock.NewManual(),
		theme:   GetTheme(cfg.Theme),
		running: true,
	}
	m.styles = m.theme.Styles()
	m.canvas = NewCanvas(width, height)
	m.view = NewPageView(cfg.Page, cfg.Typewriter.Paragraphs)
	m.vp = &page.Viewport{}
	m.reveal = page.NewReveal(m.view.Page, m.vp, m.timer, logger)
	m.nav = page.NewNavigator(m.view.Page, m.vp, refreshRate)
	m.sched = frame.NewScheduler(cfg.FPS, frame.RendererFunc(m.renderFrame))

	if err := m.layout(width, height); err != nil {
		return nil, err
	}

	tw := cfg.Typewriter
	m.writer = typewriter.New(tw.Paragraphs, tw.TypingSpeed, tw.ParagraphDelay)
	m.writer.Run(m.timer, tw.StartDelay, func(text string) { m.typed = text })
	return m, nil
}

func (m *Model) renderFrame() {
	m.scene.RenderFrame(m.canvas)
}

// layout splits a w×h terminal between canvas and page panel and resizes
// everything that depends on it.
func (m *Model) layout(w, h int) error {
	m.width, m.height = w, h
	m.panelW = min(max(w*2/5, panelMin), panelMax)
	cols := max(w-m.panelW-1, 1)
	m.rows = max(h-chromeRows, 1)

	m.canvas.Resize(cols, m.rows)
	cw, ch := m.canvas.Size()
	if m.scene == nil {
		sc, err := scene.New(m.cfg, rand.New(rand.NewSource(m.seed)), cw, ch)
		if err != nil {
			return err
		}
		m.scene = sc
	} else if err := m.scene.Resize(cw, ch); err != nil {
		return err
	}

	compact := m.cfg.Classify(float64(w*CellW)) == config.Compact
	pageRows := m.pageRows()
	m.reveal.Resize(float64(w*CellW), float64(pageRows*CellH), compact)
	m.view.Layout(m.panelW-4, pageRows)
	if !m.pageReady {
		m.reveal.Load(compact)
		m.pageReady = true
	} else {
		m.reveal.Scroll()
	}
	m.logger.Debug("layout", "cols", cols, "rows", m.rows, "class", m.scene.Class(), "particles", m.scene.Field().Len())
	return nil
}

func (m *Model) pageRows() int {
	if m.rows >= 2*graphRows {
		return m.rows - graphRows - 1
	}
	return m.rows
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if err := m.layout(msg.Width, msg.Height); err != nil {
			m.sceneErr = err
			m.logger.Error("resize", "err", err)
			return m, tea.Quit
		}
	case tea.KeyMsg:
		return m, m.key(msg.String())
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scroll(-3 * CellH)
		case tea.MouseButtonWheelDown:
			m.scroll(3 * CellH)
		}
	case TickMsg:
		m.advance(time.Time(msg))
		return m, tick()
	}
	return m, nil
}

func (m *Model) key(k string) tea.Cmd {
	switch k {
	case "q", "ctrl+c":
		return tea.Quit
	case " ":
		m.running = !m.running
	case "up", "k":
		m.scroll(-CellH)
	case "down", "j":
		m.scroll(CellH)
	case "pgup":
		m.scroll(-m.vp.Height * 0.9)
	case "pgdown":
		m.scroll(m.vp.Height * 0.9)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.nav.Click(int(k[0] - '1'))
	case "e":
		m.nav.Explore()
	case "d":
		m.download()
	case "g":
		m.toggleRecording()
	case "t":
		m.theme = m.theme.Next()
		m.styles = m.theme.Styles()
		m.status = "theme " + m.theme.Name
	case "r":
		m.reseed()
	case "?":
		m.showHelp = !m.showHelp
	}
	return nil
}

func (m *Model) scroll(dy float64) {
	m.nav.ScrollBy(dy)
	m.reveal.Scroll()
}

// advance moves the manual clock to now, runs a throttled frame and steps
// any smooth scroll.
func (m *Model) advance(now time.Time) {
	if m.start.IsZero() {
		m.start, m.lastTick = now, now
	}
	if d := now.Sub(m.lastTick); d > 0 {
		m.timer.Advance(d)
	}
	m.lastTick = now

	if m.running {
		ts := now.Sub(m.start)
		if m.sched.Frame(ts) {
			if m.sched.Frames() > 1 {
				m.frameTimes = append(m.frameTimes, float64(ts-m.lastFrame)/float64(time.Millisecond))
				if len(m.frameTimes) > historyCapacity {
					m.frameTimes = m.frameTimes[1:]
				}
			}
			m.lastFrame = ts
			if m.recorder != nil {
				m.recorder.Capture(m.canvas)
			}
		}
	}
	if m.nav.Step() {
		m.reveal.Scroll()
	}
}

func (m *Model) download() {
	link := m.view.Resume()
	if link == nil {
		m.status = "no resume link"
		return
	}
	if path, ok := page.Download(link, m.dir); ok {
		m.status = "saved " + path
		m.logger.Info("resume downloaded", "path", path)
		return
	}
	m.status = "resume: " + link.Href
	m.logger.Warn("resume download failed, showing link", "href", link.Href)
}

func (m *Model) toggleRecording() {
	if m.recorder == nil {
		m.recorder = NewRecorder(m.cfg.FPS)
		m.status = "recording"
		return
	}
	rec := m.recorder
	m.recorder = nil
	if err := rec.Save(gifPath); err != nil {
		m.status = "gif: " + err.Error()
		m.logger.Warn("gif not saved", "err", err)
		return
	}
	m.status = fmt.Sprintf("saved %s (%d frames)", gifPath, rec.Len())
	m.logger.Info("gif saved", "path", gifPath, "frames", rec.Len())
}

func (m *Model) reseed() {
	m.seed = time.Now().UnixNano()
	cw, ch := m.canvas.Size()
	sc, err := scene.New(m.cfg, rand.New(rand.NewSource(m.seed)), cw, ch)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.scene = sc
	m.canvas.Clear()
	m.status = fmt.Sprintf("seed %d", m.seed)
	m.logger.Debug("reseeded", "seed", m.seed)
}

// Err reports the error that ended the program, if any.
func (m *Model) Err() error { return m.sceneErr }

func (m *Model) View() string {
	st := m.styles
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		st.Title.Render(m.cfg.Page.Title)+"  ",
		m.view.NavBar(st),
	)

	var panel string
	if m.showHelp {
		panel = m.help()
	} else {
		panel = m.panel()
	}
	panel = st.Panel.Width(m.panelW).Height(m.rows).MaxHeight(m.rows).Render(panel)
	main := lipgloss.JoinHorizontal(lipgloss.Top, m.canvas.Render(), panel)

	return lipgloss.JoinVertical(lipgloss.Left, header, main, m.statusLine())
}

func (m *Model) panel() string {
	var s strings.Builder
	first := int(m.vp.ScrollY) / CellH
	s.WriteString(m.view.Render(first, m.pageRows(), m.typed, m.theme, m.styles))
	if m.pageRows() < m.rows && len(m.frameTimes) > 1 {
		s.WriteString("\n" + m.styles.Separator(m.panelW-4) + "\n")
		chart := asciigraph.Plot(m.frameTimes,
			asciigraph.Height(graphRows-2),
			asciigraph.Width(max(m.panelW-14, 10)),
			asciigraph.Caption("frame ms"))
		s.WriteString(m.styles.Graph.Render(chart))
	}
	return s.String()
}

func (m *Model) statusLine() string {
	st := m.styles
	state := st.Running.Render("RUNNING")
	if !m.running {
		state = st.Paused.Render("PAUSED")
	}
	if m.recorder != nil {
		state += " " + st.Recording.Render(fmt.Sprintf("● REC %d", m.recorder.Len()))
	}
	fps := 0.0
	if n := len(m.frameTimes); n > 0 && m.frameTimes[n-1] > 0 {
		fps = 1000 / m.frameTimes[n-1]
	}
	info := fmt.Sprintf(" %s · %d particles · %.0f fps · phase %.2f",
		m.scene.Class(), m.scene.Field().Len(), fps, m.scene.Phase())
	line := state + st.StatusLine.Render(info)
	if m.status != "" {
		line += st.StatusLine.Render(" · " + m.status)
	}
	return line + "  " + st.KeyHint.Render("? help")
}

func (m *Model) help() string {
	keys := [][2]string{
		{"↑/k ↓/j", "scroll"},
		{"PgUp/PgDn", "scroll a page"},
		{"1-5", "jump to section"},
		{"e", "explore projects"},
		{"d", "download resume"},
		{"Space", "pause backdrop"},
		{"r", "reseed particles"},
		{"t", "cycle theme"},
		{"g", "toggle GIF recording"},
		{"?", "close help"},
		{"q", "quit"},
	}
	var s strings.Builder
	s.WriteString(m.styles.Title.Render("KEYBOARD SHORTCUTS") + "\n\n")
	for _, k := range keys {
		s.WriteString(m.styles.Label.Width(12).Render(k[0]) + m.styles.Value.Render(k[1]) + "\n")
	}
	return s.String()
}
