package page

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/san-kum/folio/internal/clock"
)

const (
	// CardTrigger and AboutTrigger are fractions of the viewport height; an
	// element whose top is above the line gets revealed.
	CardTrigger  = 0.85
	AboutTrigger = 0.82
	AboutStagger = 150 * time.Millisecond

	exploreMargin = 20.0
	compactOffset = 0.15
	fullOffset    = 0.25
)

// Reveal toggles visibility classes from the scroll position.
type Reveal struct {
	page   *Page
	vp     *Viewport
	timer  clock.Timer
	logger *log.Logger
	// CardDelay staggers card reveals by index.
	CardDelay time.Duration
}

func NewReveal(p *Page, vp *Viewport, timer clock.Timer, logger *log.Logger) *Reveal {
	return &Reveal{page: p, vp: vp, timer: timer, logger: logger}
}

// OnScroll marks the section under the viewport midline visible and its nav
// button active. All other sections lose the visible class.
func (r *Reveal) OnScroll() {
	pos := r.vp.ScrollY + r.vp.Height/2
	for i, sec := range r.page.Sections {
		if sec == nil {
			continue
		}
		if pos >= sec.Top && pos < sec.Bottom() {
			r.setActive(i)
			sec.AddClass(ClassVisible)
		} else {
			sec.RemoveClass(ClassVisible)
		}
	}
}

func (r *Reveal) setActive(i int) {
	for _, b := range r.page.NavButtons {
		if b != nil {
			b.RemoveClass(ClassActive)
		}
	}
	if i < len(r.page.NavButtons) && r.page.NavButtons[i] != nil {
		r.page.NavButtons[i].AddClass(ClassActive)
	}
}

// ShowOnScroll adds class to every element of group whose top is above the
// card trigger line. The i-th element is delayed by i·delay.
func (r *Reveal) ShowOnScroll(group, class string, delay time.Duration) {
	trigger := r.vp.Height * CardTrigger
	for i, el := range r.page.Cards[group] {
		if el == nil || r.vp.RelTop(el) >= trigger {
			continue
		}
		el := el
		r.later(time.Duration(i)*delay, func() { el.AddClass(class) })
	}
}

// ShowAbout reveals the about photo and then the highlight boxes, 150ms apart,
// once the about section crosses its trigger line.
func (r *Reveal) ShowAbout() {
	about := r.page.Section("about")
	if about == nil {
		return
	}
	if r.vp.RelTop(about) >= r.vp.Height*AboutTrigger {
		return
	}
	r.page.AboutPhoto.AddClass(ClassVisible)
	for i, box := range r.page.HighlightBoxes {
		box := box
		r.later(time.Duration(i)*AboutStagger, func() { box.AddClass(ClassVisible) })
	}
}

func (r *Reveal) later(d time.Duration, f func()) {
	if d <= 0 || r.timer == nil {
		f()
		return
	}
	r.timer.AfterFunc(d, f)
}

// Scroll runs every scroll handler.
func (r *Reveal) Scroll() {
	r.OnScroll()
	r.ShowOnScroll(ProjectCards, ClassShow, r.CardDelay)
	r.ShowOnScroll(EducationCards, ClassShow, r.CardDelay)
	r.ShowAbout()
}

// Load runs the page load handlers.
func (r *Reveal) Load(compact bool) {
	r.Scroll()
	AdjustHome(r.page, r.vp, compact)
	if r.logger != nil {
		r.logger.Debug("page loaded", "sections", len(r.page.Sections), "active", r.page.ActiveNav())
	}
}

// Resize applies a new viewport size and re-runs the layout handler.
func (r *Reveal) Resize(w, h float64, compact bool) {
	r.vp.Width, r.vp.Height = w, h
	AdjustHome(r.page, r.vp, compact)
}

// AdjustHome pushes the intro text down by a fraction of the viewport height
// and gives the explore button a fixed margin. It needs the home section, the
// intro and the explore button; without any of them it does nothing.
func AdjustHome(p *Page, vp *Viewport, compact bool) {
	if p.Section("home") == nil || p.Intro == nil || p.Explore == nil {
		return
	}
	offset := vp.Height * fullOffset
	if compact {
		offset = vp.Height * compactOffset
	}
	p.Intro.MarginTop = offset
	p.Explore.MarginTop = exploreMargin
}
