package page

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

const (
	springFrequency = 6.0
	springDamping   = 1.0
	settleDistance  = 0.5
)

// Navigator scrolls the viewport smoothly to page sections.
type Navigator struct {
	page   *Page
	vp     *Viewport
	spring harmonica.Spring
	vel    float64
	target float64
	moving bool
}

// NewNavigator steps a critically damped spring once per frame at fps.
func NewNavigator(p *Page, vp *Viewport, fps int) *Navigator {
	return &Navigator{
		page:   p,
		vp:     vp,
		spring: harmonica.NewSpring(harmonica.FPS(fps), springFrequency, springDamping),
	}
}

func (n *Navigator) maxScroll() float64 {
	return math.Max(0, n.page.Height()-n.vp.Height)
}

func (n *Navigator) clamp(y float64) float64 {
	return math.Max(0, math.Min(y, n.maxScroll()))
}

// ScrollTo starts a smooth scroll to the element with the given id. It reports
// false, and leaves the viewport alone, when no such section exists.
func (n *Navigator) ScrollTo(id string) bool {
	target := n.page.Section(id)
	if target == nil {
		return false
	}
	n.target = n.clamp(target.Top)
	n.moving = true
	return true
}

// Click follows the href of nav button i.
func (n *Navigator) Click(i int) bool {
	if i < 0 || i >= len(n.page.NavButtons) || n.page.NavButtons[i] == nil {
		return false
	}
	return n.ScrollTo(n.page.NavButtons[i].Href)
}

// Explore scrolls to the projects section.
func (n *Navigator) Explore() bool { return n.ScrollTo("#projects") }

// ScrollBy moves the viewport directly, cancelling any smooth scroll.
func (n *Navigator) ScrollBy(dy float64) {
	n.moving = false
	n.vel = 0
	n.vp.ScrollY = n.clamp(n.vp.ScrollY + dy)
}

func (n *Navigator) Moving() bool    { return n.moving }
func (n *Navigator) Target() float64 { return n.target }

// Step advances a smooth scroll by one frame and reports whether the viewport
// moved.
func (n *Navigator) Step() bool {
	if !n.moving {
		return false
	}
	pos, vel := n.spring.Update(n.vp.ScrollY, n.vel, n.target)
	n.vp.ScrollY, n.vel = pos, vel
	if math.Abs(n.target-pos) < settleDistance && math.Abs(vel) < settleDistance {
		n.vp.ScrollY = n.target
		n.vel = 0
		n.moving = false
	}
	return true
}
