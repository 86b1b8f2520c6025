// Package page models the portfolio page that the reveal and navigation
// controllers act on.
//
// Elements stand in for document nodes: a position, a height and a set of
// presentation classes. Every element reference on a Page is optional; the
// controllers skip whatever is missing.
package page

import (
	"sort"
	"strconv"
	"strings"
)

// Presentation classes toggled by the controllers.
const (
	ClassVisible = "visible"
	ClassActive  = "active"
	ClassShow    = "show"
)

// Card groups revealed on scroll.
const (
	ProjectCards   = "project-card"
	EducationCards = "education-card"
)

type Element struct {
	ID        string
	Top       float64
	Height    float64
	MarginTop float64
	classes   map[string]struct{}
}

func NewElement(id string, top, height float64) *Element {
	return &Element{ID: id, Top: top, Height: height}
}

// AddClass is a no-op on a nil element, as are the other class methods.
func (e *Element) AddClass(c string) {
	if e == nil {
		return
	}
	if e.classes == nil {
		e.classes = make(map[string]struct{})
	}
	e.classes[c] = struct{}{}
}

func (e *Element) RemoveClass(c string) {
	if e == nil {
		return
	}
	delete(e.classes, c)
}

func (e *Element) HasClass(c string) bool {
	if e == nil {
		return false
	}
	_, ok := e.classes[c]
	return ok
}

func (e *Element) Classes() []string {
	if e == nil {
		return nil
	}
	out := make([]string, 0, len(e.classes))
	for c := range e.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func (e *Element) Bottom() float64 { return e.Top + e.Height }

// Viewport is the visible window onto the page. ScrollY is the page offset of
// the viewport's top edge.
type Viewport struct {
	Width   float64
	Height  float64
	ScrollY float64
}

// RelTop is the element's top relative to the viewport.
func (v *Viewport) RelTop(e *Element) float64 { return e.Top - v.ScrollY }

// Link is a navigation control pointing at Href.
type Link struct {
	*Element
	Href     string
	Filename string
}

type Page struct {
	Sections       []*Element
	NavButtons     []*Link
	Cards          map[string][]*Element
	AboutPhoto     *Element
	HighlightBoxes []*Element
	Intro          *Element
	Explore        *Element
	ResumeLinks    []*Link
}

func New() *Page {
	return &Page{Cards: make(map[string][]*Element)}
}

// AddSection appends a section and a nav button pointing at it.
func (p *Page) AddSection(id string, top, height float64) *Element {
	sec := NewElement(id, top, height)
	p.Sections = append(p.Sections, sec)
	p.NavButtons = append(p.NavButtons, &Link{Element: NewElement("nav-"+id, 0, 1), Href: "#" + id})
	return sec
}

func (p *Page) AddCard(group string, top, height float64) *Element {
	if p.Cards == nil {
		p.Cards = make(map[string][]*Element)
	}
	card := NewElement(group+"-"+strconv.Itoa(len(p.Cards[group])), top, height)
	p.Cards[group] = append(p.Cards[group], card)
	return card
}

// Section finds a section by id, with or without a leading '#'.
func (p *Page) Section(id string) *Element {
	id = strings.TrimPrefix(id, "#")
	for _, s := range p.Sections {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Height is the bottom of the lowest section.
func (p *Page) Height() float64 {
	h := 0.0
	for _, s := range p.Sections {
		if b := s.Bottom(); b > h {
			h = b
		}
	}
	return h
}

// ActiveNav returns the index of the active nav button, or -1.
func (p *Page) ActiveNav() int {
	for i, b := range p.NavButtons {
		if b != nil && b.HasClass(ClassActive) {
			return i
		}
	}
	return -1
}
