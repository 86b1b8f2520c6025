package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/folio/internal/config"
	"github.com/san-kum/folio/internal/page"
	"github.com/san-kum/folio/internal/typewriter"
)

type rowKind int

const (
	rowBlank rowKind = iota
	rowHeading
	rowText
	rowIntro
	rowExplore
	rowPhoto
	rowHighlight
	rowCardTitle
	rowCardBody
	rowResume
)

type row struct {
	kind    rowKind
	text    string
	section *page.Element
	el      *page.Element
	line    int
}

// PageView lays the configured page out in terminal rows, one row per CellH
// page pixels, and renders the rows under the viewport.
type PageView struct {
	cfg        config.PageConfig
	paragraphs []string
	Page       *page.Page

	cards      [][]*page.Element
	highlights []*page.Element
	resume     *page.Link
	resumeAt   int

	rows      []row
	width     int
	introRows int
}

// NewPageView creates one page element per configured section, card,
// highlight and resume link. Elements persist across layouts so their
// classes survive a resize.
func NewPageView(cfg config.PageConfig, paragraphs []string) *PageView {
	pv := &PageView{cfg: cfg, paragraphs: paragraphs, Page: page.New(), resumeAt: -1}
	p := pv.Page
	for i, sc := range cfg.Sections {
		p.AddSection(sc.ID, 0, 0)
		var cards []*page.Element
		for range sc.Cards {
			cards = append(cards, p.AddCard(sc.CardGroup, 0, 0))
		}
		pv.cards = append(pv.cards, cards)

		switch sc.ID {
		case "home":
			p.Intro = page.NewElement("introParagraphs", 0, 0)
			p.Explore = page.NewElement("exploreBtn", 0, 0)
		case "about":
			p.AboutPhoto = page.NewElement("about-photo", 0, 0)
			for range sc.Highlights {
				p.HighlightBoxes = append(p.HighlightBoxes, page.NewElement("highlight-box", 0, 0))
			}
		case "contact":
			pv.resumeAt = i
		}
	}
	if cfg.Resume.Href != "" {
		if pv.resumeAt < 0 {
			pv.resumeAt = len(cfg.Sections) - 1
		}
		pv.resume = &page.Link{
			Element:  page.NewElement("resume", 0, 0),
			Href:     cfg.Resume.Href,
			Filename: cfg.Resume.Filename,
		}
		p.ResumeLinks = append(p.ResumeLinks, pv.resume)
	}
	return pv
}

// Resume returns the first resume link, or nil.
func (pv *PageView) Resume() *page.Link { return pv.resume }

// Title returns the label of nav button i.
func (pv *PageView) Title(i int) string {
	if i < 0 || i >= len(pv.cfg.Sections) {
		return ""
	}
	return pv.cfg.Sections[i].Title
}

// Rows is the laid out page height in rows.
func (pv *PageView) Rows() int { return len(pv.rows) }

func wrap(s string, width int) []string {
	if width < 1 {
		width = 1
	}
	lines := strings.Split(lipgloss.NewStyle().Width(width).Render(s), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return lines
}

func pxRows(px float64) int { return int(math.Round(px / CellH)) }

func (pv *PageView) add(r row) { pv.rows = append(pv.rows, r) }

func (pv *PageView) place(el *page.Element, start int) {
	if el == nil {
		return
	}
	el.Top = float64(start * CellH)
	el.Height = float64((len(pv.rows) - start) * CellH)
}

// Layout positions every element for a panel width columns wide. The home
// section fills at least one viewport of vpRows rows.
func (pv *PageView) Layout(width, vpRows int) {
	pv.width = max(width, 8)
	pv.rows = pv.rows[:0]
	p := pv.Page

	full := strings.Join(pv.paragraphs, typewriter.ParagraphBreak)
	pv.introRows = len(wrap(typewriter.Plain(full), pv.width))

	for i, sc := range pv.cfg.Sections {
		sec := p.Sections[i]
		start := len(pv.rows)
		pv.add(row{kind: rowHeading, text: strings.ToUpper(sc.Title), section: sec})
		pv.add(row{})

		if sc.ID == "home" {
			for n := pxRows(p.Intro.MarginTop); n > 0; n-- {
				pv.add(row{section: sec})
			}
			at := len(pv.rows)
			for k := 0; k < pv.introRows; k++ {
				pv.add(row{kind: rowIntro, section: sec, line: k})
			}
			pv.place(p.Intro, at)
			for n := pxRows(p.Explore.MarginTop); n > 0; n-- {
				pv.add(row{section: sec})
			}
			at = len(pv.rows)
			pv.add(row{kind: rowExplore, text: "[ Explore my work ▸ ]", section: sec, el: p.Explore})
			pv.place(p.Explore, at)
		}

		for _, body := range sc.Body {
			for _, l := range wrap(body, pv.width) {
				pv.add(row{kind: rowText, text: l, section: sec})
			}
			pv.add(row{section: sec})
		}

		if sc.ID == "about" {
			at := len(pv.rows)
			pv.add(row{kind: rowPhoto, text: "◉ ─── profile ─── ◉", section: sec, el: p.AboutPhoto})
			pv.add(row{section: sec})
			pv.place(p.AboutPhoto, at)
			for j, h := range sc.Highlights {
				box := p.HighlightBoxes[j]
				at := len(pv.rows)
				pv.add(row{kind: rowHighlight, text: "◆ " + h, section: sec, el: box})
				pv.place(box, at)
			}
			if len(sc.Highlights) > 0 {
				pv.add(row{section: sec})
			}
		}

		for j, card := range sc.Cards {
			el := pv.cards[i][j]
			at := len(pv.rows)
			pv.add(row{kind: rowCardTitle, text: card.Title, section: sec, el: el})
			for _, l := range wrap(card.Body, pv.width-2) {
				pv.add(row{kind: rowCardBody, text: l, section: sec, el: el})
			}
			pv.place(el, at)
			pv.add(row{section: sec})
		}

		if i == pv.resumeAt && pv.resume != nil {
			at := len(pv.rows)
			pv.add(row{kind: rowResume, text: "⤓ " + pv.resume.Filename, section: sec, el: pv.resume.Element})
			pv.place(pv.resume.Element, at)
		}

		if sc.ID == "home" {
			for len(pv.rows)-start < vpRows {
				pv.add(row{section: sec})
			}
		}
		pv.add(row{section: sec})
		pv.place(sec, start)
	}
}

// Render returns n rows starting at row first. typed is the typewriter
// markup accumulated so far.
func (pv *PageView) Render(first, n int, typed string, th Theme, st Styles) string {
	var intro []string
	if typed != "" {
		intro = wrap(typewriter.Render(typed, th.Typewriter()), pv.width)
	}
	out := make([]string, 0, n)
	for i := first; i < first+n; i++ {
		if i < 0 || i >= len(pv.rows) {
			out = append(out, "")
			continue
		}
		out = append(out, pv.renderRow(pv.rows[i], intro, st))
	}
	return strings.Join(out, "\n")
}

func (pv *PageView) renderRow(r row, intro []string, st Styles) string {
	visible := r.section.HasClass(page.ClassVisible)
	text := st.Body
	if !visible {
		text = st.Hidden
	}
	switch r.kind {
	case rowHeading:
		if visible {
			return st.Heading.Render(r.text)
		}
		return st.Hidden.Render(r.text)
	case rowText:
		return text.Render(r.text)
	case rowIntro:
		if r.line < len(intro) {
			return intro[r.line]
		}
		return ""
	case rowExplore:
		return st.Button.Render(r.text)
	case rowPhoto, rowHighlight:
		if !r.el.HasClass(page.ClassVisible) {
			return ""
		}
		return st.Highlight.Render(r.text)
	case rowCardTitle:
		if !r.el.HasClass(page.ClassShow) {
			return ""
		}
		return st.Card.Render(st.CardTitle.Render(r.text))
	case rowCardBody:
		if !r.el.HasClass(page.ClassShow) {
			return ""
		}
		return st.Card.Render(text.Render(r.text))
	case rowResume:
		return st.Link.Render(r.text)
	}
	return ""
}

// NavBar renders one button per section, the active one highlighted.
func (pv *PageView) NavBar(st Styles) string {
	parts := make([]string, 0, len(pv.Page.NavButtons))
	for i, b := range pv.Page.NavButtons {
		label := pv.Title(i)
		if b.HasClass(page.ClassActive) {
			parts = append(parts, st.NavActive.Render(label))
		} else {
			parts = append(parts, st.NavButton.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
