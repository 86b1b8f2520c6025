package page_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/folio/internal/clock"
	"github.com/san-kum/folio/internal/page"
)

// samplePage lays out five 1000px sections.
func samplePage() *page.Page {
	p := page.New()
	for i, id := range []string{"home", "about", "projects", "education", "contact"} {
		p.AddSection(id, float64(i)*1000, 1000)
	}
	p.Intro = page.NewElement("introParagraphs", 100, 200)
	p.Explore = page.NewElement("exploreBtn", 320, 40)
	p.AboutPhoto = page.NewElement("about-photo", 1100, 300)
	for i := 0; i < 3; i++ {
		p.HighlightBoxes = append(p.HighlightBoxes, page.NewElement("highlight-box", 1500+float64(i)*100, 80))
	}
	return p
}

var _ = Describe("Reveal", func() {
	var (
		p      *page.Page
		vp     *page.Viewport
		timer  *clock.Manual
		reveal *page.Reveal
	)

	BeforeEach(func() {
		p = samplePage()
		vp = &page.Viewport{Width: 1280, Height: 800}
		timer = clock.NewManual()
		reveal = page.NewReveal(p, vp, timer, nil)
	})

	Describe("OnScroll", func() {
		It("activates the section under the viewport midline", func() {
			vp.ScrollY = 1700 // midline at 2100
			reveal.OnScroll()

			Expect(p.Section("projects").HasClass(page.ClassVisible)).To(BeTrue())
			Expect(p.Section("about").HasClass(page.ClassVisible)).To(BeFalse())
			Expect(p.ActiveNav()).To(Equal(2))
		})

		It("keeps exactly one nav button active while scrolling", func() {
			for y := 0.0; y < 4500; y += 137 {
				vp.ScrollY = y
				reveal.OnScroll()

				active := 0
				for _, b := range p.NavButtons {
					if b.HasClass(page.ClassActive) {
						active++
					}
				}
				Expect(active).To(Equal(1), "scroll %v", y)
			}
		})

		It("tolerates missing nav buttons", func() {
			p.NavButtons = p.NavButtons[:2]
			vp.ScrollY = 3600
			Expect(reveal.OnScroll).NotTo(Panic())
			Expect(p.ActiveNav()).To(Equal(-1))
			Expect(p.Section("contact").HasClass(page.ClassVisible)).To(BeTrue())
		})
	})

	Describe("ShowOnScroll", func() {
		It("shows cards above the trigger line and not below", func() {
			// trigger line at 0.85 * 800 = 680
			above := p.AddCard(page.ProjectCards, 670, 100)
			below := p.AddCard(page.ProjectCards, 700, 100)

			reveal.ShowOnScroll(page.ProjectCards, page.ClassShow, 0)

			Expect(above.HasClass(page.ClassShow)).To(BeTrue())
			Expect(below.HasClass(page.ClassShow)).To(BeFalse())
		})

		It("uses the top relative to the viewport", func() {
			card := p.AddCard(page.EducationCards, 3000, 100)
			reveal.Scroll()
			Expect(card.HasClass(page.ClassShow)).To(BeFalse())

			vp.ScrollY = 2500
			reveal.Scroll()
			Expect(card.HasClass(page.ClassShow)).To(BeTrue())
		})

		It("staggers reveals by index", func() {
			first := p.AddCard(page.ProjectCards, 10, 50)
			second := p.AddCard(page.ProjectCards, 20, 50)

			reveal.ShowOnScroll(page.ProjectCards, page.ClassShow, 100*time.Millisecond)
			Expect(first.HasClass(page.ClassShow)).To(BeTrue())
			Expect(second.HasClass(page.ClassShow)).To(BeFalse())

			timer.Advance(100 * time.Millisecond)
			Expect(second.HasClass(page.ClassShow)).To(BeTrue())
		})

		It("ignores unknown groups", func() {
			Expect(func() { reveal.ShowOnScroll("missing", page.ClassShow, 0) }).NotTo(Panic())
		})
	})

	Describe("ShowAbout", func() {
		It("waits until the about section crosses its trigger", func() {
			vp.ScrollY = 300 // about top at 700 > 0.82*800
			reveal.ShowAbout()
			Expect(p.AboutPhoto.HasClass(page.ClassVisible)).To(BeFalse())

			vp.ScrollY = 400 // about top at 600
			reveal.ShowAbout()
			Expect(p.AboutPhoto.HasClass(page.ClassVisible)).To(BeTrue())
			Expect(p.HighlightBoxes[0].HasClass(page.ClassVisible)).To(BeTrue())
			Expect(p.HighlightBoxes[1].HasClass(page.ClassVisible)).To(BeFalse())

			timer.Advance(page.AboutStagger)
			Expect(p.HighlightBoxes[1].HasClass(page.ClassVisible)).To(BeTrue())
			Expect(p.HighlightBoxes[2].HasClass(page.ClassVisible)).To(BeFalse())

			timer.Advance(page.AboutStagger)
			Expect(p.HighlightBoxes[2].HasClass(page.ClassVisible)).To(BeTrue())
		})

		It("does nothing without an about section or photo", func() {
			p.AboutPhoto = nil
			vp.ScrollY = 1000
			Expect(reveal.ShowAbout).NotTo(Panic())

			p.Sections = p.Sections[:1]
			Expect(reveal.ShowAbout).NotTo(Panic())
		})
	})

	Describe("AdjustHome", func() {
		It("offsets the intro by a fraction of the viewport height", func() {
			page.AdjustHome(p, vp, false)
			Expect(p.Intro.MarginTop).To(BeNumerically("==", 200))
			Expect(p.Explore.MarginTop).To(BeNumerically("==", 20))

			page.AdjustHome(p, vp, true)
			Expect(p.Intro.MarginTop).To(BeNumerically("~", 120, 1e-9))
		})

		It("skips when the explore button is missing", func() {
			p.Explore = nil
			page.AdjustHome(p, vp, false)
			Expect(p.Intro.MarginTop).To(BeZero())
		})

		It("runs on load and resize", func() {
			reveal.Load(false)
			Expect(p.Intro.MarginTop).To(BeNumerically("==", 200))
			Expect(p.ActiveNav()).To(Equal(0))

			reveal.Resize(600, 1000, true)
			Expect(p.Intro.MarginTop).To(BeNumerically("~", 150, 1e-9))
		})
	})
})
