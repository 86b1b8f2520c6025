package page_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/folio/internal/page"
)

var _ = Describe("Navigator", func() {
	var (
		p   *page.Page
		vp  *page.Viewport
		nav *page.Navigator
	)

	BeforeEach(func() {
		p = samplePage()
		vp = &page.Viewport{Width: 1280, Height: 800}
		nav = page.NewNavigator(p, vp, 60)
	})

	settle := func() int {
		frames := 0
		for nav.Step() {
			frames++
			Expect(frames).To(BeNumerically("<", 1000), "scroll never settled")
		}
		return frames
	}

	It("scrolls smoothly to a nav target", func() {
		Expect(nav.Click(2)).To(BeTrue())
		Expect(nav.Moving()).To(BeTrue())

		nav.Step()
		Expect(vp.ScrollY).To(BeNumerically(">", 0))
		Expect(vp.ScrollY).To(BeNumerically("<", 2000))

		frames := settle()
		Expect(frames).To(BeNumerically(">", 1))
		Expect(vp.ScrollY).To(BeNumerically("==", 2000))
	})

	It("clamps the target to the scrollable range", func() {
		vp.Height = 1200
		Expect(nav.ScrollTo("contact")).To(BeTrue())
		Expect(nav.Target()).To(BeNumerically("==", 5000-1200))
		settle()
		Expect(vp.ScrollY).To(BeNumerically("==", 3800))
	})

	It("explores to the projects section", func() {
		Expect(nav.Explore()).To(BeTrue())
		Expect(nav.Target()).To(BeNumerically("==", 2000))
	})

	It("ignores missing targets", func() {
		Expect(nav.ScrollTo("#nowhere")).To(BeFalse())
		Expect(nav.Click(9)).To(BeFalse())
		Expect(nav.Moving()).To(BeFalse())
		Expect(vp.ScrollY).To(BeZero())
	})

	It("cancels a smooth scroll on manual scrolling", func() {
		nav.ScrollTo("education")
		nav.Step()
		nav.ScrollBy(-100000)
		Expect(nav.Moving()).To(BeFalse())
		Expect(vp.ScrollY).To(BeZero())
	})
})

var _ = Describe("Download", func() {
	It("copies the file under the forced name", func() {
		dir := GinkgoT().TempDir()
		src := filepath.Join(dir, "cv.pdf")
		Expect(os.WriteFile(src, []byte("%PDF"), 0644)).To(Succeed())
		out := filepath.Join(dir, "out")
		Expect(os.Mkdir(out, 0755)).To(Succeed())

		path, ok := page.Download(&page.Link{Href: src, Filename: "Resume.pdf"}, out)
		Expect(ok).To(BeTrue())
		Expect(path).To(Equal(filepath.Join(out, "Resume.pdf")))
		Expect(os.ReadFile(path)).To(Equal([]byte("%PDF")))

		entries, err := os.ReadDir(out)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(1))
	})

	It("falls back silently when anything fails", func() {
		dir := GinkgoT().TempDir()
		_, ok := page.Download(&page.Link{Href: filepath.Join(dir, "missing.pdf")}, dir)
		Expect(ok).To(BeFalse())

		_, ok = page.Download(nil, dir)
		Expect(ok).To(BeFalse())

		src := filepath.Join(dir, "cv.pdf")
		Expect(os.WriteFile(src, []byte("x"), 0644)).To(Succeed())
		_, ok = page.Download(&page.Link{Href: src}, filepath.Join(dir, "no", "such", "dir"))
		Expect(ok).To(BeFalse())
	})
})
