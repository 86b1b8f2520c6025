package typewriter_test

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/folio/internal/clock"
	"github.com/san-kum/folio/internal/typewriter"
)

const (
	typing = 25 * time.Millisecond
	pause  = 400 * time.Millisecond
)

func drain(tw *typewriter.Typewriter) []typewriter.Step {
	var steps []typewriter.Step
	for {
		st := tw.Step()
		if st.Done {
			return steps
		}
		steps = append(steps, st)
	}
}

func emitted(steps []typewriter.Step) []string {
	out := make([]string, len(steps))
	for i, st := range steps {
		out[i] = st.Emitted
	}
	return out
}

var _ = Describe("Typewriter", func() {
	Describe("Step", func() {
		It("emits embedded tags atomically", func() {
			tw := typewriter.New([]string{"a<b>c"}, typing, pause)
			steps := drain(tw)

			Expect(emitted(steps)).To(Equal([]string{"a", "<b>", "c", typewriter.ParagraphBreak}))
			for _, st := range steps {
				Expect(st.Emitted).NotTo(Equal("<b"))
			}
		})

		It("never leaves a partial tag in the output", func() {
			tw := typewriter.New([]string{"Hi, <span class='highlight-name'>Ann</span>!"}, typing, pause)
			for {
				st := tw.Step()
				if st.Done {
					break
				}
				text := tw.Text()
				Expect(countByte(text, '<')).To(Equal(countByte(text, '>')))
			}
		})

		It("uses the paragraph delay after each paragraph", func() {
			tw := typewriter.New([]string{"ab", "c"}, typing, pause)
			steps := drain(tw)

			Expect(steps).To(HaveLen(5))
			Expect(steps[0].Delay).To(Equal(typing))
			Expect(steps[2].Break).To(BeTrue())
			Expect(steps[2].Delay).To(Equal(pause))
			Expect(steps[4].Break).To(BeTrue())
			Expect(tw.Text()).To(Equal("ab<br><br>c<br><br>"))
		})

		It("stays done once all paragraphs are exhausted", func() {
			tw := typewriter.New([]string{"x"}, typing, pause)
			drain(tw)
			Expect(tw.Done()).To(BeTrue())

			text := tw.Text()
			Expect(tw.Step().Done).To(BeTrue())
			Expect(tw.Text()).To(Equal(text))
		})

		It("emits the rest of the paragraph for an unterminated tag", func() {
			tw := typewriter.New([]string{"x<oops"}, typing, pause)
			Expect(emitted(drain(tw))).To(Equal([]string{"x", "<oops", typewriter.ParagraphBreak}))
		})

		It("steps over multi-byte characters whole", func() {
			tw := typewriter.New([]string{"é!"}, typing, pause)
			Expect(emitted(drain(tw))[:2]).To(Equal([]string{"é", "!"}))
		})
	})

	Describe("Run", func() {
		var timer *clock.Manual

		BeforeEach(func() {
			timer = clock.NewManual()
		})

		It("waits for the start delay and then types on the timer", func() {
			tw := typewriter.New([]string{"ab"}, typing, pause)
			var updates []string
			tw.Run(timer, 500*time.Millisecond, func(text string) { updates = append(updates, text) })

			timer.Advance(499 * time.Millisecond)
			Expect(updates).To(BeEmpty())

			timer.Advance(time.Millisecond)
			Expect(updates).To(Equal([]string{"a"}))

			timer.Advance(typing)
			Expect(updates).To(Equal([]string{"a", "ab"}))
		})

		It("stops scheduling once done", func() {
			tw := typewriter.New([]string{"ab", "cd"}, typing, pause)
			var last string
			tw.Run(timer, 0, func(text string) { last = text })

			elapsed := timer.Drain()
			Expect(last).To(Equal("ab<br><br>cd<br><br>"))
			Expect(timer.Pending()).To(BeZero())
			Expect(elapsed).To(Equal(4*typing + 2*pause))
		})

		It("does nothing without a target", func() {
			tw := typewriter.New([]string{"ab"}, typing, pause)
			tw.Run(timer, 0, nil)
			Expect(timer.Pending()).To(BeZero())
		})

		It("is done before typing when there are no paragraphs", func() {
			tw := typewriter.New(nil, typing, pause)
			Expect(tw.Done()).To(BeTrue())

			called := false
			tw.Run(timer, 500*time.Millisecond, func(string) { called = true })
			Expect(timer.Pending()).To(BeZero())
			timer.Drain()
			Expect(called).To(BeFalse())
		})
	})

	Describe("Render", func() {
		It("turns breaks into newlines and drops tags", func() {
			Expect(typewriter.Plain("Hi <span class='x'>Ann</span><br><br>Bye")).To(Equal("Hi Ann\n\nBye"))
		})

		It("keeps text when classes have no style", func() {
			out := typewriter.Render("a<span class='highlight-name'>b</span>c", typewriter.Styles{
				Text:    lipgloss.NewStyle(),
				Classes: map[string]lipgloss.Style{},
			})
			Expect(out).To(Equal("abc"))
		})
	})
})

func countByte(s string, c byte) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			n++
		}
	}
	return n
}
