// Package typewriter reveals a list of marked-up paragraphs one character at
// a time. Embedded tags are emitted whole so the partial output is always
// valid markup.
package typewriter

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/san-kum/folio/internal/clock"
)

// ParagraphBreak is appended after each finished paragraph.
const ParagraphBreak = "<br><br>"

// Step is the outcome of one Typewriter.Step call.
type Step struct {
	Emitted string
	Delay   time.Duration
	// Break marks the step that closed a paragraph.
	Break bool
	Done  bool
}

type Typewriter struct {
	paragraphs     []string
	p, c           int
	buf            strings.Builder
	typingSpeed    time.Duration
	paragraphDelay time.Duration
}

func New(paragraphs []string, typingSpeed, paragraphDelay time.Duration) *Typewriter {
	return &Typewriter{
		paragraphs:     paragraphs,
		typingSpeed:    typingSpeed,
		paragraphDelay: paragraphDelay,
	}
}

// Step emits the next unit of text: a whole tag when the next character opens
// one, otherwise a single character. At the end of a paragraph it emits the
// paragraph break and asks for the longer pause. Once every paragraph is out
// it reports Done and changes nothing.
func (t *Typewriter) Step() Step {
	if t.p >= len(t.paragraphs) {
		return Step{Done: true}
	}
	cur := t.paragraphs[t.p]
	if t.c >= len(cur) {
		t.buf.WriteString(ParagraphBreak)
		t.p++
		t.c = 0
		return Step{Emitted: ParagraphBreak, Delay: t.paragraphDelay, Break: true}
	}

	var unit string
	if cur[t.c] == '<' {
		end := strings.IndexByte(cur[t.c:], '>')
		if end < 0 {
			// Unterminated tag: the rest of the paragraph goes out at once.
			unit = cur[t.c:]
		} else {
			unit = cur[t.c : t.c+end+1]
		}
	} else {
		_, size := utf8.DecodeRuneInString(cur[t.c:])
		unit = cur[t.c : t.c+size]
	}
	t.c += len(unit)
	t.buf.WriteString(unit)
	return Step{Emitted: unit, Delay: t.typingSpeed}
}

// Text is everything emitted so far.
func (t *Typewriter) Text() string { return t.buf.String() }

// Done reports whether every paragraph has been emitted.
func (t *Typewriter) Done() bool { return t.p >= len(t.paragraphs) }

// Progress reports the paragraph index and byte offset of the next step.
func (t *Typewriter) Progress() (paragraph, offset int) { return t.p, t.c }

// Run schedules the first step after startDelay; each step schedules the next
// until Done. onUpdate receives the accumulated text after every step. A nil
// onUpdate means there is nothing to type into and Run does nothing; so does a
// typewriter with no paragraphs, which never calls onUpdate.
func (t *Typewriter) Run(timer clock.Timer, startDelay time.Duration, onUpdate func(text string)) {
	if onUpdate == nil || t.Done() {
		return
	}
	var step func()
	step = func() {
		st := t.Step()
		if st.Done {
			return
		}
		onUpdate(t.Text())
		timer.AfterFunc(st.Delay, step)
	}
	timer.AfterFunc(startDelay, step)
}
