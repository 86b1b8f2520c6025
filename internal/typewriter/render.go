package typewriter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/net/html"
)

// Styles maps class attributes to terminal styles.
type Styles struct {
	Text    lipgloss.Style
	Classes map[string]lipgloss.Style
}

// Render converts typed markup to terminal text: <br> becomes a newline and
// elements whose class has a style are rendered with it. Unknown tags are
// dropped and their text kept.
func Render(markup string, st Styles) string {
	var b strings.Builder
	stack := []lipgloss.Style{st.Text}

	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.WriteString(stack[len(stack)-1].Render(string(z.Text())))
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tok.Data == "br" {
				b.WriteByte('\n')
				continue
			}
			style := stack[len(stack)-1]
			if s, ok := st.Classes[classOf(tok)]; ok {
				style = s
			}
			if tok.Type == html.StartTagToken {
				stack = append(stack, style)
			}
		case html.EndTagToken:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		}
	}
}

// Plain strips markup, keeping line breaks.
func Plain(markup string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return b.String()
		case html.TextToken:
			b.Write(z.Text())
		case html.StartTagToken, html.SelfClosingTagToken:
			if name, _ := z.TagName(); string(name) == "br" {
				b.WriteByte('\n')
			}
		}
	}
}

func classOf(tok html.Token) string {
	for _, a := range tok.Attr {
		if a.Key == "class" {
			return a.Val
		}
	}
	return ""
}
