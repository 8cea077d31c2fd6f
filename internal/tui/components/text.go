// Package components renders the sections of the landing page.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/nondualworks/docspine-landing/internal/tui/styles"
)

// CenterOffset is the left margin that centers w cells inside total.
// Any odd remainder goes on the right.
func CenterOffset(total, w int) int {
	if w >= total {
		return 0
	}
	return (total - w) / 2
}

// Fill pads every line of block to width using style for the padding.
func Fill(style lipgloss.Style, block string, width int) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		if gap := width - lipgloss.Width(line); gap > 0 {
			lines[i] = line + style.Render(strings.Repeat(" ", gap))
		}
	}
	return strings.Join(lines, "\n")
}

// Center indents block so it sits in the middle of width, then fills the rest.
func Center(style lipgloss.Style, block string, width int) string {
	left := CenterOffset(width, lipgloss.Width(block))
	if left == 0 {
		return Fill(style, block, width)
	}
	pad := style.Render(strings.Repeat(" ", left))
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return Fill(style, strings.Join(lines, "\n"), width)
}

// Indent shifts block right by n cells painted with style.
func Indent(style lipgloss.Style, block string, n int) string {
	if n <= 0 {
		return block
	}
	pad := style.Render(strings.Repeat(" ", n))
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return strings.Join(lines, "\n")
}

// Wrap breaks text into lines no wider than width cells. Words wider than
// the line are truncated.
func Wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}
	var (
		lines []string
		cur   strings.Builder
		curW  int
	)
	for _, word := range strings.Fields(text) {
		w := runewidth.StringWidth(word)
		if w > width {
			word = runewidth.Truncate(word, width, "…")
			w = runewidth.StringWidth(word)
		}
		switch {
		case curW == 0:
			cur.WriteString(word)
			curW = w
		case curW+1+w <= width:
			cur.WriteByte(' ')
			cur.WriteString(word)
			curW += 1 + w
		default:
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(word)
			curW = w
		}
	}
	if curW > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// Truncate shortens s to width cells with an ellipsis.
func Truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// Highlight renders a wrapped line word by word, coloring words whose
// trimmed form is a key of marks.
func Highlight(base lipgloss.Style, line string, marks map[string]lipgloss.Style) string {
	words := strings.Split(line, " ")
	out := make([]string, 0, len(words)*2)
	for i, word := range words {
		if i > 0 {
			out = append(out, base.Render(" "))
		}
		key := strings.TrimRight(word, ".,;:")
		if style, ok := marks[key]; ok {
			out = append(out, style.Render(key))
			if rest := word[len(key):]; rest != "" {
				out = append(out, base.Render(rest))
			}
			continue
		}
		out = append(out, base.Render(word))
	}
	return strings.Join(out, "")
}

// Paragraph wraps text and renders every line with style.
func Paragraph(style lipgloss.Style, text string, width int) string {
	lines := Wrap(text, width)
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}

// SectionHeader renders an eyebrow and a heading.
func SectionHeader(styleSet styles.Styles, eyebrow, heading string) string {
	lines := []string{}
	if eyebrow != "" {
		lines = append(lines, styleSet.Eyebrow.Render(strings.ToUpper(eyebrow)))
	}
	if heading != "" {
		lines = append(lines, styleSet.Heading.Render(heading))
	}
	return strings.Join(lines, "\n")
}
