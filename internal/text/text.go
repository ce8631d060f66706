// Package text provides the fixed-width layout primitives used to render
// campaign data on a terminal: centring, separator rules, greedy word
// wrapping with hanging indents, list formatting and pane composition.
package text

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Pane is one rendered record's text as an ordered sequence of lines,
// before horizontal composition.
type Pane []string

// hangingIndent prefixes every continuation line of a wrapped paragraph.
const hangingIndent = "    "

// CentrePad centres s inside a field of width characters using space
// padding. When the leftover padding is odd, the extra space goes on the
// right. Text wider than the field is returned unchanged: overflow is the
// caller's concern and truncation is never applied.
func CentrePad(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// Rule returns a separator line of ch repeated width times.
func Rule(ch rune, width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(string(ch), width)
}

// WrapIndented wraps text to the given width using greedy word wrap.
// Continuation lines carry a hanging indent, which reduces the room left
// for their content. Lines are left-justified and not padded to width.
// A single word that cannot fit on a line by itself is emitted unmodified
// rather than hyphenated or truncated. Empty or all-whitespace input
// produces no lines.
func WrapIndented(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	lineWidth := runewidth.StringWidth(line)
	for _, word := range words[1:] {
		wordWidth := runewidth.StringWidth(word)
		if lineWidth+1+wordWidth <= width {
			line += " " + word
			lineWidth += 1 + wordWidth
			continue
		}
		lines = append(lines, line)
		line = hangingIndent + word
		lineWidth = len(hangingIndent) + wordWidth
	}
	lines = append(lines, line)

	return lines
}

// WrapLines wraps any input lines that are too long for the width, leaving
// lines that already fit (including blank lines) untouched.
func WrapLines(lines []string, width int) []string {
	var out []string
	for _, line := range lines {
		if runewidth.StringWidth(line) <= width {
			out = append(out, line)
			continue
		}
		out = append(out, WrapIndented(line, width)...)
	}
	return out
}

// FormatList joins items with commas, prefixes the result with "title: "
// and wraps it like a paragraph, so a long list wraps exactly like prose.
// Empty items are the caller's concern: no sentinel is substituted here.
func FormatList(title string, items []string, width int) []string {
	return WrapIndented(title+": "+strings.Join(items, ", "), width)
}

// Title returns a centred heading followed by a full-width "=" rule.
func Title(s string, width int) []string {
	return []string{CentrePad(s, width), Rule('=', width)}
}

// Capitalise upper-cases the first rune of s and lower-cases the rest.
func Capitalise(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
