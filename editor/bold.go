// Package editor implements the text transforms used while editing shortcut
// content. Offsets are rune indexes into the text.
package editor

import (
	"errors"
	"fmt"
	"html"
	"regexp"
	"strings"
)

const marker = "**"

var ErrRange = errors.New("selection out of range")

// Edit is the result of a transform. Caret must be applied only after Text
// has been committed to the buffer, or the buffer update will reset it.
type Edit struct {
	Text  string `json:"text"`
	Caret int    `json:"caret"`
}

// ToggleBold unwraps the selection [start, end) if it is a **…** span of at
// least four runes, and wraps it in ** markers otherwise.
func ToggleBold(text string, start, end int) (Edit, error) {
	r := []rune(text)
	if start < 0 || start > end || end > len(r) {
		return Edit{}, fmt.Errorf("%w: [%d,%d) in text of length %d", ErrRange, start, end, len(r))
	}

	before, selected, after := string(r[:start]), string(r[start:end]), string(r[end:])
	n := end - start

	if n >= 4 && strings.HasPrefix(selected, marker) && strings.HasSuffix(selected, marker) {
		inner := string(r[start+2 : end-2])
		return Edit{Text: before + inner + after, Caret: start + n - 4}, nil
	}
	return Edit{Text: before + marker + selected + marker + after, Caret: start + n + 2}, nil
}

var boldSpan = regexp.MustCompile(`(?s)\*\*(.+?)\*\*`)

// RenderBold escapes text for HTML and turns each **x** span into
// <strong>x</strong>, pairing markers left to right.
func RenderBold(text string) string {
	return boldSpan.ReplaceAllString(html.EscapeString(text), "<strong>$1</strong>")
}
