package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// cachedRuneWidth memoises runewidth lookups. Zero-width runes combine with
// the rune before them.
func (r *Renderer) cachedRuneWidth(ru rune) int {
	if width, ok := r.runeWidths[ru]; ok {
		return width
	}
	width := runewidth.RuneWidth(ru)
	if r.runeWidths == nil {
		r.runeWidths = make(map[rune]int)
	}
	r.runeWidths[ru] = width
	return width
}

func (r *Renderer) measureTextWidth(text string) int {
	width := 0
	for _, ru := range text {
		width += r.cachedRuneWidth(ru)
	}
	return width
}

func (r *Renderer) truncateTextToWidth(text string, maxWidth int) string {
	if maxWidth <= 0 || text == "" {
		return ""
	}
	if r.measureTextWidth(text) <= maxWidth {
		return text
	}

	const ellipsis = "…"
	if maxWidth <= 1 {
		return ellipsis
	}

	available := maxWidth - 1
	var b strings.Builder
	width := 0
	for _, ru := range text {
		rw := r.cachedRuneWidth(ru)
		if width+rw > available {
			break
		}
		b.WriteRune(ru)
		width += rw
	}
	b.WriteString(ellipsis)
	return b.String()
}

// truncateLeft keeps the tail of text, which is the useful end of a path.
func (r *Renderer) truncateLeft(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if r.measureTextWidth(text) <= maxWidth {
		return text
	}
	if maxWidth <= 1 {
		return "…"
	}

	runes := []rune(text)
	width := 0
	start := len(runes)
	for start > 0 {
		rw := r.cachedRuneWidth(runes[start-1])
		if width+rw > maxWidth-1 {
			break
		}
		width += rw
		start--
	}
	return "…" + string(runes[start:])
}

// drawTextLine draws text from startX, clipped to maxWidth cells, and returns
// the column after the last drawn cell.
func (r *Renderer) drawTextLine(startX, y, maxWidth int, text string, style tcell.Style) int {
	x := startX
	runes := []rune(text)
	for i := 0; i < len(runes); {
		mainc := runes[i]
		i++
		var combc []rune
		for i < len(runes) && r.cachedRuneWidth(runes[i]) == 0 {
			combc = append(combc, runes[i])
			i++
		}

		w := r.cachedRuneWidth(mainc)
		if w == 0 {
			w = 1
		}
		if x-startX+w > maxWidth {
			break
		}
		r.screen.SetContent(x, y, mainc, combc, style)
		x += w
	}
	return x
}

// fillRow paints cells [startX, endX) on row y.
func (r *Renderer) fillRow(startX, endX, y int, style tcell.Style) {
	for x := startX; x < endX; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}
}
