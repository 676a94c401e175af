package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

type helpOverlayEntry struct {
	keys string
	desc string
}

type helpOverlaySection struct {
	title   string
	entries []helpOverlayEntry
}

var helpOverlaySections = []helpOverlaySection{
	{
		title: "Navigation",
		entries: []helpOverlayEntry{
			{keys: "j / ↓", desc: "Next entry (wraps)"},
			{keys: "k / ↑", desc: "Previous entry (wraps)"},
			{keys: "l / ↵ / →", desc: "Enter directory"},
			{keys: "h / ⌫ / ←", desc: "Go to parent directory"},
			{keys: "r", desc: "Refresh listing"},
		},
	},
	{
		title: "Tree",
		entries: []helpOverlayEntry{
			{keys: "e", desc: "Toggle flat / recursive view"},
			{keys: "t", desc: "Fold or unfold selected directory"},
		},
	},
	{
		title: "Preview",
		entries: []helpOverlayEntry{
			{keys: "Ctrl+j", desc: "Scroll down"},
			{keys: "Ctrl+k", desc: "Scroll up"},
		},
	},
	{
		title: "Exit",
		entries: []helpOverlayEntry{
			{keys: "q / Ctrl+C", desc: "Quit"},
			{keys: "Ctrl+Z", desc: "Suspend to shell"},
			{keys: "? / Esc", desc: "Close this help"},
		},
	},
}

func buildHelpOverlayLines() []string {
	lines := make([]string, 0, 20)
	for i, section := range helpOverlaySections {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, section.title)
		for _, entry := range section.entries {
			lines = append(lines, fmt.Sprintf("  %-14s %s", entry.keys, entry.desc))
		}
	}
	return lines
}

func (r *Renderer) drawHelpOverlay(w, h int) {
	baseStyle := tcell.StyleDefault.Background(r.theme.Background).Foreground(r.theme.Foreground)
	headerStyle := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg).Bold(true)

	title := " Help "
	r.fillRow(0, w, 0, headerStyle)
	titleStart := max((w-r.measureTextWidth(title))/2, 0)
	r.drawTextLine(titleStart, 0, w-titleStart, title, headerStyle)

	row := 2
	for _, line := range buildHelpOverlayLines() {
		if row >= h-1 {
			break
		}
		r.drawTextLine(2, row, w-4, r.truncateTextToWidth(line, w-4), baseStyle)
		row++
	}

	if h > 1 {
		r.fillRow(0, w, h-1, headerStyle)
		r.drawTextLine(0, h-1, w, r.truncateTextToWidth(" ? toggle · Esc/q close", w), headerStyle)
	}
}
