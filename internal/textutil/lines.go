package textutil

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// Lines splits text into drawable lines. Tabs are expanded, control
// characters neutralised and, when width > 0, long lines are word wrapped
// and then hard wrapped so no line exceeds width cells.
func Lines(text string, tabWidth, width int) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	raw := strings.Split(text, "\n")

	out := make([]string, 0, len(raw))
	for _, line := range raw {
		line = SanitizeTerminalText(ExpandTabs(line, tabWidth))
		if width <= 0 || DisplayWidth(line) <= width {
			out = append(out, line)
			continue
		}
		wrapped := wrap.String(wordwrap.String(line, width), width)
		for _, part := range strings.Split(wrapped, "\n") {
			out = append(out, strings.TrimRight(part, " "))
		}
	}
	return out
}
