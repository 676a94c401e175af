package render

import (
	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/rtree/internal/state"
	textutil "github.com/kk-code-lab/rtree/internal/textutil"
)

const previewTitle = "Preview (Ctrl+j/k to scroll)"

// previewCache holds the laid-out lines for the last preview drawn, so
// scrolling does not re-parse Markdown.
type previewCache struct {
	kind  statepkg.PreviewKind
	text  string
	width int
	lines []mdLine
	valid bool
}

func (r *Renderer) drawPreviewPanel(state *statepkg.AppState, startX, width, h int) {
	r.drawPanelTitle(startX, width, previewTitle)

	contentX := startX + previewInnerPadding
	contentWidth := width - 2*previewInnerPadding
	if contentWidth <= 0 {
		return
	}

	lines := r.previewLines(state.Preview, contentWidth)
	rows := bodyRows(h)
	offset := clampPreviewOffset(state.Preview.ScrollOffset, len(lines), rows)

	for i := 0; i < rows && offset+i < len(lines); i++ {
		r.drawStyledLine(contentX, 2+i, contentWidth, lines[offset+i])
	}
}

// clampPreviewOffset keeps the last page of content on screen however far
// the user scrolled.
func clampPreviewOffset(offset, lineCount, rows int) int {
	maxOffset := max(lineCount-rows, 0)
	return max(0, min(offset, maxOffset))
}

func (r *Renderer) previewLines(preview statepkg.PreviewState, width int) []mdLine {
	c := &r.preview
	if c.valid && c.kind == preview.Kind && c.width == width && c.text == preview.Text {
		return c.lines
	}

	wrapWidth := 0
	if r.opts.Wrap {
		wrapWidth = width
	}

	var lines []mdLine
	switch {
	case preview.Kind == statepkg.PreviewEmpty:
		lines = []mdLine{{{text: "No item selected", style: mdQuote}}}
	case preview.Kind == statepkg.PreviewMarkdownSource && r.opts.Markdown:
		lines = renderMarkdown(preview.Text, wrapWidth, r.opts.TabWidth)
	default:
		for _, line := range textutil.Lines(preview.Text, r.opts.TabWidth, wrapWidth) {
			lines = append(lines, mdLine{{text: line, style: mdText}})
		}
	}

	*c = previewCache{kind: preview.Kind, text: preview.Text, width: width, lines: lines, valid: true}
	return lines
}

func (r *Renderer) drawStyledLine(startX, y, width int, line mdLine) {
	x := startX
	for _, span := range line {
		if x >= startX+width {
			return
		}
		style := r.markdownStyle(span.style)
		if span.style == mdCodeBlock {
			r.fillRow(x, startX+width, y, style)
		}
		x = r.drawTextLine(x, y, startX+width-x, span.text, style)
	}
}

func (r *Renderer) markdownStyle(style mdStyle) tcell.Style {
	base := tcell.StyleDefault.Foreground(r.theme.PreviewFg)
	switch style {
	case mdHeading:
		return base.Foreground(r.theme.HeadingFg).Bold(true)
	case mdStrong:
		return base.Bold(true)
	case mdEmphasis:
		return base.Italic(true)
	case mdCode:
		return base.Foreground(r.theme.CodeFg)
	case mdCodeBlock:
		return base.Background(r.theme.CodeBlockBg).Foreground(r.theme.CodeBlockFg)
	case mdLink:
		return base.Foreground(r.theme.LinkFg).Underline(true)
	case mdQuote:
		return base.Foreground(r.theme.QuoteFg)
	case mdMarker, mdRule:
		return base.Foreground(r.theme.MarkerFg)
	default:
		return base
	}
}
