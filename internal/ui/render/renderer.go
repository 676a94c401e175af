package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/rtree/internal/state"
	textutil "github.com/kk-code-lab/rtree/internal/textutil"
)

// Options tunes how the preview panel lays out text.
type Options struct {
	TabWidth int
	// Markdown renders .md files as styled text; otherwise the source is shown.
	Markdown bool
	Wrap     bool
}

// Renderer handles all UI rendering
type Renderer struct {
	screen     tcell.Screen
	theme      ColorTheme
	opts       Options
	runeWidths map[rune]int
	preview    previewCache
}

// NewRenderer creates a new renderer
func NewRenderer(screen tcell.Screen, opts Options) *Renderer {
	if opts.TabWidth <= 0 {
		opts.TabWidth = textutil.DefaultTabWidth
	}
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
		opts:   opts,
	}
}

// Render draws the entire UI based on state
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()
	w, h := r.screen.Size()

	if state.HelpVisible {
		r.drawHelpOverlay(w, h)
		r.screen.Show()
		return
	}

	layout := computeLayout(w)

	r.drawHeader(state, w)
	if layout.parentWidth > 0 {
		r.drawParentPanel(state, layout.parentStart, layout.parentWidth, h)
	}
	r.drawTreePanel(state, layout.treeStart, layout.treeWidth, h)
	if layout.previewWidth > 0 {
		r.drawPreviewPanel(state, layout.previewStart, layout.previewWidth, h)
	}

	sepStyle := tcell.StyleDefault.Foreground(r.theme.SeparatorFg)
	for _, x := range layout.separators() {
		for y := 1; y < h-1; y++ {
			r.screen.SetContent(x, y, '│', nil, sepStyle)
		}
	}

	r.drawStatusLine(state, w, h)
	r.screen.Show()
}

// drawHeader renders the top bar with title and breadcrumb
func (r *Renderer) drawHeader(state *statepkg.AppState, w int) {
	headerStyle := tcell.StyleDefault.Background(r.theme.HeaderBg).Foreground(r.theme.HeaderFg)
	r.fillRow(0, w, 0, headerStyle)

	endX := r.drawTextLine(0, 0, w, "rtree ", headerStyle.Bold(true))
	if endX >= w {
		return
	}

	segments := formatBreadcrumbSegments(state.CurrentPath)
	last := textutil.SanitizeTerminalText(segments[len(segments)-1])
	lastWidth := r.measureTextWidth(last)

	if len(segments) > 1 {
		prefix := strings.Join(segments[:len(segments)-1], " › ") + " › "
		prefix = textutil.SanitizeTerminalText(prefix)
		room := w - endX - lastWidth
		endX = r.drawTextLine(endX, 0, w-endX, r.truncateLeft(prefix, room), headerStyle)
	}
	r.drawTextLine(endX, 0, w-endX, r.truncateTextToWidth(last, w-endX), headerStyle.Bold(true))
}

// formatBreadcrumbSegments splits path into display segments, keeping the
// filesystem root as its own first segment.
func formatBreadcrumbSegments(path string) []string {
	if path == "" {
		return []string{"/"}
	}

	cleanPath := filepath.ToSlash(filepath.Clean(path))
	if cleanPath == "/" || cleanPath == "." {
		return []string{"/"}
	}

	var segments []string
	if strings.HasPrefix(cleanPath, "/") {
		segments = append(segments, "/")
	}
	for _, part := range strings.Split(strings.TrimPrefix(cleanPath, "/"), "/") {
		if part != "" {
			segments = append(segments, part)
		}
	}
	if len(segments) == 0 {
		return []string{cleanPath}
	}
	return segments
}

func (r *Renderer) drawPanelTitle(startX, width int, title string) {
	style := tcell.StyleDefault.Foreground(r.theme.TitleFg).Bold(true)
	r.fillRow(startX, startX+width, 1, tcell.StyleDefault)
	r.drawTextLine(startX, 1, width, r.truncateTextToWidth(" "+title, width), style)
}

// drawParentPanel renders the parent directory listing with the current
// directory highlighted.
func (r *Renderer) drawParentPanel(state *statepkg.AppState, startX, width, h int) {
	r.drawPanelTitle(startX, width, "Parent")

	baseStyle := tcell.StyleDefault.Foreground(r.theme.ParentFg)
	rows := bodyRows(h)
	entries := state.ParentEntries

	if len(entries) == 0 {
		placeholder := " Parent is empty"
		if filepath.Dir(state.CurrentPath) == state.CurrentPath {
			placeholder = " No parent directory"
		}
		if rows > 0 {
			r.drawTextLine(startX, 2, width, placeholder, baseStyle.Dim(true))
		}
		return
	}

	// Keep the current directory roughly centred.
	start := 0
	if len(entries) > rows {
		start = state.ParentSelectedIndex - rows/2
		start = max(0, min(start, len(entries)-rows))
	}

	for i := 0; i < rows && start+i < len(entries); i++ {
		idx := start + i
		entry := entries[idx]
		y := 2 + i

		style := baseStyle
		if entry.IsDir() {
			style = style.Foreground(r.theme.DirectoryFg).Dim(true)
		}
		if idx == state.ParentSelectedIndex {
			style = tcell.StyleDefault.Background(r.theme.ParentActiveBg).Foreground(r.theme.ParentActiveFg)
			r.fillRow(startX, startX+width, y, style)
		}

		line := " " + kindIcon(entry.Kind) + " " + textutil.SanitizeTerminalText(entry.Name)
		r.drawTextLine(startX, y, width, r.truncateTextToWidth(line, width), style)
	}
}

// drawTreePanel renders the current directory as a flat list or an indented
// tree, depending on the view mode.
func (r *Renderer) drawTreePanel(state *statepkg.AppState, startX, width, h int) {
	r.drawPanelTitle(startX, width, fmt.Sprintf("Current (%s 'e')", state.ViewModeLabel()))

	rows := bodyRows(h)
	if len(state.Tree) == 0 {
		if rows > 0 {
			r.drawTextLine(startX, 2, width, " (empty)", tcell.StyleDefault.Dim(true))
		}
		return
	}

	offset := max(0, min(state.ScrollOffset, len(state.Tree)-1))
	for i := 0; i < rows && offset+i < len(state.Tree); i++ {
		idx := offset + i
		node := state.Tree[idx]
		y := 2 + i

		style := r.entryStyle(node.Entry)
		if idx == state.SelectedIndex {
			style = tcell.StyleDefault.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg).Bold(true)
			r.fillRow(startX, startX+width, y, style)
		}

		r.drawTextLine(startX, y, width, r.truncateTextToWidth(r.treeLine(state, idx), width), style)
	}
}

// treeLine formats one node: two spaces per depth level, a fold marker for
// directories, then the name.
func (r *Renderer) treeLine(state *statepkg.AppState, idx int) string {
	node := state.Tree[idx]

	marker := "  "
	switch {
	case node.IsDir() && state.IsUnfolded(idx):
		marker = "▾ "
	case node.IsDir():
		marker = "▸ "
	case node.Kind == statepkg.KindSymlink:
		marker = "@ "
	}

	name := textutil.SanitizeTerminalText(node.Name)
	if node.IsDir() {
		name += "/"
	}
	return " " + strings.Repeat("  ", node.Depth) + marker + name
}

func (r *Renderer) entryStyle(entry statepkg.FileEntry) tcell.Style {
	style := tcell.StyleDefault.Foreground(r.theme.FileFg)
	switch entry.Kind {
	case statepkg.KindDir:
		style = style.Foreground(r.theme.DirectoryFg)
	case statepkg.KindSymlink:
		style = style.Foreground(r.theme.SymlinkFg)
	}
	if entry.IsHidden() {
		style = style.Foreground(r.theme.HiddenFg)
	}
	return style
}

func kindIcon(kind statepkg.EntryKind) string {
	switch kind {
	case statepkg.KindDir:
		return "/"
	case statepkg.KindSymlink:
		return "@"
	default:
		return " "
	}
}

// drawStatusLine renders the selected path on the left and key hints on the
// right of the bottom row.
func (r *Renderer) drawStatusLine(state *statepkg.AppState, w, h int) {
	if h < 2 {
		return
	}
	y := h - 1
	style := tcell.StyleDefault.Background(r.theme.FooterBg).Foreground(r.theme.FooterFg)
	r.fillRow(0, w, y, style)

	help := buildFooterHelpText(state)
	helpWidth := r.measureTextWidth(help)

	path := state.CurrentPath
	if node := state.SelectedNode(); node != nil {
		path = node.Path
	}
	path = " " + textutil.SanitizeTerminalText(path)
	if state.LastError != nil {
		path = " Error: " + textutil.SanitizeTerminalText(state.LastError.Error())
		style = style.Foreground(r.theme.ErrorFg)
	}

	pathRoom := w - helpWidth - 1
	if pathRoom < w/2 {
		// Narrow screens keep the path and drop the hints.
		r.drawTextLine(0, y, w, r.truncateLeft(path, w), style)
		return
	}
	r.drawTextLine(0, y, pathRoom, r.truncateLeft(path, pathRoom), style)
	r.drawTextLine(w-helpWidth, y, helpWidth, help, style.Dim(true))
}
