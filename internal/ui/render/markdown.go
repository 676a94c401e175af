package render

import (
	"fmt"
	"strings"
	"unicode"

	textutil "github.com/kk-code-lab/rtree/internal/textutil"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

type mdStyle int

const (
	mdText mdStyle = iota
	mdHeading
	mdStrong
	mdEmphasis
	mdCode
	mdCodeBlock
	mdLink
	mdQuote
	mdMarker
	mdRule
)

type mdSpan struct {
	text  string
	style mdStyle
}

type mdLine []mdSpan

func (l mdLine) String() string {
	var b strings.Builder
	for _, span := range l {
		b.WriteString(span.text)
	}
	return b.String()
}

// lineBreak forces a new line inside a wrapped paragraph.
var lineBreak = mdSpan{text: "\n"}

var markdownParser = goldmark.New(goldmark.WithExtensions(extension.GFM)).Parser()

// renderMarkdown turns Markdown source into styled lines. Paragraphs are
// wrapped to width cells; width <= 0 disables wrapping.
func renderMarkdown(source string, width, tabWidth int) []mdLine {
	src := []byte(source)
	doc := markdownParser.Parse(text.NewReader(src))

	w := &mdWriter{src: src, width: width, tabWidth: tabWidth}
	w.container(doc, nil, nil, false)
	return w.lines
}

type mdWriter struct {
	src      []byte
	width    int
	tabWidth int
	lines    []mdLine
}

// container renders the block children of n. first prefixes the first line
// of the first child; rest prefixes everything after it.
func (w *mdWriter) container(n ast.Node, first, rest []mdSpan, tight bool) {
	i := 0
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if i > 0 && !tight {
			w.blank(rest)
		}
		prefix := rest
		if i == 0 {
			prefix = first
		}
		w.block(c, prefix, rest)
		i++
	}
}

func (w *mdWriter) block(n ast.Node, first, rest []mdSpan) {
	switch node := n.(type) {
	case *ast.Heading:
		marker := mdSpan{text: strings.Repeat("#", node.Level) + " ", style: mdMarker}
		spans := append([]mdSpan{marker}, w.inline(node, mdHeading)...)
		w.wrap(spans, first, rest)

	case *ast.Paragraph, *ast.TextBlock:
		w.wrap(w.inline(node, mdText), first, rest)

	case *ast.ThematicBreak:
		avail := w.width - spansWidth(first)
		if avail <= 0 {
			avail = 3
		}
		w.emit(withSpan(first, mdSpan{text: strings.Repeat("─", avail), style: mdRule}))

	case *ast.CodeBlock, *ast.FencedCodeBlock, *ast.HTMLBlock:
		style := mdCodeBlock
		if _, ok := node.(*ast.HTMLBlock); ok {
			style = mdText
		}
		w.rawLines(node, style, first, rest)

	case *ast.Blockquote:
		bar := mdSpan{text: "│ ", style: mdQuote}
		w.container(node, withSpan(first, bar), withSpan(rest, bar), false)

	case *ast.List:
		num := node.Start
		i := 0
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			if i > 0 && !node.IsTight {
				w.blank(rest)
			}
			marker := "• "
			if node.IsOrdered() {
				marker = fmt.Sprintf("%d. ", num)
				num++
			}
			prefix := rest
			if i == 0 {
				prefix = first
			}
			pad := mdSpan{text: strings.Repeat(" ", textutil.DisplayWidth(marker))}
			w.container(item, withSpan(prefix, mdSpan{text: marker, style: mdMarker}), withSpan(rest, pad), node.IsTight)
			i++
		}

	case *east.Table:
		i := 0
		for row := node.FirstChild(); row != nil; row = row.NextSibling() {
			style := mdText
			if _, ok := row.(*east.TableHeader); ok {
				style = mdStrong
			}
			prefix := rest
			if i == 0 {
				prefix = first
			}
			w.wrap(w.tableRow(row, style), prefix, rest)
			i++
		}

	default:
		w.container(node, first, rest, true)
	}
}

func (w *mdWriter) tableRow(row ast.Node, style mdStyle) []mdSpan {
	var spans []mdSpan
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		if cell != row.FirstChild() {
			spans = append(spans, mdSpan{text: " │ ", style: mdMarker})
		}
		spans = append(spans, w.inline(cell, style)...)
	}
	return spans
}

func (w *mdWriter) rawLines(n ast.Node, style mdStyle, first, rest []mdSpan) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		line := strings.TrimRight(string(segment.Value(w.src)), "\r\n")
		line = textutil.SanitizeTerminalText(textutil.ExpandTabs(line, w.tabWidth))
		prefix := rest
		if i == 0 {
			prefix = first
		}
		w.emit(withSpan(prefix, mdSpan{text: line, style: style}))
	}
}

func (w *mdWriter) inline(n ast.Node, style mdStyle) []mdSpan {
	var spans []mdSpan
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			spans = append(spans, mdSpan{text: string(node.Segment.Value(w.src)), style: style})
			if node.HardLineBreak() {
				spans = append(spans, lineBreak)
			} else if node.SoftLineBreak() {
				spans = append(spans, mdSpan{text: " ", style: style})
			}
		case *ast.String:
			spans = append(spans, mdSpan{text: string(node.Value), style: style})
		case *ast.CodeSpan:
			spans = append(spans, mdSpan{text: w.plainText(node), style: mdCode})
		case *ast.Emphasis:
			emphasis := mdEmphasis
			if node.Level >= 2 {
				emphasis = mdStrong
			}
			if style == mdHeading {
				emphasis = mdHeading
			}
			spans = append(spans, w.inline(node, emphasis)...)
		case *ast.Link:
			spans = append(spans, w.inline(node, mdLink)...)
		case *ast.AutoLink:
			spans = append(spans, mdSpan{text: string(node.URL(w.src)), style: mdLink})
		case *ast.Image:
			spans = append(spans, mdSpan{text: "[image: " + w.plainText(node) + "]", style: mdLink})
		case *ast.RawHTML:
			for i := 0; i < node.Segments.Len(); i++ {
				segment := node.Segments.At(i)
				spans = append(spans, mdSpan{text: string(segment.Value(w.src)), style: style})
			}
		case *east.TaskCheckBox:
			box := "[ ] "
			if node.IsChecked {
				box = "[x] "
			}
			spans = append(spans, mdSpan{text: box, style: mdMarker})
		default:
			spans = append(spans, w.inline(c, style)...)
		}
	}
	return spans
}

func (w *mdWriter) plainText(n ast.Node) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(w.src))
		case *ast.String:
			b.Write(node.Value)
		default:
			b.WriteString(w.plainText(c))
		}
	}
	return b.String()
}

// wrap lays out spans word by word. Styles follow each word, so wrapping
// happens here rather than on flattened text.
func (w *mdWriter) wrap(spans []mdSpan, first, rest []mdSpan) {
	line := withSpan(first)
	limit := w.lineLimit(first)
	lineWidth := 0
	pendingSpace := false
	spaceStyle := mdText

	flush := func() {
		w.emit(line)
		line = withSpan(rest)
		limit = w.lineLimit(rest)
		lineWidth = 0
		pendingSpace = false
	}

	for _, span := range spans {
		if span == lineBreak {
			flush()
			continue
		}
		for _, word := range splitWords(span.text) {
			if word == " " {
				if lineWidth > 0 {
					pendingSpace = true
					spaceStyle = span.style
				}
				continue
			}

			word = textutil.SanitizeTerminalText(word)
			wordWidth := textutil.DisplayWidth(word)

			if limit > 0 {
				gap := 0
				if pendingSpace {
					gap = 1
				}
				if lineWidth > 0 && lineWidth+gap+wordWidth > limit {
					flush()
				}
				for lineWidth == 0 && wordWidth > limit {
					head, tail := splitAtWidth(word, limit)
					line = append(line, mdSpan{text: head, style: span.style})
					flush()
					word = tail
					wordWidth = textutil.DisplayWidth(tail)
				}
			}

			if pendingSpace && lineWidth > 0 {
				line = append(line, mdSpan{text: " ", style: spaceStyle})
				lineWidth++
			}
			pendingSpace = false
			if word != "" {
				line = append(line, mdSpan{text: word, style: span.style})
				lineWidth += wordWidth
			}
		}
	}
	w.emit(line)
}

// lineLimit is the room left after prefix, or 0 when wrapping is off.
func (w *mdWriter) lineLimit(prefix []mdSpan) int {
	if w.width <= 0 {
		return 0
	}
	return max(w.width-spansWidth(prefix), 1)
}

func (w *mdWriter) emit(line mdLine) {
	w.lines = append(w.lines, line)
}

func (w *mdWriter) blank(prefix []mdSpan) {
	var line mdLine
	for _, span := range prefix {
		if trimmed := strings.TrimRight(span.text, " "); trimmed != "" {
			line = append(line, mdSpan{text: trimmed, style: span.style})
		}
	}
	w.emit(line)
}

func withSpan(prefix []mdSpan, extra ...mdSpan) mdLine {
	line := make(mdLine, 0, len(prefix)+len(extra))
	line = append(line, prefix...)
	return append(line, extra...)
}

func spansWidth(spans []mdSpan) int {
	width := 0
	for _, span := range spans {
		width += textutil.DisplayWidth(span.text)
	}
	return width
}

// splitWords splits s into words, collapsing each whitespace run into a
// single " " token.
func splitWords(s string) []string {
	var words []string
	start := -1
	for i, r := range s {
		if unicode.IsSpace(r) {
			if start >= 0 {
				words = append(words, s[start:i])
				start = -1
			}
			if len(words) == 0 || words[len(words)-1] != " " {
				words = append(words, " ")
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, s[start:])
	}
	return words
}

// splitAtWidth cuts s after at most width cells, always keeping one rune.
func splitAtWidth(s string, width int) (string, string) {
	used := 0
	for i, r := range s {
		rw := textutil.DisplayWidth(string(r))
		if i > 0 && used+rw > width {
			return s[:i], s[i:]
		}
		used += rw
	}
	return s, ""
}
