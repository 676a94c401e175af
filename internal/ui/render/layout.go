package render

type layoutMetrics struct {
	parentStart  int
	parentWidth  int
	treeStart    int
	treeWidth    int
	previewStart int
	previewWidth int
}

const (
	parentPercent  = 25
	treePercent    = 40
	previewPercent = 35

	separatorWidth = 1

	// Below these widths the parent and then the preview panel are dropped.
	minThreePaneWidth = 60
	minTwoPaneWidth   = 36

	previewInnerPadding = 1

	// header, panel titles and status line
	chromeRows = 3
)

// computeLayout splits the screen width 25/40/35 between the parent, tree and
// preview panels, with one separator column between neighbours.
func computeLayout(w int) layoutMetrics {
	var m layoutMetrics
	switch {
	case w <= 0:
		return m

	case w >= minThreePaneWidth:
		usable := w - 2*separatorWidth
		m.parentWidth = usable * parentPercent / 100
		m.treeWidth = usable * treePercent / 100
		m.previewWidth = usable - m.parentWidth - m.treeWidth
		m.treeStart = m.parentWidth + separatorWidth
		m.previewStart = m.treeStart + m.treeWidth + separatorWidth

	case w >= minTwoPaneWidth:
		usable := w - separatorWidth
		m.treeWidth = usable * treePercent / (treePercent + previewPercent)
		m.previewWidth = usable - m.treeWidth
		m.previewStart = m.treeWidth + separatorWidth

	default:
		m.treeWidth = w
	}
	return m
}

// separators returns the columns drawn between visible panels.
func (m layoutMetrics) separators() []int {
	var cols []int
	if m.parentWidth > 0 {
		cols = append(cols, m.parentStart+m.parentWidth)
	}
	if m.previewWidth > 0 {
		cols = append(cols, m.treeStart+m.treeWidth)
	}
	return cols
}

func bodyRows(h int) int {
	return max(h-chromeRows, 0)
}
