package render

import (
	"strings"

	statepkg "github.com/kk-code-lab/rtree/internal/state"
)

// buildFooterHelpText returns the footer hint string with trailing padding.
func buildFooterHelpText(state *statepkg.AppState) string {
	parts := buildFooterHelpSegments(state)
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "  ") + " "
}

func buildFooterHelpSegments(state *statepkg.AppState) []string {
	if state == nil {
		return nil
	}

	segments := []string{"j/k: move", "l/h: in/out"}

	if node := state.SelectedNode(); node != nil && node.IsDir() {
		if idx, _ := state.Selection(); state.IsUnfolded(idx) {
			segments = append(segments, "t: fold")
		} else {
			segments = append(segments, "t: unfold")
		}
	}

	if state.ViewMode == statepkg.ViewRecursive {
		segments = append(segments, "e: flat")
	} else {
		segments = append(segments, "e: recursive")
	}

	return append(segments, "?: help", "q: quit")
}
