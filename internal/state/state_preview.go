package state

import (
	"path/filepath"
	"strings"

	fsutil "github.com/kk-code-lab/rtree/internal/fs"
	"github.com/sirupsen/logrus"
)

// recomputePreview rebuilds the preview for the selection and resets its
// scroll offset.
func (r *StateReducer) recomputePreview(state *AppState) {
	node := state.SelectedNode()
	if node == nil {
		state.Preview = PreviewState{Kind: PreviewEmpty}
		return
	}

	if !node.IsDir() && isMarkdownPath(node.Path) {
		content, err := fsutil.ReadTextFile(node.Path)
		if err != nil {
			r.log.WithFields(logrus.Fields{"path": node.Path, "error": err}).Debug("markdown preview failed")
			state.Preview = PreviewState{
				Kind: PreviewInfoText,
				Text: "Error reading file:\n" + err.Error(),
			}
			return
		}
		state.Preview = PreviewState{Kind: PreviewMarkdownSource, Text: content}
		return
	}

	state.Preview = PreviewState{
		Kind: PreviewInfoText,
		Text: fsutil.Describe(node.Entry, r.detectMIME),
	}
}

func isMarkdownPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".md")
}
