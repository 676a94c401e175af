package state

import (
	"path/filepath"

	fsutil "github.com/kk-code-lab/rtree/internal/fs"
	"github.com/sirupsen/logrus"
)

// setDirectory makes path the current directory in flat mode with the
// cursor on the first entry.
func (r *StateReducer) setDirectory(state *AppState, path string) {
	dirPath := filepath.Clean(path)
	if abs, err := filepath.Abs(dirPath); err == nil {
		dirPath = abs
	}

	state.CurrentPath = dirPath
	state.ViewMode = ViewFlat
	state.Tree = r.scanFlat(state, dirPath)
	state.clampSelection(0)
	state.ScrollOffset = 0

	r.updateParentEntries(state)
	r.recomputePreview(state)

	r.log.WithFields(logrus.Fields{
		"path":    dirPath,
		"entries": len(state.Tree),
	}).Debug("changed directory")
}

// refresh rebuilds the listing in the active mode. Unfolded subtrees in
// flat mode collapse again.
func (r *StateReducer) refresh(state *AppState) {
	prev := state.SelectedIndex

	if state.ViewMode == ViewRecursive {
		state.Tree = r.scanner.BuildTree(state.CurrentPath, 0)
	} else {
		state.Tree = r.scanFlat(state, state.CurrentPath)
	}
	state.clampSelection(prev)
	state.updateScrollVisibility()

	r.updateParentEntries(state)
	r.recomputePreview(state)
}

// scanFlat lists path at depth 0. A failed listing is empty; the error is
// kept in LastError for the status line.
func (r *StateReducer) scanFlat(state *AppState, path string) []TreeNode {
	entries, err := r.scanner.Scan(path)
	state.LastError = err
	if err != nil {
		r.log.WithFields(logrus.Fields{"path": path, "error": err}).Warn("cannot list directory")
		return nil
	}
	return fsutil.FlatNodes(entries)
}

// updateParentEntries lists the parent of the current directory and points
// ParentSelectedIndex at the current directory's own entry.
func (r *StateReducer) updateParentEntries(state *AppState) {
	state.ParentEntries = nil
	state.ParentSelectedIndex = -1

	parentPath, ok := parentDirectory(state.CurrentPath)
	if !ok {
		return
	}

	entries, err := r.scanner.Scan(parentPath)
	if err != nil {
		r.log.WithFields(logrus.Fields{"path": parentPath, "error": err}).Debug("cannot list parent directory")
		return
	}

	state.ParentEntries = fsutil.FlatNodes(entries)
	if len(state.ParentEntries) == 0 {
		return
	}

	state.ParentSelectedIndex = 0
	for i, entry := range state.ParentEntries {
		if entry.Path == state.CurrentPath {
			state.ParentSelectedIndex = i
			break
		}
	}
}

// parentDirectory reports the parent of path, or false at the filesystem root.
func parentDirectory(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	parent := filepath.Dir(path)
	if parent == path {
		return "", false
	}
	return parent, true
}
