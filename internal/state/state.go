package state

import (
	fsutil "github.com/kk-code-lab/rtree/internal/fs"
)

// FileEntry mirrors fs.Entry so UI/state code can rely on a stable type.
type FileEntry = fsutil.Entry
type TreeNode = fsutil.TreeNode
type EntryKind = fsutil.Kind

const (
	KindOther   = fsutil.KindOther
	KindDir     = fsutil.KindDir
	KindFile    = fsutil.KindFile
	KindSymlink = fsutil.KindSymlink
)

// ===== STATE DEFINITIONS =====

// ViewMode selects between the flat and recursive listings.
type ViewMode int

const (
	ViewFlat ViewMode = iota
	ViewRecursive
)

func (m ViewMode) String() string {
	if m == ViewRecursive {
		return "Recursive"
	}
	return "Flat"
}

// PreviewKind tags the content held by PreviewState.
type PreviewKind int

const (
	PreviewEmpty PreviewKind = iota
	PreviewInfoText
	PreviewMarkdownSource
)

// PreviewState is derived from the selected entry and never feeds back into
// the tree.
type PreviewState struct {
	Kind         PreviewKind
	Text         string
	ScrollOffset int
}

// AppState is the single source of truth
type AppState struct {
	// Tree
	CurrentPath   string
	ViewMode      ViewMode
	Tree          []TreeNode // pre-order, depth-tagged
	SelectedIndex int        // -1 when Tree is empty
	ScrollOffset  int

	// Parent listing (always depth 0)
	ParentEntries       []TreeNode
	ParentSelectedIndex int

	Preview PreviewState

	// Dimensions
	ScreenWidth  int
	ScreenHeight int

	HelpVisible bool

	// Error state
	LastError error
}

// ===== HELPER METHODS =====

// Selection returns the selected index and whether anything is selected.
func (s *AppState) Selection() (int, bool) {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Tree) {
		return -1, false
	}
	return s.SelectedIndex, true
}

// SelectedNode returns the node under the cursor, or nil.
func (s *AppState) SelectedNode() *TreeNode {
	idx, ok := s.Selection()
	if !ok {
		return nil
	}
	return &s.Tree[idx]
}

// ViewModeLabel is the panel title fragment for the active mode.
func (s *AppState) ViewModeLabel() string {
	return s.ViewMode.String()
}

// IsUnfolded reports whether the directory at idx currently shows its
// children: the next node exists and sits deeper.
func (s *AppState) IsUnfolded(idx int) bool {
	if idx < 0 || idx+1 >= len(s.Tree) {
		return false
	}
	return s.Tree[idx+1].Depth > s.Tree[idx].Depth
}

// clampSelection keeps SelectedIndex within the tree, preferring prev.
func (s *AppState) clampSelection(prev int) {
	switch {
	case len(s.Tree) == 0:
		s.SelectedIndex = -1
	case prev < 0:
		s.SelectedIndex = 0
	case prev > len(s.Tree)-1:
		s.SelectedIndex = len(s.Tree) - 1
	default:
		s.SelectedIndex = prev
	}
}
