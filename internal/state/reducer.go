package state

import (
	"io"

	fsutil "github.com/kk-code-lab/rtree/internal/fs"
	"github.com/sirupsen/logrus"
)

// ===== REDUCER =====

// ReducerConfig wires the reducer's collaborators.
type ReducerConfig struct {
	Scanner    *fsutil.Scanner
	Logger     logrus.FieldLogger
	DetectMIME bool
}

// StateReducer applies actions to state
type StateReducer struct {
	scanner    *fsutil.Scanner
	log        logrus.FieldLogger
	detectMIME bool
}

// NewStateReducer creates a new reducer
func NewStateReducer(cfg ReducerConfig) *StateReducer {
	log := cfg.Logger
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	scanner := cfg.Scanner
	if scanner == nil {
		// Empty options cannot fail to compile.
		scanner, _ = fsutil.NewScanner(fsutil.ScanOptions{Logger: log})
	}

	return &StateReducer{
		scanner:    scanner,
		log:        log,
		detectMIME: cfg.DetectMIME,
	}
}

// Reduce applies an action to state and returns new state.
// Every action runs to completion before the next one is processed.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	switch a := action.(type) {

	// ===== NAVIGATION =====

	case NavigateDownAction:
		r.selectNext(state)

	case NavigateUpAction:
		r.selectPrevious(state)

	case EnterDirectoryAction:
		node := state.SelectedNode()
		if node == nil || !node.IsDir() {
			return state, nil
		}
		r.setDirectory(state, node.Path)

	case GoUpAction:
		parent, ok := parentDirectory(state.CurrentPath)
		if !ok {
			return state, nil
		}
		r.setDirectory(state, parent)

	case GoToPathAction:
		if a.Path == "" {
			return state, nil
		}
		r.setDirectory(state, a.Path)

	case RefreshDirectoryAction:
		r.refresh(state)

	// ===== TREE =====

	case ToggleRecursiveViewAction:
		r.toggleRecursiveView(state)

	case ToggleFoldAction:
		r.toggleFold(state)

	// ===== PREVIEW =====

	case PreviewScrollDownAction:
		state.Preview.ScrollOffset++

	case PreviewScrollUpAction:
		if state.Preview.ScrollOffset > 0 {
			state.Preview.ScrollOffset--
		}

	// ===== VIEW =====

	case ResizeAction:
		state.ScreenWidth = a.Width
		state.ScreenHeight = a.Height
		state.updateScrollVisibility()

	case HelpToggleAction:
		state.HelpVisible = !state.HelpVisible

	case HelpHideAction:
		state.HelpVisible = false
	}

	return state, nil
}

// GeneratePreview recomputes the preview for the current selection.
func (r *StateReducer) GeneratePreview(state *AppState) {
	r.recomputePreview(state)
}
