package state

// Action is the base interface for all state mutations
type Action interface{}

// ===== NAVIGATION ACTIONS =====

type NavigateUpAction struct{}
type NavigateDownAction struct{}
type EnterDirectoryAction struct{}
type GoUpAction struct{}
type GoToPathAction struct {
	Path string
}
type RefreshDirectoryAction struct{}

// ===== TREE ACTIONS =====

type ToggleRecursiveViewAction struct{}
type ToggleFoldAction struct{}

// ===== PREVIEW ACTIONS =====

type PreviewScrollUpAction struct{}
type PreviewScrollDownAction struct{}

// ===== VIEW ACTIONS =====

type ResizeAction struct {
	Width  int
	Height int
}

type HelpToggleAction struct{}
type HelpHideAction struct{}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
type SuspendAction struct{}
