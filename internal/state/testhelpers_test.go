package state

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func newTestReducer(t *testing.T) *StateReducer {
	t.Helper()
	return NewStateReducer(ReducerConfig{})
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	mustMkdir(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// loadState points a fresh state at dir through the reducer.
func loadState(t *testing.T, reducer *StateReducer, dir string) *AppState {
	t.Helper()
	state := &AppState{ScreenWidth: 120, ScreenHeight: 30}
	if _, err := reducer.Reduce(state, GoToPathAction{Path: dir}); err != nil {
		t.Fatalf("load %s: %v", dir, err)
	}
	return state
}

func reduce(t *testing.T, reducer *StateReducer, state *AppState, actions ...Action) {
	t.Helper()
	for _, action := range actions {
		if _, err := reducer.Reduce(state, action); err != nil {
			t.Fatalf("reduce %T: %v", action, err)
		}
	}
}

func nodeLabels(nodes []TreeNode) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = fmt.Sprintf("%d:%s", n.Depth, n.Name)
	}
	return out
}

func selectByName(t *testing.T, state *AppState, name string) {
	t.Helper()
	for i, n := range state.Tree {
		if n.Name == name {
			state.SelectedIndex = i
			return
		}
	}
	t.Fatalf("no node named %q in %v", name, nodeLabels(state.Tree))
}

// checkInvariants asserts the selection and tree shape rules that must hold
// after every action.
func checkInvariants(t *testing.T, state *AppState) {
	t.Helper()
	if len(state.Tree) == 0 {
		if state.SelectedIndex != -1 {
			t.Fatalf("empty tree must have no selection, got %d", state.SelectedIndex)
		}
	} else if state.SelectedIndex < 0 || state.SelectedIndex >= len(state.Tree) {
		t.Fatalf("selection %d out of range for %d nodes", state.SelectedIndex, len(state.Tree))
	}
	for i, n := range state.Tree {
		if i == 0 && n.Depth != 0 {
			t.Fatalf("first node at depth %d", n.Depth)
		}
		if i > 0 && n.Depth > state.Tree[i-1].Depth+1 {
			t.Fatalf("node %s jumps depth %d -> %d", n.Name, state.Tree[i-1].Depth, n.Depth)
		}
		if state.ViewMode == ViewFlat && n.Depth > 0 && i > 0 && n.Depth > state.Tree[i-1].Depth && !state.Tree[i-1].IsDir() {
			t.Fatalf("node %s nested under non-directory", n.Name)
		}
	}
	if state.Preview.ScrollOffset < 0 {
		t.Fatalf("negative preview scroll %d", state.Preview.ScrollOffset)
	}
}
