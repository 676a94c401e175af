package state

// toggleRecursiveView switches between the flat listing and the full
// recursive tree, keeping the cursor as close to its old index as possible.
func (r *StateReducer) toggleRecursiveView(state *AppState) {
	prev := state.SelectedIndex

	if state.ViewMode == ViewFlat {
		state.ViewMode = ViewRecursive
		state.Tree = r.scanner.BuildTree(state.CurrentPath, 0)
	} else {
		state.ViewMode = ViewFlat
		state.Tree = r.scanFlat(state, state.CurrentPath)
	}

	state.clampSelection(prev)
	state.updateScrollVisibility()
	r.recomputePreview(state)
}

// toggleFold collapses an unfolded directory or splices its subtree in
// directly below it. The selection index never moves.
func (r *StateReducer) toggleFold(state *AppState) {
	idx, ok := state.Selection()
	if !ok {
		return
	}
	node := state.Tree[idx]
	if !node.IsDir() {
		return
	}

	if state.IsUnfolded(idx) {
		end := subtreeEnd(state.Tree, idx)
		tree := make([]TreeNode, 0, len(state.Tree)-(end-idx-1))
		tree = append(tree, state.Tree[:idx+1]...)
		tree = append(tree, state.Tree[end:]...)
		state.Tree = tree
	} else {
		children := r.scanner.BuildTree(node.Path, node.Depth+1)
		if len(children) == 0 {
			return
		}
		tree := make([]TreeNode, 0, len(state.Tree)+len(children))
		tree = append(tree, state.Tree[:idx+1]...)
		tree = append(tree, children...)
		tree = append(tree, state.Tree[idx+1:]...)
		state.Tree = tree
	}

	state.updateScrollVisibility()
}

// subtreeEnd returns the index one past the last descendant of Tree[idx].
func subtreeEnd(tree []TreeNode, idx int) int {
	depth := tree[idx].Depth
	end := idx + 1
	for end < len(tree) && tree[end].Depth > depth {
		end++
	}
	return end
}

func (r *StateReducer) selectNext(state *AppState) {
	n := len(state.Tree)
	if n == 0 {
		return
	}
	idx, ok := state.Selection()
	if !ok {
		state.SelectedIndex = 0
	} else {
		state.SelectedIndex = (idx + 1) % n
	}
	state.updateScrollVisibility()
	r.recomputePreview(state)
}

func (r *StateReducer) selectPrevious(state *AppState) {
	n := len(state.Tree)
	if n == 0 {
		return
	}
	idx, ok := state.Selection()
	if !ok || idx == 0 {
		state.SelectedIndex = n - 1
	} else {
		state.SelectedIndex = idx - 1
	}
	state.updateScrollVisibility()
	r.recomputePreview(state)
}
