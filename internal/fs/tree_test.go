package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// buildFixture lays out:
//
//	root/
//	  a/
//	    a1/
//	      deep.txt
//	    a.txt
//	  b/
//	  top.txt
func buildFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, "a", "a1"))
	mustMkdir(t, filepath.Join(root, "b"))
	mustWrite(t, filepath.Join(root, "a", "a1", "deep.txt"), "deep")
	mustWrite(t, filepath.Join(root, "a", "a.txt"), "a")
	mustWrite(t, filepath.Join(root, "top.txt"), "top")
	return root
}

func describeNodes(nodes []TreeNode) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = fmt.Sprintf("%d:%s", n.Depth, n.Name)
	}
	return out
}

func TestBuildTreePreOrder(t *testing.T) {
	root := buildFixture(t)

	nodes := newTestScanner(t, ScanOptions{}).BuildTree(root, 0)

	want := []string{"0:a", "1:a1", "2:deep.txt", "1:a.txt", "0:b", "0:top.txt"}
	if got := describeNodes(nodes); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	assertPreOrder(t, nodes)
}

func TestBuildTreeStartDepth(t *testing.T) {
	root := buildFixture(t)

	nodes := newTestScanner(t, ScanOptions{}).BuildTree(filepath.Join(root, "a"), 3)

	want := []string{"3:a1", "4:deep.txt", "3:a.txt"}
	if got := describeNodes(nodes); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestBuildTreeMaxDepth(t *testing.T) {
	root := buildFixture(t)

	nodes := newTestScanner(t, ScanOptions{MaxDepth: 2}).BuildTree(root, 0)

	want := []string{"0:a", "1:a1", "1:a.txt", "0:b", "0:top.txt"}
	if got := describeNodes(nodes); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestBuildTreeMissingRootIsEmpty(t *testing.T) {
	nodes := newTestScanner(t, ScanOptions{}).BuildTree(filepath.Join(t.TempDir(), "gone"), 0)
	if len(nodes) != 0 {
		t.Fatalf("expected no nodes, got %v", describeNodes(nodes))
	}
}

func TestBuildTreeSkipsUnreadableSubtree(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for root")
	}
	root := buildFixture(t)
	locked := filepath.Join(root, "b")
	mustWrite(t, filepath.Join(locked, "secret.txt"), "x")
	if err := os.Chmod(locked, 0); err != nil {
		t.Fatalf("chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	nodes := newTestScanner(t, ScanOptions{}).BuildTree(root, 0)

	want := []string{"0:a", "1:a1", "2:deep.txt", "1:a.txt", "0:b", "0:top.txt"}
	if got := describeNodes(nodes); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestBuildTreeSkipsSubtreeThatFailsToList(t *testing.T) {
	root := buildFixture(t)
	failing := filepath.Join(root, "a", "a1")
	readDir := func(path string) ([]os.DirEntry, error) {
		if path == failing {
			return nil, os.ErrPermission
		}
		return os.ReadDir(path)
	}

	nodes := newTestScanner(t, ScanOptions{ReadDir: readDir}).BuildTree(root, 0)

	want := []string{"0:a", "1:a1", "1:a.txt", "0:b", "0:top.txt"}
	if got := describeNodes(nodes); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	assertPreOrder(t, nodes)
}

func TestBuildTreeSkipsSubtreeRemovedMidWalk(t *testing.T) {
	root := buildFixture(t)
	doomed := filepath.Join(root, "a")
	readDir := func(path string) ([]os.DirEntry, error) {
		entries, err := os.ReadDir(path)
		if path == root {
			// a is listed but gone before BuildTree descends into it.
			if rmErr := os.RemoveAll(doomed); rmErr != nil {
				t.Fatalf("remove: %v", rmErr)
			}
		}
		return entries, err
	}

	nodes := newTestScanner(t, ScanOptions{ReadDir: readDir}).BuildTree(root, 0)

	want := []string{"0:a", "0:b", "0:top.txt"}
	if got := describeNodes(nodes); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestBuildTreeDoesNotFollowSymlinks(t *testing.T) {
	root := buildFixture(t)
	if err := os.Symlink(root, filepath.Join(root, "a", "loop")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	nodes := newTestScanner(t, ScanOptions{}).BuildTree(root, 0)

	want := []string{"0:a", "1:a1", "2:deep.txt", "1:a.txt", "1:loop", "0:b", "0:top.txt"}
	if got := describeNodes(nodes); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func assertPreOrder(t *testing.T, nodes []TreeNode) {
	t.Helper()
	for i, n := range nodes {
		if i == 0 && n.Depth != 0 {
			t.Fatalf("first node must be at depth 0, got %d", n.Depth)
		}
		if i > 0 && n.Depth > nodes[i-1].Depth+1 {
			t.Fatalf("node %d (%s) jumps from depth %d to %d", i, n.Name, nodes[i-1].Depth, n.Depth)
		}
		if i > 0 && n.Depth > nodes[i-1].Depth && !nodes[i-1].IsDir() {
			t.Fatalf("node %d (%s) nested under non-directory %s", i, n.Name, nodes[i-1].Name)
		}
	}
}
