package fs

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

func newTestScanner(t *testing.T, opts ScanOptions) *Scanner {
	t.Helper()
	s, err := NewScanner(opts)
	if err != nil {
		t.Fatalf("NewScanner: %v", err)
	}
	return s
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func entryNames(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

func TestScanOrdersDirectoriesFirst(t *testing.T) {
	root := t.TempDir()
	mustWrite(t, filepath.Join(root, "b.txt"), "b")
	mustMkdir(t, filepath.Join(root, "a_dir"))
	mustWrite(t, filepath.Join(root, "c.txt"), "c")

	entries, err := newTestScanner(t, ScanOptions{}).Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	want := []string{"a_dir", "b.txt", "c.txt"}
	if got := entryNames(entries); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if entries[0].Kind != KindDir || entries[1].Kind != KindFile {
		t.Fatalf("unexpected kinds: %v, %v", entries[0].Kind, entries[1].Kind)
	}
	if entries[1].Path != filepath.Join(root, "b.txt") {
		t.Fatalf("expected absolute child path, got %q", entries[1].Path)
	}
}

func TestScanSortInvariant(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"zeta", "Alpha", "mid", "_under"} {
		mustMkdir(t, filepath.Join(root, name))
	}
	for _, name := range []string{"z.go", "B.md", "a.txt", ".hidden"} {
		mustWrite(t, filepath.Join(root, name), name)
	}

	entries, err := newTestScanner(t, ScanOptions{}).Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(entries) != 8 {
		t.Fatalf("expected 8 entries including hidden ones, got %d", len(entries))
	}

	seenFile := false
	for i, e := range entries {
		if e.IsDir() && seenFile {
			t.Fatalf("directory %q listed after a file", e.Name)
		}
		if !e.IsDir() {
			seenFile = true
		}
		if i > 0 && entries[i-1].IsDir() == e.IsDir() && entries[i-1].Name > e.Name {
			t.Fatalf("entries %q and %q out of order", entries[i-1].Name, e.Name)
		}
	}
}

func TestScanSortsByOnDiskName(t *testing.T) {
	root := t.TempDir()
	decomposed := "A\u030a.txt" // NFC form is "\u00c5.txt", which sorts after "B.txt"
	mustWrite(t, filepath.Join(root, decomposed), "a")
	mustWrite(t, filepath.Join(root, "B.txt"), "b")

	entries, err := newTestScanner(t, ScanOptions{}).Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	want := []string{"\u00c5.txt", "B.txt"}
	if got := entryNames(entries); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if entries[0].Path != filepath.Join(root, decomposed) {
		t.Fatalf("path should keep the on-disk name, got %q", entries[0].Path)
	}
}

func TestScanUnreadableDirectory(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")

	entries, err := newTestScanner(t, ScanOptions{}).Scan(missing)
	if err == nil {
		t.Fatalf("expected error, got %d entries", len(entries))
	}
	if !errors.Is(err, ErrUnreadable) {
		t.Fatalf("expected ErrUnreadable, got %v", err)
	}
	var scanErr *ScanError
	if !errors.As(err, &scanErr) || scanErr.Path != missing {
		t.Fatalf("expected ScanError for %s, got %#v", missing, err)
	}
}

func TestScanClassifiesSymlinksWithoutFollowing(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "target")
	mustMkdir(t, target)
	if err := os.Symlink(target, filepath.Join(root, "link")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	entries, err := newTestScanner(t, ScanOptions{}).Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	want := []string{"target", "link"}
	if got := entryNames(entries); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if entries[1].Kind != KindSymlink || entries[1].IsDir() {
		t.Fatalf("expected symlink kind, got %v", entries[1].Kind)
	}
}

func TestScanIgnorePatterns(t *testing.T) {
	root := t.TempDir()
	mustMkdir(t, filepath.Join(root, ".git"))
	mustMkdir(t, filepath.Join(root, "node_modules"))
	mustMkdir(t, filepath.Join(root, "src"))
	mustWrite(t, filepath.Join(root, "debug.log"), "x")
	mustWrite(t, filepath.Join(root, "main.go"), "x")

	s := newTestScanner(t, ScanOptions{Ignore: []string{".git", "node_modules", "*.log"}})
	entries, err := s.Scan(root)
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}

	want := []string{"src", "main.go"}
	if got := entryNames(entries); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestNewScannerRejectsBadPattern(t *testing.T) {
	if _, err := NewScanner(ScanOptions{Ignore: []string{"[unterminated"}}); err == nil {
		t.Fatalf("expected invalid glob to be rejected")
	}
}

func TestScanEmptyDirectory(t *testing.T) {
	entries, err := newTestScanner(t, ScanOptions{}).Scan(t.TempDir())
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no entries, got %v", entryNames(entries))
	}
}
