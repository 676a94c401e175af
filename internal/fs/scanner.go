package fs

import (
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/unicode/norm"
)

// ErrUnreadable matches every error returned by Scan for a directory that
// could not be listed.
var ErrUnreadable = errors.New("directory unreadable")

// ScanError describes a directory that could not be listed.
type ScanError struct {
	Path string
	Err  error
}

func (e *ScanError) Error() string {
	return "cannot read directory " + e.Path + ": " + e.Err.Error()
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

func (e *ScanError) Is(target error) bool {
	return target == ErrUnreadable
}

// ScanOptions configures a Scanner.
type ScanOptions struct {
	// Ignore holds glob patterns matched against entry names.
	Ignore []string
	// MaxDepth bounds how many levels a single BuildTree call descends.
	// Zero means unlimited.
	MaxDepth int
	Logger   logrus.FieldLogger
	// ReadDir replaces os.ReadDir.
	ReadDir func(path string) ([]os.DirEntry, error)
}

// Scanner lists directories in the canonical order and builds depth-tagged
// pre-order trees from them.
type Scanner struct {
	ignore   []glob.Glob
	maxDepth int
	log      logrus.FieldLogger
	readDir  func(string) ([]os.DirEntry, error)
}

// NewScanner compiles the ignore patterns in opts.
func NewScanner(opts ScanOptions) (*Scanner, error) {
	s := &Scanner{
		maxDepth: opts.MaxDepth,
		log:      opts.Logger,
		readDir:  opts.ReadDir,
	}
	if s.readDir == nil {
		s.readDir = os.ReadDir
	}
	if s.log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		s.log = discard
	}
	for _, pattern := range opts.Ignore {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid ignore pattern %q", pattern)
		}
		s.ignore = append(s.ignore, g)
	}
	return s, nil
}

// Scan returns the immediate children of path, directories first and then
// by the on-disk name bytes. Children that cannot be read are dropped; a
// directory that cannot be opened yields a *ScanError.
func (s *Scanner) Scan(path string) ([]Entry, error) {
	dirEntries, err := s.readDir(path)
	if err != nil {
		if len(dirEntries) == 0 {
			return nil, errors.WithStack(&ScanError{Path: path, Err: err})
		}
		s.log.WithFields(logrus.Fields{"path": path, "error": err}).Debug("partial directory listing")
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		rawName := d.Name()
		fullPath := filepath.Join(path, rawName)

		if isProtectedEntry(fullPath) || s.ignored(rawName) {
			continue
		}

		entries = append(entries, Entry{
			Name:     norm.NFC.String(rawName),
			Path:     fullPath,
			Kind:     kindFromMode(d.Type()),
			rawName:  rawName,
			dirEntry: d,
		})
	}

	sortEntries(entries)
	return entries, nil
}

// BuildTree lists path recursively in pre-order, tagging the first level with
// startDepth. Unreadable subdirectories contribute no nodes.
func (s *Scanner) BuildTree(path string, startDepth int) []TreeNode {
	return s.appendTree(nil, path, startDepth, 1)
}

func (s *Scanner) appendTree(nodes []TreeNode, path string, depth, level int) []TreeNode {
	entries, err := s.Scan(path)
	if err != nil {
		s.log.WithFields(logrus.Fields{"path": path, "error": err}).Debug("skipping unreadable subtree")
		return nodes
	}

	for _, entry := range entries {
		nodes = append(nodes, TreeNode{Entry: entry, Depth: depth})
		if entry.IsDir() && s.canDescend(level) {
			nodes = s.appendTree(nodes, entry.Path, depth+1, level+1)
		}
	}
	return nodes
}

func (s *Scanner) canDescend(level int) bool {
	return s.maxDepth <= 0 || level < s.maxDepth
}

func (s *Scanner) ignored(name string) bool {
	for _, g := range s.ignore {
		if g.Match(name) {
			return true
		}
	}
	return false
}

// FlatNodes wraps entries as depth-0 tree nodes.
func FlatNodes(entries []Entry) []TreeNode {
	nodes := make([]TreeNode, len(entries))
	for i, entry := range entries {
		nodes[i] = TreeNode{Entry: entry}
	}
	return nodes
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir() != entries[j].IsDir() {
			return entries[i].IsDir()
		}
		return entries[i].sortKey() < entries[j].sortKey()
	})
}
