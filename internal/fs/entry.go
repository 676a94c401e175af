package fs

import (
	iofs "io/fs"
	"os"
)

// Kind classifies a directory entry without following symlinks.
type Kind int

const (
	KindOther Kind = iota
	KindDir
	KindFile
	KindSymlink
)

func (k Kind) String() string {
	switch k {
	case KindDir:
		return "Directory"
	case KindFile:
		return "File"
	case KindSymlink:
		return "Symlink"
	default:
		return "Other"
	}
}

func kindFromMode(mode iofs.FileMode) Kind {
	switch {
	case mode&iofs.ModeSymlink != 0:
		return KindSymlink
	case mode.IsDir():
		return KindDir
	case mode.IsRegular():
		return KindFile
	default:
		return KindOther
	}
}

// Entry represents a single child of a scanned directory.
type Entry struct {
	Name string
	Path string
	Kind Kind

	// rawName is the on-disk name before NFC normalisation.
	rawName  string
	dirEntry iofs.DirEntry
}

func (e Entry) sortKey() string {
	if e.rawName != "" {
		return e.rawName
	}
	return e.Name
}

// IsDir reports whether the entry can be expanded or entered.
func (e Entry) IsDir() bool {
	return e.Kind == KindDir
}

// IsHidden reports whether the entry should be treated as hidden.
func (e Entry) IsHidden() bool {
	return IsHidden(e.Path, e.Name)
}

// Info queries metadata on demand. Symlinks are not followed.
func (e Entry) Info() (os.FileInfo, error) {
	if e.dirEntry != nil {
		return e.dirEntry.Info()
	}
	return os.Lstat(e.Path)
}

// TreeNode is an entry placed at an indentation level of the visible tree.
type TreeNode struct {
	Entry
	Depth int
}
