package fs

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gabriel-vasile/mimetype"
)

const modifiedLayout = "2006-01-02 15:04:05"

// Describe summarises an entry's metadata for the preview panel.
// Size is reported for regular files only.
func Describe(entry Entry, detectMIME bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", entry.Name)

	info, err := entry.Info()
	if err != nil {
		b.WriteString("Could not read metadata.\n")
		return b.String()
	}

	kind := kindFromMode(info.Mode())
	fmt.Fprintf(&b, "Type: %s\n", kind)

	if kind == KindFile {
		fmt.Fprintf(&b, "Size: %s\n", humanize.Bytes(uint64(info.Size())))
	}

	if modified := info.ModTime(); !modified.IsZero() {
		fmt.Fprintf(&b, "Modified: %s\n", modified.Local().Format(modifiedLayout))
	}

	fmt.Fprintf(&b, "Perms: %o\n", info.Mode().Perm())

	if kind == KindSymlink {
		if target, err := os.Readlink(entry.Path); err == nil {
			fmt.Fprintf(&b, "Target: %s\n", target)
		}
	}

	if detectMIME && kind == KindFile {
		if mtype, err := mimetype.DetectFile(entry.Path); err == nil {
			fmt.Fprintf(&b, "MIME: %s\n", mtype.String())
		}
	}

	return b.String()
}
