//go:build windows

package fs

// isProtectedEntry reports system reparse points such as the legacy
// "Documents and Settings" junction. They are never listed.
func isProtectedEntry(path string) bool {
	attrs, err := getFileAttributes(path)
	if err != nil {
		return false
	}
	return attrs&fileAttributeSystem != 0 && attrs&fileAttributeReparsePoint != 0
}
