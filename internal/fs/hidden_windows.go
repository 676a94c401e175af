//go:build windows

package fs

// IsHidden reports the hidden attribute, falling back to the dot convention
// when attributes cannot be read.
func IsHidden(path string, name string) bool {
	attrs, err := getFileAttributes(path)
	if err != nil {
		return len(name) > 0 && name[0] == '.'
	}
	return attrs&fileAttributeHidden != 0
}
