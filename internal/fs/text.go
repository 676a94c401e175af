package fs

import (
	"bytes"
	"os"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
)

// ErrNotText is returned for content that is neither UTF-8 nor BOM-marked
// UTF-16.
var ErrNotText = errors.New("stream did not contain valid UTF-8")

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// ReadTextFile reads the whole file as text.
func ReadTextFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return DecodeText(content)
}

// DecodeText returns content as a UTF-8 string. A UTF-8 BOM is dropped and
// UTF-16 with a BOM is transcoded; anything else must already be valid UTF-8.
func DecodeText(content []byte) (string, error) {
	switch {
	case bytes.HasPrefix(content, bomUTF8):
		content = content[len(bomUTF8):]
	case bytes.HasPrefix(content, bomUTF16LE):
		return decodeUTF16(content, unicode.LittleEndian)
	case bytes.HasPrefix(content, bomUTF16BE):
		return decodeUTF16(content, unicode.BigEndian)
	}

	if !utf8.Valid(content) {
		return "", errors.WithStack(ErrNotText)
	}
	return string(content), nil
}

func decodeUTF16(content []byte, endian unicode.Endianness) (string, error) {
	out, err := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder().Bytes(content)
	if err != nil {
		return "", errors.Wrap(ErrNotText, err.Error())
	}
	return string(out), nil
}
