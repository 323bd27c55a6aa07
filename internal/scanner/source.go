// Package scanner locates duplicated declarations in the account controller source.
//
// The scan is a single top-to-bottom pass over the lines of one file, looking for a
// handful of literal markers. Nothing is parsed and nothing is modified.
package scanner

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"unicode/utf8"
)

// DefaultTargetPath is the controller file the command scans.
const DefaultTargetPath = `C:\Users\ahmed\source\repos\AhmedTyson\Tafsilk\TafsilkPlatform.Web\Controllers\AccountController.cs`

// Source is the loaded text of the target file, split into lines.
type Source struct {
	Path  string
	Lines []string
}

// Load reads the file at path and splits it into lines.
// Returns *FileAccessError if the file cannot be read and *DecodingError if
// its content is not valid UTF-8.
func Load(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}

	src, err := Parse(data)
	if err != nil {
		var decErr *DecodingError
		if errors.As(err, &decErr) {
			decErr.Path = path
		}
		return nil, err
	}
	src.Path = path
	return src, nil
}

// Parse splits in-memory content into lines.
// Line endings are normalized first (\r\n and \r become \n), so a file saved
// with Windows line endings yields the same lines as one saved with Unix endings.
func Parse(data []byte) (*Source, error) {
	if !utf8.Valid(data) {
		return nil, &DecodingError{Offset: invalidOffset(data)}
	}

	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	data = bytes.ReplaceAll(data, []byte("\r"), []byte("\n"))

	return &Source{Lines: strings.Split(string(data), "\n")}, nil
}

// invalidOffset returns the byte offset of the first invalid UTF-8 sequence.
func invalidOffset(data []byte) int {
	offset := 0
	for offset < len(data) {
		r, size := utf8.DecodeRune(data[offset:])
		if r == utf8.RuneError && size == 1 {
			return offset
		}
		offset += size
	}
	return -1
}
