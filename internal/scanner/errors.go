package scanner

import (
	"fmt"
	"strings"
)

// FileAccessError reports that the target file is missing, unreadable, or
// not permitted to be read.
type FileAccessError struct {
	Path string // File that could not be read
	Err  error  // Underlying os error
}

// Error implements the error interface for FileAccessError.
func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying os error so errors.Is(err, fs.ErrNotExist) works.
func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// DecodingError reports that the target file is not valid UTF-8.
type DecodingError struct {
	Path   string // File being decoded (empty for in-memory content)
	Offset int    // Byte offset of the first invalid sequence
}

// Error implements the error interface for DecodingError.
func (e *DecodingError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid UTF-8")
	if e.Path != "" {
		sb.WriteString(fmt.Sprintf(" in %s", e.Path))
	}
	sb.WriteString(fmt.Sprintf(" at byte %d", e.Offset))
	return sb.String()
}
