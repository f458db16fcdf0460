// Package extract provides the text side of the screening pipeline:
// best-effort plain text for a source document, or an extraction error.
// Binary formats (PDF, DOCX) are out of scope here; sources are
// expected to be pre-converted to text by whatever produced them.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// FileExtractor reads resume text straight from files on disk.
type FileExtractor struct {
	// MaxBytes caps how much of a file is read; zero means the default.
	MaxBytes int64
}

const defaultMaxBytes = 4 << 20

// ExtractText returns the file's contents as plain text. Unreadable,
// empty or binary files yield an error, which the scoring pipeline
// turns into a degraded zero-score result.
func (e *FileExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	maxBytes := e.MaxBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > maxBytes {
		return "", fmt.Errorf("%s: file too large (%d bytes)", path, info.Size())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return "", fmt.Errorf("%s: file is empty", path)
	}
	if bytes.HasPrefix(data, []byte("%PDF")) {
		return "", fmt.Errorf("%s: binary PDF content, expected extracted text", path)
	}
	if !utf8.Valid(data) || bytes.IndexByte(data, 0) >= 0 {
		return "", fmt.Errorf("%s: content is not valid text", path)
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.TrimSpace(text), nil
}
