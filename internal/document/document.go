package document

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrNotFound is returned when the requested document does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrMalformed is returned when a document is not valid JSON or its
	// top-level shape does not match the decode target.
	ErrMalformed = errors.New("invalid JSON document")
)

// Loader defines the interface for loading JSON input documents.
type Loader interface {
	// Load reads the document at path and decodes it into v.
	// Errors wrap ErrNotFound or ErrMalformed where applicable.
	Load(ctx context.Context, path string, v any) error
}

// decode reads one JSON document from r into v. Names ending in ".gz" are
// gunzipped first. The whole document must be consumed; trailing data is an
// error.
func decode(r io.Reader, name string, v any) error {
	compressed := strings.HasSuffix(name, ".gz")
	if compressed {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrMalformed, name, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	data, err := io.ReadAll(r)
	if err != nil {
		if compressed {
			return fmt.Errorf("%w: %s: %v", ErrMalformed, name, err)
		}
		return fmt.Errorf("failed to read document %s: %w", name, err)
	}

	// Strip a UTF-8 byte order mark written by some editors.
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformed, name, err)
	}

	return nil
}
