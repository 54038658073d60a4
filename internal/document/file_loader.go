package document

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for documents on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based document loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "file-loader").Logger(),
	}
}

// Load reads a JSON document (optionally gzipped) from disk.
func (l *fileLoader) Load(ctx context.Context, path string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	l.logger.Debug().Str("file", path).Msg("loading document")

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Error().Str("file", path).Msg("document not found")
			return fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open document")
		return fmt.Errorf("failed to open document %s: %w", path, err)
	}
	defer file.Close()

	if err := decode(file, path, v); err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to decode document")
		return err
	}

	l.logger.Info().Str("file", path).Msg("document loaded")

	return nil
}
