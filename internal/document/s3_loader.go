package document

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog"
)

// S3Options configures the S3 document loader.
type S3Options struct {
	Bucket string
	Region string

	// Endpoint overrides the AWS endpoint for S3-compatible stores such as
	// MinIO. Path-style addressing is used when it is set.
	Endpoint string
}

// s3Loader implements Loader for documents stored in AWS S3.
type s3Loader struct {
	client *s3.Client
	bucket string
	logger zerolog.Logger
}

// NewS3Loader creates a new S3-based document loader.
func NewS3Loader(ctx context.Context, opts S3Options, logger zerolog.Logger) (Loader, error) {
	logger = logger.With().Str("component", "s3-loader").Logger()

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(opts.Region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	logger.Info().
		Str("bucket", opts.Bucket).
		Str("region", opts.Region).
		Str("endpoint", opts.Endpoint).
		Msg("S3 loader initialised")

	return &s3Loader{
		client: client,
		bucket: opts.Bucket,
		logger: logger,
	}, nil
}

// Load reads a JSON document from S3. The key parameter is the full object
// key, including any prefix.
func (l *s3Loader) Load(ctx context.Context, key string, v any) error {
	l.logger.Debug().
		Str("bucket", l.bucket).
		Str("key", key).
		Msg("loading document from S3")

	result, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			l.logger.Warn().
				Str("bucket", l.bucket).
				Str("key", key).
				Msg("document not found in S3")
			return fmt.Errorf("%w: s3://%s/%s", ErrNotFound, l.bucket, key)
		}
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", key).
			Msg("failed to get object from S3")
		return fmt.Errorf("failed to get object from S3 (bucket=%s, key=%s): %w", l.bucket, key, err)
	}
	defer result.Body.Close()

	if err := decode(result.Body, key, v); err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", l.bucket).
			Str("key", key).
			Msg("failed to decode document from S3")
		return err
	}

	l.logger.Info().
		Str("bucket", l.bucket).
		Str("key", key).
		Msg("document loaded from S3")

	return nil
}

// fallbackLoader tries S3 first, then falls back to the local file system.
type fallbackLoader struct {
	s3Loader   Loader
	fileLoader Loader
	s3Prefix   string
	s3Enabled  bool
	logger     zerolog.Logger
}

// NewFallbackLoader creates a loader that tries S3 first, then falls back to local file system.
// If s3Loader is nil, it will only use the file loader.
func NewFallbackLoader(s3Loader, fileLoader Loader, s3Prefix string, s3Enabled bool, logger zerolog.Logger) Loader {
	return &fallbackLoader{
		s3Loader:   s3Loader,
		fileLoader: fileLoader,
		s3Prefix:   s3Prefix,
		s3Enabled:  s3Enabled,
		logger:     logger.With().Str("component", "fallback-loader").Logger(),
	}
}

// Load reads from S3 under s3Prefix+path, then from path on disk.
// A document that exists in S3 but fails to decode is not retried locally.
func (l *fallbackLoader) Load(ctx context.Context, path string, v any) error {
	if l.s3Enabled && l.s3Loader != nil {
		s3Key := l.s3Prefix + path

		err := l.s3Loader.Load(ctx, s3Key, v)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrMalformed) {
			return err
		}

		l.logger.Warn().
			Err(err).
			Str("s3_key", s3Key).
			Msg("failed to load from S3, falling back to local file system")
	} else {
		l.logger.Debug().
			Bool("s3_enabled", l.s3Enabled).
			Bool("has_s3_loader", l.s3Loader != nil).
			Msg("S3 disabled or not configured, using local file system")
	}

	return l.fileLoader.Load(ctx, path, v)
}
