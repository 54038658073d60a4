package document

import (
	"bytes"
	"context"
	"testing"
	"time"

	"compute-sales/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	minioUser     = "minioadmin"
	minioPassword = "minioadmin"
	testBucket    = "sales-inputs"
)

// setupMinIO starts a MinIO container, creates testBucket and uploads objects.
// It returns the S3 endpoint of the container.
func setupMinIO(t *testing.T, objects map[string]string) string {
	t.Helper()

	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "minio/minio:RELEASE.2024-01-16T16-07-38Z",
			ExposedPorts: []string{"9000/tcp"},
			Cmd:          []string{"server", "/data"},
			Env: map[string]string{
				"MINIO_ROOT_USER":     minioUser,
				"MINIO_ROOT_PASSWORD": minioPassword,
			},
			WaitingFor: wait.ForHTTP("/minio/health/live").
				WithPort("9000/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("failed to start minio container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate minio container: %v", err)
		}
	})

	endpoint, err := container.PortEndpoint(ctx, "9000/tcp", "http")
	require.NoError(t, err)

	t.Setenv("AWS_ACCESS_KEY_ID", minioUser)
	t.Setenv("AWS_SECRET_ACCESS_KEY", minioPassword)

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-1"))
	require.NoError(t, err)

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})

	_, err = client.CreateBucket(ctx, &s3.CreateBucketInput{Bucket: aws.String(testBucket)})
	require.NoError(t, err)

	for key, body := range objects {
		_, err = client.PutObject(ctx, &s3.PutObjectInput{
			Bucket: aws.String(testBucket),
			Key:    aws.String(key),
			Body:   bytes.NewReader([]byte(body)),
		})
		require.NoError(t, err)
	}

	return endpoint
}

func TestS3Loader_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping container-backed S3 test in short mode")
	}

	endpoint := setupMinIO(t, map[string]string{
		"inputs/prices.json": `[{"title": "Widget", "price": 10.0}]`,
		"inputs/broken.json": `[{"title": "Widget"`,
	})

	ctx := context.Background()
	loader, err := NewS3Loader(ctx, S3Options{
		Bucket:   testBucket,
		Region:   "us-east-1",
		Endpoint: endpoint,
	}, zerolog.Nop())
	require.NoError(t, err)

	t.Run("Existing object", func(t *testing.T) {
		var records []model.PriceRecord
		err := loader.Load(ctx, "inputs/prices.json", &records)

		require.NoError(t, err)
		assert.Equal(t, []model.PriceRecord{{Title: "Widget", Price: 10.0}}, records)
	})

	t.Run("Missing object", func(t *testing.T) {
		var records []model.PriceRecord
		err := loader.Load(ctx, "inputs/missing.json", &records)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Malformed object", func(t *testing.T) {
		var records []model.PriceRecord
		err := loader.Load(ctx, "inputs/broken.json", &records)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMalformed)
	})

	t.Run("Fallback reads prefixed key", func(t *testing.T) {
		fallback := NewFallbackLoader(loader, unexpectedLoader(t, "file"), "inputs/", true, zerolog.Nop())

		var records []model.PriceRecord
		err := fallback.Load(ctx, "prices.json", &records)

		require.NoError(t, err)
		assert.Len(t, records, 1)
	})
}
