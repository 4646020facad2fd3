//go:build api

package testdb

import (
	"context"
	"fmt"
	"time"

	"movieflix/internal/storage"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	minioUser     = "movieflix"
	minioPassword = "movieflix-secret"
	// PosterBucket is the bucket the test server stores posters in.
	PosterBucket = "posters"
)

// MinIOContainer runs MinIO and exposes the poster store backed by it.
type MinIOContainer struct {
	Container testcontainers.Container
	Endpoint  string
	// Posters is the same store type the server uses in production.
	Posters *storage.S3Client

	client *s3.Client
}

// SetupMinIO starts MinIO and creates the poster bucket through storage.S3Client.
func SetupMinIO(ctx context.Context) (*MinIOContainer, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "minio/minio:latest",
			ExposedPorts: []string{"9000/tcp"},
			Env: map[string]string{
				"MINIO_ROOT_USER":     minioUser,
				"MINIO_ROOT_PASSWORD": minioPassword,
			},
			Cmd:        []string{"server", "/data"},
			WaitingFor: wait.ForHTTP("/minio/health/ready").WithPort("9000/tcp"),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("start minio: %w", err)
	}

	endpoint, err := container.PortEndpoint(ctx, "9000/tcp", "http")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	client := s3.New(s3.Options{
		Region:       "us-east-1",
		BaseEndpoint: aws.String(endpoint),
		Credentials:  credentials.NewStaticCredentialsProvider(minioUser, minioPassword, ""),
		UsePathStyle: true,
	})

	posters := storage.NewS3ClientFromClient(client, PosterBucket)
	if err := posters.EnsureBucket(ctx); err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("create bucket: %w", err)
	}

	return &MinIOContainer{
		Container: container,
		Endpoint:  endpoint,
		Posters:   posters,
		client:    client,
	}, nil
}

// Cleanup terminates the MinIO container.
func (mc *MinIOContainer) Cleanup(ctx context.Context) error {
	if mc.Container != nil {
		return mc.Container.Terminate(ctx)
	}
	return nil
}

// ClearBucket removes every stored poster.
func (mc *MinIOContainer) ClearBucket(ctx context.Context) error {
	pages := s3.NewListObjectsV2Paginator(mc.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(PosterBucket),
	})

	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return err
		}
		if len(page.Contents) == 0 {
			continue
		}

		ids := make([]types.ObjectIdentifier, 0, len(page.Contents))
		for _, obj := range page.Contents {
			ids = append(ids, types.ObjectIdentifier{Key: obj.Key})
		}

		if _, err := mc.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
			Bucket: aws.String(PosterBucket),
			Delete: &types.Delete{Objects: ids, Quiet: aws.Bool(true)},
		}); err != nil {
			return err
		}
	}
	return nil
}

// ObjectExists reports whether a poster with that name is stored.
func (mc *MinIOContainer) ObjectExists(ctx context.Context, name string) bool {
	exists, err := mc.Posters.Exists(ctx, name)
	return err == nil && exists
}
