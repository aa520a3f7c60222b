package minio

import (
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
)

//go:generate mockgen -source=container.go -destination=../../../mocks/db/minio/container.go -package=mocks

// IMinioContainer gives access to the bucket-bound client.
type IMinioContainer interface {
	GetMinioClient() IMinioClient
}

type MinioContainer struct {
	cl          *minio.Client
	minioClient *MinioClient
}

func (c *MinioContainer) GetMinioClient() IMinioClient {
	return c.minioClient
}

var _ IMinioContainer = (*MinioContainer)(nil)

// MinioContainerConfig holds the connection parameters of a MinIO container.
type MinioContainerConfig struct {
	// Endpoint is host:port of the server, without scheme
	Endpoint string
	Opts     *minio.Options
	Bucket   string
}

func (c *MinioContainerConfig) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("minio endpoint is required")
	}
	if c.Bucket == "" {
		return fmt.Errorf("minio bucket is required")
	}
	return nil
}

// NewMinioContainer builds the client and, when createBucket is set, makes sure the bucket exists.
func NewMinioContainer(ctx context.Context, config MinioContainerConfig, createBucket bool) (IMinioContainer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("error creating minio client: %w", err)
	}
	cl, err := minio.New(config.Endpoint, config.Opts)
	if err != nil {
		return nil, fmt.Errorf("error creating minio client: %w", err)
	}
	mCl := NewMinioClient(cl, config.Bucket)
	if createBucket {
		err = mCl.CreateBucket(ctx)
		if err != nil {
			return nil, fmt.Errorf("error creating minio bucket: %w", err)
		}
	}
	return &MinioContainer{
		cl:          cl,
		minioClient: mCl,
	}, nil
}
