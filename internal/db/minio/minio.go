// Package minio stores small documents (the run-state snapshot) in a single MinIO bucket.
package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/minio/minio-go/v7"
)

var ErrObjectNotFound = errors.New("object not found")

// IMinioCl is the part of *minio.Client the package calls.
//
//go:generate mockgen -source=minio.go -destination=../../../mocks/db/minio/minio.go -package=mocks
type IMinioCl interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) (err error)
	PutObject(ctx context.Context, bucketName string, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (info minio.UploadInfo, err error)
	GetObject(ctx context.Context, bucketName string, objectName string, opts minio.GetObjectOptions) (*minio.Object, error)
	RemoveObject(ctx context.Context, bucketName string, objectName string, opts minio.RemoveObjectOptions) error
}

// IMinioClient operates on one configured bucket.
//
//go:generate mockgen -source=minio.go -destination=../../../mocks/db/minio/minio.go -package=mocks
type IMinioClient interface {
	// CreateBucket is a no-op when the bucket exists.
	CreateBucket(ctx context.Context) error
	FileAdd(ctx context.Context, fileName string, data []byte) error
	// FileGet returns ErrObjectNotFound for a missing object.
	FileGet(ctx context.Context, fileName string) ([]byte, error)
	FileRm(ctx context.Context, fileName string) error
}

type MinioClient struct {
	IMinioCl
	bucket string
}

func (cl *MinioClient) CreateBucket(ctx context.Context) error {
	exists, err := cl.BucketExists(ctx, cl.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence for bucket '%s': %w", cl.bucket, err)
	}
	if exists {
		return nil
	}

	if err := cl.MakeBucket(ctx, cl.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket '%s': %w", cl.bucket, err)
	}
	return nil
}

func (cl *MinioClient) FileAdd(ctx context.Context, fileName string, data []byte) error {
	reader := bytes.NewReader(data)
	_, err := cl.PutObject(ctx, cl.bucket, fileName, reader, reader.Size(), minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return fmt.Errorf("failed to upload file '%s' to bucket '%s': %w", fileName, cl.bucket, err)
	}
	return nil
}

func (cl *MinioClient) FileGet(ctx context.Context, fileName string) ([]byte, error) {
	obj, err := cl.GetObject(ctx, cl.bucket, fileName, minio.GetObjectOptions{})
	if err != nil {
		return nil, cl.wrapGetErr(fileName, err)
	}
	defer obj.Close()
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, cl.wrapGetErr(fileName, err)
	}
	return data, nil
}

func (cl *MinioClient) wrapGetErr(fileName string, err error) error {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, fileName)
	}
	return fmt.Errorf("failed to read file '%s' from bucket '%s': %w", fileName, cl.bucket, err)
}

// FileRm removes the object, versions included.
func (cl *MinioClient) FileRm(ctx context.Context, fileName string) error {
	err := cl.RemoveObject(ctx, cl.bucket, fileName, minio.RemoveObjectOptions{ForceDelete: true})
	if err != nil {
		return fmt.Errorf("failed to remove file '%s' from bucket '%s': %w", fileName, cl.bucket, err)
	}
	return nil
}

var _ IMinioClient = (*MinioClient)(nil)

func NewMinioClient(iCl IMinioCl, bucketName string) *MinioClient {
	return &MinioClient{
		IMinioCl: iCl,
		bucket:   bucketName,
	}
}
