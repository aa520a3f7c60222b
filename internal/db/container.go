package db

import (
	"context"
	"fmt"

	"github.com/amirdaaee/TGSaver/internal/db/minio"
	"github.com/amirdaaee/TGSaver/internal/db/mongo"
)

// IDbContainer bundles the stores. The MinIO container is nil unless the
// minio state backend is configured.
//
//go:generate mockgen -source=container.go -destination=../../mocks/db/container.go -package=mocks
type IDbContainer interface {
	GetMongoContainer() mongo.IMongoContainer
	GetMinioContainer() minio.IMinioContainer
	Close(ctx context.Context) error
}

type DbContainer struct {
	mongoContainer mongo.IMongoContainer
	minioContainer minio.IMinioContainer
}

var _ IDbContainer = (*DbContainer)(nil)

func (c *DbContainer) GetMongoContainer() mongo.IMongoContainer {
	return c.mongoContainer
}

func (c *DbContainer) GetMinioContainer() minio.IMinioContainer {
	return c.minioContainer
}

// Close disconnects mongo; the minio client holds no connection.
func (c *DbContainer) Close(ctx context.Context) error {
	if c.mongoContainer == nil {
		return nil
	}
	if err := c.mongoContainer.GetMongoClient().Disconnect(ctx); err != nil {
		return fmt.Errorf("can not disconnect mongo: %w", err)
	}
	return nil
}

func NewDbContainer(mongoContainer mongo.IMongoContainer, minioContainer minio.IMinioContainer) IDbContainer {
	return &DbContainer{mongoContainer: mongoContainer, minioContainer: minioContainer}
}
