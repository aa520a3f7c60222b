package mongo

import (
	"context"

	"github.com/chenmingyong0423/go-mongox/v2"
)

// IMongoClient is the connection handle; cmd disconnects it on shutdown.
//
//go:generate mockgen -source=mongo.go -destination=../../../mocks/db/mongo/mongo.go -package=mocks
type IMongoClient interface {
	Disconnect(context.Context) error
	NewDatabase(string) IDatabase
}

type MongoClient struct {
	xCl *mongox.Client
}

func (c *MongoClient) Disconnect(ctx context.Context) error {
	return c.xCl.Disconnect(ctx)
}

func (c *MongoClient) NewDatabase(name string) IDatabase {
	return &Database{Database: c.xCl.NewDatabase(name)}
}

var _ IMongoClient = (*MongoClient)(nil)

// IDatabase is kept opaque; collections are reached through IMongoContainer.
type IDatabase interface{}

type Database struct {
	*mongox.Database
}

var _ IDatabase = (*Database)(nil)
