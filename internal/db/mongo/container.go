package mongo

import (
	"context"
	"fmt"

	"github.com/amirdaaee/TGSaver/internal/types"
	"github.com/chenmingyong0423/go-mongox/v2"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// IMongoContainer hands out the client, database and the collections the bot reads.
//
//go:generate mockgen -source=container.go -destination=../../../mocks/db/mongo/container.go -package=mocks
type IMongoContainer interface {
	GetMongoClient() IMongoClient
	GetMongoDb() IDatabase
	GetUserCollection() ICollection[types.UserDoc]
	// GetRawUserCollection reads profiles untyped, for fields written by other tools.
	GetRawUserCollection() ICollection[bson.M]
	GetPremiumCollection() ICollection[types.PremiumUserDoc]
	GetQuotaCollection() ICollection[types.BatchQuotaDoc]
	GetBannedCollection() ICollection[types.BannedUserDoc]
}

type MongoContainer struct {
	cl          *mongo.Client
	mongoClient *MongoClient
	db          *Database
}

func (c *MongoContainer) GetMongoClient() IMongoClient {
	return c.mongoClient
}

func (c *MongoContainer) GetMongoDb() IDatabase {
	return c.db
}

func (c *MongoContainer) GetUserCollection() ICollection[types.UserDoc] {
	return newCollection[types.UserDoc](c.db, USER_COLLECTION_NAME)
}

func (c *MongoContainer) GetRawUserCollection() ICollection[bson.M] {
	return newCollection[bson.M](c.db, USER_COLLECTION_NAME)
}

func (c *MongoContainer) GetPremiumCollection() ICollection[types.PremiumUserDoc] {
	return newCollection[types.PremiumUserDoc](c.db, PREMIUM_COLLECTION_NAME)
}

func (c *MongoContainer) GetQuotaCollection() ICollection[types.BatchQuotaDoc] {
	return newCollection[types.BatchQuotaDoc](c.db, QUOTA_COLLECTION_NAME)
}

func (c *MongoContainer) GetBannedCollection() ICollection[types.BannedUserDoc] {
	return newCollection[types.BannedUserDoc](c.db, BANNED_COLLECTION_NAME)
}

var _ IMongoContainer = (*MongoContainer)(nil)

// MongoContainerConfig holds configuration for connecting to a MongoDB instance.
type MongoContainerConfig struct {
	// Endpoint is the MongoDB server URI
	Endpoint string
	// DbName is the name of the database to use
	DbName string
}

// Validate checks if the MongoContainerConfig has all required fields set.
func (c *MongoContainerConfig) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("mongo endpoint is required")
	}
	if c.DbName == "" {
		return fmt.Errorf("mongo database name is required")
	}
	return nil
}

// NewMongoContainer connects to MongoDB and, when ping is set, checks the primary is reachable.
func NewMongoContainer(ctx context.Context, config MongoContainerConfig, ping bool) (IMongoContainer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	cl, err := mongo.Connect(options.Client().ApplyURI(config.Endpoint))
	if err != nil {
		return nil, fmt.Errorf("error creating mongo client: %w", err)
	}
	if ping {
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			if disconnectErr := cl.Disconnect(ctx); disconnectErr != nil {
				logrus.Warnf("Failed to disconnect client after ping failure: %v", disconnectErr)
			}
			return nil, fmt.Errorf("error pinging mongo: %w", err)
		}
	}

	mCl := MongoClient{
		xCl: mongox.NewClient(cl, &mongox.Config{}),
	}
	return &MongoContainer{
		cl:          cl,
		mongoClient: &mCl,
		db:          mCl.NewDatabase(config.DbName).(*Database),
	}, nil
}
