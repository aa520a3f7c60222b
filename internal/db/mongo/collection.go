package mongo

import (
	"github.com/chenmingyong0423/go-mongox/v2"
	"github.com/chenmingyong0423/go-mongox/v2/aggregator"
	"github.com/chenmingyong0423/go-mongox/v2/creator"
	"github.com/chenmingyong0423/go-mongox/v2/deleter"
	"github.com/chenmingyong0423/go-mongox/v2/finder"
	"github.com/chenmingyong0423/go-mongox/v2/updater"
)

type CollectionNameType string

const (
	USER_COLLECTION_NAME    CollectionNameType = "users"
	PREMIUM_COLLECTION_NAME CollectionNameType = "premium_users"
	QUOTA_COLLECTION_NAME   CollectionNameType = "batch_quota"
	BANNED_COLLECTION_NAME  CollectionNameType = "banned_users"
)

// ICollection exposes the go-mongox operation builders of one collection.
// Profiles are read both typed (UserDoc) and raw (bson.M) through it.
//
//go:generate mockgen -source=collection.go -destination=../../../mocks/db/mongo/collection.go -package=mocks
type ICollection[T any] interface {
	Aggregator() aggregator.IAggregator[T]
	Creator() creator.ICreator[T]
	Deleter() deleter.IDeleter[T]
	Finder() finder.IFinder[T]
	Updater() updater.IUpdater[T]
}

// Collection wraps a go-mongox Collection.
type Collection[T any] struct {
	xColl *mongox.Collection[T]
}

// Compile-time check to ensure Collection implements ICollection
var _ ICollection[any] = (*Collection[any])(nil)

func (c *Collection[T]) Aggregator() aggregator.IAggregator[T] {
	return c.xColl.Aggregator()
}

func (c *Collection[T]) Creator() creator.ICreator[T] {
	return c.xColl.Creator()
}

func (c *Collection[T]) Deleter() deleter.IDeleter[T] {
	return c.xColl.Deleter()
}

func (c *Collection[T]) Finder() finder.IFinder[T] {
	return c.xColl.Finder()
}

func (c *Collection[T]) Updater() updater.IUpdater[T] {
	return c.xColl.Updater()
}

func newCollection[T any](db *Database, name CollectionNameType) ICollection[T] {
	return &Collection[T]{xColl: mongox.NewCollection[T](db.Database, string(name))}
}
