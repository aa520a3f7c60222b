// Package facade provides generic CRUD over the bot collections and the profile, quota and ban lookups built on it.
package facade

import (
	"context"
	"fmt"

	mngo "github.com/amirdaaee/TGSaver/internal/db/mongo"
	"github.com/amirdaaee/TGSaver/internal/log"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// ICrud supplies the collection of T and the hooks run around writes.
// Post hooks run detached; their errors are only logged.
//
//go:generate mockgen -source=facade.go -destination=../../mocks/facade/facade.go -package=mocks
type ICrud[T any] interface {
	PreCreate(ctx context.Context, doc *T) error
	PostCreate(ctx context.Context, doc *T) error
	PreDelete(ctx context.Context, doc *T) error
	PostDelete(ctx context.Context, doc *T) error
	GetCollection() mngo.ICollection[T]
}

//go:generate mockgen -source=facade.go -destination=../../mocks/facade/facade.go -package=mocks
type IFacade[T any] interface {
	CreateOne(ctx context.Context, doc *T) (*T, error)
	// DeleteOne removes the single document matching filter; zero or several matches are errors.
	DeleteOne(ctx context.Context, filter bson.D) (*T, error)
	Read(ctx context.Context, filter bson.D) ([]*T, error)
	Exists(ctx context.Context, filter bson.D) (bool, error)
	GetCRD() ICrud[T]
}

type BaseFacade[T any] struct {
	crd ICrud[T]
}

var _ IFacade[any] = (*BaseFacade[any])(nil)

func (f *BaseFacade[T]) CreateOne(ctx context.Context, doc *T) (*T, error) {
	ll := f.getLogger("CreateOne")
	if doc == nil {
		return nil, fmt.Errorf("document is nil")
	}
	if err := f.crd.PreCreate(ctx, doc); err != nil {
		return nil, fmt.Errorf("error pre-creating hook: %w", err)
	}
	if _, err := f.getCollection().Creator().InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("error creating document: %w", err)
	}
	ll.Debug("document created")
	f.runPost(ctx, ll, "post-creating", f.crd.PostCreate, doc)
	return doc, nil
}

func (f *BaseFacade[T]) Read(ctx context.Context, filter bson.D) ([]*T, error) {
	docs, err := f.getCollection().Finder().Filter(filter).Find(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading documents: %w", err)
	}
	return docs, nil
}

// Exists counts instead of decoding; the ban gate runs it on every message.
func (f *BaseFacade[T]) Exists(ctx context.Context, filter bson.D) (bool, error) {
	if filter == nil {
		return false, fmt.Errorf("exists: filter is nil")
	}
	n, err := f.getCollection().Finder().Filter(filter).Count(ctx)
	if err != nil {
		return false, fmt.Errorf("error counting documents: %w", err)
	}
	return n > 0, nil
}

func (f *BaseFacade[T]) DeleteOne(ctx context.Context, filter bson.D) (*T, error) {
	ll := f.getLogger("DeleteOne")
	if filter == nil {
		return nil, fmt.Errorf("delete: filter is nil")
	}
	fnd := f.getCollection().Finder().Filter(filter)
	c, err := fnd.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting existing documents: %w", err)
	}
	switch {
	case c == 0:
		return nil, fmt.Errorf("delete: %w", ErrNoDocumentsFound)
	case c > 1:
		return nil, fmt.Errorf("delete: %w", ErrMultipleDocumentsFound)
	}
	doc, err := fnd.FindOne(ctx)
	if err != nil {
		return nil, fmt.Errorf("error finding document to delete: %w", err)
	}
	if err := f.crd.PreDelete(ctx, doc); err != nil {
		return nil, fmt.Errorf("error pre-deleting hook: %w", err)
	}
	if _, err = f.getCollection().Deleter().Filter(filter).DeleteOne(ctx); err != nil {
		return nil, fmt.Errorf("error deleting document: %w", err)
	}
	ll.Debug("document deleted")
	f.runPost(ctx, ll, "post-deleting", f.crd.PostDelete, doc)
	return doc, nil
}

func (f *BaseFacade[T]) GetCRD() ICrud[T] {
	return f.crd
}

// runPost outlives the handler that triggered the write.
func (f *BaseFacade[T]) runPost(ctx context.Context, ll *logrus.Entry, name string, hook func(context.Context, *T) error, doc *T) {
	ctx = context.WithoutCancel(ctx)
	go func() {
		if err := hook(ctx, doc); err != nil {
			ll.WithError(err).Errorf("error in %s hook", name)
		}
	}()
}

func (f *BaseFacade[T]) getLogger(fn string) *logrus.Entry {
	return log.GetLogger(log.FacadeModule).WithField("func", fmt.Sprintf("%T.%s", f, fn))
}

func (f *BaseFacade[T]) getCollection() mngo.ICollection[T] {
	return f.crd.GetCollection()
}

func NewFacade[T any](crd ICrud[T]) IFacade[T] {
	return &BaseFacade[T]{crd: crd}
}
