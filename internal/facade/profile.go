package facade

import (
	"context"
	"errors"
	"fmt"

	mngo "github.com/amirdaaee/TGSaver/internal/db/mongo"
	"github.com/amirdaaee/TGSaver/internal/log"
	"github.com/amirdaaee/TGSaver/internal/types"
	"github.com/chenmingyong0423/go-mongox/v2/builder/query"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// IProfileStore reads user profiles.
//
//go:generate mockgen -source=profile.go -destination=../../mocks/facade/profile.go -package=mocks
type IProfileStore interface {
	// Get returns nil without error for an unknown user.
	Get(ctx context.Context, userID int64) (*types.UserDoc, error)
	// GetField returns def when the profile or the key is missing.
	GetField(ctx context.Context, userID int64, key string, def any) (any, error)
	// UserIDs lists every known user, for broadcasts.
	UserIDs(ctx context.Context) ([]int64, error)
}

type ProfileStore struct {
	users IFacade[types.UserDoc]
	raw   mngo.ICollection[bson.M]
}

var _ IProfileStore = (*ProfileStore)(nil)

func (s *ProfileStore) Get(ctx context.Context, userID int64) (*types.UserDoc, error) {
	doc, err := s.users.GetCRD().GetCollection().Finder().Filter(query.Eq(types.UserDoc__UserIDField, userID)).FindOne(ctx)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading profile of %d: %w", userID, err)
	}
	return doc, nil
}

func (s *ProfileStore) GetField(ctx context.Context, userID int64, key string, def any) (any, error) {
	doc, err := s.raw.Finder().Filter(query.Eq(types.UserDoc__UserIDField, userID)).FindOne(ctx)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return def, nil
		}
		return def, fmt.Errorf("error reading profile of %d: %w", userID, err)
	}
	if doc == nil {
		return def, nil
	}
	v, ok := (*doc)[key]
	if !ok || v == nil {
		return def, nil
	}
	return v, nil
}

func (s *ProfileStore) UserIDs(ctx context.Context) ([]int64, error) {
	ll := s.getLogger("UserIDs")
	docs, err := s.users.Read(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	seen := make(map[int64]struct{}, len(docs))
	ids := make([]int64, 0, len(docs))
	for _, d := range docs {
		if d.UserID == 0 {
			continue
		}
		if _, ok := seen[d.UserID]; ok {
			continue
		}
		seen[d.UserID] = struct{}{}
		ids = append(ids, d.UserID)
	}
	ll.Debugf("%d users", len(ids))
	return ids, nil
}

func (s *ProfileStore) getLogger(fn string) *logrus.Entry {
	return log.GetLogger(log.FacadeModule).WithField("func", fmt.Sprintf("%T.%s", s, fn))
}

func NewProfileStore(users IFacade[types.UserDoc], raw mngo.ICollection[bson.M]) *ProfileStore {
	return &ProfileStore{users: users, raw: raw}
}
