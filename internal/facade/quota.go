package facade

import (
	"context"
	"errors"
	"fmt"
	"time"

	mngo "github.com/amirdaaee/TGSaver/internal/db/mongo"
	"github.com/amirdaaee/TGSaver/internal/log"
	"github.com/amirdaaee/TGSaver/internal/types"
	"github.com/chenmingyong0423/go-mongox/v2/builder/query"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// IQuotaCounter counts free batch starts per user and day.
//
//go:generate mockgen -source=quota.go -destination=../../mocks/facade/quota.go -package=mocks
type IQuotaCounter interface {
	Incr(ctx context.Context, userID int64, now time.Time) (int64, error)
}

// IQuotaGate answers tier questions for the batch orchestrator.
//
//go:generate mockgen -source=quota.go -destination=../../mocks/facade/quota.go -package=mocks
type IQuotaGate interface {
	IsPremium(ctx context.Context, userID int64) (bool, error)
	// ConsumeFreeBatchQuota takes one unit of today's allowance; false once it is used up.
	ConsumeFreeBatchQuota(ctx context.Context, userID int64, dailyLimit int) (bool, error)
	// TierLimit is the largest batch the user may request.
	TierLimit(ctx context.Context, userID int64) (int, error)
}

type QuotaLimits struct {
	FreemiumLimit int
	PremiumLimit  int
}

type QuotaGate struct {
	premium mngo.ICollection[types.PremiumUserDoc]
	counter IQuotaCounter
	limits  QuotaLimits
	now     func() time.Time
}

var _ IQuotaGate = (*QuotaGate)(nil)

func (q *QuotaGate) IsPremium(ctx context.Context, userID int64) (bool, error) {
	doc, err := q.premium.Finder().Filter(query.Eq(types.UserDoc__UserIDField, userID)).FindOne(ctx)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("error reading premium of %d: %w", userID, err)
	}
	return doc.Active(q.now()), nil
}

func (q *QuotaGate) ConsumeFreeBatchQuota(ctx context.Context, userID int64, dailyLimit int) (bool, error) {
	ll := q.getLogger("ConsumeFreeBatchQuota")
	if dailyLimit <= 0 {
		return false, nil
	}
	n, err := q.counter.Incr(ctx, userID, q.now())
	if err != nil {
		return false, fmt.Errorf("error counting quota of %d: %w", userID, err)
	}
	ll.Debugf("user %d used %d/%d", userID, n, dailyLimit)
	return n <= int64(dailyLimit), nil
}

func (q *QuotaGate) TierLimit(ctx context.Context, userID int64) (int, error) {
	premium, err := q.IsPremium(ctx, userID)
	if err != nil {
		return q.limits.FreemiumLimit, err
	}
	if premium {
		return q.limits.PremiumLimit, nil
	}
	return q.limits.FreemiumLimit, nil
}

func (q *QuotaGate) getLogger(fn string) *logrus.Entry {
	return log.GetLogger(log.FacadeModule).WithField("func", fmt.Sprintf("%T.%s", q, fn))
}

// NewQuotaGate falls back to a Mongo day counter when counter is nil.
func NewQuotaGate(mongoContainer mngo.IMongoContainer, counter IQuotaCounter, limits QuotaLimits) *QuotaGate {
	if counter == nil {
		counter = NewMongoQuotaCounter(mongoContainer.GetQuotaCollection())
	}
	return &QuotaGate{
		premium: mongoContainer.GetPremiumCollection(),
		counter: counter,
		limits:  limits,
		now:     time.Now,
	}
}

// MongoQuotaCounter keeps one batch_quota document per user and UTC day.
type MongoQuotaCounter struct {
	coll mngo.ICollection[types.BatchQuotaDoc]
}

var _ IQuotaCounter = (*MongoQuotaCounter)(nil)

func (c *MongoQuotaCounter) Incr(ctx context.Context, userID int64, now time.Time) (int64, error) {
	filter := bson.D{
		{Key: types.UserDoc__UserIDField, Value: userID},
		{Key: types.QuotaDoc__DayField, Value: types.QuotaDay(now)},
	}
	inc := bson.D{{Key: "$inc", Value: bson.D{{Key: types.QuotaDoc__CountField, Value: 1}}}}
	if _, err := c.coll.Updater().Filter(filter).Updates(inc).UpdateOne(ctx, options.UpdateOne().SetUpsert(true)); err != nil {
		return 0, fmt.Errorf("error incrementing quota: %w", err)
	}
	doc, err := c.coll.Finder().Filter(filter).FindOne(ctx)
	if err != nil {
		return 0, fmt.Errorf("error reading quota: %w", err)
	}
	return int64(doc.Count), nil
}

func NewMongoQuotaCounter(coll mngo.ICollection[types.BatchQuotaDoc]) *MongoQuotaCounter {
	return &MongoQuotaCounter{coll: coll}
}
