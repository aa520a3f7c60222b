package facade

import (
	"context"
	"fmt"
	"time"

	"github.com/amirdaaee/TGSaver/internal/db"
	mngo "github.com/amirdaaee/TGSaver/internal/db/mongo"
	"github.com/amirdaaee/TGSaver/internal/log"
	"github.com/amirdaaee/TGSaver/internal/types"
	"github.com/chenmingyong0423/go-mongox/v2/builder/query"
)

type BannedCrud struct {
	dbContainer db.IDbContainer
	now         func() time.Time
}

var _ ICrud[types.BannedUserDoc] = (*BannedCrud)(nil)

// PreCreate refuses duplicates and stamps BannedAt.
func (c *BannedCrud) PreCreate(ctx context.Context, doc *types.BannedUserDoc) error {
	if doc.UserID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidUserID, doc.UserID)
	}
	n, err := c.GetCollection().Finder().Filter(query.Eq(types.UserDoc__UserIDField, doc.UserID)).Count(ctx)
	if err != nil {
		return fmt.Errorf("error counting bans: %w", err)
	}
	if n > 0 {
		return ErrAlreadyBanned
	}
	if doc.BannedAt == 0 {
		doc.BannedAt = c.now().Unix()
	}
	return nil
}
func (c *BannedCrud) PostCreate(ctx context.Context, doc *types.BannedUserDoc) error {
	log.GetLogger(log.FacadeModule).Infof("user %d banned by %d", doc.UserID, doc.BannedBy)
	return nil
}
func (c *BannedCrud) PreDelete(ctx context.Context, doc *types.BannedUserDoc) error  { return nil }
func (c *BannedCrud) PostDelete(ctx context.Context, doc *types.BannedUserDoc) error { return nil }
func (c *BannedCrud) GetCollection() mngo.ICollection[types.BannedUserDoc] {
	return c.dbContainer.GetMongoContainer().GetBannedCollection()
}

func NewBannedCrud(dbContainer db.IDbContainer) *BannedCrud {
	return &BannedCrud{dbContainer: dbContainer, now: time.Now}
}

// IBanList answers the ban gate and serves the /ban and /unban commands.
//
//go:generate mockgen -source=banned.go -destination=../../mocks/facade/banned.go -package=mocks
type IBanList interface {
	IsBanned(ctx context.Context, userID int64) (bool, error)
	Ban(ctx context.Context, userID, by int64, reason string) error
	Unban(ctx context.Context, userID int64) error
}

type BanList struct {
	fac IFacade[types.BannedUserDoc]
}

var _ IBanList = (*BanList)(nil)

func (b *BanList) IsBanned(ctx context.Context, userID int64) (bool, error) {
	return b.fac.Exists(ctx, query.Eq(types.UserDoc__UserIDField, userID))
}

func (b *BanList) Ban(ctx context.Context, userID, by int64, reason string) error {
	_, err := b.fac.CreateOne(ctx, &types.BannedUserDoc{UserID: userID, BannedBy: by, Reason: reason})
	return err
}

func (b *BanList) Unban(ctx context.Context, userID int64) error {
	_, err := b.fac.DeleteOne(ctx, query.Eq(types.UserDoc__UserIDField, userID))
	return err
}

func NewBanList(fac IFacade[types.BannedUserDoc]) *BanList {
	return &BanList{fac: fac}
}
