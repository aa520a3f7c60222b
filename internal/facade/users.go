package facade

import (
	"context"
	"fmt"

	"github.com/amirdaaee/TGSaver/internal/db"
	mngo "github.com/amirdaaee/TGSaver/internal/db/mongo"
	"github.com/amirdaaee/TGSaver/internal/types"
)

// UserCrud backs the users collection. Profiles are written by the settings
// and login flows; the bot only reads them and lists recipients.
type UserCrud struct {
	dbContainer db.IDbContainer
}

var _ ICrud[types.UserDoc] = (*UserCrud)(nil)

func (c *UserCrud) PreCreate(ctx context.Context, doc *types.UserDoc) error {
	if doc.UserID <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidUserID, doc.UserID)
	}
	return nil
}
func (c *UserCrud) PostCreate(ctx context.Context, doc *types.UserDoc) error { return nil }
func (c *UserCrud) PreDelete(ctx context.Context, doc *types.UserDoc) error  { return nil }
func (c *UserCrud) PostDelete(ctx context.Context, doc *types.UserDoc) error { return nil }
func (c *UserCrud) GetCollection() mngo.ICollection[types.UserDoc] {
	return c.dbContainer.GetMongoContainer().GetUserCollection()
}

func NewUserCrud(dbContainer db.IDbContainer) *UserCrud {
	return &UserCrud{dbContainer: dbContainer}
}
