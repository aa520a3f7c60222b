// Package fetcher looks source messages up through the bot or session client.
package fetcher

import (
	"context"
	"fmt"

	"github.com/amirdaaee/TGSaver/internal/link"
	"github.com/amirdaaee/TGSaver/internal/log"
	"github.com/amirdaaee/TGSaver/internal/tlg"
	"github.com/amirdaaee/TGSaver/internal/types"
	"github.com/sirupsen/logrus"
)

// Fetched is an item together with the client that can see it; file handles
// of the item are only valid through that client.
type Fetched struct {
	*types.Item
	Via tlg.IMessenger
}

// IFetcher resolves a reference to an item. A nil result with a nil error means
// the message is gone or not accessible.
//
//go:generate mockgen -source=fetcher.go -destination=../../mocks/fetcher/fetcher.go -package=mocks
type IFetcher interface {
	Fetch(ctx context.Context, bot, session tlg.IMessenger, ref link.Ref) (*Fetched, error)
}

type Fetcher struct{}

var _ IFetcher = (*Fetcher)(nil)

func (f *Fetcher) Fetch(ctx context.Context, bot, session tlg.IMessenger, ref link.Ref) (*Fetched, error) {
	var res *Fetched
	if ref.Visibility == link.Private {
		res = f.fetchPrivate(ctx, session, ref)
	} else {
		res = f.fetchPublic(ctx, bot, session, ref)
	}
	if res == nil {
		return nil, nil
	}
	return res, nil
}

func (f *Fetcher) fetchPublic(ctx context.Context, bot, session tlg.IMessenger, ref link.Ref) *Fetched {
	ll := f.getLogger("fetchPublic").WithField("ref", ref.Key())
	for _, cl := range []tlg.IMessenger{bot, session} {
		if cl == nil {
			continue
		}
		if item := f.lookup(ctx, ll, cl, ref.Container, ref.ItemID); item != nil {
			return item
		}
	}
	return nil
}

func (f *Fetcher) fetchPrivate(ctx context.Context, session tlg.IMessenger, ref link.Ref) *Fetched {
	ll := f.getLogger("fetchPrivate").WithField("ref", ref.Key())
	if session == nil {
		ll.Debug("no session client")
		return nil
	}
	if err := session.RefreshDialogs(ctx); err != nil {
		ll.WithError(err).Warn("can not refresh dialogs")
	}
	for _, container := range link.Candidates(ref.Container) {
		if item := f.lookup(ctx, ll, session, container, ref.ItemID); item != nil {
			return item
		}
	}
	return nil
}

func (f *Fetcher) lookup(ctx context.Context, ll *logrus.Entry, cl tlg.IMessenger, container string, id int) *Fetched {
	msg, err := cl.GetMessage(ctx, container, id)
	if err != nil {
		ll.WithError(err).WithField("container", container).Debug("lookup failed")
		return nil
	}
	item, ok := types.ItemFromMessage(msg)
	if !ok {
		return nil
	}
	return &Fetched{Item: item, Via: cl}
}

func (f *Fetcher) getLogger(fn string) *logrus.Entry {
	return log.GetLogger(log.FetcherModule).WithField("func", fmt.Sprintf("%T.%s", f, fn))
}

func NewFetcher() *Fetcher {
	return &Fetcher{}
}
