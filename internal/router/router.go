// Package router hands out the per-user Telegram clients: one started from the
// user's bot token and one from their stored user session.
package router

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/amirdaaee/TGSaver/internal/facade"
	"github.com/amirdaaee/TGSaver/internal/log"
	"github.com/amirdaaee/TGSaver/internal/tlg"
	"github.com/amirdaaee/TGSaver/internal/types"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// ErrNoCredential is returned when no usable credential is on file.
var ErrNoCredential = errors.New("no credential available")

// Dialer connects a client for a credential.
type Dialer func(cred tlg.Credential) (tlg.IMessenger, error)

// IRouter caches one bot and one session client per user while their stored
// credential stays the same.
//
//go:generate mockgen -source=router.go -destination=../../mocks/router/router.go -package=mocks
type IRouter interface {
	GetBotClient(ctx context.Context, userID int64) (tlg.IMessenger, error)
	GetSessionClient(ctx context.Context, userID int64) (tlg.IMessenger, error)
	// HasSession reports whether a session is on file, without starting a client.
	HasSession(ctx context.Context, userID int64) bool
	Close()
}

type Decrypter interface {
	Decrypt(enc string) (string, error)
}

type Router struct {
	profiles facade.IProfileStore
	cipher   Decrypter
	dial     Dialer

	group singleflight.Group
	mu    sync.RWMutex
	bots  map[int64]client
	sess  map[int64]client
}

// client remembers the stored credential it was started from.
type client struct {
	m    tlg.IMessenger
	cred string
}

var _ IRouter = (*Router)(nil)

func (r *Router) GetBotClient(ctx context.Context, userID int64) (tlg.IMessenger, error) {
	return r.get(ctx, userID, r.bots, types.UserDoc__BotTokenField, r.startBot)
}

func (r *Router) GetSessionClient(ctx context.Context, userID int64) (tlg.IMessenger, error) {
	return r.get(ctx, userID, r.sess, types.UserDoc__SessionField, r.startSession)
}

func (r *Router) HasSession(ctx context.Context, userID int64) bool {
	r.mu.RLock()
	_, ok := r.sess[userID]
	r.mu.RUnlock()
	if ok {
		return true
	}
	v, err := r.profiles.GetField(ctx, userID, types.UserDoc__SessionField, "")
	if err != nil {
		r.getLogger("HasSession").WithError(err).Warn("can not read session field")
		return false
	}
	s, _ := v.(string)
	return s != ""
}

// get re-reads the credential on every call. A cached client whose credential
// was removed or replaced is stopped and dropped.
func (r *Router) get(ctx context.Context, userID int64, cache map[int64]client, field string, start func(context.Context, int64, string) (tlg.IMessenger, error)) (tlg.IMessenger, error) {
	ll := r.getLogger("get").WithField("user", userID).WithField("field", field)
	r.mu.RLock()
	c, cached := cache[userID]
	r.mu.RUnlock()
	v, err := r.profiles.GetField(ctx, userID, field, "")
	if err != nil {
		if cached {
			ll.WithError(err).Warn("can not re-read credential, keeping cached client")
			return c.m, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrNoCredential, err)
	}
	cred, _ := v.(string)
	if cached && c.cred == cred {
		return c.m, nil
	}
	if cached {
		r.evict(cache, userID, c)
		ll.Info("credential changed, cached client stopped")
	}
	if cred == "" {
		return nil, ErrNoCredential
	}
	res, err, _ := r.group.Do(field+":"+strconv.FormatInt(userID, 10), func() (any, error) {
		r.mu.RLock()
		c, ok := cache[userID]
		r.mu.RUnlock()
		if ok && c.cred == cred {
			return c.m, nil
		}
		m, err := start(ctx, userID, cred)
		if err != nil {
			return nil, err
		}
		r.mu.Lock()
		cache[userID] = client{m: m, cred: cred}
		r.mu.Unlock()
		return m, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(tlg.IMessenger), nil
}

func (r *Router) evict(cache map[int64]client, userID int64, c client) {
	r.mu.Lock()
	cur, ok := cache[userID]
	stale := ok && cur.m == c.m
	if stale {
		delete(cache, userID)
	}
	r.mu.Unlock()
	if stale {
		c.m.Stop()
	}
}

func (r *Router) startBot(_ context.Context, userID int64, token string) (tlg.IMessenger, error) {
	ll := r.getLogger("startBot").WithField("user", userID)
	m, err := r.dial(tlg.Credential{BotToken: token, Name: fmt.Sprintf("user-bot-%d", userID)})
	if err != nil {
		ll.WithError(err).Warn("can not start bot client")
		return nil, fmt.Errorf("%w: %w", ErrNoCredential, err)
	}
	ll.Info("bot client started")
	return m, nil
}

func (r *Router) startSession(ctx context.Context, userID int64, enc string) (tlg.IMessenger, error) {
	ll := r.getLogger("startSession").WithField("user", userID)
	session, err := r.cipher.Decrypt(enc)
	if err != nil {
		ll.WithError(err).Warn("can not decrypt session")
		return nil, fmt.Errorf("%w: %w", ErrNoCredential, err)
	}
	m, err := r.dial(tlg.Credential{Session: session, Name: fmt.Sprintf("user-session-%d", userID)})
	if err != nil {
		ll.WithError(err).Warn("can not start session client")
		return nil, fmt.Errorf("%w: %w", ErrNoCredential, err)
	}
	if err := m.RefreshDialogs(ctx); err != nil {
		ll.WithError(err).Warn("can not refresh dialogs")
	}
	ll.Info("session client started")
	return m, nil
}

// Close stops every cached client.
func (r *Router) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, cache := range []map[int64]client{r.bots, r.sess} {
		for id, c := range cache {
			c.m.Stop()
			delete(cache, id)
		}
	}
}

func (r *Router) getLogger(fn string) *logrus.Entry {
	return log.GetLogger(log.RouterModule).WithField("func", fmt.Sprintf("%T.%s", r, fn))
}

func NewRouter(profiles facade.IProfileStore, cipher Decrypter, dial Dialer) *Router {
	return &Router{
		profiles: profiles,
		cipher:   cipher,
		dial:     dial,
		bots:     map[int64]client{},
		sess:     map[int64]client{},
	}
}
