package tlg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/amirdaaee/TGSaver/internal/log"
	"github.com/celestix/gotgproto"
	"github.com/celestix/gotgproto/sessionMaker"
	"github.com/glebarez/sqlite"
	"github.com/gotd/contrib/middleware/floodwait"
	"github.com/gotd/contrib/middleware/ratelimit"
	"github.com/gotd/td/telegram"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

//go:generate mockgen -source=client.go -destination=../../mocks/tlg/client.go -package=mocks
type IClient interface {
	Connect() error
	GetClient() *gotgproto.Client
	Stop()
}

// Credential selects how a client logs in: a bot token or an exported user session.
type Credential struct {
	BotToken string
	Session  string
	// Name tags the session store of user sessions.
	Name string
}

func (c Credential) IsBot() bool {
	return c.BotToken != ""
}

type client struct {
	sessCfg *SessionConfig
	client  *gotgproto.Client
	cred    Credential
}

func (tc *client) Connect() error {
	ll := tc.getLogger("Connect")
	if tc.client != nil {
		ll.Warn("client is already connected")
		return nil
	}
	ll.Info("connecting to tg")
	cl, err := tc.getTgClient()
	if err != nil {
		return fmt.Errorf("can not get tg client: %w", err)
	}
	tc.client = cl
	return nil
}
func (tc *client) GetClient() *gotgproto.Client {
	return tc.client
}
func (tc *client) Stop() {
	if tc.client == nil {
		return
	}
	tc.client.Stop()
	tc.client = nil
}
func (tc *client) getTgClient() (*gotgproto.Client, error) {
	ll := tc.getLogger("getTgClient")
	sessCfg := tc.sessCfg
	clOpts := gotgproto.ClientOpts{
		DisableCopyright: true,
		Middlewares:      tc.getMiddlewares(),
	}
	clType := gotgproto.ClientTypePhone("")
	if tc.cred.IsBot() {
		if err := os.MkdirAll(sessCfg.SessionDir, os.ModePerm); err != nil {
			return nil, fmt.Errorf("can not create session dir: %w", err)
		}
		sessionDBPath := filepath.Join(sessCfg.SessionDir, fmt.Sprintf("bot-%s.sqlite3", strings.Split(tc.cred.BotToken, ":")[0]))
		ll.Infof("session db path: %s", sessionDBPath)
		clOpts.Session = sessionMaker.SqlSession(sqlite.Open(sessionDBPath))
		clType = gotgproto.ClientTypeBot(tc.cred.BotToken)
	} else {
		sess, err := sessCfg.stringSession(tc.cred.Session)
		if err != nil {
			return nil, err
		}
		clOpts.Session = sess
		clOpts.InMemory = true
		clType = gotgproto.ClientTypePhone("")
	}
	if resolver, err := sessCfg.getSocksDialer(); err != nil {
		ll.WithError(err).Error("can not get socks dialer. using default")
	} else if resolver != nil {
		ll.Infof("using socks dialer")
		clOpts.Resolver = *resolver
	}
	client, err := gotgproto.NewClient(
		sessCfg.AppID,
		sessCfg.AppHash,
		clType,
		&clOpts,
	)
	if err != nil {
		return nil, fmt.Errorf("can not create gotgproto client: %w", err)
	}
	return client, nil
}

func (tc *client) getMiddlewares() []telegram.Middleware {
	return []telegram.Middleware{
		floodwait.NewSimpleWaiter().WithMaxRetries(10).WithMaxWait(5 * time.Second),
		ratelimit.New(rate.Every(time.Millisecond*100), 5),
	}
}
func (tc *client) getLogger(fn string) *logrus.Entry {
	return log.GetLogger(log.TlgModule).WithField("func", fmt.Sprintf("%T.%s", tc, fn)).WithField("session", tc.cred.Name)
}

// NewTgClient returns an unconnected client for the given credential.
func NewTgClient(sessCfg *SessionConfig, cred Credential) IClient {
	return &client{
		sessCfg: sessCfg,
		cred:    cred,
	}
}

// NewBotClient is a shortcut for a bot-token client.
func NewBotClient(sessCfg *SessionConfig, token string) IClient {
	return NewTgClient(sessCfg, Credential{BotToken: token, Name: "bot-" + strings.Split(token, ":")[0]})
}
