package tlg

import (
	"fmt"
	"net/url"

	"github.com/amirdaaee/TGSaver/internal/log"
	"github.com/celestix/gotgproto/sessionMaker"
	"github.com/gotd/td/telegram/dcs"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/proxy"
)

// session string formats accepted for user sessions
const (
	SessionFormatPyrogram = "pyrogram"
	SessionFormatTelethon = "telethon"
	SessionFormatNative   = "gotgproto"
)

type SessionConfig struct {
	SocksProxy    string
	SessionDir    string
	AppID         int
	AppHash       string
	SessionFormat string
}

func (sessCfg *SessionConfig) stringSession(value string) (sessionMaker.SessionConstructor, error) {
	if value == "" {
		return nil, fmt.Errorf("empty session string")
	}
	switch sessCfg.SessionFormat {
	case SessionFormatPyrogram, "":
		return sessionMaker.PyrogramSession(value), nil
	case SessionFormatTelethon:
		return sessionMaker.TelethonSession(value), nil
	case SessionFormatNative:
		return sessionMaker.StringSession(value), nil
	}
	return nil, fmt.Errorf("unknown session format %q", sessCfg.SessionFormat)
}

func (sessCfg *SessionConfig) getSocksDialer() (*dcs.Resolver, error) {
	ll := sessCfg.getLogger("getSocksDialer")
	proxyUriStr := sessCfg.SocksProxy
	if proxyUriStr == "" {
		ll.Debug("no socks proxy provided")
		return nil, nil
	}
	proxyUri, err := url.Parse(proxyUriStr)
	if err != nil {
		return nil, fmt.Errorf("can not parse proxy url (%s): %w", proxyUriStr, err)
	}
	var auth *proxy.Auth
	if proxyUri.User != nil {
		uPass, _ := proxyUri.User.Password()
		auth = &proxy.Auth{User: proxyUri.User.Username(), Password: uPass}
	}
	sock5, err := proxy.SOCKS5("tcp", proxyUri.Host, auth, proxy.Direct)
	if err != nil {
		return nil, fmt.Errorf("can not create socks proxy (%s): %w", proxyUriStr, err)
	}
	dc, ok := sock5.(proxy.ContextDialer)
	if !ok {
		return nil, &UnexpectedTypeErrType{ExpectedType: (proxy.ContextDialer)(nil), GotType: sock5}
	}
	dialler := dcs.Plain(dcs.PlainOptions{
		Dial: dc.DialContext,
	})
	ll.Info("socks dialer created")
	return &dialler, nil
}

func (sessCfg *SessionConfig) getLogger(fn string) *logrus.Entry {
	return log.GetLogger(log.TlgModule).WithField("func", fmt.Sprintf("%T.%s", sessCfg, fn))
}
