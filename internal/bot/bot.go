// Package bot wires Telegram updates of the main bot to the batch orchestrator and admin commands.
package bot

import (
	"fmt"

	"github.com/amirdaaee/TGSaver/internal/log"
	"github.com/amirdaaee/TGSaver/internal/tlg"
	"github.com/celestix/gotgproto/dispatcher"
	"github.com/sirupsen/logrus"
)

type Bot struct {
	cl tlg.IClient
}

// Client is the connected bot client, for building a messenger on it.
func (b *Bot) Client() tlg.IClient {
	return b.cl
}

func (b *Bot) Dispatcher() dispatcher.Dispatcher {
	return b.cl.GetClient().Dispatcher
}

// Start blocks until the client stops.
func (b *Bot) Start() error {
	ll := b.getLogger("Start")
	ll.Info("listening for updates")
	if err := b.cl.GetClient().Idle(); err != nil {
		return NewBotError("idle", err)
	}
	return nil
}

func (b *Bot) Stop() {
	b.cl.Stop()
}

func (b *Bot) getLogger(fn string) *logrus.Entry {
	return log.GetLogger(log.BotModule).WithField("func", fmt.Sprintf("%T.%s", b, fn))
}

// NewBot connects cl if needed.
func NewBot(cl tlg.IClient) (*Bot, error) {
	if cl.GetClient() == nil {
		if err := cl.Connect(); err != nil {
			return nil, NewBotError("connect", err)
		}
	}
	return &Bot{cl: cl}, nil
}
