// Package notify delivers one text to many users, honouring flood waits.
package notify

import (
	"context"
	"fmt"

	"github.com/amirdaaee/TGSaver/internal/log"
	"github.com/amirdaaee/TGSaver/internal/tlg"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// DefaultRate stays under the broadcast limit Telegram applies to bots.
const DefaultRate rate.Limit = 20

type Report struct {
	Total  int
	Sent   int
	Failed int
}

func (r Report) String() string {
	return fmt.Sprintf("%d/%d (failed: %d)", r.Sent, r.Total, r.Failed)
}

// ITextSender is the part of a messenger the notifier needs.
type ITextSender interface {
	SendText(ctx context.Context, chatID int64, replyTo int, text string) (int, error)
}

// INotifier sends texts. A FLOOD_WAIT is slept off once and the send retried;
// a second failure counts the target as failed.
//
//go:generate mockgen -source=notify.go -destination=../../mocks/notify/notify.go -package=mocks
type INotifier interface {
	Notify(ctx context.Context, chatID int64, text string) error
	Bulk(ctx context.Context, targets []int64, text string) Report
}

type Notifier struct {
	sender  ITextSender
	sleep   tlg.SleepFunc
	limiter *rate.Limiter
}

var _ INotifier = (*Notifier)(nil)

func (n *Notifier) Notify(ctx context.Context, chatID int64, text string) error {
	if err := n.limiter.Wait(ctx); err != nil {
		return err
	}
	return tlg.RetryFloodWaitWith(ctx, n.sleep, func(ctx context.Context) error {
		_, err := n.sender.SendText(ctx, chatID, 0, text)
		return err
	})
}

// Bulk notifies each distinct target once, in order.
func (n *Notifier) Bulk(ctx context.Context, targets []int64, text string) Report {
	ll := n.getLogger("Bulk")
	seen := make(map[int64]struct{}, len(targets))
	rep := Report{}
	for _, id := range targets {
		if _, dup := seen[id]; dup || id == 0 {
			continue
		}
		seen[id] = struct{}{}
		rep.Total++
		if ctx.Err() != nil {
			rep.Failed++
			continue
		}
		if err := n.Notify(ctx, id, text); err != nil {
			ll.WithError(err).Warnf("can not notify %d", id)
			rep.Failed++
			continue
		}
		rep.Sent++
	}
	ll.Infof("notified %s", rep)
	return rep
}

func (n *Notifier) getLogger(fn string) *logrus.Entry {
	return log.GetLogger(log.NotifyModule).WithField("func", fmt.Sprintf("%T.%s", n, fn))
}

// NewNotifier builds a notifier; a nil sleep uses tlg.Sleep and a zero limit means DefaultRate.
func NewNotifier(sender ITextSender, sleep tlg.SleepFunc, limit rate.Limit) *Notifier {
	if sleep == nil {
		sleep = tlg.Sleep
	}
	if limit == 0 {
		limit = DefaultRate
	}
	return &Notifier{sender: sender, sleep: sleep, limiter: rate.NewLimiter(limit, 1)}
}
