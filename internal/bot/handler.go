package bot

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/amirdaaee/TGSaver/internal/batch"
	"github.com/amirdaaee/TGSaver/internal/errs"
	"github.com/amirdaaee/TGSaver/internal/facade"
	"github.com/amirdaaee/TGSaver/internal/log"
	"github.com/amirdaaee/TGSaver/internal/notify"
	"github.com/amirdaaee/TGSaver/internal/tlg"
	"github.com/celestix/gotgproto/dispatcher"
	"github.com/celestix/gotgproto/dispatcher/handlers"
	"github.com/celestix/gotgproto/dispatcher/handlers/filters"
	"github.com/celestix/gotgproto/ext"
	"github.com/sirupsen/logrus"
)

const (
	gateGroup = iota
	commandGroup
	textGroup
)

// Incoming is the part of an update the commands look at.
type Incoming struct {
	UserID int64
	ChatID int64
	Text   string
	// Args is the text after the command word.
	Args string
}

type IHandler interface {
	Register(b *Bot)
}

type command struct {
	name      string
	ownerOnly bool
	fn        func(ctx context.Context, in Incoming) error
}

type HandlerDeps struct {
	Orchestrator batch.IOrchestrator
	Bans         facade.IBanList
	Profiles     facade.IProfileStore
	Notifier     notify.INotifier
	// UI is the main bot; replies and log-group messages go through it.
	UI tlg.IMessenger
}

type HandlerOptions struct {
	OwnerIDs     []int64
	LogGroup     int64
	AdminContact string
	Sleep        tlg.SleepFunc
}

type Handler struct {
	HandlerDeps
	opts HandlerOptions
}

var _ IHandler = (*Handler)(nil)

func (h *Handler) Register(b *Bot) {
	ll := h.getLogger("Register")
	ll.Info("registering handlers")
	d := b.Dispatcher()
	d.AddHandlerToGroup(handlers.NewMessage(filters.Message.Text, h.wrap(h.Gate)), gateGroup)
	for _, c := range h.commands() {
		d.AddHandlerToGroup(handlers.NewCommand(c.name, h.wrapCommand(c)), commandGroup)
	}
	d.AddHandlerToGroup(handlers.NewMessage(filters.Message.Text, h.wrap(h.HandleText)), textGroup)
}

func (h *Handler) commands() []command {
	return []command{
		{name: "batch", fn: h.HandleBatch},
		{name: "single", fn: h.HandleSingle},
		{name: "cancel", fn: h.HandleCancel},
		{name: "stop", fn: h.HandleCancel},
		{name: "killall", ownerOnly: true, fn: h.HandleKillAll},
		{name: "active", ownerOnly: true, fn: h.HandleActive},
		{name: "clearcache", ownerOnly: true, fn: h.HandleClearCache},
		{name: "broadcast", ownerOnly: true, fn: h.HandleBroadcast},
		{name: "logtest", ownerOnly: true, fn: h.HandleLogTest},
		{name: "ban", ownerOnly: true, fn: h.HandleBan},
		{name: "unban", ownerOnly: true, fn: h.HandleUnban},
	}
}

// Gate stops every later group for banned users.
func (h *Handler) Gate(ctx context.Context, in Incoming) error {
	if h.IsOwner(in.UserID) {
		return nil
	}
	banned, err := h.Bans.IsBanned(ctx, in.UserID)
	if err != nil {
		h.getLogger("Gate").WithError(err).Warnf("can not check ban of %d", in.UserID)
		return nil
	}
	if !banned {
		return nil
	}
	msg := "⛔ You are banned."
	if h.opts.AdminContact != "" {
		msg += "\nContact " + h.opts.AdminContact
	}
	h.reply(ctx, in, msg)
	return dispatcher.EndGroups
}

func (h *Handler) IsOwner(userID int64) bool {
	return slices.Contains(h.opts.OwnerIDs, userID)
}

func (h *Handler) wrapCommand(c command) handlers.CallbackResponse {
	return h.wrap(func(ctx context.Context, in Incoming) error {
		if c.ownerOnly && !h.IsOwner(in.UserID) {
			h.getLogger("wrapCommand").Infof("user %d tried /%s", in.UserID, c.name)
			return dispatcher.EndGroups
		}
		in.Args = commandArgs(in.Text)
		if err := c.fn(ctx, in); err != nil {
			return err
		}
		return dispatcher.EndGroups
	})
}

// wrap adapts fn to the dispatcher. User-facing errors are replied, the rest logged.
func (h *Handler) wrap(fn func(ctx context.Context, in Incoming) error) handlers.CallbackResponse {
	return func(ctx *ext.Context, u *ext.Update) error {
		in, ok := incomingFrom(u)
		if !ok {
			return nil
		}
		err := fn(ctx.Context, in)
		if err == nil || errors.Is(err, dispatcher.EndGroups) {
			return err
		}
		if msg, ok := errs.UserMessage(err); ok {
			h.reply(ctx.Context, in, msg)
			return dispatcher.EndGroups
		}
		h.getLogger("wrap").WithError(err).WithField("user", in.UserID).Error("handler failed")
		return dispatcher.EndGroups
	}
}

func (h *Handler) reply(ctx context.Context, in Incoming, text string) {
	err := tlg.RetryFloodWaitWith(ctx, h.opts.Sleep, func(ctx context.Context) error {
		_, err := h.UI.SendText(ctx, in.ChatID, 0, text)
		return err
	})
	if err != nil {
		h.getLogger("reply").WithError(err).Warnf("can not reply to %d", in.ChatID)
	}
}

func (h *Handler) getLogger(fn string) *logrus.Entry {
	return log.GetLogger(log.BotModule).WithField("func", fmt.Sprintf("%T.%s", h, fn))
}

func incomingFrom(u *ext.Update) (Incoming, bool) {
	if u.EffectiveMessage == nil || u.EffectiveChat() == nil {
		return Incoming{}, false
	}
	user := u.EffectiveUser()
	if user == nil {
		return Incoming{}, false
	}
	return Incoming{
		UserID: user.ID,
		ChatID: u.EffectiveChat().GetID(),
		Text:   u.EffectiveMessage.Text,
	}, true
}

// commandArgs drops the leading /command word.
func commandArgs(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return text
	}
	i := strings.IndexFunc(text, unicode.IsSpace)
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(text[i:])
}

func NewHandler(deps HandlerDeps, opts HandlerOptions) *Handler {
	if opts.Sleep == nil {
		opts.Sleep = tlg.Sleep
	}
	return &Handler{HandlerDeps: deps, opts: opts}
}
