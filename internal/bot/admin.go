package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/amirdaaee/TGSaver/internal/errs"
	"github.com/amirdaaee/TGSaver/internal/facade"
	"github.com/amirdaaee/TGSaver/internal/transfer"
)

const (
	KillAllNotice = "⚠️ **Bot task reset by admin.**\nPlease retry your command."
	UnbanNotice   = "✅ You have been unbanned. You can use the bot again."
)

// HandleKillAll cancels every run and tells every known user to retry.
func (h *Handler) HandleKillAll(ctx context.Context, in Incoming) error {
	rep := h.Orchestrator.CancelAll(ctx)
	users, err := h.Profiles.UserIDs(ctx)
	if err != nil {
		return fmt.Errorf("can not list users: %w", err)
	}
	sent := h.Notifier.Bulk(ctx, users, KillAllNotice)
	h.reply(ctx, in, fmt.Sprintf(
		"✅ All tasks reset.\nTasks flagged: %d\nConversations cleared: %d\nCache keys cleared: %d\nUsers notified: %s",
		rep.Flagged, rep.ConversationsCleared, rep.KeysCleared, sent,
	))
	return nil
}

func (h *Handler) HandleActive(ctx context.Context, in Incoming) error {
	runs := h.Orchestrator.ActiveRuns()
	if len(runs) == 0 {
		h.reply(ctx, in, "No active tasks.")
		return nil
	}
	b := strings.Builder{}
	fmt.Fprintf(&b, "Active tasks: %d", len(runs))
	for _, r := range runs {
		fmt.Fprintf(&b, "\n%d: %d/%d ✅ %d", r.UserID, r.Current, r.Total, r.Success)
		if r.CancelRequested {
			b.WriteString(" (cancelling)")
		}
	}
	h.reply(ctx, in, b.String())
	return nil
}

func (h *Handler) HandleClearCache(ctx context.Context, in Incoming) error {
	n := h.Orchestrator.ClearCaches()
	h.reply(ctx, in, fmt.Sprintf("🧹 Cache cleared. Keys removed: %d", n))
	return nil
}

func (h *Handler) HandleBroadcast(ctx context.Context, in Incoming) error {
	if in.Args == "" {
		return errs.NewInputError("Usage: /broadcast <message>")
	}
	users, err := h.Profiles.UserIDs(ctx)
	if err != nil {
		return fmt.Errorf("can not list users: %w", err)
	}
	h.reply(ctx, in, "📣 Broadcast started...")
	rep := h.Notifier.Bulk(ctx, users, in.Args)
	h.reply(ctx, in, fmt.Sprintf("✅ Broadcast completed.\nTotal users: %d\nSuccess: %d\nFailed: %d", rep.Total, rep.Sent, rep.Failed))
	return nil
}

func (h *Handler) HandleLogTest(ctx context.Context, in Incoming) error {
	if h.opts.LogGroup == 0 {
		return errs.NewInputError("LOG_GROUP is not set.")
	}
	if _, err := h.UI.SendText(ctx, h.opts.LogGroup, 0, "✅ Log group test."); err != nil {
		h.reply(ctx, in, "❌ Log group test failed: "+transfer.Truncate(err.Error(), 60))
		return nil
	}
	h.reply(ctx, in, "✅ Log group is reachable.")
	return nil
}

// HandleBan serves "/ban <user_id> [reason]".
func (h *Handler) HandleBan(ctx context.Context, in Incoming) error {
	target, reason, err := parseTarget(in.Args, "/ban <user_id> [reason]")
	if err != nil {
		return err
	}
	if err := h.Bans.Ban(ctx, target, in.UserID, reason); err != nil {
		if errors.Is(err, facade.ErrAlreadyBanned) {
			h.reply(ctx, in, fmt.Sprintf("User %d is already banned.", target))
			return nil
		}
		return fmt.Errorf("can not ban %d: %w", target, err)
	}
	h.reply(ctx, in, fmt.Sprintf("⛔ User %d banned.", target))
	return nil
}

func (h *Handler) HandleUnban(ctx context.Context, in Incoming) error {
	target, _, err := parseTarget(in.Args, "/unban <user_id>")
	if err != nil {
		return err
	}
	if err := h.Bans.Unban(ctx, target); err != nil {
		if errors.Is(err, facade.ErrNoDocumentsFound) {
			h.reply(ctx, in, fmt.Sprintf("User %d is not banned.", target))
			return nil
		}
		return fmt.Errorf("can not unban %d: %w", target, err)
	}
	if err := h.Notifier.Notify(ctx, target, UnbanNotice); err != nil {
		h.getLogger("HandleUnban").WithError(err).Infof("can not notify %d", target)
	}
	h.reply(ctx, in, fmt.Sprintf("✅ User %d unbanned.", target))
	return nil
}

func parseTarget(args, usage string) (int64, string, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return 0, "", errs.NewInputError("Usage: " + usage)
	}
	id, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, "", errs.NewInputError("Usage: " + usage)
	}
	return id, strings.Join(fields[1:], " "), nil
}
