package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/amirdaaee/TGSaver/internal/batch"
)

func (h *Handler) HandleBatch(ctx context.Context, in Incoming) error {
	if err := h.Orchestrator.Begin(ctx, in.UserID, in.ChatID, batch.ModeBatch); err != nil {
		return fmt.Errorf("can not begin batch: %w", err)
	}
	return nil
}

func (h *Handler) HandleSingle(ctx context.Context, in Incoming) error {
	if err := h.Orchestrator.Begin(ctx, in.UserID, in.ChatID, batch.ModeSingle); err != nil {
		return fmt.Errorf("can not begin single: %w", err)
	}
	return nil
}

// HandleCancel serves /cancel and /stop.
func (h *Handler) HandleCancel(ctx context.Context, in Incoming) error {
	res, err := h.Orchestrator.Cancel(ctx, in.UserID)
	if err != nil {
		return err
	}
	h.reply(ctx, in, res.String())
	return nil
}

// HandleText feeds plain messages into a pending conversation. Unknown commands are left alone.
func (h *Handler) HandleText(ctx context.Context, in Incoming) error {
	if strings.HasPrefix(strings.TrimSpace(in.Text), "/") {
		return nil
	}
	h.Orchestrator.HandleText(ctx, in.UserID, in.ChatID, in.Text)
	return nil
}
