package transfer

import (
	"strconv"
	"strings"
)

// Destination is where transferred items are posted.
type Destination struct {
	ChatID  int64
	ReplyTo int
}

// ParseDestination reads a `chat` or `chat/reply` setting. Unset or malformed
// settings send to the invoking chat without a reply anchor.
func ParseDestination(raw string, invokingChat int64) Destination {
	fallback := Destination{ChatID: invokingChat}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	chatPart, replyPart, hasReply := strings.Cut(raw, "/")
	chat, err := strconv.ParseInt(strings.TrimSpace(chatPart), 10, 64)
	if err != nil || chat == 0 {
		return fallback
	}
	dst := Destination{ChatID: chat}
	if hasReply && strings.TrimSpace(replyPart) != "" {
		reply, err := strconv.Atoi(strings.TrimSpace(replyPart))
		if err != nil || reply < 0 {
			return fallback
		}
		dst.ReplyTo = reply
	}
	return dst
}
