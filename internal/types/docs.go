package types

import (
	"fmt"
	"time"

	"github.com/chenmingyong0423/go-mongox/v2"
)

// field names shared with documents written by older deployments
const (
	UserDoc__UserIDField        = "user_id"
	UserDoc__BotTokenField      = "bot_token"
	UserDoc__SessionField       = "session_string"
	UserDoc__ChatIDField        = "chat_id"
	UserDoc__CaptionField       = "caption"
	UserDoc__ReplacementsField  = "replacement_words"
	UserDoc__DeleteWordsField   = "delete_words"
	UserDoc__RenameTagField     = "rename_tag"
	UserDoc__RenameReplaceField = "rename_replace"
	PremiumDoc__EndField        = "subscription_end"
	QuotaDoc__DayField          = "day"
	QuotaDoc__CountField        = "count"
)

// UserDoc is the per-user profile kept in the users collection.
type UserDoc struct {
	mongox.Model     `bson:",inline"`
	UserID           int64             `bson:"user_id"`
	BotToken         string            `bson:"bot_token,omitempty"`
	SessionString    string            `bson:"session_string,omitempty"`
	ChatID           any               `bson:"chat_id,omitempty"` // int or "chat/reply"
	Caption          string            `bson:"caption,omitempty"`
	ReplacementWords map[string]string `bson:"replacement_words,omitempty"`
	DeleteWords      []string          `bson:"delete_words,omitempty"`
	RenameTag        string            `bson:"rename_tag,omitempty"`
	RenameReplace    map[string]string `bson:"rename_replace,omitempty"`
}

func (m UserDoc) String() string {
	return fmt.Sprintf("user(%d)", m.UserID)
}

// Destination returns the raw destination setting as text, empty when unset.
func (m *UserDoc) Destination() string {
	if m == nil || m.ChatID == nil {
		return ""
	}
	return fmt.Sprint(m.ChatID)
}

type PremiumUserDoc struct {
	mongox.Model      `bson:",inline"`
	UserID            int64     `bson:"user_id"`
	SubscriptionStart time.Time `bson:"subscription_start"`
	SubscriptionEnd   time.Time `bson:"subscription_end"`
	ExpireAt          time.Time `bson:"expireAt"`
}

// Active reports whether the subscription is still running at now.
func (m *PremiumUserDoc) Active(now time.Time) bool {
	return m != nil && now.Before(m.SubscriptionEnd)
}

// BatchQuotaDoc counts /batch invocations of a free user on one UTC day.
type BatchQuotaDoc struct {
	mongox.Model `bson:",inline"`
	UserID       int64  `bson:"user_id"`
	Day          string `bson:"day"`
	Count        int    `bson:"count"`
}

type BannedUserDoc struct {
	mongox.Model `bson:",inline"`
	UserID       int64  `bson:"user_id"`
	BannedAt     int64  `bson:"banned_at"`
	Reason       string `bson:"reason,omitempty"`
	BannedBy     int64  `bson:"banned_by,omitempty"`
}

// QuotaDay formats t as the key of a daily quota bucket.
func QuotaDay(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
