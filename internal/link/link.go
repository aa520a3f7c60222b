// Package link turns message links into container/item references.
package link

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

type Visibility string

const (
	Public  Visibility = "public"
	Private Visibility = "private"
)

// ChannelPrefix is prepended to a bare channel id to form its chat id.
const ChannelPrefix = "-100"

var (
	privatePattern = regexp.MustCompile(`^(?:https?://)?t\.me/c/(\d+)/(?:\d+/)?(\d+)`)
	publicPattern  = regexp.MustCompile(`^(?:https?://)?t\.me/([^/]+)/(?:\d+/)?(\d+)`)
)

// Ref addresses one item inside a container.
type Ref struct {
	Container  string
	ItemID     int
	Visibility Visibility
}

func (r Ref) IsZero() bool {
	return r == Ref{}
}

// WithItem returns a copy of r pointing at another item of the same container.
func (r Ref) WithItem(id int) Ref {
	r.ItemID = id
	return r
}

// Key is the composite container:item key used for duplicate detection.
func (r Ref) Key() string {
	return fmt.Sprintf("%s:%d", r.Container, r.ItemID)
}

// Canonical renders the link r was parsed from.
func (r Ref) Canonical() string {
	if r.Visibility == Private {
		bare, _ := ChannelID(r.Container)
		return fmt.Sprintf("https://t.me/c/%d/%d", bare, r.ItemID)
	}
	return fmt.Sprintf("https://t.me/%s/%d", r.Container, r.ItemID)
}

// Parse resolves a link. The boolean is false for anything that is not a message link.
func Parse(s string) (Ref, bool) {
	s = strings.TrimSpace(s)
	if m := privatePattern.FindStringSubmatch(s); m != nil {
		id, err := strconv.Atoi(m[2])
		if err != nil || id <= 0 {
			return Ref{}, false
		}
		return Ref{Container: ChannelPrefix + m[1], ItemID: id, Visibility: Private}, true
	}
	if m := publicPattern.FindStringSubmatch(s); m != nil {
		if m[1] == "c" {
			return Ref{}, false
		}
		id, err := strconv.Atoi(m[2])
		if err != nil || id <= 0 {
			return Ref{}, false
		}
		return Ref{Container: m[1], ItemID: id, Visibility: Public}, true
	}
	return Ref{}, false
}

// ChannelID strips the channel prefix from a private container id.
func ChannelID(container string) (int64, bool) {
	if !strings.HasPrefix(container, ChannelPrefix) {
		return 0, false
	}
	id, err := strconv.ParseInt(strings.TrimPrefix(container, ChannelPrefix), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ToContainer is the inverse of ChannelID.
func ToContainer(channelID int64) string {
	return ChannelPrefix + strconv.FormatInt(channelID, 10)
}

// Candidates lists the numeric spellings a restricted container may be known by,
// in lookup order.
func Candidates(container string) []string {
	switch {
	case strings.HasPrefix(container, ChannelPrefix):
		base := strings.TrimPrefix(container, ChannelPrefix)
		return []string{container, "-" + base}
	case isDigits(container):
		return []string{ChannelPrefix + container, "-" + container, container}
	}
	return []string{container}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
