package transfer

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/amirdaaee/TGSaver/internal/types"
)

const maxFileNameRunes = 255

var (
	unsafeChars  = regexp.MustCompile(`[<>:"/\\|?*']`)
	numericThumb = regexp.MustCompile(`^\d+\.jpg$`)
)

// Sanitize makes name safe to use as a local file name.
func Sanitize(name string) string {
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, " .")
	return Truncate(name, maxFileNameRunes)
}

// LocalName picks the download file name of an item. Unnamed items get a
// "dl_" stem, never a bare number, so they are not taken for user thumbnails.
func LocalName(item *types.Item, now time.Time) string {
	stamp := "dl_" + strconv.FormatInt(now.UnixNano(), 10)
	if item.HasFileName() {
		if n := Sanitize(item.Media.FileName); n != "" {
			return n
		}
	}
	switch item.Kind {
	case types.KindVideo, types.KindVideoNote:
		return stamp + ".mp4"
	case types.KindAudio:
		return stamp + ".mp3"
	case types.KindVoice:
		return stamp + ".ogg"
	case types.KindPhoto:
		return stamp + ".jpg"
	case types.KindSticker:
		return stamp + ".webp"
	}
	return stamp
}

// IsPersistentThumb reports whether path is a thumbnail the user configured,
// which must survive transfers and cleanups.
func IsPersistentThumb(path string, userID int64) bool {
	if path == "" {
		return false
	}
	base := filepath.Base(path)
	if base == "settings.jpg" {
		return true
	}
	if userID != 0 && base == fmt.Sprintf("%d.jpg", userID) {
		return true
	}
	return numericThumb.MatchString(base)
}

// UserThumb returns the persistent thumbnail of userID when one exists in dir.
func UserThumb(dir string, userID int64) (string, bool) {
	p := filepath.Join(dir, fmt.Sprintf("%d.jpg", userID))
	if st, err := os.Stat(p); err == nil && !st.IsDir() {
		return p, true
	}
	return "", false
}

// removeArtifact deletes path unless it is a persistent thumbnail.
func removeArtifact(path string, userID int64) {
	if path == "" || IsPersistentThumb(path, userID) {
		return
	}
	_ = os.Remove(path)
}
