// Package cleanup removes stale generated thumbnails from the work directory.
package cleanup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/amirdaaee/TGSaver/internal/log"
	"github.com/amirdaaee/TGSaver/internal/transfer"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Sweeper deletes .jpg files older than MaxAge, sparing persistent thumbnails.
type Sweeper struct {
	Dir    string
	MaxAge time.Duration
	Now    func() time.Time
}

// Sweep returns how many files were removed.
func (s *Sweeper) Sweep() (int, error) {
	ll := s.getLogger("Sweep")
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return 0, fmt.Errorf("can not list %s: %w", s.Dir, err)
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	cutoff := now().Add(-s.MaxAge)
	removed := 0
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".jpg") {
			continue
		}
		full := filepath.Join(s.Dir, e.Name())
		if transfer.IsPersistentThumb(full, 0) {
			continue
		}
		info, err := e.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(full); err != nil {
			ll.WithError(err).Warnf("can not remove %s", full)
			continue
		}
		removed++
	}
	if removed > 0 {
		ll.Infof("%d stale images removed", removed)
	}
	return removed, nil
}

func (s *Sweeper) getLogger(fn string) *logrus.Entry {
	return log.GetLogger(log.CleanupModule).WithField("func", fmt.Sprintf("%T.%s", s, fn))
}

func NewSweeper(dir string, maxAge time.Duration) *Sweeper {
	return &Sweeper{Dir: dir, MaxAge: maxAge}
}

var scheduleParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// Schedule runs the sweeper on a cron schedule such as "@hourly" or "0 * * * *".
func Schedule(spec string, s *Sweeper) (*cron.Cron, error) {
	if _, err := scheduleParser.Parse(spec); err != nil {
		return nil, fmt.Errorf("invalid cleanup schedule %q: %w", spec, err)
	}
	c := cron.New(cron.WithParser(scheduleParser))
	if _, err := c.AddFunc(spec, func() {
		if _, err := s.Sweep(); err != nil {
			s.getLogger("Schedule").WithError(err).Error("sweep failed")
		}
	}); err != nil {
		return nil, err
	}
	return c, nil
}
