package transfer

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

const mb = 1024 * 1024

// ProgressInterval is the percentage step between two status edits for a transfer of total bytes.
func ProgressInterval(total int64) int {
	switch {
	case total >= 100*mb:
		return 10
	case total >= 50*mb:
		return 20
	case total >= 10*mb:
		return 30
	}
	return 50
}

// progressThrottle emits a status text only when the completed bucket changes or at 100%.
type progressThrottle struct {
	mu    sync.Mutex
	start time.Time
	now   func() time.Time
	last  int
}

func newProgressThrottle(now func() time.Time) *progressThrottle {
	return &progressThrottle{start: now(), now: now, last: -1}
}

// Step returns the status text to publish, or false when no edit is due.
func (p *progressThrottle) Step(done, total int64) (string, bool) {
	if total <= 0 {
		return "", false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	pct := float64(done) / float64(total) * 100
	interval := ProgressInterval(total)
	bucket := int(pct) / interval * interval
	if bucket == p.last && pct < 100 {
		return "", false
	}
	p.last = bucket
	return p.render(done, total, pct), true
}

func (p *progressThrottle) render(done, total int64, pct float64) string {
	filled := min(max(int(pct/10), 0), 10)
	bar := strings.Repeat("🟢", filled) + strings.Repeat("🔴", 10-filled)
	elapsed := max(p.now().Sub(p.start).Seconds(), 0.001)
	speed := float64(done) / elapsed / mb
	eta := "00:00"
	if speed > 0 {
		left := time.Duration(float64(total-done) / (speed * mb) * float64(time.Second))
		eta = fmt.Sprintf("%02d:%02d", int(left.Minutes())%60, int(left.Seconds())%60)
	}
	return fmt.Sprintf("%s\n\n⚡ Completed: %.2f MB / %.2f MB\n📊 Done: %.2f%%\n🚀 Speed: %.2f MB/s\n⏳ ETA: %s",
		bar, float64(done)/mb, float64(total)/mb, pct, speed, eta)
}
