package cleanup_test

import (
	"os"
	"path/filepath"
	"time"

	"github.com/amirdaaee/TGSaver/internal/cleanup"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Sweeper", func() {
	It("removes only stale generated images", func() {
		dir := GinkgoT().TempDir()
		old := time.Now().Add(-48 * time.Hour)
		for _, name := range []string{"thumb_1.jpg", "2024-01-01T10:00:00.jpg", "123.jpg", "settings.jpg", "movie.mkv", "fresh.jpg"} {
			p := filepath.Join(dir, name)
			Expect(os.WriteFile(p, []byte("x"), 0o644)).To(Succeed())
			if name != "fresh.jpg" {
				Expect(os.Chtimes(p, old, old)).To(Succeed())
			}
		}
		n, err := cleanup.NewSweeper(dir, 24*time.Hour).Sweep()
		Expect(err).ToNot(HaveOccurred())
		Expect(n).To(Equal(2))
		entries, _ := os.ReadDir(dir)
		names := []string{}
		for _, e := range entries {
			names = append(names, e.Name())
		}
		Expect(names).To(ConsistOf("123.jpg", "settings.jpg", "movie.mkv", "fresh.jpg"))
	})
	It("rejects bad schedules", func() {
		_, err := cleanup.Schedule("every tuesday", cleanup.NewSweeper(".", time.Hour))
		Expect(err).To(HaveOccurred())
		c, err := cleanup.Schedule("@hourly", cleanup.NewSweeper(".", time.Hour))
		Expect(err).ToNot(HaveOccurred())
		Expect(c.Entries()).To(HaveLen(1))
	})
})
