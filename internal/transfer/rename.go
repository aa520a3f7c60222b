package transfer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/amirdaaee/TGSaver/internal/facade"
)

// IRenamer applies the user's file name rules to a downloaded file and returns its new path.
//
//go:generate mockgen -source=rename.go -destination=../../mocks/transfer/rename.go -package=mocks
type IRenamer interface {
	Rename(ctx context.Context, path string, userID int64) (string, error)
}

// ProfileRenamer reads rename_replace (substring map over the base name) and
// rename_tag (appended before the extension) from the user profile.
type ProfileRenamer struct {
	profiles facade.IProfileStore
}

var _ IRenamer = (*ProfileRenamer)(nil)

func (r *ProfileRenamer) Rename(ctx context.Context, path string, userID int64) (string, error) {
	doc, err := r.profiles.Get(ctx, userID)
	if err != nil {
		return path, err
	}
	if doc == nil {
		return path, nil
	}
	newName := RenameFile(filepath.Base(path), doc.RenameReplace, doc.RenameTag)
	if newName == filepath.Base(path) {
		return path, nil
	}
	newPath := filepath.Join(filepath.Dir(path), newName)
	if err := os.Rename(path, newPath); err != nil {
		return path, fmt.Errorf("can not rename %s: %w", path, err)
	}
	return newPath, nil
}

// RenameFile computes the renamed base name.
func RenameFile(name string, replace map[string]string, tag string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	base = ApplyCaptionRules(base, replace, nil)
	if tag != "" {
		base = strings.TrimSpace(base + " " + tag)
	}
	if n := Sanitize(base + ext); n != "" {
		return n
	}
	return name
}

func NewProfileRenamer(profiles facade.IProfileStore) *ProfileRenamer {
	return &ProfileRenamer{profiles: profiles}
}
