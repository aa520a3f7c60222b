package state

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/amirdaaee/TGSaver/internal/db/minio"
)

// IBackend stores the serialized run document. Load returns nil data when nothing was saved yet.
//
//go:generate mockgen -source=backend.go -destination=../../mocks/state/backend.go -package=mocks
type IBackend interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// FileBackend replaces the file atomically on every save.
type FileBackend struct {
	Path string
	mux  sync.Mutex
}

var _ IBackend = (*FileBackend)(nil)

func (b *FileBackend) Load(_ context.Context) ([]byte, error) {
	b.mux.Lock()
	defer b.mux.Unlock()
	data, err := os.ReadFile(b.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("can not read %s: %w", b.Path, err)
	}
	return data, nil
}

func (b *FileBackend) Save(_ context.Context, data []byte) error {
	b.mux.Lock()
	defer b.mux.Unlock()
	tmp, err := os.CreateTemp(filepath.Dir(b.Path), ".state-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, b.Path)
}

func NewFileBackend(path string) *FileBackend {
	return &FileBackend{Path: path}
}

// MinioBackend keeps the document as a single object.
type MinioBackend struct {
	cl     minio.IMinioClient
	object string
}

var _ IBackend = (*MinioBackend)(nil)

func (b *MinioBackend) Load(ctx context.Context) ([]byte, error) {
	data, err := b.cl.FileGet(ctx, b.object)
	if err != nil {
		if errors.Is(err, minio.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

func (b *MinioBackend) Save(ctx context.Context, data []byte) error {
	return b.cl.FileAdd(ctx, b.object, data)
}

func NewMinioBackend(cl minio.IMinioClient, object string) *MinioBackend {
	return &MinioBackend{cl: cl, object: object}
}
