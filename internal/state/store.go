// Package state persists the progress of running batches so a restart can find them.
package state

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/amirdaaee/TGSaver/internal/log"
	"github.com/sirupsen/logrus"
)

// RunRecord is the persisted view of one running batch.
type RunRecord struct {
	Total             int  `json:"total"`
	Current           int  `json:"current"`
	Success           int  `json:"success"`
	CancelRequested   bool `json:"cancel_requested"`
	ProgressMessageID int  `json:"progress_message_id"`
}

// IStore is the in-memory run document mirrored to a backend. Every mutation
// rewrites the whole document.
//
//go:generate mockgen -source=store.go -destination=../../mocks/state/store.go -package=mocks
type IStore interface {
	// Load replaces memory with the backend content; unreadable documents load as empty.
	Load(ctx context.Context) error
	Put(ctx context.Context, userID int64, rec RunRecord) error
	// Update applies fn to an existing record; false when the user has none.
	Update(ctx context.Context, userID int64, fn func(*RunRecord)) (bool, error)
	Remove(ctx context.Context, userID int64) error
	Get(userID int64) (RunRecord, bool)
	Snapshot() map[int64]RunRecord
	// Reset writes an empty document.
	Reset(ctx context.Context) error
}

type Store struct {
	backend IBackend
	mu      sync.Mutex
	runs    map[int64]RunRecord
}

var _ IStore = (*Store)(nil)

func (s *Store) Load(ctx context.Context) error {
	ll := s.getLogger("Load")
	data, err := s.backend.Load(ctx)
	if err != nil {
		return err
	}
	runs := map[int64]RunRecord{}
	if len(data) > 0 {
		doc := map[string]RunRecord{}
		if err := json.Unmarshal(data, &doc); err != nil {
			ll.WithError(err).Warn("run document unreadable, starting empty")
		}
		for k, v := range doc {
			uid, err := strconv.ParseInt(k, 10, 64)
			if err != nil {
				ll.Warnf("skipping run of %q", k)
				continue
			}
			runs[uid] = v
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = runs
	return nil
}

func (s *Store) Put(ctx context.Context, userID int64, rec RunRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[userID] = rec
	return s.flush(ctx)
}

func (s *Store) Update(ctx context.Context, userID int64, fn func(*RunRecord)) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.runs[userID]
	if !ok {
		return false, nil
	}
	fn(&rec)
	s.runs[userID] = rec
	return true, s.flush(ctx)
}

func (s *Store) Remove(ctx context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.runs[userID]; !ok {
		return nil
	}
	delete(s.runs, userID)
	return s.flush(ctx)
}

func (s *Store) Get(userID int64) (RunRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.runs[userID]
	return rec, ok
}

func (s *Store) Snapshot() map[int64]RunRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[int64]RunRecord, len(s.runs))
	for k, v := range s.runs {
		out[k] = v
	}
	return out
}

func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs = map[int64]RunRecord{}
	return s.flush(ctx)
}

// flush must be called with mu held.
func (s *Store) flush(ctx context.Context) error {
	doc := make(map[string]RunRecord, len(s.runs))
	for k, v := range s.runs {
		doc[strconv.FormatInt(k, 10)] = v
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	if err := s.backend.Save(ctx, data); err != nil {
		return fmt.Errorf("can not persist runs: %w", err)
	}
	return nil
}

func (s *Store) getLogger(fn string) *logrus.Entry {
	return log.GetLogger(log.StateModule).WithField("func", fmt.Sprintf("%T.%s", s, fn))
}

func NewStore(backend IBackend) *Store {
	return &Store{backend: backend, runs: map[int64]RunRecord{}}
}
