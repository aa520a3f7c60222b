package batch

import (
	"sync"

	"github.com/amirdaaee/TGSaver/internal/link"
)

type Mode int

const (
	ModeBatch Mode = iota
	ModeSingle
)

func (m Mode) String() string {
	if m == ModeSingle {
		return "single"
	}
	return "batch"
}

type Step int

const (
	StepAwaitingLink Step = iota + 1
	StepAwaitingCount
)

// conversation is the pending dialog of a user; it is never persisted.
type conversation struct {
	step Step
	mode Mode
	chat int64
	ref  link.Ref
}

// entry is the in-memory state of one user. Fields other than refs are guarded by mu.
type entry struct {
	mu      sync.Mutex
	conv    *conversation
	running bool

	refs int // guarded by table.mu
}

func (e *entry) idle() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.conv == nil && !e.running
}

// table holds per-user entries. Its lock only covers lookup, insert and prune;
// an entry is dropped once nobody holds it and it has no run or conversation.
// Lock order is table.mu before entry.mu.
//
// Processed keys outlive entries: they are kept for the process lifetime until
// an explicit clear.
type table struct {
	mu      sync.Mutex
	entries map[int64]*entry

	keysMu sync.Mutex
	keys   map[int64]map[string]struct{}
}

func newTable() *table {
	return &table{entries: map[int64]*entry{}, keys: map[int64]map[string]struct{}{}}
}

// seen records key for the user and reports whether it was already there.
func (t *table) seen(userID int64, key string) bool {
	t.keysMu.Lock()
	defer t.keysMu.Unlock()
	set, ok := t.keys[userID]
	if !ok {
		set = map[string]struct{}{}
		t.keys[userID] = set
	}
	if _, dup := set[key]; dup {
		return true
	}
	set[key] = struct{}{}
	return false
}

// clearKeys forgets every processed key and returns how many there were.
func (t *table) clearKeys() int {
	t.keysMu.Lock()
	defer t.keysMu.Unlock()
	n := 0
	for _, set := range t.keys {
		n += len(set)
	}
	t.keys = map[int64]map[string]struct{}{}
	return n
}

func (t *table) acquire(userID int64) *entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[userID]
	if !ok {
		e = &entry{}
		t.entries[userID] = e
	}
	e.refs++
	return e
}

// acquireExisting is acquire without creating; nil when the user has no entry.
func (t *table) acquireExisting(userID int64) *entry {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[userID]
	if !ok {
		return nil
	}
	e.refs++
	return e
}

func (t *table) release(userID int64, e *entry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e.refs--
	if e.refs <= 0 && e.idle() && t.entries[userID] == e {
		delete(t.entries, userID)
	}
}

// each calls fn for every entry with its lock held.
func (t *table) each(fn func(userID int64, e *entry)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for uid, e := range t.entries {
		e.mu.Lock()
		fn(uid, e)
		e.mu.Unlock()
	}
}

// prune drops every unheld idle entry and returns how many went.
func (t *table) prune() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for uid, e := range t.entries {
		if e.refs <= 0 && e.idle() {
			delete(t.entries, uid)
			n++
		}
	}
	return n
}

func (t *table) len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}
