package fakesessionrepo

import (
	"context"
	"sync"

	"github.com/jrsteele09/tollway-portal/sessions"
)

var _ sessions.Repo = (*FakeSessionRepo)(nil)

// FakeSessionRepo keeps session entries in memory. Entries survive for the process lifetime.
type FakeSessionRepo struct {
	entries map[string]map[string]string // sessionID -> key -> value
	lock    sync.RWMutex
}

func NewFakeSessionRepo() *FakeSessionRepo {
	return &FakeSessionRepo{
		entries: make(map[string]map[string]string),
	}
}

func (sr *FakeSessionRepo) Get(_ context.Context, sessionID, key string) (string, bool, error) {
	sr.lock.RLock()
	defer sr.lock.RUnlock()

	values, ok := sr.entries[sessionID]
	if !ok {
		return "", false, nil
	}
	v, ok := values[key]
	return v, ok, nil
}

func (sr *FakeSessionRepo) Set(_ context.Context, sessionID, key, value string) error {
	sr.lock.Lock()
	defer sr.lock.Unlock()

	if _, ok := sr.entries[sessionID]; !ok {
		sr.entries[sessionID] = make(map[string]string)
	}
	sr.entries[sessionID][key] = value
	return nil
}

func (sr *FakeSessionRepo) Delete(_ context.Context, sessionID string, keys ...string) error {
	sr.lock.Lock()
	defer sr.lock.Unlock()

	values, ok := sr.entries[sessionID]
	if !ok {
		return nil
	}
	for _, k := range keys {
		delete(values, k)
	}

	// Clean up empty session map
	if len(values) == 0 {
		delete(sr.entries, sessionID)
	}
	return nil
}

// Len returns the number of sessions holding at least one entry
func (sr *FakeSessionRepo) Len() int {
	sr.lock.RLock()
	defer sr.lock.RUnlock()
	return len(sr.entries)
}
