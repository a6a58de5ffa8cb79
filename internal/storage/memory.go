package storage

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore is a map-backed Adapter for tests. FailWith makes every
// subsequent Save and Clear fail, so tests can assert the domain store's
// swallow-and-record behaviour.
type MemoryStore struct {
	mu    sync.Mutex
	slots map[string][]byte
	err   error
}

// NewMemoryStore creates an empty in-memory adapter.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{slots: map[string][]byte{}}
}

// FailWith makes subsequent writes fail with err. Pass nil to heal.
func (m *MemoryStore) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Load decodes the slot into out; malformed payloads report absent.
func (m *MemoryStore) Load(ctx context.Context, slot string, out any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	payload, ok := m.slots[slot]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return false, nil
	}
	return true, nil
}

// Save stores the encoded payload.
func (m *MemoryStore) Save(ctx context.Context, slot string, v any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m.slots[slot] = payload
	return nil
}

// Clear removes the slot.
func (m *MemoryStore) Clear(ctx context.Context, slot string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	delete(m.slots, slot)
	return nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error { return nil }

// SetRaw places a raw payload into a slot, bypassing encoding. Tests use it
// to simulate malformed persisted data.
func (m *MemoryStore) SetRaw(slot string, payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[slot] = payload
}

// Has reports whether the slot currently holds a payload.
func (m *MemoryStore) Has(slot string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.slots[slot]
	return ok
}
