package store

import "sync"

// MemoryBacking keeps documents in a map. Used by tests and as the injected
// backing when the store contract needs exercising without disk I/O.
type MemoryBacking struct {
	mu   sync.RWMutex
	docs map[string][]byte

	// WriteErr, when set, is returned by every Write. Lets tests simulate
	// persistence failures.
	WriteErr error
}

func NewMemoryBacking() *MemoryBacking {
	return &MemoryBacking{docs: make(map[string][]byte)}
}

func (mb *MemoryBacking) Read(name string) ([]byte, bool, error) {
	mb.mu.RLock()
	defer mb.mu.RUnlock()
	data, ok := mb.docs[name]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, true, nil
}

func (mb *MemoryBacking) Write(name string, data []byte) error {
	if mb.WriteErr != nil {
		return mb.WriteErr
	}
	mb.mu.Lock()
	defer mb.mu.Unlock()
	cp := make([]byte, len(data))
	copy(cp, data)
	mb.docs[name] = cp
	return nil
}

func (mb *MemoryBacking) Validate() error { return nil }
