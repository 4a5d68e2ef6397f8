package kv

import "sync"

// MemoryProvider keeps values in a map. Nothing survives Close.
type MemoryProvider struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ Provider = (*MemoryProvider)(nil)

// NewMemoryProvider creates an empty in-memory provider.
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{data: make(map[string][]byte)}
}

// Get implements Provider.
func (p *MemoryProvider) Get(key string) ([]byte, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Put implements Provider.
func (p *MemoryProvider) Put(key string, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	p.data[key] = v
	return nil
}

// Close implements Provider.
func (p *MemoryProvider) Close() error {
	return nil
}
