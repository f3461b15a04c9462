// Package memory is an in-process map-backed storage provider. Nothing
// survives a restart; it backs tests and the degraded "keep the app
// usable without persistence" mode.
package memory

import (
	"context"
	"sync"

	"github.com/vitalog/vitalog/internal/storage"
)

// Provider implements storage.Adapter over a mutex-guarded map.
type Provider struct {
	mu     sync.RWMutex
	values map[string]string
}

func New() *Provider {
	return &Provider{values: make(map[string]string)}
}

func (p *Provider) Get(_ context.Context, key string) (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	value, ok := p.values[key]
	if !ok {
		return "", storage.ErrNotFound
	}
	return value, nil
}

func (p *Provider) Set(_ context.Context, key, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.values[key] = value
	return nil
}

func (p *Provider) Remove(_ context.Context, key string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.values, key)
	return nil
}

func (p *Provider) Ping(_ context.Context) error {
	return nil
}

func (p *Provider) Close() error {
	return nil
}
