package config

import (
	"sync"
)

// Provider resolves and caches merged settings for one start directory.
// Кэш живёт до Invalidate(): хост дергает его, когда замечает изменение
// конфигурации. Сам проход переноса состояния не имеет.
type Provider struct {
	mu       sync.Mutex
	startDir string
	cached   *Settings
}

// NewProvider creates a provider rooted at startDir.
func NewProvider(startDir string) *Provider {
	return &Provider{startDir: startDir}
}

// Settings returns the merged settings, loading them on first use.
func (p *Provider) Settings() (Settings, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cached != nil {
		return *p.cached, nil
	}
	s, err := Load(p.startDir)
	if err != nil {
		return s, err
	}
	p.cached = &s
	return s, nil
}

// Invalidate drops the cached settings; the next Settings() reloads.
func (p *Provider) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cached = nil
}
