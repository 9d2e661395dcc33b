// Copyright 2025 CZD Tech
// Licensed under the Apache License, Version 2.0

package infrastructure

import (
	"sync"

	"github.com/czdtech/planetary-hours/internal/application"
)

// memoryCache memoizes schedules per normalized request key. It has no
// eviction policy; callers own invalidation through Clear. Concurrent
// readers and writers are safe; a race computing the same key twice is
// harmless since the calculation is deterministic.
type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]*application.CalculationResult
}

func NewMemoryCache() application.ScheduleCache {
	return &memoryCache{
		entries: make(map[string]*application.CalculationResult),
	}
}

func (c *memoryCache) Get(key string) (*application.CalculationResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result, ok := c.entries[key]
	return result, ok
}

func (c *memoryCache) Set(key string, result *application.CalculationResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = result
}

func (c *memoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*application.CalculationResult)
}
