// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"sort"
	"sync"
)

// Registry is a table of backend factories keyed by identifier.
type Registry struct {
	mu        sync.RWMutex
	factories map[Identifier]Factory
}

// NewRegistry returns a registry holding the given factories.
func NewRegistry(factories map[Identifier]Factory) *Registry {
	r := &Registry{factories: make(map[Identifier]Factory, len(factories))}
	for id, f := range factories {
		r.factories[id] = f
	}

	return r
}

// Register adds or replaces the factory for id.
func (r *Registry) Register(id Identifier, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.factories[id] = f
}

// Identifiers returns the registered identifiers in sorted order.
func (r *Registry) Identifiers() []Identifier {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]Identifier, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// Resolve implements [Resolver]. Factory errors are wrapped, never
// swallowed.
func (r *Registry) Resolve(id Identifier) (*Backend, error) {
	r.mu.RLock()
	f, ok := r.factories[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("error loading client %q: %w", id, ErrUnknownBackend)
	}

	backend, err := f()
	if err != nil {
		return nil, fmt.Errorf("error loading client %q: %w", id, err)
	}

	if backend == nil {
		return nil, fmt.Errorf("%w: %s returned no backend", ErrIncompleteBackend, id)
	}

	if backend.Name == "" {
		backend.Name = id
	}

	if err = backend.validate(); err != nil {
		return nil, err
	}

	return backend, nil
}
