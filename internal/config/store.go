package config

import "sync"

var store struct {
	sync.Mutex
	cfg *Configuration
}

// Get returns the process-wide configuration, constructing it with [New] on
// first access.
func Get() *Configuration {
	store.Lock()
	defer store.Unlock()

	if store.cfg == nil {
		store.cfg = New()
	}
	return store.cfg
}

// Set replaces the process-wide configuration. Passing nil makes the next
// [Get] construct a fresh one.
func Set(cfg *Configuration) {
	store.Lock()
	defer store.Unlock()

	store.cfg = cfg
}

// Configure hands the process-wide configuration to fn and then initialises
// the selected client. A nil fn does nothing.
func Configure(fn func(*Configuration) error) error {
	if fn == nil {
		return nil
	}

	cfg := Get()
	if err := fn(cfg); err != nil {
		return err
	}

	return cfg.InitializeClient()
}
