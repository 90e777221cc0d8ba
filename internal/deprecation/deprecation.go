// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package deprecation keeps the table of deprecated configuration
// attributes and forwards writes to them while emitting a warning.
package deprecation

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/go-rpush/internal/logger"
)

// Notice describes a single deprecated attribute.
type Notice struct {
	// Since is the version in which the attribute was deprecated.
	Since string
	// Hint tells the operator what to use instead.
	Hint string
}

// Message renders the warning text for attr.
func (n Notice) Message(attr string) string {
	msg := fmt.Sprintf("%s is deprecated since %s.", attr, n.Since)
	if n.Hint != "" {
		msg += " " + n.Hint
	}

	return msg
}

// Registry maps attribute names to their deprecation notices.
type Registry struct {
	mu      sync.RWMutex
	notices map[string]Notice
	logger  *logger.Logger
}

// NewRegistry returns an empty registry that warns through log.
// A nil log falls back to a stdout logger with the "deprecation" role.
func NewRegistry(log *logger.Logger) *Registry {
	return &Registry{
		notices: make(map[string]Notice),
		logger:  orDefault(log),
	}
}

func orDefault(log *logger.Logger) *logger.Logger {
	if log == nil {
		return logger.NewLogger("deprecation")
	}
	return log
}

// Register installs a notice for attr. Registering the same attribute again
// replaces the previous notice.
func (r *Registry) Register(attr, since, hint string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.notices[attr] = Notice{Since: since, Hint: hint}
}

// Lookup returns the notice registered for attr.
func (r *Registry) Lookup(attr string) (Notice, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.notices[attr]
	return n, ok
}

// SetLogger replaces the logger warnings are written to. A nil log restores
// the stdout logger used by [NewRegistry].
func (r *Registry) SetLogger(log *logger.Logger) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.logger = orDefault(log)
}

// Forward emits one warning for attr and then calls set. Attributes without
// a registered notice are forwarded silently.
func (r *Registry) Forward(attr string, set func()) {
	r.mu.RLock()
	notice, ok := r.notices[attr]
	log := r.logger
	r.mu.RUnlock()

	if ok {
		log.Warn().
			Str("attribute", attr).
			Str("since", notice.Since).
			Str("hint", notice.Hint).
			Msg(notice.Message(attr))
	}

	set()
}
