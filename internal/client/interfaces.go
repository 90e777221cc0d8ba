// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

// Resolver turns a backend identifier into a loaded backend.
type Resolver interface {
	// Resolve loads the backend registered under id.
	Resolve(id Identifier) (*Backend, error)
}

// Factory loads a backend. It is called at most once per successful
// client initialisation.
type Factory func() (*Backend, error)
