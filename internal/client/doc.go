// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client describes pluggable client backends.
//
// A backend supplies the four notification message types (APNs, GCM, WPNS
// and ADM) together with whatever storage plumbing it needs. Backends are
// registered in a [Registry] under a short [Identifier] and resolved by the
// configuration when the operator selects one.
package client
