// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/MKhiriev/go-rpush/internal/client/backends"
)

var errNotAbsolute = errors.New("must be an absolute path")

// Validate checks the configuration before the daemon starts: positive
// poll interval and batch size, a known client (when one is set), absolute
// log and pid paths and a positive APNs feedback frequency.
func (c *Configuration) Validate() error {
	ids := backends.Identifiers()
	known := make([]any, 0, len(ids))
	for _, id := range ids {
		known = append(known, id)
	}

	return validation.ValidateStruct(c,
		validation.Field(&c.PushPoll, validation.Required, validation.Min(1)),
		validation.Field(&c.BatchSize, validation.Required, validation.Min(1)),
		validation.Field(&c.client, validation.In(known...)),
		validation.Field(&c.logFile, validation.Required, validation.By(absolutePath)),
		validation.Field(&c.pidFile, validation.Required, validation.By(absolutePath)),
		validation.Field(&c.Apns),
	)
}

func absolutePath(value any) error {
	s, _ := value.(string)
	if !filepath.IsAbs(s) {
		return errNotAbsolute
	}
	return nil
}
