// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

const notAvailable = "N/A"

// BuildInfo carries the build metadata injected by linker flags.
type BuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewBuildInfo returns build metadata with empty values replaced by "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	or := func(s string) string {
		if s == "" {
			return notAvailable
		}
		return s
	}

	return BuildInfo{
		Version: or(version),
		Date:    or(date),
		Commit:  or(commit),
	}
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", b.Version, b.Date, b.Commit)
}
