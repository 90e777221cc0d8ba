package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBuildInfo(t *testing.T) {
	info := NewBuildInfo("2.5.0", "", "abc123")

	assert.Equal(t, BuildInfo{Version: "2.5.0", Date: "N/A", Commit: "abc123"}, info)
	assert.Equal(t, "Build version: 2.5.0\nBuild date: N/A\nBuild commit: abc123\n", info.String())
}
