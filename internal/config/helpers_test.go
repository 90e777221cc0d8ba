package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-rpush/internal/client"
	"github.com/MKhiriev/go-rpush/internal/logger"
	"github.com/MKhiriev/go-rpush/models"
)

// countingResolver records every Resolve call and answers from backends or
// err.
type countingResolver struct {
	calls    int
	backends map[client.Identifier]*client.Backend
	err      error
}

func (r *countingResolver) Resolve(id client.Identifier) (*client.Backend, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	b, ok := r.backends[id]
	if !ok {
		return nil, client.ErrUnknownBackend
	}
	return b, nil
}

func testBackend(id client.Identifier) *client.Backend {
	mt := func(s models.Service) client.MessageType {
		return client.MessageType{
			Service: s,
			Key:     string(id) + ":" + string(s),
			New:     func() models.Notification { return &models.ApnsNotification{} },
		}
	}
	return &client.Backend{
		Name: id,
		Types: client.MessageTypes{
			Apns: mt(models.Apns),
			Gcm:  mt(models.Gcm),
			Wpns: mt(models.Wpns),
			Adm:  mt(models.Adm),
		},
	}
}

// withRoot points Root at a temp directory for the duration of the test.
func withRoot(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	SetRoot(dir)
	t.Cleanup(func() { SetRoot("") })
	return dir
}

// captureDeprecations routes deprecation warnings into the returned buffer.
func captureDeprecations(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetDeprecationLogger(&logger.Logger{Logger: zerolog.New(&buf)})
	t.Cleanup(func() { SetDeprecationLogger(logger.Nop()) })
	return &buf
}

func warnings(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func writeConfigFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func ptr[T any](v T) *T { return &v }
