package tui

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSSHServerServeStopsWithContext(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "runs.db")

	server, err := NewSSHServer(cfg, quietLogger())
	require.NoError(t, err)
	assert.FileExists(t, cfg.HostKeyPath, "host key is generated on first start")
	require.NotNil(t, server.store)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Serve(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
	assert.Nil(t, server.store, "store is closed on shutdown")
}

func TestSSHServerServeReportsBindError(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "256.0.0.1:22"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "runs.db")

	server, err := NewSSHServer(cfg, quietLogger())
	require.NoError(t, err)

	err = server.Serve(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot listen on 256.0.0.1:22")
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()

	assert.Equal(t, ":23234", cfg.Address)
	assert.Equal(t, 30*time.Minute, cfg.IdleTimeout)
	assert.Equal(t, 60, cfg.TickRate)
}
