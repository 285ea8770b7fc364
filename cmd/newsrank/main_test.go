package main

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLog(t *testing.T) {
	// exercise both modes, should not panic
	setupLog(false, false)
	setupLog(true, true)
	setupLog(true, false, "secret")
}

func TestRun_BadConfig(t *testing.T) {
	err := run(context.Background(), Opts{Config: "no-such-config.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestRun_StartsAndShutsDown(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yml")
	cfgData := `
server:
  listen: "` + addr + `"
database:
  dsn: "file:` + filepath.Join(dir, "test.db") + `?cache=shared&mode=rwc"
sections:
  world:
    feeds:
      - https://example.com/world.xml
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgData), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, Opts{Config: cfgPath})
	}()

	// let the server come up, then trigger shutdown
	time.Sleep(300 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancellation")
	}
}
