package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_DeliversReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chat.toml")
	require.NoError(t, os.WriteFile(path, []byte(`model = "flash"`), 0o644))

	updates, stop, err := Watch(path)
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(path, []byte(`model = "pro"`), 0o644))

	select {
	case cfg := <-updates:
		assert.Equal(t, "pro", cfg.Model)
	case <-time.After(3 * time.Second):
		t.Fatal("no config update received")
	}
}

func TestWatch_SkipsBrokenConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chat.toml")
	require.NoError(t, os.WriteFile(path, []byte(`model = "flash"`), 0o644))

	updates, stop, err := Watch(path)
	require.NoError(t, err)
	defer stop()

	// A syntactically broken file is skipped; a later good write still lands.
	require.NoError(t, os.WriteFile(path, []byte(`model = `), 0o644))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(`model = "lite"`), 0o644))

	deadline := time.After(3 * time.Second)
	for {
		select {
		case cfg := <-updates:
			if cfg.Model == "lite" {
				return
			}
		case <-deadline:
			t.Fatal("no config update received after broken write")
		}
	}
}

func TestWatch_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chat.toml")
	require.NoError(t, os.WriteFile(path, []byte(`model = "flash"`), 0o644))

	updates, stop, err := Watch(path)
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0o644))

	select {
	case cfg := <-updates:
		t.Fatalf("unexpected update: %+v", cfg)
	case <-time.After(300 * time.Millisecond):
	}
}
