package cli

import (
	"path/filepath"
	"testing"
)

func TestCacheDir_XDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/custom/cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if dir != filepath.Join("/custom/cache", appName) {
		t.Errorf("cacheDir() = %q, want /custom/cache/%s", dir, appName)
	}
}

func TestCacheDir_Home(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	t.Setenv("HOME", "/home/tester")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	want := filepath.Join("/home/tester", ".cache", appName)
	if dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestStoreDir_XDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/custom/data")

	dir, err := storeDir()
	if err != nil {
		t.Fatalf("storeDir() error: %v", err)
	}
	want := filepath.Join("/custom/data", appName, "archives")
	if dir != want {
		t.Errorf("storeDir() = %q, want %q", dir, want)
	}
}

func TestConfigPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	path, err := configPath()
	if err != nil {
		t.Fatalf("configPath() error: %v", err)
	}
	want := filepath.Join("/custom/config", appName, "config.toml")
	if path != want {
		t.Errorf("configPath() = %q, want %q", path, want)
	}
}
