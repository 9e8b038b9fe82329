package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	return home
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 0.9, cfg.Slider.WidthRatio)
	assert.Equal(t, 0.4, cfg.Slider.HeightRatio)
	assert.Equal(t, 60, cfg.Settle.FPS)
	assert.Equal(t, 10.0, cfg.Settle.Frequency)
	assert.Equal(t, 1.0, cfg.Settle.Damping, "the release spring is critically damped")
	assert.True(t, cfg.Watch)
	assert.Empty(t, cfg.Validate(), "defaults must already be valid")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string
		check  func(t *testing.T, c *Config)
	}{
		{
			name:   "unknown theme",
			mutate: func(c *Config) { c.Theme = "neon" },
			field:  "theme",
			check:  func(t *testing.T, c *Config) { assert.Equal(t, "dark", c.Theme) },
		},
		{
			name:   "width ratio above one",
			mutate: func(c *Config) { c.Slider.WidthRatio = 1.5 },
			field:  "slider.width_ratio",
			check:  func(t *testing.T, c *Config) { assert.Equal(t, 0.9, c.Slider.WidthRatio) },
		},
		{
			name:   "max below min",
			mutate: func(c *Config) { c.Slider.MinWidth = 30; c.Slider.MaxWidth = 20 },
			field:  "slider.max_width",
			check:  func(t *testing.T, c *Config) { assert.Equal(t, 100, c.Slider.MaxWidth) },
		},
		{
			name:   "underdamped spring",
			mutate: func(c *Config) { c.Settle.Damping = 0.3 },
			field:  "settle.damping",
			check:  func(t *testing.T, c *Config) { assert.Equal(t, 1.0, c.Settle.Damping) },
		},
		{
			name:   "zero fps",
			mutate: func(c *Config) { c.Settle.FPS = 0 },
			field:  "settle.fps",
			check:  func(t *testing.T, c *Config) { assert.Equal(t, 60, c.Settle.FPS) },
		},
		{
			name:   "negative inset",
			mutate: func(c *Config) { c.Insets.Top = -1 },
			field:  "insets.top",
			check:  func(t *testing.T, c *Config) { assert.Equal(t, 1, c.Insets.Top) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			fixed := cfg.Validate()
			assert.Contains(t, fixed, tt.field)
			tt.check(t, cfg)
		})
	}
}

func TestFrameInterval(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, time.Second/60, cfg.FrameInterval())

	cfg.Settle.FPS = 0
	assert.Equal(t, time.Second, cfg.FrameInterval())
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	home := withHome(t)

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig(), cfg)

	data, err := os.ReadFile(filepath.Join(home, configDirName, ConfigFileName))
	require.NoError(t, err, "default config should be written on first load")

	var onDisk Config
	require.NoError(t, json.Unmarshal(data, &onDisk))
	assert.Equal(t, *DefaultConfig(), onDisk)
}

func TestLoadConfigRoundTripsSavedValues(t *testing.T) {
	withHome(t)

	cfg := DefaultConfig()
	cfg.ContentFile = "/tmp/page.md"
	cfg.Settle.Velocity = 42
	require.NoError(t, SaveConfig(cfg))

	loaded := LoadConfig()
	assert.Equal(t, "/tmp/page.md", loaded.ContentFile)
	assert.Equal(t, 42.0, loaded.Settle.Velocity)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	home := withHome(t)
	dir := filepath.Join(home, configDirName)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{"theme":"light"}`), 0644))

	cfg := LoadConfig()
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, 60, cfg.Settle.FPS)
	assert.Equal(t, 3, cfg.Slider.HandleWidth)
}

func TestLoadConfigCorruptFileIsBackedUp(t *testing.T) {
	home := withHome(t)
	dir := filepath.Join(home, configDirName)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(`{not json`), 0644))

	cfg := LoadConfig()
	assert.Equal(t, DefaultConfig(), cfg)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var backups int
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ConfigFileName+".corrupt.") {
			backups++
		}
	}
	assert.Equal(t, 1, backups)
}

func TestFileLock(t *testing.T) {
	dir := t.TempDir()
	lock := NewFileLock(filepath.Join(dir, ConfigFileName))

	require.NoError(t, lock.Lock())
	assert.Error(t, lock.Lock(), "re-locking a held lock must fail")
	assert.Error(t, lock.RLock())
	require.NoError(t, lock.Unlock())
	require.NoError(t, lock.Unlock(), "unlocking twice is a no-op")

	require.NoError(t, lock.RLock())
	require.NoError(t, lock.Unlock())

	_, err := os.Stat(filepath.Join(dir, lockFileName))
	assert.NoError(t, err, "lock file lives next to the guarded file")
}
