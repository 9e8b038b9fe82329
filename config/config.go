package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"whitebox/log"
)

const (
	ConfigFileName = "config.json"
	configDirName  = ".whitebox"
)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config home directory: %w", err)
	}
	return filepath.Join(homeDir, configDirName), nil
}

// SliderConfig sizes the comparison slider relative to the terminal.
type SliderConfig struct {
	// WidthRatio is the share of the terminal width the slider may take.
	WidthRatio float64 `json:"width_ratio"`
	// HeightRatio is the share of the terminal height the slider may take.
	HeightRatio float64 `json:"height_ratio"`
	// MaxWidth caps the slider width in columns.
	MaxWidth int `json:"max_width"`
	// MaxHeight caps the slider height in rows.
	MaxHeight int `json:"max_height"`
	// MinWidth is the smallest usable slider width. Below it a warning is shown.
	MinWidth int `json:"min_width"`
	// MinHeight is the smallest usable slider height.
	MinHeight int `json:"min_height"`
	// HandleWidth is the width of the drag handle in columns.
	HandleWidth int `json:"handle_width"`
}

// SettleConfig tunes the spring that runs when a drag is released.
type SettleConfig struct {
	FPS       int     `json:"fps"`
	Frequency float64 `json:"frequency"`
	Damping   float64 `json:"damping"`
	// Velocity is the release impulse in columns per second.
	Velocity float64 `json:"velocity"`
}

// Insets is the safe-area padding around the page.
type Insets struct {
	Top        int `json:"top"`
	Bottom     int `json:"bottom"`
	Horizontal int `json:"horizontal"`
}

// Config represents the application configuration
type Config struct {
	// ContentFile is a markdown file with front matter describing the page.
	// Empty means the built-in welcome page.
	ContentFile string `json:"content_file"`
	// Theme is the glamour style used for the markdown body.
	Theme string `json:"theme"`
	// Watch reloads the page when the content file or its images change.
	Watch bool `json:"watch"`

	Slider SliderConfig `json:"slider"`
	Settle SettleConfig `json:"settle"`
	Insets Insets       `json:"insets"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		ContentFile: "",
		Theme:       "dark",
		Watch:       true,
		Slider: SliderConfig{
			WidthRatio:  0.9,
			HeightRatio: 0.4,
			MaxWidth:    100,
			MaxHeight:   20,
			MinWidth:    10,
			MinHeight:   3,
			HandleWidth: 3,
		},
		Settle: SettleConfig{
			FPS:       60,
			Frequency: 10,
			Damping:   1.0,
			Velocity:  20,
		},
		Insets: Insets{
			Top:        1,
			Bottom:     1,
			Horizontal: 2,
		},
	}
}

var themes = map[string]bool{"dark": true, "light": true, "notty": true, "ascii": true}

// Validate replaces values that cannot work with their defaults and
// returns the names of the fields it repaired.
func (c *Config) Validate() []string {
	def := DefaultConfig()
	var fixed []string
	fix := func(name string, bad bool, apply func()) {
		if bad {
			apply()
			fixed = append(fixed, name)
		}
	}

	fix("theme", !themes[c.Theme], func() { c.Theme = def.Theme })

	s := &c.Slider
	fix("slider.width_ratio", s.WidthRatio <= 0 || s.WidthRatio > 1, func() { s.WidthRatio = def.Slider.WidthRatio })
	fix("slider.height_ratio", s.HeightRatio <= 0 || s.HeightRatio > 1, func() { s.HeightRatio = def.Slider.HeightRatio })
	fix("slider.min_width", s.MinWidth < 1, func() { s.MinWidth = def.Slider.MinWidth })
	fix("slider.min_height", s.MinHeight < 1, func() { s.MinHeight = def.Slider.MinHeight })
	fix("slider.max_width", s.MaxWidth < s.MinWidth, func() { s.MaxWidth = max(def.Slider.MaxWidth, s.MinWidth) })
	fix("slider.max_height", s.MaxHeight < s.MinHeight, func() { s.MaxHeight = max(def.Slider.MaxHeight, s.MinHeight) })
	fix("slider.handle_width", s.HandleWidth < 1, func() { s.HandleWidth = def.Slider.HandleWidth })

	st := &c.Settle
	fix("settle.fps", st.FPS < 1 || st.FPS > 240, func() { st.FPS = def.Settle.FPS })
	fix("settle.frequency", st.Frequency <= 0, func() { st.Frequency = def.Settle.Frequency })
	fix("settle.damping", st.Damping < 1, func() { st.Damping = def.Settle.Damping })
	fix("settle.velocity", st.Velocity < 0, func() { st.Velocity = def.Settle.Velocity })

	in := &c.Insets
	fix("insets.top", in.Top < 0, func() { in.Top = def.Insets.Top })
	fix("insets.bottom", in.Bottom < 0, func() { in.Bottom = def.Insets.Bottom })
	fix("insets.horizontal", in.Horizontal < 0, func() { in.Horizontal = def.Insets.Horizontal })

	return fixed
}

// FrameInterval is the settle animation tick interval.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(max(c.Settle.FPS, 1))
}

// LoadConfig reads the configuration from disk. It never fails: a missing file
// is created with defaults, an unreadable one is backed up and replaced by defaults.
func LoadConfig() *Config {
	configDir, err := GetConfigDir()
	if err != nil {
		log.ErrorLog.Printf("failed to get config directory: %v", err)
		return DefaultConfig()
	}

	configPath := filepath.Join(configDir, ConfigFileName)
	data, err := readConfigFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			defaultCfg := DefaultConfig()
			if saveErr := saveConfig(defaultCfg); saveErr != nil {
				log.WarningLog.Printf("failed to save default config: %v", saveErr)
			}
			return defaultCfg
		}

		log.WarningLog.Printf("failed to get config file: %v", err)
		return DefaultConfig()
	}

	// Start from defaults so fields missing in older files keep sane values.
	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		preview := string(data)
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		log.ErrorLog.Printf("failed to parse config file at %s: %v\nConfig content preview: %s", configPath, err, preview)

		backupPath := configPath + ".corrupt." + time.Now().Format("20060102-150405")
		if backupErr := os.WriteFile(backupPath, data, 0644); backupErr == nil {
			log.InfoLog.Printf("Backed up corrupted config to: %s", backupPath)
		}

		return DefaultConfig()
	}

	if fixed := config.Validate(); len(fixed) > 0 {
		log.WarningLog.Printf("config %s: reset invalid fields to defaults: %v", configPath, fixed)
	}

	return config
}

// readConfigFile reads the config under a shared lock. The lock is released
// before returning so a following save can take the exclusive lock.
func readConfigFile(path string) ([]byte, error) {
	if _, err := os.Stat(filepath.Dir(path)); err == nil {
		lock := NewFileLock(path)
		if err := lock.RLock(); err != nil {
			log.WarningLog.Printf("failed to acquire read lock: %v", err)
		} else {
			defer lock.Unlock()
		}
	}
	return os.ReadFile(path)
}

// saveConfig saves the configuration to disk while holding the config lock.
func saveConfig(config *Config) error {
	configDir, err := GetConfigDir()
	if err != nil {
		return fmt.Errorf("failed to get config directory: %w", err)
	}

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, ConfigFileName)

	lock := NewFileLock(configPath)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire write lock: %w", err)
	}
	defer lock.Unlock()

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(configPath, data, 0644)
}

// SaveConfig exports the saveConfig function for use by other packages
func SaveConfig(config *Config) error {
	return saveConfig(config)
}
