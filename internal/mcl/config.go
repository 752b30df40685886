package mcl

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

type Config struct {
	General GeneralConfig `toml:"general"`
	Colors  ColorsConfig  `toml:"colors"`
	Account AccountConfig `toml:"account"`
	Launch  LaunchConfig  `toml:"launch"`
}

type GeneralConfig struct {
	Debug bool `toml:"debug"`
}

type ColorsConfig struct {
	Background      string `toml:"background"`
	Foreground      string `toml:"foreground"`
	BorderFocused   string `toml:"border_focused"`
	BorderUnfocused string `toml:"border_unfocused"`
	RowHighlight    string `toml:"row_highlight"`
	RowAlternateBg  string `toml:"row_alternate_bg"`
	Scrollbar       string `toml:"scrollbar"`
}

type AccountConfig struct {
	Username string `toml:"username"`
	Offline  bool   `toml:"offline"`
}

type LaunchConfig struct {
	Memory     string   `toml:"memory"`
	Resolution string   `toml:"resolution"`
	JVMArgs    []string `toml:"jvm_args"`
	NoWindow   bool     `toml:"no_window"`
}

// Theme is the resolved, immutable color set used for one session.
type Theme struct {
	Background      tcell.Color
	Foreground      tcell.Color
	BorderFocused   tcell.Color
	BorderUnfocused tcell.Color
	RowHighlight    tcell.Color
	RowAlternateBg  tcell.Color
	Scrollbar       tcell.Color
}

func DefaultConfig() Config {
	return Config{
		Colors: ColorsConfig{
			Background:      "reset",
			Foreground:      "white",
			BorderFocused:   "white",
			BorderUnfocused: "darkgray",
			RowHighlight:    "yellow",
			RowAlternateBg:  "#282828",
			Scrollbar:       "white",
		},
		Account: AccountConfig{
			Username: "Player",
		},
		Launch: LaunchConfig{
			Memory:     "Default",
			Resolution: "Default",
			JVMArgs:    []string{},
		},
	}
}

// ConfigPath returns $MCL_CONFIG or <user config dir>/mcl/config.toml.
func ConfigPath() (string, error) {
	if v := strings.TrimSpace(os.Getenv("MCL_CONFIG")); v != "" {
		return v, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "mcl", "config.toml"), nil
}

func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	// 1. Config file
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	if _, err := os.Stat(path); err == nil {
		if err := decodeConfigFile(path, &cfg); err != nil {
			return cfg, err
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	// 2. Env var overrides (highest priority)
	applyEnvOverrides(&cfg)

	if _, err := cfg.Theme(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func decodeConfigFile(path string, cfg *Config) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// WriteDefaultConfig writes the default config to path unless a file already
// exists there. It reports whether a file was written.
func WriteDefaultConfig(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return false, err
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(DefaultConfig()); err != nil {
		return false, fmt.Errorf("write default config: %w", err)
	}
	return true, nil
}

func (c Config) Theme() (Theme, error) {
	var th Theme
	fields := []struct {
		key   string
		value string
		dst   *tcell.Color
	}{
		{"background", c.Colors.Background, &th.Background},
		{"foreground", c.Colors.Foreground, &th.Foreground},
		{"border_focused", c.Colors.BorderFocused, &th.BorderFocused},
		{"border_unfocused", c.Colors.BorderUnfocused, &th.BorderUnfocused},
		{"row_highlight", c.Colors.RowHighlight, &th.RowHighlight},
		{"row_alternate_bg", c.Colors.RowAlternateBg, &th.RowAlternateBg},
		{"scrollbar", c.Colors.Scrollbar, &th.Scrollbar},
	}
	for _, f := range fields {
		col, err := ParseColor(f.value)
		if err != nil {
			return Theme{}, fmt.Errorf("colors.%s: %w", f.key, err)
		}
		*f.dst = col
	}
	return th, nil
}

var namedColors = map[string]tcell.Color{
	"black":        tcell.PaletteColor(0),
	"red":          tcell.PaletteColor(1),
	"green":        tcell.PaletteColor(2),
	"yellow":       tcell.PaletteColor(3),
	"blue":         tcell.PaletteColor(4),
	"magenta":      tcell.PaletteColor(5),
	"cyan":         tcell.PaletteColor(6),
	"gray":         tcell.PaletteColor(7),
	"grey":         tcell.PaletteColor(7),
	"darkgray":     tcell.PaletteColor(8),
	"darkgrey":     tcell.PaletteColor(8),
	"lightred":     tcell.PaletteColor(9),
	"lightgreen":   tcell.PaletteColor(10),
	"lightyellow":  tcell.PaletteColor(11),
	"lightblue":    tcell.PaletteColor(12),
	"lightmagenta": tcell.PaletteColor(13),
	"lightcyan":    tcell.PaletteColor(14),
	"white":        tcell.PaletteColor(15),
	"reset":        tcell.ColorDefault,
}

// ParseColor accepts an ANSI color name or a #rrggbb hex value.
func ParseColor(s string) (tcell.Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if c, ok := namedColors[v]; ok {
		return c, nil
	}
	if strings.HasPrefix(v, "#") {
		if len(v) != 7 {
			return tcell.ColorDefault, fmt.Errorf("invalid hex color %q", s)
		}
		n, err := strconv.ParseUint(v[1:], 16, 32)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid hex color %q", s)
		}
		return tcell.NewHexColor(int32(n)), nil
	}
	return tcell.ColorDefault, fmt.Errorf("invalid color name or hex value %q", s)
}

func parseBool(v string) (bool, error) {
	v = strings.TrimSpace(strings.ToLower(v))
	switch v {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid bool: %s", v)
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MCL_DEBUG"); v != "" {
		if b, err := parseBool(v); err == nil {
			cfg.General.Debug = b
		}
	}
	if v := os.Getenv("MCL_USERNAME"); v != "" {
		cfg.Account.Username = v
	}
	if v := os.Getenv("MCL_OFFLINE"); v != "" {
		if b, err := parseBool(v); err == nil {
			cfg.Account.Offline = b
		}
	}
	if v := os.Getenv("MCL_MEMORY"); v != "" {
		cfg.Launch.Memory = v
	}
	if v := os.Getenv("MCL_RESOLUTION"); v != "" {
		cfg.Launch.Resolution = v
	}
}
