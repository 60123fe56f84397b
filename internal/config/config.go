package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/five82/responsive/internal/scaling"
)

const defaultConfigPath = "~/.config/responsive/config.toml"

// Config is the parsed config file. Overrides only carries keys present in
// the file, so applying it leaves everything else untouched.
type Config struct {
	Overrides scaling.Overrides
	LogFile   string
	LogLevel  string
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Load reads the config file at path, or the default path when empty. A
// missing file yields an empty Config.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return parse(bytes, formatFor(resolved))
}

// Format is a config file encoding.
type Format int

const (
	TOML Format = iota
	YAML
)

// formatFor picks the encoding from the file extension. Anything that is not
// .yaml or .yml is TOML.
func formatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML
	}
	return TOML
}

func parse(data []byte, format Format) (Config, error) {
	var raw map[string]any
	unmarshal := toml.Unmarshal
	if format == YAML {
		unmarshal = yaml.Unmarshal
	}
	if err := unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	var cfg Config
	var err error
	if cfg.Overrides.BaseWidth, err = optionalNumber(raw, "base_width"); err != nil {
		return Config{}, err
	}

	if v, ok := raw["breakpoints"]; ok {
		table, ok := v.(map[string]any)
		if !ok {
			return Config{}, fmt.Errorf("parse config: breakpoints must be a table")
		}
		bp := &scaling.BreakpointOverrides{}
		if bp.Medium, err = optionalNumber(table, "medium"); err != nil {
			return Config{}, err
		}
		if bp.Large, err = optionalNumber(table, "large"); err != nil {
			return Config{}, err
		}
		if bp.Medium != nil || bp.Large != nil {
			cfg.Overrides.Breakpoints = bp
		}
	}

	cfg.LogFile = strings.TrimSpace(stringValue(raw, "log_file"))
	if cfg.LogFile != "" {
		cfg.LogFile = mustExpand(cfg.LogFile)
	}
	cfg.LogLevel = strings.TrimSpace(stringValue(raw, "log_level"))
	return cfg, nil
}

func optionalNumber(table map[string]any, key string) (*float64, error) {
	v, ok := table[key]
	if !ok {
		return nil, nil
	}
	switch n := v.(type) {
	case int:
		return scaling.Float(float64(n)), nil
	case int64:
		return scaling.Float(float64(n)), nil
	case float64:
		return scaling.Float(n), nil
	}
	return nil, fmt.Errorf("parse config: %s must be a number, got %T", key, v)
}

func stringValue(table map[string]any, key string) string {
	s, _ := table[key].(string)
	return s
}

type fileLayout struct {
	BaseWidth   float64 `toml:"base_width" yaml:"base_width"`
	Breakpoints struct {
		Medium float64 `toml:"medium" yaml:"medium"`
		Large  float64 `toml:"large" yaml:"large"`
	} `toml:"breakpoints" yaml:"breakpoints"`
}

// Encode renders cfg in format, as Save would write it.
func Encode(cfg scaling.Config, format Format) ([]byte, error) {
	var out fileLayout
	out.BaseWidth = cfg.BaseWidth
	out.Breakpoints.Medium = cfg.Breakpoints.Medium
	out.Breakpoints.Large = cfg.Breakpoints.Large

	marshal := toml.Marshal
	if format == YAML {
		marshal = yaml.Marshal
	}
	data, err := marshal(out)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// Save writes cfg to path (default path when empty), creating directories as
// needed. The extension picks the encoding.
func Save(path string, cfg scaling.Config) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	bytes, err := Encode(cfg, formatFor(resolved))
	if err != nil {
		return err
	}
	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// ResolvePath expands path the same way Load does.
func ResolvePath(path string) (string, error) {
	return resolvePath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
