package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// EnvConfig names the environment variable holding a config file path.
const EnvConfig = "INCH_CONFIG"

// Load reads configuration with ${VAR} interpolation over Defaults().
// configPath wins when set; otherwise $INCH_CONFIG, then the user config
// directory (inch/config.yaml) if that file exists. With no file at all the
// defaults are returned.
func Load(configPath string, getenv func(string) string) (*Config, error) {
	path, err := resolveConfigPath(configPath, getenv)
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	data = interpolateEnv(data, getenv)

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.Source = path

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// resolveConfigPath returns the config file to read, or "" for none.
// Explicit paths must exist; the implicit user path is optional.
func resolveConfigPath(configPath string, getenv func(string) string) (string, error) {
	if configPath == "" {
		configPath = getenv(EnvConfig)
	}
	if configPath != "" {
		if _, err := os.Stat(configPath); err != nil {
			return "", fmt.Errorf("config file not found: %s", configPath)
		}
		return configPath, nil
	}

	dir := getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home := getenv("HOME")
		if home == "" {
			return "", nil
		}
		dir = filepath.Join(home, ".config")
	}
	candidate := filepath.Join(dir, "inch", "config.yaml")
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}
	return "", nil
}

var envRe = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// interpolateEnv replaces ${VAR} with its value; unset variables become "".
func interpolateEnv(data []byte, getenv func(string) string) []byte {
	return envRe.ReplaceAllFunc(data, func(m []byte) []byte {
		name := envRe.FindSubmatch(m)[1]
		return []byte(getenv(string(name)))
	})
}
