package cli

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/npmkit/pkg/errors"
)

// Environment variables that override the config file.
const (
	envNPM     = "NPMKIT_NPM"
	envJSON    = "NPMKIT_JSON"
	envPlain   = "NPMKIT_PLAIN"
	envCache   = "NPMKIT_CACHE"
	envNoColor = "NO_COLOR"
)

// Config is the resolved configuration for one invocation. It is built once
// before a command runs and read by every command from there on.
type Config struct {
	NPM      string         `toml:"npm"`
	JSON     bool           `toml:"json"`
	Plain    bool           `toml:"plain"`
	Versions VersionsConfig `toml:"versions"`
	Deps     DepsConfig     `toml:"deps"`
	Check    CheckConfig    `toml:"check"`
	Lock     LockConfig     `toml:"lock"`
	Cache    CacheConfig    `toml:"cache"`
}

// VersionsConfig configures the versions command.
type VersionsConfig struct {
	Limit int `toml:"limit"`
}

// DepsConfig configures the deps command.
type DepsConfig struct {
	Max int `toml:"max"`
}

// CheckConfig configures the batch checker.
type CheckConfig struct {
	Packages []string `toml:"packages"`
	Limit    int      `toml:"limit"`
}

// LockConfig configures the lockfile checker.
type LockConfig struct {
	Package string `toml:"package"`
}

// CacheConfig configures the on-disk registry answer cache.
type CacheConfig struct {
	Enabled bool          `toml:"enabled"`
	TTL     time.Duration `toml:"ttl"`
	// Dir overrides the default cache directory.
	Dir string `toml:"dir"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		NPM:      "npm",
		Versions: VersionsConfig{Limit: 5},
		Deps:     DepsConfig{Max: 10},
		Check: CheckConfig{
			Packages: []string{"express", "axios", "lodash"},
			Limit:    3,
		},
		Lock:  LockConfig{Package: "chalk"},
		Cache: CacheConfig{TTL: time.Hour},
	}
}

// configPath returns the config file location using the XDG standard
// (~/.config/npmkit/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// cacheDir returns the registry cache directory using the XDG standard
// (~/.cache/npmkit).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// loadConfig resolves the configuration from defaults, the TOML file and the
// environment, in that order. An explicit path must exist; the default
// location is optional.
func loadConfig(path string, logger *log.Logger) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := configPath()
		if err != nil {
			logger.Debug("no config location", "err", err)
			return cfg, cfg.applyEnv(os.Getenv)
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := cfg.decode(data, path, logger); err != nil {
			return cfg, err
		}
	case os.IsNotExist(err) && !explicit:
		logger.Debug("config file not found, using defaults", "path", path)
	case os.IsNotExist(err):
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file not found at %s", path)
	default:
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	return cfg, cfg.applyEnv(os.Getenv)
}

func (c *Config) decode(data []byte, path string, logger *log.Logger) error {
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "Invalid config %s: %v", path, err)
	}
	for _, key := range md.Undecoded() {
		logger.Warn("unknown config key", "key", key.String(), "path", path)
	}
	if len(c.Check.Packages) == 0 {
		c.Check.Packages = DefaultConfig().Check.Packages
	}
	if strings.TrimSpace(c.NPM) == "" {
		c.NPM = DefaultConfig().NPM
	}
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "Invalid config %s: cache.ttl must not be negative", path)
	}
	logger.Debug("loaded config", "path", path)
	return nil
}

// applyEnv overlays environment variables on c. NO_COLOR set to any
// non-empty value forces plain output.
func (c *Config) applyEnv(getenv func(string) string) error {
	if npm := strings.TrimSpace(getenv(envNPM)); npm != "" {
		c.NPM = npm
	}
	for _, b := range []struct {
		name string
		dst  *bool
	}{
		{envJSON, &c.JSON},
		{envPlain, &c.Plain},
		{envCache, &c.Cache.Enabled},
	} {
		raw := strings.TrimSpace(getenv(b.name))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "Invalid %s: %q (use true or false)", b.name, raw)
		}
		*b.dst = v
	}
	if getenv(envNoColor) != "" {
		c.Plain = true
	}
	return nil
}
