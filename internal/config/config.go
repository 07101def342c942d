package config

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything a single upload pass needs.
type Config struct {
	SnapshotURL     string
	PrinterEndpoint string
	User            string
	Password        string
	OctoPrintURL    string
	OctoPrintAPIKey string
	Timeout         time.Duration
	LogLevel        string
	LogFormat       string
}

const (
	defaultConfigPath = "~/.config/printcam/config.toml"
	defaultTimeout    = 10 * time.Second
	defaultLogLevel   = "info"
	defaultLogFormat  = "text"
)

// fileConfig mirrors the optional TOML file.
type fileConfig struct {
	SnapshotURL     string `toml:"snapshot_url"`
	PrinterEndpoint string `toml:"printer_endpoint"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	OctoPrintURL    string `toml:"octoprint_url"`
	OctoPrintAPIKey string `toml:"octoprint_api_key"`
	Timeout         string `toml:"timeout"`
	LogLevel        string `toml:"log_level"`
	LogFormat       string `toml:"log_format"`
}

// envConfig mirrors the environment. Every field is a string so that a
// variable exported as empty behaves like an unset one.
type envConfig struct {
	SnapshotURL     string `envconfig:"SNAPSHOT_URL"`
	PrinterEndpoint string `envconfig:"PRINTER_ENDPOINT"`
	User            string `envconfig:"USER"`
	Password        string `envconfig:"PASSWORD"`
	OctoPrintURL    string `envconfig:"OCTOPRINT_URL"`
	OctoPrintAPIKey string `envconfig:"OCTOPRINT_API_KEY"`
	Timeout         string `envconfig:"PRINTCAM_TIMEOUT"`
	LogLevel        string `envconfig:"PRINTCAM_LOG_LEVEL"`
	LogFormat       string `envconfig:"PRINTCAM_LOG_FORMAT"`
}

// Load reads the optional config file at path, overlays the environment and
// validates the result. A missing file is not an error.
func Load(path string) (Config, error) {
	file, err := loadFile(path)
	if err != nil {
		return Config{}, err
	}

	var env envConfig
	if err := envconfig.Process("", &env); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}

	timeoutRaw := pick(env.Timeout, file.Timeout)
	cfg := Config{
		SnapshotURL:     pick(env.SnapshotURL, file.SnapshotURL),
		PrinterEndpoint: pick(env.PrinterEndpoint, file.PrinterEndpoint),
		User:            pick(env.User, file.User),
		Password:        pick(env.Password, file.Password),
		OctoPrintURL:    pick(env.OctoPrintURL, file.OctoPrintURL),
		OctoPrintAPIKey: pick(env.OctoPrintAPIKey, file.OctoPrintAPIKey),
		Timeout:         defaultTimeout,
		LogLevel:        pick(env.LogLevel, file.LogLevel, defaultLogLevel),
		LogFormat:       pick(env.LogFormat, file.LogFormat, defaultLogFormat),
	}
	if timeoutRaw != "" {
		d, err := time.ParseDuration(timeoutRaw)
		if err != nil {
			return Config{}, fmt.Errorf("parse timeout %q: %w", timeoutRaw, err)
		}
		cfg.Timeout = d
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every missing required value at once, then checks URLs
// and the timeout.
func (c Config) Validate() error {
	var missing []string
	if c.SnapshotURL == "" {
		missing = append(missing, "SNAPSHOT_URL")
	}
	if c.PrinterEndpoint == "" {
		missing = append(missing, "PRINTER_ENDPOINT")
	}
	if c.User == "" {
		missing = append(missing, "USER")
	}
	if c.Password == "" {
		missing = append(missing, "PASSWORD")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if err := checkURL("SNAPSHOT_URL", c.SnapshotURL); err != nil {
		return err
	}
	if err := checkURL("PRINTER_ENDPOINT", c.PrinterEndpoint); err != nil {
		return err
	}
	if c.StatusEnabled() {
		if err := checkURL("OCTOPRINT_URL", c.OctoPrintURL); err != nil {
			return err
		}
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

// StatusEnabled reports whether printer status should be fetched.
func (c Config) StatusEnabled() bool {
	return c.OctoPrintURL != ""
}

func loadFile(path string) (fileConfig, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return fileConfig{}, err
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileConfig{}, nil
		}
		return fileConfig{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config: %w", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fileConfig{}, fmt.Errorf("parse config: %w", err)
	}
	return raw, nil
}

func checkURL(key, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse %s %q: %w", key, raw, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%s must be an absolute http(s) URL, got %q", key, raw)
	}
	return nil
}

// pick returns the first value that is non-empty after trimming.
func pick(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
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
