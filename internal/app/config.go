package app

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// StorageKind selects the durable storage backend.
type StorageKind string

const (
	StorageFile   StorageKind = "file"   // plain JSON file under Home
	StorageSealed StorageKind = "sealed" // passphrase-sealed file under Home
	StorageMemory StorageKind = "memory" // nothing survives the process
)

// Environment variables read by ApplyEnv.
const (
	EnvAPIURL     = "WALLETGG_API_URL"
	EnvHome       = "WALLETGG_HOME"
	EnvPassphrase = "WALLETGG_PASSPHRASE"
)

// DefaultAPIURL is the development API address.
const DefaultAPIURL = "http://127.0.0.1:8000/"

// Config holds runtime wiring options for building the app.
type Config struct {
	APIURL    string        `yaml:"api_url"`    // remote API base, e.g. http://127.0.0.1:8000/
	Home      string        `yaml:"home"`       // storage directory, e.g. $HOME/.walletgg
	Timeout   time.Duration `yaml:"timeout"`    // per request; 0 disables
	RateLimit float64       `yaml:"rate_limit"` // requests per second; 0 disables
	RateBurst int           `yaml:"rate_burst"`
	LogLevel  string        `yaml:"log_level"`  // logrus level name
	LogFormat string        `yaml:"log_format"` // text or json
	Storage   StorageKind   `yaml:"storage"`

	Passphrase string       `yaml:"-"` // sealed storage only; never read from the file
	HTTP       *http.Client `yaml:"-"` // optional; defaults to a fresh client
}

// DefaultHome returns $HOME/.walletgg, or .walletgg when there is no home.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".walletgg"
	}
	return filepath.Join(home, ".walletgg")
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		APIURL:    DefaultAPIURL,
		Home:      DefaultHome(),
		Timeout:   30 * time.Second,
		RateBurst: 1,
		LogLevel:  "warning",
		LogFormat: "text",
		Storage:   StorageFile,
	}
}

// ConfigPath is the config file read when no path is given.
func ConfigPath(home string) string {
	return filepath.Join(home, "config.yaml")
}

// Load overlays the YAML file at path on base. A missing file is fine unless
// required is set.
func Load(base Config, path string, required bool) (Config, error) {
	cfg := base
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from the environment. getenv is usually os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvAPIURL); v != "" {
		c.APIURL = v
	}
	if v := getenv(EnvHome); v != "" {
		c.Home = v
	}
	if v := getenv(EnvPassphrase); v != "" {
		c.Passphrase = v
	}
}

// Validate reports the first setting that cannot work.
func (c Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("api_url %q: want an absolute http(s) url", c.APIURL)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout %s: must not be negative", c.Timeout)
	}
	if c.RateLimit < 0 {
		return fmt.Errorf("rate_limit %g: must not be negative", c.RateLimit)
	}
	switch c.Storage {
	case StorageFile, StorageMemory:
	case StorageSealed:
		if c.Passphrase == "" {
			return fmt.Errorf("storage %q needs a passphrase (%s)", c.Storage, EnvPassphrase)
		}
	default:
		return fmt.Errorf("storage %q: want one of file, sealed, memory", c.Storage)
	}
	if c.Storage != StorageMemory && strings.TrimSpace(c.Home) == "" {
		return errors.New("home: must be set")
	}
	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("log_format %q: want text or json", c.LogFormat)
	}
	return nil
}
