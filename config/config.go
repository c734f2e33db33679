package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

type (
	app struct {
		Name     string `json:"name" mapstructure:"name"`
		Env      string `json:"env" mapstructure:"env"`
		Timezone string `json:"timezone" mapstructure:"timezone"`
		LogLevel string `json:"log_level" mapstructure:"log_level"`
		LogFile  string `json:"log_file" mapstructure:"log_file"` // used while the TUI owns the terminal
	}

	// api describes the back-office API the console reads from
	api struct {
		BaseURL   string `json:"base_url" mapstructure:"base_url"`
		Timeout   string `json:"timeout" mapstructure:"timeout"`
		ClientID  string `json:"client_id" mapstructure:"client_id"`
		SecretKey string `json:"secret_key" mapstructure:"secret_key"`
		TokenTTL  string `json:"token_ttl" mapstructure:"token_ttl"`
	}

	cache struct {
		StatusTTL        string `json:"status_ttl" mapstructure:"status_ttl"`
		StatusMaxEntries int    `json:"status_max_entries" mapstructure:"status_max_entries"`
	}

	screens struct {
		PerPage int `json:"per_page" mapstructure:"per_page"`
	}

	sandbox struct {
		Port         int    `json:"port" mapstructure:"port"`
		Seed         uint64 `json:"seed" mapstructure:"seed"`
		Records      int    `json:"records" mapstructure:"records"`
		FixturesPath string `json:"fixtures_path" mapstructure:"fixtures_path"`
		MaxPerPage   int    `json:"max_per_page" mapstructure:"max_per_page"`
	}

	auth struct {
		Enabled   bool           `json:"enabled" mapstructure:"enabled"`
		Algorithm string         `json:"algorithm" mapstructure:"algorithm"`
		Clients   []ClientConfig `json:"clients" mapstructure:"clients"`
	}

	// ClientConfig is one API client allowed to call the sandbox
	ClientConfig struct {
		ClientID    string   `json:"client_id" mapstructure:"client_id"`
		ClientName  string   `json:"client_name" mapstructure:"client_name"`
		SecretKey   string   `json:"secret_key" mapstructure:"secret_key"`
		Permissions []string `json:"permissions" mapstructure:"permissions"`
		Active      bool     `json:"active" mapstructure:"active"`
	}

	Config struct {
		App     app     `json:"app" mapstructure:"app"`
		API     api     `json:"api" mapstructure:"api"`
		Cache   cache   `json:"cache" mapstructure:"cache"`
		Screens screens `json:"screens" mapstructure:"screens"`
		Sandbox sandbox `json:"sandbox" mapstructure:"sandbox"`
		Auth    auth    `json:"auth" mapstructure:"auth"`
	}

	// AuthConfig is an alias for the internal auth struct for external access
	AuthConfig = auth
	// APIConfig is an alias for the internal api struct for external access
	APIConfig = api
	// SandboxConfig is an alias for the internal sandbox struct for external access
	SandboxConfig = sandbox
)

var (
	cfg *Config
	mu  sync.RWMutex
)

// setDefaults registers every key so env overrides apply even without a file
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "agency-console")
	v.SetDefault("app.env", "prod")
	v.SetDefault("app.timezone", "UTC")
	v.SetDefault("app.log_level", "warn")
	v.SetDefault("app.log_file", "")

	v.SetDefault("api.base_url", "http://localhost:3000/v1")
	v.SetDefault("api.timeout", "15s")
	v.SetDefault("api.client_id", "")
	v.SetDefault("api.secret_key", "")
	v.SetDefault("api.token_ttl", "15m")

	v.SetDefault("cache.status_ttl", "10m")
	v.SetDefault("cache.status_max_entries", 32)

	v.SetDefault("screens.per_page", 15)

	v.SetDefault("sandbox.port", 3000)
	v.SetDefault("sandbox.seed", 20240501)
	v.SetDefault("sandbox.records", 120)
	v.SetDefault("sandbox.fixtures_path", "")
	v.SetDefault("sandbox.max_per_page", 100)

	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.algorithm", "HS256")
	v.SetDefault("auth.clients", []ClientConfig{})
}

// Init loads configuration. An explicit path must exist; otherwise .config.json is
// looked up in the working directory and then the XDG config directory, and missing
// files fall back to defaults. AGENCY_* environment variables override both.
func Init(path string) error {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("AGENCY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(".config")
		v.SetConfigType("json")
		v.AddConfigPath("./")
		v.AddConfigPath(filepath.Join(xdg.ConfigHome, "agency-console"))
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	loaded := &Config{}
	if err := v.Unmarshal(loaded); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	Set(loaded)
	return nil
}

// Default returns the configuration used when no file or env override exists
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	out := &Config{}
	_ = v.Unmarshal(out)
	return out
}

// Set replaces the current configuration, mainly for tests
func Set(c *Config) {
	mu.Lock()
	defer mu.Unlock()
	cfg = c
}

// Get returns the current configuration instance, defaults if Init never ran
func Get() *Config {
	mu.RLock()
	current := cfg
	mu.RUnlock()
	if current != nil {
		return current
	}

	mu.Lock()
	defer mu.Unlock()
	if cfg == nil {
		cfg = Default()
	}
	return cfg
}

// Duration parses a duration setting such as "15s", falling back when it is empty
// or malformed
func Duration(value string, fallback time.Duration) time.Duration {
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
