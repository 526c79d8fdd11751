// Package config defines service configuration and its loading.
//
// Conventions:
//   - New returns a Config holding every default.
//   - Load layers an optional YAML file and PORTFOLIO_* env vars on top.
//   - Validation failures wrap ErrInvalidConfig, load failures ErrLoadConfig.
package config

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects text or json log records.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// CatalogPath points at a YAML catalog; empty serves the embedded seed.
	CatalogPath string `koanf:"catalog_path"`

	// BasePath is the deployment prefix asset references are resolved against.
	BasePath string `koanf:"base_path"`

	// ThemeStore selects the preference backend: memory or sqlite.
	ThemeStore string `koanf:"theme_store"`

	// SQLitePath is the database file used when ThemeStore is sqlite.
	SQLitePath string `koanf:"sqlite_path"`

	// DefaultTheme applies to clients without a stored preference.
	DefaultTheme string `koanf:"default_theme"`

	// MemoSize bounds the filter result memo; 0 disables it.
	MemoSize int `koanf:"memo_size"`

	// SecureCookies marks the client id cookie Secure; enable behind HTTPS.
	SecureCookies bool `koanf:"secure_cookies"`

	// SuggestLimit caps title suggestions for empty results; 0 disables them.
	SuggestLimit int `koanf:"suggest_limit"`
}

// Theme store backends.
const (
	ThemeStoreMemory = "memory"
	ThemeStoreSQLite = "sqlite"
)

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:     "info",
		LogFormat:    "text",
		Addr:         ":8080",
		CatalogPath:  "",
		BasePath:     "/",
		ThemeStore:   ThemeStoreMemory,
		SQLitePath:   "portfolio.db",
		DefaultTheme: "light",
		MemoSize:     256,
		SuggestLimit: 3,
	}
}
