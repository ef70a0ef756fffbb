package config

import (
	"os"
	"time"
)

const DefaultAPIBaseURL = "http://localhost:5148/api"

// Config holds runtime settings shared by the portal and the CLI.
type Config struct {
	// APIBaseURL is the remote REST API root, e.g. http://localhost:5148/api.
	APIBaseURL string `env:"PORTAL_API_BASE"`
	ListenAddr string `env:"PORTAL_LISTEN_ADDR"`
	// DatabasePath is the SQLite file holding the persistent client state.
	DatabasePath string `env:"PORTAL_DATABASE_PATH"`

	// RequestTimeout bounds outgoing API calls. Zero means no timeout.
	RequestTimeout time.Duration `env:"PORTAL_REQUEST_TIMEOUT"`

	RegisterRedirectDelay time.Duration `env:"PORTAL_REGISTER_REDIRECT_DELAY"`
	FallbackRedirectDelay time.Duration `env:"PORTAL_FALLBACK_REDIRECT_DELAY"`

	// StrictOfflineLogin makes the offline login fallback compare passwords.
	// Off by default: the fallback accepts any password for a known matric number.
	StrictOfflineLogin bool `env:"PORTAL_STRICT_OFFLINE_LOGIN"`

	// OnlineCheckInterval is how often the terminal client pings the API.
	OnlineCheckInterval time.Duration `env:"PORTAL_ONLINE_CHECK_INTERVAL"`

	LogLevel  string `env:"PORTAL_LOG_LEVEL"`
	LogFormat string `env:"PORTAL_LOG_FORMAT"`
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = DefaultAPIBaseURL
	c.ListenAddr = ":8080"
	c.DatabasePath = "portal.db"
	c.RequestTimeout = 0
	c.RegisterRedirectDelay = 1500 * time.Millisecond
	c.FallbackRedirectDelay = 1200 * time.Millisecond
	c.StrictOfflineLogin = false
	c.OnlineCheckInterval = 30 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig builds a Config from defaults, the optional JSON file, the
// command-line flags and the environment, in that order. It panics on
// unreadable input, so call it from main only.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	parseEnv(cfg)
	return cfg
}
