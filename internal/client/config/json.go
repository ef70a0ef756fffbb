package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/voteportal/internal/flagx"
	"github.com/dmitrijs2005/voteportal/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations use
// timex.Duration so they can be written as "1500ms" or as nanoseconds.
// Absent fields leave the current value untouched.
type JsonConfig struct {
	APIBaseURL            string          `json:"api_base_url"`
	ListenAddr            string          `json:"listen_addr"`
	DatabasePath          string          `json:"database_path"`
	RequestTimeout        *timex.Duration `json:"request_timeout"`
	RegisterRedirectDelay *timex.Duration `json:"register_redirect_delay"`
	FallbackRedirectDelay *timex.Duration `json:"fallback_redirect_delay"`
	StrictOfflineLogin    *bool           `json:"strict_offline_login"`
	OnlineCheckInterval   *timex.Duration `json:"online_check_interval"`
	LogLevel              string          `json:"log_level"`
	LogFormat             string          `json:"log_format"`
}

// parseJson overlays cfg with the file named by -c/-config. Without the flag
// it does nothing. Read or decode errors panic.
func parseJson(cfg *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.ListenAddr != "" {
		cfg.ListenAddr = jc.ListenAddr
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RegisterRedirectDelay != nil {
		cfg.RegisterRedirectDelay = jc.RegisterRedirectDelay.Duration
	}
	if jc.FallbackRedirectDelay != nil {
		cfg.FallbackRedirectDelay = jc.FallbackRedirectDelay.Duration
	}
	if jc.StrictOfflineLogin != nil {
		cfg.StrictOfflineLogin = *jc.StrictOfflineLogin
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.LogFormat != "" {
		cfg.LogFormat = jc.LogFormat
	}
}
