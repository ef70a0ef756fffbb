// Package config loads runtime configuration for the voting portal and its
// terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags.
//  4. Environment variables, which win over everything else.
//
// The remote API base address therefore resolves as PORTAL_API_BASE, then
// the runtime override (-a or "api_base_url"), then http://localhost:5148/api.
//
// Supported flags
//
//	-a string     remote API base address
//	-l string     listen address of the portal
//	-d string     path of the local state database
//	-t duration   outgoing request timeout (0 disables it)
//	-s            strict offline login (check the password in fallback)
//	-p duration   API ping interval of the terminal client
//	-v string     log level: debug, info, warn, error
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:5148/api",
//	  "listen_addr": ":8080",
//	  "database_path": "portal.db",
//	  "request_timeout": "0s",
//	  "register_redirect_delay": "1500ms",
//	  "fallback_redirect_delay": "1200ms",
//	  "strict_offline_login": false,
//	  "online_check_interval": "30s",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
package config
