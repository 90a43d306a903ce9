package types

import "time"

// HTTPConfig holds shared HTTP settings for components that talk to the
// AUR server.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "aurum/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// RPCConfig holds settings for the AUR RPC client.
type RPCConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the root of the AUR server (default "https://aur.archlinux.org").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// MaxRetries is the number of retry attempts on HTTP 429 (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// HistoryConfig holds settings for the local search-history store.
type HistoryConfig struct {
	// Enabled controls whether searches are recorded.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// Path is the SQLite database file location.
	Path string `json:"path" yaml:"path"`
}

// Config groups all aurum configuration.
type Config struct {
	RPC     RPCConfig     `json:"rpc" yaml:"rpc"`
	History HistoryConfig `json:"history" yaml:"history"`
}
