package app

import (
	"os"
	"strconv"
	"time"
)

// ApplyEnvToConfig populates unset fields of cfg from environment
// variables. Explicit cfg values take precedence over env.
func ApplyEnvToConfig(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Addr == "" || cfg.Addr == DefaultAddr {
		if v := os.Getenv("WORDBUBBLE_ADDR"); v != "" {
			cfg.Addr = v
		}
	}
	if cfg.FetchTimeout == 0 || cfg.FetchTimeout == DefaultFetchTimeout {
		if v := os.Getenv("WORDBUBBLE_FETCH_TIMEOUT"); v != "" {
			if d, err := time.ParseDuration(v); err == nil && d > 0 {
				cfg.FetchTimeout = d
			}
		}
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = os.Getenv("WORDBUBBLE_USER_AGENT")
	}
	if cfg.TopN == 0 || cfg.TopN == DefaultTopN {
		if v := os.Getenv("WORDBUBBLE_TOP_N"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				cfg.TopN = n
			}
		}
	}
	if cfg.StopwordsFile == "" {
		cfg.StopwordsFile = os.Getenv("WORDBUBBLE_STOPWORDS_FILE")
	}
	if cfg.StopwordsURL == "" {
		cfg.StopwordsURL = os.Getenv("WORDBUBBLE_STOPWORDS_URL")
	}
}
