package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	yaml "gopkg.in/yaml.v3"
)

// Duration decodes both "10s" strings and raw nanosecond integers, which
// plain time.Duration fields do not support under yaml.v3.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		parsed, perr := time.ParseDuration(s)
		if perr != nil {
			return fmt.Errorf("parse duration %q: %w", s, perr)
		}
		*d = Duration(parsed)
		return nil
	}
	var n int64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("duration must be a string like \"10s\" or an integer")
	}
	*d = Duration(n)
	return nil
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		parsed, perr := time.ParseDuration(s)
		if perr != nil {
			return fmt.Errorf("parse duration %q: %w", s, perr)
		}
		*d = Duration(parsed)
		return nil
	}
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("duration must be a string like \"10s\" or an integer")
	}
	*d = Duration(n)
	return nil
}

// FileConfig represents the single-file configuration schema.
// Nested sections improve readability and map naturally to flags/env.
type FileConfig struct {
	Listen string `yaml:"listen" json:"listen"`

	Fetch struct {
		Timeout      Duration `yaml:"timeout" json:"timeout"`
		UserAgent    string   `yaml:"userAgent" json:"userAgent"`
		MaxBodyBytes int64    `yaml:"maxBodyBytes" json:"maxBodyBytes"`
	} `yaml:"fetch" json:"fetch"`

	Analysis struct {
		TopN          int    `yaml:"topN" json:"topN"`
		StopwordsFile string `yaml:"stopwordsFile" json:"stopwordsFile"`
		StopwordsURL  string `yaml:"stopwordsURL" json:"stopwordsURL"`
	} `yaml:"analysis" json:"analysis"`

	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		// Try YAML then JSON
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays values from FileConfig into cfg for any fields
// that still hold their defaults. Flags should already have been parsed;
// this lets file config supply defaults while preserving explicit flags.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}

	if (cfg.Addr == "" || cfg.Addr == DefaultAddr) && fc.Listen != "" {
		cfg.Addr = fc.Listen
	}
	if (cfg.FetchTimeout == 0 || cfg.FetchTimeout == DefaultFetchTimeout) && fc.Fetch.Timeout > 0 {
		cfg.FetchTimeout = time.Duration(fc.Fetch.Timeout)
	}
	if cfg.UserAgent == "" && fc.Fetch.UserAgent != "" {
		cfg.UserAgent = fc.Fetch.UserAgent
	}
	if cfg.MaxBodyBytes == 0 && fc.Fetch.MaxBodyBytes > 0 {
		cfg.MaxBodyBytes = fc.Fetch.MaxBodyBytes
	}
	if (cfg.TopN == 0 || cfg.TopN == DefaultTopN) && fc.Analysis.TopN > 0 {
		cfg.TopN = fc.Analysis.TopN
	}
	if cfg.StopwordsFile == "" && fc.Analysis.StopwordsFile != "" {
		cfg.StopwordsFile = fc.Analysis.StopwordsFile
	}
	if cfg.StopwordsURL == "" && fc.Analysis.StopwordsURL != "" {
		cfg.StopwordsURL = fc.Analysis.StopwordsURL
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}
