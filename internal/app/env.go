package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// envPrefix scopes dotenv loading to this application's own keys; a shared
// .env for a whole compose stack must not leak unrelated variables into
// the process.
const envPrefix = "WORDBUBBLE_"

// LoadEnvFiles reads optional dotenv files and applies their WORDBUBBLE_*
// entries to the process environment. Variables already present in the
// real environment win over file values. Missing files are skipped; a
// file that exists but cannot be read is an error.
func LoadEnvFiles(paths ...string) error {
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		b, err := os.ReadFile(p)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load env file %s: %w", p, err)
		}
		applyEnvPairs(string(b))
	}
	return nil
}

func applyEnvPairs(content string) {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if !strings.HasPrefix(key, envPrefix) {
			continue
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		_ = os.Setenv(key, unquote(strings.TrimSpace(val)))
	}
}

func unquote(v string) string {
	if len(v) >= 2 {
		if (v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'') {
			return v[1 : len(v)-1]
		}
	}
	return v
}
