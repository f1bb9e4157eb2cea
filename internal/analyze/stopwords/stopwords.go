// Package stopwords provides the read-only stopword set used by frequency
// analysis. The embedded English list is the default; callers may replace
// it from a file or URL at startup. Sets are never mutated after load.
package stopwords

import (
	"bufio"
	"context"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
)

//go:embed english.txt
var embedded string

// Set is a case-folded membership set of words to exclude from analysis.
type Set map[string]struct{}

// Contains reports whether word (already lowercased) is a stopword.
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

func (s Set) Len() int { return len(s) }

var (
	defaultOnce sync.Once
	defaultSet  Set
)

// Default returns the embedded English set, parsed once per process.
func Default() Set {
	defaultOnce.Do(func() {
		s, err := Parse(strings.NewReader(embedded))
		if err != nil {
			s = Set{}
		}
		defaultSet = s
	})
	return defaultSet
}

// Parse reads one word per line, ignoring blanks and '#' comments. Words
// are lowercased on the way in.
func Parse(r io.Reader) (Set, error) {
	s := Set{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s[strings.ToLower(line)] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stopwords: %w", err)
	}
	return s, nil
}

// FromFile loads a replacement set from a local list file.
func FromFile(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stopwords file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// FromURL fetches a replacement set over HTTP. Callers treat a failure as
// non-fatal and fall back to Default with a warning.
func FromURL(ctx context.Context, client *http.Client, url string) (Set, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("stopwords request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch stopwords: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch stopwords: status %d", resp.StatusCode)
	}
	return Parse(resp.Body)
}
