package app

import "time"

// Defaults used by flag parsing and config merging.
const (
	DefaultAddr         = ":8080"
	DefaultFetchTimeout = 10 * time.Second
	DefaultTopN         = 25
)

// Config holds runtime configuration for the application.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string

	// Fetching
	FetchTimeout time.Duration
	UserAgent    string
	MaxBodyBytes int64

	// Analysis
	TopN          int
	StopwordsFile string
	StopwordsURL  string

	// Behavior
	Verbose bool
}
