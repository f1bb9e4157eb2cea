package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/wordbubble/internal/app"
	"github.com/hyperifyio/wordbubble/internal/server"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		addr          string
		fetchTimeout  time.Duration
		userAgent     string
		topN          int
		stopwordsFile string
		stopwordsURL  string
		rateLimit     float64
		configPath    string
		verbose       bool
	)

	flag.StringVar(&addr, "listen", app.DefaultAddr, "HTTP listen address")
	flag.DurationVar(&fetchTimeout, "fetch.timeout", app.DefaultFetchTimeout, "Per-request page fetch timeout")
	flag.StringVar(&userAgent, "fetch.ua", "", "Override User-Agent for page fetches")
	flag.IntVar(&topN, "analysis.topN", app.DefaultTopN, "How many top words to chart")
	flag.StringVar(&stopwordsFile, "analysis.stopwordsFile", "", "Path to a replacement stopword list (one word per line)")
	flag.StringVar(&stopwordsURL, "analysis.stopwordsURL", "", "URL of a replacement stopword list fetched once at startup")
	flag.Float64Var(&rateLimit, "rate", 0, "Accepted analyze requests per second (0 = default)")
	flag.StringVar(&configPath, "config", "", "Path to a YAML or JSON config file")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	// Optional dotenv for local development; missing file is fine.
	if err := app.LoadEnvFiles(".env"); err != nil {
		log.Warn().Err(err).Msg("could not load .env")
	}

	cfg := app.Config{
		Addr:          addr,
		FetchTimeout:  fetchTimeout,
		UserAgent:     userAgent,
		TopN:          topN,
		StopwordsFile: stopwordsFile,
		StopwordsURL:  stopwordsURL,
		Verbose:       verbose,
	}
	app.ApplyEnvToConfig(&cfg)
	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", configPath).Msg("could not load config file")
		}
		app.ApplyFileConfig(&cfg, fc)
	}

	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	a := app.New(context.Background(), cfg)
	srv := server.New(a, server.Config{Addr: cfg.Addr, RateLimit: rateLimit}, log.Logger)
	if err := srv.Start(); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
