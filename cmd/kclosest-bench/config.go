package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "KCLOSEST"

// maxN bounds the collection size so the value range 10·N fits in an int.
const maxN = 100_000_000

// Config holds benchmark configuration.
// Values come from the environment (optionally seeded from a .env file)
// and can be overridden by command line flags.
type Config struct {
	N        int    `envconfig:"N" default:"100000"`
	Ks       []int  `envconfig:"KS" default:"5,10,50,100,500,1000"`
	Seed     int64  `envconfig:"SEED" default:"1"`
	Checks   int    `envconfig:"CHECKS" default:"8"`
	CheckK   int    `envconfig:"CHECK_K" default:"10"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	CSV      string `envconfig:"CSV"`
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// Validate reports configuration errors.
func (c Config) Validate() error {
	var errs []error
	if c.N <= 0 || c.N > maxN {
		errs = append(errs, fmt.Errorf("n must be in [1, %d], got %d", maxN, c.N))
	}
	if len(c.Ks) == 0 {
		errs = append(errs, errors.New("at least one k is required"))
	}
	for _, k := range c.Ks {
		if k <= 0 {
			errs = append(errs, fmt.Errorf("k must be positive, got %d", k))
		}
	}
	if c.Checks < 0 {
		errs = append(errs, fmt.Errorf("checks must not be negative, got %d", c.Checks))
	}
	if c.CheckK <= 0 {
		errs = append(errs, fmt.Errorf("check k must be positive, got %d", c.CheckK))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// loadConfig resolves configuration from an optional env file, the
// environment and args, in increasing order of precedence.
func loadConfig(args []string, stderr io.Writer) (Config, error) {
	fs := flag.NewFlagSet("kclosest-bench", flag.ContinueOnError)
	fs.SetOutput(stderr)

	envFile := fs.String("env", ".env", "optional env file with "+envPrefix+"_* variables")
	n := fs.Int("n", 0, "collection size")
	ks := fs.String("k", "", "comma separated list of k values")
	seed := fs.Int64("seed", 0, "random seed")
	checks := fs.Int("checks", 0, "number of random queries for the cross-check")
	logLevel := fs.String("log-level", "", "log level (debug, info, warn, error)")
	csvPath := fs.String("csv", "", "write results as CSV to this path")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if _, err := os.Stat(*envFile); err == nil {
		if err := godotenv.Load(*envFile); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", *envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}

	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.N = *n
		case "k":
			parsed, err := parseInts(*ks)
			if err != nil {
				flagErr = err
				return
			}
			cfg.Ks = parsed
		case "seed":
			cfg.Seed = *seed
		case "checks":
			cfg.Checks = *checks
		case "log-level":
			cfg.LogLevel = *logLevel
		case "csv":
			cfg.CSV = *csvPath
		}
	})
	if flagErr != nil {
		return Config{}, flagErr
	}

	return cfg, cfg.Validate()
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid k %q: %w", part, err)
		}
		out = append(out, v)
	}
	return out, nil
}
