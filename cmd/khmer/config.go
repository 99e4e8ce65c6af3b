package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Output modes
const (
	modeMerge   = "merge"
	modeSegment = "segment"
	modeWords   = "words"
)

var (
	errUnknownMode = errors.New("unknown mode")
	errNoInput     = errors.New("no input file given")
)

// config holds the settings of one run. Values come from, in increasing
// priority: defaults, a .env file, the environment and command-line flags.
type config struct {
	Input         string
	Output        string
	Mode          string
	Limit         int
	Threads       int
	Clean         bool
	NFC           bool
	PassOrphans   bool
	ModifierSlots int
	Generate      int
	Seed          int64
	Verbose       bool
}

func defaultConfig() config {
	return config{
		Mode:          modeSegment,
		ModifierSlots: 1,
		Seed:          1,
	}
}

// loadDotEnv loads path into the process environment without overriding
// variables that are already set. A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("could not load env file %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides cfg with the KHMER_* variables found by lookup.
func applyEnv(cfg *config, lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	num := func(key string, dst *int) error {
		v, ok := lookup(key)
		if !ok {
			return nil
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = n
		return nil
	}
	boolean := func(key string, dst *bool) error {
		v, ok := lookup(key)
		if !ok {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", key, err)
		}
		*dst = b
		return nil
	}

	str("KHMER_INPUT", &cfg.Input)
	str("KHMER_OUTPUT", &cfg.Output)
	str("KHMER_MODE", &cfg.Mode)
	if v, ok := lookup("KHMER_SEED"); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid KHMER_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	for key, dst := range map[string]*int{
		"KHMER_LIMIT":          &cfg.Limit,
		"KHMER_THREADS":        &cfg.Threads,
		"KHMER_MODIFIER_SLOTS": &cfg.ModifierSlots,
		"KHMER_GENERATE":       &cfg.Generate,
	} {
		if err := num(key, dst); err != nil {
			return err
		}
	}
	for key, dst := range map[string]*bool{
		"KHMER_CLEAN":        &cfg.Clean,
		"KHMER_NFC":          &cfg.NFC,
		"KHMER_PASS_ORPHANS": &cfg.PassOrphans,
		"KHMER_VERBOSE":      &cfg.Verbose,
	} {
		if err := boolean(key, dst); err != nil {
			return err
		}
	}
	return nil
}

// parseFlags overrides cfg with command-line flags.
func parseFlags(args []string, cfg config, usage io.Writer) (config, error) {
	flags := flag.NewFlagSet("khmer", flag.ContinueOnError)
	flags.SetOutput(usage)

	flags.StringVar(&cfg.Input, "input", cfg.Input, "Input text file, one unit of text per line (- for stdin)")
	flags.StringVar(&cfg.Output, "output", cfg.Output, "Output JSONL file (- for stdout, skip to benchmark only)")
	flags.StringVar(&cfg.Mode, "mode", cfg.Mode, "Output mode: merge, segment or words")
	flags.IntVar(&cfg.Limit, "limit", cfg.Limit, "Limit number of lines (0 = unlimited)")
	flags.IntVar(&cfg.Threads, "threads", cfg.Threads, "Number of worker threads (0 = use all CPUs)")
	flags.BoolVar(&cfg.Clean, "clean", cfg.Clean, "Drop characters outside the Khmer block before sorting")
	flags.BoolVar(&cfg.NFC, "nfc", cfg.NFC, "Normalize input lines to NFC")
	flags.BoolVar(&cfg.PassOrphans, "pass-orphans", cfg.PassOrphans, "Keep combining marks that have no base")
	flags.IntVar(&cfg.ModifierSlots, "modifier-slots", cfg.ModifierSlots, "Modifying marks kept per syllable (1 or 2)")
	flags.IntVar(&cfg.Generate, "generate", cfg.Generate, "Write N random canonical units instead of reading input")
	flags.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed for -generate (0 = time based)")
	flags.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Verbose tracing")

	// Short aliases
	flags.StringVar(&cfg.Input, "i", cfg.Input, "Input text file (short)")
	flags.StringVar(&cfg.Output, "o", cfg.Output, "Output JSONL file (short)")
	flags.StringVar(&cfg.Mode, "m", cfg.Mode, "Output mode (short)")
	flags.IntVar(&cfg.Limit, "l", cfg.Limit, "Limit number of lines (short)")
	flags.IntVar(&cfg.Threads, "t", cfg.Threads, "Number of worker threads (short)")
	flags.IntVar(&cfg.Generate, "g", cfg.Generate, "Generate N units (short)")

	if err := flags.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, cfg.validate()
}

func (c config) validate() error {
	switch c.Mode {
	case modeMerge, modeSegment, modeWords:
	default:
		return fmt.Errorf("%w %q (want %s, %s or %s)", errUnknownMode, c.Mode, modeMerge, modeSegment, modeWords)
	}
	if c.Generate == 0 && c.Input == "" {
		return errNoInput
	}
	if c.Limit < 0 || c.Threads < 0 || c.Generate < 0 {
		return fmt.Errorf("limit, threads and generate must not be negative")
	}
	return nil
}

// loadConfig builds the configuration from the env file named by
// KHMER_ENV_FILE (default .env), the environment and args.
func loadConfig(args []string, usage io.Writer) (config, error) {
	envFile, ok := os.LookupEnv("KHMER_ENV_FILE")
	if !ok {
		envFile = ".env"
	}
	if err := loadDotEnv(envFile); err != nil {
		return config{}, err
	}

	cfg := defaultConfig()
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	return parseFlags(args, cfg, usage)
}
