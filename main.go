package main

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/orayew2002/employee-fixtures/domain"
	"github.com/orayew2002/employee-fixtures/employee"
	"github.com/orayew2002/employee-fixtures/generator"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	defaultOutput = "employees.csv"
	defaultCount  = 50000
)

type options struct {
	output string
	count  int
	format employee.Format
	seed   uint64
	seeded bool
}

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Error().Err(err).Msg("invalid arguments")
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		log.Error().Err(err).Str("output", opts.output).Msg("generation failed")
		os.Exit(1)
	}
}

func run(opts options) error {
	// checked before Open so a bad count never truncates an existing file
	if err := generator.ValidateCount(opts.count); err != nil {
		return err
	}

	picker := domain.NewRandPicker(nil)
	if opts.seeded {
		picker = domain.NewSeededPicker(opts.seed)
	}
	gen := generator.New(domain.FakerNames{}, picker)

	log.Info().
		Str("output", opts.output).
		Str("format", string(opts.format)).
		Int("count", opts.count).
		Msg("generating employees")

	start := time.Now()

	w, err := employee.Open(opts.output, opts.format)
	if err != nil {
		return err
	}

	written, err := gen.Generate(opts.count, w)
	if err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	log.Info().
		Int("rows", written).
		Dur("elapsed", time.Since(start)).
		Msg("done")

	return nil
}

// parseFlags reads flags, falling back to FIXTURES_* variables (optionally from .env)
// and then to the built-in defaults.
func parseFlags(args []string) (options, error) {
	_ = godotenv.Load(".env")

	fs := flag.NewFlagSet("employee-fixtures", flag.ContinueOnError)
	output := fs.String("output", envOr("FIXTURES_OUTPUT", defaultOutput), "path to the output file")
	count := fs.Int("count", envInt("FIXTURES_COUNT", defaultCount), "number of employees to generate")
	format := fs.String("format", os.Getenv("FIXTURES_FORMAT"), "output format: csv or xlsx (default: from output extension)")

	var opts options
	fs.Func("seed", "seed for categorical fields (default: random)", func(s string) error {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return err
		}
		opts.seed, opts.seeded = seed, true
		return nil
	})

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts.output, opts.count = *output, *count

	if *format == "" {
		opts.format = employee.FormatFromPath(opts.output)
	} else {
		f, err := employee.ParseFormat(*format)
		if err != nil {
			return options{}, err
		}
		opts.format = f
	}

	return opts, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str(key, v).Msg("ignoring non-numeric value")
		return fallback
	}
	return n
}
