package main

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/orayew2002/employee-fixtures/employee"
	"github.com/orayew2002/employee-fixtures/generator"
)

func TestParseFlags(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("FIXTURES_OUTPUT", "")
		t.Setenv("FIXTURES_COUNT", "")
		t.Setenv("FIXTURES_FORMAT", "")

		opts, err := parseFlags(nil)
		if err != nil {
			t.Fatalf("parseFlags failed: %v", err)
		}
		if opts.output != "employees.csv" || opts.count != 50000 || opts.format != employee.FormatCSV {
			t.Errorf("defaults = %+v", opts)
		}
	})

	t.Run("EnvFallback", func(t *testing.T) {
		t.Setenv("FIXTURES_OUTPUT", "out/staff.xlsx")
		t.Setenv("FIXTURES_COUNT", "12")
		t.Setenv("FIXTURES_FORMAT", "")

		opts, err := parseFlags(nil)
		if err != nil {
			t.Fatalf("parseFlags failed: %v", err)
		}
		if opts.output != "out/staff.xlsx" || opts.count != 12 || opts.format != employee.FormatXLSX {
			t.Errorf("env options = %+v", opts)
		}
	})

	t.Run("FlagsWin", func(t *testing.T) {
		t.Setenv("FIXTURES_COUNT", "12")

		opts, err := parseFlags([]string{"-count", "3", "-output", "x.dat", "-format", "xlsx", "-seed", "9"})
		if err != nil {
			t.Fatalf("parseFlags failed: %v", err)
		}
		if opts.count != 3 || opts.output != "x.dat" || opts.format != employee.FormatXLSX || !opts.seeded || opts.seed != 9 {
			t.Errorf("flag options = %+v", opts)
		}
	})

	t.Run("SeedZeroIsReproducible", func(t *testing.T) {
		opts, err := parseFlags([]string{"-seed", "0"})
		if err != nil {
			t.Fatalf("parseFlags failed: %v", err)
		}
		if !opts.seeded || opts.seed != 0 {
			t.Errorf("-seed 0 gave seeded=%v seed=%d", opts.seeded, opts.seed)
		}

		opts, err = parseFlags(nil)
		if err != nil {
			t.Fatalf("parseFlags failed: %v", err)
		}
		if opts.seeded {
			t.Error("seeded without -seed")
		}
	})

	t.Run("BadSeed", func(t *testing.T) {
		if _, err := parseFlags([]string{"-seed", "-4"}); err == nil {
			t.Error("Expected error for negative seed")
		}
	})

	t.Run("Help", func(t *testing.T) {
		if _, err := parseFlags([]string{"-h"}); !errors.Is(err, flag.ErrHelp) {
			t.Errorf("Expected flag.ErrHelp, got %v", err)
		}
	})

	t.Run("BadFormat", func(t *testing.T) {
		if _, err := parseFlags([]string{"-format", "yaml"}); err == nil {
			t.Error("Expected error for unknown format")
		}
	})
}

func TestRun(t *testing.T) {
	t.Run("WritesFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "employees.csv")
		if err := run(options{output: path, count: 25, format: employee.FormatCSV, seed: 1, seeded: true}); err != nil {
			t.Fatalf("run failed: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Failed to read output: %v", err)
		}
		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		if len(lines) != 26 {
			t.Errorf("output has %d lines, want 26", len(lines))
		}
		if !strings.HasPrefix(lines[0], "employeeNumber,username,") {
			t.Errorf("unexpected header %q", lines[0])
		}
	})

	t.Run("NegativeCountKeepsFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "employees.csv")
		if err := run(options{output: path, count: 5, format: employee.FormatCSV}); err != nil {
			t.Fatalf("run failed: %v", err)
		}
		before, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Failed to read output: %v", err)
		}

		err = run(options{output: path, count: -1, format: employee.FormatCSV})
		if !errors.Is(err, generator.ErrInvalidCount) {
			t.Fatalf("Expected ErrInvalidCount, got %v", err)
		}

		after, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("Failed to read output: %v", err)
		}
		if !bytes.Equal(before, after) {
			t.Errorf("negative count changed existing file: %d -> %d bytes", len(before), len(after))
		}
	})

	t.Run("UnwritablePath", func(t *testing.T) {
		dir := t.TempDir()
		if err := run(options{output: dir, count: 1, format: employee.FormatCSV}); err == nil {
			t.Error("Expected error writing to a directory path")
		}
	})
}
