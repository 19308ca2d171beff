// Package config provides configuration for the chess-rules driver.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=results, 2=running commentary

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	Setup   *SetupConfig
	Display *DisplayConfig
	Perft   *PerftConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		Setup:      NewSetupConfig(),
		Display:    NewDisplayConfig(),
		Perft:      NewPerftConfig(),
	}
}

// Validate reports the first inconsistent setting.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d not in 0..2", c.Verbosity)
	}
	if c.OutputFile == nil || c.LogFile == nil {
		return errors.Wrap(errors.ErrInvalidConfig, "output and log writers must be set")
	}
	if c.Setup.Scenario != "" && c.Setup.FEN != "" {
		return errors.Wrap(errors.ErrInvalidConfig, "scenario and FEN are mutually exclusive")
	}
	if c.Perft.Depth < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "perft depth %d is negative", c.Perft.Depth)
	}
	if c.Perft.Workers < 1 {
		return errors.Wrapf(errors.ErrInvalidConfig, "perft workers %d must be positive", c.Perft.Workers)
	}
	return nil
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// SetupConfig selects the starting position.
type SetupConfig struct {
	// Scenario names a built-in position ("standard", "check", ...)
	Scenario string

	// FEN is an arbitrary starting position; it overrides Scenario when set
	FEN string
}

// NewSetupConfig creates a SetupConfig with default values.
func NewSetupConfig() *SetupConfig {
	return &SetupConfig{}
}

// DisplayConfig holds settings for board rendering.
type DisplayConfig struct {
	// ShowCandidates marks the squares a selected piece may move to
	ShowCandidates bool

	// ShowFEN prints the FEN string under the board
	ShowFEN bool

	// Coordinates prints file letters and rank numbers around the board
	Coordinates bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		ShowCandidates: true,
		Coordinates:    true,
	}
}

// PerftConfig holds settings for move-generation counting.
type PerftConfig struct {
	// Depth is the number of plies to count; 0 disables perft mode
	Depth int

	// Workers is the number of goroutines splitting the root moves
	Workers int

	// UseCache memoizes subtree counts by position hash
	UseCache bool

	// Divide prints the count below each root move
	Divide bool
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers:  runtime.NumCPU(),
		UseCache: true,
	}
}
