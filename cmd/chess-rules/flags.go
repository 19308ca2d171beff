// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chess-rules-go/internal/config"
)

var (
	// Setup options
	scenarioName = flag.String("scenario", "", "Start from a built-in position (see -list)")
	fenString    = flag.String("fen", "", "Start from a FEN position")
	listSetups   = flag.Bool("list", false, "List built-in positions and exit")
	scriptFile   = flag.String("script", "", "Read commands from this file instead of stdin")

	// Display options
	noCandidates = flag.Bool("nocandidates", false, "Don't mark candidate squares of a selected piece")
	showFEN      = flag.Bool("showfen", false, "Print the FEN under each board")
	noCoords     = flag.Bool("nocoords", false, "Don't print file letters and rank numbers")
	jsonOutput   = flag.Bool("J", false, "Output positions in JSON format")

	// Perft options
	perftDepth = flag.Int("perft", 0, "Count legal move paths to this depth and exit")
	divide     = flag.Bool("divide", false, "With -perft, print the count below each root move")
	noCache    = flag.Bool("nocache", false, "With -perft, don't memoize subtree counts")
	workers    = flag.Int("workers", 0, "Number of perft worker threads (0 = auto-detect based on CPU cores)")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbose   = flag.Bool("v", false, "Log every move and state change")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no diagnostics)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applySetupFlags(cfg)
	applyDisplayFlags(cfg)
	applyPerftFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// applySetupFlags selects the starting position.
func applySetupFlags(cfg *config.Config) {
	cfg.Setup.Scenario = *scenarioName
	cfg.Setup.FEN = *fenString
}

// applyDisplayFlags configures board rendering.
func applyDisplayFlags(cfg *config.Config) {
	cfg.Display.ShowCandidates = !*noCandidates
	cfg.Display.ShowFEN = *showFEN
	cfg.Display.Coordinates = !*noCoords
}

// applyPerftFlags configures perft mode.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	cfg.Perft.UseCache = !*noCache
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
}
