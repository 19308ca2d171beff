// chess-rules plays chess from typed commands, or counts move paths with
// perft, on top of the rules engine.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/perft"
	"github.com/lgbarn/chess-rules-go/internal/setup"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules-go version %s\n", programVersion)
		os.Exit(0)
	}

	if *listSetups {
		for _, name := range setup.Names() {
			fmt.Println(name)
		}
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	board, err := loadBoard(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Perft.Depth > 0 {
		if err := runPerft(cfg, board); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	in, closeIn := openInput()
	defer closeIn()

	r := newREPL(game.NewSession(board, cfg), cfg, newPositionWriter(cfg))
	if err := r.run(in); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// openInput returns the command source: the -script file or stdin.
func openInput() (io.Reader, func()) {
	if *scriptFile == "" {
		return os.Stdin, func() {}
	}
	file, err := os.Open(*scriptFile) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening script %s: %v\n", *scriptFile, err)
		os.Exit(1)
	}
	return file, func() { file.Close() } //nolint:errcheck,gosec // G104: cleanup on exit
}

// loadBoard builds the starting position: FEN first, then a named
// scenario, then the standard position.
func loadBoard(cfg *config.Config) (*engine.Board, error) {
	switch {
	case cfg.Setup.FEN != "":
		return setup.FromFEN(cfg.Setup.FEN)
	case cfg.Setup.Scenario != "":
		return setup.Scenario(cfg.Setup.Scenario)
	}
	return setup.NewStandard(), nil
}

// newPositionWriter selects text or JSON output.
func newPositionWriter(cfg *config.Config) output.PositionWriter {
	if *jsonOutput {
		return output.NewJSONWriterSingle(cfg.OutputFile, cfg)
	}
	return output.NewTextWriter(cfg.OutputFile, cfg)
}

// runPerft prints the perft count, or the divide table, of board.
func runPerft(cfg *config.Config, board *engine.Board) error {
	runner := perft.NewRunner(cfg)
	depth := cfg.Perft.Depth

	if !cfg.Perft.Divide {
		nodes, err := runner.Run(board, depth)
		if err != nil {
			return err
		}
		fmt.Fprintf(cfg.OutputFile, "Nodes: %d\n", nodes)
		return nil
	}

	results, err := runner.Divide(board, depth)
	if err != nil {
		return err
	}
	var total uint64
	for _, res := range results {
		fmt.Fprintln(cfg.OutputFile, res)
		total += res.Nodes
	}
	fmt.Fprintf(cfg.OutputFile, "Total: %d\n", total)
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays chess from commands read on stdin, or runs perft.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	fmt.Fprint(os.Stderr, commandHelp)
}
