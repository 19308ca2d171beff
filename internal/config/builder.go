package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithScenario selects a built-in starting position.
func (b *ConfigBuilder) WithScenario(name string) *ConfigBuilder {
	b.cfg.Setup.Scenario = name
	return b
}

// WithFEN selects a FEN starting position.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.Setup.FEN = fen
	return b
}

// WithCandidates controls candidate highlighting.
func (b *ConfigBuilder) WithCandidates(enabled bool) *ConfigBuilder {
	b.cfg.Display.ShowCandidates = enabled
	return b
}

// WithFENDisplay controls printing the FEN under the board.
func (b *ConfigBuilder) WithFENDisplay(enabled bool) *ConfigBuilder {
	b.cfg.Display.ShowFEN = enabled
	return b
}

// WithCoordinates controls the file and rank labels.
func (b *ConfigBuilder) WithCoordinates(enabled bool) *ConfigBuilder {
	b.cfg.Display.Coordinates = enabled
	return b
}

// WithPerft enables perft mode at the given depth.
func (b *ConfigBuilder) WithPerft(depth, workers int) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Workers = workers
	return b
}

// WithPerftCache controls subtree memoization.
func (b *ConfigBuilder) WithPerftCache(enabled bool) *ConfigBuilder {
	b.cfg.Perft.UseCache = enabled
	return b
}

// WithDivide controls the per-root-move breakdown.
func (b *ConfigBuilder) WithDivide(enabled bool) *ConfigBuilder {
	b.cfg.Perft.Divide = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
