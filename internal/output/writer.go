// Package output renders positions for the driver: a text board with status
// lines, or JSON snapshots.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// PositionWriter is the interface for writing positions in various formats.
type PositionWriter interface {
	WritePosition(b *engine.Board) error
	Flush() error
	Close() error
}

// TextWriter draws the board as text followed by its status lines.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WritePosition draws the board without a selection.
func (tw *TextWriter) WritePosition(b *engine.Board) error {
	return tw.write(b, nil)
}

// WriteSelection draws the board with the piece on sq highlighted and, when
// candidates are enabled, its candidate destinations marked.
func (tw *TextWriter) WriteSelection(b *engine.Board, sq chess.Square) error {
	return tw.write(b, &sq)
}

func (tw *TextWriter) write(b *engine.Board, selected *chess.Square) error {
	if err := DrawBoard(tw.w, b, selected, tw.cfg.Display); err != nil {
		return err
	}
	if tw.cfg.Display.ShowFEN {
		if _, err := fmt.Fprintf(tw.w, "FEN: %s\n", engine.BoardToFEN(b)); err != nil {
			return err
		}
	}
	return WriteStatus(tw.w, b)
}

// Flush is a no-op for text output.
func (tw *TextWriter) Flush() error { return nil }

// Close is a no-op for text output.
func (tw *TextWriter) Close() error { return nil }

// JSONWriter writes positions as JSON.
type JSONWriter struct {
	w         io.Writer
	cfg       *config.Config
	positions []*engine.Board
	single    bool
}

// NewJSONWriter creates a JSON writer that collects positions and writes
// them as one array on Flush.
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg}
}

// NewJSONWriterSingle creates a JSON writer that writes each position
// immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{w: w, cfg: cfg, single: true}
}

// WritePosition buffers a position, or writes it at once in single mode.
// Buffered positions are snapshotted so later moves do not change them.
func (jw *JSONWriter) WritePosition(b *engine.Board) error {
	if jw.single {
		return jw.encode(PositionToJSON(b, jw.cfg))
	}
	jw.positions = append(jw.positions, b.Copy())
	return nil
}

// Flush writes all buffered positions as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.positions) == 0 {
		return nil
	}

	out := &JSONOutput{Positions: make([]*JSONPosition, 0, len(jw.positions))}
	for _, b := range jw.positions {
		out.Positions = append(out.Positions, PositionToJSON(b, jw.cfg))
	}
	err := jw.encode(out)
	jw.positions = jw.positions[:0]
	return err
}

// Close flushes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
