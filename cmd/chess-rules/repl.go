package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/output"
)

const commandHelp = `  move <from> <to>   play a move, e.g. "move e2 e4" or "e2e4"
  promote <R|N|B|Q>  choose the piece for a pawn on the last rank
  moves <square>     show the legal moves of the piece on square
  board              redraw the board
  fen                print the position as FEN
  history            list the moves played
  help               show this list
  quit               leave
`

type commandKind int

const (
	cmdMove commandKind = iota
	cmdPromote
	cmdMoves
	cmdBoard
	cmdFEN
	cmdHistory
	cmdHelp
	cmdQuit
)

type command struct {
	kind     commandKind
	from, to chess.Square
	piece    chess.PieceType
}

var keywords = map[string]commandKind{
	"move":    cmdMove,
	"m":       cmdMove,
	"promote": cmdPromote,
	"p":       cmdPromote,
	"moves":   cmdMoves,
	"select":  cmdMoves,
	"board":   cmdBoard,
	"fen":     cmdFEN,
	"history": cmdHistory,
	"help":    cmdHelp,
	"quit":    cmdQuit,
	"exit":    cmdQuit,
}

// parseCommand turns one input line into a command.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return command{}, errors.Wrap(errors.ErrInvalidCommand, "empty line")
	}

	// "e2e4" is short for "move e2 e4".
	if len(fields) == 1 && len(fields[0]) == 4 {
		if from, ok := chess.ParseAlgebraic(fields[0][:2]); ok {
			if to, ok := chess.ParseAlgebraic(fields[0][2:]); ok {
				return command{kind: cmdMove, from: from, to: to}, nil
			}
		}
	}

	kind, ok := keywords[fields[0]]
	if !ok {
		return command{}, errors.Wrapf(errors.ErrInvalidCommand, "unknown command %q", fields[0])
	}
	args := fields[1:]
	cmd := command{kind: kind}

	switch kind {
	case cmdMove:
		if len(args) != 2 {
			return command{}, errors.Wrap(errors.ErrInvalidCommand, "move needs two squares")
		}
		var err error
		if cmd.from, err = parseSquare(args[0]); err != nil {
			return command{}, err
		}
		if cmd.to, err = parseSquare(args[1]); err != nil {
			return command{}, err
		}
	case cmdPromote:
		if len(args) != 1 || len(args[0]) != 1 {
			return command{}, errors.Wrap(errors.ErrInvalidCommand, "promote needs one piece letter")
		}
		t, ok := chess.ParsePieceType(args[0][0])
		if !ok {
			return command{}, errors.Wrapf(errors.ErrInvalidCommand, "unknown piece %q", args[0])
		}
		cmd.piece = t
	case cmdMoves:
		if len(args) != 1 {
			return command{}, errors.Wrap(errors.ErrInvalidCommand, "moves needs one square")
		}
		var err error
		if cmd.from, err = parseSquare(args[0]); err != nil {
			return command{}, err
		}
	default:
		if len(args) != 0 {
			return command{}, errors.Wrapf(errors.ErrInvalidCommand, "%s takes no arguments", fields[0])
		}
	}
	return cmd, nil
}

func parseSquare(name string) (chess.Square, error) {
	sq, ok := chess.ParseAlgebraic(name)
	if !ok {
		return chess.Square{}, errors.Wrapf(errors.ErrInvalidCommand, "bad square %q", name)
	}
	return sq, nil
}

// repl reads commands and drives a session.
type repl struct {
	session *game.Session
	cfg     *config.Config
	out     io.Writer
	writer  output.PositionWriter
}

func newREPL(s *game.Session, cfg *config.Config, w output.PositionWriter) *repl {
	return &repl{session: s, cfg: cfg, out: cfg.OutputFile, writer: w}
}

// run shows the starting position and executes commands until quit or the
// end of input. Bad command text is reported and skipped.
func (r *repl) run(in io.Reader) error {
	if err := r.writer.WritePosition(r.session.Board()); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		cmd, err := parseCommand(line)
		if err != nil {
			r.cfg.Logf(1, "line %d: %v", lineNo, err)
			fmt.Fprintln(r.out, err)
			continue
		}
		if cmd.kind == cmdQuit {
			break
		}
		if err := r.execute(cmd); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return r.writer.Close()
}

func (r *repl) execute(cmd command) error {
	b := r.session.Board()

	switch cmd.kind {
	case cmdMove:
		return r.report(r.session.Move(cmd.from, cmd.to))
	case cmdPromote:
		return r.report(r.session.Promote(cmd.piece))
	case cmdMoves:
		return r.showMoves(cmd.from)
	case cmdBoard:
		return r.writer.WritePosition(b)
	case cmdFEN:
		_, err := fmt.Fprintln(r.out, engine.BoardToFEN(b))
		return err
	case cmdHistory:
		for i, ply := range r.session.Plies() {
			if _, err := fmt.Fprintf(r.out, "%d. %s%s\n", i+1, ply.From.Algebraic(), ply.Move.To().Algebraic()); err != nil {
				return err
			}
		}
		return nil
	case cmdHelp:
		_, err := fmt.Fprint(r.out, commandHelp)
		return err
	}
	return nil
}

// report prints the board after an applied action, or the reason it was
// refused.
func (r *repl) report(o game.Outcome) error {
	if o != game.Applied {
		_, err := fmt.Fprintln(r.out, o)
		return err
	}
	return r.writer.WritePosition(r.session.Board())
}

// showMoves lists the legal destinations of the piece on sq and, for text
// output, draws the board with the piece selected.
func (r *repl) showMoves(sq chess.Square) error {
	b := r.session.Board()
	p, ok := b.PieceAt(sq)
	if !ok {
		_, err := fmt.Fprintln(r.out, game.EmptySquare)
		return err
	}

	if tw, ok := r.writer.(*output.TextWriter); ok {
		if err := tw.WriteSelection(b, sq); err != nil {
			return err
		}
	}

	var dests []string
	if p.Owner == b.Turn() && r.session.Mode() == game.Play {
		for _, ply := range b.LegalMoves(b.Turn()) {
			if ply.From == sq {
				dests = append(dests, ply.Move.To().Algebraic())
			}
		}
	}
	_, err := fmt.Fprintf(r.out, "%s %s: %s\n", sq.Algebraic(), p, strings.Join(dests, " "))
	return err
}
