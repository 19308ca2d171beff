// Package errors provides sentinel errors and error types for the chess rules engine.
// It separates contract violations, which indicate a driver bug and are raised
// as panics carrying a *ContractError, from recoverable driver errors such as
// a malformed FEN string, which are returned as wrapped sentinels.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for contract violations.
// A recovered panic value can be inspected with errors.Is() and errors.As().
var (
	// ErrOffBoard indicates a coordinate outside 0..7.
	ErrOffBoard = errors.New("square off the board")

	// ErrEmptySquare indicates an operation that needs a piece on an empty square.
	ErrEmptySquare = errors.New("no piece on square")

	// ErrNotAPawn indicates a pawn-only operation applied to another piece.
	ErrNotAPawn = errors.New("piece is not a pawn")

	// ErrPawnAlreadyMoved indicates a double step requested for a pawn that has moved.
	ErrPawnAlreadyMoved = errors.New("pawn has already moved")

	// ErrInvalidPromotion indicates a promotion to Pawn or King.
	ErrInvalidPromotion = errors.New("invalid promotion piece")

	// ErrNoPendingPromotion indicates Promote was called with nothing to promote.
	ErrNoPendingPromotion = errors.New("no promotion pending")

	// ErrWrongGameState indicates a detection step run outside the state it requires.
	ErrWrongGameState = errors.New("wrong game state")

	// ErrInvalidCastling indicates a castling request that does not describe
	// an unmoved king and corner rook on their back rank.
	ErrInvalidCastling = errors.New("invalid castling")

	// ErrUnknownPiece indicates a piece type outside the six standard kinds.
	ErrUnknownPiece = errors.New("unknown piece type")
)

// Sentinel errors for recoverable driver failures.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrUnknownScenario indicates a setup name that is not registered.
	ErrUnknownScenario = errors.New("unknown scenario")

	// ErrInvalidCommand indicates a driver command that could not be parsed.
	ErrInvalidCommand = errors.New("invalid command")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ContractError is the panic value for a violated precondition. It names the
// operation and, when relevant, the square involved.
type ContractError struct {
	Err    error  // The underlying sentinel
	Op     string // Operation that detected the violation
	Square string // Square involved, if any
	Detail string // Extra context (piece, state)
}

// Error returns a formatted message including all available context.
func (e *ContractError) Error() string {
	var parts []string

	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.Square != "" {
		parts = append(parts, "square "+e.Square)
	}
	if e.Detail != "" {
		parts = append(parts, e.Detail)
	}

	context := strings.Join(parts, ", ")
	if e.Err == nil {
		return context
	}
	if context == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying sentinel.
func (e *ContractError) Unwrap() error {
	return e.Err
}

// Violation panics with a *ContractError. It never returns.
func Violation(op string, err error, square fmt.Stringer, detail string) {
	ce := &ContractError{Err: err, Op: op, Detail: detail}
	if square != nil {
		ce.Square = square.String()
	}
	panic(ce)
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
