// Package errors provides sentinel errors and error types for the ludo engine.
// It separates caller-input errors, which are returned as values and can be
// inspected with errors.Is() and errors.As(), from internal-consistency
// violations, which are raised as panics carrying an *InvariantError.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrIllegalMove indicates a distance or path that the rules do not allow.
	ErrIllegalMove = errors.New("illegal move")

	// ErrTokenNotFound indicates no token of the moving team stands at the
	// claimed start coordinate.
	ErrTokenNotFound = errors.New("token not found")

	// ErrNoLockedToken indicates an unlock was requested for a team whose
	// pen is empty.
	ErrNoLockedToken = errors.New("no locked token")

	// ErrNoActiveTeams indicates an engine was requested with no teams.
	ErrNoActiveTeams = errors.New("no active teams")

	// ErrUnknownTeam indicates a team name or value outside the four colours.
	ErrUnknownTeam = errors.New("unknown team")

	// ErrInvalidRoll indicates a dice value outside 1..6.
	ErrInvalidRoll = errors.New("invalid dice roll")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameOver indicates a turn was requested after every team finished.
	ErrGameOver = errors.New("game is over")

	// ErrInconsistentState indicates the board audit found bookkeeping
	// that disagrees with the token positions.
	ErrInconsistentState = errors.New("inconsistent board state")

	// ErrTurnLimit indicates a game was abandoned after too many turns.
	ErrTurnLimit = errors.New("turn limit reached")
)

// MoveError wraps a caller-input error with the move that caused it.
// It implements the error interface and supports unwrapping via errors.Is()
// and errors.As().
type MoveError struct {
	Err      error  // The underlying error
	Op       string // Engine operation, e.g. "move" or "unlock"
	Team     string // Moving team
	From     string // Claimed start coordinate (empty for unlock)
	Distance int    // Dice distance (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Op != "" {
		parts = append(parts, e.Op)
	}
	if e.Team != "" {
		parts = append(parts, fmt.Sprintf("team %s", e.Team))
	}
	if e.From != "" {
		parts = append(parts, fmt.Sprintf("from %s", e.From))
	}
	if e.Distance > 0 {
		parts = append(parts, fmt.Sprintf("distance %d", e.Distance))
	}

	context := strings.Join(parts, ", ")

	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// InvariantError describes a broken internal invariant. It is never returned;
// it is the value carried by a panic so that a recover() further up can tell
// an engine bug apart from an unrelated runtime panic.
type InvariantError struct {
	Op  string // Operation that detected the violation
	Msg string
}

func (e *InvariantError) Error() string {
	if e.Op == "" {
		return "invariant violated: " + e.Msg
	}
	return fmt.Sprintf("invariant violated in %s: %s", e.Op, e.Msg)
}

// Violation panics with an *InvariantError built from the format arguments.
func Violation(op, format string, args ...interface{}) {
	panic(&InvariantError{Op: op, Msg: fmt.Sprintf(format, args...)})
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

// Is reports whether any error in err's chain matches target.
// It saves callers that import this package from also importing the
// standard library package of the same name.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err, if any.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}
