package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrTokenNotFound", ErrTokenNotFound, ErrTokenNotFound},
		{"ErrNoLockedToken", ErrNoLockedToken, ErrNoLockedToken},
		{"ErrNoActiveTeams", ErrNoActiveTeams, ErrNoActiveTeams},
		{"ErrUnknownTeam", ErrUnknownTeam, ErrUnknownTeam},
		{"ErrInvalidRoll", ErrInvalidRoll, ErrInvalidRoll},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
		{"ErrGameOver", ErrGameOver, ErrGameOver},
		{"ErrTurnLimit", ErrTurnLimit, ErrTurnLimit},
		{"ErrInconsistentState", ErrInconsistentState, ErrInconsistentState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrIllegalMove, ErrTokenNotFound) {
		t.Error("ErrIllegalMove matches ErrTokenNotFound")
	}
	if errors.Is(ErrNoLockedToken, ErrIllegalMove) {
		t.Error("ErrNoLockedToken matches ErrIllegalMove")
	}
}

func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:      ErrIllegalMove,
				Op:       "move",
				Team:     "Red",
				From:     "(13,6)",
				Distance: 4,
			},
			contains: []string{"move", "team red", "from (13,6)", "distance 4", "illegal move"},
		},
		{
			name:     "unlock without coordinate",
			err:      &MoveError{Err: ErrNoLockedToken, Op: "unlock", Team: "Green"},
			contains: []string{"unlock", "team green", "no locked token"},
		},
		{
			name:     "bare error",
			err:      &MoveError{Err: ErrTokenNotFound},
			contains: []string{"token not found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestMoveError_Unwrap(t *testing.T) {
	moveErr := &MoveError{Err: ErrTokenNotFound, Op: "move", Team: "Blue"}

	if !errors.Is(moveErr, ErrTokenNotFound) {
		t.Error("errors.Is(moveErr, ErrTokenNotFound) = false, want true")
	}

	wrapped := fmt.Errorf("turn 12: %w", moveErr)
	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.Team != "Blue" {
		t.Errorf("extracted.Team = %q, want %q", extracted.Team, "Blue")
	}
}

func TestViolation_PanicsWithInvariantError(t *testing.T) {
	defer func() {
		r := recover()
		ie, ok := r.(*InvariantError)
		if !ok {
			t.Fatalf("recover() = %#v, want *InvariantError", r)
		}
		if ie.Op != "capture" {
			t.Errorf("Op = %q, want %q", ie.Op, "capture")
		}
		if !strings.Contains(ie.Error(), "no empty pen slot for Green") {
			t.Errorf("Error() = %q, missing message", ie.Error())
		}
	}()
	Violation("capture", "no empty pen slot for %s", "Green")
}

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidConfig, "loading ludo.yaml")

	if !errors.Is(wrapped, ErrInvalidConfig) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "loading ludo.yaml") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrInvalidRoll, "roll %d on turn %d", 7, 3)

	if !Is(wrapped, ErrInvalidRoll) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "roll 7 on turn 3") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
