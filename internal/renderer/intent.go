package renderer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-replay/internal/apperror"
)

type IntentKind int

const (
	IntentPlay IntentKind = iota + 1
	IntentJump
	IntentReset
	IntentQuit
)

// Intent is one line of player input translated into a game action.
type Intent struct {
	Kind        IntentKind
	Row         int
	Column      int
	Destination int
}

// ParseIntent understands "r c", "jump k", "reset" and "quit".
// Range checks are left to the game so that every renderer gets the same errors.
func ParseIntent(line string) (Intent, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return Intent{}, fmt.Errorf("empty input: %w", apperror.ErrUnknownCommand)
	}

	switch fields[0] {
	case "quit", "exit", "q":
		return Intent{Kind: IntentQuit}, nil
	case "reset":
		return Intent{Kind: IntentReset}, nil
	case "jump", "j":
		if len(fields) != 2 {
			return Intent{}, fmt.Errorf("jump needs one move number: %w", apperror.ErrUnknownCommand)
		}

		destination, err := strconv.Atoi(fields[1])
		if err != nil {
			return Intent{}, fmt.Errorf("bad move number %q: %w", fields[1], apperror.ErrUnknownCommand)
		}

		return Intent{Kind: IntentJump, Destination: destination}, nil
	}

	if len(fields) != 2 {
		return Intent{}, fmt.Errorf("%q: %w", line, apperror.ErrUnknownCommand)
	}

	row, rowErr := strconv.Atoi(fields[0])
	column, colErr := strconv.Atoi(fields[1])
	if rowErr != nil || colErr != nil {
		return Intent{}, fmt.Errorf("%q: %w", line, apperror.ErrUnknownCommand)
	}

	return Intent{Kind: IntentPlay, Row: row, Column: column}, nil
}
