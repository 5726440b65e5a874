package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-replay/internal/apperror"
)

func TestParseIntent(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected Intent
	}{
		{name: "Play", line: "1 2", expected: Intent{Kind: IntentPlay, Row: 1, Column: 2}},
		{name: "Play with spaces", line: "  0   0 \n", expected: Intent{Kind: IntentPlay}},
		{name: "Out of range cell is left to the game", line: "3 -1", expected: Intent{Kind: IntentPlay, Row: 3, Column: -1}},
		{name: "Jump", line: "jump 4", expected: Intent{Kind: IntentJump, Destination: 4}},
		{name: "Jump short form", line: "J 0", expected: Intent{Kind: IntentJump}},
		{name: "Reset", line: "reset", expected: Intent{Kind: IntentReset}},
		{name: "Quit", line: "QUIT", expected: Intent{Kind: IntentQuit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent, err := ParseIntent(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, intent)
		})
	}
}

func TestParseIntent_Unknown(t *testing.T) {
	for _, line := range []string{"", "   ", "jump", "jump x", "1", "a b", "1 2 3", "dance"} {
		t.Run(line, func(t *testing.T) {
			_, err := ParseIntent(line)
			assert.ErrorIs(t, err, apperror.ErrUnknownCommand)
		})
	}
}
