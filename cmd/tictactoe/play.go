package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/rocketscienceinc/tictactoe-replay/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-replay/internal/entity"
	"github.com/rocketscienceinc/tictactoe-replay/internal/renderer"
	"github.com/rocketscienceinc/tictactoe-replay/internal/repository"
	"github.com/rocketscienceinc/tictactoe-replay/internal/usecase"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a local game in the terminal",
	Long: `Starts a game for two players sharing this terminal.
Commands:
	> 1 1      play the centre cell (row column, 0 based)
	> jump 3   go back to the position after move #3
	> reset    start over
	> quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		terminal := renderer.NewTerminal(cmd.OutOrStdout())

		return playGame(cmd.Context(), newLogger(cmd), cmd.InOrStdin(), terminal)
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}

// playGame reads intents line by line until quit or end of input.
func playGame(ctx context.Context, logger *slog.Logger, in io.Reader, terminal *renderer.Terminal) error {
	manager := usecase.NewGameManager(logger, repository.NewMemoryGameRepository(), terminal)

	view, err := manager.CreateGame(ctx)
	if err != nil {
		return err
	}

	terminal.Publish(view)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		intent, err := renderer.ParseIntent(scanner.Text())
		if err != nil {
			terminal.Notice(err.Error())
			continue
		}

		if intent.Kind == renderer.IntentQuit {
			return nil
		}

		next, err := apply(ctx, manager, view.ID, intent)
		switch {
		case errors.Is(err, apperror.ErrInvalidCell), errors.Is(err, apperror.ErrInvalidJump):
			terminal.Notice(err.Error())
			continue
		case err != nil:
			return err
		}

		if intent.Kind == renderer.IntentPlay && next.Pointer == view.Pointer {
			terminal.Notice(fmt.Sprintf("move %d %d ignored", intent.Row, intent.Column))
		}

		view = next
	}

	return scanner.Err()
}

func apply(ctx context.Context, manager *usecase.GameManager, id string, intent renderer.Intent) (*entity.View, error) {
	switch intent.Kind {
	case renderer.IntentPlay:
		return manager.PlayMove(ctx, id, intent.Row, intent.Column)
	case renderer.IntentJump:
		return manager.JumpToMove(ctx, id, intent.Destination)
	case renderer.IntentReset:
		return manager.Reset(ctx, id)
	default:
		return nil, apperror.ErrUnknownCommand
	}
}
