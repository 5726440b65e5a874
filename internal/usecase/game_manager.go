package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-replay/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-replay/internal/entity"
	"github.com/rocketscienceinc/tictactoe-replay/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// notifier receives the full view after every change of a game.
type notifier interface {
	Publish(view *entity.View)
}

type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	notifier notifier

	// load, apply, save and publish run as one step per game
	mu        sync.Mutex
	gameLocks map[string]*sync.Mutex
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, notifier notifier) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo: gameRepo,
		notifier: notifier,

		gameLocks: make(map[string]*sync.Mutex),
	}
}

func (that *GameManager) CreateGame(ctx context.Context) (*entity.View, error) {
	game := entity.NewGame(uuid.NewString())

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID)

	return that.deriveView(game, game.Pointer)
}

// GetView - the game as it is currently displayed.
func (that *GameManager) GetView(ctx context.Context, id string) (*entity.View, error) {
	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return that.deriveView(game, game.Pointer)
}

// ViewAt - the game as it was after the first pointer moves. The stored pointer is not changed.
func (that *GameManager) ViewAt(ctx context.Context, id string, pointer int) (*entity.View, error) {
	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return that.deriveView(game, pointer)
}

// PlayMove - ignored moves return the unchanged view without an error.
func (that *GameManager) PlayMove(ctx context.Context, id string, row, column int) (*entity.View, error) {
	log := that.logger.With("method", "PlayMove", "gameID", id)

	return that.mutate(ctx, id, func(game *entity.Game) (bool, error) {
		played, err := tictactoe.PlayMove(game, row, column)
		if err != nil {
			return false, fmt.Errorf("failed to play move: %w", err)
		}

		if !played {
			log.Debug("move ignored", "row", row, "column", column)
		}

		return played, nil
	})
}

func (that *GameManager) JumpToMove(ctx context.Context, id string, destination int) (*entity.View, error) {
	return that.mutate(ctx, id, func(game *entity.Game) (bool, error) {
		if err := tictactoe.JumpToMove(game, destination); err != nil {
			return false, fmt.Errorf("failed to jump: %w", err)
		}

		return true, nil
	})
}

func (that *GameManager) Reset(ctx context.Context, id string) (*entity.View, error) {
	return that.mutate(ctx, id, func(game *entity.Game) (bool, error) {
		tictactoe.Reset(game)

		return true, nil
	})
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	unlock := that.lockGame(id)
	defer unlock()
	defer that.forgetGame(id)

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", id)

	return nil
}

// mutate loads the game, applies change and, if change reports a modification,
// saves the game and publishes the new view.
func (that *GameManager) mutate(ctx context.Context, id string, change func(game *entity.Game) (bool, error)) (*entity.View, error) {
	unlock := that.lockGame(id)
	defer unlock()

	game, err := that.getGameByID(ctx, id)
	if errors.Is(err, apperror.ErrGameNotFound) {
		that.forgetGame(id)
	}

	if err != nil {
		return nil, err
	}

	changed, err := change(game)
	if err != nil {
		return nil, err
	}

	view, err := that.deriveView(game, game.Pointer)
	if err != nil {
		return nil, err
	}

	if !changed {
		return view, nil
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	that.notifier.Publish(view)

	return view, nil
}

// lockGame serializes changes of one game. Other games are not blocked,
// even while a slow subscriber holds up the publish of this one.
func (that *GameManager) lockGame(id string) func() {
	that.mu.Lock()
	lock, ok := that.gameLocks[id]
	if !ok {
		lock = &sync.Mutex{}
		that.gameLocks[id] = lock
	}
	that.mu.Unlock()

	lock.Lock()

	return lock.Unlock
}

func (that *GameManager) forgetGame(id string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.gameLocks, id)
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *GameManager) deriveView(game *entity.Game, pointer int) (*entity.View, error) {
	view, err := tictactoe.DerivedView(game, pointer)
	if err != nil {
		return nil, fmt.Errorf("failed to derive view: %w", err)
	}

	return view, nil
}
