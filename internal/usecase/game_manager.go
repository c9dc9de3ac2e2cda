package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-dashboard/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-dashboard/internal/entity"
	"github.com/rocketscienceinc/tictactoe-dashboard/internal/pkg"
)

type playerRepoDep interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
	DeleteByID(ctx context.Context, id string) error
}

type gameRepoDep interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager owns one hotseat game per player session. Every move goes
// through the engine; only accepted moves are persisted. Mutations of one
// player's session are serialized so each one starts from the last stored game.
type GameManager struct {
	logger     *slog.Logger
	playerRepo playerRepoDep
	gameRepo   gameRepoDep

	locks *playerLocks
}

func NewGameManager(logger *slog.Logger, playerRepo playerRepoDep, gameRepo gameRepoDep) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		playerRepo: playerRepo,
		gameRepo:   gameRepo,

		locks: newPlayerLocks(),
	}
}

// GetOrCreatePlayer - returns the player for id, or a new player when id is
// empty or unknown.
func (that *GameManager) GetOrCreatePlayer(ctx context.Context, id string) (*entity.Player, error) {
	if id == "" {
		return that.createPlayer(ctx)
	}

	player, err := that.playerRepo.GetByID(ctx, id)
	if errors.Is(err, apperror.ErrPlayerNotFound) {
		that.logger.Info("unknown player session, creating a new one", "playerID", id)
		return that.createPlayer(ctx)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

// GetOrCreateGame - returns the player's game, starting a new one when the
// player has none or the stored one is gone.
func (that *GameManager) GetOrCreateGame(ctx context.Context, playerID string) (*entity.Game, error) {
	defer that.locks.lock(playerID)()

	return that.getOrCreateGame(ctx, playerID)
}

func (that *GameManager) getOrCreateGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if !player.InGame() {
		return that.createGame(ctx, player)
	}

	game, err := that.gameRepo.GetByID(ctx, player.GameID)
	if errors.Is(err, apperror.ErrGameNotFound) {
		that.logger.Warn("player points at a missing game", "playerID", player.ID, "gameID", player.GameID)
		return that.createGame(ctx, player)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// GetGameByPlayerID - returns the player's current game.
func (that *GameManager) GetGameByPlayerID(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if !player.InGame() {
		return nil, apperror.ErrGameNotFound
	}

	game, err := that.gameRepo.GetByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

// MakeTurn - plays cell for whoever is to move in the player's game. A
// rejected move returns the unchanged game with accepted false and no error.
func (that *GameManager) MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, bool, error) {
	log := that.logger.With("method", "MakeTurn", "playerID", playerID, "cell", cell)

	defer that.locks.lock(playerID)()

	game, err := that.GetGameByPlayerID(ctx, playerID)
	if err != nil {
		return nil, false, err
	}

	if !game.Play(cell) {
		log.Debug("move rejected", "gameID", game.ID, "status", game.Status)
		return game, false, nil
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, false, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		log.Info("game finished", "gameID", game.ID, "status", game.Status)
	}

	return game, true, nil
}

// ResetGame - clears the board of the player's game and gives the move to X.
func (that *GameManager) ResetGame(ctx context.Context, playerID string) (*entity.Game, error) {
	defer that.locks.lock(playerID)()

	game, err := that.getOrCreateGame(ctx, playerID)
	if err != nil {
		return nil, err
	}

	game.Reset()

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// EndGame - drops the player's game and detaches the player from it.
func (that *GameManager) EndGame(ctx context.Context, playerID string) (*entity.Player, error) {
	defer that.locks.lock(playerID)()

	return that.endGame(ctx, playerID)
}

// EndSession - drops the player's game and the player session itself.
func (that *GameManager) EndSession(ctx context.Context, playerID string) error {
	defer that.locks.lock(playerID)()

	if _, err := that.endGame(ctx, playerID); err != nil {
		return err
	}

	if err := that.playerRepo.DeleteByID(ctx, playerID); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}

	that.logger.Info("player session ended", "playerID", playerID)

	return nil
}

func (that *GameManager) endGame(ctx context.Context, playerID string) (*entity.Player, error) {
	log := that.logger.With("method", "EndGame", "playerID", playerID)

	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if !player.InGame() {
		return player, nil
	}

	if err = that.gameRepo.DeleteByID(ctx, player.GameID); err != nil && !errors.Is(err, apperror.ErrGameNotFound) {
		return nil, fmt.Errorf("failed to delete game: %w", err)
	}

	log.Info("game deleted", "gameID", player.GameID)

	player.GameID = ""
	if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	return player, nil
}

func (that *GameManager) createPlayer(ctx context.Context) (*entity.Player, error) {
	player := &entity.Player{
		ID: pkg.GenerateNewSessionID(),
	}

	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	return player, nil
}

func (that *GameManager) createGame(ctx context.Context, player *entity.Player) (*entity.Game, error) {
	game := entity.NewGame(pkg.GenerateGameID())

	if err := that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	player.GameID = game.ID
	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	that.logger.Info("game created", "gameID", game.ID, "playerID", player.ID)

	return game, nil
}

func (that *GameManager) getPlayerByID(ctx context.Context, id string) (*entity.Player, error) {
	player, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	return player, nil
}
