package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-dashboard/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-dashboard/internal/entity"
	"github.com/rocketscienceinc/tictactoe-dashboard/internal/tictactoe"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-dashboard/mocks/usecase"
)

var (
	errRedisDown     = errors.New("redis down")
	errStorageIsFull = errors.New("storage is full")
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newGameManager(t *testing.T) (*GameManager, *mockedUseCase.MockplayerRepoDep, *mockedUseCase.MockgameRepoDep) {
	t.Helper()

	mockPlayerRepo := mockedUseCase.NewMockplayerRepoDep(t)
	mockGameRepo := mockedUseCase.NewMockgameRepoDep(t)

	return NewGameManager(discardLogger(), mockPlayerRepo, mockGameRepo), mockPlayerRepo, mockGameRepo
}

func TestGameManager_GetOrCreatePlayer(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a new player when playerID is empty", func(t *testing.T) {
		// Given: an empty repository
		manager, mockPlayerRepo, _ := newGameManager(t)

		mockPlayerRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Player")).
			Return(nil).
			Once()

		// When: calling GetOrCreatePlayer with an empty playerID
		player, err := manager.GetOrCreatePlayer(ctx, "")

		// Then: a fresh player without a game is returned
		require.NoError(t, err)
		assert.NotEmpty(t, player.ID)
		assert.False(t, player.InGame())
	})

	t.Run("Returns the stored player", func(t *testing.T) {
		manager, mockPlayerRepo, _ := newGameManager(t)
		stored := &entity.Player{ID: "player-1", GameID: "game-1"}

		mockPlayerRepo.EXPECT().GetByID(mock.Anything, "player-1").Return(stored, nil).Once()

		player, err := manager.GetOrCreatePlayer(ctx, "player-1")

		require.NoError(t, err)
		assert.Equal(t, stored, player)
	})

	t.Run("Replaces an unknown session", func(t *testing.T) {
		// Given: the session id is not in storage
		manager, mockPlayerRepo, _ := newGameManager(t)

		mockPlayerRepo.EXPECT().GetByID(mock.Anything, "stale").Return(nil, apperror.ErrPlayerNotFound).Once()
		mockPlayerRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Player")).
			Return(nil).
			Once()

		// When: reconnecting with it
		player, err := manager.GetOrCreatePlayer(ctx, "stale")

		// Then: a new session is issued
		require.NoError(t, err)
		assert.NotEqual(t, "stale", player.ID)
	})

	t.Run("Storage failure", func(t *testing.T) {
		manager, mockPlayerRepo, _ := newGameManager(t)

		mockPlayerRepo.EXPECT().GetByID(mock.Anything, "player-1").Return(nil, errRedisDown).Once()

		_, err := manager.GetOrCreatePlayer(ctx, "player-1")

		require.ErrorIs(t, err, errRedisDown)
	})
}

func TestGameManager_GetOrCreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a game for a player without one", func(t *testing.T) {
		// Given: a player that is not in a game
		manager, mockPlayerRepo, mockGameRepo := newGameManager(t)
		player := &entity.Player{ID: "player-1"}

		mockPlayerRepo.EXPECT().GetByID(mock.Anything, "player-1").Return(player, nil).Once()
		mockGameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Game")).
			Return(nil).
			Once()
		mockPlayerRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.MatchedBy(func(p *entity.Player) bool { return p.InGame() })).
			Return(nil).
			Once()

		// When: asking for the game
		game, err := manager.GetOrCreateGame(ctx, "player-1")

		// Then: a new empty game is attached to the player
		require.NoError(t, err)
		assert.Equal(t, game.ID, player.GameID)
		assert.Equal(t, tictactoe.Board{}, game.Board)
		assert.Equal(t, tictactoe.PlayerX, game.Turn)
	})

	t.Run("Returns the existing game", func(t *testing.T) {
		manager, mockPlayerRepo, mockGameRepo := newGameManager(t)
		existing := entity.NewGame("game-1")

		mockPlayerRepo.EXPECT().GetByID(mock.Anything, "player-1").
			Return(&entity.Player{ID: "player-1", GameID: "game-1"}, nil).Once()
		mockGameRepo.EXPECT().GetByID(mock.Anything, "game-1").Return(existing, nil).Once()

		game, err := manager.GetOrCreateGame(ctx, "player-1")

		require.NoError(t, err)
		assert.Same(t, existing, game)
	})

	t.Run("Recreates a game that vanished", func(t *testing.T) {
		manager, mockPlayerRepo, mockGameRepo := newGameManager(t)

		mockPlayerRepo.EXPECT().GetByID(mock.Anything, "player-1").
			Return(&entity.Player{ID: "player-1", GameID: "gone"}, nil).Once()
		mockGameRepo.EXPECT().GetByID(mock.Anything, "gone").Return(nil, apperror.ErrGameNotFound).Once()
		mockGameRepo.EXPECT().CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Game")).Return(nil).Once()
		mockPlayerRepo.EXPECT().CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Player")).Return(nil).Once()

		game, err := manager.GetOrCreateGame(ctx, "player-1")

		require.NoError(t, err)
		assert.NotEqual(t, "gone", game.ID)
	})

	t.Run("Game storage failure", func(t *testing.T) {
		manager, mockPlayerRepo, mockGameRepo := newGameManager(t)

		mockPlayerRepo.EXPECT().GetByID(mock.Anything, "player-1").Return(&entity.Player{ID: "player-1"}, nil).Once()
		mockGameRepo.EXPECT().CreateOrUpdate(mock.Anything, mock.Anything).Return(errStorageIsFull).Once()

		_, err := manager.GetOrCreateGame(ctx, "player-1")

		require.ErrorIs(t, err, errStorageIsFull)
	})
}

func TestGameManager_MakeTurn(t *testing.T) {
	ctx := context.Background()
	inGame := &entity.Player{ID: "player-1", GameID: "game-1"}

	t.Run("Accepted move is persisted", func(t *testing.T) {
		// Given: a fresh game
		manager, mockPlayerRepo, mockGameRepo := newGameManager(t)

		mockPlayerRepo.EXPECT().GetByID(mock.Anything, "player-1").Return(inGame, nil).Once()
		mockGameRepo.EXPECT().GetByID(mock.Anything, "game-1").Return(entity.NewGame("game-1"), nil).Once()
		mockGameRepo.EXPECT().
			CreateOrUpdate(mock.Anything, mock.MatchedBy(func(g *entity.Game) bool { return g.Board[4] == tictactoe.X })).
			Return(nil).
			Once()

		// When: the centre is played
		game, accepted, err := manager.MakeTurn(ctx, "player-1", 4)

		// Then: O is to move
		require.NoError(t, err)
		assert.True(t, accepted)
		assert.Equal(t, tictactoe.PlayerO, game.Turn)
		assert.Equal(t, "Next player: O", game.Status)
	})

	t.Run("Rejected move is not persisted", func(t *testing.T) {
		// Given: cell 0 is taken
		manager, mockPlayerRepo, mockGameRepo := newGameManager(t)
		stored := entity.NewGame("game-1")
		require.True(t, stored.Play(0))

		mockPlayerRepo.EXPECT().GetByID(mock.Anything, "player-1").Return(inGame, nil).Once()
		mockGameRepo.EXPECT().GetByID(mock.Anything, "game-1").Return(stored, nil).Once()

		// When: cell 0 is played again
		game, accepted, err := manager.MakeTurn(ctx, "player-1", 0)

		// Then: no error, nothing written, O still to move
		require.NoError(t, err)
		assert.False(t, accepted)
		assert.Equal(t, tictactoe.PlayerO, game.Turn)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		manager, mockPlayerRepo, mockGameRepo := newGameManager(t)
		stored := entity.NewGame("game-1")
		for _, cell := range []int{0, 3, 1, 4} {
			require.True(t, stored.Play(cell))
		}

		mockPlayerRepo.EXPECT().GetByID(mock.Anything, "player-1").Return(inGame, nil).Once()
		mockGameRepo.EXPECT().GetByID(mock.Anything, "game-1").Return(stored, nil).Once()
		mockGameRepo.EXPECT().CreateOrUpdate(mock.Anything, stored).Return(nil).Once()

		game, accepted, err := manager.MakeTurn(ctx, "player-1", 2)

		require.NoError(t, err)
		assert.True(t, accepted)
		assert.True(t, game.IsFinished())
		assert.Equal(t, "Winner: X", game.Status)
	})

	t.Run("Player without a game", func(t *testing.T) {
		manager, mockPlayerRepo, _ := newGameManager(t)

		mockPlayerRepo.EXPECT().GetByID(mock.Anything, "player-2").Return(&entity.Player{ID: "player-2"}, nil).Once()

		_, _, err := manager.MakeTurn(ctx, "player-2", 0)

		require.ErrorIs(t, err, apperror.ErrGameNotFound)
	})

	t.Run("Save failure", func(t *testing.T) {
		manager, mockPlayerRepo, mockGameRepo := newGameManager(t)

		mockPlayerRepo.EXPECT().GetByID(mock.Anything, "player-1").Return(inGame, nil).Once()
		mockGameRepo.EXPECT().GetByID(mock.Anything, "game-1").Return(entity.NewGame("game-1"), nil).Once()
		mockGameRepo.EXPECT().CreateOrUpdate(mock.Anything, mock.Anything).Return(errRedisDown).Once()

		_, accepted, err := manager.MakeTurn(ctx, "player-1", 0)

		require.ErrorIs(t, err, errRedisDown)
		assert.False(t, accepted)
	})
}

func TestGameManager_MakeTurn_SamePlayerConcurrently(t *testing.T) {
	ctx := context.Background()

	// Given: two connections of one player share a fresh game
	manager, mockPlayerRepo, mockGameRepo := newGameManager(t)

	var storageMutex sync.Mutex
	stored := *entity.NewGame("game-1")

	mockPlayerRepo.EXPECT().GetByID(mock.Anything, "player-1").
		Return(&entity.Player{ID: "player-1", GameID: "game-1"}, nil).
		Times(2)
	mockGameRepo.EXPECT().GetByID(mock.Anything, "game-1").
		RunAndReturn(func(context.Context, string) (*entity.Game, error) {
			storageMutex.Lock()
			game := stored
			storageMutex.Unlock()

			// leaves room for the other turn to read the same game
			time.Sleep(20 * time.Millisecond)

			return &game, nil
		}).
		Times(2)
	mockGameRepo.EXPECT().CreateOrUpdate(mock.Anything, mock.AnythingOfType("*entity.Game")).
		RunAndReturn(func(_ context.Context, game *entity.Game) error {
			storageMutex.Lock()
			stored = *game
			storageMutex.Unlock()

			return nil
		}).
		Times(2)

	// When: both connections play at the same time
	var wg sync.WaitGroup
	accepted := make([]bool, 2)
	errs := make([]error, 2)

	for i, cell := range []int{0, 8} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, accepted[i], errs[i] = manager.MakeTurn(ctx, "player-1", cell)
		}()
	}
	wg.Wait()

	// Then: both moves are kept, one for each mark
	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, []bool{true, true}, accepted)

	assert.Equal(t, 2, stored.MoveCount())
	assert.ElementsMatch(t,
		[]tictactoe.Mark{tictactoe.X, tictactoe.O},
		[]tictactoe.Mark{stored.Board[0], stored.Board[8]})
	assert.Equal(t, tictactoe.PlayerX, stored.Turn)
	assert.Zero(t, manager.locks.size())
}

func TestGameManager_ResetGame(t *testing.T) {
	// Given: a won game
	manager, mockPlayerRepo, mockGameRepo := newGameManager(t)
	stored := entity.NewGame("game-1")
	for _, cell := range []int{0, 3, 1, 4, 2} {
		require.True(t, stored.Play(cell))
	}

	mockPlayerRepo.EXPECT().GetByID(mock.Anything, "player-1").
		Return(&entity.Player{ID: "player-1", GameID: "game-1"}, nil).Once()
	mockGameRepo.EXPECT().GetByID(mock.Anything, "game-1").Return(stored, nil).Once()
	mockGameRepo.EXPECT().CreateOrUpdate(mock.Anything, stored).Return(nil).Once()

	// When: resetting
	game, err := manager.ResetGame(context.Background(), "player-1")

	// Then: the same game starts over
	require.NoError(t, err)
	assert.Equal(t, "game-1", game.ID)
	assert.Equal(t, tictactoe.Board{}, game.Board)
	assert.Equal(t, tictactoe.PlayerX, game.Turn)
	assert.False(t, game.IsFinished())
}

func TestGameManager_EndGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes the game and detaches the player", func(t *testing.T) {
		manager, mockPlayerRepo, mockGameRepo := newGameManager(t)

		mockPlayerRepo.EXPECT().GetByID(mock.Anything, "player-1").
			Return(&entity.Player{ID: "player-1", GameID: "game-1"}, nil).Once()
		mockGameRepo.EXPECT().DeleteByID(mock.Anything, "game-1").Return(nil).Once()
		mockPlayerRepo.EXPECT().
			CreateOrUpdate(mock.Anything, &entity.Player{ID: "player-1"}).
			Return(nil).
			Once()

		player, err := manager.EndGame(ctx, "player-1")

		require.NoError(t, err)
		assert.False(t, player.InGame())
	})

	t.Run("Player without a game is left alone", func(t *testing.T) {
		manager, mockPlayerRepo, _ := newGameManager(t)

		mockPlayerRepo.EXPECT().GetByID(mock.Anything, "player-1").Return(&entity.Player{ID: "player-1"}, nil).Once()

		player, err := manager.EndGame(ctx, "player-1")

		require.NoError(t, err)
		assert.Equal(t, "player-1", player.ID)
	})
}

func TestGameManager_EndSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes the game and the player", func(t *testing.T) {
		// Given: a player in a game
		manager, mockPlayerRepo, mockGameRepo := newGameManager(t)

		mockPlayerRepo.EXPECT().GetByID(mock.Anything, "player-1").
			Return(&entity.Player{ID: "player-1", GameID: "game-1"}, nil).Once()
		mockGameRepo.EXPECT().DeleteByID(mock.Anything, "game-1").Return(nil).Once()
		mockPlayerRepo.EXPECT().CreateOrUpdate(mock.Anything, &entity.Player{ID: "player-1"}).Return(nil).Once()
		mockPlayerRepo.EXPECT().DeleteByID(mock.Anything, "player-1").Return(nil).Once()

		// When: ending the session
		err := manager.EndSession(ctx, "player-1")

		// Then: nothing of the session is left
		require.NoError(t, err)
	})

	t.Run("Player without a game", func(t *testing.T) {
		manager, mockPlayerRepo, _ := newGameManager(t)

		mockPlayerRepo.EXPECT().GetByID(mock.Anything, "player-1").Return(&entity.Player{ID: "player-1"}, nil).Once()
		mockPlayerRepo.EXPECT().DeleteByID(mock.Anything, "player-1").Return(nil).Once()

		require.NoError(t, manager.EndSession(ctx, "player-1"))
	})

	t.Run("Unknown player", func(t *testing.T) {
		manager, mockPlayerRepo, _ := newGameManager(t)

		mockPlayerRepo.EXPECT().GetByID(mock.Anything, "ghost").Return(nil, apperror.ErrPlayerNotFound).Once()

		err := manager.EndSession(ctx, "ghost")

		require.ErrorIs(t, err, apperror.ErrPlayerNotFound)
	})

	t.Run("Delete failure", func(t *testing.T) {
		manager, mockPlayerRepo, _ := newGameManager(t)

		mockPlayerRepo.EXPECT().GetByID(mock.Anything, "player-1").Return(&entity.Player{ID: "player-1"}, nil).Once()
		mockPlayerRepo.EXPECT().DeleteByID(mock.Anything, "player-1").Return(errRedisDown).Once()

		err := manager.EndSession(ctx, "player-1")

		require.ErrorIs(t, err, errRedisDown)
	})
}
