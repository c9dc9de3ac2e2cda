package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-dashboard/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-dashboard/internal/entity"
	mockedUseCase "github.com/rocketscienceinc/tictactoe-dashboard/mocks/usecase"
)

func newProfileManager(t *testing.T) (*ProfileManager, *mockedUseCase.MockprofileRepoDep) {
	t.Helper()

	mockProfileRepo := mockedUseCase.NewMockprofileRepoDep(t)

	return NewProfileManager(discardLogger(), mockProfileRepo), mockProfileRepo
}

func storedProfile() *entity.Profile {
	profile := entity.NewProfile("alice", "alice@example.com")
	profile.ID = 1

	return profile
}

func TestProfileManager_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a user profile in English", func(t *testing.T) {
		// Given: neither the username nor the email is taken
		manager, mockProfileRepo := newProfileManager(t)

		mockProfileRepo.EXPECT().FindByUsername(mock.Anything, "alice").Return(nil, apperror.ErrNotFound).Once()
		mockProfileRepo.EXPECT().FindByEmail(mock.Anything, "alice@example.com").Return(nil, apperror.ErrNotFound).Once()
		mockProfileRepo.EXPECT().
			Create(mock.Anything, mock.AnythingOfType("*entity.Profile")).
			Run(func(_ context.Context, profile *entity.Profile) { profile.ID = 7 }).
			Return(nil).
			Once()

		// When: registering
		profile, err := manager.Register(ctx, "alice", "alice@example.com")

		// Then: defaults are applied
		require.NoError(t, err)
		assert.Equal(t, int64(7), profile.ID)
		assert.Equal(t, entity.RoleUser, profile.Role)
		assert.Equal(t, entity.LanguageEnglish, profile.Language)
	})

	t.Run("Taken email", func(t *testing.T) {
		manager, mockProfileRepo := newProfileManager(t)

		mockProfileRepo.EXPECT().FindByUsername(mock.Anything, "bob").Return(nil, apperror.ErrNotFound).Once()
		mockProfileRepo.EXPECT().FindByEmail(mock.Anything, "alice@example.com").Return(storedProfile(), nil).Once()

		_, err := manager.Register(ctx, "bob", "alice@example.com")

		require.ErrorIs(t, err, apperror.ErrProfileExists)
	})

	t.Run("Missing username", func(t *testing.T) {
		manager, _ := newProfileManager(t)

		_, err := manager.Register(ctx, "", "alice@example.com")

		require.ErrorIs(t, err, apperror.ErrValidation)
	})
}

func TestProfileManager_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Applies the form", func(t *testing.T) {
		// Given: alice exists and the new email is free
		manager, mockProfileRepo := newProfileManager(t)
		email := "alice@example.org"

		mockProfileRepo.EXPECT().FindByUsername(mock.Anything, "alice").Return(storedProfile(), nil).Twice()
		mockProfileRepo.EXPECT().FindByEmail(mock.Anything, email).Return(nil, apperror.ErrNotFound).Once()
		mockProfileRepo.EXPECT().
			Update(mock.Anything, mock.MatchedBy(func(p *entity.Profile) bool { return p.Email == email })).
			Return(nil).
			Once()

		// When: submitting a new email
		profile, err := manager.UpdateProfile(ctx, "alice", entity.ProfileUpdate{Email: &email})

		// Then: the profile carries it
		require.NoError(t, err)
		assert.Equal(t, email, profile.Email)
		assert.Equal(t, "alice", profile.Username)
	})

	t.Run("Unknown profile", func(t *testing.T) {
		manager, mockProfileRepo := newProfileManager(t)

		mockProfileRepo.EXPECT().FindByUsername(mock.Anything, "ghost").Return(nil, apperror.ErrNotFound).Once()

		_, err := manager.UpdateProfile(ctx, "ghost", entity.ProfileUpdate{})

		require.ErrorIs(t, err, apperror.ErrNotFound)
	})

	t.Run("Username taken by someone else", func(t *testing.T) {
		manager, mockProfileRepo := newProfileManager(t)
		username := "bob"
		bob := entity.NewProfile("bob", "bob@example.com")
		bob.ID = 2

		mockProfileRepo.EXPECT().FindByUsername(mock.Anything, "alice").Return(storedProfile(), nil).Once()
		mockProfileRepo.EXPECT().FindByUsername(mock.Anything, "bob").Return(bob, nil).Once()

		_, err := manager.UpdateProfile(ctx, "alice", entity.ProfileUpdate{Username: &username})

		require.ErrorIs(t, err, apperror.ErrProfileExists)
	})
}

func TestProfileManager_UpdateSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("Stores a supported language", func(t *testing.T) {
		manager, mockProfileRepo := newProfileManager(t)

		mockProfileRepo.EXPECT().FindByUsername(mock.Anything, "alice").Return(storedProfile(), nil).Once()
		mockProfileRepo.EXPECT().
			Update(mock.Anything, mock.MatchedBy(func(p *entity.Profile) bool { return p.Language == entity.LanguageFrench })).
			Return(nil).
			Once()

		profile, err := manager.UpdateSettings(ctx, "alice", entity.Settings{Language: entity.LanguageFrench})

		require.NoError(t, err)
		assert.Equal(t, entity.LanguageFrench, profile.Language)
	})

	t.Run("Rejects an unsupported language", func(t *testing.T) {
		manager, mockProfileRepo := newProfileManager(t)

		mockProfileRepo.EXPECT().FindByUsername(mock.Anything, "alice").Return(storedProfile(), nil).Once()

		_, err := manager.UpdateSettings(ctx, "alice", entity.Settings{Language: "German"})

		require.ErrorIs(t, err, apperror.ErrUnsupportedLanguage)
	})
}

func TestProfileManager_ListProfiles(t *testing.T) {
	manager, mockProfileRepo := newProfileManager(t)

	mockProfileRepo.EXPECT().List(mock.Anything).Return([]*entity.Profile{storedProfile()}, nil).Once()

	profiles, err := manager.ListProfiles(context.Background())

	require.NoError(t, err)
	assert.Len(t, profiles, 1)
}
