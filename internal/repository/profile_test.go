package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-dashboard/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-dashboard/internal/entity"
	"github.com/rocketscienceinc/tictactoe-dashboard/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-dashboard/testing/suite"
)

func TestProfileRepository_Create(t *testing.T) {
	t.Run("Create_Success", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)

		profileRepo := NewProfileRepository(st.Storage)

		// Given: a new profile
		profile := entity.NewProfile("alice", "alice@example.com")

		// When: Create is called
		err := profileRepo.Create(ctx, profile)

		// Then: the profile gets an ID and can be found by username and email
		require.NoError(t, err)
		assert.NotZero(t, profile.ID)

		byUsername, err := profileRepo.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, profile, byUsername)

		byEmail, err := profileRepo.FindByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.Equal(t, profile, byEmail)
	})

	t.Run("Create_Duplicate", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)

		profileRepo := NewProfileRepository(st.Storage)

		// Given: alice already exists
		require.NoError(t, profileRepo.Create(ctx, entity.NewProfile("alice", "alice@example.com")))

		// When: another profile reuses her email
		err := profileRepo.Create(ctx, entity.NewProfile("bob", "alice@example.com"))

		// Then: ErrProfileExists is returned
		require.ErrorIs(t, err, apperror.ErrProfileExists)
	})
}

func TestProfileRepository_Update(t *testing.T) {
	t.Run("Update_Success", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)

		profileRepo := NewProfileRepository(st.Storage)

		profile := entity.NewProfile("alice", "alice@example.com")
		require.NoError(t, profileRepo.Create(ctx, profile))

		// When: the settings change
		profile.Language = entity.LanguageSpanish
		profile.Notifications = true
		require.NoError(t, profileRepo.Update(ctx, profile))

		// Then: the stored profile reflects it
		stored, err := profileRepo.FindByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, entity.LanguageSpanish, stored.Language)
		assert.True(t, stored.Notifications)
	})

	t.Run("Update_Conflict", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)

		profileRepo := NewProfileRepository(st.Storage)

		require.NoError(t, profileRepo.Create(ctx, entity.NewProfile("alice", "alice@example.com")))
		bob := entity.NewProfile("bob", "bob@example.com")
		require.NoError(t, profileRepo.Create(ctx, bob))

		// When: bob takes alice's username
		bob.Username = "alice"
		err := profileRepo.Update(ctx, bob)

		// Then: the unique constraint is reported
		require.ErrorIs(t, err, apperror.ErrProfileExists)
	})

	t.Run("Update_NotFound", func(t *testing.T) {
		ctx, st := suite.NewSQLite(t)

		profileRepo := NewProfileRepository(st.Storage)

		profile := entity.NewProfile("ghost", "ghost@example.com")
		profile.ID = 42

		require.ErrorIs(t, profileRepo.Update(ctx, profile), apperror.ErrNotFound)
	})
}

func TestProfileRepository_Find_NotFound(t *testing.T) {
	ctx, st := suite.NewSQLite(t)

	profileRepo := NewProfileRepository(st.Storage)

	_, err := profileRepo.FindByUsername(ctx, "nobody")
	require.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = profileRepo.FindByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestProfileRepository_List(t *testing.T) {
	ctx, st := suite.NewSQLite(t)

	profileRepo := NewProfileRepository(st.Storage)

	require.NoError(t, profileRepo.Create(ctx, entity.NewProfile("carol", "carol@example.com")))
	require.NoError(t, profileRepo.Create(ctx, entity.NewProfile("alice", "alice@example.com")))

	profiles, err := profileRepo.List(ctx)

	require.NoError(t, err)
	require.Len(t, profiles, 3)
	assert.Equal(t, storage.AdminUsername, profiles[0].Username)
	assert.Equal(t, "alice", profiles[1].Username)
	assert.Equal(t, "carol", profiles[2].Username)
}

func TestProfileRepository_AdminSeed(t *testing.T) {
	ctx, st := suite.NewSQLite(t)

	profileRepo := NewProfileRepository(st.Storage)

	// Given: a database initialized twice
	require.NoError(t, st.Storage.Init(ctx))

	// When: looking up the seeded admin
	admin, err := profileRepo.FindByUsername(ctx, storage.AdminUsername)

	// Then: it exists once, with the admin role and default settings
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())
	assert.Equal(t, "admin@example.com", admin.Email)
	assert.Equal(t, entity.LanguageEnglish, admin.Language)
	assert.False(t, admin.Notifications)

	profiles, err := profileRepo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, profiles, 1)

	// And: registering another admin name is refused
	err = profileRepo.Create(ctx, entity.NewProfile(storage.AdminUsername, "other@example.com"))
	require.ErrorIs(t, err, apperror.ErrProfileExists)
}
