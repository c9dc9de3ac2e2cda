package ui

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-dashboard/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-dashboard/internal/entity"
)

// memoryProfiles is an in-memory profileService keyed by username.
type memoryProfiles struct {
	byName map[string]*entity.Profile
	err    error
}

func newMemoryProfiles(profiles ...*entity.Profile) *memoryProfiles {
	store := &memoryProfiles{byName: map[string]*entity.Profile{}}
	for _, profile := range profiles {
		store.byName[profile.Username] = profile
	}

	return store
}

func (that *memoryProfiles) Register(_ context.Context, username, email string) (*entity.Profile, error) {
	if that.err != nil {
		return nil, that.err
	}

	profile := entity.NewProfile(username, email)
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	if _, ok := that.byName[profile.Username]; ok {
		return nil, apperror.ErrProfileExists
	}

	profile.ID = int64(len(that.byName) + 1)
	that.byName[profile.Username] = profile

	return profile, nil
}

func (that *memoryProfiles) GetProfile(_ context.Context, username string) (*entity.Profile, error) {
	if that.err != nil {
		return nil, that.err
	}

	profile, ok := that.byName[username]
	if !ok {
		return nil, apperror.ErrNotFound
	}

	copied := *profile

	return &copied, nil
}

func (that *memoryProfiles) UpdateProfile(ctx context.Context, username string, update entity.ProfileUpdate) (*entity.Profile, error) {
	profile, err := that.GetProfile(ctx, username)
	if err != nil {
		return nil, err
	}

	profile.Apply(update)
	if err = profile.Validate(); err != nil {
		return nil, err
	}

	delete(that.byName, username)
	that.byName[profile.Username] = profile

	return profile, nil
}

func (that *memoryProfiles) UpdateSettings(ctx context.Context, username string, settings entity.Settings) (*entity.Profile, error) {
	profile, err := that.GetProfile(ctx, username)
	if err != nil {
		return nil, err
	}

	if err = profile.ApplySettings(settings); err != nil {
		return nil, err
	}

	that.byName[username] = profile

	return profile, nil
}
