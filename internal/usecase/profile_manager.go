package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-dashboard/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-dashboard/internal/entity"
)

type profileRepoDep interface {
	Create(ctx context.Context, profile *entity.Profile) error
	Update(ctx context.Context, profile *entity.Profile) error
	FindByUsername(ctx context.Context, username string) (*entity.Profile, error)
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)
	List(ctx context.Context) ([]*entity.Profile, error)
}

// ProfileManager backs the profile and settings pages.
type ProfileManager struct {
	logger      *slog.Logger
	profileRepo profileRepoDep
}

func NewProfileManager(logger *slog.Logger, profileRepo profileRepoDep) *ProfileManager {
	return &ProfileManager{
		logger:      logger.With("component", "profile_manager"),
		profileRepo: profileRepo,
	}
}

// Register - creates a profile with the user role and English as language.
func (that *ProfileManager) Register(ctx context.Context, username, email string) (*entity.Profile, error) {
	profile := entity.NewProfile(username, email)
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	if err := that.ensureAvailable(ctx, profile); err != nil {
		return nil, err
	}

	if err := that.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	that.logger.Info("profile registered", "username", profile.Username)

	return profile, nil
}

func (that *ProfileManager) GetProfile(ctx context.Context, username string) (*entity.Profile, error) {
	profile, err := that.profileRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to find profile %q: %w", username, err)
	}

	return profile, nil
}

func (that *ProfileManager) ListProfiles(ctx context.Context) ([]*entity.Profile, error) {
	profiles, err := that.profileRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	return profiles, nil
}

// UpdateProfile - applies the submitted profile form.
func (that *ProfileManager) UpdateProfile(ctx context.Context, username string, update entity.ProfileUpdate) (*entity.Profile, error) {
	profile, err := that.GetProfile(ctx, username)
	if err != nil {
		return nil, err
	}

	profile.Apply(update)
	if err = profile.Validate(); err != nil {
		return nil, err
	}

	if err = that.ensureAvailable(ctx, profile); err != nil {
		return nil, err
	}

	if err = that.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	that.logger.Info("profile updated", "username", profile.Username)

	return profile, nil
}

// UpdateSettings - stores the preferred language.
func (that *ProfileManager) UpdateSettings(ctx context.Context, username string, settings entity.Settings) (*entity.Profile, error) {
	profile, err := that.GetProfile(ctx, username)
	if err != nil {
		return nil, err
	}

	if err = profile.ApplySettings(settings); err != nil {
		return nil, err
	}

	if err = that.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	return profile, nil
}

// ensureAvailable - fails when another profile holds the username or email.
func (that *ProfileManager) ensureAvailable(ctx context.Context, profile *entity.Profile) error {
	lookups := []func(context.Context, string) (*entity.Profile, error){
		that.profileRepo.FindByUsername,
		that.profileRepo.FindByEmail,
	}
	values := []string{profile.Username, profile.Email}

	for i, find := range lookups {
		existing, err := find(ctx, values[i])
		if errors.Is(err, apperror.ErrNotFound) {
			continue
		}

		if err != nil {
			return fmt.Errorf("failed to check profile: %w", err)
		}

		if existing.ID != profile.ID {
			return apperror.ErrProfileExists
		}
	}

	return nil
}
