package entity

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rocketscienceinc/tictactoe-dashboard/internal/apperror"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	LanguageEnglish = "English"
	LanguageSpanish = "Spanish"
	LanguageFrench  = "French"
)

// Languages lists the languages offered on the settings page, in display order.
var Languages = []string{LanguageEnglish, LanguageSpanish, LanguageFrench}

type Profile struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	Language      string `json:"language"`
	Notifications bool   `json:"notifications"`
}

// ProfileUpdate carries the profile form. Nil fields are left untouched.
type ProfileUpdate struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
}

// Settings carries the settings page. A nil Notifications keeps the stored value.
type Settings struct {
	Language      string `json:"language"`
	Notifications *bool  `json:"notifications,omitempty"`
}

func NewProfile(username, email string) *Profile {
	return &Profile{
		Username: strings.TrimSpace(username),
		Email:    strings.TrimSpace(email),
		Role:     RoleUser,
		Language: LanguageEnglish,
	}
}

func (that *Profile) IsAdmin() bool {
	return that.Role == RoleAdmin
}

// Apply - merges the non-nil fields of update into the profile.
func (that *Profile) Apply(update ProfileUpdate) {
	if update.Username != nil {
		that.Username = strings.TrimSpace(*update.Username)
	}

	if update.Email != nil {
		that.Email = strings.TrimSpace(*update.Email)
	}
}

// Validate - checks the required profile fields.
func (that *Profile) Validate() error {
	if that.Username == "" {
		return fmt.Errorf("%w: username is required", apperror.ErrValidation)
	}

	if that.Email == "" {
		return fmt.Errorf("%w: email is required", apperror.ErrValidation)
	}

	return nil
}

func (that *Profile) ApplySettings(settings Settings) error {
	if !IsSupportedLanguage(settings.Language) {
		return fmt.Errorf("%w: %q", apperror.ErrUnsupportedLanguage, settings.Language)
	}

	that.Language = settings.Language

	if settings.Notifications != nil {
		that.Notifications = *settings.Notifications
	}

	return nil
}

func IsSupportedLanguage(language string) bool {
	return slices.Contains(Languages, language)
}

// NextLanguage returns the language after current in display order, wrapping around.
func NextLanguage(current string) string {
	i := slices.Index(Languages, current)

	return Languages[(i+1)%len(Languages)]
}
