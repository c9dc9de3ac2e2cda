package apperror

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrGameNotFound        = errors.New("game not found")
	ErrPlayerNotFound      = errors.New("player not found")
	ErrProfileExists       = errors.New("username or email already exists")
	ErrValidation          = errors.New("validation failed")
	ErrUnsupportedLanguage = errors.New("unsupported language")
)
