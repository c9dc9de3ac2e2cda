package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/tictactoe-dashboard/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-dashboard/internal/entity"
)

type profileUseCase interface {
	Register(ctx context.Context, username, email string) (*entity.Profile, error)
	GetProfile(ctx context.Context, username string) (*entity.Profile, error)
	ListProfiles(ctx context.Context) ([]*entity.Profile, error)
	UpdateProfile(ctx context.Context, username string, update entity.ProfileUpdate) (*entity.Profile, error)
	UpdateSettings(ctx context.Context, username string, settings entity.Settings) (*entity.Profile, error)
}

type ProfileHandler interface {
	List(ctx echo.Context) error
	Register(ctx echo.Context) error
	Get(ctx echo.Context) error
	Update(ctx echo.Context) error
	UpdateSettings(ctx echo.Context) error
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type profileHandler struct {
	logger   *slog.Logger
	profiles profileUseCase
}

func NewProfileHandler(logger *slog.Logger, profiles profileUseCase) ProfileHandler {
	return &profileHandler{
		logger:   logger.With("component", "profile_handler"),
		profiles: profiles,
	}
}

func (that *profileHandler) List(ctx echo.Context) error {
	profiles, err := that.profiles.ListProfiles(ctx.Request().Context())
	if err != nil {
		return that.toHTTPError(err)
	}

	if profiles == nil {
		profiles = []*entity.Profile{}
	}

	return ctx.JSON(http.StatusOK, profiles)
}

func (that *profileHandler) Register(ctx echo.Context) error {
	var req registerRequest
	if err := ctx.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	profile, err := that.profiles.Register(ctx.Request().Context(), req.Username, req.Email)
	if err != nil {
		return that.toHTTPError(err)
	}

	return ctx.JSON(http.StatusCreated, profile)
}

func (that *profileHandler) Get(ctx echo.Context) error {
	profile, err := that.profiles.GetProfile(ctx.Request().Context(), ctx.Param("username"))
	if err != nil {
		return that.toHTTPError(err)
	}

	return ctx.JSON(http.StatusOK, profile)
}

func (that *profileHandler) Update(ctx echo.Context) error {
	var update entity.ProfileUpdate
	if err := ctx.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	profile, err := that.profiles.UpdateProfile(ctx.Request().Context(), ctx.Param("username"), update)
	if err != nil {
		return that.toHTTPError(err)
	}

	return ctx.JSON(http.StatusOK, profile)
}

func (that *profileHandler) UpdateSettings(ctx echo.Context) error {
	var settings entity.Settings
	if err := ctx.Bind(&settings); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed request body")
	}

	profile, err := that.profiles.UpdateSettings(ctx.Request().Context(), ctx.Param("username"), settings)
	if err != nil {
		return that.toHTTPError(err)
	}

	return ctx.JSON(http.StatusOK, profile)
}

func (that *profileHandler) toHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "profile not found")
	case errors.Is(err, apperror.ErrProfileExists):
		return echo.NewHTTPError(http.StatusConflict, apperror.ErrProfileExists.Error())
	case errors.Is(err, apperror.ErrValidation), errors.Is(err, apperror.ErrUnsupportedLanguage):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	that.logger.Error("profile request failed", "error", err)

	return echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
