package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"github.com/rocketscienceinc/tictactoe-dashboard/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-dashboard/internal/entity"
	"github.com/rocketscienceinc/tictactoe-dashboard/internal/repository/storage"
)

const profileColumns = `id, username, email, role, language, notifications`

type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(st *storage.SQLite) *ProfileRepository {
	return &ProfileRepository{
		db: st.Connection,
	}
}

// Create - inserts the profile and sets its ID.
func (that *ProfileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	query := `INSERT INTO profiles (username, email, role, language, notifications) VALUES (?, ?, ?, ?, ?)`

	result, err := that.db.ExecContext(ctx, query,
		profile.Username, profile.Email, profile.Role, profile.Language, profile.Notifications)
	if err != nil {
		return mapConstraint(fmt.Errorf("failed to insert profile: %w", err))
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read profile id: %w", err)
	}

	profile.ID = id

	return nil
}

func (that *ProfileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	query := `UPDATE profiles SET username = ?, email = ?, role = ?, language = ?, notifications = ? WHERE id = ?`

	result, err := that.db.ExecContext(ctx, query,
		profile.Username, profile.Email, profile.Role, profile.Language, profile.Notifications, profile.ID)
	if err != nil {
		return mapConstraint(fmt.Errorf("failed to update profile: %w", err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}

	if affected == 0 {
		return apperror.ErrNotFound
	}

	return nil
}

func (that *ProfileRepository) FindByUsername(ctx context.Context, username string) (*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE username = ?`

	return that.findOne(ctx, query, username)
}

func (that *ProfileRepository) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE email = ?`

	return that.findOne(ctx, query, email)
}

// List - returns every profile ordered by username.
func (that *ProfileRepository) List(ctx context.Context) ([]*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY username`

	rows, err := that.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*entity.Profile
	for rows.Next() {
		profile := &entity.Profile{}
		if err = scanProfile(rows, profile); err != nil {
			return nil, err
		}

		profiles = append(profiles, profile)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate profiles: %w", err)
	}

	return profiles, nil
}

func (that *ProfileRepository) findOne(ctx context.Context, query string, arg any) (*entity.Profile, error) {
	profile := &entity.Profile{}

	err := scanProfile(that.db.QueryRowContext(ctx, query, arg), profile)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	return profile, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(row scanner, profile *entity.Profile) error {
	err := row.Scan(&profile.ID, &profile.Username, &profile.Email, &profile.Role, &profile.Language, &profile.Notifications)
	if errors.Is(err, sql.ErrNoRows) {
		return err
	}

	if err != nil {
		return fmt.Errorf("failed to scan profile: %w", err)
	}

	return nil
}

func mapConstraint(err error) error {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
		return fmt.Errorf("%w: %w", apperror.ErrProfileExists, err)
	}

	return err
}
