package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ruslingo/ruslingo/internal/domain/entities"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create inserts a new profile. Does nothing if the profile already exists.
func (r *ProfileRepository) Create(ctx context.Context, profile *entities.Profile) error {
	query := `
		INSERT INTO profiles (id, name, is_admin, chat_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := r.db.Exec(
		ctx, query,
		profile.ID,
		profile.Name,
		profile.IsAdmin,
		profile.ChatID,
		profile.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}

	return nil
}

// Get retrieves a profile by ID. Returns ErrProfileNotFound if it doesn't exist.
func (r *ProfileRepository) Get(ctx context.Context, id string) (*entities.Profile, error) {
	query := `
		SELECT id, name, is_admin, chat_id, created_at
		FROM profiles
		WHERE id = $1
	`

	var profile entities.Profile
	err := r.db.QueryRow(ctx, query, id).Scan(
		&profile.ID,
		&profile.Name,
		&profile.IsAdmin,
		&profile.ChatID,
		&profile.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProfileNotFound
		}

		return nil, fmt.Errorf("get profile: %w", err)
	}

	return &profile, nil
}

// IsAdmin checks whether the profile has the admin flag. An unknown profile
// is not an admin.
func (r *ProfileRepository) IsAdmin(ctx context.Context, id string) (bool, error) {
	query := `SELECT is_admin FROM profiles WHERE id = $1`

	var isAdmin bool
	err := r.db.QueryRow(ctx, query, id).Scan(&isAdmin)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}

		return false, fmt.Errorf("is admin: %w", err)
	}

	return isAdmin, nil
}

// ListWithChat retrieves profiles that have a Telegram chat linked for
// review reminders.
func (r *ProfileRepository) ListWithChat(ctx context.Context) ([]*entities.Profile, error) {
	query := `
		SELECT id, name, is_admin, chat_id, created_at
		FROM profiles
		WHERE chat_id <> 0
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list with chat: %w", err)
	}
	defer rows.Close()

	var profiles []*entities.Profile
	for rows.Next() {
		var p entities.Profile
		err = rows.Scan(&p.ID, &p.Name, &p.IsAdmin, &p.ChatID, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		profiles = append(profiles, &p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}

	return profiles, nil
}
