package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ruslingo/ruslingo/internal/domain/entities"
)

var ErrAnalyticsNotFound = errors.New("analytics document not found")

// AnalyticsRepository stores one analytics document per profile as a JSONB
// column. The document is read and written wholesale: callers load it,
// mutate it and save it back.
type AnalyticsRepository struct {
	db *pgxpool.Pool
}

func NewAnalyticsRepository(db *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// Load retrieves the analytics document for a profile.
// Returns ErrAnalyticsNotFound if the profile has no document yet.
func (r *AnalyticsRepository) Load(ctx context.Context, profileID string) (*entities.AnalyticsDocument, error) {
	query := `SELECT document FROM profile_analytics WHERE profile_id = $1`

	var data []byte
	err := r.db.QueryRow(ctx, query, profileID).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAnalyticsNotFound
		}

		return nil, fmt.Errorf("load analytics: %w", err)
	}

	var doc entities.AnalyticsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal analytics: %w", err)
	}
	if doc.PrioritySentences == nil {
		doc.PrioritySentences = make(map[string][]entities.PrioritySentence)
	}

	return &doc, nil
}

// Save upserts the analytics document for a profile, replacing any previous
// version. Last write wins at the document level.
func (r *AnalyticsRepository) Save(ctx context.Context, profileID string, doc *entities.AnalyticsDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal analytics: %w", err)
	}

	query := `
		INSERT INTO profile_analytics (profile_id, document, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (profile_id)
		DO UPDATE SET
			document = excluded.document,
			updated_at = excluded.updated_at
	`

	_, err = r.db.Exec(ctx, query, profileID, data, time.Now())
	if err != nil {
		return fmt.Errorf("save analytics: %w", err)
	}

	return nil
}
