package historyrepo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/outfit-advisor/internal/domain/outfit"
)

const schema = `
CREATE TABLE IF NOT EXISTS outfit_recommendations (
	id           TEXT PRIMARY KEY,
	mood         TEXT NOT NULL,
	gender       TEXT NOT NULL,
	style        TEXT NOT NULL,
	location     TEXT NOT NULL,
	temperature  DOUBLE PRECISION NOT NULL,
	category     TEXT NOT NULL,
	outfit       TEXT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS outfit_recommendations_created_at_idx ON outfit_recommendations (created_at DESC);
`

// PostgresRepository implements outfit.HistoryRepository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// EnsureSchema creates the history table when missing.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure history schema: %w", err)
	}
	return nil
}

// Save inserts a record.
func (r *PostgresRepository) Save(ctx context.Context, record outfit.HistoryRecord) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO outfit_recommendations (id, mood, gender, style, location, temperature, category, outfit, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, record.ID, record.Mood, record.Gender, record.Style, record.Location, record.Temperature, string(record.Category), record.Outfit, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert history record: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]outfit.HistoryRecord, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, mood, gender, style, location, temperature, category, outfit, created_at
		FROM outfit_recommendations
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return pgx.CollectRows(rows, scanRecord)
}

func scanRecord(row pgx.CollectableRow) (outfit.HistoryRecord, error) {
	var (
		record   outfit.HistoryRecord
		category string
	)
	if err := row.Scan(
		&record.ID,
		&record.Mood,
		&record.Gender,
		&record.Style,
		&record.Location,
		&record.Temperature,
		&category,
		&record.Outfit,
		&record.CreatedAt,
	); err != nil {
		return outfit.HistoryRecord{}, err
	}
	record.Category = outfit.WeatherCategory(category)
	return record, nil
}

var _ outfit.HistoryRepository = (*PostgresRepository)(nil)
