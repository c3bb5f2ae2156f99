package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lk16/reversi/internal/models"
)

const preferencesSchema = `
	CREATE TABLE IF NOT EXISTS preferences (
		client_id UUID PRIMARY KEY,
		theme TEXT NOT NULL,
		difficulty INTEGER NOT NULL,
		opponent TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// PostgresPreferenceRepository stores preferences per client in Postgres.
type PostgresPreferenceRepository struct {
	db *sqlx.DB
}

// NewPostgresPreferenceRepository creates a new PostgresPreferenceRepository.
func NewPostgresPreferenceRepository(db *sqlx.DB) *PostgresPreferenceRepository {
	return &PostgresPreferenceRepository{db: db}
}

// EnsureSchema creates the preferences table if it does not exist.
func (repo *PostgresPreferenceRepository) EnsureSchema(ctx context.Context) error {
	if _, err := repo.db.ExecContext(ctx, preferencesSchema); err != nil {
		return fmt.Errorf("error creating preferences table: %w", err)
	}
	return nil
}

// Get returns the preferences of a client, or the defaults if it never saved any.
func (repo *PostgresPreferenceRepository) Get(ctx context.Context, clientID string) (models.Preferences, error) {
	query := `
		SELECT theme, difficulty, opponent, updated_at
		FROM preferences
		WHERE client_id = $1
	`

	var prefs models.Preferences
	err := repo.db.GetContext(ctx, &prefs, query, clientID)

	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultPreferences(), nil
	}

	if err != nil {
		return models.Preferences{}, fmt.Errorf("error getting preferences: %w", err)
	}

	return prefs, nil
}

// Save inserts or replaces the preferences of a client.
func (repo *PostgresPreferenceRepository) Save(ctx context.Context, clientID string, prefs models.Preferences) (models.Preferences, error) {
	if err := prefs.Validate(); err != nil {
		return models.Preferences{}, err
	}

	query := `
		INSERT INTO preferences (client_id, theme, difficulty, opponent, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (client_id)
		DO UPDATE SET
			theme = EXCLUDED.theme,
			difficulty = EXCLUDED.difficulty,
			opponent = EXCLUDED.opponent,
			updated_at = EXCLUDED.updated_at
		RETURNING theme, difficulty, opponent, updated_at
	`

	var saved models.Preferences
	err := repo.db.QueryRowxContext(ctx, query, clientID, prefs.Theme, prefs.Difficulty, prefs.Opponent).StructScan(&saved)
	if err != nil {
		return models.Preferences{}, fmt.Errorf("error saving preferences: %w", err)
	}

	return saved, nil
}

// MemoryPreferenceRepository keeps preferences in process memory.
type MemoryPreferenceRepository struct {
	// data stores the preferences by client id
	data map[string]models.Preferences

	// dataMutex protects data
	dataMutex sync.Mutex
}

// NewMemoryPreferenceRepository creates a new MemoryPreferenceRepository.
func NewMemoryPreferenceRepository() *MemoryPreferenceRepository {
	return &MemoryPreferenceRepository{
		data: make(map[string]models.Preferences),
	}
}

// Get returns the preferences of a client, or the defaults if it never saved any.
func (repo *MemoryPreferenceRepository) Get(_ context.Context, clientID string) (models.Preferences, error) {
	repo.dataMutex.Lock()
	defer repo.dataMutex.Unlock()

	prefs, ok := repo.data[clientID]
	if !ok {
		return models.DefaultPreferences(), nil
	}
	return prefs, nil
}

// Save replaces the preferences of a client.
func (repo *MemoryPreferenceRepository) Save(_ context.Context, clientID string, prefs models.Preferences) (models.Preferences, error) {
	if err := prefs.Validate(); err != nil {
		return models.Preferences{}, err
	}

	prefs.UpdatedAt = time.Now()

	repo.dataMutex.Lock()
	defer repo.dataMutex.Unlock()

	repo.data[clientID] = prefs
	return prefs, nil
}
