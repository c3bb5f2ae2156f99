package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/lk16/reversi/internal/models"
	"github.com/lk16/reversi/internal/tests/suite"
	"github.com/stretchr/testify/require"
)

type preferenceRepository interface {
	Get(ctx context.Context, clientID string) (models.Preferences, error)
	Save(ctx context.Context, clientID string, prefs models.Preferences) (models.Preferences, error)
}

func testPreferenceRepository(ctx context.Context, t *testing.T, repo preferenceRepository) {
	t.Helper()

	clientID := uuid.New().String()

	prefs, err := repo.Get(ctx, clientID)
	require.NoError(t, err)
	require.Equal(t, models.DefaultPreferences(), prefs)

	saved, err := repo.Save(ctx, clientID, models.Preferences{Theme: "dark", Difficulty: 2, Opponent: "white"})
	require.NoError(t, err)
	require.Equal(t, "dark", saved.Theme)
	require.False(t, saved.UpdatedAt.IsZero())

	prefs, err = repo.Get(ctx, clientID)
	require.NoError(t, err)
	require.Equal(t, "dark", prefs.Theme)
	require.Equal(t, 2, prefs.Difficulty)
	require.Equal(t, "white", prefs.Opponent)

	// Saving again replaces the previous values.
	_, err = repo.Save(ctx, clientID, models.Preferences{Theme: "light", Difficulty: 0, Opponent: "none"})
	require.NoError(t, err)

	prefs, err = repo.Get(ctx, clientID)
	require.NoError(t, err)
	require.Equal(t, "light", prefs.Theme)
	require.Equal(t, 0, prefs.Difficulty)

	// Other clients are not affected.
	prefs, err = repo.Get(ctx, uuid.New().String())
	require.NoError(t, err)
	require.Equal(t, models.DefaultPreferences(), prefs)

	_, err = repo.Save(ctx, clientID, models.Preferences{Theme: "purple", Difficulty: 0, Opponent: "none"})
	require.Error(t, err)
}

func TestMemoryPreferenceRepository(t *testing.T) {
	testPreferenceRepository(t.Context(), t, NewMemoryPreferenceRepository())
}

func TestPostgresPreferenceRepository(t *testing.T) {
	ctx, db := suite.Postgres(t)

	repo := NewPostgresPreferenceRepository(db)
	require.NoError(t, repo.EnsureSchema(ctx))

	// Creating the schema twice is fine.
	require.NoError(t, repo.EnsureSchema(ctx))

	testPreferenceRepository(ctx, t, repo)
}

func TestFilePreferenceRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "preferences.yaml")

	repo, err := NewFilePreferenceRepository(path)
	require.NoError(t, err)
	require.Equal(t, path, repo.Path())

	prefs, err := repo.Load()
	require.NoError(t, err)
	require.Equal(t, models.DefaultPreferences(), prefs)

	prefs.Theme = models.ThemeDark
	prefs.Opponent = "black"
	require.NoError(t, repo.Save(prefs))

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.Equal(t, prefs, loaded)

	prefs.Difficulty = 7
	require.Error(t, repo.Save(prefs))
}

func TestFilePreferenceRepository_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preferences.yaml")

	repo, err := NewFilePreferenceRepository(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("theme: [not, a, string"), 0o600))
	_, err = repo.Load()
	require.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("theme: sepia\n"), 0o600))
	_, err = repo.Load()
	require.Error(t, err)

	// Missing keys keep their defaults.
	require.NoError(t, os.WriteFile(path, []byte("theme: dark\n"), 0o600))
	prefs, err := repo.Load()
	require.NoError(t, err)
	require.Equal(t, "dark", prefs.Theme)
	require.Equal(t, models.DefaultPreferences().Opponent, prefs.Opponent)
}

func TestNewFilePreferenceRepository_Home(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	repo, err := NewFilePreferenceRepository("~/.reversi/preferences.yaml")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".reversi", "preferences.yaml"), repo.Path())
}
