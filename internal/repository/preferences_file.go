package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/lk16/reversi/internal/models"
	"gopkg.in/yaml.v3"
)

// FilePreferenceRepository keeps the preferences of the local player in a YAML file.
type FilePreferenceRepository struct {
	path string
}

// NewFilePreferenceRepository creates a FilePreferenceRepository. A leading "~/" in path is expanded.
func NewFilePreferenceRepository(path string) (*FilePreferenceRepository, error) {
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot find home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	return &FilePreferenceRepository{path: path}, nil
}

// Path returns the location of the file.
func (repo *FilePreferenceRepository) Path() string {
	return repo.path
}

// Load reads the file. A missing file yields the default preferences.
func (repo *FilePreferenceRepository) Load() (models.Preferences, error) {
	data, err := os.ReadFile(repo.path)
	if errors.Is(err, fs.ErrNotExist) {
		return models.DefaultPreferences(), nil
	}

	if err != nil {
		return models.Preferences{}, fmt.Errorf("failed to read preferences %s: %w", repo.path, err)
	}

	prefs := models.DefaultPreferences()
	if err = yaml.Unmarshal(data, &prefs); err != nil {
		return models.Preferences{}, fmt.Errorf("failed to parse preferences %s: %w", repo.path, err)
	}

	if err = prefs.Validate(); err != nil {
		return models.Preferences{}, fmt.Errorf("invalid preferences in %s: %w", repo.path, err)
	}

	return prefs, nil
}

// Save writes the preferences, creating the parent directory if needed.
func (repo *FilePreferenceRepository) Save(prefs models.Preferences) error {
	if err := prefs.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(&prefs)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(repo.path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", repo.path, err)
	}

	if err = os.WriteFile(repo.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write preferences %s: %w", repo.path, err)
	}

	return nil
}
