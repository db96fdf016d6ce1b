package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lixenwraith/gravity-eater/parameter"
)

const appDirName = "gravity-eater"

// FileStore keeps the high score in a file named after the persistence key
type FileStore struct {
	path string
}

// NewFileStore stores under dir; the directory is created on first save
func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, parameter.HighScoreKey)}
}

// DefaultDir returns the per-user data directory for the game
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// Path returns the backing file path
func (fs *FileStore) Path() string {
	return fs.path
}

// Load returns the stored score; any read or parse failure yields 0
func (fs *FileStore) Load() int {
	data, err := os.ReadFile(fs.path)
	if err != nil {
		return 0
	}
	return ParseHighScore(string(data))
}

// Save writes n through a temp file and rename so a crash never leaves a torn value
func (fs *FileStore) Save(n int) error {
	dir := filepath.Dir(fs.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, parameter.HighScoreKey+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(FormatHighScore(n)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write high score: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, fs.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace high score: %w", err)
	}
	return nil
}
