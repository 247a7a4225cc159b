package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

// FileStorage implements Storage using the file system, one file per key.
// It is the backend of choice when no database file is wanted.
type FileStorage struct {
	baseDir string
}

// NewFileStorage creates a new file-based cache storage. It ensures the
// cache directory exists before returning.
func NewFileStorage(baseDir string) (*FileStorage, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("cache directory cannot be empty")
	}

	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return &FileStorage{baseDir: baseDir}, nil
}

// Read returns the raw bytes stored under key.
func (fs *FileStorage) Read(key string) ([]byte, error) {
	data, err := os.ReadFile(fs.getFilePath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	return data, nil
}

// Write stores data under key, replacing any previous value.
func (fs *FileStorage) Write(key string, data []byte) error {
	if err := os.WriteFile(fs.getFilePath(key), data, 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}
	return nil
}

// getFilePath generates a file path from a cache key. The key is hashed to
// create a safe filename.
func (fs *FileStorage) getFilePath(key string) string {
	hash := sha256.Sum256([]byte(key))
	return filepath.Join(fs.baseDir, hex.EncodeToString(hash[:])+".cache")
}
