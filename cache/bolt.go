package cache

import (
	"errors"
	"fmt"

	"go.etcd.io/bbolt"
)

const cacheBucket = "catalog_cache"

// BoltStorage implements Storage on a BoltDB database. All slots live in a
// single bucket; the database handle is owned by the caller.
type BoltStorage struct {
	db *bbolt.DB
}

// NewBoltStorage creates a BoltDB-backed cache store. It initializes the
// bucket if it doesn't exist.
func NewBoltStorage(db *bbolt.DB) (*BoltStorage, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}

	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(cacheBucket))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create cache bucket: %w", err)
	}

	return &BoltStorage{db: db}, nil
}

// Read returns the raw bytes stored under key.
func (s *BoltStorage) Read(key string) ([]byte, error) {
	var data []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(cacheBucket))
		if bucket == nil {
			return errors.New("cache bucket not found")
		}

		value := bucket.Get([]byte(key))
		if value == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, key)
		}

		// The slice returned by Get is only valid inside the transaction.
		data = append([]byte(nil), value...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}

// Write stores data under key, replacing any previous value.
func (s *BoltStorage) Write(key string, data []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(cacheBucket))
		if bucket == nil {
			return errors.New("cache bucket not found")
		}
		return bucket.Put([]byte(key), data)
	})
}
