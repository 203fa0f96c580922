package kv

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"go.etcd.io/bbolt"
)

const boltBucket = "shortcuts" // key: storage key -> serialized blob

// Bolt keeps every key in a single bbolt bucket.
type Bolt struct {
	db *bbolt.DB
}

// OpenBolt opens (or creates) the database at path and ensures the bucket
// exists.
func OpenBolt(path string) (*Bolt, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucket))
		return err
	}); err != nil {
		_ = db.Close()

		return nil, err
	}

	return &Bolt{db: db}, nil
}

func (b *Bolt) Get(key string) ([]byte, bool, error) {
	if err := validKey(key); err != nil {
		return nil, false, err
	}

	var data []byte

	err := b.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(boltBucket)).Get([]byte(key))
		if v == nil {
			return nil
		}

		// v is only valid for the lifetime of the transaction.
		data = make([]byte, len(v))
		copy(data, v)

		return nil
	})
	if errors.Is(err, bbolt.ErrDatabaseNotOpen) {
		return nil, false, ErrClosed
	}
	if err != nil {
		return nil, false, err
	}

	return data, data != nil, nil
}

func (b *Bolt) Set(key string, data []byte) error {
	if err := validKey(key); err != nil {
		return err
	}

	err := b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucket)).Put([]byte(key), data)
	})
	if errors.Is(err, bbolt.ErrDatabaseNotOpen) {
		return ErrClosed
	}

	return err
}

// Close closes the database.
func (b *Bolt) Close() error {
	return b.db.Close()
}
