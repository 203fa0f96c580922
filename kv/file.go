package kv

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// File stores each key as <dir>/<key>.json.
type File struct {
	dir string
}

func NewFile(dir string) *File {
	return &File{dir: dir}
}

func (f *File) path(key string) string {
	return filepath.Join(f.dir, key+".json")
}

func (f *File) Get(key string) ([]byte, bool, error) {
	if err := validKey(key); err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// Set writes to a temp file then renames it over the target, so readers never
// observe a partially written blob.
func (f *File) Set(key string, data []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return err
	}

	target := f.path(key)
	tmp := target + "." + uuid.NewString() + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
