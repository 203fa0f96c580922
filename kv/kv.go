// Package kv provides the key-value persistence surface the shortcut store
// writes its serialized collection to. Each key holds one opaque blob.
package kv

import (
	"errors"
	"strings"
)

var (
	ErrClosed     = errors.New("kv: store is closed")
	ErrInvalidKey = errors.New("kv: invalid key")
)

// Store is a minimal key-value store. Get reports found=false for a missing
// key; that is not an error.
type Store interface {
	Get(key string) (data []byte, found bool, err error)
	Set(key string, data []byte) error
}

// validKey rejects keys that cannot be mapped onto a file name or bucket key.
func validKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return ErrInvalidKey
	}
	return nil
}
