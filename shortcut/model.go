// Package shortcut holds the shortcut collection model, the pure operations
// over it, and the persistence adapter that serializes it to a kv.Store.
package shortcut

import (
	"errors"
	"fmt"
)

// Shortcut is a named reusable text snippet. Name is the trimmed, unique key.
type Shortcut struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Collection is the ordered set of shortcuts, in insertion order.
type Collection []Shortcut

// Clone returns a copy that shares no backing array with c.
func (c Collection) Clone() Collection {
	out := make(Collection, len(c))
	copy(out, c)
	return out
}

// Outcome tags the effect of a mutation for user feedback.
type Outcome string

const (
	Created Outcome = "created"
	Updated Outcome = "updated"
	Cleared Outcome = "cleared"
)

var ErrValidation = errors.New("invalid shortcut")

// ReadError reports persisted data that could not be read or decoded. The
// caller continues with an empty collection; the stored bytes are untouched.
type ReadError struct {
	Key string
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading shortcuts from %q: %v", e.Key, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError reports a failed write. The in-memory collection is kept, so the
// persisted copy may be stale until the next successful write.
type WriteError struct {
	Key string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing shortcuts to %q: %v", e.Key, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
