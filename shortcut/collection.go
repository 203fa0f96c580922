package shortcut

import (
	"fmt"
	"strings"
)

// Upsert trims name and either replaces the content of the entry with that
// name in place or appends a new entry. c is never modified; on a validation
// error c is returned as is.
func Upsert(c Collection, name, content string) (Collection, Outcome, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return c, "", fmt.Errorf("%w: name is empty", ErrValidation)
	}
	if strings.TrimSpace(content) == "" {
		return c, "", fmt.Errorf("%w: content is empty", ErrValidation)
	}

	out := c.Clone()
	if i := index(out, name); i >= 0 {
		out[i].Content = content
		return out, Updated, nil
	}
	return append(out, Shortcut{Name: name, Content: content}), Created, nil
}

// Lookup matches the trimmed query exactly and case-sensitively against the
// stored names. ok is false when no shortcut has that name.
func Lookup(c Collection, query string) (content string, ok bool) {
	i := index(c, strings.TrimSpace(query))
	if i < 0 {
		return "", false
	}
	return c[i].Content, true
}

// ClearAll returns an empty collection.
func ClearAll(Collection) Collection {
	return Collection{}
}

func index(c Collection, name string) int {
	for i, s := range c {
		if s.Name == name {
			return i
		}
	}
	return -1
}
