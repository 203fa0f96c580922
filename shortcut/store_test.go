package shortcut_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortcuts/kv"
	"shortcuts/shortcut"
)

type failingKV struct{ err error }

func (f failingKV) Get(string) ([]byte, bool, error) { return nil, false, f.err }
func (f failingKV) Set(string, []byte) error { return f.err }

func TestLoadMissingKey(t *testing.T) {
	s := shortcut.NewStore(kv.NewMemory(), "shortcuts")
	c, err := s.Load()
	require.NoError(t, err)
	assert.NotNil(t, c)
	assert.Empty(t, c)
}

func TestSaveAndLoadPreservesOrder(t *testing.T) {
	s := shortcut.NewStore(kv.NewFile(t.TempDir()), "shortcuts")
	want := shortcut.Collection{
		{Name: "zeta", Content: "last letter"},
		{Name: "alpha", Content: "first letter"},
		{Name: "mid", Content: "line1\nline2"},
	}
	require.NoError(t, s.Save(want))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveWritesRecordArray(t *testing.T) {
	mem := kv.NewMemory()
	s := shortcut.NewStore(mem, "shortcuts")
	require.NoError(t, s.Save(shortcut.Collection{{Name: "greet", Content: "Hi!"}}))

	data, found, err := mem.Get("shortcuts")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `[{"name":"greet","content":"Hi!"}]`, string(data))

	require.NoError(t, s.Save(nil))
	data, _, _ = mem.Get("shortcuts")
	assert.Equal(t, "[]", string(data))
}

func TestLoadCorruptData(t *testing.T) {
	cases := map[string]string{
		"garbage":   "{not json",
		"object":    `{"name":"a","content":"b"}`,
		"empty":     `[{"name":"","content":"b"}]`,
		"untrimmed": `[{"name":" a ","content":"b"}]`,
		"duplicate": `[{"name":"a","content":"1"},{"name":"a","content":"2"}]`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			mem := kv.NewMemory()
			require.NoError(t, mem.Set("shortcuts", []byte(raw)))
			s := shortcut.NewStore(mem, "shortcuts")

			c, err := s.Load()
			assert.NotNil(t, c)
			assert.Empty(t, c)

			var rerr *shortcut.ReadError
			require.ErrorAs(t, err, &rerr)
			assert.Equal(t, "shortcuts", rerr.Key)

			// The corrupt bytes are left for the user to recover.
			data, _, _ := mem.Get("shortcuts")
			assert.Equal(t, raw, string(data))
		})
	}
}

func TestLoadNullIsEmpty(t *testing.T) {
	mem := kv.NewMemory()
	require.NoError(t, mem.Set("shortcuts", []byte("null")))
	c, err := shortcut.NewStore(mem, "shortcuts").Load()
	require.NoError(t, err)
	assert.NotNil(t, c)
	assert.Empty(t, c)
}

func TestLoadBackendError(t *testing.T) {
	boom := errors.New("disk unreadable")
	c, err := shortcut.NewStore(failingKV{boom}, "shortcuts").Load()
	assert.Empty(t, c)

	var rerr *shortcut.ReadError
	require.ErrorAs(t, err, &rerr)
	assert.ErrorIs(t, err, boom)
}

func TestSaveBackendError(t *testing.T) {
	boom := errors.New("quota exceeded")
	err := shortcut.NewStore(failingKV{boom}, "shortcuts").Save(shortcut.Collection{})

	var werr *shortcut.WriteError
	require.ErrorAs(t, err, &werr)
	assert.ErrorIs(t, err, boom)
}

func TestRecentRoundTrip(t *testing.T) {
	b, err := kv.OpenBolt(filepath.Join(t.TempDir(), "shortcuts.bolt"))
	require.NoError(t, err)
	defer b.Close()

	s := shortcut.NewStore(b, "shortcuts")
	names, err := s.LoadRecent()
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, s.SaveRecent([]string{"b", "a"}))
	names, err = s.LoadRecent()
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, names)

	// The recently used list lives under its own key.
	c, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, c)
}
