package cmd_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortcuts/cmd"
)

type result struct {
	stdout, stderr string
	err            error
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	err := cmd.Run(args, strings.NewReader(stdin), &out, &errOut)
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

func storeArgs(t *testing.T, backend string) []string {
	t.Helper()
	for _, k := range []string{"PORT", "SHORTCUT_BACKEND", "SHORTCUT_PATH", "SHORTCUT_KEY", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	return []string{"--path", t.TempDir(), "--backend", backend, "--log-level", "error"}
}

func TestAddGetList(t *testing.T) {
	for _, backend := range []string{"file", "bolt"} {
		t.Run(backend, func(t *testing.T) {
			base := storeArgs(t, backend)

			r := run(t, "", append(base, "add", " greet ", "Hi!")...)
			require.NoError(t, r.err)
			assert.Equal(t, "✓ created greet\n", r.stdout)

			r = run(t, "", append(base, "add", "greet", "Hello!")...)
			require.NoError(t, r.err)
			assert.Equal(t, "✓ updated greet\n", r.stdout)

			r = run(t, "", append(base, "add", "sig", "Best,\nMe")...)
			require.NoError(t, r.err)

			r = run(t, "", append(base, "get", "greet")...)
			require.NoError(t, r.err)
			assert.Equal(t, "Hello!", r.stdout)

			r = run(t, "", append(base, "list")...)
			require.NoError(t, r.err)
			lines := strings.Split(strings.TrimSpace(r.stdout), "\n")
			require.Len(t, lines, 2)
			assert.True(t, strings.HasPrefix(lines[0], "greet"))
			assert.True(t, strings.HasPrefix(lines[1], "sig"))
			assert.Contains(t, lines[1], "Best, ...")

			r = run(t, "", append(base, "recent")...)
			require.NoError(t, r.err)
			assert.Equal(t, "greet\n", r.stdout)
		})
	}
}

func TestAddValidation(t *testing.T) {
	base := storeArgs(t, "file")
	r := run(t, "", append(base, "add", "  ", "x")...)
	assert.Error(t, r.err)
}

func TestGetNotFound(t *testing.T) {
	base := storeArgs(t, "file")
	r := run(t, "", append(base, "get", "missing")...)
	require.Error(t, r.err)
	assert.Contains(t, r.err.Error(), `no shortcut named "missing"`)
}

func TestListEmpty(t *testing.T) {
	base := storeArgs(t, "file")
	r := run(t, "", append(base, "list")...)
	require.NoError(t, r.err)
	assert.Equal(t, "No shortcuts defined.\n", r.stdout)
}

func TestClearConfirmation(t *testing.T) {
	base := storeArgs(t, "file")
	require.NoError(t, run(t, "", append(base, "add", "a", "1")...).err)

	r := run(t, "n\n", append(base, "clear")...)
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "Aborted.")
	require.NoError(t, run(t, "", append(base, "get", "a")...).err)

	r = run(t, "y\n", append(base, "clear")...)
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "✓ cleared 1 shortcuts")
	assert.Error(t, run(t, "", append(base, "get", "a")...).err)
}

func TestClearYes(t *testing.T) {
	base := storeArgs(t, "bolt")
	require.NoError(t, run(t, "", append(base, "add", "a", "1")...).err)

	r := run(t, "", append(base, "clear", "--yes")...)
	require.NoError(t, r.err)
	assert.Error(t, run(t, "", append(base, "get", "a")...).err)
}

func TestCorruptStorageWarns(t *testing.T) {
	base := storeArgs(t, "file")
	dir := base[1]
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shortcuts.json"), []byte("{broken"), 0644))

	r := run(t, "", append(base, "list")...)
	require.NoError(t, r.err)
	assert.Contains(t, r.stderr, "warning:")
	assert.Equal(t, "No shortcuts defined.\n", r.stdout)

	data, err := os.ReadFile(filepath.Join(dir, "shortcuts.json"))
	require.NoError(t, err)
	assert.Equal(t, "{broken", string(data), "corrupt data must be left untouched")
}

func TestBold(t *testing.T) {
	r := run(t, "", "bold", "--start", "0", "--end", "5", "hello world")
	require.NoError(t, r.err)

	var e struct {
		Text  string `json:"text"`
		Caret int    `json:"caret"`
	}
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &e))
	assert.Equal(t, "**hello** world", e.Text)
	assert.Equal(t, 7, e.Caret)

	r = run(t, "", "bold", "**hello**")
	require.NoError(t, r.err)
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &e))
	assert.Equal(t, "hello", e.Text)
	assert.Equal(t, 5, e.Caret)
}

func TestBoldOutOfRange(t *testing.T) {
	r := run(t, "", "bold", "--start", "3", "--end", "1", "hello")
	assert.Error(t, r.err)
}

func TestRender(t *testing.T) {
	r := run(t, "", "render", "**hi** there")
	require.NoError(t, r.err)
	assert.Equal(t, "<strong>hi</strong> there\n", r.stdout)
}

func TestFlagsOverrideEnv(t *testing.T) {
	base := storeArgs(t, "file")
	t.Setenv("LOG_LEVEL", "verbose")
	t.Setenv("SHORTCUT_BACKEND", "redis")

	r := run(t, "", append(base, "list")...)
	require.NoError(t, r.err)
	assert.Equal(t, "No shortcuts defined.\n", r.stdout)
}

func TestInvalidEnvWithoutFlag(t *testing.T) {
	storeArgs(t, "file")
	t.Setenv("LOG_LEVEL", "verbose")

	r := run(t, "", "--path", t.TempDir(), "list")
	require.Error(t, r.err)
	assert.Contains(t, r.err.Error(), `unknown log level "verbose"`)
}

func TestInvalidKeyFlag(t *testing.T) {
	base := storeArgs(t, "file")
	r := run(t, "", append(base, "--key", "../escape", "list")...)
	require.Error(t, r.err)
	assert.Contains(t, r.err.Error(), "invalid storage key")
}

func TestInvalidBackend(t *testing.T) {
	base := storeArgs(t, "redis")
	r := run(t, "", append(base, "list")...)
	require.Error(t, r.err)
	assert.Contains(t, r.err.Error(), "unknown backend")
}
