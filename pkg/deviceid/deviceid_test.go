package deviceid

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCreateIsStable(t *testing.T) {
	dir := t.TempDir()

	first := getOrCreateIn(dir)
	_, err := uuid.Parse(first)
	require.NoError(t, err)

	second := getOrCreateIn(dir)
	assert.Equal(t, first, second)
}

func TestGetOrCreateReplacesCorruptToken(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, fileName), []byte("garbage"), 0o600))

	token := getOrCreateIn(dir)
	_, err := uuid.Parse(token)
	require.NoError(t, err)
	assert.NotEqual(t, "garbage", token)
}

func TestGetOrCreateFallsBackWithoutStorage(t *testing.T) {
	// Unwritable location: still returns usable, fresh tokens.
	dir := filepath.Join(t.TempDir(), "blocked")
	require.NoError(t, os.WriteFile(dir, []byte{}, 0o400))

	first := getOrCreateIn(filepath.Join(dir, "nested"))
	second := getOrCreateIn(filepath.Join(dir, "nested"))

	_, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
