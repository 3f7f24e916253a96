package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miscore-dev/miscore/internal/ledger"
	"github.com/miscore-dev/miscore/internal/testutil"
)

func TestLoadDocument(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteRecordsFile(t, dir, testutil.ValidRecordsJSON)

	node, err := LoadDocument(path)
	require.NoError(t, err)
	require.NotNil(t, node)

	result := ledger.Validate(node)
	assert.True(t, result.Valid, "fixture should validate: %v", result.Err())
}

func TestLoadDocument_Missing(t *testing.T) {
	_, err := LoadDocument(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadDocument_Empty(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteRecordsFile(t, dir, "")

	_, err := LoadDocument(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestLoadAndValidate(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteRecordsFile(t, dir, testutil.ValidRecordsJSON)

	result := LoadAndValidate(path)
	require.True(t, result.Valid, "unexpected errors: %v", result.Err())
	assert.Equal(t, 2, result.Summary.Games)
	assert.Equal(t, 3, result.Summary.Records)
}

// Load failures surface as a structural error in the result, not a separate
// error path.
func TestLoadAndValidate_MissingFile(t *testing.T) {
	result := LoadAndValidate(filepath.Join(t.TempDir(), "nope.json"))

	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, ledger.CodeStructure, result.Errors[0].Code)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := testutil.WriteRecordsFile(t, dir, testutil.ValidRecordsJSON)

	result := LoadAndValidate(src)
	require.True(t, result.Valid, "fixture should validate: %v", result.Err())

	dst := filepath.Join(dir, "saved.json")
	require.NoError(t, Save(dst, result.Ledger))

	reloaded := LoadAndValidate(dst)
	require.True(t, reloaded.Valid, "saved file should validate: %v", reloaded.Err())
	assert.Equal(t, result.Summary, reloaded.Summary)

	// Game order survives the round trip.
	require.Len(t, reloaded.Ledger.Games, 2)
	assert.Equal(t, "Celeste", reloaded.Ledger.Games[0].Name)
	assert.Equal(t, "Tetris", reloaded.Ledger.Games[1].Name)
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteRecordsFile(t, dir, "{}")

	assert.True(t, Exists(path))
	assert.False(t, Exists(filepath.Join(dir, "nope.json")))
}
