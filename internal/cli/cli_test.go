package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miscore-dev/miscore/internal/config"
	"github.com/miscore-dev/miscore/internal/store"
	"github.com/miscore-dev/miscore/internal/testutil"
)

const invalidRecordsJSON = `{
  "Celeste": {
    "record_types": [{"id": "run", "kind": "fastest_time", "display_name": "Any%"}],
    "records": [{"record_type": "run", "date": "2024-01-01", "value": 100}]
  }
}`

func testConfig() *config.Configuration {
	return &config.Configuration{RecordsFile: "./records.json"}
}

func TestRunValidate_Valid(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteRecordsFile(t, dir, testutil.ValidRecordsJSON)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := runValidate([]string{path}, testConfig(), out, errOut)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "is valid")
	assert.Contains(t, out.String(), "games: 2")
	assert.Contains(t, out.String(), "records: 3")
	assert.Empty(t, errOut.String())
}

// An invalid document without --strict prints the report and exits zero.
func TestRunValidate_InvalidWithoutStrict(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteRecordsFile(t, dir, invalidRecordsJSON)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := runValidate([]string{path}, testConfig(), out, errOut)
	require.NoError(t, err)
	assert.Contains(t, errOut.String(), "has 1 error(s)")
	assert.Contains(t, errOut.String(), "variant_mismatch")
}

func TestRunValidate_InvalidStrict(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteRecordsFile(t, dir, invalidRecordsJSON)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	cfg := testConfig()
	cfg.Strict = true
	err := runValidate([]string{path}, cfg, out, errOut)
	require.Error(t, err)
	assert.Equal(t, ExitValidationFailed, ExitCode(err))
}

func TestRunValidate_MissingFileIsStructural(t *testing.T) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	cfg := testConfig()
	cfg.Strict = true
	err := runValidate([]string{filepath.Join(t.TempDir(), "nope.json")}, cfg, out, errOut)
	require.Error(t, err)
	assert.Contains(t, errOut.String(), "structure")
}

func TestRunValidate_Schema(t *testing.T) {
	validateSchemaFlag = true
	defer func() { validateSchemaFlag = false }()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := runValidate(nil, testConfig(), out, errOut)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Records document shape")
	assert.Contains(t, out.String(), "record_types")
}

func TestRunValidate_CheckScreenshots(t *testing.T) {
	doc := `{
  "Celeste": {
    "record_types": [{"id": "clear", "kind": "completed", "display_name": "Clear"}],
    "records": [{"record_type": "clear", "date": "2024-01-01", "screenshot": "shots/clear.png"}]
  }
}`
	dir := t.TempDir()
	path := testutil.WriteRecordsFile(t, dir, doc)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	cfg := testConfig()
	cfg.CheckScreenshots = true
	cfg.Strict = true
	err := runValidate([]string{path}, cfg, out, errOut)
	require.Error(t, err)
	assert.Contains(t, errOut.String(), "screenshot_missing")
	assert.Contains(t, errOut.String(), "shots/clear.png")

	// The same document passes once the screenshot exists.
	testutil.WriteFile(t, filepath.Join(dir, "shots", "clear.png"), "png")
	out.Reset()
	errOut.Reset()
	err = runValidate([]string{path}, cfg, out, errOut)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "is valid")
}

// Stdin is not a terminal under go test, so add-game takes the
// non-interactive path and creates a bare game.
func TestRunAddGame_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := runAddGame([]string{"Doom", path}, testConfig(), &bytes.Buffer{}, out, errOut)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "added")
	require.True(t, testutil.FileExists(path))

	result := store.LoadAndValidate(path)
	require.True(t, result.Valid, "written file should validate: %v", result.Err())
	assert.NotNil(t, result.Ledger.GameByName("Doom"))
}

func TestRunAddGame_Duplicate(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteRecordsFile(t, dir, testutil.ValidRecordsJSON)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := runAddGame([]string{"Celeste", path}, testConfig(), &bytes.Buffer{}, out, errOut)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "already exists")

	// The file is untouched.
	result := store.LoadAndValidate(path)
	require.True(t, result.Valid)
	assert.Equal(t, 2, result.Summary.Games)
}

func TestRunAddGame_RefusesInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteRecordsFile(t, dir, invalidRecordsJSON)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := runAddGame([]string{"Doom", path}, testConfig(), &bytes.Buffer{}, out, errOut)
	require.Error(t, err)
	assert.Equal(t, ExitValidationFailed, ExitCode(err))
	assert.Contains(t, errOut.String(), "Fix the existing errors")
}

func TestRunGames(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteRecordsFile(t, dir, testutil.ValidRecordsJSON)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := runGames([]string{path}, testConfig(), out, errOut)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Celeste")
	assert.Contains(t, out.String(), "difficulties: normal, hard")
	assert.Contains(t, out.String(), "Marathon (high_score): 1 record(s)")
}

func TestRunGames_Empty(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteRecordsFile(t, dir, "{}")
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := runGames([]string{path}, testConfig(), out, errOut)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "No games in")
}

func TestRunGames_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteRecordsFile(t, dir, invalidRecordsJSON)
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := runGames([]string{path}, testConfig(), out, errOut)
	require.Error(t, err)
	assert.Equal(t, ExitValidationFailed, ExitCode(err))
}

func TestRecordsPath(t *testing.T) {
	cfg := &config.Configuration{RecordsFile: "configured.json"}
	assert.Equal(t, "arg.json", recordsPath([]string{"arg.json"}, 0, cfg))
	assert.Equal(t, "configured.json", recordsPath(nil, 0, cfg))
	assert.Equal(t, "configured.json", recordsPath([]string{"Celeste"}, 1, cfg))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitInvalidArguments, ExitCode(NewExitError(ExitInvalidArguments)))
	assert.Equal(t, ExitValidationFailed, ExitCode(errors.New("plain error")))
}
