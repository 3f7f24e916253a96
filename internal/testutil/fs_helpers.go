// Package testutil provides test utilities and helpers for miscore tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// ValidRecordsJSON is a small records document that passes validation,
// covering every entry variant.
const ValidRecordsJSON = `{
  "Celeste": {
    "difficulties": ["normal", "hard"],
    "record_types": [
      {"id": "any-percent", "kind": "fastest_time", "display_name": "Any% Speedrun"},
      {"id": "story", "kind": "completed_at_difficulty", "display_name": "Story Completion"}
    ],
    "records": [
      {"record_type": "any-percent", "date": "2024-01-01", "duration_seconds": 1523},
      {"record_type": "story", "date": "2024-02-10", "difficulty": "hard"}
    ]
  },
  "Tetris": {
    "record_types": [
      {"id": "marathon", "kind": "high_score", "display_name": "Marathon"}
    ],
    "records": [
      {"record_type": "marathon", "date": "2024-03-05", "value": 999999}
    ]
  }
}
`

// WriteRecordsFile writes a records document into dir and returns its path.
// Cleanup is handled via t.Cleanup through t.TempDir callers.
func WriteRecordsFile(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "records.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write records file: %v", err)
	}
	return path
}

// WriteFile writes content to a file, creating parent directories if needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}

// ReadFile reads file content, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}

	return string(content)
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
