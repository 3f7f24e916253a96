// Package store reads and writes records documents. Loading produces the
// untyped parsed document the validation engine consumes; saving writes a
// validated ledger back as indented JSON.
package store

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/miscore-dev/miscore/internal/ledger"
)

// LoadDocument parses a records file into its untyped document node.
func LoadDocument(path string) (*yaml.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open records file: %w", err)
	}
	defer f.Close()

	return decodeDocument(f)
}

func decodeDocument(r io.Reader) (*yaml.Node, error) {
	var node yaml.Node
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&node); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("records file is empty")
		}
		return nil, err
	}
	return &node, nil
}

// LoadAndValidate loads a records file and runs the validation engine on it.
// Load failures (missing file, unreadable bytes) surface as a structural
// error in the result rather than a separate error path, so callers always
// get one aggregate report.
func LoadAndValidate(path string) *ledger.Result {
	data, err := os.ReadFile(path)
	if err != nil {
		result := &ledger.Result{Valid: true}
		result.AddError(&ledger.ValidationError{
			Code:    ledger.CodeStructure,
			Message: fmt.Sprintf("failed to read records file: %v", err),
		})
		return result
	}
	return ledger.ValidateBytes(data)
}

// Save writes the ledger back to path as indented JSON.
func Save(path string, l *ledger.Ledger) error {
	data, err := l.EncodeIndent()
	if err != nil {
		return fmt.Errorf("failed to encode ledger: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write records file: %w", err)
	}
	return nil
}

// Exists reports whether a records file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
