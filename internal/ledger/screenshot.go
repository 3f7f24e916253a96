package ledger

import (
	"fmt"
	"os"
	"path/filepath"
)

// ScreenshotChecker resolves screenshot paths relative to the directory of
// the records file and reports entries whose screenshot does not exist.
// This is an opt-in collaborator: the validation engine never touches the
// filesystem, so a missing screenshot does not affect logical validity.
type ScreenshotChecker struct {
	BaseDir string
	// Stat is swappable for tests; nil means os.Stat.
	Stat func(string) (os.FileInfo, error)
}

// Check walks every record in the ledger and returns one error per
// screenshot path that does not resolve to an existing file.
func (c *ScreenshotChecker) Check(l *Ledger) []*ValidationError {
	stat := c.Stat
	if stat == nil {
		stat = os.Stat
	}

	var errs []*ValidationError
	for _, g := range l.Games {
		for i, r := range g.Records {
			shot := r.Entry.Base().Screenshot
			if shot == "" {
				continue
			}
			resolved := filepath.Join(c.BaseDir, filepath.FromSlash(shot))
			if info, err := stat(resolved); err != nil || info.IsDir() {
				errs = append(errs, &ValidationError{
					Code:    CodeScreenshotMissing,
					Path:    fmt.Sprintf("%s.records[%d].screenshot", g.Name, i),
					Game:    g.Name,
					Message: fmt.Sprintf("screenshot not found: %s", shot),
					Hint:    fmt.Sprintf("Expected a file at %s", resolved),
				})
			}
		}
	}
	return errs
}
