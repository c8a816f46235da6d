package readme

import (
	"errors"
	"fmt"
	"os"
)

// ErrDocumentNotFound reports a missing target file.
var ErrDocumentNotFound = errors.New("document not found")

// Updater persists the managed region of a single README file.
type Updater struct {
	path string
}

// NewUpdater creates an updater for the file at path.
func NewUpdater(path string) *Updater {
	return &Updater{path: path}
}

// Update splices block into the file, writing it back only when the content
// changed. createSection selects the policy for a file without markers:
// false leaves the file untouched and returns ErrMarkersNotFound, true
// inserts a new section instead.
func (u *Updater) Update(block string, createSection bool) (bool, error) {
	data, err := os.ReadFile(u.path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, fmt.Errorf("%w: %s", ErrDocumentNotFound, u.path)
		}
		return false, fmt.Errorf("failed to read %s: %w", u.path, err)
	}
	content := string(data)

	var updated string
	var changed bool
	if createSection {
		updated, changed = SpliceOrInsert(content, block)
	} else {
		updated, changed, err = Splice(content, block)
		if err != nil {
			return false, err
		}
	}

	if !changed {
		return false, nil
	}

	if err := os.WriteFile(u.path, []byte(updated), 0644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", u.path, err)
	}
	return true, nil
}
