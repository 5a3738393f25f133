package task

import (
	"errors"
	"strings"
)

// ErrEmptyTitle is returned when a create request carries a title that is
// empty after trimming surrounding whitespace.
var ErrEmptyTitle = errors.New("Title cannot be empty")

type Task struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Patch is a sparse update: nil means "leave unchanged", a non-nil pointer
// overwrites the field even when it points at a zero value.
type Patch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// Apply merges the patch into t. Titles are taken as-is: the trim rule only
// applies at creation time.
func (p Patch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
}

// NormalizeTitle trims surrounding whitespace and rejects titles that are
// empty afterwards. The trimmed value is the one that gets stored.
func NormalizeTitle(title string) (string, error) {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "", ErrEmptyTitle
	}
	return trimmed, nil
}
