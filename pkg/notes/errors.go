package notes

import "errors"

var (
	ErrForbidden = errors.New("not allowed to edit notes")
	ErrNotFound  = errors.New("note not found")
)
