package workspace

import "errors"

var (
	ErrUnauthenticated = errors.New("nobody is signed in")
	ErrForbidden       = errors.New("you do not have access to this view")
)
