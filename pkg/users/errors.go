package users

import "errors"

var (
	ErrForbidden           = errors.New("not allowed to administer users")
	ErrSelfRoleChange      = errors.New("you cannot change your own role")
	ErrSelfRemoval         = errors.New("you cannot remove your own account")
	ErrCredentialsRequired = errors.New("email and password are required")
	ErrNotFound            = errors.New("user not found")
)
