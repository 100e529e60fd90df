package models

import "errors"

var ErrUnknownRole = errors.New("unknown role")
