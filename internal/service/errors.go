package service

import "errors"

// ErrInvalidQuery indicates unsupported list filters.
var ErrInvalidQuery = errors.New("invalid query")
