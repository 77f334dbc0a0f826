package tasks

import "errors"

// ErrNotFound indicates that no stored result matches the requested task ID.
var ErrNotFound = errors.New("task result not found")
