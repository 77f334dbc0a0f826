package projects

import "errors"

// ErrNotFound indicates that no project matches the requested ID.
var ErrNotFound = errors.New("project not found")

// ErrNameTaken indicates that a project with the requested name already exists.
var ErrNameTaken = errors.New("project with this name already exists")

// ErrPersonNotFound indicates that the referenced person in charge does not exist.
var ErrPersonNotFound = errors.New("related user (person_id) not found")

// ErrDuplicate is the translation of a raw unique constraint violation,
// raised by batch inserts that skip the service-level pre-checks.
var ErrDuplicate = errors.New("uniqueness violation")

// ErrForeignKey is the translation of a raw foreign key violation.
var ErrForeignKey = errors.New("foreign key violation")
