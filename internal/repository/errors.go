package repository

import "errors"

// ErrNotFound indicates an entity was not located.
var ErrNotFound = errors.New("repository: not found")

// ErrEmailTaken indicates a user with the same email already exists.
var ErrEmailTaken = errors.New("repository: email already registered")
