// SPDX-License-Identifier: MIT
package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that no record exists under the given key.
	ErrNotFound = errors.New("store: record not found")

	// ErrExists indicates that Insert was called with a key already in use.
	ErrExists = errors.New("store: record already exists")

	// ErrInvalidKey indicates a non-positive record key.
	ErrInvalidKey = errors.New("store: record key must be positive")

	// ErrEmptyField indicates that a required field is blank.
	ErrEmptyField = errors.New("store: field is empty")

	// ErrBadField indicates that a field could not be parsed into the requested type.
	ErrBadField = errors.New("store: field cannot be parsed")

	// ErrUnknownField indicates a field name outside the record schema.
	ErrUnknownField = errors.New("store: unknown field")
)

// storeErrorf prefixes err with the operation tag.
func storeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
