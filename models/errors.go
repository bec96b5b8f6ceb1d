package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for the recoverable error taxonomy. Callers can
// test with errors.Is against these, or errors.As against the structured
// types below for the offending name/identifier.
var (
	// ErrAttributeNotFound is wrapped by AttributeNotFoundError.
	ErrAttributeNotFound = errors.New("attribute not found")

	// ErrEntityNotFound is wrapped by EntityNotFoundError.
	ErrEntityNotFound = errors.New("entity not found")

	// ErrUnpersistedEntity is wrapped by UnpersistedEntityError.
	ErrUnpersistedEntity = errors.New("entity has no applied primary key")
)

// AttributeNotFoundError reports that an entity has no attribute under
// the given name.
type AttributeNotFoundError struct {
	Name string
}

func (e *AttributeNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrAttributeNotFound, e.Name)
}

func (e *AttributeNotFoundError) Unwrap() error {
	return ErrAttributeNotFound
}

// EntityNotFoundError reports that no entity matched the given identifier
// in the store's index.
type EntityNotFoundError struct {
	Identifier EntityIdentifier
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrEntityNotFound, e.Identifier)
}

func (e *EntityNotFoundError) Unwrap() error {
	return ErrEntityNotFound
}

// UnpersistedEntityError reports that the caller asked for the applied
// primary key of an identifier that does not have one.
type UnpersistedEntityError struct {
	Identifier EntityIdentifier
}

func (e *UnpersistedEntityError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnpersistedEntity, e.Identifier)
}

func (e *UnpersistedEntityError) Unwrap() error {
	return ErrUnpersistedEntity
}
