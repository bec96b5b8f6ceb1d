package models

import (
	"fmt"

	"github.com/google/uuid"
)

// PK is a persisted entity's signed integer primary key.
type PK = int64

// EntityIdentifier names an entity within a store: a model tag, an
// optional persisted primary key, and a process-local UUID minted once at
// construction. Equality:
//
//   - equal UUIDs always imply equal identifiers;
//   - otherwise, equal iff both have an applied PK and (model, pk) match;
//   - otherwise unequal.
//
// This lets a caller-minted identifier (no PK yet) and a later
// server-assigned PK refer to the same logical entity across the UUID
// path, while two independently loaded identifiers for the same persisted
// row still compare equal through the PK path.
type EntityIdentifier struct {
	model Model
	pk    *PK
	uuid  uuid.UUID
}

// Model is the string tag grouping entities of the same logical kind.
type Model = string

// NewIdentifier mints a fresh identifier with a new UUID and no PK.
func NewIdentifier(model Model) EntityIdentifier {
	return EntityIdentifier{model: names.intern(model), uuid: uuid.New()}
}

// NewPersistedIdentifier mints a fresh identifier with a new UUID and the
// given PK already applied.
func NewPersistedIdentifier(model Model, pk PK) EntityIdentifier {
	pkCopy := pk
	return EntityIdentifier{model: names.intern(model), pk: &pkCopy, uuid: uuid.New()}
}

// Model returns the model tag.
func (id EntityIdentifier) Model() Model {
	return id.model
}

// UUID returns the process-local UUID.
func (id EntityIdentifier) UUID() uuid.UUID {
	return id.uuid
}

// HasAppliedPK reports whether a PK has been set on this identifier.
func (id EntityIdentifier) HasAppliedPK() bool {
	return id.pk != nil
}

// AppliedPK returns the applied PK, or UnpersistedEntityError if none has
// been set.
func (id EntityIdentifier) AppliedPK() (PK, error) {
	if id.pk == nil {
		return 0, &UnpersistedEntityError{Identifier: id}
	}
	return *id.pk, nil
}

// SetAppliedPK installs pk on the identifier. It does not by itself update
// any IdentifierIndex the identifier may already be registered in; see
// IdentifierIndex.Reindex.
func (id *EntityIdentifier) SetAppliedPK(pk PK) {
	pkCopy := pk
	id.pk = &pkCopy
}

// Equal implements the identifier equality rule described above.
func (id EntityIdentifier) Equal(other EntityIdentifier) bool {
	if id.uuid == other.uuid {
		return true
	}
	return id.HasAppliedPK() && other.HasAppliedPK() &&
		id.model == other.model && *id.pk == *other.pk
}

// String implements fmt.Stringer for error messages and logging.
func (id EntityIdentifier) String() string {
	if id.pk != nil {
		return fmt.Sprintf("%s(uuid=%s, pk=%d)", id.model, id.uuid, *id.pk)
	}
	return fmt.Sprintf("%s(uuid=%s)", id.model, id.uuid)
}
