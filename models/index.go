package models

import "github.com/google/uuid"

// IdentifierIndex provides the dual lookup the store relies on for
// deduplication: by process-local UUID, and by (model, PK) once a PK has
// been applied.
type IdentifierIndex struct {
	byUUID map[uuid.UUID]*Entity
	byPK   map[Model]map[PK]*Entity
}

// NewIdentifierIndex returns an empty index.
func NewIdentifierIndex() *IdentifierIndex {
	return &IdentifierIndex{
		byUUID: make(map[uuid.UUID]*Entity),
		byPK:   make(map[Model]map[PK]*Entity),
	}
}

// Get resolves identifier to its entity: UUID match first (so a
// caller-minted identifier with no PK still resolves across calls), then
// (model, PK) if the identifier has an applied PK. EntityNotFoundError
// otherwise.
func (idx *IdentifierIndex) Get(identifier EntityIdentifier) (*Entity, error) {
	if entity, ok := idx.byUUID[identifier.UUID()]; ok {
		return entity, nil
	}
	if identifier.HasAppliedPK() {
		if byModel, ok := idx.byPK[identifier.Model()]; ok {
			pk, _ := identifier.AppliedPK()
			if entity, ok := byModel[pk]; ok {
				return entity, nil
			}
		}
	}
	return nil, &EntityNotFoundError{Identifier: identifier}
}

// Add registers entity under its UUID unconditionally, and additionally
// under (model, PK) iff its identifier has a PK applied at the moment of
// the call. Late PK assignment via EntityIdentifier.SetAppliedPK does not
// retroactively register the PK slot; call Reindex after assigning a PK
// if the PK index needs to observe it.
func (idx *IdentifierIndex) Add(entity *Entity) {
	identifier := entity.Identifier()
	idx.byUUID[identifier.UUID()] = entity
	if identifier.HasAppliedPK() {
		pk, _ := identifier.AppliedPK()
		byModel, ok := idx.byPK[identifier.Model()]
		if !ok {
			byModel = make(map[PK]*Entity)
			idx.byPK[identifier.Model()] = byModel
		}
		byModel[pk] = entity
	}
}

// Reindex re-registers entity in the PK slot using its identifier's
// current applied PK. Intended for a persistence-layer-shaped caller to
// invoke after it calls EntityIdentifier.SetAppliedPK on an already-indexed
// entity's identifier; the core never calls this automatically.
func (idx *IdentifierIndex) Reindex(entity *Entity) {
	identifier := entity.Identifier()
	if !identifier.HasAppliedPK() {
		return
	}
	pk, _ := identifier.AppliedPK()
	byModel, ok := idx.byPK[identifier.Model()]
	if !ok {
		byModel = make(map[PK]*Entity)
		idx.byPK[identifier.Model()] = byModel
	}
	byModel[pk] = entity
}
