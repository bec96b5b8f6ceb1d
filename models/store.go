package models

// EntityStore owns the two shared epoch cursors, the per-model storage,
// and the identity index, and is the single entry point an embedding host
// uses to instantiate, retrieve, and filter entities.
type EntityStore struct {
	currentCursor *EpochCursor
	initialCursor *EpochCursor
	storage       *ModelStorage
	index         *IdentifierIndex
}

// NewEntityStore returns a store with both cursors at epoch 0, empty
// storage and an empty index.
func NewEntityStore() *EntityStore {
	return &EntityStore{
		currentCursor: NewEpochCursor(),
		initialCursor: NewEpochCursor(),
		storage:       NewModelStorage(),
		index:         NewIdentifierIndex(),
	}
}

// CurrentCursor exposes the observation-epoch cursor so external code can
// advance it.
func (s *EntityStore) CurrentCursor() *EpochCursor {
	return s.currentCursor
}

// InitialCursor exposes the load-epoch cursor so external code can advance
// it.
func (s *EntityStore) InitialCursor() *EpochCursor {
	return s.initialCursor
}

// Instantiate builds an Entity from identifier and descriptors, bound to
// the store's two cursors, then delegates to Add for deduplication.
func (s *EntityStore) Instantiate(identifier EntityIdentifier, descriptors []AttributeDescriptor) *Entity {
	entity := NewEntity(identifier, descriptors, s.currentCursor, s.initialCursor)
	return s.Add(entity)
}

// Add installs entity into storage and the index, unless an entity with
// the same identifier is already registered, in which case the existing
// handle is returned and entity is discarded. The freshly built entity's
// own attribute history (seeded at construction) is never installed in
// that case: the candidate is only written to storage once the index
// lookup confirms it is new.
func (s *EntityStore) Add(entity *Entity) *Entity {
	if existing, err := s.index.Get(entity.Identifier()); err == nil {
		return existing
	}
	stored := s.storage.Add(entity)
	s.index.Add(stored)
	return stored
}

// Get resolves identifier via the index.
func (s *EntityStore) Get(identifier EntityIdentifier) (*Entity, error) {
	return s.index.Get(identifier)
}

// Filter delegates to storage.
func (s *EntityStore) Filter(model Model, expr Matcher) ([]*Entity, error) {
	return s.storage.Filter(model, expr)
}

// Reindex re-registers entity's PK in the identity index after a
// persistence layer has called entity.SetAppliedPK; see
// IdentifierIndex.Reindex.
func (s *EntityStore) Reindex(entity *Entity) {
	s.index.Reindex(entity)
}
