package models

// ModelStorage holds an insertion-ordered list of entities per model name.
type ModelStorage struct {
	byModel map[Model][]*Entity
}

// NewModelStorage returns empty storage.
func NewModelStorage() *ModelStorage {
	return &ModelStorage{byModel: make(map[Model][]*Entity)}
}

// Add appends entity to its model's list, creating the list on first
// insertion, and returns the stored handle (the same pointer passed in;
// Go entities are already shared-ownership references).
func (s *ModelStorage) Add(entity *Entity) *Entity {
	model := entity.Identifier().Model()
	s.byModel[model] = append(s.byModel[model], entity)
	return entity
}

// Filter returns every entity in model for which expr.Match returns true,
// in insertion order. A model with no entities yields an empty slice, not
// an error. The scan is linear; this core implements no attribute index.
func (s *ModelStorage) Filter(model Model, expr Matcher) ([]*Entity, error) {
	entities, ok := s.byModel[model]
	if !ok {
		return []*Entity{}, nil
	}
	result := make([]*Entity, 0, len(entities))
	for _, entity := range entities {
		matched, err := expr.Match(entity)
		if err != nil {
			return nil, err
		}
		if matched {
			result = append(result, entity)
		}
	}
	return result, nil
}
