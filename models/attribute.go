package models

// EntityAttribute is the capability every attribute kind implements. Kept
// as a small interface rather than flattened into TemporalAttribute
// directly, so a future ManyToMany attribute kind can coexist with
// Physical attributes behind the same Entity.Get call.
type EntityAttribute interface {
	GetInitial() Value
	GetValue() Value
	SetValue(value Value, epoch Epoch)
}

// attributeValue is one entry in a TemporalAttribute's history.
type attributeValue struct {
	epoch Epoch
	value Value
}

// TemporalAttribute holds the ordered history of values recorded for one
// attribute of one entity, and resolves point-in-time reads against two
// shared epoch cursors.
type TemporalAttribute struct {
	currentCursor *EpochCursor
	initialCursor *EpochCursor
	history       []attributeValue
}

var _ EntityAttribute = (*TemporalAttribute)(nil)

// NewTemporalAttribute returns an attribute bound to the given cursors
// with an empty history. It must not be queried before at least one value
// has been inserted.
func NewTemporalAttribute(currentCursor, initialCursor *EpochCursor) *TemporalAttribute {
	return &TemporalAttribute{
		currentCursor: currentCursor,
		initialCursor: initialCursor,
	}
}

// SetValue inserts a new history entry, preserving non-decreasing epoch
// order. Ties insert the newest entry after any existing entries at the
// same epoch, so the latest call for a given epoch wins on read.
func (a *TemporalAttribute) SetValue(value Value, epoch Epoch) {
	entry := attributeValue{epoch: epoch, value: value}
	for i, existing := range a.history {
		if existing.epoch > epoch {
			a.history = append(a.history, attributeValue{})
			copy(a.history[i+1:], a.history[i:])
			a.history[i] = entry
			return
		}
	}
	a.history = append(a.history, entry)
}

// GetAt walks the history from newest to oldest and returns the value of
// the first entry whose epoch is <= target. If every entry is newer than
// target, it clamps to the earliest entry instead of failing: an entity
// may be inspected at an epoch before any value was explicitly recorded
// for it, and the earliest known value is the closest approximation of
// "what we first saw". Querying a TemporalAttribute with no history at
// all is a programming error and panics.
func (a *TemporalAttribute) GetAt(target Epoch) Value {
	if len(a.history) == 0 {
		panic("models: GetAt called on a TemporalAttribute with empty history")
	}
	for i := len(a.history) - 1; i >= 0; i-- {
		if a.history[i].epoch <= target {
			return a.history[i].value
		}
	}
	return a.history[0].value
}

// GetValue returns GetAt(currentCursor.Get()).
func (a *TemporalAttribute) GetValue() Value {
	return a.GetAt(a.currentCursor.Get())
}

// GetInitial returns GetAt(initialCursor.Get()).
func (a *TemporalAttribute) GetInitial() Value {
	return a.GetAt(a.initialCursor.Get())
}
