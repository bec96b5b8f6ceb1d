// Package filter implements the composable predicate tree
// EntityStore.Filter scans a model's entities against. Predicates are
// types implementing Expression, so new variants add new types rather
// than new cases in existing Match implementations.
package filter

import "github.com/ornoone/lightning-entitystore/models"

// Expression is the capability every predicate node implements: evaluate
// against an entity at its current epoch, and report whether another
// expression is logically subsumed by this one.
type Expression interface {
	models.Matcher

	// Contains reports whether other is a subset of this expression.
	// Reflexive (x.Contains(x) is always true) for every variant.
	Contains(other Expression) bool
}

// Exact matches entities whose named attribute equals value at the
// current epoch. It is the only leaf this core ships; conjunction,
// disjunction, range and negation can be added as new types implementing
// Expression without touching Exact.
type Exact struct {
	Attribute string
	Value     models.Value
}

var _ Expression = (*Exact)(nil)

// NewExact returns an Exact expression over attribute == value.
func NewExact(attribute string, value models.Value) *Exact {
	return &Exact{Attribute: attribute, Value: value}
}

// Match evaluates the entity's attribute at the current epoch against
// Value. It propagates AttributeNotFoundError if the entity has no such
// attribute.
func (e *Exact) Match(entity *models.Entity) (bool, error) {
	attr, err := entity.Get(e.Attribute)
	if err != nil {
		return false, err
	}
	return attr.GetValue().Equal(e.Value), nil
}

// Contains reports true iff other is also an Exact expression over the
// same attribute and value.
func (e *Exact) Contains(other Expression) bool {
	otherExact, ok := other.(*Exact)
	if !ok {
		return false
	}
	return e.Attribute == otherExact.Attribute && e.Value.Equal(otherExact.Value)
}
