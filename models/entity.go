package models

import "fmt"

// AttributeKind distinguishes the attribute shapes a descriptor can
// request at entity construction time.
type AttributeKind int

const (
	// Physical attributes carry their own temporal value history.
	Physical AttributeKind = iota
	// ManyToMany attributes are relational and not implemented by this
	// core: constructing one panics until the relational layer lands.
	ManyToMany
)

func (k AttributeKind) String() string {
	if k == ManyToMany {
		return "ManyToMany"
	}
	return "Physical"
}

// AttributeDescriptor describes one attribute to seed when an Entity is
// constructed: its kind, its name, and the value it should carry at the
// initial epoch.
type AttributeDescriptor struct {
	Kind    AttributeKind
	Name    string
	Initial Value
}

// Entity is an identifier plus a fixed name -> attribute mapping,
// established at construction and never grown or shrunk afterward.
type Entity struct {
	identifier EntityIdentifier
	attributes map[string]EntityAttribute
}

// NewEntity builds an Entity bound to the given cursors from a list of
// attribute descriptors. Each Physical descriptor gets its own
// TemporalAttribute seeded with SetValue(descriptor.Initial,
// initialCursor.Get()); constructing a ManyToMany descriptor is a fatal
// programming error until the relational layer lands.
func NewEntity(identifier EntityIdentifier, descriptors []AttributeDescriptor, currentCursor, initialCursor *EpochCursor) *Entity {
	attrs := make(map[string]EntityAttribute, len(descriptors))
	for _, d := range descriptors {
		switch d.Kind {
		case ManyToMany:
			panic(fmt.Sprintf("models: ManyToMany attribute %q is not implemented", d.Name))
		case Physical:
			attr := NewTemporalAttribute(currentCursor, initialCursor)
			attr.SetValue(d.Initial, initialCursor.Get())
			attrs[names.intern(d.Name)] = attr
		default:
			panic(fmt.Sprintf("models: unknown attribute kind %v for %q", d.Kind, d.Name))
		}
	}
	return &Entity{identifier: identifier, attributes: attrs}
}

// Get returns the named attribute, or AttributeNotFoundError if the entity
// has none by that name.
func (e *Entity) Get(name string) (EntityAttribute, error) {
	attr, ok := e.attributes[name]
	if !ok {
		return nil, &AttributeNotFoundError{Name: name}
	}
	return attr, nil
}

// Identifier returns the entity's identifier.
func (e *Entity) Identifier() EntityIdentifier {
	return e.identifier
}

// SetAppliedPK installs pk on the entity's own identifier, in place. It
// does not touch any IdentifierIndex the entity may already be registered
// in; a persistence layer must follow up with IdentifierIndex.Reindex to
// make the PK lookup observe the change.
func (e *Entity) SetAppliedPK(pk PK) {
	e.identifier.SetAppliedPK(pk)
}

// Equal reports whether two entities share the same identifier; entity
// equality delegates entirely to identifier equality.
func (e *Entity) Equal(other *Entity) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.identifier.Equal(other.identifier)
}
