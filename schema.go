package represent

// Cardinality classifies the container shape of a declared property.
type Cardinality int

const (
	CardinalityScalar     Cardinality = iota // One value.
	CardinalityCollection                    // Ordered list of values.
	CardinalityHash                          // Keyed map of values.
)

func (c Cardinality) String() string {
	switch c {
	case CardinalityScalar:
		return "scalar"
	case CardinalityCollection:
		return "collection"
	case CardinalityHash:
		return "hash"
	}
	return "unknown"
}

// Condition gates a property's inclusion in both directions. It receives the
// host instance explicitly: the object being rendered, or the target object
// being populated during parse.
type Condition func(host any) (bool, error)

// NestedRef describes where a nested property finds its governing schema.
//
// Static resolution: Schema is used directly when set; otherwise the type
// registry is consulted for the live value's type (see Register). Dynamic
// resolution: Resolve is invoked per value at traversal time, so the schema
// can depend on the value itself rather than its static type.
//
// Factory constructs a fresh nested instance during parse. A nested property
// without a Factory can be rendered but not parsed.
type NestedRef struct {
	Schema  *Schema
	Factory func() any
	Resolve func(value any) (*Schema, error)
}

// CoerceSpec attaches a conversion contract to a scalar property. The parser
// invokes Coercer immediately before writing the value. When the document
// lacks the key and Default is non-nil, Default is coerced and written
// instead; this is the only value a parse invents.
type CoerceSpec struct {
	Coercer Coercer
	Target  Target
	Default any
}

// Property is one declared property's full configuration. Instances are
// value types owned by their Schema and immutable after Build.
type Property struct {
	Name        string      // Accessor name on the host object.
	DocumentKey string      // Key/tag in the document; defaults to Name.
	Cardinality Cardinality

	Nested    *NestedRef
	Condition Condition
	Coerce    *CoerceSpec

	RenderNil bool   // Emit explicit null for nil scalars.
	Attribute bool   // Attribute placement (XML).
	WrapTag   string // Container tag around a collection's repeated children.
	Style     Style  // Layout hint for sequence/mapping values.
}

// key returns the mapping key this property occupies in the document:
// WrapTag when set (the container), DocumentKey otherwise.
func (p *Property) key() string {
	if p.WrapTag != "" {
		return p.WrapTag
	}
	return p.DocumentKey
}

// Schema is the immutable, ordered description of a type's document-facing
// shape. Build once, then share freely: concurrent Render/Parse calls on
// different objects need no synchronization.
type Schema struct {
	props []Property
	index map[string]int

	wrapName    string
	wrapDefault bool // Derive the wrap key from the host's type name.
}

// SchemaConfig carries schema-level options for NewSchema.
type SchemaConfig struct {
	// Wrap nests the whole schema's output under this key and unwraps it on
	// parse. Leave empty for no wrapping.
	Wrap string
	// WrapDefault wraps under a key derived from the host object's type name
	// (snake_cased). Ignored when Wrap is set.
	WrapDefault bool
}

// NewSchema builds an immutable schema over props in declaration order.
// A duplicate property name fails with SchemaError (fail-fast, before any
// object is ever processed).
func NewSchema(cfg SchemaConfig, props ...Property) (*Schema, error) {
	s := &Schema{
		props:       make([]Property, len(props)),
		index:       make(map[string]int, len(props)),
		wrapName:    cfg.Wrap,
		wrapDefault: cfg.WrapDefault && cfg.Wrap == "",
	}
	copy(s.props, props)
	for i := range s.props {
		p := &s.props[i]
		if p.Name == "" {
			return nil, &SchemaError{Code: CodeInvalidOption}
		}
		if p.DocumentKey == "" {
			p.DocumentKey = p.Name
		}
		if _, dup := s.index[p.Name]; dup {
			return nil, &SchemaError{Path: "/" + p.Name, Code: CodeDuplicateProperty}
		}
		s.index[p.Name] = i
	}
	return s, nil
}

// MustSchema is NewSchema that panics on error, for package-level schema
// definitions.
func MustSchema(cfg SchemaConfig, props ...Property) *Schema {
	s, err := NewSchema(cfg, props...)
	if err != nil {
		panic(err)
	}
	return s
}

// Properties returns the declared properties in rendering order. The slice
// is a copy; the schema stays immutable.
func (s *Schema) Properties() []Property {
	out := make([]Property, len(s.props))
	copy(out, s.props)
	return out
}

// Property looks up a declared property by accessor name.
func (s *Schema) Property(name string) (Property, bool) {
	i, ok := s.index[name]
	if !ok {
		return Property{}, false
	}
	return s.props[i], true
}

// Len returns the number of declared properties.
func (s *Schema) Len() int { return len(s.props) }

// Wrapped reports whether the schema nests its document under a root key.
func (s *Schema) Wrapped() bool { return s.wrapName != "" || s.wrapDefault }

// wrapKeyFor resolves the root key for a concrete host instance.
func (s *Schema) wrapKeyFor(host any) string {
	if s.wrapName != "" {
		return s.wrapName
	}
	return defaultWrapKey(host)
}

// Target names a coercion target type, e.g. "int" or "date". The tags
// themselves are defined by Coercer implementations (see package coerce).
type Target string

// Coercer is the conversion contract invoked by the parser for properties
// carrying a CoerceSpec. It converts a raw scalar into the target type or
// fails; the core never implements conversions itself.
type Coercer interface {
	Coerce(raw any, target Target) (any, error)
}

// FormatAdapter converts between document trees and bytes: one implementation
// per concrete format, outside the traversal core. Deserialize fails with
// MalformedDocumentError on syntactically invalid input.
type FormatAdapter interface {
	Serialize(n *Node) ([]byte, error)
	Deserialize(data []byte) (*Node, error)
}
