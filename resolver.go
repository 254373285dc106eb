package represent

// resolveNested determines the schema governing a nested value, per the
// property's NestedRef:
//
//   - an explicit Schema wins (fixed schema bound to a declared type);
//   - a Resolve function is consulted per live value (dynamic resolution,
//     the "extend" path) without altering the value's type;
//   - otherwise the type registry is consulted for the value's type.
//
// Returning (nil, nil) means the value is a raw scalar: no schema governs it
// and cardinality alone drives traversal. Ambiguity cannot arise because the
// order above is total; a dynamic resolver that returns nil without error is
// an unresolved schema and fails.
func resolveNested(prop *Property, value any, path string) (*Schema, error) {
	ref := prop.Nested
	if ref == nil {
		if s, ok := SchemaFor(value); ok {
			return s, nil
		}
		return nil, nil
	}
	if ref.Resolve != nil {
		s, err := ref.Resolve(value)
		if err != nil {
			return nil, &SchemaError{Path: path, Code: CodeUnresolvedSchema, Cause: err}
		}
		if s == nil {
			return nil, &SchemaError{Path: path, Code: CodeUnresolvedSchema}
		}
		return s, nil
	}
	if ref.Schema != nil {
		return ref.Schema, nil
	}
	if s, ok := SchemaFor(value); ok {
		return s, nil
	}
	// A declared nested property whose schema is only knowable from the live
	// value, and the value carries none: traversal-time SchemaError.
	return nil, &SchemaError{Path: path, Code: CodeUnresolvedSchema}
}

// newNestedInstance constructs a fresh host for parsing a nested value.
func newNestedInstance(prop *Property, path string) (any, error) {
	if prop.Nested == nil || prop.Nested.Factory == nil {
		return nil, &SchemaError{Path: path, Code: CodeNoFactory}
	}
	return prop.Nested.Factory(), nil
}
