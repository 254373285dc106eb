package represent

import (
	"fmt"
)

// Parse traverses node in schema order and writes the recovered values onto
// a fresh host produced by factory. A nil factory yields a map[string]any
// host. Only declared accessors are ever written; keys absent from the
// document leave the corresponding properties untouched (unless a coercion
// default is configured).
//
// Parse is not transactional: a mid-parse failure leaves the host partially
// populated. Parse into a fresh object and discard it on error.
func Parse(node *Node, schema *Schema, factory func() any, opts ...Options) (any, error) {
	if schema == nil {
		return nil, &SchemaError{Code: CodeUnresolvedSchema}
	}
	if factory == nil {
		factory = func() any { return map[string]any{} }
	}
	target := factory()
	p := parser{opt: pickOptions(opts)}
	if schema.Wrapped() {
		inner, ok := node.Get(schema.wrapKeyFor(target), false)
		if !ok {
			// A document without the root key carries none of the schema's
			// properties; the target stays untouched.
			return target, nil
		}
		node = inner
	}
	if err := p.parseInto(node, schema, target, "", 0); err != nil {
		return nil, err
	}
	return target, nil
}

type parser struct {
	opt Options
}

func (p parser) parseInto(node *Node, schema *Schema, host any, path string, depth int) error {
	if depth > p.opt.maxDepth() {
		return &SchemaError{Path: path, Code: CodeDepthExceeded}
	}
	if node == nil || node.Kind != KindMapping {
		return &SchemaError{Path: path, Code: CodeShapeMismatch}
	}
	props := schema.props
	for i := range props {
		prop := &props[i]
		if !p.opt.admits(prop.Name) {
			continue
		}
		ppath := joinPath(path, prop.Name)
		b := newBinding(prop, host, ppath)
		ok, err := b.ConditionHolds()
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		child, found := node.Get(prop.key(), prop.Attribute)
		if !found {
			if prop.Coerce != nil && prop.Coerce.Default != nil {
				dv, err := p.coerce(prop, prop.Coerce.Default, ppath)
				if err != nil {
					return err
				}
				if err := b.Set(dv); err != nil {
					return err
				}
			}
			continue
		}
		value, err := p.parseProperty(prop, child, ppath, depth)
		if err != nil {
			return err
		}
		if err := b.Set(value); err != nil {
			return err
		}
	}
	return nil
}

func (p parser) parseProperty(prop *Property, node *Node, path string, depth int) (any, error) {
	switch prop.Cardinality {
	case CardinalityCollection:
		return p.parseCollection(prop, node, path, depth)
	case CardinalityHash:
		return p.parseHash(prop, node, path, depth)
	default:
		v, err := p.parseValue(prop, node, path, depth)
		if err != nil {
			return nil, err
		}
		return p.coerce(prop, v, path)
	}
}

func (p parser) parseCollection(prop *Property, node *Node, path string, depth int) (any, error) {
	if node.IsNull() {
		return nil, nil
	}
	if prop.WrapTag != "" {
		// Strip the container level the renderer added around the repeated
		// children.
		inner, ok := node.Get(prop.DocumentKey, false)
		if !ok {
			return []any{}, nil
		}
		node = inner
	}
	items := node.Items
	if node.Kind != KindSequence {
		// Formats without native sequences (XML) deliver a lone element as a
		// single node; treat it as a one-element sequence.
		items = []*Node{node}
	}
	out := make([]any, 0, len(items))
	for i, item := range items {
		v, err := p.parseValue(prop, item, fmt.Sprintf("%s/%d", path, i), depth)
		if err != nil {
			return nil, err
		}
		if v, err = p.coerce(prop, v, fmt.Sprintf("%s/%d", path, i)); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (p parser) parseHash(prop *Property, node *Node, path string, depth int) (any, error) {
	if node.IsNull() {
		return nil, nil
	}
	if node.Kind != KindMapping {
		return nil, &SchemaError{Path: path, Code: CodeShapeMismatch}
	}
	out := make(map[string]any, len(node.Entries))
	for _, e := range node.Entries {
		v, err := p.parseValue(prop, e.Node, joinPath(path, e.Key), depth)
		if err != nil {
			return nil, err
		}
		if v, err = p.coerce(prop, v, joinPath(path, e.Key)); err != nil {
			return nil, err
		}
		out[e.Key] = v
	}
	return out, nil
}

// parseValue recovers one value from node: schema-governed mappings become
// freshly constructed nested instances, everything else passes through as
// raw data.
func (p parser) parseValue(prop *Property, node *Node, path string, depth int) (any, error) {
	if node.IsNull() {
		return nil, nil
	}
	if node.Kind == KindScalar {
		return node.Value, nil
	}
	if prop.Nested == nil {
		return nodeToRaw(node), nil
	}
	if node.Kind != KindMapping {
		return nil, &SchemaError{Path: path, Code: CodeShapeMismatch}
	}
	// Construct the target instance first, then resolve the schema against
	// it: dynamic resolution may depend on the instance itself.
	instance, err := newNestedInstance(prop, path)
	if err != nil {
		return nil, err
	}
	nested, err := resolveNested(prop, instance, path)
	if err != nil {
		return nil, err
	}
	if nested == nil {
		return nil, &SchemaError{Path: path, Code: CodeUnresolvedSchema}
	}
	if nested.Wrapped() {
		if inner, ok := node.Get(nested.wrapKeyFor(instance), false); ok {
			node = inner
		}
	}
	if err := p.parseInto(node, nested, instance, path, depth+1); err != nil {
		return nil, err
	}
	return instance, nil
}

func (p parser) coerce(prop *Property, v any, path string) (any, error) {
	if v == nil || prop.Coerce == nil || prop.Coerce.Coercer == nil {
		return v, nil
	}
	out, err := prop.Coerce.Coercer.Coerce(v, prop.Coerce.Target)
	if err != nil {
		return nil, &TypeMismatchError{Path: path, Raw: v, Target: prop.Coerce.Target, Cause: err}
	}
	return out, nil
}

// nodeToRaw deep-converts a tree into plain Go data (scalars, []any,
// map[string]any) for properties with no governing schema.
func nodeToRaw(node *Node) any {
	switch node.Kind {
	case KindSequence:
		out := make([]any, len(node.Items))
		for i, it := range node.Items {
			out[i] = nodeToRaw(it)
		}
		return out
	case KindMapping:
		out := make(map[string]any, len(node.Entries))
		for _, e := range node.Entries {
			out[e.Key] = nodeToRaw(e.Node)
		}
		return out
	default:
		return node.Value
	}
}
