package represent

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/represent-go/represent/internal/access"
)

// Render traverses host in schema order and produces a fresh document tree.
// The host object is only read, never mutated; the returned tree is owned by
// the caller. Nested objects render recursively through their resolved
// schemas (see NestedRef).
func Render(host any, schema *Schema, opts ...Options) (*Node, error) {
	if schema == nil {
		return nil, &SchemaError{Code: CodeUnresolvedSchema}
	}
	r := renderer{opt: pickOptions(opts)}
	n, err := r.renderSchema(host, schema, "", 0)
	if err != nil {
		return nil, err
	}
	if schema.Wrapped() {
		n = Mapping(Entry{Key: schema.wrapKeyFor(host), Node: n})
	}
	return n, nil
}

type renderer struct {
	opt Options
}

func (r renderer) renderSchema(host any, schema *Schema, path string, depth int) (*Node, error) {
	if depth > r.opt.maxDepth() {
		return nil, &SchemaError{Path: path, Code: CodeDepthExceeded}
	}
	entries := make([]Entry, 0, schema.Len())
	props := schema.props
	for i := range props {
		prop := &props[i]
		if !r.opt.admits(prop.Name) {
			continue
		}
		b := newBinding(prop, host, joinPath(path, prop.Name))
		ok, err := b.ConditionHolds()
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		value, err := b.Get()
		if err != nil {
			return nil, err
		}
		node, emit, err := r.renderProperty(prop, value, joinPath(path, prop.Name), depth)
		if err != nil {
			return nil, err
		}
		if !emit {
			continue
		}
		entries = append(entries, Entry{Key: prop.key(), Node: node, Attribute: prop.Attribute})
	}
	return Mapping(entries...), nil
}

func (r renderer) renderProperty(prop *Property, value any, path string, depth int) (*Node, bool, error) {
	switch prop.Cardinality {
	case CardinalityCollection:
		n, err := r.renderCollection(prop, value, path, depth)
		return n, n != nil, err
	case CardinalityHash:
		n, err := r.renderHash(prop, value, path, depth)
		return n, n != nil, err
	default:
		if access.IsNil(value) {
			if !prop.RenderNil {
				return nil, false, nil
			}
			return Scalar(nil), true, nil
		}
		n, err := r.renderValue(prop, value, path, depth)
		return n, true, err
	}
}

// renderValue renders one value: through its resolved schema when one
// governs it, as a bare scalar otherwise.
func (r renderer) renderValue(prop *Property, value any, path string, depth int) (*Node, error) {
	if access.IsNil(value) {
		return Scalar(nil), nil
	}
	nested, err := resolveNested(prop, value, path)
	if err != nil {
		return nil, err
	}
	if nested == nil {
		n := Scalar(value)
		n.Style = prop.Style
		return n, nil
	}
	n, err := r.renderSchema(value, nested, path, depth+1)
	if err != nil {
		return nil, err
	}
	if nested.Wrapped() {
		n = Mapping(Entry{Key: nested.wrapKeyFor(value), Node: n})
	}
	return n, nil
}

func (r renderer) renderCollection(prop *Property, value any, path string, depth int) (*Node, error) {
	if access.IsNil(value) {
		if prop.RenderNil {
			return Scalar(nil), nil
		}
		return nil, nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, &TypeMismatchError{Path: path, Raw: value, Target: "collection"}
	}
	items := make([]*Node, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		item, err := r.renderValue(prop, rv.Index(i).Interface(), fmt.Sprintf("%s/%d", path, i), depth)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	seq := Sequence(items...)
	seq.Style = prop.Style
	if prop.WrapTag == "" {
		return seq, nil
	}
	// The container occupies the property's slot in the parent (see
	// Property.key); the repeated children keep the document key.
	return Mapping(Entry{Key: prop.DocumentKey, Node: seq}), nil
}

func (r renderer) renderHash(prop *Property, value any, path string, depth int) (*Node, error) {
	if access.IsNil(value) {
		if prop.RenderNil {
			return Scalar(nil), nil
		}
		return nil, nil
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, &TypeMismatchError{Path: path, Raw: value, Target: "hash"}
	}
	keys := make([]string, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		keys = append(keys, iter.Key().String())
	}
	sort.Strings(keys) // deterministic output for unordered hosts
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		ev, err := r.renderValue(prop, rv.MapIndex(reflect.ValueOf(k).Convert(rv.Type().Key())).Interface(), joinPath(path, k), depth)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Key: k, Node: ev})
	}
	m := Mapping(entries...)
	m.Style = prop.Style
	return m, nil
}
