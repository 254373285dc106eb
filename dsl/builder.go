package dsl

import (
	represent "github.com/represent-go/represent"
)

// Builder accumulates property declarations in order. Building is one-shot
// and side-effect free; the resulting schema is immutable.
type Builder struct {
	cfg   represent.SchemaConfig
	props []represent.Property
	seen  map[string]struct{}
	err   error
}

// Object starts a new schema declaration.
func Object() *Builder {
	return &Builder{seen: map[string]struct{}{}}
}

// Property declares a scalar property.
func (b *Builder) Property(name string, opts ...Option) *Builder {
	return b.declare(name, represent.CardinalityScalar, opts)
}

// Collection declares an ordered-collection property.
func (b *Builder) Collection(name string, opts ...Option) *Builder {
	return b.declare(name, represent.CardinalityCollection, opts)
}

// Hash declares a keyed-mapping property.
func (b *Builder) Hash(name string, opts ...Option) *Builder {
	return b.declare(name, represent.CardinalityHash, opts)
}

// Wrap nests the whole schema's document under key on render and unwraps it
// on parse.
func (b *Builder) Wrap(key string) *Builder {
	b.cfg.Wrap = key
	return b
}

// WrapDefault wraps under a key derived from the host's type name
// (snake_cased), the literal-true form of wrap.
func (b *Builder) WrapDefault() *Builder {
	b.cfg.WrapDefault = true
	return b
}

// Build finalizes the schema. The first declaration error wins.
func (b *Builder) Build() (*represent.Schema, error) {
	if b.err != nil {
		return nil, b.err
	}
	return represent.NewSchema(b.cfg, b.props...)
}

// MustBuild is Build that panics on error, for package-level schemas.
func (b *Builder) MustBuild() *represent.Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

func (b *Builder) declare(name string, card represent.Cardinality, opts []Option) *Builder {
	if b.err != nil {
		return b
	}
	if _, dup := b.seen[name]; dup {
		b.err = &represent.SchemaError{Path: "/" + name, Code: represent.CodeDuplicateProperty}
		return b
	}
	b.seen[name] = struct{}{}
	p := represent.Property{Name: name, DocumentKey: name, Cardinality: card}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&p); err != nil {
			b.err = &represent.SchemaError{Path: "/" + name, Code: represent.CodeInvalidOption, Cause: err}
			return b
		}
	}
	b.props = append(b.props, p)
	return b
}
