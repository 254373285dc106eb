package dsl

import (
	"fmt"

	represent "github.com/represent-go/represent"
	"github.com/represent-go/represent/coerce"
)

// Option configures one property declaration. The set of options is closed:
// only the constructors in this package produce them.
type Option func(*represent.Property) error

// Class binds the property to a nested type: factory constructs fresh
// instances during parse, and the governing schema comes from the type
// registry unless an explicit schema is supplied.
func Class(factory func() any, schema ...*represent.Schema) Option {
	return func(p *represent.Property) error {
		if factory == nil {
			return fmt.Errorf("class: nil factory")
		}
		ref := ensureNested(p)
		ref.Factory = factory
		if len(schema) > 0 {
			ref.Schema = schema[len(schema)-1]
		}
		return nil
	}
}

// Extend resolves the nested schema dynamically, per live value, at traversal
// time. On render the resolver sees the existing nested object; on parse a
// fresh instance from factory is constructed first, then resolved, then
// populated. The value's declared type is never altered.
func Extend(resolve func(value any) (*represent.Schema, error), factory func() any) Option {
	return func(p *represent.Property) error {
		if resolve == nil {
			return fmt.Errorf("extend: nil resolver")
		}
		ref := ensureNested(p)
		ref.Resolve = resolve
		ref.Factory = factory
		return nil
	}
}

// From renames the document key; the accessor name is unaffected.
func From(key string) Option {
	return func(p *represent.Property) error {
		if key == "" {
			return fmt.Errorf("from: empty key")
		}
		p.DocumentKey = key
		return nil
	}
}

// If gates the property in both directions on a predicate over the host
// instance.
func If(cond represent.Condition) Option {
	return func(p *represent.Property) error {
		if cond == nil {
			return fmt.Errorf("if: nil condition")
		}
		p.Condition = cond
		return nil
	}
}

// RenderNil forces an explicit null for nil scalar values instead of
// omitting the key.
func RenderNil() Option {
	return func(p *represent.Property) error {
		p.RenderNil = true
		return nil
	}
}

// Wrap places a collection's repeated children under one container tag.
func Wrap(tag string) Option {
	return func(p *represent.Property) error {
		if p.Cardinality != represent.CardinalityCollection {
			return fmt.Errorf("wrap: only collections take a container tag")
		}
		p.WrapTag = tag
		return nil
	}
}

// Attribute binds the value as a tag attribute rather than a child node, for
// formats that have attributes.
func Attribute() Option {
	return func(p *represent.Property) error {
		p.Attribute = true
		return nil
	}
}

// Style records a layout hint (flow vs block) for format drivers.
func Style(s represent.Style) Option {
	return func(p *represent.Property) error {
		p.Style = s
		return nil
	}
}

// Items supplies the element schema for a collection of schema-governed
// values; factory constructs elements during parse.
func Items(schema *represent.Schema, factory func() any) Option {
	return func(p *represent.Property) error {
		if p.Cardinality != represent.CardinalityCollection {
			return fmt.Errorf("items: property is %s, want collection", p.Cardinality)
		}
		ref := ensureNested(p)
		ref.Schema = schema
		ref.Factory = factory
		return nil
	}
}

// Values supplies the element schema for a hash's values; factory constructs
// values during parse.
func Values(schema *represent.Schema, factory func() any) Option {
	return func(p *represent.Property) error {
		if p.Cardinality != represent.CardinalityHash {
			return fmt.Errorf("values: property is %s, want hash", p.Cardinality)
		}
		ref := ensureNested(p)
		ref.Schema = schema
		ref.Factory = factory
		return nil
	}
}

// Type coerces parsed scalars to the target type using the standard coercer.
func Type(target represent.Target) Option {
	return TypeWith(coerce.Standard(), target)
}

// TypeWith coerces parsed scalars through a custom conversion contract.
func TypeWith(c represent.Coercer, target represent.Target) Option {
	return func(p *represent.Property) error {
		if c == nil {
			return fmt.Errorf("type: nil coercer")
		}
		spec := ensureCoerce(p)
		spec.Coercer = c
		spec.Target = target
		return nil
	}
}

// Default supplies a raw value coerced and written when the document lacks
// the key. This is the only case where a parse writes a value the document
// did not contain.
func Default(raw any) Option {
	return func(p *represent.Property) error {
		ensureCoerce(p).Default = raw
		return nil
	}
}

func ensureNested(p *represent.Property) *represent.NestedRef {
	if p.Nested == nil {
		p.Nested = &represent.NestedRef{}
	}
	return p.Nested
}

func ensureCoerce(p *represent.Property) *represent.CoerceSpec {
	if p.Coerce == nil {
		p.Coerce = &represent.CoerceSpec{}
	}
	return p.Coerce
}
