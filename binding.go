package represent

import (
	"errors"

	"github.com/represent-go/represent/internal/access"
)

// Binding pairs one Property with one host instance for the duration of a
// single traversal frame. Bindings are never retained across frames.
type Binding struct {
	prop *Property
	host any
	path string
}

func newBinding(prop *Property, host any, path string) Binding {
	return Binding{prop: prop, host: host, path: path}
}

// Get reads the property's value from the host.
func (b Binding) Get() (any, error) {
	v, err := access.Get(b.host, b.prop.Name)
	if err != nil {
		return nil, b.bindingErr(err)
	}
	return v, nil
}

// Set writes value to the property on the host. A value the accessor cannot
// hold is a TypeMismatchError; a missing accessor is a BindingError.
func (b Binding) Set(value any) error {
	err := access.Set(b.host, b.prop.Name, value)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, access.ErrUnassignable):
		return &TypeMismatchError{Path: b.path, Raw: value, Cause: err}
	default:
		return b.bindingErr(err)
	}
}

// ConditionHolds evaluates the property's condition against the host.
// Properties without a condition always hold.
func (b Binding) ConditionHolds() (bool, error) {
	if b.prop.Condition == nil {
		return true, nil
	}
	ok, err := b.prop.Condition(b.host)
	if err != nil {
		return false, &SchemaError{Path: b.path, Code: CodeConditionFailed, Cause: err}
	}
	return ok, nil
}

func (b Binding) bindingErr(err error) error {
	code := CodeNoAccessor
	if errors.Is(err, access.ErrUnassignable) {
		code = CodeUnassignable
	}
	return &BindingError{Path: b.path, Accessor: b.prop.Name, Code: code, Cause: err}
}
