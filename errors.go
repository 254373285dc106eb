package represent

import (
	"fmt"

	"github.com/represent-go/represent/i18n"
)

// Error codes (exported consts for IDE completion and stable matching).
const (
	CodeDuplicateProperty = "duplicate_property"
	CodeInvalidOption     = "invalid_option"
	CodeUnresolvedSchema  = "unresolved_schema"
	CodeNoFactory         = "no_factory"
	CodeDepthExceeded     = "depth_exceeded"
	CodeConditionFailed   = "condition_failed"
	CodeShapeMismatch     = "shape_mismatch"
	CodeTypeMismatch      = "type_mismatch"
	CodeNoAccessor        = "no_accessor"
	CodeUnassignable      = "unassignable"
	CodeMalformed         = "malformed_document"
)

// SchemaError reports a defect in a schema itself: a duplicate property name
// at declare time, an unresolvable nested schema at traversal time, or the
// recursion guard tripping on a self-referential schema.
type SchemaError struct {
	Path  string // Slash path to the offending property ("" at declare time).
	Code  string
	Cause error
}

func (e *SchemaError) Error() string {
	msg := i18n.T(e.Code, nil)
	if e.Path == "" {
		return fmt.Sprintf("represent: %s (%s)", msg, e.Code)
	}
	return fmt.Sprintf("represent: %s at %s (%s)", msg, e.Path, e.Code)
}

func (e *SchemaError) Unwrap() error { return e.Cause }

// TypeMismatchError reports a coercion or assignment that could not be
// performed. Raw carries the offending input value, Target the requested type.
type TypeMismatchError struct {
	Path   string
	Raw    any
	Target Target
	Cause  error
}

func (e *TypeMismatchError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("represent: %s at %s: cannot hold %v",
			i18n.T(CodeTypeMismatch, nil), e.Path, e.Raw)
	}
	return fmt.Sprintf("represent: %s at %s: cannot convert %v to %s",
		i18n.T(CodeTypeMismatch, nil), e.Path, e.Raw, e.Target)
}

func (e *TypeMismatchError) Unwrap() error { return e.Cause }

// BindingError reports a host object that lacks a declared accessor, or one
// whose accessor cannot hold the value being written.
type BindingError struct {
	Path     string
	Accessor string
	Code     string // CodeNoAccessor or CodeUnassignable.
	Cause    error
}

func (e *BindingError) Error() string {
	return fmt.Sprintf("represent: %s %q at %s (%s)",
		i18n.T(e.Code, nil), e.Accessor, e.Path, e.Code)
}

func (e *BindingError) Unwrap() error { return e.Cause }

// MalformedDocumentError wraps a syntax failure from a format driver. The
// core propagates it unchanged; there is no recovery attempt.
type MalformedDocumentError struct {
	Format string // Driver name, e.g. "json".
	Cause  error
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("represent: %s (%s): %v", i18n.T(CodeMalformed, nil), e.Format, e.Cause)
}

func (e *MalformedDocumentError) Unwrap() error { return e.Cause }

// joinPath extends a slash path by one segment.
func joinPath(base, seg string) string {
	if base == "" || base == "/" {
		return "/" + seg
	}
	return base + "/" + seg
}
