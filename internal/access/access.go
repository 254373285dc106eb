// Package access provides reflection-backed property access on host objects.
// A host is a struct, a pointer to struct, or a string-keyed map; accessors
// are matched by `rep` tag first, then by snake_cased field name.
package access

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"
)

var (
	// ErrNoAccessor means the host has no field or key for the accessor name.
	ErrNoAccessor = errors.New("access: no accessor")
	// ErrUnassignable means the accessor exists but cannot hold the value.
	ErrUnassignable = errors.New("access: unassignable value")
)

// TagName is the struct tag consulted for accessor names.
const TagName = "rep"

// Get reads the named accessor from host. Reading an absent key from a map
// host yields nil without error; a struct host without a matching field is
// ErrNoAccessor.
func Get(host any, name string) (any, error) {
	v, err := hostValue(host)
	if err != nil {
		return nil, err
	}
	if v.Kind() == reflect.Map {
		mv := v.MapIndex(reflect.ValueOf(name))
		if !mv.IsValid() {
			return nil, nil
		}
		return mv.Interface(), nil
	}
	fv, ok := fieldByAccessor(v, name)
	if !ok {
		return nil, fmt.Errorf("%w: %q on %s", ErrNoAccessor, name, v.Type())
	}
	return fv.Interface(), nil
}

// Set writes value to the named accessor on host. Struct hosts must be
// passed as pointers to be addressable.
func Set(host any, name string, value any) error {
	v, err := hostValue(host)
	if err != nil {
		return err
	}
	if v.Kind() == reflect.Map {
		if v.IsNil() {
			return fmt.Errorf("%w: nil map host", ErrUnassignable)
		}
		ev := reflect.New(v.Type().Elem()).Elem()
		if err := assign(ev, value); err != nil {
			return err
		}
		v.SetMapIndex(reflect.ValueOf(name), ev)
		return nil
	}
	fv, ok := fieldByAccessor(v, name)
	if !ok {
		return fmt.Errorf("%w: %q on %s", ErrNoAccessor, name, v.Type())
	}
	if !fv.CanSet() {
		return fmt.Errorf("%w: %q on %s (pass a pointer)", ErrUnassignable, name, v.Type())
	}
	return assign(fv, value)
}

// Has reports whether host exposes the named accessor. Map hosts expose
// every name.
func Has(host any, name string) bool {
	v, err := hostValue(host)
	if err != nil {
		return false
	}
	if v.Kind() == reflect.Map {
		return true
	}
	_, ok := fieldByAccessor(v, name)
	return ok
}

// Env projects host into a map keyed by accessor names, for condition
// expressions evaluated against the instance. Map hosts are returned as-is.
func Env(host any) map[string]any {
	v, err := hostValue(host)
	if err != nil {
		return map[string]any{}
	}
	if v.Kind() == reflect.Map {
		out := make(map[string]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = iter.Value().Interface()
		}
		return out
	}
	t := v.Type()
	out := make(map[string]any, t.NumField())
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() {
			continue
		}
		name := snakeCase(f.Name)
		if tag, ok := f.Tag.Lookup(TagName); ok {
			name, _, _ = strings.Cut(tag, ",")
		}
		out[name] = v.FieldByIndex(f.Index).Interface()
	}
	return out
}

// IsNil reports whether v is nil or a nil pointer/interface/slice/map.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

func hostValue(host any) (reflect.Value, error) {
	if host == nil {
		return reflect.Value{}, fmt.Errorf("%w: nil host", ErrNoAccessor)
	}
	v := reflect.ValueOf(host)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("%w: nil host pointer", ErrNoAccessor)
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Struct:
		return v, nil
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return reflect.Value{}, fmt.Errorf("%w: map host needs string keys", ErrNoAccessor)
		}
		return v, nil
	}
	return reflect.Value{}, fmt.Errorf("%w: unsupported host %T", ErrNoAccessor, host)
}

func fieldByAccessor(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() {
			continue
		}
		if tag, ok := f.Tag.Lookup(TagName); ok {
			if tagName, _, _ := strings.Cut(tag, ","); tagName == name {
				return v.FieldByIndex(f.Index), true
			}
			continue
		}
		if snakeCase(f.Name) == name || strings.EqualFold(f.Name, name) {
			return v.FieldByIndex(f.Index), true
		}
	}
	return reflect.Value{}, false
}

// assign writes value into dst, converting between the generic shapes a
// parse produces (json.Number scalars, []any, map[string]any) and the host's
// declared types.
func assign(dst reflect.Value, value any) error {
	if value == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}
	src := reflect.ValueOf(value)
	if src.Type().AssignableTo(dst.Type()) {
		dst.Set(src)
		return nil
	}
	if dst.Kind() == reflect.Pointer {
		elem := reflect.New(dst.Type().Elem())
		if err := assign(elem.Elem(), value); err != nil {
			return err
		}
		dst.Set(elem)
		return nil
	}
	if src.Kind() == reflect.Pointer {
		if src.IsNil() {
			dst.Set(reflect.Zero(dst.Type()))
			return nil
		}
		return assign(dst, src.Elem().Interface())
	}
	if num, ok := value.(json.Number); ok {
		return assignNumber(dst, num)
	}
	switch dst.Kind() {
	case reflect.Slice:
		if src.Kind() != reflect.Slice && src.Kind() != reflect.Array {
			break
		}
		out := reflect.MakeSlice(dst.Type(), src.Len(), src.Len())
		for i := 0; i < src.Len(); i++ {
			if err := assign(out.Index(i), src.Index(i).Interface()); err != nil {
				return err
			}
		}
		dst.Set(out)
		return nil
	case reflect.Map:
		if src.Kind() != reflect.Map || dst.Type().Key().Kind() != reflect.String {
			break
		}
		out := reflect.MakeMapWithSize(dst.Type(), src.Len())
		iter := src.MapRange()
		for iter.Next() {
			k := iter.Key()
			if k.Kind() != reflect.String {
				return fmt.Errorf("%w: map key %s", ErrUnassignable, k.Type())
			}
			ev := reflect.New(dst.Type().Elem()).Elem()
			if err := assign(ev, iter.Value().Interface()); err != nil {
				return err
			}
			out.SetMapIndex(k.Convert(dst.Type().Key()), ev)
		}
		dst.Set(out)
		return nil
	}
	if convertible(src.Type(), dst.Type()) {
		dst.Set(src.Convert(dst.Type()))
		return nil
	}
	return fmt.Errorf("%w: %s into %s", ErrUnassignable, src.Type(), dst.Type())
}

func assignNumber(dst reflect.Value, num json.Number) error {
	switch dst.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := num.Int64()
		if err != nil {
			return fmt.Errorf("%w: %q into %s", ErrUnassignable, num, dst.Type())
		}
		dst.SetInt(i)
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, err := num.Int64()
		if err != nil || i < 0 {
			return fmt.Errorf("%w: %q into %s", ErrUnassignable, num, dst.Type())
		}
		dst.SetUint(uint64(i))
		return nil
	case reflect.Float32, reflect.Float64:
		f, err := num.Float64()
		if err != nil {
			return fmt.Errorf("%w: %q into %s", ErrUnassignable, num, dst.Type())
		}
		dst.SetFloat(f)
		return nil
	case reflect.String:
		dst.SetString(num.String())
		return nil
	case reflect.Interface:
		if dst.NumMethod() == 0 {
			dst.Set(reflect.ValueOf(num))
			return nil
		}
	}
	return fmt.Errorf("%w: %q into %s", ErrUnassignable, num, dst.Type())
}

// convertible restricts reflect convertibility to conversions that preserve
// meaning: numeric<->numeric and same-kind. A bare Type.ConvertibleTo would
// happily turn int 65 into string "A".
func convertible(src, dst reflect.Type) bool {
	if !src.ConvertibleTo(dst) {
		return false
	}
	if numericKind(src.Kind()) && numericKind(dst.Kind()) {
		return true
	}
	return src.Kind() == dst.Kind()
}

func numericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func snakeCase(name string) string {
	rs := []rune(name)
	var b strings.Builder
	for i, r := range rs {
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}
		if i > 0 && (unicode.IsLower(rs[i-1]) || (i+1 < len(rs) && unicode.IsLower(rs[i+1]))) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
