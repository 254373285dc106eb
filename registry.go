package represent

import (
	"reflect"
	"strings"
	"sync"
	"unicode"
)

// The type registry associates a schema with a Go type, the explicit
// counterpart of declaring a representer inside a class. Registration
// normally happens in init/package-level vars; lookups are lock-cheap reads.
var (
	registryMu sync.RWMutex
	registry   = map[reflect.Type]*Schema{}
)

// Register associates schema with prototype's type (pointers are followed).
// A later Register for the same type replaces the earlier schema.
func Register(prototype any, schema *Schema) {
	t := baseType(reflect.TypeOf(prototype))
	if t == nil || schema == nil {
		return
	}
	registryMu.Lock()
	registry[t] = schema
	registryMu.Unlock()
}

// SchemaFor returns the registered schema for v's type, if any.
func SchemaFor(v any) (*Schema, bool) {
	t := baseType(reflect.TypeOf(v))
	if t == nil {
		return nil, false
	}
	registryMu.RLock()
	s, ok := registry[t]
	registryMu.RUnlock()
	return s, ok
}

func baseType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// defaultWrapKey derives the root key for a literal wrap from the host's
// type name, snake_cased: *AlbumCover -> "album_cover".
func defaultWrapKey(host any) string {
	t := baseType(reflect.TypeOf(host))
	if t == nil || t.Name() == "" {
		return "document"
	}
	return snakeCase(t.Name())
}

func snakeCase(name string) string {
	rs := []rune(name)
	var b strings.Builder
	for i, r := range rs {
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}
		// Break before a capital that starts a new word; keep acronym runs
		// together (AlbumID -> album_id).
		if i > 0 && (unicode.IsLower(rs[i-1]) || (i+1 < len(rs) && unicode.IsLower(rs[i+1]))) {
			b.WriteByte('_')
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
