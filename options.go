package represent

// DefaultMaxDepth bounds traversal nesting when Options.MaxDepth is zero.
// The recursion guard turns a self-referential schema into a SchemaError
// instead of a stack overflow.
const DefaultMaxDepth = 512

// Options scope a single Render or Parse call. They restrict traversal
// without touching the shared schema; per-property conditions still apply on
// top (a property is processed only when it passes both).
type Options struct {
	// Include, when non-empty, limits traversal to the named properties.
	Include []string
	// Exclude drops the named properties from traversal.
	Exclude []string
	// MaxDepth overrides DefaultMaxDepth for this call.
	MaxDepth int
}

// admits reports whether the call-time filters let the named property
// through.
func (o Options) admits(name string) bool {
	for _, x := range o.Exclude {
		if x == name {
			return false
		}
	}
	if len(o.Include) == 0 {
		return true
	}
	for _, in := range o.Include {
		if in == name {
			return true
		}
	}
	return false
}

func (o Options) maxDepth() int {
	if o.MaxDepth > 0 {
		return o.MaxDepth
	}
	return DefaultMaxDepth
}

// pickOptions collapses a variadic Options tail; the last one wins.
func pickOptions(opts []Options) Options {
	if len(opts) == 0 {
		return Options{}
	}
	return opts[len(opts)-1]
}
