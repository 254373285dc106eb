package represent

// Kind enumerates the shapes a document tree value can take.
type Kind int

const (
	KindScalar   Kind = iota // Leaf value: string, number, bool, or nil.
	KindSequence             // Ordered list of child nodes.
	KindMapping              // Ordered list of keyed child nodes.
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	}
	return "unknown"
}

// Style hints at sequence/mapping layout for formats that distinguish
// inline (flow) from block rendering. JSON ignores it; YAML honors it.
type Style int

const (
	StyleAny   Style = iota // No preference; the format picks its default.
	StyleBlock              // One element per line.
	StyleFlow               // Inline, e.g. [a, b, c].
)

// Node is the format-agnostic document tree exchanged between the traversal
// core and format drivers. Exactly one of Value, Items, Entries is
// meaningful, selected by Kind. Nodes are allocated fresh by every Render or
// Deserialize call and never mutated afterwards; treat them as read-only.
type Node struct {
	Kind Kind

	Value   any     // KindScalar payload; nil represents an explicit null.
	Items   []*Node // KindSequence children, in order.
	Entries []Entry // KindMapping children, in document order.

	// Style is a layout hint consumed by format drivers.
	Style Style
}

// Entry is one keyed child of a mapping node. Attribute marks the entry for
// attribute placement in formats that have attributes (XML); other formats
// treat attribute entries like ordinary keys.
type Entry struct {
	Key       string
	Node      *Node
	Attribute bool
}

// Scalar returns a leaf node holding v. Scalar(nil) is an explicit null.
func Scalar(v any) *Node { return &Node{Kind: KindScalar, Value: v} }

// Sequence returns an ordered sequence node over items.
func Sequence(items ...*Node) *Node {
	return &Node{Kind: KindSequence, Items: items}
}

// Mapping returns an ordered mapping node over entries.
func Mapping(entries ...Entry) *Node {
	return &Node{Kind: KindMapping, Entries: entries}
}

// IsNull reports whether n is a scalar holding nil. A nil *Node is also null.
func (n *Node) IsNull() bool {
	return n == nil || (n.Kind == KindScalar && n.Value == nil)
}

// Get returns the first entry of a mapping node matching key and attribute
// placement. It returns false for absent keys and for non-mapping nodes.
func (n *Node) Get(key string, attribute bool) (*Node, bool) {
	if n == nil || n.Kind != KindMapping {
		return nil, false
	}
	for _, e := range n.Entries {
		if e.Key == key && e.Attribute == attribute {
			return e.Node, true
		}
	}
	return nil, false
}

// Len returns the child count: items for sequences, entries for mappings,
// and 0 for scalars.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch n.Kind {
	case KindSequence:
		return len(n.Items)
	case KindMapping:
		return len(n.Entries)
	}
	return 0
}
