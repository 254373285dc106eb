package represent

// Package represent is a bidirectional mapping engine: one declarative
// schema drives both rendering an object into a format-agnostic document
// tree and parsing such a tree back into object mutations.
//
// - Schemas are built once via dsl.Object() and are immutable afterwards;
//   share them freely across goroutines.
// - Render(object, schema) produces a *Node; a FormatAdapter (format/json,
//   format/yaml, format/xml) turns it into bytes, and back.
// - Parse(node, schema, factory) populates a fresh host object; coercion of
//   raw scalars is delegated to the Coercer contract (package coerce).
//
// Design policy:
// - Keep only public APIs in the root package; reflection machinery lives
//   under internal/access.
// - Place the builder DSL under dsl/, coercers under coerce/, and format
//   drivers under format/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	song := dsl.Object().
//		Property("title").
//		Property("duration", dsl.Type(coerce.Int)).
//		MustBuild()
//
//	tree, err := represent.Render(&s, song)
//	data, err := jsonfmt.New().Serialize(tree)
//
//	tree, err = jsonfmt.New().Deserialize(data)
//	out, err := represent.Parse(tree, song, func() any { return &Song{} })
//
// Dynamic ("extend") nested schemas resolve per live value; if two traversals
// target the same instance concurrently, synchronize at the call site — the
// core takes no instance-level locks.
