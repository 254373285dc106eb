package dsl

// Package dsl declares representer schemas with a fluent builder:
//
//	album := dsl.Object().
//		Property("title", dsl.From("name")).
//		Collection("songs", dsl.Class(func() any { return &Song{} }), dsl.Wrap("songs")).
//		Hash(
//			"ratings",
//			dsl.Values(ratingSchema, func() any { return &Rating{} }),
//		).
//		MustBuild()
//
// Options form a closed set (Class, Extend, From, If, IfExpr, RenderNil,
// Wrap, Attribute, Style, Items, Values, Type, TypeWith, Default); anything
// a schema cannot express simply has no constructor here. Declaring the same
// property twice fails Build with a SchemaError.
