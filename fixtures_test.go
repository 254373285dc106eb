package represent_test

import (
	represent "github.com/represent-go/represent"
	"github.com/represent-go/represent/dsl"
)

// Shared fixtures: a small band-domain model exercised across the render,
// parse, and round-trip tests.

type Location struct {
	Title string
}

type Song struct {
	Title string
	Plays int
}

type Boy struct {
	Forename string
	Surename string
	Origin   *Location
}

type Album struct {
	Name    string
	Songs   []Song
	Ratings map[string]int
}

var locationSchema = dsl.Object().
	Property("title").
	MustBuild()

var songSchema = dsl.Object().
	Property("title").
	Property("plays").
	MustBuild()

func newLocation() any { return &Location{} }
func newSong() any     { return &Song{} }

func boySchema() *represent.Schema {
	return dsl.Object().
		Property("forename").
		Property("surename").
		Property("origin", dsl.Class(newLocation, locationSchema)).
		MustBuild()
}

func albumSchema() *represent.Schema {
	return dsl.Object().
		Property("name").
		Collection("songs", dsl.Items(songSchema, newSong)).
		Hash("ratings").
		MustBuild()
}

// key returns the scalar at a mapping key or fails the path lookup silently;
// tests assert on the bool.
func get(n *represent.Node, key string) (*represent.Node, bool) {
	return n.Get(key, false)
}
