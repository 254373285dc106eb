package represent_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	represent "github.com/represent-go/represent"
	"github.com/represent-go/represent/coerce"
	"github.com/represent-go/represent/dsl"
	jsonfmt "github.com/represent-go/represent/format/json"
	xmlfmt "github.com/represent-go/represent/format/xml"
)

func TestEndToEnd_JSON(t *testing.T) {
	s := boySchema()
	boy := &Boy{Forename: "Peter", Surename: "Pan", Origin: &Location{Title: "Neverland"}}

	tree, err := represent.Render(boy, s)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := jsonfmt.New().Serialize(tree)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	want := `{"forename":"Peter","surename":"Pan","origin":{"title":"Neverland"}}`
	if string(data) != want {
		t.Fatalf("json = %s", data)
	}

	tree, err = jsonfmt.New().Deserialize([]byte(`{"forename":"Captain","surename":"Hook"}`))
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	out, err := represent.Parse(tree, s, newBoy)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got := out.(*Boy); got.Forename != "Captain" || got.Surename != "Hook" {
		t.Fatalf("parsed = %+v", got)
	}
}

func TestEndToEnd_XMLWithAttributesAndWrap(t *testing.T) {
	type Song struct {
		ID    string
		Title string
		Plays int
	}
	s := dsl.Object().
		Property("id", dsl.Attribute()).
		Property("title").
		Property("plays", dsl.Type(coerce.Int)).
		Wrap("song").
		MustBuild()
	in := &Song{ID: "s1", Title: "Scrooge", Plays: 101}

	tree, err := represent.Render(in, s)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	data, err := xmlfmt.New().Serialize(tree)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	want := `<song id="s1"><title>Scrooge</title><plays>101</plays></song>`
	if string(data) != want {
		t.Fatalf("xml = %s", data)
	}

	// XML scalars come back as strings; the coercion target restores the int.
	tree, err = xmlfmt.New().Deserialize(data)
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	out, err := represent.Parse(tree, s, func() any { return &Song{} })
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEndToEnd_JSONNumbersReachIntFields(t *testing.T) {
	s := songSchema
	tree, err := jsonfmt.New().Deserialize([]byte(`{"title":"Scrooge","plays":101}`))
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	out, err := represent.Parse(tree, s, newSong)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if song := out.(*Song); song.Plays != 101 {
		t.Fatalf("plays = %d", song.Plays)
	}
}
