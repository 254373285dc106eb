package dsl_test

import (
	"errors"
	"testing"

	represent "github.com/represent-go/represent"
	"github.com/represent-go/represent/dsl"
)

func TestBuild_DuplicatePropertyFailsFast(t *testing.T) {
	_, err := dsl.Object().
		Property("title").
		Collection("title").
		Build()
	var se *represent.SchemaError
	if !errors.As(err, &se) || se.Code != represent.CodeDuplicateProperty {
		t.Fatalf("want duplicate_property SchemaError, got %v", err)
	}
}

func TestBuild_PreservesDeclarationOrder(t *testing.T) {
	s := dsl.Object().
		Property("b").
		Property("a").
		Property("c").
		MustBuild()
	props := s.Properties()
	if props[0].Name != "b" || props[1].Name != "a" || props[2].Name != "c" {
		t.Fatalf("order = %v, %v, %v", props[0].Name, props[1].Name, props[2].Name)
	}
}

func TestBuild_WrapOnScalarRejected(t *testing.T) {
	_, err := dsl.Object().
		Property("title", dsl.Wrap("titles")).
		Build()
	var se *represent.SchemaError
	if !errors.As(err, &se) || se.Code != represent.CodeInvalidOption {
		t.Fatalf("want invalid_option SchemaError, got %v", err)
	}
}

func TestBuild_ItemsRequiresCollection(t *testing.T) {
	elem := dsl.Object().Property("x").MustBuild()
	_, err := dsl.Object().
		Hash("h", dsl.Items(elem, func() any { return map[string]any{} })).
		Build()
	if err == nil {
		t.Fatalf("items on a hash must be rejected")
	}
}

func TestBuild_FromRenamesDocumentKeyOnly(t *testing.T) {
	s := dsl.Object().Property("forename", dsl.From("first_name")).MustBuild()
	p, ok := s.Property("forename")
	if !ok {
		t.Fatalf("property lookup is by accessor name")
	}
	if p.DocumentKey != "first_name" {
		t.Fatalf("documentKey = %q", p.DocumentKey)
	}
}

func TestBuild_SchemaIsImmutable(t *testing.T) {
	s := dsl.Object().Property("title").MustBuild()
	props := s.Properties()
	props[0].Name = "mutated"
	if p, _ := s.Property("title"); p.Name != "title" {
		t.Fatalf("Properties() must return a copy")
	}
}

func TestIfExpr_GatesOnInstance(t *testing.T) {
	type Song struct {
		Title string
		Plays int
	}
	s := dsl.Object().
		Property("title", dsl.IfExpr(`plays > 100`)).
		MustBuild()

	n, err := represent.Render(&Song{Title: "Scrooge", Plays: 101}, s)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, ok := n.Get("title", false); !ok {
		t.Fatalf("expression true: title must be present")
	}

	n, err = represent.Render(&Song{Title: "Scrooge", Plays: 3}, s)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if _, ok := n.Get("title", false); ok {
		t.Fatalf("expression false: title must be absent")
	}
}

func TestIfExpr_CompileErrorFailsBuild(t *testing.T) {
	_, err := dsl.Object().
		Property("title", dsl.IfExpr(`plays >`)).
		Build()
	var se *represent.SchemaError
	if !errors.As(err, &se) || se.Code != represent.CodeInvalidOption {
		t.Fatalf("want invalid_option SchemaError, got %v", err)
	}
}
