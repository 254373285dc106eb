package coerce_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/represent-go/represent/coerce"
)

func TestCoerce_Int(t *testing.T) {
	std := coerce.Standard()
	for _, raw := range []any{"42", json.Number("42"), 42, int64(42), float64(42)} {
		got, err := std.Coerce(raw, coerce.Int)
		if err != nil {
			t.Fatalf("coerce %T: %v", raw, err)
		}
		if got != int64(42) {
			t.Fatalf("coerce %T = %v", raw, got)
		}
	}
	if _, err := std.Coerce("42.5", coerce.Int); err == nil {
		t.Fatalf("fractional string must fail")
	}
	if _, err := std.Coerce(42.5, coerce.Int); err == nil {
		t.Fatalf("fractional float must fail")
	}
	if _, err := std.Coerce(true, coerce.Int); err == nil {
		t.Fatalf("bool must fail")
	}
}

func TestCoerce_FloatAndString(t *testing.T) {
	std := coerce.Standard()
	got, err := std.Coerce(json.Number("2.5"), coerce.Float)
	if err != nil || got != 2.5 {
		t.Fatalf("float = %v, %v", got, err)
	}
	got, err = std.Coerce(json.Number("7"), coerce.String)
	if err != nil || got != "7" {
		t.Fatalf("string = %v, %v", got, err)
	}
}

func TestCoerce_Bool(t *testing.T) {
	std := coerce.Standard()
	got, err := std.Coerce("true", coerce.Bool)
	if err != nil || got != true {
		t.Fatalf("bool = %v, %v", got, err)
	}
	if _, err := std.Coerce("maybe", coerce.Bool); err == nil {
		t.Fatalf("non-bool string must fail")
	}
}

func TestCoerce_Date(t *testing.T) {
	std := coerce.Standard()
	got, err := std.Coerce("2012-05-12", coerce.Date)
	if err != nil {
		t.Fatalf("date: %v", err)
	}
	d := got.(time.Time)
	if d.Year() != 2012 || d.Month() != time.May || d.Day() != 12 {
		t.Fatalf("date = %v", d)
	}
	if _, err := std.Coerce("12/05/2012", coerce.Date); err == nil {
		t.Fatalf("non-RFC3339 date must fail")
	}
}

func TestCoerce_DateTime(t *testing.T) {
	std := coerce.Standard()
	got, err := std.Coerce("2012-05-12T14:30:00Z", coerce.DateTime)
	if err != nil {
		t.Fatalf("datetime: %v", err)
	}
	dt := got.(time.Time)
	if dt.Hour() != 14 || dt.Minute() != 30 {
		t.Fatalf("datetime = %v", dt)
	}
}

func TestCoerce_Duration(t *testing.T) {
	std := coerce.Standard()
	got, err := std.Coerce("90s", coerce.Duration)
	if err != nil || got != 90*time.Second {
		t.Fatalf("duration = %v, %v", got, err)
	}
}

func TestCoerce_UnknownTarget(t *testing.T) {
	if _, err := coerce.Standard().Coerce("x", "no_such_target"); err == nil {
		t.Fatalf("unknown target must fail")
	}
}
