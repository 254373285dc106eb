// Package coerce supplies the standard conversion contract invoked by the
// parser for properties declared with a coercion target. The traversal core
// never converts values itself; it only calls represent.Coercer.
package coerce

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-openapi/strfmt"

	represent "github.com/represent-go/represent"
)

// Built-in coercion targets.
const (
	String   = represent.Target("string")
	Int      = represent.Target("int")
	Float    = represent.Target("float")
	Bool     = represent.Target("bool")
	Date     = represent.Target("date")     // RFC3339 full-date, e.g. 2012-05-12.
	DateTime = represent.Target("datetime") // RFC3339 date-time.
	Duration = represent.Target("duration") // time.ParseDuration syntax.
)

type standard struct{}

var std represent.Coercer = standard{}

// Standard returns the built-in Coercer covering the targets above.
func Standard() represent.Coercer { return std }

func (standard) Coerce(raw any, target represent.Target) (any, error) {
	switch target {
	case String:
		return toString(raw)
	case Int:
		return toInt(raw)
	case Float:
		return toFloat(raw)
	case Bool:
		return toBool(raw)
	case Date:
		return toDate(raw)
	case DateTime:
		return toDateTime(raw)
	case Duration:
		return toDuration(raw)
	}
	return nil, fmt.Errorf("coerce: unknown target %q", target)
}

func toString(raw any) (any, error) {
	switch v := raw.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	case fmt.Stringer:
		return v.String(), nil
	}
	return nil, fmt.Errorf("coerce: %T is not a string", raw)
}

func toInt(raw any) (any, error) {
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return nil, fmt.Errorf("coerce: %q is not an integer", v)
		}
		return i, nil
	case float64:
		i := int64(v)
		if float64(i) != v {
			return nil, fmt.Errorf("coerce: %v has a fractional part", v)
		}
		return i, nil
	case string:
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("coerce: %q is not an integer", v)
		}
		return i, nil
	}
	return nil, fmt.Errorf("coerce: %T is not an integer", raw)
}

func toFloat(raw any) (any, error) {
	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, fmt.Errorf("coerce: %q is not a number", v)
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("coerce: %q is not a number", v)
		}
		return f, nil
	}
	return nil, fmt.Errorf("coerce: %T is not a number", raw)
}

func toBool(raw any) (any, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("coerce: %q is not a bool", v)
		}
		return b, nil
	}
	return nil, fmt.Errorf("coerce: %T is not a bool", raw)
}

func toDate(raw any) (any, error) {
	switch v := raw.(type) {
	case time.Time:
		return v, nil
	case string:
		var d strfmt.Date
		if err := d.UnmarshalText([]byte(v)); err != nil {
			return nil, fmt.Errorf("coerce: %q is not a date: %w", v, err)
		}
		return time.Time(d), nil
	}
	return nil, fmt.Errorf("coerce: %T is not a date", raw)
}

func toDateTime(raw any) (any, error) {
	switch v := raw.(type) {
	case time.Time:
		return v, nil
	case string:
		dt, err := strfmt.ParseDateTime(v)
		if err != nil {
			return nil, fmt.Errorf("coerce: %q is not a date-time: %w", v, err)
		}
		return time.Time(dt), nil
	}
	return nil, fmt.Errorf("coerce: %T is not a date-time", raw)
}

func toDuration(raw any) (any, error) {
	switch v := raw.(type) {
	case time.Duration:
		return v, nil
	case string:
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("coerce: %q is not a duration: %w", v, err)
		}
		return d, nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return nil, fmt.Errorf("coerce: %q is not a duration", v)
		}
		return time.Duration(n), nil
	}
	return nil, fmt.Errorf("coerce: %T is not a duration", raw)
}
