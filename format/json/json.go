// Package json is the JSON FormatAdapter, backed by goccy/go-json. Mapping
// entry order is preserved on serialize; numbers deserialize as json.Number
// so precision survives until coercion or assignment.
package json

import (
	"bytes"
	encjson "encoding/json"
	"fmt"
	"io"

	j "github.com/goccy/go-json"

	represent "github.com/represent-go/represent"
)

// Adapter converts document trees to and from JSON bytes. The zero value is
// ready to use.
type Adapter struct {
	// Indent, when non-empty, pretty-prints output with this unit.
	Indent string
}

var _ represent.FormatAdapter = Adapter{}

// New returns a compact-output adapter.
func New() Adapter { return Adapter{} }

// Serialize renders the tree as JSON. Attribute entries have no JSON
// counterpart and serialize as ordinary keys; style hints are ignored.
func (a Adapter) Serialize(n *represent.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := a.writeNode(&buf, n, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Deserialize parses JSON bytes into a fresh tree. Syntactically invalid
// input fails with MalformedDocumentError.
func (a Adapter) Deserialize(data []byte) (*represent.Node, error) {
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	n, err := decodeValue(dec)
	if err != nil {
		return nil, malformed(err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, malformed(fmt.Errorf("trailing content after document"))
	}
	return n, nil
}

func malformed(err error) error {
	return &represent.MalformedDocumentError{Format: "json", Cause: err}
}

func (a Adapter) writeNode(buf *bytes.Buffer, n *represent.Node, depth int) error {
	if n == nil {
		buf.WriteString("null")
		return nil
	}
	switch n.Kind {
	case represent.KindSequence:
		buf.WriteByte('[')
		for i, item := range n.Items {
			if i > 0 {
				buf.WriteByte(',')
			}
			a.newline(buf, depth+1)
			if err := a.writeNode(buf, item, depth+1); err != nil {
				return err
			}
		}
		if len(n.Items) > 0 {
			a.newline(buf, depth)
		}
		buf.WriteByte(']')
	case represent.KindMapping:
		buf.WriteByte('{')
		for i, e := range n.Entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			a.newline(buf, depth+1)
			if err := a.writeScalar(buf, e.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if a.Indent != "" {
				buf.WriteByte(' ')
			}
			if err := a.writeNode(buf, e.Node, depth+1); err != nil {
				return err
			}
		}
		if len(n.Entries) > 0 {
			a.newline(buf, depth)
		}
		buf.WriteByte('}')
	default:
		return a.writeScalar(buf, n.Value)
	}
	return nil
}

func (a Adapter) writeScalar(buf *bytes.Buffer, v any) error {
	if num, ok := v.(encjson.Number); ok {
		buf.WriteString(num.String())
		return nil
	}
	b, err := j.Marshal(v)
	if err != nil {
		return fmt.Errorf("json: marshal scalar %T: %w", v, err)
	}
	buf.Write(b)
	return nil
}

func (a Adapter) newline(buf *bytes.Buffer, depth int) {
	if a.Indent == "" {
		return
	}
	buf.WriteByte('\n')
	for i := 0; i < depth; i++ {
		buf.WriteString(a.Indent)
	}
}

func decodeValue(dec *j.Decoder) (*represent.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("unexpected end of document")
		}
		return nil, err
	}
	return decodeFrom(dec, tok)
}

func decodeFrom(dec *j.Decoder, tok j.Token) (*represent.Node, error) {
	switch v := tok.(type) {
	case j.Delim:
		switch v {
		case '{':
			var entries []represent.Entry
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is %T", keyTok)
				}
				val, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				entries = append(entries, represent.Entry{Key: key, Node: val})
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, err
			}
			return represent.Mapping(entries...), nil
		case '[':
			var items []*represent.Node
			for dec.More() {
				item, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, err
			}
			return represent.Sequence(items...), nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", v)
	case string:
		return represent.Scalar(v), nil
	case bool:
		return represent.Scalar(v), nil
	case j.Number:
		return represent.Scalar(encjson.Number(v)), nil
	case float64:
		return represent.Scalar(encjson.Number(fmt.Sprintf("%g", v))), nil
	case nil:
		return represent.Scalar(nil), nil
	}
	return nil, fmt.Errorf("unexpected token %T", tok)
}
