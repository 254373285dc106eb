// Package xml is the XML FormatAdapter, built on encoding/xml tokens. It
// honors attribute placement (Entry.Attribute) and container tags: a
// sequence entry emits one element per item under the entry's key, so a
// collection wrapped via WrapTag serializes as
// <songs><song>…</song><song>…</song></songs>.
//
// XML carries no type information: scalars deserialize as strings, so
// numeric properties parsed from XML need a coercion target. Schemas used
// with XML should be wrapped; the root element supplies the wrap key.
package xml

import (
	"bytes"
	encjson "encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	represent "github.com/represent-go/represent"
)

// Adapter converts document trees to and from XML bytes.
type Adapter struct {
	// Root names the document element when the tree does not determine one
	// (i.e. the top mapping has more than one entry). Default "document".
	Root string
	// Indent, when non-empty, pretty-prints output with this unit.
	Indent string
}

var _ represent.FormatAdapter = Adapter{}

func New() Adapter { return Adapter{} }

func (a Adapter) root() string {
	if a.Root != "" {
		return a.Root
	}
	return "document"
}

// Serialize renders the tree as one XML document. A top-level mapping with a
// single non-attribute entry becomes the document element; anything else
// nests under Root.
func (a Adapter) Serialize(n *represent.Node) ([]byte, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	if a.Indent != "" {
		enc.Indent("", a.Indent)
	}
	name := a.root()
	if n != nil && n.Kind == represent.KindMapping && len(n.Entries) == 1 &&
		!n.Entries[0].Attribute && n.Entries[0].Node != nil && n.Entries[0].Node.Kind == represent.KindMapping {
		e := n.Entries[0]
		name, n = e.Key, e.Node
	}
	if err := a.encodeElement(enc, name, n); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (a Adapter) encodeElement(enc *xml.Encoder, name string, n *represent.Node) error {
	start := xml.StartElement{Name: xml.Name{Local: name}}
	if n == nil || n.Kind == represent.KindScalar {
		var text string
		if n != nil {
			text = scalarText(n.Value)
		}
		return enc.EncodeElement(text, start)
	}
	if n.Kind == represent.KindSequence {
		// A sequence in element position flattens: one element per item,
		// all carrying the same name.
		for _, item := range n.Items {
			if err := a.encodeElement(enc, name, item); err != nil {
				return err
			}
		}
		return nil
	}
	for _, e := range n.Entries {
		if !e.Attribute {
			continue
		}
		if e.Node == nil || e.Node.Kind != represent.KindScalar {
			return fmt.Errorf("xml: attribute %q must be scalar", e.Key)
		}
		start.Attr = append(start.Attr, xml.Attr{
			Name:  xml.Name{Local: e.Key},
			Value: scalarText(e.Node.Value),
		})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, e := range n.Entries {
		if e.Attribute {
			continue
		}
		if err := a.encodeElement(enc, e.Key, e.Node); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

func scalarText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case encjson.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// Deserialize parses one XML document. The result is a mapping with a single
// entry keyed by the document element, matching the schema-wrap convention.
// Repeated sibling elements with the same name coalesce into a sequence.
func (a Adapter) Deserialize(data []byte) (*represent.Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return nil, malformed(fmt.Errorf("no document element"))
			}
			return nil, malformed(err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		n, err := decodeElement(dec, start)
		if err != nil {
			return nil, malformed(err)
		}
		return represent.Mapping(represent.Entry{Key: start.Name.Local, Node: n}), nil
	}
}

func malformed(err error) error {
	return &represent.MalformedDocumentError{Format: "xml", Cause: err}
}

func decodeElement(dec *xml.Decoder, start xml.StartElement) (*represent.Node, error) {
	var (
		entries []represent.Entry
		text    strings.Builder
	)
	for _, attr := range start.Attr {
		entries = append(entries, represent.Entry{
			Key:       attr.Name.Local,
			Node:      represent.Scalar(attr.Value),
			Attribute: true,
		})
	}
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			child, err := decodeElement(dec, t)
			if err != nil {
				return nil, err
			}
			entries = appendChild(entries, t.Name.Local, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			if len(entries) == 0 {
				// Leaf element. Surrounding whitespace is indentation, not
				// content.
				return represent.Scalar(strings.TrimSpace(text.String())), nil
			}
			return represent.Mapping(entries...), nil
		}
	}
}

// appendChild records a child element, coalescing repeated names into a
// sequence at the first occurrence's position.
func appendChild(entries []represent.Entry, key string, child *represent.Node) []represent.Entry {
	for i, e := range entries {
		if e.Key != key || e.Attribute {
			continue
		}
		if e.Node.Kind == represent.KindSequence {
			e.Node.Items = append(e.Node.Items, child)
			entries[i] = e
		} else {
			entries[i].Node = represent.Sequence(e.Node, child)
		}
		return entries
	}
	return append(entries, represent.Entry{Key: key, Node: child})
}
