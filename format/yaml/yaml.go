// Package yaml is the YAML FormatAdapter, backed by gopkg.in/yaml.v3. It
// honors Style hints: StyleFlow renders sequences and mappings inline,
// StyleBlock (and StyleAny) one element per line. YAML has no attributes;
// attribute entries serialize as ordinary keys.
package yaml

import (
	encjson "encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	represent "github.com/represent-go/represent"
)

// Adapter converts document trees to and from YAML bytes. The zero value is
// ready to use.
type Adapter struct{}

var _ represent.FormatAdapter = Adapter{}

func New() Adapter { return Adapter{} }

func (Adapter) Serialize(n *represent.Node) ([]byte, error) {
	yn, err := toYAML(n)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(yn)
}

func (Adapter) Deserialize(data []byte) (*represent.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &represent.MalformedDocumentError{Format: "yaml", Cause: err}
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return represent.Scalar(nil), nil
	}
	return fromYAML(doc.Content[0])
}

func toYAML(n *represent.Node) (*yaml.Node, error) {
	if n == nil {
		return nullNode(), nil
	}
	switch n.Kind {
	case represent.KindSequence:
		out := &yaml.Node{Kind: yaml.SequenceNode, Style: layout(n.Style)}
		for _, item := range n.Items {
			yn, err := toYAML(item)
			if err != nil {
				return nil, err
			}
			out.Content = append(out.Content, yn)
		}
		return out, nil
	case represent.KindMapping:
		out := &yaml.Node{Kind: yaml.MappingNode, Style: layout(n.Style)}
		for _, e := range n.Entries {
			key := &yaml.Node{}
			key.SetString(e.Key)
			val, err := toYAML(e.Node)
			if err != nil {
				return nil, err
			}
			out.Content = append(out.Content, key, val)
		}
		return out, nil
	default:
		return scalarNode(n.Value)
	}
}

func scalarNode(v any) (*yaml.Node, error) {
	if v == nil {
		return nullNode(), nil
	}
	if num, ok := v.(encjson.Number); ok {
		if i, err := num.Int64(); err == nil {
			v = i
		} else if f, err := num.Float64(); err == nil {
			v = f
		} else {
			v = num.String()
		}
	}
	out := &yaml.Node{}
	if err := out.Encode(v); err != nil {
		return nil, fmt.Errorf("yaml: encode scalar %T: %w", v, err)
	}
	return out, nil
}

func nullNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

func fromYAML(yn *yaml.Node) (*represent.Node, error) {
	switch yn.Kind {
	case yaml.SequenceNode:
		items := make([]*represent.Node, 0, len(yn.Content))
		for _, c := range yn.Content {
			item, err := fromYAML(c)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		n := represent.Sequence(items...)
		if yn.Style&yaml.FlowStyle != 0 {
			n.Style = represent.StyleFlow
		}
		return n, nil
	case yaml.MappingNode:
		entries := make([]represent.Entry, 0, len(yn.Content)/2)
		for i := 0; i+1 < len(yn.Content); i += 2 {
			val, err := fromYAML(yn.Content[i+1])
			if err != nil {
				return nil, err
			}
			entries = append(entries, represent.Entry{Key: yn.Content[i].Value, Node: val})
		}
		n := represent.Mapping(entries...)
		if yn.Style&yaml.FlowStyle != 0 {
			n.Style = represent.StyleFlow
		}
		return n, nil
	case yaml.AliasNode:
		return fromYAML(yn.Alias)
	default:
		var v any
		if err := yn.Decode(&v); err != nil {
			return nil, &represent.MalformedDocumentError{Format: "yaml", Cause: err}
		}
		return represent.Scalar(v), nil
	}
}

func layout(s represent.Style) yaml.Style {
	if s == represent.StyleFlow {
		return yaml.FlowStyle
	}
	return 0
}
