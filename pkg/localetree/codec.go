package localetree

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// MaxDepth is the maximum nesting depth accepted when parsing or walking a
// tree. Hand-authored catalogs stay far below it; the limit exists to keep
// recursion bounded on malformed input.
const MaxDepth = 100

// Parse decodes a UTF-8 YAML or JSON document into a tree, preserving
// mapping key order. JSON documents are valid YAML, so a single decoder
// covers both catalog formats.
func Parse(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
	}
	return fromYAML(doc.Content[0], 1)
}

func fromYAML(n *yaml.Node, depth int) (*Node, error) {
	if depth > MaxDepth {
		return nil, ErrMaxDepth
	}

	switch n.Kind {
	case yaml.AliasNode:
		return fromYAML(n.Alias, depth)

	case yaml.ScalarNode:
		value, err := scalarValue(n)
		if err != nil {
			return nil, err
		}
		return NewLeaf(value), nil

	case yaml.SequenceNode:
		items := make([]*Node, 0, len(n.Content))
		for _, c := range n.Content {
			item, err := fromYAML(c, depth+1)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return NewSequence(items...), nil

	case yaml.MappingNode:
		node := &Node{
			kind:     KindMapping,
			keys:     make([]string, 0, len(n.Content)/2),
			children: make(map[string]*Node, len(n.Content)/2),
		}
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valueNode := n.Content[i], n.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("%w: non-scalar mapping key at line %d", ErrInvalidDocument, keyNode.Line)
			}
			key := keyNode.Value
			if _, exists := node.children[key]; exists {
				return nil, fmt.Errorf("%w: %q at line %d", ErrDuplicateKey, key, keyNode.Line)
			}
			child, err := fromYAML(valueNode, depth+1)
			if err != nil {
				return nil, err
			}
			node.keys = append(node.keys, key)
			node.children[key] = child
		}
		return node, nil

	default:
		return nil, fmt.Errorf("%w: unsupported node kind at line %d", ErrInvalidDocument, n.Line)
	}
}

func scalarValue(n *yaml.Node) (any, error) {
	switch n.Tag {
	case "!!null":
		return nil, nil
	case "!!bool":
		v, err := strconv.ParseBool(n.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: bad boolean %q at line %d", ErrInvalidDocument, n.Value, n.Line)
		}
		return v, nil
	case "!!int":
		v, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad integer %q at line %d", ErrInvalidDocument, n.Value, n.Line)
		}
		return v, nil
	case "!!float":
		v, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad float %q at line %d", ErrInvalidDocument, n.Value, n.Line)
		}
		return v, nil
	default:
		return n.Value, nil
	}
}

// MarshalJSON serializes the tree as compact JSON with mapping keys in
// insertion order.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, n *Node) error {
	if n == nil {
		buf.WriteString("null")
		return nil
	}

	switch n.kind {
	case KindLeaf:
		data, err := json.Marshal(n.value)
		if err != nil {
			return fmt.Errorf("localetree: marshal leaf: %w", err)
		}
		buf.Write(data)
		return nil

	case KindSequence:
		buf.WriteByte('[')
		for i, item := range n.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	case KindMapping:
		buf.WriteByte('{')
		for i, key := range n.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			keyData, err := json.Marshal(key)
			if err != nil {
				return fmt.Errorf("localetree: marshal key: %w", err)
			}
			buf.Write(keyData)
			buf.WriteByte(':')
			if err := writeJSON(buf, n.children[key]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	default:
		return fmt.Errorf("%w: kind %d", ErrInvalidDocument, n.kind)
	}
}

// EncodeJSON serializes the tree as indented JSON suitable for writing a
// catalog document back to disk.
func EncodeJSON(n *Node, indent string) ([]byte, error) {
	compact, err := n.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := json.Indent(&out, compact, "", indent); err != nil {
		return nil, fmt.Errorf("localetree: indent: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

// MarshalYAML implements yaml.Marshaler, serializing the tree with mapping
// keys in insertion order.
func (n *Node) MarshalYAML() (any, error) {
	return toYAML(n)
}

// EncodeYAML serializes the tree as a YAML document.
func EncodeYAML(n *Node) ([]byte, error) {
	if n == nil {
		return nil, ErrNilNode
	}
	data, err := yaml.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("localetree: marshal yaml: %w", err)
	}
	return data, nil
}

func toYAML(n *Node) (*yaml.Node, error) {
	if n == nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	}

	switch n.kind {
	case KindLeaf:
		return scalarYAML(n.value)

	case KindSequence:
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range n.items {
			c, err := toYAML(item)
			if err != nil {
				return nil, err
			}
			out.Content = append(out.Content, c)
		}
		return out, nil

	case KindMapping:
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range n.keys {
			c, err := toYAML(n.children[key])
			if err != nil {
				return nil, err
			}
			out.Content = append(out.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, c)
		}
		return out, nil

	default:
		return nil, fmt.Errorf("%w: kind %d", ErrInvalidDocument, n.kind)
	}
}

func scalarYAML(value any) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.ScalarNode}
	switch v := value.(type) {
	case nil:
		n.Tag, n.Value = "!!null", "null"
	case string:
		n.Tag, n.Value = "!!str", v
	case bool:
		n.Tag, n.Value = "!!bool", strconv.FormatBool(v)
	case int64:
		n.Tag, n.Value = "!!int", strconv.FormatInt(v, 10)
	case int:
		n.Tag, n.Value = "!!int", strconv.Itoa(v)
	case float64:
		n.Tag, n.Value = "!!float", strconv.FormatFloat(v, 'g', -1, 64)
	default:
		return nil, fmt.Errorf("%w: unsupported leaf type %T", ErrInvalidDocument, value)
	}
	return n, nil
}
