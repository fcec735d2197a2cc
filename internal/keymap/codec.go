package keymap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names accepted by Encode and Decode
const (
	FormatRaw  = "raw"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// EncodeYAML renders the mapping as an ordered YAML mapping
func EncodeYAML(m *Mapping) ([]byte, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range m.Entries() {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.From},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.To},
		)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeYAML reads a YAML mapping of source to target labels, keeping order
func DecodeYAML(data []byte) (*Mapping, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}

	m := New()
	if len(doc.Content) == 0 {
		return m, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("invalid yaml: expected a mapping at line %d", root.Line)
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("invalid yaml: entry at line %d is not a scalar pair", k.Line)
		}
		m.Set(k.Value, v.Value)
	}
	return m, nil
}

// EncodeJSON renders the mapping as an array of {from, to} objects.
// An array keeps entry order.
func EncodeJSON(m *Mapping) ([]byte, error) {
	type entry struct {
		From string `json:"from"`
		To   string `json:"to"`
	}
	entries := make([]entry, 0, m.Len())
	for _, e := range m.Entries() {
		entries = append(entries, entry{From: e.From, To: e.To})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode json: %w", err)
	}
	return append(data, '\n'), nil
}

// Encode renders the mapping in the named format
func Encode(m *Mapping, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "", FormatRaw:
		return []byte(Serialize(m) + "\n"), nil
	case FormatYAML, "yml":
		return EncodeYAML(m)
	case FormatJSON:
		return EncodeJSON(m)
	default:
		return nil, fmt.Errorf("unknown format %q (expected raw, yaml or json)", format)
	}
}

// Decode parses data in the named format
func Decode(data []byte, format string) (*Mapping, error) {
	switch strings.ToLower(format) {
	case "", FormatRaw:
		return Parse(strings.TrimSpace(string(data))), nil
	case FormatYAML, "yml":
		return DecodeYAML(data)
	default:
		return nil, fmt.Errorf("unknown import format %q (expected raw or yaml)", format)
	}
}
