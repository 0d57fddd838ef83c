package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalJSON serializes the record as a JSON object with keys in
// insertion order. Nil values become JSON null.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, fmt.Errorf("invalid record key %q: %v", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(r.values[i])
		if err != nil {
			return nil, fmt.Errorf("invalid record value for key %q: %v", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML serializes the record as a YAML mapping with keys in
// insertion order. Nil values become an explicit YAML null.
func (r *Record) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for i, k := range r.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
		valNode := &yaml.Node{}
		if r.values[i] == nil {
			valNode = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		} else if err := valNode.Encode(r.values[i]); err != nil {
			return nil, fmt.Errorf("invalid record value for key %q: %v", k, err)
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}
