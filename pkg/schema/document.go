package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Field is one key/value member of a decoded document object.
type Field struct {
	Key   string
	Value any
}

// Document is a decoded configuration document. Object members keep
// their document order; standard map decoding would lose it, and axis
// order downstream is defined as declaration order.
//
// Values are int64, float64, bool, string, nil, []any, or nested
// Document, for both JSON and YAML input.
type Document []Field

// Lookup returns the value of the first member with the given key.
func (d Document) Lookup(key string) (any, bool) {
	for _, f := range d {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

func (d Document) stringField(key string) string {
	v, _ := d.Lookup(key)
	s, _ := v.(string)
	return s
}

// DecodeJSON parses a JSON configuration document, preserving object
// member order and integer-ness of numbers.
func DecodeJSON(data []byte) (Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	v, err := decodeJSONValue(dec)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	doc, ok := v.(Document)
	if !ok {
		return nil, &ParseError{Err: fmt.Errorf("document root must be an object, got %T", v)}
	}
	return doc, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeJSONToken(dec, tok)
}

func decodeJSONToken(dec *json.Decoder, tok json.Token) (any, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			doc := Document{}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is not a string: %v", keyTok)
				}
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				doc = append(doc, Field{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil { // closing brace
				return nil, err
			}
			return doc, nil
		case '[':
			arr := []any{}
			for dec.More() {
				val, err := decodeJSONValue(dec)
				if err != nil {
					return nil, err
				}
				arr = append(arr, val)
			}
			if _, err := dec.Token(); err != nil { // closing bracket
				return nil, err
			}
			return arr, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i, nil
		}
		return t.Float64()
	default:
		// string, bool, nil
		return t, nil
	}
}

// DecodeYAML parses a YAML configuration document into the same ordered
// representation as DecodeJSON.
func DecodeYAML(data []byte) (Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &ParseError{Err: err}
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return Document{}, nil
	}
	v, err := yamlValue(root.Content[0])
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	doc, ok := v.(Document)
	if !ok {
		return nil, &ParseError{Err: fmt.Errorf("document root must be a mapping, got %T", v)}
	}
	return doc, nil
}

func yamlValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		doc := Document{}
		for i := 0; i+1 < len(n.Content); i += 2 {
			var key string
			if err := n.Content[i].Decode(&key); err != nil {
				return nil, err
			}
			val, err := yamlValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			doc = append(doc, Field{Key: key, Value: val})
		}
		return doc, nil
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			val, err := yamlValue(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, val)
		}
		return arr, nil
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		switch s := v.(type) {
		case int:
			return int64(s), nil
		case uint64:
			return int64(s), nil
		default:
			return v, nil
		}
	case yaml.AliasNode:
		return yamlValue(n.Alias)
	}
	return nil, fmt.Errorf("unsupported YAML node kind %d", n.Kind)
}
