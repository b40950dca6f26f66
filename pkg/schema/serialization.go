package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads, parses, normalizes, and validates a configuration file.
// Files with a .yaml or .yml extension are parsed as YAML; everything
// else is parsed as JSON. The returned config is always canonical.
func Load(path string) (*SweepConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	doc, err := decodeByExtension(path, data)
	if err != nil {
		return nil, err
	}
	return FromDocument(doc)
}

// FromJSON parses and normalizes a raw JSON document, as read from a
// file or from stdin.
func FromJSON(data []byte) (*SweepConfig, error) {
	doc, err := DecodeJSON(data)
	if err != nil {
		return nil, err
	}
	return FromDocument(doc)
}

func decodeByExtension(path string, data []byte) (Document, error) {
	var doc Document
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		doc, err = DecodeYAML(data)
	default:
		doc, err = DecodeJSON(data)
	}
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// MarshalJSON writes the canonical document shape. Node groups and their
// entries are written in stored order, so a load/save cycle is stable.
func (c *SweepConfig) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := writeStringMember(&buf, "output_folder", c.OutputFolder, true); err != nil {
		return nil, err
	}
	if err := writeStringMember(&buf, "filename_prefix", c.FilenamePrefix, false); err != nil {
		return nil, err
	}
	if err := writeStringMember(&buf, "url", c.URL, false); err != nil {
		return nil, err
	}

	buf.WriteString(`,"param_overrides":{`)
	for i, g := range c.ParamOverrides {
		if i > 0 {
			buf.WriteByte(',')
		}
		rows := make([]any, 0, len(g.Entries))
		for _, e := range g.Entries {
			rows = append(rows, []any{e.Param, e.Value})
		}
		if err := writeMember(&buf, g.Node, rows); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')

	buf.WriteString(`,"param_wedges":{`)
	for i, g := range c.ParamWedges {
		if i > 0 {
			buf.WriteByte(',')
		}
		rows := make([]any, 0, len(g.Entries))
		for _, e := range g.Entries {
			rows = append(rows, []any{e.Param, e.Spec, string(e.Kind)})
		}
		if err := writeMember(&buf, g.Node, rows); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeStringMember(buf *bytes.Buffer, key, value string, first bool) error {
	if !first {
		buf.WriteByte(',')
	}
	return writeMember(buf, key, value)
}

func writeMember(buf *bytes.Buffer, key string, value any) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	v, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}

// Save persists the canonical configuration as indented JSON. The
// legacy shapes never reappear on save.
func Save(c *SweepConfig, path string) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "    "); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	out.WriteByte('\n')
	if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
