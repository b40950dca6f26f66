package schema

import "fmt"

// FromDocument builds a validated SweepConfig from a decoded document,
// normalizing both accepted shapes of param_overrides and param_wedges.
// The legacy project_name key is honored as a fallback for output_folder.
func FromDocument(doc Document) (*SweepConfig, error) {
	outputFolder := doc.stringField("output_folder")
	if outputFolder == "" {
		outputFolder = doc.stringField("project_name")
	}

	rawOverrides, _ := doc.Lookup("param_overrides")
	overrides, err := NormalizeOverrides(rawOverrides)
	if err != nil {
		return nil, err
	}
	rawWedges, _ := doc.Lookup("param_wedges")
	wedges, err := NormalizeWedges(rawWedges)
	if err != nil {
		return nil, err
	}

	cfg := &SweepConfig{
		OutputFolder:   outputFolder,
		FilenamePrefix: doc.stringField("filename_prefix"),
		URL:            doc.stringField("url"),
		ParamOverrides: overrides,
		ParamWedges:    wedges,
	}
	if err := cfg.Vet(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NormalizeOverrides coerces overrides from either accepted shape into
// ordered node groups.
//
// Current shape: mapping of node -> [[param, value], ...].
// Legacy shape: flat list of [node, param, value] triples.
func NormalizeOverrides(raw any) ([]NodeOverrides, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case Document:
		groups := make([]NodeOverrides, 0, len(v))
		for _, f := range v {
			if f.Key == "" {
				return nil, schemaErrf("param_overrides", "node keys must be non-empty strings")
			}
			entries, ok := f.Value.([]any)
			if !ok {
				return nil, schemaErrf(overrideKey(f.Key), "must be a list of [param, value] pairs")
			}
			converted := make([]Override, 0, len(entries))
			for _, raw := range entries {
				pair, ok := raw.([]any)
				if !ok || len(pair) != 2 {
					return nil, schemaErrf(overrideKey(f.Key), "entries must be [param, value] pairs")
				}
				param, ok := pair[0].(string)
				if !ok {
					return nil, schemaErrf(overrideKey(f.Key), "entry parameter names must be strings")
				}
				converted = append(converted, Override{Param: param, Value: pair[1]})
			}
			groups = append(groups, NodeOverrides{Node: f.Key, Entries: converted})
		}
		return groups, nil
	case []any:
		var groups []NodeOverrides
		for _, raw := range v {
			triple, ok := raw.([]any)
			if !ok || len(triple) != 3 {
				return nil, schemaErrf("param_overrides", "list-form entries must be [node, param, value] triples")
			}
			node, ok := triple[0].(string)
			if !ok || node == "" {
				return nil, schemaErrf("param_overrides", "node names must be non-empty strings")
			}
			param, ok := triple[1].(string)
			if !ok {
				return nil, schemaErrf("param_overrides", "parameter names must be strings")
			}
			groups = appendOverride(groups, node, Override{Param: param, Value: triple[2]})
		}
		return groups, nil
	default:
		return nil, schemaErrf("param_overrides", "must be a mapping or a list, got %T", raw)
	}
}

// NormalizeWedges coerces wedge declarations from either accepted shape
// into ordered node groups.
//
// Current shape: mapping of node -> [[param, values, kind], ...],
// detected when a value is a non-empty list whose first element is
// itself a list. Legacy shape: mapping of param -> [node, values, kind],
// re-keyed by node.
func NormalizeWedges(raw any) ([]NodeWedges, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case Document:
		var groups []NodeWedges
		for _, f := range v {
			if f.Key == "" {
				return nil, schemaErrf("param_wedges", "keys must be non-empty strings")
			}
			value, ok := f.Value.([]any)
			if !ok {
				return nil, schemaErrf(wedgeKey(f.Key), "expected legacy or current format")
			}

			// Current format: node -> [[param, values, kind], ...]
			if len(value) > 0 {
				if _, isList := value[0].([]any); isList {
					for _, raw := range value {
						entry, err := wedgeEntry(f.Key, raw)
						if err != nil {
							return nil, err
						}
						groups = appendWedge(groups, f.Key, entry)
					}
					continue
				}
			}

			// Legacy format: param -> [node, values, kind]
			if len(value) == 3 {
				node, ok := value[0].(string)
				if !ok || node == "" {
					return nil, schemaErrf(wedgeKey(f.Key), "legacy entries must start with a node title string")
				}
				spec, ok := value[1].([]any)
				if !ok {
					return nil, schemaErrf(wedgeKey(f.Key), "legacy entry values must be a list")
				}
				kind, ok := value[2].(string)
				if !ok {
					return nil, schemaErrf(wedgeKey(f.Key), "legacy entry kind must be a string")
				}
				groups = appendWedge(groups, node, Wedge{Param: f.Key, Spec: spec, Kind: WedgeKind(kind)})
				continue
			}

			return nil, schemaErrf(wedgeKey(f.Key), "unrecognized entry; expected legacy or current format")
		}
		return groups, nil
	default:
		return nil, schemaErrf("param_wedges", "must be a mapping, got %T", raw)
	}
}

func wedgeEntry(node string, raw any) (Wedge, error) {
	triple, ok := raw.([]any)
	if !ok || len(triple) != 3 {
		return Wedge{}, schemaErrf(wedgeKey(node), "entries must be [param, values, kind] triples")
	}
	param, ok := triple[0].(string)
	if !ok {
		return Wedge{}, schemaErrf(wedgeKey(node), "entry parameter names must be strings")
	}
	spec, ok := triple[1].([]any)
	if !ok {
		return Wedge{}, schemaErrf(wedgeKey(node), "entry values must be a list")
	}
	kind, ok := triple[2].(string)
	if !ok {
		return Wedge{}, schemaErrf(wedgeKey(node), "entry kind must be a string")
	}
	return Wedge{Param: param, Spec: spec, Kind: WedgeKind(kind)}, nil
}

func appendOverride(groups []NodeOverrides, node string, entry Override) []NodeOverrides {
	for i := range groups {
		if groups[i].Node == node {
			groups[i].Entries = append(groups[i].Entries, entry)
			return groups
		}
	}
	return append(groups, NodeOverrides{Node: node, Entries: []Override{entry}})
}

func appendWedge(groups []NodeWedges, node string, entry Wedge) []NodeWedges {
	for i := range groups {
		if groups[i].Node == node {
			groups[i].Entries = append(groups[i].Entries, entry)
			return groups
		}
	}
	return append(groups, NodeWedges{Node: node, Entries: []Wedge{entry}})
}

func overrideKey(node string) string { return fmt.Sprintf("param_overrides[%q]", node) }
func wedgeKey(key string) string     { return fmt.Sprintf("param_wedges[%q]", key) }
