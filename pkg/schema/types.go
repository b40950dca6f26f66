package schema

// WedgeKind identifies how a wedge declaration expands into values.
type WedgeKind string

const (
	// WedgeMinMax expands a [min, max, step] triple into a numeric range.
	WedgeMinMax WedgeKind = "minmax"
	// WedgeExplicit uses the declared value list as-is.
	WedgeExplicit WedgeKind = "explicit"
)

// KnownWedgeKind reports whether k is one of the recognized kinds.
func KnownWedgeKind(k WedgeKind) bool {
	return k == WedgeMinMax || k == WedgeExplicit
}

// Override is a single static parameter assignment within a node.
type Override struct {
	Param string
	Value any
}

// Wedge is a single varying-axis declaration within a node.
type Wedge struct {
	Param string
	Spec  []any
	Kind  WedgeKind
}

// NodeOverrides groups the overrides of one node, in declaration order.
type NodeOverrides struct {
	Node    string
	Entries []Override
}

// NodeWedges groups the wedges of one node, in declaration order.
type NodeWedges struct {
	Node    string
	Entries []Wedge
}

// SweepConfig is the canonical, validated sweep definition.
//
// ParamOverrides and ParamWedges are ordered: node groups appear in
// declaration order and so do the entries within each group. A given
// (node, param) pair appears at most once per group; the Set mutators
// maintain that invariant.
type SweepConfig struct {
	OutputFolder   string
	FilenamePrefix string
	URL            string
	ParamOverrides []NodeOverrides
	ParamWedges    []NodeWedges
}

// SetOverride adds or replaces the static override for (node, param).
func (c *SweepConfig) SetOverride(node, param string, value any) {
	for i := range c.ParamOverrides {
		if c.ParamOverrides[i].Node != node {
			continue
		}
		entries := c.ParamOverrides[i].Entries
		kept := entries[:0]
		for _, e := range entries {
			if e.Param != param {
				kept = append(kept, e)
			}
		}
		c.ParamOverrides[i].Entries = append(kept, Override{Param: param, Value: value})
		return
	}
	c.ParamOverrides = append(c.ParamOverrides, NodeOverrides{
		Node:    node,
		Entries: []Override{{Param: param, Value: value}},
	})
}

// RemoveOverride deletes the override for (node, param), reporting whether
// anything was removed. A node group left empty is dropped entirely.
func (c *SweepConfig) RemoveOverride(node, param string) bool {
	for i := range c.ParamOverrides {
		if c.ParamOverrides[i].Node != node {
			continue
		}
		entries := c.ParamOverrides[i].Entries
		kept := entries[:0]
		for _, e := range entries {
			if e.Param != param {
				kept = append(kept, e)
			}
		}
		removed := len(kept) != len(entries)
		if len(kept) == 0 {
			c.ParamOverrides = append(c.ParamOverrides[:i], c.ParamOverrides[i+1:]...)
		} else {
			c.ParamOverrides[i].Entries = kept
		}
		return removed
	}
	return false
}

// GetOverride returns the override entry for (node, param) if present.
func (c *SweepConfig) GetOverride(node, param string) (Override, bool) {
	for _, g := range c.ParamOverrides {
		if g.Node != node {
			continue
		}
		for _, e := range g.Entries {
			if e.Param == param {
				return e, true
			}
		}
	}
	return Override{}, false
}

// SetWedge adds or replaces the wedge for (node, param).
func (c *SweepConfig) SetWedge(node, param string, spec []any, kind WedgeKind) error {
	if !KnownWedgeKind(kind) {
		return &ValidationError{Field: "param_wedges", Reason: "wedge kind must be 'minmax' or 'explicit'"}
	}
	entry := Wedge{Param: param, Spec: append([]any(nil), spec...), Kind: kind}
	for i := range c.ParamWedges {
		if c.ParamWedges[i].Node != node {
			continue
		}
		entries := c.ParamWedges[i].Entries
		kept := entries[:0]
		for _, e := range entries {
			if e.Param != param {
				kept = append(kept, e)
			}
		}
		c.ParamWedges[i].Entries = append(kept, entry)
		return nil
	}
	c.ParamWedges = append(c.ParamWedges, NodeWedges{Node: node, Entries: []Wedge{entry}})
	return nil
}

// RemoveWedge deletes the wedge for (node, param), reporting whether
// anything was removed. A node group left empty is dropped entirely.
func (c *SweepConfig) RemoveWedge(node, param string) bool {
	for i := range c.ParamWedges {
		if c.ParamWedges[i].Node != node {
			continue
		}
		entries := c.ParamWedges[i].Entries
		kept := entries[:0]
		for _, e := range entries {
			if e.Param != param {
				kept = append(kept, e)
			}
		}
		removed := len(kept) != len(entries)
		if len(kept) == 0 {
			c.ParamWedges = append(c.ParamWedges[:i], c.ParamWedges[i+1:]...)
		} else {
			c.ParamWedges[i].Entries = kept
		}
		return removed
	}
	return false
}

// GetWedge returns the wedge entry for (node, param) if present.
func (c *SweepConfig) GetWedge(node, param string) (Wedge, bool) {
	for _, g := range c.ParamWedges {
		if g.Node != node {
			continue
		}
		for _, e := range g.Entries {
			if e.Param == param {
				return e, true
			}
		}
	}
	return Wedge{}, false
}

// ToMap returns a plain, JSON-serializable view of the config in the
// canonical shape. Useful for embedding the config as a metadata blob.
func (c *SweepConfig) ToMap() map[string]any {
	overrides := map[string]any{}
	for _, g := range c.ParamOverrides {
		rows := make([]any, 0, len(g.Entries))
		for _, e := range g.Entries {
			rows = append(rows, []any{e.Param, e.Value})
		}
		overrides[g.Node] = rows
	}
	wedges := map[string]any{}
	for _, g := range c.ParamWedges {
		rows := make([]any, 0, len(g.Entries))
		for _, e := range g.Entries {
			rows = append(rows, []any{e.Param, e.Spec, string(e.Kind)})
		}
		wedges[g.Node] = rows
	}
	return map[string]any{
		"output_folder":   c.OutputFolder,
		"filename_prefix": c.FilenamePrefix,
		"url":             c.URL,
		"param_overrides": overrides,
		"param_wedges":    wedges,
	}
}
