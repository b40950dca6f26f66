package schema

import "fmt"

// Vet checks the semantic validity of the config, reporting the first
// violation found as a *ValidationError.
func (c *SweepConfig) Vet() error {
	if c.OutputFolder == "" {
		return &ValidationError{Field: "output_folder", Reason: "must be a non-empty string"}
	}
	if c.FilenamePrefix == "" {
		return &ValidationError{Field: "filename_prefix", Reason: "must be a non-empty string"}
	}
	if c.URL == "" {
		return &ValidationError{Field: "url", Reason: "must be a non-empty string"}
	}

	for _, g := range c.ParamOverrides {
		if g.Node == "" {
			return &ValidationError{Field: "param_overrides", Reason: "node keys must be non-empty strings"}
		}
	}
	for _, g := range c.ParamWedges {
		if g.Node == "" {
			return &ValidationError{Field: "param_wedges", Reason: "node keys must be non-empty strings"}
		}
		for _, w := range g.Entries {
			if !KnownWedgeKind(w.Kind) {
				return &ValidationError{
					Field:  wedgeKey(g.Node),
					Reason: fmt.Sprintf("unsupported wedge kind %q", w.Kind),
				}
			}
		}
	}
	return nil
}
