// Package schema defines the sweep configuration model.
//
// A sweep configuration names a target execution service, an output
// location, a set of static parameter overrides, and a set of varying
// parameter axes ("wedges"). Two document shapes are accepted on load:
// the current node-keyed shape and a legacy shape kept for old config
// files. Both normalize to one canonical in-memory form, and saving
// always writes the current shape.
//
// Basic usage:
//
//	cfg, err := schema.Load("wedge_config.json")
//	if err != nil {
//	    // Handle schema or validation errors
//	}
//
//	cfg.SetWedge("KSampler", "cfg", []any{int64(4), int64(9), int64(1)}, schema.WedgeMinMax)
//	err = schema.Save(cfg, "wedge_config.json")
//
// The model keeps node groups and their entries in declaration order.
// Downstream axis construction depends on that order, so it is preserved
// through load, mutation, and save.
package schema
