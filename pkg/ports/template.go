package ports

// NodeDescriptor describes one addressable node of a job template.
type NodeDescriptor struct {
	// Kind is the node's type tag, e.g. "SaveImage".
	Kind string
	// Title is the node's user-facing name; parameter mutation is
	// addressed by title.
	Title string
}

// NodeRef pairs a node's template-local ID with its descriptor.
type NodeRef struct {
	ID         string
	Descriptor NodeDescriptor
}

// Template is the parameterized job the sweep mutates and submits. The
// orchestrator clones the base template per combination so one run's
// mutations never leak into another.
type Template interface {
	// Clone returns an independent deep copy.
	Clone() Template

	// SetParamValue assigns a value at the (node title, param) location,
	// reporting whether the location exists.
	SetParamValue(node, param string, value any) bool

	// AttachMetadata stores an arbitrary blob under a key; it travels
	// with the submitted job.
	AttachMetadata(key string, blob any)

	// Nodes lists the template's nodes in a stable order. Malformed
	// nodes are skipped: this is a convenience listing, not validation.
	Nodes() []NodeRef
}
