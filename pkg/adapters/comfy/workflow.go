package comfy

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/wedgerun/pkg/ports"
)

// Workflow is a ComfyUI prompt-format graph: node ID -> node object,
// where each node carries a class_type, an inputs map, and a _meta.title.
// The raw document is kept intact so unknown node content survives the
// round trip to the executor; mutation only touches input values.
type Workflow struct {
	nodes map[string]any
	extra map[string]any
	// title -> node ID, rebuilt on load and clone
	titles map[string]string
}

// nodeView is the typed slice of a node the adapter cares about.
type nodeView struct {
	ClassType string         `mapstructure:"class_type"`
	Inputs    map[string]any `mapstructure:"inputs"`
	Meta      struct {
		Title string `mapstructure:"title"`
	} `mapstructure:"_meta"`
}

// LoadWorkflow reads a prompt-format workflow JSON file.
func LoadWorkflow(path string) (*Workflow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read workflow: %w", err)
	}
	wf, err := ParseWorkflow(data)
	if err != nil {
		return nil, fmt.Errorf("parse workflow %s: %w", path, err)
	}
	return wf, nil
}

// ParseWorkflow decodes a prompt-format workflow document.
func ParseWorkflow(data []byte) (*Workflow, error) {
	var nodes map[string]any
	if err := json.Unmarshal(data, &nodes); err != nil {
		return nil, err
	}
	wf := &Workflow{nodes: nodes, extra: map[string]any{}}
	wf.reindex()
	return wf, nil
}

func (w *Workflow) reindex() {
	w.titles = make(map[string]string, len(w.nodes))
	for id, raw := range w.nodes {
		view, ok := decodeNode(raw)
		if !ok || view.Meta.Title == "" {
			continue
		}
		w.titles[view.Meta.Title] = id
	}
}

func decodeNode(raw any) (nodeView, bool) {
	m, ok := raw.(map[string]any)
	if !ok {
		return nodeView{}, false
	}
	var view nodeView
	if err := mapstructure.Decode(m, &view); err != nil {
		return nodeView{}, false
	}
	return view, true
}

// Clone returns an independent deep copy of the workflow, including any
// attached metadata.
func (w *Workflow) Clone() ports.Template {
	clone := &Workflow{
		nodes: deepCopyMap(w.nodes),
		extra: deepCopyMap(w.extra),
	}
	clone.reindex()
	return clone
}

// SetParamValue assigns a value at the (node title, param) location. It
// reports false when no node carries the title or the node's inputs do
// not contain the parameter.
func (w *Workflow) SetParamValue(node, param string, value any) bool {
	id, ok := w.titles[node]
	if !ok {
		return false
	}
	raw, ok := w.nodes[id].(map[string]any)
	if !ok {
		return false
	}
	inputs, ok := raw["inputs"].(map[string]any)
	if !ok {
		return false
	}
	if _, exists := inputs[param]; !exists {
		return false
	}
	inputs[param] = value
	return true
}

// AttachMetadata stores a blob under key; it is submitted alongside the
// graph as extra data and ends up embedded in generated artifacts.
func (w *Workflow) AttachMetadata(key string, blob any) {
	w.extra[key] = blob
}

// Nodes lists the workflow's nodes sorted by node ID. Nodes that do not
// decode are skipped.
func (w *Workflow) Nodes() []ports.NodeRef {
	ids := make([]string, 0, len(w.nodes))
	for id := range w.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	refs := make([]ports.NodeRef, 0, len(ids))
	for _, id := range ids {
		view, ok := decodeNode(w.nodes[id])
		if !ok {
			continue
		}
		refs = append(refs, ports.NodeRef{
			ID: id,
			Descriptor: ports.NodeDescriptor{
				Kind:  view.ClassType,
				Title: view.Meta.Title,
			},
		})
	}
	return refs
}

// NodeTitles returns the sorted titles present in the workflow. Best
// effort: malformed nodes contribute nothing.
func (w *Workflow) NodeTitles() []string {
	titles := make([]string, 0, len(w.titles))
	for t := range w.titles {
		titles = append(titles, t)
	}
	sort.Strings(titles)
	return titles
}

// ParamsFor returns the sorted input parameter names of the node with
// the given title, or an empty slice when the title is unknown.
func (w *Workflow) ParamsFor(title string) []string {
	id, ok := w.titles[title]
	if !ok {
		return nil
	}
	raw, ok := w.nodes[id].(map[string]any)
	if !ok {
		return nil
	}
	inputs, ok := raw["inputs"].(map[string]any)
	if !ok {
		return nil
	}
	params := make([]string, 0, len(inputs))
	for p := range inputs {
		params = append(params, p)
	}
	sort.Strings(params)
	return params
}

func deepCopyMap(src map[string]any) map[string]any {
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = deepCopyValue(v)
	}
	return dst
}

func deepCopyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return deepCopyMap(val)
	case []any:
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = deepCopyValue(e)
		}
		return out
	default:
		return val
	}
}
