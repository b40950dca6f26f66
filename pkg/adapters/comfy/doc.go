// Package comfy adapts a ComfyUI-compatible execution service to the
// sweep core's ports: Workflow implements the mutable job template over
// the prompt-format JSON graph, and Client implements submission and
// completion-polling against the service's HTTP API.
package comfy
