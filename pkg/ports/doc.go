// Package ports defines the interfaces the sweep core drives but does
// not implement: the mutable job template and the remote execution
// client. Concrete adapters live under pkg/adapters; the orchestrator
// depends only on these contracts, which keeps the core testable with
// in-memory fakes.
package ports
