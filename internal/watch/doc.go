// Package watch monitors a document tree and re-runs a callback when
// documents or the inventory file change. Events are debounced so editor
// save bursts trigger a single pass.
package watch
