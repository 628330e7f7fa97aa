// Package render defines the block renderer contract, the registry the
// orchestrator resolves generated blocks from, and BlockRenderer, the
// template-backed implementation both generated blocks share.
package render
