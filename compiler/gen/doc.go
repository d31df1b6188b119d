// Package gen emits Python datatype class source from a schema node tree.
//
// # Architecture
//
// The emission pipeline follows this flow:
//
//	schema.Node tree (materialized upstream, read-only)
//	        ↓
//	   Emitter (per-compound-node class source)
//	        ↓
//	   Writer (parallel batch persistence)
//	        ↓
//	   Generated modules (graph_objs/)
//
// # Key Types
//
// The package provides several key types:
//
//   - Config: global generation configuration with functional options
//   - Emitter: builds one complete class artifact per compound node
//   - Writer: runs batches in parallel and serializes per-path writes
//   - Param: one keyword parameter of a generated constructor
//
// Emission is deterministic: two calls over the same tree produce
// byte-identical text, and one node's failure cannot affect another
// node's emission.
package gen
