// Package archive implements the versioned serialization format for engine
// state.
//
// # Format
//
// An archive is a JSON document carrying the complete state of a
// [synth.Engine]: grid dimensions and cells (row-major), the alphabet's
// symbols in ascending-id order, and the transformation pipeline with
// per-transformation parameters. The document is tagged with a format
// version; only version 1 exists today.
//
//	{
//	  "version": 1,
//	  "grid": {"width": 3, "height": 2, "data": [1, 2, 3, 4, 5, 6]},
//	  "alphabet": {"symbols": [{"id": 1, "name": "A"}]},
//	  "transformations": [
//	    {"name": "R", "enabled": true, "type": "random"},
//	    {"name": "Rule", "enabled": false, "type": "rule_based",
//	     "search": {"width": 2, "height": 1, "data": [-1, 1]},
//	     "replacements": [
//	       {"probability": 0.5,
//	        "grid": {"width": 2, "height": 1, "data": [-1, 2]}}]}
//	  ]
//	}
//
// # Atomicity
//
// Decoding is all-or-nothing: an unsupported version, a missing required
// field or any structurally invalid value fails with MALFORMED_ARCHIVE
// naming the offending field, and no partially constructed engine is ever
// returned. The round trip Marshal→Unmarshal reproduces the engine state
// exactly.
package archive
