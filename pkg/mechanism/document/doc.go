// Package document provides nil-safe, position-aware access to parsed
// YAML and JSON configuration documents.
//
// Documents are decoded with gopkg.in/yaml.v3 into a node tree; Node wraps
// that tree so validators can look up keys, iterate sequences and coerce
// scalars while keeping line/column information for diagnostics. JSON input
// is read by the same decoder.
package document
