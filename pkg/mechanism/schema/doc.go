// Package schema holds the key-shape validator and the cross-reference
// helpers shared by every mechanism assembler: duplicate detection, unknown
// reference detection, phase lookup, phase membership and comment
// extraction.
//
// All functions are pure; errors are appended to a caller-supplied list or
// returned in a fresh one.
package schema
