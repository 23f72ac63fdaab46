package document

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"open-atmos/mechanism-configuration/pkg/mechanism/types"
)

// Node is a read-only view of one YAML/JSON node. The zero Node is null, so
// lookups can be chained without nil checks:
//
//	name, err := root.Get("gas").Get("name").String()
type Node struct {
	n    *yaml.Node
	file string

	// anchor positions a missing node at the object it was looked up in.
	anchor *yaml.Node
}

// Pair is one key/value entry of a mapping node.
type Pair struct {
	Key   string
	KeyAt Node
	Value Node
}

// Wrap returns a Node for n. It is exported for callers that already hold a
// decoded *yaml.Node.
func Wrap(n *yaml.Node, file string) Node {
	return Node{n: resolve(n), file: file}
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil {
		switch n.Kind {
		case yaml.DocumentNode:
			if len(n.Content) == 0 {
				return nil
			}
			n = n.Content[0]
		case yaml.AliasNode:
			n = n.Alias
		case 0:
			return nil
		default:
			return n
		}
	}
	return nil
}

func (nd Node) wrap(n *yaml.Node) Node {
	return Node{n: resolve(n), file: nd.file, anchor: nd.n}
}

// Raw returns the underlying yaml.v3 node, or nil for a null Node.
func (nd Node) Raw() *yaml.Node {
	return nd.n
}

// File returns the source path the node was loaded from.
func (nd Node) File() string {
	return nd.file
}

// IsNull reports whether the node is absent or an explicit YAML null.
func (nd Node) IsNull() bool {
	return nd.n == nil || (nd.n.Kind == yaml.ScalarNode && nd.n.Tag == "!!null")
}

// IsMap reports whether the node is a mapping.
func (nd Node) IsMap() bool {
	return nd.n != nil && nd.n.Kind == yaml.MappingNode
}

// IsSequence reports whether the node is a sequence.
func (nd Node) IsSequence() bool {
	return nd.n != nil && nd.n.Kind == yaml.SequenceNode
}

// IsScalar reports whether the node is a non-null scalar.
func (nd Node) IsScalar() bool {
	return nd.n != nil && nd.n.Kind == yaml.ScalarNode && !nd.IsNull()
}

// Get returns the value stored under key, or a null Node when the key is
// absent or the node is not a mapping.
func (nd Node) Get(key string) Node {
	if !nd.IsMap() {
		return Node{file: nd.file, anchor: nd.n}
	}
	for i := 0; i+1 < len(nd.n.Content); i += 2 {
		if nd.n.Content[i].Value == key {
			return nd.wrap(nd.n.Content[i+1])
		}
	}
	return Node{file: nd.file, anchor: nd.n}
}

// Has reports whether key is present, even with a null value.
func (nd Node) Has(key string) bool {
	if !nd.IsMap() {
		return false
	}
	for i := 0; i+1 < len(nd.n.Content); i += 2 {
		if nd.n.Content[i].Value == key {
			return true
		}
	}
	return false
}

// Keys returns the mapping keys in document order.
func (nd Node) Keys() []string {
	if !nd.IsMap() {
		return nil
	}
	keys := make([]string, 0, len(nd.n.Content)/2)
	for i := 0; i+1 < len(nd.n.Content); i += 2 {
		keys = append(keys, nd.n.Content[i].Value)
	}
	return keys
}

// Pairs returns the mapping entries in document order.
func (nd Node) Pairs() []Pair {
	if !nd.IsMap() {
		return nil
	}
	pairs := make([]Pair, 0, len(nd.n.Content)/2)
	for i := 0; i+1 < len(nd.n.Content); i += 2 {
		pairs = append(pairs, Pair{
			Key:   nd.n.Content[i].Value,
			KeyAt: nd.wrap(nd.n.Content[i]),
			Value: nd.wrap(nd.n.Content[i+1]),
		})
	}
	return pairs
}

// Items iterates the node as a list. A sequence yields its elements, a null
// node yields nothing and any other node yields itself.
func (nd Node) Items() []Node {
	switch {
	case nd.IsNull():
		return nil
	case nd.IsSequence():
		items := make([]Node, 0, len(nd.n.Content))
		for _, c := range nd.n.Content {
			items = append(items, nd.wrap(c))
		}
		return items
	default:
		return []Node{nd}
	}
}

// Len returns the number of elements of a sequence or entries of a mapping.
func (nd Node) Len() int {
	switch {
	case nd.IsSequence():
		return len(nd.n.Content)
	case nd.IsMap():
		return len(nd.n.Content) / 2
	default:
		return 0
	}
}

// String returns the scalar text of the node.
func (nd Node) String() (string, error) {
	if !nd.IsScalar() {
		return "", nd.typeError("string")
	}
	return nd.n.Value, nil
}

// Str is String without the error, returning "" for non-scalars.
func (nd Node) Str() string {
	s, _ := nd.String()
	return s
}

// Float decodes the node as a float64.
func (nd Node) Float() (float64, error) {
	if !nd.IsScalar() {
		return 0, nd.typeError("number")
	}
	var f float64
	if err := nd.n.Decode(&f); err != nil {
		// Quoted numbers are accepted as well.
		f, err = strconv.ParseFloat(strings.TrimSpace(nd.n.Value), 64)
		if err != nil {
			return 0, nd.typeError("number")
		}
	}
	return f, nil
}

// MustFloat returns the float value, or def when the node is absent or not a number.
func (nd Node) MustFloat(def float64) float64 {
	f, err := nd.Float()
	if err != nil {
		return def
	}
	return f
}

// Int decodes the node as an int. Floats are rejected rather than truncated;
// a quoted integer is accepted the same way Float accepts quoted numbers.
func (nd Node) Int() (int, error) {
	if !nd.IsScalar() {
		return 0, nd.typeError("integer")
	}
	if nd.n.Tag == "!!int" {
		var i int
		if err := nd.n.Decode(&i); err != nil {
			return 0, nd.typeError("integer")
		}
		return i, nil
	}
	i, err := strconv.ParseInt(strings.TrimSpace(nd.n.Value), 10, 0)
	if err != nil {
		return 0, nd.typeError("integer")
	}
	return int(i), nil
}

// MustInt returns the int value, or def when the node is absent or not an integer.
func (nd Node) MustInt(def int) int {
	i, err := nd.Int()
	if err != nil {
		return def
	}
	return i
}

// Bool decodes the node as a bool.
func (nd Node) Bool() (bool, error) {
	if !nd.IsScalar() {
		return false, nd.typeError("boolean")
	}
	var b bool
	if err := nd.n.Decode(&b); err != nil {
		return false, nd.typeError("boolean")
	}
	return b, nil
}

// Line returns the 1-based source line. A missing node reports the line of
// the object it was looked up in.
func (nd Node) Line() int {
	if nd.n != nil {
		return nd.n.Line
	}
	if nd.anchor != nil {
		return nd.anchor.Line
	}
	return 0
}

// Column returns the 1-based source column.
func (nd Node) Column() int {
	if nd.n != nil {
		return nd.n.Column
	}
	if nd.anchor != nil {
		return nd.anchor.Column
	}
	return 0
}

// Location returns the node position attributed to the source file.
func (nd Node) Location() types.Location {
	return types.Location{File: nd.file, Line: nd.Line(), Column: nd.Column()}
}

// Encode renders the node as YAML text without the trailing newline.
// Scalars render as their plain value.
func (nd Node) Encode() string {
	if nd.n == nil {
		return ""
	}
	if nd.n.Kind == yaml.ScalarNode {
		return nd.n.Value
	}
	out, err := yaml.Marshal(nd.n)
	if err != nil {
		return ""
	}
	return strings.TrimRight(string(out), "\n")
}

func (nd Node) typeError(want string) error {
	return fmt.Errorf("%s: expected %s", nd.Location(), want)
}
