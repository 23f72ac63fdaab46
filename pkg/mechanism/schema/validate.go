package schema

import (
	"fmt"
	"strings"

	"open-atmos/mechanism-configuration/pkg/mechanism/document"
	mechErrors "open-atmos/mechanism-configuration/pkg/mechanism/errors"
)

// CommentMarker marks a key as a free-form annotation. Keys starting with it
// are never reported as non-standard and are kept as unknown properties.
const CommentMarker = "__"

// Validate checks the key shape of an object against its required and
// optional key lists. It never stops early: every missing key and every
// non-standard key is reported. Missing keys come first, in the order of
// required, followed by non-standard keys in document order.
func Validate(node document.Node, required, optional []string) *mechErrors.ErrorList {
	errs := mechErrors.NewErrorList()

	if node.IsNull() {
		errs.AddError(mechErrors.KindEmptyObject, "Object is null.", node.Location())
		return errs
	}

	present := make(map[string]bool)
	for _, key := range node.Keys() {
		present[key] = true
	}

	for _, key := range required {
		if !present[key] {
			errs.AddErrorWithSuggestion(
				mechErrors.KindRequiredKeyNotFound,
				fmt.Sprintf("Required key '%s' is missing.", key),
				node.Location(),
				mechErrors.SuggestMissingKey(key),
			)
		}
	}

	allowed := make(map[string]bool, len(required)+len(optional))
	valid := make([]string, 0, len(required)+len(optional))
	for _, key := range required {
		allowed[key] = true
		valid = append(valid, key)
	}
	for _, key := range optional {
		allowed[key] = true
		valid = append(valid, key)
	}

	for _, pair := range node.Pairs() {
		if allowed[pair.Key] || strings.HasPrefix(pair.Key, CommentMarker) {
			continue
		}
		errs.AddErrorWithSuggestion(
			mechErrors.KindInvalidKey,
			fmt.Sprintf("Non-standard key '%s' found.", pair.Key),
			pair.KeyAt.Location(),
			mechErrors.SuggestKey(pair.Key, valid),
		)
	}

	return errs
}

// Comments collects every key of node that starts with the comment marker.
// Scalars are kept verbatim; sequences and mappings are rendered as YAML.
// It returns nil when the object carries no comments.
func Comments(node document.Node) map[string]string {
	var out map[string]string
	for _, pair := range node.Pairs() {
		if !strings.HasPrefix(pair.Key, CommentMarker) {
			continue
		}
		if out == nil {
			out = make(map[string]string)
		}
		out[pair.Key] = pair.Value.Encode()
	}
	return out
}
