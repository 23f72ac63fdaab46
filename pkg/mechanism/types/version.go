package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Schema identifies which configuration format produced a mechanism.
type Schema string

const (
	// SchemaUnknown is used before a document has been routed.
	SchemaUnknown Schema = ""
	// SchemaV0 is the legacy CAMP multi-file format.
	SchemaV0 Schema = "v0"
	// SchemaV1 is the single-document format with version 1.x.y.
	SchemaV1 Schema = "v1"
	// SchemaDevelopment is the in-development format with version 2.x.y.
	SchemaDevelopment Schema = "development"
)

// Version is a semantic version attached to a configuration document.
type Version struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
	Patch int `json:"patch"`
}

// ParseVersion parses "major.minor.patch". Missing trailing components are
// treated as zero, so "1" and "1.0" are both 1.0.0.
func ParseVersion(s string) (Version, error) {
	var v Version
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "v"))
	if s == "" {
		return v, fmt.Errorf("empty version string")
	}

	parts := strings.Split(s, ".")
	if len(parts) > 3 {
		return v, fmt.Errorf("version %q has more than three components", s)
	}

	fields := []*int{&v.Major, &v.Minor, &v.Patch}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return Version{}, fmt.Errorf("invalid version component %q in %q", part, s)
		}
		*fields[i] = n
	}
	return v, nil
}

// String returns the dotted form of the version.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// SchemaForMajor maps a version major number to the schema line that reads it.
func SchemaForMajor(major int) (Schema, bool) {
	switch major {
	case 1:
		return SchemaV1, true
	case 2:
		return SchemaDevelopment, true
	default:
		return SchemaUnknown, false
	}
}
