// Package marc models the raw tagged catalog records handed to the
// transform by the harvester.
//
// A record is a flat mapping from field codes to string values. A field
// code is the fixed-format concatenation of tag, indicators and subfield,
// e.g. "24500a" or "7731_t". Repeated source fields contribute a value
// sequence; absence of a code means the field is not present in the
// record, never an empty string.
package marc

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Value holds the occurrences of one field code. A scalar source field
// decodes to a sequence of length 1.
type Value []string

// UnmarshalJSON accepts either a single string or an array of strings,
// matching the loose shape the harvester exports. Null array entries are
// kept as empty strings so positional pairing stays index-aligned.
func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = Value{s}
		return nil
	}

	var list []*string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("field value must be string or string array: %w", err)
	}
	out := make(Value, len(list))
	for i, p := range list {
		if p != nil {
			out[i] = *p
		}
	}
	*v = out
	return nil
}

// Record is one raw catalog record.
type Record map[string]Value

// Has reports whether the field code is present.
func (r Record) Has(code string) bool {
	_, ok := r[code]
	return ok
}

// HasTag reports whether any field code starts with the given tag prefix.
// Used for presence tests on a whole field regardless of subfield, e.g.
// HasTag("336__").
func (r Record) HasTag(prefix string) bool {
	for code := range r {
		if strings.HasPrefix(code, prefix) {
			return true
		}
	}
	return false
}

// All returns every occurrence of the field code, or nil if absent.
func (r Record) All(code string) []string {
	return r[code]
}

// First returns the first non-empty occurrence of the field code.
func (r Record) First(code string) string {
	for _, v := range r[code] {
		if v != "" {
			return v
		}
	}
	return ""
}

// Context carries the harvest-level metadata that accompanies one record.
type Context struct {
	// OAIIdentifier is the OAI-PMH identifier the record was harvested
	// under.
	OAIIdentifier string `json:"oaiIdentifier"`

	// SourceName identifies where the record came from, for diagnostics.
	SourceName string `json:"sourceName,omitempty"`
}
