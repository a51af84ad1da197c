package normalize

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/lehigh-university-libraries/marc-transform/doc"
)

// ErrUnknownScheme means a free-text identifier matched none of the known
// authority markers. Intentionally strict: unknown identifier shapes must
// not be silently miscategorized.
var ErrUnknownScheme = errors.New("unknown identifier scheme")

// schemeMarker is one recognizable identifier shape. Labeled markers carry
// their value after a ": " separator; URI markers are self-describing and
// keep the whole string.
type schemeMarker struct {
	marker string
	scheme string
	uri    bool
}

// Marker order matters: the first match wins.
var schemeMarkers = []schemeMarker{
	{marker: "ScopusID", scheme: "scopusID"},
	{marker: "ResearcherID", scheme: "researcherID"},
	{marker: "orcid", scheme: "orcid", uri: true},
	{marker: "ICO", scheme: "ICO"},
	{marker: "ror", scheme: "ROR", uri: true},
}

// ParseIdentifier detects the authority scheme of a free-text identifier
// and returns the scheme name with the bare value.
func ParseIdentifier(identifier string) (doc.Identifier, error) {
	for _, m := range schemeMarkers {
		if !strings.Contains(identifier, m.marker) {
			continue
		}
		if m.uri {
			return doc.Identifier{Scheme: m.scheme, Identifier: identifier}, nil
		}
		_, value, found := strings.Cut(identifier, ": ")
		if !found {
			return doc.Identifier{}, fmt.Errorf("identifier %q: missing value after %s label: %w", identifier, m.marker, ErrUnknownScheme)
		}
		return doc.Identifier{Scheme: m.scheme, Identifier: value}, nil
	}
	return doc.Identifier{}, fmt.Errorf("identifier %q: %w", identifier, ErrUnknownScheme)
}

var (
	segmentSplit   = regexp.MustCompile(`[,;]`)
	nonISSNChars   = regexp.MustCompile(`[^a-zA-Z0-9-]`)
	langAnnotation = strings.NewReplacer("(cz)", "", "(en)", "")
)

// ParseISBN extracts ISBN identifiers from a raw field value that may
// hold several comma- or semicolon-joined numbers with scheme labels,
// parentheses and language annotations.
func ParseISBN(value string) []doc.Identifier {
	var ids []doc.Identifier
	for _, seg := range segmentSplit.Split(value, -1) {
		seg = strings.ToLower(strings.TrimSpace(seg))
		seg = langAnnotation.Replace(seg)
		seg = strings.Trim(seg, "()")
		seg = strings.TrimPrefix(seg, "isbn:")
		seg = strings.TrimPrefix(seg, "isbn")
		seg = strings.TrimSpace(seg)
		if seg == "" || seg == "n" {
			continue
		}
		ids = append(ids, doc.Identifier{Scheme: "ISBN", Identifier: seg})
	}
	return ids
}

// ParseISSN extracts ISSN identifiers from a raw field value. Unlike
// ISBN, everything outside [a-zA-Z0-9-] is stripped from each segment.
func ParseISSN(value string) []doc.Identifier {
	var ids []doc.Identifier
	for _, seg := range segmentSplit.Split(value, -1) {
		seg = strings.TrimSpace(seg)
		if lower := strings.ToLower(seg); strings.HasPrefix(lower, "issn:") {
			seg = strings.TrimSpace(seg[5:])
		}
		if lower := strings.ToLower(seg); strings.HasPrefix(lower, "issn") {
			seg = strings.TrimSpace(seg[4:])
		}
		seg = nonISSNChars.ReplaceAllString(seg, "")
		if seg == "" || seg == "N" {
			continue
		}
		ids = append(ids, doc.Identifier{Scheme: "ISSN", Identifier: seg})
	}
	return ids
}
