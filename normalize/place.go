package normalize

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/lehigh-university-libraries/marc-transform/doc"
	"github.com/lehigh-university-libraries/marc-transform/vocab"
)

// ErrUnknownCountry means a venue carried a country code missing from the
// countries vocabulary. This is a hard failure for the record: the code
// is either a typo worth fixing or a vocabulary gap.
var ErrUnknownCountry = errors.New("unknown country code")

var (
	noCountryPattern = regexp.MustCompile(`\(\-\)`)
	// Two or more comma-joined alphabetic tokens in parentheses, e.g.
	// "(CZ, SK, PL)". The first token is taken as the country.
	multiCountryPattern = regexp.MustCompile(`\(([a-zA-Z][a-zA-Z]+)(,\s*[a-zA-Z][a-zA-Z]+)+\)`)
	nonWordChars        = regexp.MustCompile(`\W`)
)

// ParsePlace parses an event venue of the form "City (CC)". The literal
// "online" is a non-physical venue without a country. A "(-)" marker
// means the venue carries no country and therefore no location at all.
// The country code is validated against the countries vocabulary.
func ParsePlace(place string, countries map[string]vocab.Term) (*doc.Location, error) {
	if strings.EqualFold(place, "online") {
		return &doc.Location{Place: place}, nil
	}

	if noCountryPattern.MatchString(place) {
		return nil, nil
	}

	trimmed := strings.TrimSpace(place)
	venue := trimmed
	tail := trimmed
	if idx := strings.LastIndex(trimmed, "("); idx >= 0 {
		venue = strings.TrimSpace(trimmed[:idx])
		tail = trimmed[idx+1:]
	}

	var country string
	if m := multiCountryPattern.FindStringSubmatch(place); m != nil {
		country = strings.ToUpper(strings.TrimSpace(m[1]))
	} else {
		country = strings.ToUpper(strings.TrimSpace(strings.ReplaceAll(tail, ")", "")))
		country = nonWordChars.ReplaceAllString(country, "")
	}

	if venue == "" {
		return nil, nil
	}
	if _, ok := countries[country]; !ok {
		return nil, fmt.Errorf("place %q: country %q: %w", place, country, ErrUnknownCountry)
	}
	return &doc.Location{Place: venue, Country: &doc.Ref{ID: country}}, nil
}
