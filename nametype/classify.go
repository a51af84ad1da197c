// Package nametype decides whether a creator or contributor name refers
// to a person or an organization.
package nametype

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/marc-transform/institution"
	"github.com/lehigh-university-libraries/marc-transform/normalize"
	"github.com/lehigh-university-libraries/marc-transform/vocab"
)

// Name type values as they appear in output documents. The empty string
// means "undecidable", used when the name cannot be parsed at all.
const (
	Personal       = "Personal"
	Organizational = "Organizational"
)

//go:embed tables/lexicons.yaml
var defaultLexiconsYAML []byte

// Lexicons are the static word lists the classifier falls back to when
// neither identifiers nor the institutions vocabulary decide the type.
type Lexicons struct {
	AcademicTitles          []string `yaml:"academicTitles"`
	OrganizationalHypernyms []string `yaml:"organizationalHypernyms"`
	CompanyEndings          []string `yaml:"companyEndings"`
}

// DefaultLexicons returns the built-in lexicons.
func DefaultLexicons() (Lexicons, error) {
	return LoadLexicons(defaultLexiconsYAML)
}

// LoadLexicons parses lexicons from YAML, so deployments can extend the
// built-in lists without rebuilding.
func LoadLexicons(data []byte) (Lexicons, error) {
	var lex Lexicons
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return Lexicons{}, fmt.Errorf("parsing lexicons: %w", err)
	}
	return lex, nil
}

// Classifier applies the name-type heuristics in a fixed order:
// organizational identifiers first, then the institutional registry,
// then the institutions vocabulary, then the lexicons.
type Classifier struct {
	gw       *vocab.Gateway
	resolver *institution.Resolver

	titles    [][]string
	hypernyms [][]string
	endings   [][]string
}

// NewClassifier builds a classifier. Lexicon entries are tokenized once
// up front; matching is whole-token, so "s.r.o." and "s. r. o." are the
// same entry.
func NewClassifier(gw *vocab.Gateway, resolver *institution.Resolver, lex Lexicons) *Classifier {
	return &Classifier{
		gw:        gw,
		resolver:  resolver,
		titles:    tokenizeAll(lex.AcademicTitles),
		hypernyms: tokenizeAll(lex.OrganizationalHypernyms),
		endings:   tokenizeAll(lex.CompanyEndings),
	}
}

// Classify returns Personal, Organizational or "" for the given name.
// Affiliations and identifiers are the raw strings recorded alongside
// the name in the source record; either may be nil.
//
// An institutional identifier among the identifiers marks an
// organization; the same marker among the affiliations marks a person,
// because an affiliation implies someone being affiliated. That
// asymmetry is deliberate and must run before any vocabulary lookup.
func (c *Classifier) Classify(ctx context.Context, name string, affiliations, identifiers []string) (string, error) {
	for _, id := range identifiers {
		if hasRORMarker(id) {
			return Organizational, nil
		}
	}
	for _, aff := range affiliations {
		if hasRORMarker(aff) {
			return Personal, nil
		}
	}

	for _, id := range identifiers {
		parsed, err := normalize.ParseIdentifier(id)
		if err != nil || parsed.Scheme != "ICO" {
			continue
		}
		term, err := c.gw.ByExternalCode(ctx, "institutions", "ICO", parsed.Identifier)
		if err != nil {
			return "", fmt.Errorf("registry lookup for %q: %w", name, err)
		}
		if term != nil {
			return Organizational, nil
		}
	}

	ref, err := c.resolver.Resolve(ctx, name)
	if errors.Is(err, institution.ErrUnparseableName) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if ref != nil {
		return Organizational, nil
	}

	nameTokens := tokens(name)
	if matchesAny(nameTokens, c.titles) {
		return Personal, nil
	}
	if matchesAny(nameTokens, c.hypernyms) {
		return Organizational, nil
	}
	if matchesAny(nameTokens, c.endings) {
		return Organizational, nil
	}
	return Personal, nil
}

func hasRORMarker(s string) bool {
	return strings.Contains(s, "ror.org")
}

func matchesAny(nameTokens []string, entries [][]string) bool {
	for _, entry := range entries {
		if containsRun(nameTokens, entry) {
			return true
		}
	}
	return false
}

// containsRun reports whether needle occurs as a contiguous run of
// whole tokens inside haystack.
func containsRun(haystack, needle []string) bool {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return false
	}
outer:
	for i := 0; i+len(needle) <= len(haystack); i++ {
		for j := range needle {
			if haystack[i+j] != needle[j] {
				continue outer
			}
		}
		return true
	}
	return false
}

func tokenizeAll(entries []string) [][]string {
	out := make([][]string, 0, len(entries))
	for _, e := range entries {
		if ts := tokens(e); len(ts) > 0 {
			out = append(out, ts)
		}
	}
	return out
}

// tokens lowercases and splits on non-word runes, keeping letters from
// any script together.
func tokens(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '_'
	})
}
