// Package institution fuzzy-matches free-text organization names to
// entries of the hierarchical institutions vocabulary.
package institution

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/lehigh-university-libraries/marc-transform/doc"
	"github.com/lehigh-university-libraries/marc-transform/vocab"
)

// ErrUnparseableName means the input contains no usable token and cannot
// be queried at all. Distinct from "no match found", which is a nil
// result, not an error.
var ErrUnparseableName = errors.New("unparseable institution name")

// acceptThreshold is the minimum bidirectional token-overlap score the
// best candidate must exceed to be accepted.
const acceptThreshold = 0.8

var resolutions = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "marctransform_institution_resolutions_total",
	Help: "Institution resolution attempts by outcome",
}, []string{"outcome"})

// Resolver resolves free-text institution names against the institutions
// vocabulary through the gateway. Results, including misses, are cached
// per exact input string with the vocabulary TTL, so resolution is
// deterministic for a fixed vocabulary snapshot.
type Resolver struct {
	gw *vocab.Gateway
}

// NewResolver creates a resolver on top of the vocabulary gateway.
func NewResolver(gw *vocab.Gateway) *Resolver {
	return &Resolver{gw: gw}
}

// cachedDecision is the cache representation of one resolution. Resolved
// distinguishes a cached miss from a cache absence.
type cachedDecision struct {
	Resolved bool   `json:"resolved"`
	ID       string `json:"id,omitempty"`
}

// Resolve matches a free-text organization string to a vocabulary entry.
// A nil result means no entry matched confidently enough.
func (r *Resolver) Resolve(ctx context.Context, freeText string) (*doc.Ref, error) {
	freeText = strings.TrimSpace(freeText)
	if freeText == "" {
		return nil, nil
	}

	cacheKey := "institution-lookup-" + freeText
	var cached cachedDecision
	if ok, err := r.gw.CachedDecision(ctx, cacheKey, &cached); err == nil && ok {
		if !cached.Resolved {
			return nil, nil
		}
		return &doc.Ref{ID: cached.ID}, nil
	}

	ref, err := r.resolve(ctx, freeText)
	if err != nil {
		return nil, err
	}

	decision := cachedDecision{Resolved: ref != nil}
	if ref != nil {
		decision.ID = ref.ID
	}
	if err := r.gw.CacheDecision(ctx, cacheKey, decision); err != nil {
		slog.Warn("caching institution decision failed", "input", freeText, "error", err)
	}
	return ref, nil
}

func (r *Resolver) resolve(ctx context.Context, freeText string) (*doc.Ref, error) {
	candidates := candidateSubstrings(freeText)
	if len(candidates) == 0 {
		resolutions.WithLabelValues("unparseable").Inc()
		return nil, fmt.Errorf("institution name %q: %w", freeText, ErrUnparseableName)
	}

	clauses := make([]string, 0, 2*len(candidates))
	for _, c := range candidates {
		escaped := vocab.LuceneEscape(c)
		clauses = append(clauses,
			fmt.Sprintf(`hierarchy.title.cs: "%s"^2`, escaped),
			fmt.Sprintf(`nonpreferredLabels.cs: "%s"`, escaped),
		)
	}

	hits, err := r.gw.Search(ctx, "institutions", strings.Join(clauses, " OR "))
	if err != nil {
		return nil, fmt.Errorf("searching institutions for %q: %w", freeText, err)
	}
	if len(hits) == 0 {
		resolutions.WithLabelValues("unmatched").Inc()
		return nil, nil
	}

	terms := make(map[string]vocab.Term, len(hits))
	for _, h := range hits {
		terms[h.ID] = h
	}

	// Pull in any ancestors the search did not return, so a department
	// hit can be scored together with its faculty and university.
	var missing []string
	for _, h := range hits {
		for _, anc := range h.Hierarchy.Ancestors {
			if _, ok := terms[anc]; !ok {
				missing = append(missing, anc)
			}
		}
	}
	if len(missing) > 0 {
		ancestors, err := r.gw.ReadMany(ctx, "institutions", missing)
		if err != nil {
			return nil, fmt.Errorf("fetching institution ancestors: %w", err)
		}
		for _, a := range ancestors {
			terms[a.ID] = a
		}
	}

	type scored struct {
		score float64
		id    string
	}
	results := make([]scored, 0, len(hits))
	for _, h := range hits {
		results = append(results, scored{score: scoreCandidate(freeText, h, terms), id: h.ID})
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].score > results[j].score })

	best := results[0]
	slog.Debug("institution resolution", "input", freeText, "best", best.id, "score", best.score)
	if best.score <= acceptThreshold {
		resolutions.WithLabelValues("unmatched").Inc()
		return nil, nil
	}
	resolutions.WithLabelValues("matched").Inc()
	return &doc.Ref{ID: best.id}, nil
}

// candidateSubstrings splits the input on ".", "," and "'" (keeping the
// separators) and returns every contiguous run of non-separator pieces.
// This over-generates on purpose: both full names and abbreviated
// sub-phrases must reach the search query.
func candidateSubstrings(freeText string) []string {
	pieces := splitKeepingSeparators(freeText)
	var candidates []string
	for start := range pieces {
		if isSeparatorPiece(pieces[start]) {
			continue
		}
		for end := start; end < len(pieces); end++ {
			if isSeparatorPiece(pieces[end]) {
				continue
			}
			candidates = append(candidates, strings.TrimSpace(strings.Join(pieces[start:end+1], "")))
		}
	}
	return candidates
}

func splitKeepingSeparators(s string) []string {
	var pieces []string
	var current strings.Builder
	for _, r := range s {
		if r == '.' || r == ',' || r == '\'' {
			pieces = append(pieces, current.String())
			current.Reset()
			pieces = append(pieces, string(r))
			continue
		}
		current.WriteRune(r)
	}
	pieces = append(pieces, current.String())
	return pieces
}

func isSeparatorPiece(p string) bool {
	switch p {
	case "", ".", ",", "'":
		return true
	}
	return false
}
