package vocab

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ErrVocabularyNotFound means a required controlled vocabulary is missing
// entirely from the backing service. This is a hard failure for the record
// being transformed.
var ErrVocabularyNotFound = errors.New("vocabulary not found")

// DefaultTTL is how long cached vocabulary lookups stay authoritative.
const DefaultTTL = 3600 * time.Second

var (
	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "marctransform_vocab_cache_hits_total",
		Help: "Vocabulary lookups served from cache",
	})
	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "marctransform_vocab_cache_misses_total",
		Help: "Vocabulary lookups that went to the backing service",
	})
)

// Gateway is the cached read-through accessor over the vocabulary service.
// Construct one per process and share it; the cache is the only state
// shared across records.
type Gateway struct {
	svc   Service
	cache Cache
	ttl   time.Duration
}

// NewGateway wires a service and a cache together. A zero ttl means
// DefaultTTL.
func NewGateway(svc Service, cache Cache, ttl time.Duration) *Gateway {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Gateway{svc: svc, cache: cache, ttl: ttl}
}

// TTL returns the gateway's cache TTL. Collaborators caching their own
// derived decisions (e.g. institution resolutions) use the same TTL.
func (g *Gateway) TTL() time.Duration { return g.ttl }

// CacheDecision stores an arbitrary derived decision in the gateway's
// cache under the given key, with the vocabulary TTL.
func (g *Gateway) CacheDecision(ctx context.Context, key string, val any) error {
	return g.cache.Set(ctx, key, val, g.ttl)
}

// CachedDecision loads a previously stored derived decision.
func (g *Gateway) CachedDecision(ctx context.Context, key string, dest any) (bool, error) {
	return g.cache.Get(ctx, key, dest)
}

// ByType returns all terms of a vocabulary type keyed by id, projected to
// the named attribute fields (the id is always present). Results are
// cached for the gateway TTL.
func (g *Gateway) ByType(ctx context.Context, vocabularyType string, fields ...string) (map[string]Term, error) {
	if len(fields) == 0 {
		fields = []string{"id"}
	}
	sorted := append([]string(nil), fields...)
	sort.Strings(sorted)
	key := fmt.Sprintf("vocabulary-cache-%s-%s", vocabularyType, strings.Join(sorted, ","))

	cached := map[string]Term{}
	if ok, err := g.cache.Get(ctx, key, &cached); err != nil {
		slog.Warn("vocabulary cache read failed", "type", vocabularyType, "error", err)
	} else if ok {
		cacheHits.Inc()
		return cached, nil
	}
	cacheMisses.Inc()

	terms, err := g.svc.Scan(ctx, vocabularyType)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]Term, len(terms))
	for _, t := range terms {
		byID[t.ID] = t.project(fields)
	}

	slog.Info("caching vocabulary", "type", vocabularyType, "terms", len(byID), "ttl", g.ttl)
	if err := g.cache.Set(ctx, key, byID, g.ttl); err != nil {
		slog.Warn("vocabulary cache write failed", "type", vocabularyType, "error", err)
	}
	return byID, nil
}

// Search runs an ad-hoc query against a vocabulary type. Searches are not
// cached; callers that need memoization cache their final decision via
// CacheDecision instead.
func (g *Gateway) Search(ctx context.Context, vocabularyType, query string) ([]Term, error) {
	return g.svc.Search(ctx, vocabularyType, query)
}

// ReadMany fetches terms by id, uncached.
func (g *Gateway) ReadMany(ctx context.Context, vocabularyType string, ids []string) ([]Term, error) {
	return g.svc.ReadMany(ctx, vocabularyType, ids)
}

// ByExternalCode looks a term up by an external registry code stored in
// its props (e.g. the institutional ICO registry number). Returns nil
// when no term carries the code.
func (g *Gateway) ByExternalCode(ctx context.Context, vocabularyType, prop, code string) (*Term, error) {
	query := fmt.Sprintf(`props.%s:"%s"`, prop, LuceneEscape(code))
	terms, err := g.svc.Search(ctx, vocabularyType, query)
	if err != nil {
		return nil, err
	}
	if len(terms) == 0 {
		return nil, nil
	}
	return &terms[0], nil
}
