package institution

import (
	"strings"
	"unicode"

	"github.com/adrg/strutil/metrics"

	"github.com/lehigh-university-libraries/marc-transform/vocab"
)

// tokenMatchThreshold is the minimum per-token Jaro-Winkler similarity
// for two tokens to count as matching each other.
const tokenMatchThreshold = 0.9

var jaroWinkler = metrics.NewJaroWinkler()

// scoreCandidate scores one search hit against the input string. Every
// subset of the hit's ancestor chain is tried, because an input like
// "Dept. of X, Faculty of Y" may name some levels of the hierarchy and
// skip others. The best subset wins.
func scoreCandidate(freeText string, candidate vocab.Term, terms map[string]vocab.Term) float64 {
	ancestors := candidate.Hierarchy.Ancestors
	best := -1.0
	for mask := 0; mask < 1<<len(ancestors); mask++ {
		ids := []string{candidate.ID}
		for i, anc := range ancestors {
			if mask&(1<<i) != 0 {
				ids = append(ids, anc)
			}
		}
		if score := scoreAgainstChain(freeText, terms, ids); score > best {
			best = score
		}
	}
	return best
}

// scoreAgainstChain scores the input against the combined labels of the
// given vocabulary entries. The result is the bidirectional token
// overlap: both the input tokens and the label tokens must be covered
// for a high score, so neither extra words in the input nor extra words
// in the labels go unpunished.
func scoreAgainstChain(freeText string, terms map[string]vocab.Term, ids []string) float64 {
	inputTokens := tokenize(freeText)

	labelTokens := map[string]bool{}
	for _, id := range ids {
		term, ok := terms[id]
		if !ok {
			continue
		}
		type labelMatch struct {
			score  float64
			tokens map[string]bool
		}
		var candidates []labelMatch
		titleTokens := tokenize(term.TitleIn("cs"))
		score, _ := matchTokens(inputTokens, titleTokens)
		candidates = append(candidates, labelMatch{score, titleTokens})
		for _, np := range term.NonpreferredLabels {
			cs, ok := np["cs"]
			if !ok {
				continue
			}
			npTokens := tokenize(cs)
			score, _ := matchTokens(inputTokens, npTokens)
			candidates = append(candidates, labelMatch{score, npTokens})
		}
		// Prefer the best-scoring label; on ties, the shortest one.
		bestLabel := candidates[0]
		for _, c := range candidates[1:] {
			if c.score > bestLabel.score ||
				(c.score == bestLabel.score && len(c.tokens) < len(bestLabel.tokens)) {
				bestLabel = c
			}
		}
		for t := range bestLabel.tokens {
			labelTokens[t] = true
		}
	}

	forward, _ := matchTokens(inputTokens, labelTokens)
	backward, _ := matchTokens(labelTokens, inputTokens)
	if backward < forward {
		return backward
	}
	return forward
}

// matchTokens averages, over the tested tokens, the best Jaro-Winkler
// similarity to any alternative token, counting only similarities above
// the per-token threshold. It also reports which tested tokens matched.
func matchTokens(tested, alternatives map[string]bool) (float64, map[string]bool) {
	if len(tested) == 0 || len(alternatives) == 0 {
		return -1, nil
	}
	matched := map[string]bool{}
	var sum float64
	for t := range tested {
		var best float64
		for a := range alternatives {
			if d := jaroWinkler.Compare(t, a); d > tokenMatchThreshold && d > best {
				best = d
			}
		}
		if best > 0 {
			matched[t] = true
		}
		sum += best
	}
	return sum / float64(len(tested)), matched
}

// tokenize lowercases and splits on any non-word rune. Unlike the usual
// ASCII word-character class, letters from any script count as word
// runes here, so diacritics do not split tokens.
func tokenize(s string) map[string]bool {
	tokens := map[string]bool{}
	for _, t := range strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '_'
	}) {
		tokens[t] = true
	}
	return tokens
}
