package vocab

import "strings"

const luceneSpecial = `+-&|!(){}[]^"~*?:\`

// LuceneEscape backslash-escapes the query-syntax characters of the
// search engine so free text can be embedded in a quoted query clause.
func LuceneEscape(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		if r < 128 && strings.ContainsRune(luceneSpecial, r) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
