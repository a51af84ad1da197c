package normalize

import (
	"errors"
	"fmt"

	iso6393 "github.com/barbashov/iso639-3"
)

// ErrUnknownLanguage means a language tag has no ISO 639-1 equivalent.
var ErrUnknownLanguage = errors.New("no alpha-2 language equivalent")

// Alpha2Language maps an ISO 639 alpha-3 code, including bibliographic
// variants like "cze" or "ger", to its two-letter code.
func Alpha2Language(lang string) (string, error) {
	l := iso6393.FromAnyCode(lang)
	if l == nil || l.Part1 == "" {
		return "", fmt.Errorf("language %q: %w", lang, ErrUnknownLanguage)
	}
	return l.Part1, nil
}
