package normalize

import "strings"

// SplitPersonalName splits an inverted personal name on its first comma:
// text before is the family name, the rest with commas removed is the
// given name. No deeper tokenization is attempted.
func SplitPersonalName(name string) (given, family string) {
	parts := strings.Split(name, ",")
	family = strings.TrimSpace(parts[0])
	given = strings.TrimSpace(strings.Trim(strings.Join(parts[1:], ""), ","))
	return given, family
}
