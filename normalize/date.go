// Package normalize contains the pure value normalizers used by the
// field-transformation rules: dates, identifiers, names, venues, item
// issues, funder codes and the static code tables.
package normalize

import (
	"strings"
	"time"
)

// Date cleans a raw catalog date string: a single surrounding bracket
// pair, a literal " 00:00:00.0" time suffix and whitespace are stripped.
// Calendar validity is not checked.
func Date(value string) string {
	value = strings.TrimPrefix(value, "[")
	value = strings.TrimSuffix(value, "]")
	value = strings.ReplaceAll(value, " 00:00:00.0", "")
	return strings.TrimSpace(value)
}

// YearFromAmbiguous normalizes date-issued values that may be packed as
// eight digits in an unknown order. After dropping an optional leading
// "c", an 8-digit value is tried as YYYYMMDD, then DDMMYYYY, then
// MMDDYYYY, and the 4-digit year is returned: the target schema keeps
// only year granularity for this field. Anything else falls back to Date
// on the original value.
func YearFromAmbiguous(value string) string {
	v := strings.TrimPrefix(value, "c")

	if len(v) == 8 && allDigits(v) {
		if _, err := time.Parse("20060102", v); err == nil {
			return v[:4]
		}
		if _, err := time.Parse("02012006", v); err == nil {
			return v[4:]
		}
		if _, err := time.Parse("01022006", v); err == nil {
			return v[4:]
		}
	}

	return Date(value)
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
