package normalize

import "testing"

func TestDate(t *testing.T) {
	cases := map[string]string{
		"[2020-05-01 00:00:00.0]": "2020-05-01",
		"2011-06-30 00:00:00.0":   "2011-06-30",
		"[2008-08-24]":            "2008-08-24",
		"  1999  ":                "1999",
		"":                        "",
	}
	for in, want := range cases {
		if got := Date(in); got != want {
			t.Errorf("Date(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestYearFromAmbiguous(t *testing.T) {
	cases := map[string]string{
		"c19990101": "1999", // YYYYMMDD with the copyright prefix
		"19990101":  "1999",
		"31121999":  "1999", // DDMMYYYY: month 31 is impossible, day 31 is not
		"12311999":  "1999", // MMDDYYYY
		"2007":      "2007", // not 8 digits, generic normalization
		"[2007]":    "2007",
		"99999999":  "99999999", // 8 digits but no pattern parses
	}
	for in, want := range cases {
		if got := YearFromAmbiguous(in); got != want {
			t.Errorf("YearFromAmbiguous(%q) = %q, want %q", in, got, want)
		}
	}
}
