package normalize

import (
	"errors"
	"testing"

	"github.com/lehigh-university-libraries/marc-transform/vocab"
)

func TestSplitPersonalName(t *testing.T) {
	cases := []struct {
		in             string
		given, family string
	}{
		{"Novák, Jan", "Jan", "Novák"},
		{"Novák, Jan, ml.", "Jan ml.", "Novák"},
		{"Novák", "", "Novák"},
	}
	for _, tc := range cases {
		given, family := SplitPersonalName(tc.in)
		if given != tc.given || family != tc.family {
			t.Errorf("SplitPersonalName(%q) = (%q, %q), want (%q, %q)", tc.in, given, family, tc.given, tc.family)
		}
	}
}

func testCountries() map[string]vocab.Term {
	return map[string]vocab.Term{
		"CZ": {ID: "CZ"},
		"SK": {ID: "SK"},
	}
}

func TestParsePlace(t *testing.T) {
	loc, err := ParsePlace("Praha (CZ)", testCountries())
	if err != nil {
		t.Fatalf("ParsePlace failed: %v", err)
	}
	if loc.Place != "Praha" || loc.Country == nil || loc.Country.ID != "CZ" {
		t.Errorf("got %+v", loc)
	}

	loc, err = ParsePlace("online", testCountries())
	if err != nil {
		t.Fatalf("ParsePlace(online) failed: %v", err)
	}
	if loc.Place != "online" || loc.Country != nil {
		t.Errorf("online venue should carry no country: %+v", loc)
	}

	loc, err = ParsePlace("Brno (-)", testCountries())
	if err != nil || loc != nil {
		t.Errorf("countryless marker should yield no location, got (%+v, %v)", loc, err)
	}

	loc, err = ParsePlace("Ostrava (CZ, SK, PL)", testCountries())
	if err != nil {
		t.Fatalf("multi-country venue failed: %v", err)
	}
	if loc.Country.ID != "CZ" {
		t.Errorf("first listed country wins, got %+v", loc.Country)
	}
}

func TestParsePlaceUnknownCountryIsHardFailure(t *testing.T) {
	_, err := ParsePlace("Praha (XX)", testCountries())
	if !errors.Is(err, ErrUnknownCountry) {
		t.Fatalf("expected ErrUnknownCountry, got %v", err)
	}
}

func TestParseItemIssue(t *testing.T) {
	exceptions := DefaultIssueExceptions()

	cases := []struct {
		in   string
		want *IssueParts
	}{
		{"7", &IssueParts{Issue: "7"}},
		{"7-8", &IssueParts{Issue: "7-8"}},
		{"3/2018", &IssueParts{Issue: "3", Year: "2018"}},
		{"No. 12", &IssueParts{Issue: "12"}},
		{"No. 12, 2019", &IssueParts{Issue: "12", Year: "2019"}},
		{"Roč. 22, č. 2 (2011)", &IssueParts{Volume: "22", Issue: "2", Year: "2011"}},
		{"roč. 2, č. 2, s. 76-86", &IssueParts{Volume: "2", Issue: "2", StartPage: "76", EndPage: "86"}},
		{"nové číslo, jaro", nil},
	}
	for _, tc := range cases {
		got := ParseItemIssue(tc.in, exceptions)
		if tc.want == nil {
			if got != nil {
				t.Errorf("ParseItemIssue(%q) = %+v, want nil", tc.in, got)
			}
			continue
		}
		if got == nil || *got != *tc.want {
			t.Errorf("ParseItemIssue(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestFunderSlug(t *testing.T) {
	if got := FunderSlug("GA17-12345S"); got != "GA0" {
		t.Errorf("GA prefix: got %q, want GA0", got)
	}
	if got := FunderSlug("TH03010276"); got != "TA0" {
		t.Errorf("TH prefix: got %q, want TA0", got)
	}
	if got := FunderSlug("XX123"); got != "" {
		t.Errorf("unknown prefix should be empty, got %q", got)
	}
	if got := FunderSlug("G"); got != "" {
		t.Errorf("short id should be empty, got %q", got)
	}
}

func TestStaticCodeTables(t *testing.T) {
	if got := ResourceTypeCode("disertacni_prace"); got != "doctoral" {
		t.Errorf("resource type: got %q", got)
	}
	if got := ResourceTypeCode("neznamy_typ"); got != "other" {
		t.Errorf("resource type default: got %q", got)
	}

	if got := RightsCode("Licence Creative Commons Uveďte původ 4.0"); got != "4-BY" {
		t.Errorf("rights: got %q", got)
	}
	if got := RightsCode("Všechna práva vyhrazena"); got != "" {
		t.Errorf("unknown rights should be empty, got %q", got)
	}

	if got := AccessRightsFromText("Dostupné v digitálním repozitáři UK."); got != "c_abf2" {
		t.Errorf("open access sentence: got %q", got)
	}
	if got := AccessRightsFromText("Nikdy neviděná věta."); got != "c_14cb" {
		t.Errorf("unknown sentence defaults to metadata only: got %q", got)
	}
	if got := AccessRightsFromSlug("2"); got != "c_16ec" {
		t.Errorf("restricted slug: got %q", got)
	}
	if got := AccessRightsFromSlug("c_abf2"); got != "c_abf2" {
		t.Errorf("slug passthrough: got %q", got)
	}
}

func TestAlpha2Language(t *testing.T) {
	cases := map[string]string{
		"cze": "cs", // bibliographic variant
		"ces": "cs",
		"eng": "en",
		"ger": "de",
	}
	for in, want := range cases {
		got, err := Alpha2Language(in)
		if err != nil {
			t.Errorf("Alpha2Language(%q) failed: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("Alpha2Language(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := Alpha2Language("xxx"); !errors.Is(err, ErrUnknownLanguage) {
		t.Errorf("expected ErrUnknownLanguage, got %v", err)
	}
}
