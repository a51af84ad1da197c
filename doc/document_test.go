package doc

import (
	"reflect"
	"testing"
)

func TestDedupeKeepsFirstSeenOrder(t *testing.T) {
	d := New()
	d.Languages = []Ref{{ID: "cs"}, {ID: "en"}, {ID: "cs"}}
	d.Subjects = []Subject{
		{SubjectScheme: "keyword", Subject: []Multilingual{{Lang: "en", Value: "metadata"}}},
		{SubjectScheme: "keyword", Subject: []Multilingual{{Lang: "en", Value: "catalogs"}}},
		{SubjectScheme: "keyword", Subject: []Multilingual{{Lang: "en", Value: "metadata"}}},
	}

	d.Dedupe(DefaultDedupeProps...)

	if want := []Ref{{ID: "cs"}, {ID: "en"}}; !reflect.DeepEqual(d.Languages, want) {
		t.Errorf("languages: got %v, want %v", d.Languages, want)
	}
	if len(d.Subjects) != 2 {
		t.Fatalf("subjects: got %d, want 2", len(d.Subjects))
	}
	if d.Subjects[0].Subject[0].Value != "metadata" || d.Subjects[1].Subject[0].Value != "catalogs" {
		t.Errorf("subjects order not preserved: %v", d.Subjects)
	}
}

func TestDedupeIsIdempotent(t *testing.T) {
	d := New()
	d.Contributors = []Contributor{
		{FullName: "Novák, Jan", NameType: "Personal"},
		{FullName: "Novák, Jan", NameType: "Personal"},
		{FullName: "Univerzita Karlova", NameType: "Organizational"},
	}

	d.Dedupe("contributors")
	once := make([]Contributor, len(d.Contributors))
	copy(once, d.Contributors)

	d.Dedupe("contributors")
	if !reflect.DeepEqual(d.Contributors, once) {
		t.Errorf("second pass changed the result: %v vs %v", d.Contributors, once)
	}
	if len(d.Contributors) != 2 {
		t.Errorf("got %d contributors, want 2", len(d.Contributors))
	}
}

func TestDedupeDistinguishesStructurallyDifferentItems(t *testing.T) {
	d := New()
	d.Contributors = []Contributor{
		{FullName: "Novák, Jan", ContributorType: &Ref{ID: "advisor"}},
		{FullName: "Novák, Jan", ContributorType: &Ref{ID: "referee"}},
	}

	d.Dedupe("contributors")
	if len(d.Contributors) != 2 {
		t.Errorf("distinct roles must survive dedupe, got %d", len(d.Contributors))
	}
}

func TestEnsureThesisAllocatesOnce(t *testing.T) {
	d := New()
	th := d.EnsureThesis()
	th.Defended = true
	if d.EnsureThesis() != th {
		t.Error("EnsureThesis should return the same block")
	}
	if !d.Thesis.Defended {
		t.Error("mutation through the returned block should stick")
	}
}
