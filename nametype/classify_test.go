package nametype

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/lehigh-university-libraries/marc-transform/institution"
	"github.com/lehigh-university-libraries/marc-transform/vocab"
)

type fakeService struct {
	terms map[string]vocab.Term
}

func (f *fakeService) Scan(ctx context.Context, vocabularyType string) ([]vocab.Term, error) {
	var out []vocab.Term
	for _, t := range f.terms {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeService) Search(ctx context.Context, vocabularyType, query string) ([]vocab.Term, error) {
	var out []vocab.Term
	for _, t := range f.terms {
		if ico, ok := t.Props["ICO"]; ok && strings.Contains(query, `props.ICO:"`+ico+`"`) {
			out = append(out, t)
			continue
		}
		if title := t.TitleIn("cs"); title != "" && strings.Contains(query, `"`+vocab.LuceneEscape(title)+`"`) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeService) ReadMany(ctx context.Context, vocabularyType string, ids []string) ([]vocab.Term, error) {
	var out []vocab.Term
	for _, id := range ids {
		if t, ok := f.terms[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func newTestClassifier(t *testing.T, terms ...vocab.Term) *Classifier {
	t.Helper()
	svc := &fakeService{terms: map[string]vocab.Term{}}
	for _, term := range terms {
		svc.terms[term.ID] = term
	}
	gw := vocab.NewGateway(svc, vocab.NewMemoryCache(time.Minute), time.Minute)
	lex, err := DefaultLexicons()
	if err != nil {
		t.Fatal(err)
	}
	return NewClassifier(gw, institution.NewResolver(gw), lex)
}

func classify(t *testing.T, c *Classifier, name string, affiliations, identifiers []string) string {
	t.Helper()
	got, err := c.Classify(context.Background(), name, affiliations, identifiers)
	if err != nil {
		t.Fatal(err)
	}
	return got
}

func TestClassifyRORIdentifier(t *testing.T) {
	c := newTestClassifier(t)
	got := classify(t, c, "Whoever", nil, []string{"https://ror.org/01an7q238"})
	if got != Organizational {
		t.Fatalf("got %q, want Organizational", got)
	}
}

func TestClassifyRORAffiliation(t *testing.T) {
	// An institutional identifier among affiliations means the name is
	// a person affiliated with that institution.
	c := newTestClassifier(t)
	got := classify(t, c, "Novák, Jan", []string{"https://ror.org/01an7q238"}, nil)
	if got != Personal {
		t.Fatalf("got %q, want Personal", got)
	}
}

func TestClassifyICORegistryHit(t *testing.T) {
	c := newTestClassifier(t,
		vocab.Term{ID: "firm", Props: map[string]string{"ICO": "44555666"}},
	)
	got := classify(t, c, "Tiskárna Novák", nil, []string{"ICO: 44555666"})
	if got != Organizational {
		t.Fatalf("got %q, want Organizational", got)
	}
}

func TestClassifyICORegistryMissFallsThrough(t *testing.T) {
	c := newTestClassifier(t)
	got := classify(t, c, "Novák, Jan", nil, []string{"ICO: 99999999"})
	if got != Personal {
		t.Fatalf("got %q, want Personal", got)
	}
}

func TestClassifyVocabularyMatch(t *testing.T) {
	c := newTestClassifier(t,
		vocab.Term{ID: "vut", Title: map[string]string{"cs": "Vysoké učení technické v Brně"}},
	)
	got := classify(t, c, "Vysoké učení technické v Brně", nil, nil)
	if got != Organizational {
		t.Fatalf("got %q, want Organizational", got)
	}
}

func TestClassifyAcademicTitle(t *testing.T) {
	c := newTestClassifier(t)
	got := classify(t, c, "Ing. Novák, Jan", nil, nil)
	if got != Personal {
		t.Fatalf("got %q, want Personal", got)
	}
}

func TestClassifyHypernym(t *testing.T) {
	c := newTestClassifier(t)
	got := classify(t, c, "Okresní muzeum Praha-východ", nil, nil)
	if got != Organizational {
		t.Fatalf("got %q, want Organizational", got)
	}
}

func TestClassifyCompanyEnding(t *testing.T) {
	c := newTestClassifier(t)
	for _, name := range []string{"Tiskárna Novák, s.r.o.", "Tiskárna Novák, s. r. o."} {
		if got := classify(t, c, name, nil, nil); got != Organizational {
			t.Fatalf("%q: got %q, want Organizational", name, got)
		}
	}
}

func TestClassifyTitleBeatsHypernym(t *testing.T) {
	// Academic titles are checked before organizational hypernyms.
	c := newTestClassifier(t)
	got := classify(t, c, "Doc. Univerzita, Jana", nil, nil)
	if got != Personal {
		t.Fatalf("got %q, want Personal", got)
	}
}

func TestClassifyDefaultPersonal(t *testing.T) {
	c := newTestClassifier(t)
	got := classify(t, c, "Novák, Jan", nil, nil)
	if got != Personal {
		t.Fatalf("got %q, want Personal", got)
	}
}

func TestClassifyUnparseable(t *testing.T) {
	c := newTestClassifier(t)
	got := classify(t, c, "...", nil, nil)
	if got != "" {
		t.Fatalf("got %q, want undecidable", got)
	}
}

func TestClassifyNoWholeTokenFalsePositive(t *testing.T) {
	// "Odd." must not match inside a longer word.
	c := newTestClassifier(t)
	got := classify(t, c, "Poddaná, Jana", nil, nil)
	if got != Personal {
		t.Fatalf("got %q, want Personal", got)
	}
}

func TestLoadLexicons(t *testing.T) {
	lex, err := LoadLexicons([]byte("academicTitles: [\"PhDr.\"]\ncompanyEndings: [\"k.s.\"]\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(lex.AcademicTitles) != 1 || lex.AcademicTitles[0] != "PhDr." {
		t.Fatalf("unexpected titles: %v", lex.AcademicTitles)
	}
	if len(lex.OrganizationalHypernyms) != 0 {
		t.Fatalf("unexpected hypernyms: %v", lex.OrganizationalHypernyms)
	}
}
