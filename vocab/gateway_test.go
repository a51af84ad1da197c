package vocab

import (
	"context"
	"fmt"
	"testing"
	"time"
)

type fakeService struct {
	terms    map[string][]Term
	scans    int
	searches []string
}

func (f *fakeService) Scan(_ context.Context, vocabularyType string) ([]Term, error) {
	f.scans++
	terms, ok := f.terms[vocabularyType]
	if !ok {
		return nil, fmt.Errorf("vocabulary %q: %w", vocabularyType, ErrVocabularyNotFound)
	}
	return terms, nil
}

func (f *fakeService) Search(_ context.Context, vocabularyType, query string) ([]Term, error) {
	f.searches = append(f.searches, query)
	return f.terms[vocabularyType+"/search"], nil
}

func (f *fakeService) ReadMany(_ context.Context, vocabularyType string, ids []string) ([]Term, error) {
	var out []Term
	for _, t := range f.terms[vocabularyType] {
		for _, id := range ids {
			if t.ID == id {
				out = append(out, t)
			}
		}
	}
	return out, nil
}

func TestByTypeCachesAndProjects(t *testing.T) {
	svc := &fakeService{terms: map[string][]Term{
		"rights": {
			{ID: "4-BY", Title: map[string]string{"en": "CC BY 4.0"}, Props: map[string]string{"url": "x"}},
			{ID: "4-BY-SA", Title: map[string]string{"en": "CC BY-SA 4.0"}},
		},
	}}
	gw := NewGateway(svc, NewMemoryCache(time.Minute), time.Minute)

	got, err := gw.ByType(context.Background(), "rights", "id")
	if err != nil {
		t.Fatalf("ByType failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d terms, want 2", len(got))
	}
	if got["4-BY"].Title != nil {
		t.Error("id-only projection should drop titles")
	}

	// Second call with the same fields must be served from cache.
	if _, err := gw.ByType(context.Background(), "rights", "id"); err != nil {
		t.Fatalf("cached ByType failed: %v", err)
	}
	if svc.scans != 1 {
		t.Errorf("expected 1 scan, got %d", svc.scans)
	}

	// A different projection is a different cache entry.
	withTitles, err := gw.ByType(context.Background(), "rights", "id", "title")
	if err != nil {
		t.Fatalf("ByType with titles failed: %v", err)
	}
	if withTitles["4-BY"].Title["en"] != "CC BY 4.0" {
		t.Errorf("title projection missing: %+v", withTitles["4-BY"])
	}
	if withTitles["4-BY"].Props != nil {
		t.Error("props should not survive an id,title projection")
	}
	if svc.scans != 2 {
		t.Errorf("expected 2 scans, got %d", svc.scans)
	}
}

func TestByTypeMissingVocabularyIsHardFailure(t *testing.T) {
	svc := &fakeService{terms: map[string][]Term{}}
	gw := NewGateway(svc, NewMemoryCache(time.Minute), time.Minute)

	_, err := gw.ByType(context.Background(), "no-such-vocabulary")
	if err == nil {
		t.Fatal("expected error for missing vocabulary")
	}
}

func TestByExternalCode(t *testing.T) {
	svc := &fakeService{terms: map[string][]Term{
		"institutions/search": {{ID: "uk"}},
	}}
	gw := NewGateway(svc, NewMemoryCache(time.Minute), time.Minute)

	term, err := gw.ByExternalCode(context.Background(), "institutions", "ICO", "00216208")
	if err != nil {
		t.Fatalf("ByExternalCode failed: %v", err)
	}
	if term == nil || term.ID != "uk" {
		t.Fatalf("got %+v, want term uk", term)
	}
	if want := `props.ICO:"00216208"`; svc.searches[0] != want {
		t.Errorf("query: got %q, want %q", svc.searches[0], want)
	}

	svc.terms["institutions/search"] = nil
	term, err = gw.ByExternalCode(context.Background(), "institutions", "ICO", "99999999")
	if err != nil || term != nil {
		t.Errorf("no hit should return (nil, nil), got (%v, %v)", term, err)
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	ctx := context.Background()

	if err := c.Set(ctx, "k", map[string]string{"a": "b"}, 10*time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	var got map[string]string
	ok, err := c.Get(ctx, "k", &got)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got["a"] != "b" {
		t.Errorf("got %v", got)
	}

	time.Sleep(20 * time.Millisecond)
	ok, err = c.Get(ctx, "k", &got)
	if err != nil {
		t.Fatalf("Get after expiry failed: %v", err)
	}
	if ok {
		t.Error("entry should have expired")
	}
}

func TestLuceneEscape(t *testing.T) {
	cases := map[string]string{
		"Univerzita Karlova":  "Univerzita Karlova",
		`AV ČR, v.v.i. (x:y)`: `AV ČR, v.v.i. \(x\:y\)`,
		`a+b-c"d`:             `a\+b\-c\"d`,
	}
	for in, want := range cases {
		if got := LuceneEscape(in); got != want {
			t.Errorf("LuceneEscape(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTitleInFallback(t *testing.T) {
	term := Term{Title: map[string]string{"cs": "Univerzita Karlova"}}
	if got := term.TitleIn("cs"); got != "Univerzita Karlova" {
		t.Errorf("got %q", got)
	}
	if got := term.TitleIn("en"); got != "Univerzita Karlova" {
		t.Errorf("fallback to any language: got %q", got)
	}
}
