package marc

import (
	"errors"
	"strings"
	"testing"
)

func TestValueUnmarshalScalarAndArray(t *testing.T) {
	src := NewJSONSource(strings.NewReader(
		`{"record":{"001":"123456","24500a":["Title one",null,"Title two"]},"context":{"oaiIdentifier":"oai:x:1"}}`,
	))

	rec, ctx, err := src.Next()
	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}
	if ctx.OAIIdentifier != "oai:x:1" {
		t.Errorf("context identifier: got %q", ctx.OAIIdentifier)
	}
	if got := rec.First("001"); got != "123456" {
		t.Errorf("scalar value: got %q", got)
	}
	all := rec.All("24500a")
	if len(all) != 3 {
		t.Fatalf("expected 3 occurrences, got %d", len(all))
	}
	if all[1] != "" {
		t.Errorf("null entry should decode to empty string, got %q", all[1])
	}
	if got := rec.First("24500a"); got != "Title one" {
		t.Errorf("First should skip nothing here: got %q", got)
	}

	if _, _, err := src.Next(); !errors.Is(err, ErrDone) {
		t.Errorf("expected ErrDone, got %v", err)
	}
}

func TestRecordPresence(t *testing.T) {
	rec := Record{
		"336__a": Value{"certifikována"},
		"980__a": Value{"metodiky"},
	}

	if !rec.Has("980__a") {
		t.Error("980__a should be present")
	}
	if rec.Has("24500a") {
		t.Error("24500a should be absent")
	}
	if !rec.HasTag("336__") {
		t.Error("HasTag should match 336__a")
	}
	if rec.HasTag("502__") {
		t.Error("HasTag should not match absent tags")
	}
}

func TestJSONSourceSkipsBlankLines(t *testing.T) {
	src := NewJSONSource(strings.NewReader(
		"\n" + `{"record":{"001":"1"},"context":{}}` + "\n\n" + `{"record":{"001":"2"},"context":{}}` + "\n",
	))

	var ids []string
	for {
		rec, _, err := src.Next()
		if errors.Is(err, ErrDone) {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		ids = append(ids, rec.First("001"))
	}
	if len(ids) != 2 || ids[0] != "1" || ids[1] != "2" {
		t.Errorf("got ids %v", ids)
	}
}
