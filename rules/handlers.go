package rules

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"github.com/lehigh-university-libraries/marc-transform/doc"
	"github.com/lehigh-university-libraries/marc-transform/marc"
	"github.com/lehigh-university-libraries/marc-transform/normalize"
)

func (t *Transformer) controlNumber(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	if values[0] == "" {
		return nil
	}
	d.SystemIdentifiers = append(d.SystemIdentifiers, doc.Identifier{
		Scheme:     "nusl",
		Identifier: "http://www.nusl.cz/ntk/nusl-" + values[0],
	})
	return nil
}

func (t *Transformer) isbn(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	d.ObjectIdentifiers = append(d.ObjectIdentifiers, doc.Identifier{Scheme: "ISBN", Identifier: values[0]})
	return nil
}

func (t *Transformer) issn(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	d.ObjectIdentifiers = append(d.ObjectIdentifiers, doc.Identifier{Scheme: "ISSN", Identifier: values[0]})
	return nil
}

func (t *Transformer) originalRecordOAI(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	d.SystemIdentifiers = append(d.SystemIdentifiers, doc.Identifier{Scheme: "originalRecordOAI", Identifier: values[0]})
	return nil
}

func (t *Transformer) dateModified(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	if d.DateModified == "" && values[0] != "" {
		d.DateModified = normalize.Date(values[0])
	}
	return nil
}

func (t *Transformer) dateIssued(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	if d.DateIssued == "" && values[0] != "" {
		d.DateIssued = normalize.YearFromAmbiguous(values[0])
	}
	return nil
}

func (t *Transformer) title(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	if d.Title == "" {
		d.Title = values[0]
	}
	return nil
}

// translatedTitle records the English title and promotes it to the main
// title when the record carries none.
func (t *Transformer) translatedTitle(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	if values[0] == "" {
		return nil
	}
	d.AdditionalTitles = append(d.AdditionalTitles, doc.AdditionalTitle{
		Title:     doc.Multilingual{Lang: "en", Value: values[0]},
		TitleType: "translatedTitle",
	})
	if d.Title == "" {
		d.Title = values[0]
	}
	return nil
}

// additionalTitle makes a handler appending a title of the given type,
// tagged with the record's own language (normalized when possible, raw
// otherwise).
func (t *Transformer) additionalTitle(titleType string) Handler {
	return func(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
		if values[0] == "" {
			return nil
		}
		raw := rec.First("04107a")
		lang, err := normalize.Alpha2Language(raw)
		if err != nil {
			lang = raw
		}
		d.AdditionalTitles = append(d.AdditionalTitles, doc.AdditionalTitle{
			Title:     doc.Multilingual{Lang: lang, Value: values[0]},
			TitleType: titleType,
		})
		return nil
	}
}

func (t *Transformer) englishSubtitle(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	if values[0] == "" {
		return nil
	}
	d.AdditionalTitles = append(d.AdditionalTitles, doc.AdditionalTitle{
		Title:     doc.Multilingual{Lang: "en", Value: values[0]},
		TitleType: "subtitle",
	})
	return nil
}

func (t *Transformer) publisher(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	d.Publishers = append(d.Publishers, values[0])
	return nil
}

func (t *Transformer) series(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	d.Series = append(d.Series, doc.Series{SeriesTitle: values[0], SeriesVolume: values[1]})
	return nil
}

func (t *Transformer) abstract(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	lang, err := normalize.Alpha2Language(values[1])
	if err != nil {
		lang = values[1]
		if lang == "" {
			lang = "cs"
		}
	}
	d.Abstract = append(d.Abstract, doc.Multilingual{Lang: lang, Value: values[0]})
	return nil
}

func (t *Transformer) note(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	if values[0] == "" {
		return nil
	}
	d.Notes = append(d.Notes, values[0])
	return nil
}

// subject handles the indexed subject-heading groups. A tuple with any
// member missing is dropped whole; headings are only usable when the
// scheme, both language variants and the code or URI all survived.
func (t *Transformer) subject(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	for _, v := range values {
		if v == "" {
			return nil
		}
	}
	purl := values[3]
	isURL := strings.HasPrefix(purl, "http://") || strings.HasPrefix(purl, "https://")
	var valueURI string
	if isURL {
		valueURI = purl
	}
	var classCode string
	if len(values) > 4 {
		classCode = values[4]
	}
	if classCode == "" && !isURL {
		classCode = purl
	}
	d.Subjects = append(d.Subjects, doc.Subject{
		SubjectScheme:      values[2],
		ClassificationCode: classCode,
		ValueURI:           valueURI,
		Subject: []doc.Multilingual{
			{Lang: "cs", Value: values[0]},
			{Lang: "en", Value: values[1]},
		},
	})
	return nil
}

// keywords makes a handler splitting a free-keyword field on "|" into
// one keyword subject per term.
func (t *Transformer) keywords(lang string) Handler {
	return func(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
		for _, v := range strings.Split(values[0], "|") {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			d.Subjects = append(d.Subjects, doc.Subject{
				SubjectScheme: "keyword",
				Subject:       []doc.Multilingual{{Lang: lang, Value: v}},
			})
		}
		return nil
	}
}

func (t *Transformer) event(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	ev := doc.Event{EventNameOriginal: values[0]}
	if values[3] != "" {
		ev.EventNameAlternate = []string{values[3]}
	}
	if values[2] != "" {
		ev.EventDate = normalize.Date(values[2])
	}
	if values[1] != "" {
		countries, err := t.gw.ByType(ctx, "countries", "id")
		if err != nil {
			return err
		}
		loc, err := normalize.ParsePlace(values[1], countries)
		if err != nil {
			return err
		}
		if loc != nil {
			ev.EventLocation = loc
		}
	}
	d.Events = append(d.Events, ev)
	return nil
}

func (t *Transformer) creator(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	if values[0] == "" {
		return nil
	}
	nameType, err := t.classifier.Classify(ctx, values[0], nil, nil)
	if err != nil {
		return err
	}
	d.Creators = append(d.Creators, doc.Creator{FullName: values[0], NameType: nameType})
	return nil
}

// contributor pairs a contributor name with its role. The role text is
// matched against the contributor-types vocabulary titles; anything
// unrecognized falls back to the generic "other" role. An undecidable
// name type drops the contributor.
func (t *Transformer) contributor(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	name := values[0]
	if name == "" {
		return nil
	}
	nameType, err := t.classifier.Classify(ctx, name, nil, nil)
	if err != nil {
		return err
	}
	if nameType == "" {
		return nil
	}

	types, err := t.gw.ByType(ctx, "contributor-types", "id", "title")
	if err != nil {
		return err
	}
	role := doc.Ref{ID: "other"}
	if other, ok := types["other"]; ok {
		role.ID = other.ID
	}
	if values[1] != "" {
		for _, ct := range types {
			if values[1] == ct.Title["cs"] || values[1] == ct.Title["en"] {
				role.ID = ct.ID
				break
			}
		}
	}
	d.Contributors = append(d.Contributors, doc.Contributor{
		FullName:        name,
		NameType:        nameType,
		ContributorType: &role,
	})
	return nil
}

func (t *Transformer) relatedItem(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	item := doc.RelatedItem{ItemTitle: values[0]}
	if issue := values[3]; issue != "" {
		if parts := normalize.ParseItemIssue(issue, t.issueExceptions); parts != nil {
			item.ItemVolume = parts.Volume
			item.ItemIssue = parts.Issue
			item.ItemYear = parts.Year
			item.ItemStartPage = parts.StartPage
			item.ItemEndPage = parts.EndPage
		} else {
			item.ItemIssue = issue
			item.ParseError = "Bad format"
		}
	}
	if values[1] != "" {
		item.ItemPIDs = append(item.ItemPIDs, normalize.ParseISBN(values[1])...)
	}
	if values[2] != "" {
		item.ItemPIDs = append(item.ItemPIDs, normalize.ParseISSN(values[2])...)
	}
	d.RelatedItems = append(d.RelatedItems, item)
	return nil
}

func (t *Transformer) originalRecordURL(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	if values[1] != "Odkaz na původní záznam" {
		return nil
	}
	d.OriginalRecord = values[0]
	if strings.Contains(values[0], "hdl.handle.net") {
		d.ObjectIdentifiers = append(d.ObjectIdentifiers, doc.Identifier{Scheme: "Handle", Identifier: values[0]})
	}
	return nil
}

func (t *Transformer) externalLocation(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	if values[0] == "" {
		return nil
	}
	d.ExternalLocation = &doc.ExternalLocation{ExternalLocationURL: values[0]}
	return nil
}

func (t *Transformer) catalogueSysNo(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	d.SystemIdentifiers = append(d.SystemIdentifiers, doc.Identifier{Scheme: "catalogueSysNo", Identifier: values[0]})
	return nil
}

// resourceType maps the collection code to a resource-type term. A
// "metodiky" record without a 336 field is a methodology that was never
// certified, which is its own type.
func (t *Transformer) resourceType(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	var code string
	if values[0] == "metodiky" && !rec.HasTag("336__") {
		code = "methodology-without-certification"
	} else {
		code = normalize.ResourceTypeCode(values[0])
	}
	return t.setResourceType(ctx, d, code)
}

func (t *Transformer) certifiedMethodology(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	return t.setResourceType(ctx, d, "certified-methodology")
}

func (t *Transformer) setResourceType(ctx context.Context, d *doc.Document, code string) error {
	types, err := t.gw.ByType(ctx, "resource-types")
	if err != nil {
		return err
	}
	term, ok := types[code]
	if !ok {
		return fmt.Errorf("resource type %q not in resource-types vocabulary", code)
	}
	d.ResourceType = &doc.Ref{ID: term.ID}
	return nil
}

func (t *Transformer) accessibility(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	var acc []doc.Multilingual
	if values[0] != "" {
		acc = append(acc, doc.Multilingual{Lang: "cs", Value: values[0]})
	}
	if values[1] != "" {
		acc = append(acc, doc.Multilingual{Lang: "en", Value: values[1]})
	}
	d.Accessibility = acc

	var slug string
	if values[0] != "" {
		slug = normalize.AccessRightsFromText(values[0])
	} else {
		code := values[2]
		if code == "" {
			code = "c_abf2"
		}
		slug = normalize.AccessRightsFromSlug(code)
	}
	d.AccessRights = &doc.Ref{ID: slug}
	return nil
}

// fundingReference resolves a project identifier's agency prefix against
// the funders vocabulary. Unknown prefixes and agencies missing from the
// live vocabulary drop the reference with a warning, never fail the
// record.
func (t *Transformer) fundingReference(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	projectID := values[0]
	if projectID == "" {
		return nil
	}
	slug := normalize.FunderSlug(projectID)
	funders, err := t.gw.ByType(ctx, "funders")
	if err != nil {
		return err
	}
	term, ok := funders[slug]
	if slug == "" || !ok {
		slog.Warn("unknown funder", "projectID", projectID, "slug", slug)
		return nil
	}
	d.FundingReferences = append(d.FundingReferences, doc.FundingReference{
		ProjectID: projectID,
		Funder:    doc.Ref{ID: term.ID},
	})
	return nil
}

func (t *Transformer) language(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	if values[0] == "" {
		return nil
	}
	lang, err := normalize.Alpha2Language(values[0])
	if err != nil {
		slog.Warn("language has no alpha-2 form, keeping raw tag", "lang", values[0])
		lang = values[0]
	}
	d.Languages = append(d.Languages, doc.Ref{ID: lang})
	return nil
}

func (t *Transformer) rights(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	if values[1] != "cze" {
		return nil
	}
	code := normalize.RightsCode(values[0])
	if code == "" {
		return nil
	}
	rights, err := t.gw.ByType(ctx, "rights", "id")
	if err != nil {
		return err
	}
	term, ok := rights[code]
	if !ok {
		return fmt.Errorf("licence %q not in rights vocabulary", code)
	}
	d.Rights = &doc.Ref{ID: term.ID}
	return nil
}

func (t *Transformer) degreeGrantor(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	if values[0] == "" {
		return nil
	}
	ref, err := t.resolver.Resolve(ctx, values[0])
	if err != nil {
		return err
	}
	if ref != nil {
		th := d.EnsureThesis()
		th.DegreeGrantors = append(th.DegreeGrantors, *ref)
	}
	return nil
}

// degreeGrantorParts assembles a grantor name from the institution,
// faculty and department subfields of the Czech-language entry. A
// faculty subfield naming a study program contributes to studyFields
// instead.
func (t *Transformer) degreeGrantorParts(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	if values[3] != "cze" {
		return nil
	}
	var parts []string
	if values[0] != "" {
		parts = append(parts, values[0])
	}
	if values[1] != "" {
		if field, ok := strings.CutPrefix(values[1], "Program "); ok {
			th := d.EnsureThesis()
			th.StudyFields = append(th.StudyFields, field)
		} else {
			parts = append(parts, values[1])
		}
	}
	if values[2] != "" {
		parts = append(parts, values[2])
	}
	if len(parts) == 0 {
		return nil
	}
	ref, err := t.resolver.Resolve(ctx, strings.Join(parts, ", "))
	if err != nil {
		return err
	}
	if ref != nil {
		th := d.EnsureThesis()
		th.DegreeGrantors = append(th.DegreeGrantors, *ref)
	}
	return nil
}

func (t *Transformer) dateDefended(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	if values[0] == "" {
		return nil
	}
	defended := normalize.Date(values[0])
	th := d.EnsureThesis()
	if th.DateDefended == "" {
		th.DateDefended = defended
	}
	if d.DateIssued == "" {
		d.DateIssued = defended
	}
	return nil
}

func (t *Transformer) defended(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	if values[0] == "obhájeno" {
		d.EnsureThesis().Defended = true
	}
	return nil
}

func (t *Transformer) studyField(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	var fields []string
	for _, f := range strings.Split(values[0], "/") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	if len(fields) == 0 {
		return nil
	}
	th := d.EnsureThesis()
	th.StudyFields = append(th.StudyFields, fields...)
	return nil
}

// collectionNames maps harvested collection codes to their display
// names; unknown codes pass through as-is.
var collectionNames = map[string]string{
	"univerzita_karlova_v_praze":                  "Univerzita Karlova",
	"vutbr":                                       "Vysoké učení technické v Brně",
	"vysoka_skola_ekonomicka_v_praze":             "Vysoká škola ekonomická v Praze",
	"jihoceska_univerzita_v_ceskych_budejovicich": "Jihočeská univerzita v Českých Budějovicích",
	"mendelova_univerzita_v_brne":                 "Mendelova univerzita v Brně",
	"ceska_zemedelska_univerzita":                 "Česká zemědělská univerzita v Praze",
	"akademie_muzickych_umeni_v_praze":            "Akademie múzických umění v Praze",
}

func (t *Transformer) collection(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	if values[0] == "" {
		return nil
	}
	if name, ok := collectionNames[values[0]]; ok {
		d.Collection = name
	} else {
		d.Collection = values[0]
	}
	return nil
}

// fileLink records one attached file. The filename is derived from the
// URL path; the note keeps whichever description subfield is present.
func (t *Transformer) fileLink(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error {
	rawURL := values[0]
	if rawURL == "" {
		return nil
	}
	name := path.Base(rawURL)
	if u, err := url.Parse(rawURL); err == nil && u.Path != "" && u.Path != "/" {
		name = path.Base(u.Path)
	}
	note := values[1]
	if note == "" {
		note = values[2]
	}
	d.Files = append(d.Files, doc.File{URL: rawURL, Name: name, Note: note})
	return nil
}
