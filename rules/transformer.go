package rules

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/lehigh-university-libraries/marc-transform/doc"
	"github.com/lehigh-university-libraries/marc-transform/institution"
	"github.com/lehigh-university-libraries/marc-transform/marc"
	"github.com/lehigh-university-libraries/marc-transform/nametype"
	"github.com/lehigh-university-libraries/marc-transform/normalize"
	"github.com/lehigh-university-libraries/marc-transform/vocab"
)

var (
	transformedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "marctransform_records_transformed_total",
		Help: "Records transformed successfully",
	})
	failedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "marctransform_records_failed_total",
		Help: "Records that failed to transform",
	})
)

// TransformError is the hard failure of one record. It carries the raw
// record, the harvest context and the partially built document so the
// pipeline can log enough to tell a data-quality problem from a rule
// gap.
type TransformError struct {
	OAIIdentifier string
	Record        marc.Record
	Partial       *doc.Document
	Err           error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("transforming record %s: %v", e.OAIIdentifier, e.Err)
}

func (e *TransformError) Unwrap() error { return e.Err }

// Transformer turns raw catalog records into metadata documents by
// running them through its rule table. Construct one per process; the
// vocabulary gateway's cache is the only state shared across records.
type Transformer struct {
	gw              *vocab.Gateway
	resolver        *institution.Resolver
	classifier      *nametype.Classifier
	issueExceptions normalize.IssueExceptions

	table   []Rule
	ignored []string
}

// NewTransformer builds the transformer and its rule table. A nil
// issueExceptions means the built-in curated table.
func NewTransformer(gw *vocab.Gateway, resolver *institution.Resolver, classifier *nametype.Classifier, issueExceptions normalize.IssueExceptions) *Transformer {
	if issueExceptions == nil {
		issueExceptions = normalize.DefaultIssueExceptions()
	}
	t := &Transformer{
		gw:              gw,
		resolver:        resolver,
		classifier:      classifier,
		issueExceptions: issueExceptions,
	}
	t.table = []Rule{
		{Fields: []string{"001"}, Handler: t.controlNumber},
		{Fields: []string{"020__a"}, Handler: t.isbn},
		{Fields: []string{"022__a"}, Handler: t.issn},
		{Fields: []string{"035__a"}, Handler: t.originalRecordOAI},
		{Fields: []string{"046__j"}, Handler: t.dateModified},
		{Fields: []string{"046__k"}, Handler: t.dateIssued},
		{Fields: []string{"24500a"}, Handler: t.title},
		{Fields: []string{"24500b"}, Handler: t.translatedTitle},
		{Fields: []string{"24630n", "24630p"}, Handler: t.additionalTitle("alternativeTitle")},
		{Fields: []string{"24633a"}, Handler: t.additionalTitle("subtitle")},
		{Fields: []string{"24633b"}, Handler: t.englishSubtitle},
		{Fields: []string{"260__b"}, Handler: t.publisher},
		{Fields: []string{"4900_a", "4900_v"}, Paired: true, Handler: t.series},
		{Fields: []string{"520__a", "520__9"}, Paired: true, Handler: t.abstract},
		{Fields: []string{"598__a"}, Handler: t.note},
		{Fields: []string{"65007a", "65007j", "650072", "650070"}, Paired: true, Handler: t.subject},
		{Fields: []string{"65017a", "65017j", "650172", "650170"}, Paired: true, Handler: t.subject},
		{Fields: []string{"650_7a", "650_7j", "650_72", "650_70", "650_77"}, Paired: true, Handler: t.subject},
		{Fields: []string{"6530_a"}, Handler: t.keywords("en")},
		{Fields: []string{"653__a"}, Handler: t.keywords("cs")},
		{Fields: []string{"7112_a", "7112_c", "7112_d", "7112_g"}, Paired: true, Handler: t.event},
		{Fields: []string{"720__a"}, Unique: true, Handler: t.creator},
		{Fields: []string{"720__i", "720__e"}, Paired: true, Unique: true, Handler: t.contributor},
		{Fields: []string{"7731_t", "7731_z", "7731_x", "7731_g"}, Paired: true, Handler: t.relatedItem},
		{Fields: []string{"85640u", "85640z"}, Paired: true, Handler: t.originalRecordURL},
		{Fields: []string{"85642u"}, Handler: t.externalLocation},
		{Fields: []string{"970__a"}, Handler: t.catalogueSysNo},
		{Fields: []string{"980__a"}, Handler: t.resourceType},
		{Fields: []string{"996__a", "996__b", "996__9"}, Paired: true, Handler: t.accessibility},
		{Fields: []string{"999C1a"}, Handler: t.fundingReference},
		{Fields: []string{"04107a", "04107b"}, Handler: t.language},
		{Fields: []string{"336__a"}, Handler: t.certifiedMethodology},
		{Fields: []string{"540__a", "540__9"}, Paired: true, Handler: t.rights},
		{Fields: []string{"502__c"}, Handler: t.degreeGrantor},
		{Fields: []string{"7102_a", "7102_b", "7102_g", "7102_9"}, Paired: true, Handler: t.degreeGrantorParts},
		{Fields: []string{"502__a"}, Handler: t.dateDefended},
		{Fields: []string{"586__a"}, Handler: t.defended},
		{Fields: []string{"656_7a"}, Handler: t.studyField},
		{Fields: []string{"998__a"}, Handler: t.collection},
		{Fields: []string{"8564_u", "8564_z", "8564_y"}, Paired: true, Handler: t.fileLink},
	}
	t.ignored = []string{
		"005", "008", "0248_a", "300", "340__a", "500__a",
		"502__b", "502__d", "502__g", "506__a", "586__b",
		"655_72", "655_7a", "656_72", "85642z", "8564_x",
		"909COo", "909COp", "909COq",
	}
	return t
}

// Transform runs one record through the rule table and returns the
// finalized document. A hard failure aborts this record only; the error
// is a *TransformError carrying the record and the partial document.
func (t *Transformer) Transform(ctx context.Context, rec marc.Record, rc marc.Context) (*doc.Document, error) {
	d := doc.New()
	for _, rule := range t.table {
		if err := t.apply(ctx, rule, d, rec); err != nil {
			failedTotal.Inc()
			return nil, &TransformError{
				OAIIdentifier: rc.OAIIdentifier,
				Record:        rec,
				Partial:       d,
				Err:           err,
			}
		}
	}

	if rc.OAIIdentifier != "" {
		d.SystemIdentifiers = append(d.SystemIdentifiers, doc.Identifier{
			Scheme:     "nuslOAI",
			Identifier: rc.OAIIdentifier,
		})
	}
	d.Dedupe(doc.DefaultDedupeProps...)
	transformedTotal.Inc()
	return d, nil
}

// FieldGroups returns the handled field groups in table order, for
// rule-gap triage tooling.
func (t *Transformer) FieldGroups() []Rule {
	return t.table
}

// IgnoredCodes returns the field codes the table deliberately does not
// handle.
func (t *Transformer) IgnoredCodes() []string {
	return t.ignored
}
