// Package doc defines the normalized metadata document produced by one
// transform pass, shaped for the repository ingestion schema.
package doc

import "encoding/json"

// Ref points at a controlled vocabulary term by id.
type Ref struct {
	ID string `json:"id"`
}

// Multilingual is one language-tagged text value.
type Multilingual struct {
	Lang  string `json:"lang"`
	Value string `json:"value"`
}

// Identifier is a scheme-qualified identifier.
type Identifier struct {
	Scheme     string `json:"scheme"`
	Identifier string `json:"identifier"`
}

// AdditionalTitle is a subtitle, translated or alternative title.
type AdditionalTitle struct {
	Title     Multilingual `json:"title"`
	TitleType string       `json:"titleType"`
}

// Creator is one creator entry.
type Creator struct {
	FullName string `json:"fullName"`
	NameType string `json:"nameType,omitempty"`
}

// Contributor is one contributor entry with its resolved role.
type Contributor struct {
	FullName        string `json:"fullName"`
	NameType        string `json:"nameType,omitempty"`
	ContributorType *Ref   `json:"contributorType,omitempty"`
}

// Subject is one subject heading or keyword.
type Subject struct {
	SubjectScheme      string         `json:"subjectScheme,omitempty"`
	ClassificationCode string         `json:"classificationCode,omitempty"`
	ValueURI           string         `json:"valueURI,omitempty"`
	Subject            []Multilingual `json:"subject,omitempty"`
}

// Location is the resolved venue of an event.
type Location struct {
	Place   string `json:"place,omitempty"`
	Country *Ref   `json:"country,omitempty"`
}

// Event is a conference or similar event the record relates to.
type Event struct {
	EventNameOriginal  string    `json:"eventNameOriginal"`
	EventNameAlternate []string  `json:"eventNameAlternate,omitempty"`
	EventDate          string    `json:"eventDate,omitempty"`
	EventLocation      *Location `json:"eventLocation,omitempty"`
}

// RelatedItem is a host item or other related publication. ParseError is
// set when the issue descriptor could not be parsed and ItemIssue holds
// the raw text.
type RelatedItem struct {
	ItemTitle     string       `json:"itemTitle,omitempty"`
	ItemPIDs      []Identifier `json:"itemPIDs,omitempty"`
	ItemVolume    string       `json:"itemVolume,omitempty"`
	ItemIssue     string       `json:"itemIssue,omitempty"`
	ItemYear      string       `json:"itemYear,omitempty"`
	ItemStartPage string       `json:"itemStartPage,omitempty"`
	ItemEndPage   string       `json:"itemEndPage,omitempty"`
	ParseError    string       `json:"error,omitempty"`
}

// Series is one series membership.
type Series struct {
	SeriesTitle  string `json:"seriesTitle,omitempty"`
	SeriesVolume string `json:"seriesVolume,omitempty"`
}

// Thesis groups the thesis-specific properties.
type Thesis struct {
	DegreeGrantors []Ref    `json:"degreeGrantors,omitempty"`
	StudyFields    []string `json:"studyFields,omitempty"`
	Defended       bool     `json:"defended,omitempty"`
	DateDefended   string   `json:"dateDefended,omitempty"`
}

// FundingReference links a project identifier to its funding agency.
type FundingReference struct {
	ProjectID string `json:"projectID"`
	Funder    Ref    `json:"funder"`
}

// ExternalLocation points at an external copy of the record.
type ExternalLocation struct {
	ExternalLocationURL string `json:"externalLocationURL"`
}

// File describes one binary file linked from the record, handed to the
// output sink alongside the document.
type File struct {
	URL  string `json:"url"`
	Name string `json:"name,omitempty"`
	Note string `json:"note,omitempty"`
}

// Document is the normalized metadata document built by one transform
// pass. List-valued properties preserve first-seen order; uniqueness is
// enforced only by the Dedupe pass, and only for the properties named
// there.
type Document struct {
	Title             string             `json:"title,omitempty"`
	AdditionalTitles  []AdditionalTitle  `json:"additionalTitles,omitempty"`
	Creators          []Creator          `json:"creators,omitempty"`
	Contributors      []Contributor      `json:"contributors,omitempty"`
	Subjects          []Subject          `json:"subjects,omitempty"`
	Abstract          []Multilingual     `json:"abstract,omitempty"`
	Notes             []string           `json:"notes,omitempty"`
	Events            []Event            `json:"events,omitempty"`
	RelatedItems      []RelatedItem      `json:"relatedItems,omitempty"`
	SystemIdentifiers []Identifier       `json:"systemIdentifiers,omitempty"`
	ObjectIdentifiers []Identifier       `json:"objectIdentifiers,omitempty"`
	DateIssued        string             `json:"dateIssued,omitempty"`
	DateModified      string             `json:"dateModified,omitempty"`
	Languages         []Ref              `json:"languages,omitempty"`
	Rights            *Ref               `json:"rights,omitempty"`
	AccessRights      *Ref               `json:"accessRights,omitempty"`
	Accessibility     []Multilingual     `json:"accessibility,omitempty"`
	ResourceType      *Ref               `json:"resourceType,omitempty"`
	Thesis            *Thesis            `json:"thesis,omitempty"`
	FundingReferences []FundingReference `json:"fundingReferences,omitempty"`
	Publishers        []string           `json:"publishers,omitempty"`
	Series            []Series           `json:"series,omitempty"`
	OriginalRecord    string             `json:"originalRecord,omitempty"`
	ExternalLocation  *ExternalLocation  `json:"externalLocation,omitempty"`
	Files             []File             `json:"files,omitempty"`
	Collection        string             `json:"collection,omitempty"`
}

// New creates an empty Document.
func New() *Document {
	return &Document{}
}

// EnsureThesis returns the thesis block, allocating it on first use.
func (d *Document) EnsureThesis() *Thesis {
	if d.Thesis == nil {
		d.Thesis = &Thesis{}
	}
	return d.Thesis
}

// DefaultDedupeProps are the multi-valued properties de-duplicated after
// every transform pass.
var DefaultDedupeProps = []string{"languages", "contributors", "subjects", "additionalTitles"}

// Dedupe removes later items structurally identical to an earlier item in
// each named property, keeping first occurrences. Running it twice yields
// the same document as running it once.
func (d *Document) Dedupe(props ...string) {
	for _, p := range props {
		switch p {
		case "languages":
			d.Languages = dedupe(d.Languages)
		case "contributors":
			d.Contributors = dedupe(d.Contributors)
		case "subjects":
			d.Subjects = dedupe(d.Subjects)
		case "additionalTitles":
			d.AdditionalTitles = dedupe(d.AdditionalTitles)
		case "creators":
			d.Creators = dedupe(d.Creators)
		case "notes":
			d.Notes = dedupe(d.Notes)
		case "publishers":
			d.Publishers = dedupe(d.Publishers)
		case "systemIdentifiers":
			d.SystemIdentifiers = dedupe(d.SystemIdentifiers)
		case "objectIdentifiers":
			d.ObjectIdentifiers = dedupe(d.ObjectIdentifiers)
		}
	}
}

// dedupe keeps the first occurrence of each structurally-equal item.
// Structural equality is judged on the canonical JSON encoding, the same
// equality the sink sees.
func dedupe[T any](items []T) []T {
	if len(items) < 2 {
		return items
	}
	seen := make(map[string]bool, len(items))
	result := items[:0]
	for _, item := range items {
		key, err := json.Marshal(item)
		if err != nil {
			result = append(result, item)
			continue
		}
		if seen[string(key)] {
			continue
		}
		seen[string(key)] = true
		result = append(result, item)
	}
	return result
}
