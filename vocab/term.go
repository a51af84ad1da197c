// Package vocab provides cached read-through access to the repository's
// controlled vocabularies (countries, rights, resource types, funders,
// institutions, ...).
package vocab

// Hierarchy is the ancestor chain of an institutional term, ordered from
// the immediate parent upward.
type Hierarchy struct {
	Ancestors []string `json:"ancestors,omitempty"`
}

// Term is one controlled vocabulary entry.
type Term struct {
	ID                 string              `json:"id"`
	Title              map[string]string   `json:"title,omitempty"`
	Hierarchy          Hierarchy           `json:"hierarchy,omitempty"`
	NonpreferredLabels []map[string]string `json:"nonpreferredLabels,omitempty"`
	Props              map[string]string   `json:"props,omitempty"`
}

// TitleIn returns the term title in the given language, falling back to
// English and then to any available language.
func (t Term) TitleIn(lang string) string {
	if v, ok := t.Title[lang]; ok && v != "" {
		return v
	}
	if v, ok := t.Title["en"]; ok && v != "" {
		return v
	}
	for _, v := range t.Title {
		if v != "" {
			return v
		}
	}
	return ""
}

// project returns a copy of the term restricted to the named attributes.
// The id is always kept.
func (t Term) project(fields []string) Term {
	if len(fields) == 0 {
		return Term{ID: t.ID}
	}
	out := Term{ID: t.ID}
	for _, f := range fields {
		switch f {
		case "id":
		case "title":
			out.Title = t.Title
		case "hierarchy":
			out.Hierarchy = t.Hierarchy
		case "nonpreferredLabels":
			out.NonpreferredLabels = t.NonpreferredLabels
		case "props":
			out.Props = t.Props
		}
	}
	return out
}
