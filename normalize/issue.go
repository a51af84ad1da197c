package normalize

import (
	"embed"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

//go:embed tables/issue_exceptions.yaml
var embeddedTables embed.FS

// IssueParts is the structured form of a host-item issue descriptor.
type IssueParts struct {
	Volume    string `yaml:"volume,omitempty" json:"itemVolume,omitempty"`
	Issue     string `yaml:"issue,omitempty" json:"itemIssue,omitempty"`
	Year      string `yaml:"year,omitempty" json:"itemYear,omitempty"`
	StartPage string `yaml:"startPage,omitempty" json:"itemStartPage,omitempty"`
	EndPage   string `yaml:"endPage,omitempty" json:"itemEndPage,omitempty"`
}

// IssueExceptions maps known-unparsable issue strings to their curated
// structured result. This is a data-quality patch, not an algorithm: new
// unseen formats still fail to parse and the caller records the raw text
// with an error marker instead.
type IssueExceptions map[string]IssueParts

// DefaultIssueExceptions returns the embedded curated table.
func DefaultIssueExceptions() IssueExceptions {
	data, err := embeddedTables.ReadFile("tables/issue_exceptions.yaml")
	if err != nil {
		return IssueExceptions{}
	}
	exceptions, err := parseIssueExceptions(data)
	if err != nil {
		return IssueExceptions{}
	}
	return exceptions
}

// LoadIssueExceptions reads a curated exception table from a YAML file.
func LoadIssueExceptions(path string) (IssueExceptions, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading issue exceptions: %w", err)
	}
	return parseIssueExceptions(data)
}

func parseIssueExceptions(data []byte) (IssueExceptions, error) {
	var exceptions IssueExceptions
	if err := yaml.Unmarshal(data, &exceptions); err != nil {
		return nil, fmt.Errorf("parsing issue exceptions YAML: %w", err)
	}
	return exceptions, nil
}

var (
	bareIssuePattern   = regexp.MustCompile(`^\d+$|^\d+[-–]\d+$`)
	issueYearPattern   = regexp.MustCompile(`^(\d+)/(\d+)$`)
	numberPattern      = regexp.MustCompile(`^No\.\s+(\d+)$`)
	numberYearPattern  = regexp.MustCompile(`^No\.\s+(\d+),\s+(\d+)$`)
)

// ParseItemIssue parses a host-item issue descriptor. Recognized shapes,
// in order: a bare issue number or range, "issue/year", "No. N",
// "No. N, year", then the curated exception table. Nil means the text
// could not be parsed; the caller stores the raw text plus an explicit
// error marker rather than failing the record.
func ParseItemIssue(text string, exceptions IssueExceptions) *IssueParts {
	if bareIssuePattern.MatchString(text) {
		return &IssueParts{Issue: text}
	}
	if m := issueYearPattern.FindStringSubmatch(text); m != nil {
		return &IssueParts{Issue: m[1], Year: m[2]}
	}
	if m := numberPattern.FindStringSubmatch(text); m != nil {
		return &IssueParts{Issue: m[1]}
	}
	if m := numberYearPattern.FindStringSubmatch(text); m != nil {
		return &IssueParts{Issue: m[1], Year: m[2]}
	}
	if parts, ok := exceptions[text]; ok {
		return &parts
	}
	return nil
}
