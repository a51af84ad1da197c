package marc

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrDone is returned by a Source once every record has been yielded.
var ErrDone = errors.New("no more records")

// Source yields harvested records one at a time.
type Source interface {
	Next() (Record, Context, error)
}

// JSONSource reads records from a JSON-lines stream. Each line holds one
// object with a "record" field-code map and a "context" object.
type JSONSource struct {
	scanner *bufio.Scanner
	line    int
}

// NewJSONSource wraps the reader in a JSON-lines record source.
func NewJSONSource(r io.Reader) *JSONSource {
	sc := bufio.NewScanner(r)
	// Records with long abstracts routinely exceed the default token size.
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	return &JSONSource{scanner: sc}
}

// Next returns the next record in the stream, or ErrDone at EOF.
func (s *JSONSource) Next() (Record, Context, error) {
	for s.scanner.Scan() {
		s.line++
		line := s.scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var entry struct {
			Record  Record  `json:"record"`
			Context Context `json:"context"`
		}
		if err := json.Unmarshal(line, &entry); err != nil {
			return nil, Context{}, fmt.Errorf("line %d: decoding record: %w", s.line, err)
		}
		return entry.Record, entry.Context, nil
	}
	if err := s.scanner.Err(); err != nil {
		return nil, Context{}, fmt.Errorf("reading records: %w", err)
	}
	return nil, Context{}, ErrDone
}
