// Package rules drives the record-to-document transform: an ordered
// table of field rules, a dispatcher that feeds raw field values to the
// rule handlers, and the orchestrator that runs a whole record through
// the table.
package rules

import (
	"context"
	"strings"

	"github.com/lehigh-university-libraries/marc-transform/doc"
	"github.com/lehigh-university-libraries/marc-transform/marc"
)

// Handler processes one value tuple of a rule's field group. For
// unpaired rules the tuple has a single element. A missing repetition
// inside a paired tuple arrives as an empty string.
type Handler func(ctx context.Context, d *doc.Document, rec marc.Record, values []string) error

// Rule binds a field group to its handler. Paired groups are read
// positionally: the Nth occurrence of each member forms one tuple.
// Unique rules process each distinct tuple once, keeping first-seen
// order.
type Rule struct {
	Fields  []string
	Paired  bool
	Unique  bool
	Handler Handler
}

// apply dispatches one rule against a record. A group entirely absent
// from the record is skipped silently; the handler is not invoked.
func (t *Transformer) apply(ctx context.Context, r Rule, d *doc.Document, rec marc.Record) error {
	present := false
	for _, f := range r.Fields {
		if rec.Has(f) {
			present = true
			break
		}
	}
	if !present {
		return nil
	}

	if !r.Paired {
		seen := map[string]bool{}
		for _, f := range r.Fields {
			for _, v := range rec.All(f) {
				if r.Unique {
					if seen[v] {
						continue
					}
					seen[v] = true
				}
				if err := r.Handler(ctx, d, rec, []string{v}); err != nil {
					return err
				}
			}
		}
		return nil
	}

	// Tuple count equals the longest member sequence; shorter members
	// contribute empty slots, never drop the tuple.
	n := 0
	for _, f := range r.Fields {
		if l := len(rec.All(f)); l > n {
			n = l
		}
	}
	seen := map[string]bool{}
	for i := 0; i < n; i++ {
		tuple := make([]string, len(r.Fields))
		for j, f := range r.Fields {
			if vals := rec.All(f); i < len(vals) {
				tuple[j] = vals[i]
			}
		}
		if r.Unique {
			key := strings.Join(tuple, "\x1f")
			if seen[key] {
				continue
			}
			seen[key] = true
		}
		if err := r.Handler(ctx, d, rec, tuple); err != nil {
			return err
		}
	}
	return nil
}
