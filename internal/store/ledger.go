package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/papersift-io/papersift/internal/models"
)

// Ledger holds the decisions for one record set and persists them
// write-through: Record rewrites the screened file atomically before it
// returns, so an acknowledged decision survives process death.
type Ledger struct {
	set       *models.RecordSet
	path      string
	encoding  string
	decisions map[string]models.Decision
	trail     []string
}

// LedgerOptions controls how a ledger binds to its output path.
type LedgerOptions struct {
	// Encoding used for both resuming and writing the screened file.
	Encoding string

	// FromScratch discards a prior screened file at the output path
	// instead of resuming from it.
	FromScratch bool
}

// OpenLedger binds a ledger for set to the screened file at path.
// Decisions already present in the input columns are honored, and a
// prior screened file at path is resumed unless FromScratch is set.
// Nothing is written until the first Record call.
func OpenLedger(set *models.RecordSet, path string, opts LedgerOptions) (*Ledger, error) {
	l := &Ledger{
		set:       set,
		path:      path,
		encoding:  opts.Encoding,
		decisions: DecisionsFrom(set),
	}
	if opts.FromScratch || filepath.Clean(path) == filepath.Clean(set.Path) {
		return l, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, &ResumeError{Path: path, Err: err}
	}
	if err := l.resume(); err != nil {
		return nil, err
	}
	return l, nil
}

// resume overlays decisions from the prior screened file. Prior
// decisions win over input-borne ones for the same identity.
func (l *Ledger) resume() error {
	prior, err := Load(l.path, LoadOptions{
		KeyColumn:       l.set.KeyColumn,
		RequiredColumns: []string{models.ColumnInclude, models.ColumnReason},
		Encoding:        l.encoding,
	})
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			return &ResumeError{Path: l.path, Err: pe.Err}
		}
		return &ResumeError{Path: l.path, Err: err}
	}
	if l.set.KeyColumn == "" && prior.Len() != l.set.Len() {
		return &ResumeError{Path: l.path, Err: fmt.Errorf(
			"has %d data rows but the input has %d", prior.Len(), l.set.Len())}
	}

	known := make(map[string]bool, l.set.Len())
	for _, id := range l.set.Identities() {
		known[id] = true
	}
	for id, d := range DecisionsFrom(prior) {
		if known[id] {
			l.decisions[id] = d
		}
	}
	return nil
}

// DecisionsFrom extracts recorded decisions out of a set's own decision
// columns. Rows without a recognized verdict are left out; their cells
// round-trip through export untouched instead.
func DecisionsFrom(set *models.RecordSet) map[string]models.Decision {
	out := make(map[string]models.Decision)
	inc := set.ColumnIndex(models.ColumnInclude)
	if inc < 0 {
		return out
	}
	reason := set.ColumnIndex(models.ColumnReason)
	note := set.ColumnIndex(models.ColumnNote)
	decidedAt := set.ColumnIndex(models.ColumnDecidedAt)
	for _, rec := range set.Records {
		verdict := models.ParseVerdict(rec.Value(inc))
		if verdict == models.VerdictUndecided {
			continue
		}
		out[rec.Identity] = models.Decision{
			Verdict:   verdict,
			Reason:    rec.Value(reason),
			Note:      rec.Value(note),
			DecidedAt: rec.Value(decidedAt),
		}
	}
	return out
}

// Record upserts the decision for identity and flushes the screened
// file before returning. On write failure the in-memory ledger still
// reflects the decision, but the error must be treated as fatal.
func (l *Ledger) Record(identity string, d models.Decision) error {
	l.decisions[identity] = d
	if err := l.Flush(); err != nil {
		return err
	}
	l.trail = append(l.trail, fmt.Sprintf("%s  %s  %s", d.DecidedAt, identity, describe(d)))
	return nil
}

func describe(d models.Decision) string {
	if d.Verdict == models.VerdictInclude {
		return "include"
	}
	if d.Note != "" {
		return fmt.Sprintf("exclude (%s: %s)", d.Reason, d.Note)
	}
	return fmt.Sprintf("exclude (%s)", d.Reason)
}

// Get returns the recorded decision for identity, if any.
func (l *Ledger) Get(identity string) (models.Decision, bool) {
	d, ok := l.decisions[identity]
	return d, ok
}

// Pending returns undecided identities in original record order.
func (l *Ledger) Pending() []string {
	var pending []string
	for _, id := range l.set.Identities() {
		if d, ok := l.decisions[id]; ok && d.Decided() {
			continue
		}
		pending = append(pending, id)
	}
	return pending
}

// Count returns the number of recorded decisions.
func (l *Ledger) Count() int {
	return len(l.decisions)
}

// Stats tallies the ledger against its record set.
func (l *Ledger) Stats() *models.Stats {
	s := models.NewStats(l.set.Len())
	for _, d := range l.decisions {
		s.Add(d)
	}
	return s
}

// Path returns the screened file location this ledger writes to.
func (l *Ledger) Path() string {
	return l.path
}

// Trail returns one line per decision recorded this session.
func (l *Ledger) Trail() []string {
	return l.trail
}

// Flush rewrites the screened file from the current ledger state.
func (l *Ledger) Flush() error {
	return Write(l.set, l.decisions, l.path, l.encoding)
}
