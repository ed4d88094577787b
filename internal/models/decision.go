package models

import "time"

// Verdict is the recorded outcome for one record, stored in the
// "include" column of the screened file.
type Verdict string

const (
	VerdictInclude   Verdict = "yes"
	VerdictExclude   Verdict = "no"
	VerdictUndecided Verdict = ""
)

// Decision column names appended to the screened file.
const (
	ColumnInclude   = "include"
	ColumnReason    = "reason"
	ColumnNote      = "note"
	ColumnDecidedAt = "decided_at"
)

// DecisionColumns lists the columns the exporter manages, in output order.
func DecisionColumns() []string {
	return []string{ColumnInclude, ColumnReason, ColumnNote, ColumnDecidedAt}
}

// Decision captures a single screening outcome. DecidedAt is kept as the
// exact string written to disk so resumed files round-trip unchanged.
type Decision struct {
	Verdict   Verdict
	Reason    string
	Note      string
	DecidedAt string
}

// NewInclude creates an inclusion decision stamped with the current time.
func NewInclude() Decision {
	return Decision{
		Verdict:   VerdictInclude,
		DecidedAt: Timestamp(),
	}
}

// NewExclude creates an exclusion decision with its reason and optional note.
func NewExclude(reason, note string) Decision {
	return Decision{
		Verdict:   VerdictExclude,
		Reason:    reason,
		Note:      note,
		DecidedAt: Timestamp(),
	}
}

// Decided reports whether the decision carries a recorded verdict.
func (d Decision) Decided() bool {
	return d.Verdict == VerdictInclude || d.Verdict == VerdictExclude
}

// ParseVerdict maps a stored cell value to a verdict. Anything other than
// the two recorded forms reads back as undecided.
func ParseVerdict(s string) Verdict {
	switch Verdict(s) {
	case VerdictInclude:
		return VerdictInclude
	case VerdictExclude:
		return VerdictExclude
	default:
		return VerdictUndecided
	}
}

// Timestamp returns the decision timestamp format used on disk.
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
