package models

// Stats summarizes screening progress over one ledger.
type Stats struct {
	Total    int
	Included int
	Excluded int
	Pending  int
	Reasons  map[string]int
}

// NewStats creates an empty tally for a set of the given size.
func NewStats(total int) *Stats {
	return &Stats{
		Total:   total,
		Pending: total,
		Reasons: make(map[string]int),
	}
}

// Add counts one decision. Undecided entries do not change the tally.
func (s *Stats) Add(d Decision) {
	switch d.Verdict {
	case VerdictInclude:
		s.Included++
		s.Pending--
	case VerdictExclude:
		s.Excluded++
		s.Pending--
		if d.Reason != "" {
			s.Reasons[d.Reason]++
		}
	}
}

// Decided returns the number of records carrying a verdict.
func (s *Stats) Decided() int {
	return s.Included + s.Excluded
}

// Fraction returns progress in [0, 1] for the progress bar.
func (s *Stats) Fraction() float64 {
	if s.Total == 0 {
		return 1
	}
	return float64(s.Decided()) / float64(s.Total)
}
