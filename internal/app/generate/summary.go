package generate

import "time"

// Status is the result of processing one theme.
type Status string

const (
	StatusGenerated Status = "generated"
	StatusUnchanged Status = "unchanged"
	StatusDrifted   Status = "drifted"
	StatusFailed    Status = "failed"
)

// Outcome describes what happened to a single theme.
type Outcome struct {
	Name     string
	Status   Status
	Path     string
	Diff     string
	Issues   []string
	Err      error
	Duration time.Duration
}

// Summary aggregates a batch run. Outcomes follow the request order.
type Summary struct {
	Check      bool
	Total      int
	Successful int
	Failed     int
	Drifted    int
	Failures   []string
	Removed    []string
	Outcomes   []Outcome
}

func (s *Summary) add(o Outcome) {
	s.Total++
	s.Outcomes = append(s.Outcomes, o)
	switch o.Status {
	case StatusFailed:
		s.Failed++
		s.Failures = append(s.Failures, o.Name)
	case StatusDrifted:
		s.Drifted++
	default:
		s.Successful++
	}
}

// OK reports whether every theme succeeded and, in check mode, matched
// the file on disk.
func (s Summary) OK() bool {
	return s.Failed == 0 && s.Drifted == 0
}
