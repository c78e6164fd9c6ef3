package types

import "time"

type ResultStatus string

const (
	StatusPass    ResultStatus = "pass"
	StatusFail    ResultStatus = "fail"
	StatusSkipped ResultStatus = "skipped"
)

// Reason is a machine-readable failure token. The set is closed: network
// errors that fit no specific token are reported as ReasonUnreachable with
// the raw error preserved in CheckResult.Error.
type Reason string

const (
	ReasonEmptyAddress      Reason = "empty-address"
	ReasonConnectionRefused Reason = "connection-refused"
	ReasonTimeout           Reason = "timeout"
	ReasonUnreachable       Reason = "unreachable"
	ReasonDNSFailure        Reason = "dns-failure"
)

type CheckResult struct {
	Check     string                 `json:"check" yaml:"check"`
	Target    string                 `json:"target,omitempty" yaml:"target,omitempty"`
	Status    ResultStatus           `json:"status" yaml:"status"`
	Reason    Reason                 `json:"reason,omitempty" yaml:"reason,omitempty"`
	Error     string                 `json:"error,omitempty" yaml:"error,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty" yaml:"details,omitempty"`
	StartTime time.Time              `json:"start_time" yaml:"start_time"`
	EndTime   time.Time              `json:"end_time" yaml:"end_time"`
	Elapsed   time.Duration          `json:"elapsed" yaml:"elapsed"`
}

func (r *CheckResult) Succeeded() bool {
	return r.Status == StatusPass
}

// SkippedResult builds a result for a check that was not attempted, e.g. a
// connectivity check when no address was produced upstream.
func SkippedResult(check, target, msg string) *CheckResult {
	now := time.Now()
	return &CheckResult{
		Check:     check,
		Target:    target,
		Status:    StatusSkipped,
		Error:     msg,
		StartTime: now,
		EndTime:   now,
	}
}

// Summary aggregates the results of one verification run.
type Summary struct {
	RunID     string        `json:"run_id" yaml:"run_id"`
	Total     int           `json:"total" yaml:"total"`
	Passed    int           `json:"passed" yaml:"passed"`
	Failed    int           `json:"failed" yaml:"failed"`
	Skipped   int           `json:"skipped" yaml:"skipped"`
	Results   []CheckResult `json:"results" yaml:"results"`
	StartTime time.Time     `json:"start_time" yaml:"start_time"`
	EndTime   time.Time     `json:"end_time" yaml:"end_time"`
	Duration  time.Duration `json:"duration" yaml:"duration"`
}

func NewSummary(runID string) *Summary {
	return &Summary{
		RunID:     runID,
		StartTime: time.Now(),
	}
}

func (s *Summary) Add(result *CheckResult) {
	s.Total++
	switch result.Status {
	case StatusPass:
		s.Passed++
	case StatusSkipped:
		s.Skipped++
	default:
		s.Failed++
	}
	s.Results = append(s.Results, *result)
}

func (s *Summary) Finish() {
	s.EndTime = time.Now()
	s.Duration = s.EndTime.Sub(s.StartTime)
}

func (s *Summary) AllPassed() bool {
	return s.Failed == 0
}
