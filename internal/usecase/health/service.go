// Package health aggregates component health checks.
package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	source     SourcePinger
	corpusSize int
}

// New creates a Service. source can be nil.
func New(source SourcePinger, corpusSize int) *Service {
	return &Service{source: source, corpusSize: corpusSize}
}

// Check runs health checks against all components.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	if s.corpusSize > 0 {
		checks["corpus"] = CheckOK
	} else {
		checks["corpus"] = CheckError
	}

	if s.source != nil {
		if err := s.source.Ping(ctx); err != nil {
			checks["source"] = CheckError
		} else {
			checks["source"] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}
