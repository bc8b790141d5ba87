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
	Agents int
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	registry RegistrySizer
	source   SourceChecker
}

// New creates a Service. source can be nil (agents supplied in-process).
func New(registry RegistrySizer, source SourceChecker) *Service {
	return &Service{registry: registry, source: source}
}

// Check runs health checks against all components.
// An empty registry is reported as an error: every query would return nothing.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	agents := s.registry.Size()
	if agents > 0 {
		checks["registry"] = CheckOK
	} else {
		checks["registry"] = CheckError
	}

	if s.source != nil {
		if err := s.source.Check(ctx); err != nil {
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

	return Report{Status: status, Agents: agents, Checks: checks}
}
