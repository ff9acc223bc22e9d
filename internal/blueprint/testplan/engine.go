package testplan

import (
	"github.com/specforge-io/specforge-backend/internal/blueprint/domain"
)

// Derive projects a spec into test-case recommendations. Same guarantees
// as integrity.Evaluate: pure, deterministic, no I/O, total over any
// well-typed spec. The four buckets are derived independently; they only
// share the input.
func Derive(spec *domain.Spec) Plan {
	plan := Plan{
		UnitTests:        []Case{},
		IntegrationTests: []Case{},
		E2ETests:         []Case{},
		ManualChecks:     []Case{},
	}
	if spec == nil {
		return plan
	}

	plan.UnitTests = deriveUnit(spec)
	plan.IntegrationTests = deriveIntegration(spec)
	plan.E2ETests = deriveE2E(spec)
	plan.ManualChecks = deriveManual(spec)
	return plan
}

func hasMethod(methods []string, name string) bool {
	for _, m := range methods {
		if m == name {
			return true
		}
	}
	return false
}
