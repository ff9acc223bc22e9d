package testplan

import (
	"fmt"

	"github.com/specforge-io/specforge-backend/internal/blueprint/domain"
)

func deriveE2E(spec *domain.Spec) []Case {
	cases := []Case{}
	// Backend-only projects have no browser surface to drive.
	if !spec.Tests.E2E || spec.Stack.Type == domain.StackBackend {
		return cases
	}

	if spec.Auth.Enabled {
		cases = append(cases, Case{
			Name:        "Registration and login journey",
			Description: "A new visitor can register, sign out and sign back in.",
			Steps: []string{
				"Open the app as a new visitor",
				"Register an account",
				"Sign out",
				"Sign in with the new credentials",
			},
			Expected: "The visitor ends signed in with their own account.",
		})
	}

	for _, f := range spec.Features {
		cases = append(cases, Case{
			Name:        fmt.Sprintf("%s workflow", f.Name),
			Description: fmt.Sprintf("The %s feature works end to end through the UI.", f.Name),
			Steps: []string{
				fmt.Sprintf("Navigate to the %s feature", f.Name),
				"Complete its primary workflow",
			},
			Expected: "The workflow completes and the result is visible in the UI.",
		})
	}

	if len(spec.Features) > 0 {
		cases = append(cases, Case{
			Name:        "Main user journey",
			Description: "The primary path through the app works from landing to the core feature.",
			Steps: []string{
				"Open the app",
				"Follow the primary navigation to the core feature",
				"Complete one full round trip",
			},
			Expected: "No errors along the primary path; state survives a page reload.",
		})
	}

	return cases
}
