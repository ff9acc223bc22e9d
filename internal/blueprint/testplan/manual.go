package testplan

import (
	"fmt"

	"github.com/specforge-io/specforge-backend/internal/blueprint/domain"
)

func deriveManual(spec *domain.Spec) []Case {
	cases := []Case{}
	if !spec.Tests.ManualChecklists {
		return cases
	}

	cases = append(cases, Case{
		Name:        "Cross-browser check",
		Description: "The app renders and behaves correctly in the major browsers.",
		Steps: []string{
			"Open the app in Chrome, Firefox and Safari",
			"Walk through the primary screens in each",
		},
		Expected: "No layout breakage or behavioural differences between browsers.",
	})
	cases = append(cases, Case{
		Name:        "Performance baseline",
		Description: "Initial load and primary interactions feel responsive.",
		Steps: []string{
			"Load the app on a cold cache",
			"Time the first contentful paint and one primary interaction",
		},
		Expected: "Load and interaction times are within the team's agreed budget.",
	})
	if spec.Auth.Enabled {
		cases = append(cases, Case{
			Name:        "Security audit",
			Description: "Authentication and session handling hold up to a manual review.",
			Steps: []string{
				"Review token storage and expiry handling",
				"Attempt to reach protected screens while signed out",
				"Check that role restrictions match the permission map",
			},
			Expected: "No protected resource is reachable without the required role.",
		})
	}
	cases = append(cases, Case{
		Name:        "Accessibility check",
		Description: "Core flows are usable with keyboard and screen reader.",
		Steps: []string{
			"Navigate the primary flow using only the keyboard",
			"Spot-check labels and contrast with an accessibility tool",
		},
		Expected: "All interactive elements are reachable and labelled.",
	})

	for _, e := range spec.Entities {
		cases = append(cases, Case{
			Name:        fmt.Sprintf("%s data integrity", e.Name),
			Description: fmt.Sprintf("Stored %s records match what was entered.", e.Name),
			Steps: []string{
				fmt.Sprintf("Create a %s through the UI with every field populated", e.Name),
				"Reload and compare the displayed values with the input",
			},
			Expected: "No field is lost, truncated or reformatted unexpectedly.",
		})
	}

	return cases
}
