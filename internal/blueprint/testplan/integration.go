package testplan

import (
	"fmt"

	"github.com/specforge-io/specforge-backend/internal/blueprint/domain"
)

func deriveIntegration(spec *domain.Spec) []Case {
	cases := []Case{}
	if !spec.Tests.Integration {
		return cases
	}

	if spec.API.Type != domain.APINone && len(spec.Entities) > 0 {
		cases = append(cases, Case{
			Name:        "Full CRUD flow",
			Description: "Create, read, update and delete a record through the API.",
			Steps: []string{
				"Create a record via the API",
				"Fetch it and verify the stored fields",
				"Update a field and fetch again",
				"Delete the record and verify it is gone",
			},
			Expected: "Every step succeeds and reads reflect the preceding writes.",
		})
	}

	if spec.Auth.Enabled {
		for _, ep := range spec.API.Endpoints {
			if ep.AuthRequired {
				cases = append(cases, Case{
					Name:        fmt.Sprintf("Access control for %s", ep.Path),
					Description: fmt.Sprintf("%s rejects unauthenticated requests.", ep.Path),
					Steps: []string{
						fmt.Sprintf("Call %s without credentials", ep.Path),
						fmt.Sprintf("Call %s with valid credentials", ep.Path),
					},
					Expected: "The first call returns 401; the second succeeds.",
				})
			}
		}
	}

	// Only the first two entities are inspected here. A relation elsewhere
	// in the list does not produce a case; see the integrity checker for
	// broader structural advice.
	if len(spec.Entities) > 1 {
		first, second := spec.Entities[0], spec.Entities[1]
		for _, rel := range first.Relations {
			if rel.Target == second.Name {
				cases = append(cases, Case{
					Name:        fmt.Sprintf("%s to %s relationship", first.Name, second.Name),
					Description: fmt.Sprintf("Linked %s and %s records stay consistent.", first.Name, second.Name),
					Steps: []string{
						fmt.Sprintf("Create a %s record", second.Name),
						fmt.Sprintf("Create a %s record linked to it", first.Name),
						"Fetch both and verify the link in each direction",
					},
					Expected: "The relation resolves consistently from both sides.",
				})
				break
			}
		}
	}

	return cases
}
