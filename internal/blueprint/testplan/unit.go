package testplan

import (
	"fmt"

	"github.com/specforge-io/specforge-backend/internal/blueprint/domain"
)

func deriveUnit(spec *domain.Spec) []Case {
	cases := []Case{}

	if spec.Auth.Enabled {
		cases = append(cases, Case{
			Name:        "Login with valid credentials",
			Description: "A registered user can sign in with correct credentials.",
			Steps: []string{
				"Create a user with known credentials",
				"Call the login function with those credentials",
			},
			Expected: "Login succeeds and a session or token is returned.",
		})
		cases = append(cases, Case{
			Name:        "Login with invalid credentials",
			Description: "Sign-in is rejected when the password is wrong.",
			Steps: []string{
				"Create a user with known credentials",
				"Call the login function with an incorrect password",
			},
			Expected: "Login fails with an authentication error and no session is created.",
		})
		if hasMethod(spec.Auth.Methods, "OAuth") {
			cases = append(cases, Case{
				Name:        "OAuth sign-in flow",
				Description: "The OAuth callback exchanges the provider code for a local session.",
				Steps: []string{
					"Simulate a successful OAuth provider callback",
					"Verify the returned profile is linked to a local account",
				},
				Expected: "A local session is established for the OAuth identity.",
			})
		}
	}

	for _, e := range spec.Entities {
		cases = append(cases, Case{
			Name:        fmt.Sprintf("%s validation", e.Name),
			Description: fmt.Sprintf("Required and typed fields of %s are validated on write.", e.Name),
			Steps: []string{
				fmt.Sprintf("Build a %s payload with a missing required field", e.Name),
				"Submit it to the validation layer",
			},
			Expected: "Validation fails and names the offending field.",
		})
		// First unique field only; remaining unique fields are assumed to
		// share the same enforcement path.
		for _, f := range e.Fields {
			if f.Unique {
				cases = append(cases, Case{
					Name:        fmt.Sprintf("%s unique %s", e.Name, f.Name),
					Description: fmt.Sprintf("Duplicate %s values are rejected for %s.", f.Name, e.Name),
					Steps: []string{
						fmt.Sprintf("Create a %s with a given %s", e.Name, f.Name),
						fmt.Sprintf("Create a second %s with the same %s", e.Name, f.Name),
					},
					Expected: "The second write fails with a uniqueness violation.",
				})
				break
			}
		}
	}

	if spec.API.Type == domain.APIRest {
		for _, ep := range spec.API.Endpoints {
			if hasMethod(ep.Methods, "GET") {
				cases = append(cases, Case{
					Name:        fmt.Sprintf("GET %s", ep.Path),
					Description: fmt.Sprintf("The %s endpoint returns data for a valid request.", ep.Path),
					Steps: []string{
						fmt.Sprintf("Send GET %s", ep.Path),
					},
					Expected: "Responds 200 with the expected payload shape.",
				})
			}
		}
		for _, ep := range spec.API.Endpoints {
			if hasMethod(ep.Methods, "POST") {
				cases = append(cases, Case{
					Name:        fmt.Sprintf("POST %s", ep.Path),
					Description: fmt.Sprintf("The %s endpoint accepts a valid create request.", ep.Path),
					Steps: []string{
						fmt.Sprintf("Send POST %s with a valid body", ep.Path),
					},
					Expected: "Responds 201 (or 200) and the resource is created.",
				})
			}
		}
	}

	return cases
}
