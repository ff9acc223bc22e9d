package integrity

import (
	"github.com/specforge-io/specforge-backend/internal/blueprint/domain"
)

// Rule pairs a predicate with the issue it raises. Severity and Bucket are
// independent attributes: the table below is the contract, codes included,
// and must not be reordered or renamed.
type Rule struct {
	Code       string
	Severity   Severity
	Bucket     Bucket
	When       func(*domain.Spec) bool
	Message    string
	Suggestion string
}

func hasMethod(methods []string, name string) bool {
	for _, m := range methods {
		if m == name {
			return true
		}
	}
	return false
}

func anyRelations(entities []domain.Entity) bool {
	for _, e := range entities {
		if len(e.Relations) > 0 {
			return true
		}
	}
	return false
}

// ruleTable holds every integrity check. Each predicate reads only the
// spec, fires at most once, and is false for any absent nested value.
var ruleTable = []Rule{
	{
		Code:     "AUTH_NO_ROLES",
		Severity: SeverityError,
		Bucket:   BucketConflicts,
		When: func(s *domain.Spec) bool {
			return s.Auth.Enabled && len(s.Auth.Roles) == 0
		},
		Message:    "Authentication is enabled but no roles are defined.",
		Suggestion: "Add at least one role (for example \"user\") so generated access checks have something to grant.",
	},
	{
		Code:     "AUTH_NO_POLICY",
		Severity: SeverityWarning,
		Bucket:   BucketSuggestions,
		When: func(s *domain.Spec) bool {
			return s.Auth.Enabled &&
				hasMethod(s.Auth.Methods, "email/password") &&
				(s.Auth.Security == nil || s.Auth.Security.PasswordPolicy == nil)
		},
		Message:    "Email/password sign-in is enabled without a password policy.",
		Suggestion: "Define a password policy (minimum length, character classes) to avoid weak credentials.",
	},
	{
		Code:     "API_NO_BACKEND",
		Severity: SeverityWarning,
		Bucket:   BucketWarnings,
		When: func(s *domain.Spec) bool {
			return s.API.Type != domain.APINone && s.Stack.Type == domain.StackFrontend
		},
		Message:    "An API is declared but the stack is frontend-only.",
		Suggestion: "Switch to a fullstack stack or point the frontend at an existing external API.",
	},
	{
		Code:     "FEATURES_NO_ENTITIES",
		Severity: SeverityWarning,
		Bucket:   BucketSuggestions,
		When: func(s *domain.Spec) bool {
			return len(s.Features) > 0 && len(s.Entities) == 0
		},
		Message:    "Features are defined but the project has no entities.",
		Suggestion: "Model the data your features operate on as entities.",
	},
	{
		Code:     "E2E_NO_API",
		Severity: SeverityWarning,
		Bucket:   BucketSuggestions,
		When: func(s *domain.Spec) bool {
			return s.Tests.E2E && s.API.Type == domain.APINone
		},
		Message:    "End-to-end tests are requested but there is no API to exercise.",
		Suggestion: "Add a REST or GraphQL API, or drop the e2e test preference.",
	},
	{
		Code:     "ENTITIES_NO_BACKEND",
		Severity: SeverityWarning,
		Bucket:   BucketWarnings,
		When: func(s *domain.Spec) bool {
			return len(s.Entities) > 1 && s.Stack.Type == domain.StackFrontend
		},
		Message:    "Multiple entities are modelled but the stack has no backend to persist them.",
		Suggestion: "Use a fullstack stack or keep entity state client-side only.",
	},
	{
		Code:     "RELATIONS_NO_BACKEND",
		Severity: SeverityWarning,
		Bucket:   BucketWarnings,
		When: func(s *domain.Spec) bool {
			return anyRelations(s.Entities) && s.Stack.Type == domain.StackFrontend
		},
		Message:    "Entity relations are declared but a frontend-only stack cannot enforce them.",
		Suggestion: "Relations need a backend data layer; consider a fullstack stack.",
	},
	{
		Code:     "MICROSERVICES_MINIMAL",
		Severity: SeverityWarning,
		Bucket:   BucketSuggestions,
		When: func(s *domain.Spec) bool {
			return s.Stack.Architecture == domain.ArchMicroservices && len(s.Entities) < 2
		},
		Message:    "A microservices architecture with fewer than two entities is unlikely to pay off.",
		Suggestion: "Start with a monolith and split services once the domain grows.",
	},
	{
		Code:     "DATABASE_NOT_IMPLEMENTED",
		Severity: SeverityWarning,
		Bucket:   BucketSuggestions,
		When: func(s *domain.Spec) bool {
			return s.Stack.Database != nil && s.Stack.Database.Type != ""
		},
		Message:    "A database is configured, but generated projects currently ship without a persistence layer.",
		Suggestion: "Treat the generated data access code as a starting point and wire the database manually.",
	},
	{
		Code:     "RATE_LIMIT_NO_AUTH",
		Severity: SeverityWarning,
		Bucket:   BucketSuggestions,
		When: func(s *domain.Spec) bool {
			return s.Auth.Security != nil && s.Auth.Security.RateLimiting && !s.Auth.Enabled
		},
		Message:    "Rate limiting is enabled without authentication, so limits can only be keyed by IP.",
		Suggestion: "Enable authentication to rate-limit per account instead of per address.",
	},
	{
		Code:     "GRAPHQL_NO_BACKEND",
		Severity: SeverityError,
		Bucket:   BucketConflicts,
		When: func(s *domain.Spec) bool {
			return s.API.Type == domain.APIGraphQL && s.Stack.Type == domain.StackFrontend
		},
		Message:    "A GraphQL API requires a backend; the stack is frontend-only.",
		Suggestion: "Choose a fullstack or backend stack to host the GraphQL schema.",
	},
	{
		Code:     "NO_TESTS_WITH_CI",
		Severity: SeverityWarning,
		Bucket:   BucketSuggestions,
		When: func(s *domain.Spec) bool {
			return !s.Tests.Unit && !s.Tests.Integration && !s.Tests.E2E && s.Deployment.CI.Enabled
		},
		Message:    "CI is enabled but no automated tests are requested, so the pipeline has nothing to run.",
		Suggestion: "Enable at least unit tests to give CI a meaningful gate.",
	},
}
