package integrity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/specforge-io/specforge-backend/internal/blueprint/domain"
)

func baseSpec() *domain.Spec {
	return &domain.Spec{
		Meta: domain.Meta{
			ProjectName: "Taskboard",
			Summary:     "A small task tracking app",
		},
		Stack: domain.Stack{Type: domain.StackFullstack},
		API:   domain.API{Type: domain.APINone},
	}
}

func codes(issues []Issue) []string {
	out := make([]string, 0, len(issues))
	for _, i := range issues {
		out = append(out, i.Code)
	}
	return out
}

func findIssue(issues []Issue, code string) *Issue {
	for i := range issues {
		if issues[i].Code == code {
			return &issues[i]
		}
	}
	return nil
}

func TestEvaluate_EmptySpecHasNoFindings(t *testing.T) {
	res := Evaluate(baseSpec())
	assert.Empty(t, res.Conflicts)
	assert.Empty(t, res.Warnings)
	assert.Empty(t, res.Suggestions)
	assert.True(t, res.Valid())
}

func TestEvaluate_NilSpec(t *testing.T) {
	res := Evaluate(nil)
	assert.True(t, res.Valid())
	assert.Empty(t, res.AllIssues())
}

func TestEvaluate_Deterministic(t *testing.T) {
	spec := baseSpec()
	spec.Auth = domain.Auth{Enabled: true, Methods: []string{"email/password"}}
	spec.Tests.E2E = true
	spec.Deployment.CI.Enabled = true

	first, err := json.Marshal(Evaluate(spec))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := json.Marshal(Evaluate(spec))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}

func TestAuthNoRoles(t *testing.T) {
	t.Run("fires when auth has no roles", func(t *testing.T) {
		spec := baseSpec()
		spec.Auth = domain.Auth{Enabled: true}

		res := Evaluate(spec)
		issue := findIssue(res.Conflicts, "AUTH_NO_ROLES")
		require.NotNil(t, issue)
		assert.Equal(t, SeverityError, issue.Severity)
		assert.False(t, res.Valid())
	})

	t.Run("absent once a role exists", func(t *testing.T) {
		spec := baseSpec()
		spec.Auth = domain.Auth{Enabled: true, Roles: []string{"admin"}}

		res := Evaluate(spec)
		assert.Nil(t, findIssue(res.Conflicts, "AUTH_NO_ROLES"))
		assert.True(t, res.Valid())
	})
}

func TestAuthNoPolicy_BucketAndSeverityDiffer(t *testing.T) {
	spec := baseSpec()
	spec.Auth = domain.Auth{
		Enabled: true,
		Roles:   []string{"user"},
		Methods: []string{"email/password"},
	}

	res := Evaluate(spec)
	issue := findIssue(res.Suggestions, "AUTH_NO_POLICY")
	require.NotNil(t, issue, "warning-severity issue routes to the suggestions bucket")
	assert.Equal(t, SeverityWarning, issue.Severity)
	assert.Nil(t, findIssue(res.Warnings, "AUTH_NO_POLICY"))

	t.Run("quiet once a policy exists", func(t *testing.T) {
		spec.Auth.Security = &domain.Security{PasswordPolicy: &domain.PasswordPolicy{MinLength: 12}}
		res := Evaluate(spec)
		assert.Nil(t, findIssue(res.Suggestions, "AUTH_NO_POLICY"))
	})
}

func TestAPINoBackend(t *testing.T) {
	spec := baseSpec()
	spec.Stack.Type = domain.StackFrontend
	spec.API.Type = domain.APIRest

	res := Evaluate(spec)
	issue := findIssue(res.Warnings, "API_NO_BACKEND")
	require.NotNil(t, issue)
	assert.Equal(t, SeverityWarning, issue.Severity)
}

func TestFeaturesNoEntities(t *testing.T) {
	spec := baseSpec()
	spec.Features = []domain.Feature{{ID: "f1", Name: "Tasks"}}

	res := Evaluate(spec)
	assert.NotNil(t, findIssue(res.Suggestions, "FEATURES_NO_ENTITIES"))

	spec.Entities = []domain.Entity{{Name: "Task"}}
	res = Evaluate(spec)
	assert.Nil(t, findIssue(res.Suggestions, "FEATURES_NO_ENTITIES"))
}

func TestE2ENoAPI(t *testing.T) {
	spec := baseSpec()
	spec.Tests.E2E = true
	spec.API.Type = domain.APINone

	res := Evaluate(spec)
	assert.NotNil(t, findIssue(res.Suggestions, "E2E_NO_API"))
}

func TestFrontendStructureWarnings(t *testing.T) {
	spec := baseSpec()
	spec.Stack.Type = domain.StackFrontend
	spec.Entities = []domain.Entity{
		{Name: "Task", Relations: []domain.Relation{{Type: domain.RelationOneToMany, Target: "User"}}},
		{Name: "User"},
	}

	res := Evaluate(spec)
	assert.NotNil(t, findIssue(res.Warnings, "ENTITIES_NO_BACKEND"))
	assert.NotNil(t, findIssue(res.Warnings, "RELATIONS_NO_BACKEND"))
}

func TestMicroservicesMinimal(t *testing.T) {
	spec := baseSpec()
	spec.Stack.Architecture = domain.ArchMicroservices
	spec.Entities = []domain.Entity{{Name: "Task"}}

	res := Evaluate(spec)
	assert.NotNil(t, findIssue(res.Suggestions, "MICROSERVICES_MINIMAL"))

	spec.Entities = append(spec.Entities, domain.Entity{Name: "User"})
	res = Evaluate(spec)
	assert.Nil(t, findIssue(res.Suggestions, "MICROSERVICES_MINIMAL"))
}

func TestDatabaseNotImplemented(t *testing.T) {
	spec := baseSpec()
	res := Evaluate(spec)
	assert.Nil(t, findIssue(res.Suggestions, "DATABASE_NOT_IMPLEMENTED"), "nil database is a valid state")

	spec.Stack.Database = &domain.Database{Type: "postgresql"}
	res = Evaluate(spec)
	assert.NotNil(t, findIssue(res.Suggestions, "DATABASE_NOT_IMPLEMENTED"))
}

func TestRateLimitNoAuth(t *testing.T) {
	spec := baseSpec()
	spec.Auth.Security = &domain.Security{RateLimiting: true}

	res := Evaluate(spec)
	assert.NotNil(t, findIssue(res.Suggestions, "RATE_LIMIT_NO_AUTH"))

	spec.Auth.Enabled = true
	spec.Auth.Roles = []string{"user"}
	res = Evaluate(spec)
	assert.Nil(t, findIssue(res.Suggestions, "RATE_LIMIT_NO_AUTH"))
}

func TestGraphQLNoBackend(t *testing.T) {
	spec := baseSpec()
	spec.Stack.Type = domain.StackFrontend
	spec.API.Type = domain.APIGraphQL

	res := Evaluate(spec)
	issue := findIssue(res.Conflicts, "GRAPHQL_NO_BACKEND")
	require.NotNil(t, issue)
	assert.Equal(t, SeverityError, issue.Severity)
	assert.False(t, IsValid(spec))
}

func TestNoTestsWithCI(t *testing.T) {
	spec := baseSpec()
	spec.Deployment.CI.Enabled = true

	res := Evaluate(spec)
	assert.NotNil(t, findIssue(res.Suggestions, "NO_TESTS_WITH_CI"))

	spec.Tests.Unit = true
	res = Evaluate(spec)
	assert.Nil(t, findIssue(res.Suggestions, "NO_TESTS_WITH_CI"))
}

func TestAllIssues_LengthAndOrder(t *testing.T) {
	spec := baseSpec()
	spec.Stack.Type = domain.StackFrontend
	spec.API.Type = domain.APIGraphQL // conflict + API_NO_BACKEND warning
	spec.Entities = []domain.Entity{{Name: "A"}, {Name: "B"}}

	res := Evaluate(spec)
	all := AllIssues(spec)
	assert.Len(t, all, len(res.Conflicts)+len(res.Warnings))

	// conflicts first, then warnings, each in table order
	assert.Equal(t, append(codes(res.Conflicts), codes(res.Warnings)...), codes(all))
}

func TestRuleTable_CodesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range ruleTable {
		assert.False(t, seen[r.Code], "duplicate rule code %s", r.Code)
		seen[r.Code] = true
		assert.NotNil(t, r.When)
		assert.NotEmpty(t, r.Message)
	}
	assert.Len(t, ruleTable, 12)
}
