package testplan

// Case is one structured, human-readable test recommendation. Cases carry
// no identity beyond their name; re-deriving the same spec produces the
// same cases in the same order.
type Case struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Steps       []string `json:"steps"`
	Expected    string   `json:"expected_result"`
}

// Plan groups derived cases into the four recommendation buckets.
type Plan struct {
	UnitTests        []Case `json:"unit_tests"`
	IntegrationTests []Case `json:"integration_tests"`
	E2ETests         []Case `json:"e2e_tests"`
	ManualChecks     []Case `json:"manual_checks"`
}
