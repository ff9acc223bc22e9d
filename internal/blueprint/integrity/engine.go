package integrity

import (
	"github.com/specforge-io/specforge-backend/internal/blueprint/domain"
)

// Evaluate runs every rule in table order against the spec and partitions
// the findings into the rule's target bucket. It is pure: no I/O, no
// mutation of the spec, and identical input always yields an identical
// result.
func Evaluate(spec *domain.Spec) Result {
	res := Result{
		Conflicts:   []Issue{},
		Warnings:    []Issue{},
		Suggestions: []Issue{},
	}
	if spec == nil {
		return res
	}

	for _, r := range ruleTable {
		if !r.When(spec) {
			continue
		}
		issue := Issue{
			Code:       r.Code,
			Severity:   r.Severity,
			Message:    r.Message,
			Suggestion: r.Suggestion,
		}
		switch r.Bucket {
		case BucketConflicts:
			res.Conflicts = append(res.Conflicts, issue)
		case BucketWarnings:
			res.Warnings = append(res.Warnings, issue)
		case BucketSuggestions:
			res.Suggestions = append(res.Suggestions, issue)
		}
	}
	return res
}

// IsValid reports whether the spec evaluates without conflicts.
func IsValid(spec *domain.Spec) bool {
	return Evaluate(spec).Valid()
}

// AllIssues returns the spec's conflicts followed by its warnings.
func AllIssues(spec *domain.Spec) []Issue {
	return Evaluate(spec).AllIssues()
}
