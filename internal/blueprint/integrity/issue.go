package integrity

// Severity of a single finding. "Suggestion" is a routing bucket, not a
// severity: a warning-severity issue can still land in the suggestions list.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Bucket names the output list a rule appends to. It is chosen per rule,
// independently of the severity tag on the issue itself.
type Bucket string

const (
	BucketConflicts   Bucket = "conflicts"
	BucketWarnings    Bucket = "warnings"
	BucketSuggestions Bucket = "suggestions"
)

// Issue is one finding from the integrity checker. Code is a stable
// machine-readable identifier, one per rule.
type Issue struct {
	Code       string   `json:"code"`
	Severity   Severity `json:"severity"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// Result partitions issues by the bucket each rule targets. The lists keep
// the rule table's top-to-bottom order.
type Result struct {
	Conflicts   []Issue `json:"conflicts"`
	Warnings    []Issue `json:"warnings"`
	Suggestions []Issue `json:"suggestions"`
}

// Valid reports whether the spec has no conflicts. Warnings and
// suggestions never make a spec invalid.
func (r Result) Valid() bool {
	return len(r.Conflicts) == 0
}

// AllIssues returns conflicts followed by warnings. Suggestions are advice,
// not issues, and are excluded.
func (r Result) AllIssues() []Issue {
	out := make([]Issue, 0, len(r.Conflicts)+len(r.Warnings))
	out = append(out, r.Conflicts...)
	out = append(out, r.Warnings...)
	return out
}
