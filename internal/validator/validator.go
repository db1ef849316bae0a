package validator

import (
	"fmt"
	"strings"
)

// Issue is one rule a value breaks.
type Issue struct {
	// Rule is a short stable name such as "length" or "start".
	Rule    string `json:"rule"`
	Message string `json:"message"`
	// Value is the offending part of the input, when narrower than the
	// whole value.
	Value any `json:"value,omitempty"`
}

func (i Issue) Error() string {
	var sb strings.Builder
	if i.Rule != "" {
		fmt.Fprintf(&sb, "%s: ", i.Rule)
	}
	sb.WriteString(i.Message)
	if i.Value != nil {
		fmt.Fprintf(&sb, " (got %v)", i.Value)
	}
	return sb.String()
}

// Result lists the issues found for one value checked against one
// subject, e.g. a handle against a platform.
type Result struct {
	Subject string  `json:"subject"`
	Value   string  `json:"value"`
	Issues  []Issue `json:"issues,omitempty"`
}

// HasErrors reports whether any rule was broken. A nil Result has none.
func (r *Result) HasErrors() bool {
	return r != nil && len(r.Issues) > 0
}

// AddError records a broken rule.
func (r *Result) AddError(rule, message string, value any) {
	r.Issues = append(r.Issues, Issue{Rule: rule, Message: message, Value: value})
}

// Errors returns the recorded issues.
func (r *Result) Errors() []Issue {
	if r == nil {
		return nil
	}
	return r.Issues
}

// Rejected counts the results with at least one issue.
func Rejected(results []*Result) int {
	n := 0
	for _, r := range results {
		if r.HasErrors() {
			n++
		}
	}
	return n
}
