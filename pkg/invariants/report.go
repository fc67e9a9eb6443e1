package invariants

import (
	"fmt"
	"strings"
)

// ConstraintResult is one property check's outcome: a name, a pass/fail
// verdict, and a human-readable detail string. Every property here is
// hard pass/fail, with no soft/scored variant.
type ConstraintResult struct {
	Name      string
	Satisfied bool
	Details   string
}

// NewConstraintResult builds a ConstraintResult from a check's name, its
// pass/fail verdict, and the caller's detail string.
func NewConstraintResult(name string, satisfied bool, details string) ConstraintResult {
	return ConstraintResult{Name: name, Satisfied: satisfied, Details: details}
}

// Report aggregates every constraint result for one finished Logic:
// Passed, per-constraint results, and accumulated Errors.
type Report struct {
	Passed  bool
	Results []ConstraintResult
	Errors  []string
}

// NewReport returns an empty, passing Report.
func NewReport() *Report {
	return &Report{Passed: true, Results: []ConstraintResult{}, Errors: []string{}}
}

func (r *Report) record(result ConstraintResult) {
	r.Results = append(r.Results, result)
	if !result.Satisfied {
		r.Passed = false
		r.Errors = append(r.Errors, result.Details)
	}
}

// Summary renders a human-readable report: a status line, per-constraint
// pass/fail, and a trailing error list.
func Summary(r *Report) string {
	var b strings.Builder
	b.WriteString("=== Invariant Report ===\n\n")
	if r.Passed {
		b.WriteString("Status: PASSED\n")
	} else {
		b.WriteString("Status: FAILED\n")
	}
	for i, result := range r.Results {
		status := "PASS"
		if !result.Satisfied {
			status = "FAIL"
		}
		b.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, status, result.Name, result.Details))
	}
	if len(r.Errors) > 0 {
		b.WriteString("\n=== Errors ===\n")
		for i, err := range r.Errors {
			b.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err))
		}
	}
	return b.String()
}
