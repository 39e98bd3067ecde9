// Package pipeline holds the pieces of the delivery pipeline that sit in
// front of the job: the static-analysis gate decision that controls whether
// the job runs at all.
package pipeline

import "fmt"

// Decision is the analysis gate's verdict, built once from the blocker-issue
// count the analysis collaborator reports and then threaded by value into
// every downstream stage. It is immutable: there is deliberately no shared
// flag to flip after the fact.
type Decision struct {
	blockerIssues int
}

// Decide turns a blocker-issue count into a gate decision. The count is an
// external measurement and must be non-negative.
func Decide(blockerIssues int) (Decision, error) {
	if blockerIssues < 0 {
		return Decision{}, fmt.Errorf("blocker issue count must be >= 0, got %d", blockerIssues)
	}
	return Decision{blockerIssues: blockerIssues}, nil
}

// Open reports whether the job may be invoked: only when the analysis found
// zero blocker issues.
func (d Decision) Open() bool {
	return d.blockerIssues == 0
}

// BlockerIssues returns the count the decision was built from, for audit
// logging.
func (d Decision) BlockerIssues() int {
	return d.blockerIssues
}
