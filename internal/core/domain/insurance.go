package domain

import (
	"sort"
	"strings"
	"time"
)

// PolicyDocument describes a file attached to a policy, stored remotely.
type PolicyDocument struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	Size       int64  `json:"size"`
	UploadedAt Date   `json:"uploaded_at"`
}

// InsurancePolicy covers the vehicle over the [Start, End] day range.
type InsurancePolicy struct {
	ID           string          `json:"id"`
	Company      string          `json:"company" validate:"required,max=100"`
	PolicyNumber string          `json:"policy_number" validate:"required,max=50"`
	Start        Date            `json:"start" validate:"required"`
	End          Date            `json:"end" validate:"required"`
	AnnualCost   float64         `json:"annual_cost" validate:"min=0"`
	Coverages    []string        `json:"coverages"`
	Document     *PolicyDocument `json:"document"`
}

// Normalize uppercases company, policy number and coverage tags.
func (p *InsurancePolicy) Normalize() {
	p.Company = strings.ToUpper(strings.TrimSpace(p.Company))
	p.PolicyNumber = strings.ToUpper(strings.TrimSpace(p.PolicyNumber))
	for i, c := range p.Coverages {
		p.Coverages[i] = strings.ToUpper(strings.TrimSpace(c))
	}
}

// ParseCoverages splits a comma-separated coverage list into normalized tags.
func ParseCoverages(input string) []string {
	var out []string
	for _, c := range strings.Split(input, ",") {
		c = strings.ToUpper(strings.TrimSpace(c))
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

// ActivePolicy returns the policy whose [Start, End] range contains today, or
// nil. Of the two historical definitions of "active" (window containment vs.
// end-date-in-the-future) this implements strict window containment.
func ActivePolicy(policies []InsurancePolicy, now time.Time) *InsurancePolicy {
	today := Today(now)
	for i := range policies {
		p := &policies[i]
		if !p.Start.After(today) && !p.End.Before(today) {
			return p
		}
	}
	return nil
}

// PolicyHistory returns the non-active policies sorted by end date
// descending, most recently expired first.
func PolicyHistory(policies []InsurancePolicy, now time.Time) []InsurancePolicy {
	active := ActivePolicy(policies, now)
	history := make([]InsurancePolicy, 0, len(policies))
	for _, p := range policies {
		if active != nil && p.ID == active.ID {
			continue
		}
		history = append(history, p)
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].End.After(history[j].End)
	})
	return history
}

// PolicyDueSoon reports whether the policy ends within the next 30 days,
// today included.
func PolicyDueSoon(end Date, now time.Time) bool {
	days := end.DaysUntil(now)
	return days >= 0 && days <= 30
}

// PolicyExpired reports whether the policy ended before today.
func PolicyExpired(end Date, now time.Time) bool {
	return end.Before(Today(now))
}

// CanAddPolicy validates a candidate policy against the existing list.
// Touching boundaries count as an overlap: two ranges [s1,e1] and [s2,e2]
// overlap iff s1 <= e2 and s2 <= e1.
func CanAddPolicy(candidate InsurancePolicy, existing []InsurancePolicy) error {
	if !candidate.End.After(candidate.Start) {
		return ErrPolicyDatesInverted
	}
	for _, p := range existing {
		if !candidate.Start.After(p.End) && !p.Start.After(candidate.End) {
			return ErrPolicyOverlap
		}
	}
	return nil
}
