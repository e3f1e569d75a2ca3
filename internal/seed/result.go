// Package seed loads the identity tables from the Chadwick register and
// the bundled reference CSVs. All request-time reads assume these tables
// exist and are frozen between seed runs.
package seed

import "fmt"

// Result tracks counts and errors from a seeding operation.
type Result struct {
	PeopleInserted int
	TeamsInserted  int
	VenuesInserted int
	VotesInserted  int
	Errors         []string
}

// Add merges another Result into this one.
func (r *Result) Add(other Result) {
	r.PeopleInserted += other.PeopleInserted
	r.TeamsInserted += other.TeamsInserted
	r.VenuesInserted += other.VenuesInserted
	r.VotesInserted += other.VotesInserted
	r.Errors = append(r.Errors, other.Errors...)
}

// AddError records an error message.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// AddErrorf records a formatted error message.
func (r *Result) AddErrorf(format string, args ...interface{}) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the seed operation.
func (r *Result) Summary() string {
	return fmt.Sprintf(
		"people=%d teams=%d venues=%d hof_votes=%d errors=%d",
		r.PeopleInserted, r.TeamsInserted,
		r.VenuesInserted, r.VotesInserted,
		len(r.Errors),
	)
}
