package domain

import (
	"cmp"
	"slices"
)

// CategoryOverlap is one aggregated row of the contrast query: how the
// subject and the viewer voted on polls carrying Category.
type CategoryOverlap struct {
	Category     string
	SubjectVotes int // polls in the category the subject voted on
	ViewerVotes  int // polls in the category the viewer voted on
	BothVoted    int // polls in the category both voted on
	SameOption   int // polls in the category where both chose the same option
}

// Interest is one category entry of a contrast report.
type Interest struct {
	Category string
	Count    int
	Share    float64
}

// ContrastReport compares a subject user's voting interests with the viewer's.
type ContrastReport struct {
	Subject            string
	VotedTotal         int
	PollsAuthoredTotal int
	Interests          []Interest
	CommonInterests    []Interest
	CommonVotes        []Interest
}

// BuildContrastReport turns aggregate rows into a report. Every list is
// ordered by count descending, ties broken by category ascending. Shares
// are relative to votedTotal and are 0 when votedTotal is 0.
func BuildContrastReport(subject string, votedTotal, authoredTotal int, rows []CategoryOverlap) ContrastReport {
	share := func(n int) float64 {
		if votedTotal == 0 {
			return 0
		}
		return float64(n) / float64(votedTotal)
	}

	return ContrastReport{
		Subject:            subject,
		VotedTotal:         votedTotal,
		PollsAuthoredTotal: authoredTotal,
		Interests:          rankInterests(rows, func(r CategoryOverlap) int { return r.SubjectVotes }, share),
		CommonInterests:    rankInterests(rows, func(r CategoryOverlap) int { return r.BothVoted }, share),
		CommonVotes:        rankInterests(rows, func(r CategoryOverlap) int { return r.SameOption }, share),
	}
}

func rankInterests(rows []CategoryOverlap, count func(CategoryOverlap) int, share func(int) float64) []Interest {
	out := make([]Interest, 0, len(rows))
	for _, r := range rows {
		n := count(r)
		if n <= 0 {
			continue
		}
		out = append(out, Interest{Category: r.Category, Count: n, Share: share(n)})
	}
	slices.SortFunc(out, func(a, b Interest) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return out
}
