package domain

import (
	"time"

	"github.com/google/uuid"
)

// PreviewSize is the maximum number of voters revealed per option.
const PreviewSize = 3

// PollView is the viewer-specific rendering of a poll. The full voter set
// is never part of it.
type PollView struct {
	ID             uuid.UUID
	Owner          string
	Question       string
	Image          *string
	Categories     []string
	Privacy        Privacy // AllowedViewers is only filled for the owner
	Voted          bool
	ResultsVisible bool
	TotalVotes     *int // nil when results are hidden from the viewer
	Options        []OptionView
	CommentCount   int
	CreatedAt      time.Time
}

// OptionView is the viewer-specific rendering of an option.
type OptionView struct {
	ID          uuid.UUID
	Text        string
	Description *string
	VoteCount   *int     // nil when results are hidden
	Ratio       *float64 // nil when results are hidden
	Selected    bool
	Voters      []string // preview, newest first, empty when hidden
}

// Project renders p for viewer. ballot is the viewer's vote on p, or nil.
func Project(p *Poll, viewer string, ballot *Ballot) PollView {
	voted := ballot != nil && ballot.PollID == p.ID
	visible := ResultsVisible(p, voted)

	view := PollView{
		ID:             p.ID,
		Owner:          p.Owner,
		Question:       p.Question,
		Image:          p.Image,
		Categories:     p.Categories,
		Voted:          voted,
		ResultsVisible: visible,
		Options:        make([]OptionView, len(p.Options)),
		CommentCount:   p.CommentCount,
		CreatedAt:      p.CreatedAt,
		Privacy: Privacy{
			PollHidden:     p.Privacy.PollHidden,
			ResultsHidden:  p.Privacy.ResultsHidden,
			AllowedViewers: []string{},
		},
	}
	if view.Categories == nil {
		view.Categories = []string{}
	}
	if p.Owner == viewer && p.Privacy.AllowedViewers != nil {
		view.Privacy.AllowedViewers = p.Privacy.AllowedViewers
	}

	total := 0
	for _, o := range p.Options {
		total += o.VoteCount
	}

	for i, o := range p.Options {
		ov := OptionView{
			ID:          o.ID,
			Text:        o.Text,
			Description: o.Description,
			Selected:    voted && ballot.OptionID == o.ID,
			Voters:      []string{},
		}
		if visible {
			count := o.VoteCount
			ratio := 0.0
			if total > 0 {
				ratio = float64(count) / float64(total)
			}
			ov.VoteCount = &count
			ov.Ratio = &ratio
			ov.Voters = preview(o.RecentVoters)
		}
		view.Options[i] = ov
	}

	if visible {
		view.TotalVotes = &total
	}

	return view
}

func preview(voters []string) []string {
	n := min(len(voters), PreviewSize)
	out := make([]string, n)
	copy(out, voters[:n])
	return out
}
