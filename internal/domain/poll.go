package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Poll is a stored poll. Categories are derived from Question and are
// never set from caller input.
type Poll struct {
	ID           uuid.UUID
	Owner        string
	Question     string
	Image        *string
	Privacy      Privacy
	Options      []Option
	Categories   []string
	CommentCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Privacy controls who may see a poll and its results.
type Privacy struct {
	PollHidden     bool
	ResultsHidden  bool
	AllowedViewers []string
}

// Option is one answer of a poll. The full voter set lives in storage;
// only its size and the most recent voters are loaded.
type Option struct {
	ID           uuid.UUID
	PollID       uuid.UUID
	Position     int
	Text         string
	Description  *string
	VoteCount    int
	RecentVoters []string // newest first, at most PreviewSize
}

// Ballot is a single recorded vote.
type Ballot struct {
	PollID    uuid.UUID
	OptionID  uuid.UUID
	Voter     string
	CreatedAt time.Time
}

// Comment is an append-only remark on a poll.
type Comment struct {
	ID        uuid.UUID
	PollID    uuid.UUID
	Author    string
	Text      string
	CreatedAt time.Time
}

// CommentPage is one newest-first page of a poll's comments.
type CommentPage struct {
	Page    int
	Size    int
	HasMore bool
	Items   []Comment
}

// PollUpdateParams holds the mutable poll fields. nil = don't change.
// Categories must be recomputed by the caller whenever Question is set.
type PollUpdateParams struct {
	Question   *string
	Categories []string
	Image      *string
	Privacy    *Privacy
}

// NewPoll assembles a poll ready for insertion: ids are assigned, option
// positions are fixed and categories are derived from the question.
func NewPoll(owner, question string, image *string, privacy Privacy, options []Option, now time.Time) *Poll {
	p := &Poll{
		ID:         uuid.New(),
		Owner:      owner,
		Question:   question,
		Image:      image,
		Privacy:    privacy,
		Categories: DeriveCategories(question),
		Options:    make([]Option, len(options)),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if p.Privacy.AllowedViewers == nil {
		p.Privacy.AllowedViewers = []string{}
	}
	for i, o := range options {
		p.Options[i] = Option{
			ID:           uuid.New(),
			PollID:       p.ID,
			Position:     i,
			Text:         o.Text,
			Description:  o.Description,
			RecentVoters: []string{},
		}
	}
	return p
}

// HasOption reports whether optionID belongs to the poll.
func (p *Poll) HasOption(optionID uuid.UUID) bool {
	return slices.ContainsFunc(p.Options, func(o Option) bool { return o.ID == optionID })
}

// IsAllowed reports whether viewer is on the poll's allow-list.
func (p *Privacy) IsAllowed(viewer string) bool {
	return slices.Contains(p.AllowedViewers, viewer)
}
