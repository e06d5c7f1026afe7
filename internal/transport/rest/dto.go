package rest

import (
	"context"
	"time"

	"github.com/heartmarshall/polls-backend/internal/domain"
	"github.com/heartmarshall/polls-backend/internal/transport/dataloader"
)

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type userResponse struct {
	Email     string    `json:"email"`
	FirstName *string   `json:"firstName,omitempty"`
	LastName  *string   `json:"lastName,omitempty"`
	AvatarURL *string   `json:"avatarUrl,omitempty"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		AvatarURL: u.AvatarURL,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

// authorResponse is the public profile embedded into polls and comments.
// Only the email is set when the author no longer exists.
type authorResponse struct {
	Email     string  `json:"email"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

func toAuthorResponse(email string, u *domain.User) authorResponse {
	a := authorResponse{Email: email}
	if u != nil {
		a.FirstName = u.FirstName
		a.LastName = u.LastName
		a.AvatarURL = u.AvatarURL
	}
	return a
}

type sessionResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      userResponse `json:"user"`
}

func toSessionResponse(s *domain.Session) sessionResponse {
	return sessionResponse{Token: s.Token, ExpiresAt: s.ExpiresAt, User: toUserResponse(s.User)}
}

type friendResponse struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func toFriendResponse(f domain.Friend) friendResponse {
	return friendResponse{Email: f.Email, CreatedAt: f.CreatedAt}
}

// ---------------------------------------------------------------------------
// Polls
// ---------------------------------------------------------------------------

type privacyDTO struct {
	PollHidden     bool     `json:"pollHidden"`
	ResultsHidden  bool     `json:"resultsHidden"`
	AllowedViewers []string `json:"allowedViewers"`
}

type optionResponse struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	Description *string  `json:"description,omitempty"`
	VoteCount   *int     `json:"voteCount"`
	Ratio       *float64 `json:"ratio"`
	Selected    bool     `json:"selected"`
	Voters      []string `json:"voters"`
}

type pollResponse struct {
	ID             string           `json:"id"`
	Author         authorResponse   `json:"author"`
	Question       string           `json:"question"`
	Image          *string          `json:"image,omitempty"`
	Categories     []string         `json:"categories"`
	Privacy        privacyDTO       `json:"privacy"`
	Voted          bool             `json:"voted"`
	ResultsVisible bool             `json:"resultsVisible"`
	TotalVotes     *int             `json:"totalVotes"`
	Options        []optionResponse `json:"options"`
	CommentCount   int              `json:"commentCount"`
	CreatedAt      time.Time        `json:"createdAt"`
}

func toPollResponse(v *domain.PollView, author *domain.User) pollResponse {
	opts := make([]optionResponse, len(v.Options))
	for i, o := range v.Options {
		opts[i] = optionResponse{
			ID:          o.ID.String(),
			Text:        o.Text,
			Description: o.Description,
			VoteCount:   o.VoteCount,
			Ratio:       o.Ratio,
			Selected:    o.Selected,
			Voters:      o.Voters,
		}
	}
	return pollResponse{
		ID:       v.ID.String(),
		Author:   toAuthorResponse(v.Owner, author),
		Question: v.Question,
		Image:    v.Image,
		Privacy: privacyDTO{
			PollHidden:     v.Privacy.PollHidden,
			ResultsHidden:  v.Privacy.ResultsHidden,
			AllowedViewers: v.Privacy.AllowedViewers,
		},
		Categories:     v.Categories,
		Voted:          v.Voted,
		ResultsVisible: v.ResultsVisible,
		TotalVotes:     v.TotalVotes,
		Options:        opts,
		CommentCount:   v.CommentCount,
		CreatedAt:      v.CreatedAt,
	}
}

// toPollResponses embeds the authors of views through the request loaders.
func toPollResponses(ctx context.Context, views []domain.PollView) ([]pollResponse, error) {
	emails := make([]string, len(views))
	for i := range views {
		emails[i] = views[i].Owner
	}
	authors, err := dataloader.FromContext(ctx).LoadUsers(ctx, emails)
	if err != nil {
		return nil, err
	}

	out := make([]pollResponse, len(views))
	for i := range views {
		out[i] = toPollResponse(&views[i], authors[views[i].Owner])
	}
	return out, nil
}

type categoryResponse struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// ---------------------------------------------------------------------------
// Comments
// ---------------------------------------------------------------------------

type commentResponse struct {
	ID        string         `json:"id"`
	PollID    string         `json:"pollId"`
	Author    authorResponse `json:"author"`
	Text      string         `json:"text"`
	CreatedAt time.Time      `json:"createdAt"`
}

type commentPageResponse struct {
	Page    int               `json:"page"`
	Size    int               `json:"size"`
	HasMore bool              `json:"hasMore"`
	Items   []commentResponse `json:"items"`
}

func toCommentResponses(ctx context.Context, comments []domain.Comment) ([]commentResponse, error) {
	emails := make([]string, len(comments))
	for i, c := range comments {
		emails[i] = c.Author
	}
	authors, err := dataloader.FromContext(ctx).LoadUsers(ctx, emails)
	if err != nil {
		return nil, err
	}

	out := make([]commentResponse, len(comments))
	for i, c := range comments {
		out[i] = commentResponse{
			ID:        c.ID.String(),
			PollID:    c.PollID.String(),
			Author:    toAuthorResponse(c.Author, authors[c.Author]),
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Analytics
// ---------------------------------------------------------------------------

type interestResponse struct {
	Category string  `json:"category"`
	Count    int     `json:"count"`
	Share    float64 `json:"share"`
}

type comparisonResponse struct {
	Subject            string             `json:"subject"`
	VotedTotal         int                `json:"votedTotal"`
	PollsAuthoredTotal int                `json:"pollsAuthoredTotal"`
	Interests          []interestResponse `json:"interests"`
	CommonInterests    []interestResponse `json:"commonInterests"`
	CommonVotes        []interestResponse `json:"commonVotes"`
}

func toComparisonResponse(r *domain.ContrastReport) comparisonResponse {
	conv := func(in []domain.Interest) []interestResponse {
		out := make([]interestResponse, len(in))
		for i, x := range in {
			out[i] = interestResponse{Category: x.Category, Count: x.Count, Share: x.Share}
		}
		return out
	}
	return comparisonResponse{
		Subject:            r.Subject,
		VotedTotal:         r.VotedTotal,
		PollsAuthoredTotal: r.PollsAuthoredTotal,
		Interests:          conv(r.Interests),
		CommonInterests:    conv(r.CommonInterests),
		CommonVotes:        conv(r.CommonVotes),
	}
}

type searchItemResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Type  string `json:"type"`
	Count int    `json:"count"`
}
