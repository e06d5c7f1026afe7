package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/polls-backend/internal/domain"
	"github.com/heartmarshall/polls-backend/internal/service/poll"
	"github.com/heartmarshall/polls-backend/internal/service/vote"
)

type pollService interface {
	CreatePoll(ctx context.Context, input poll.CreatePollInput) (*domain.PollView, error)
	GetPoll(ctx context.Context, id uuid.UUID) (*domain.PollView, error)
	ListPolls(ctx context.Context, input poll.ListPollsInput) ([]domain.PollView, error)
	UpdatePoll(ctx context.Context, input poll.UpdatePollInput) (*domain.PollView, error)
	DeletePoll(ctx context.Context, id uuid.UUID) error
	SuggestCategories(ctx context.Context, prefix string, limit int) ([]domain.CategoryUsage, error)
}

type voteService interface {
	CastVote(ctx context.Context, input vote.CastVoteInput) (*domain.PollView, error)
}

// PollHandler serves poll, vote and category endpoints.
type PollHandler struct {
	polls pollService
	votes voteService
	log   *slog.Logger
}

// NewPollHandler creates a PollHandler.
func NewPollHandler(polls pollService, votes voteService, logger *slog.Logger) *PollHandler {
	return &PollHandler{polls: polls, votes: votes, log: logger.With("handler", "poll")}
}

type optionRequest struct {
	Text        string  `json:"text"`
	Description *string `json:"description"`
}

type privacyRequest struct {
	PollHidden     bool     `json:"pollHidden"`
	ResultsHidden  bool     `json:"resultsHidden"`
	AllowedViewers []string `json:"allowedViewers"`
}

func (p *privacyRequest) toInput() *poll.PrivacyInput {
	if p == nil {
		return nil
	}
	return &poll.PrivacyInput{
		PollHidden:     p.PollHidden,
		ResultsHidden:  p.ResultsHidden,
		AllowedViewers: p.AllowedViewers,
	}
}

type createPollRequest struct {
	Question string          `json:"question"`
	Options  []optionRequest `json:"options"`
	Image    *string         `json:"image"`
	Privacy  *privacyRequest `json:"privacy"`
}

type updatePollRequest struct {
	Question *string         `json:"question"`
	Image    *string         `json:"image"`
	Privacy  *privacyRequest `json:"privacy"`
}

type voteRequest struct {
	OptionID string `json:"optionId"`
}

// List handles GET /polls?mode=&category=&author=&offset=&limit=.
func (h *PollHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, err := queryInt(r, "offset")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	views, err := h.polls.ListPolls(r.Context(), poll.ListPollsInput{
		Mode:       domain.ListMode(r.URL.Query().Get("mode")),
		Categories: queryList(r, "category"),
		Authors:    queryList(r, "author"),
		Offset:     offset,
		Limit:      limit,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := toPollResponses(r.Context(), views)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// Create handles POST /polls.
func (h *PollHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPollRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	opts := make([]poll.OptionInput, len(req.Options))
	for i, o := range req.Options {
		opts[i] = poll.OptionInput{Text: o.Text, Description: o.Description}
	}

	view, err := h.polls.CreatePoll(r.Context(), poll.CreatePollInput{
		Question: req.Question,
		Options:  opts,
		Image:    req.Image,
		Privacy:  req.Privacy.toInput(),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writePoll(w, r, http.StatusCreated, view)
}

// Get handles GET /polls/{id}.
func (h *PollHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	view, err := h.polls.GetPoll(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writePoll(w, r, http.StatusOK, view)
}

// Update handles PATCH /polls/{id}.
func (h *PollHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updatePollRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	view, err := h.polls.UpdatePoll(r.Context(), poll.UpdatePollInput{
		ID:       id,
		Question: req.Question,
		Image:    req.Image,
		Privacy:  req.Privacy.toInput(),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writePoll(w, r, http.StatusOK, view)
}

// Delete handles DELETE /polls/{id}.
func (h *PollHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.polls.DeletePoll(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Vote handles POST /polls/{id}/votes.
func (h *PollHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req voteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	optionID, err := uuid.Parse(req.OptionID)
	if err != nil {
		handleError(h.log, w, r, domain.NewValidationError("optionId", "must be a UUID"))
		return
	}

	view, err := h.votes.CastVote(r.Context(), vote.CastVoteInput{PollID: id, OptionID: optionID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.writePoll(w, r, http.StatusCreated, view)
}

// Categories handles GET /categories?prefix=&limit=.
func (h *PollHandler) Categories(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	usage, err := h.polls.SuggestCategories(r.Context(), r.URL.Query().Get("prefix"), limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]categoryResponse, len(usage))
	for i, u := range usage {
		out[i] = categoryResponse{Category: u.Category, Count: u.Count}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

func (h *PollHandler) writePoll(w http.ResponseWriter, r *http.Request, status int, view *domain.PollView) {
	items, err := toPollResponses(r.Context(), []domain.PollView{*view})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, status, items[0])
}
