package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/polls-backend/internal/domain"
	"github.com/heartmarshall/polls-backend/internal/service/comment"
)

type commentService interface {
	AddComment(ctx context.Context, input comment.AddCommentInput) (*domain.Comment, error)
	ListComments(ctx context.Context, input comment.ListCommentsInput) (*domain.CommentPage, error)
}

// CommentHandler serves poll comment endpoints.
type CommentHandler struct {
	svc commentService
	log *slog.Logger
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(svc commentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, log: logger.With("handler", "comment")}
}

type addCommentRequest struct {
	Text string `json:"text"`
}

// List handles GET /polls/{id}/comments?page=&pageSize=.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	page, err := queryInt(r, "page")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	size, err := queryInt(r, "pageSize")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.ListComments(r.Context(), comment.ListCommentsInput{PollID: id, Page: page, PageSize: size})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := toCommentResponses(r.Context(), result.Items)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, commentPageResponse{
		Page:    result.Page,
		Size:    result.Size,
		HasMore: result.HasMore,
		Items:   items,
	})
}

// Add handles POST /polls/{id}/comments.
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req addCommentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.AddComment(r.Context(), comment.AddCommentInput{PollID: id, Text: req.Text})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items, err := toCommentResponses(r.Context(), []domain.Comment{*c})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, items[0])
}
