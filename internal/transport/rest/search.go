package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/polls-backend/internal/domain"
)

type searchService interface {
	Search(ctx context.Context, term string) ([]domain.SearchItem, error)
}

// SearchHandler serves the user and category search facets.
type SearchHandler struct {
	svc searchService
	log *slog.Logger
}

// NewSearchHandler creates a SearchHandler.
func NewSearchHandler(svc searchService, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{svc: svc, log: logger.With("handler", "search")}
}

// Search handles GET /search?term=.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	found, err := h.svc.Search(r.Context(), r.URL.Query().Get("term"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]searchItemResponse, len(found))
	for i, it := range found {
		out[i] = searchItemResponse{Label: it.Label, Value: it.Value, Type: string(it.Type), Count: it.Count}
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}
