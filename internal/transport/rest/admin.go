package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/polls-backend/internal/domain"
	"github.com/heartmarshall/polls-backend/pkg/ctxutil"
)

type adminService interface {
	GrantAdmin(ctx context.Context, email string) (bool, error)
}

// AdminHandler serves admin REST endpoints.
type AdminHandler struct {
	users adminService
	log   *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(users adminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		users: users,
		log:   logger.With("handler", "admin"),
	}
}

// GrantAdmin promotes a user to administrator.
// PUT /admin/users/{email}/admin
func (h *AdminHandler) GrantAdmin(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	email := r.PathValue("email")
	changed, err := h.users.GrantAdmin(r.Context(), email)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"email": domain.NormalizeEmail(email), "changed": changed})
}

func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
		writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
		return false
	}
	if !ctxutil.IsAdminCtx(r.Context()) {
		writeError(w, r, http.StatusForbidden, "FORBIDDEN", "admin access required")
		return false
	}
	return true
}
