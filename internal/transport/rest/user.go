package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/polls-backend/internal/domain"
	"github.com/heartmarshall/polls-backend/internal/service/user"
)

type userService interface {
	CheckEmailAvailable(ctx context.Context, email string) (bool, error)
	GetProfile(ctx context.Context, email string) (*domain.User, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
	DeleteAccount(ctx context.Context, email string) error
	AddFriend(ctx context.Context, email string) (*domain.Friend, error)
	RemoveFriend(ctx context.Context, email string) error
	ListFriends(ctx context.Context) ([]domain.Friend, error)
}

type comparisonService interface {
	CompareInterests(ctx context.Context, subject string) (*domain.ContrastReport, error)
}

// UserHandler serves profile, friend and comparison endpoints.
type UserHandler struct {
	users     userService
	analytics comparisonService
	log       *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(users userService, analytics comparisonService, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, analytics: analytics, log: logger.With("handler", "user")}
}

type updateUserRequest struct {
	Password  *string `json:"password"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	AvatarURL *string `json:"avatarUrl"`
}

// Availability handles GET /users/availability?email=.
func (h *UserHandler) Availability(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	available, err := h.users.CheckEmailAvailable(r.Context(), email)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"email": domain.NormalizeEmail(email), "available": available})
}

// Get handles GET /users/{email}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.GetProfile(r.Context(), r.PathValue("email"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Update handles PATCH /users/{email}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	u, err := h.users.UpdateProfile(r.Context(), user.UpdateProfileInput{
		Email:     r.PathValue("email"),
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Delete handles DELETE /users/{email}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.users.DeleteAccount(r.Context(), r.PathValue("email")); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Comparison handles GET /users/{email}/comparison.
func (h *UserHandler) Comparison(w http.ResponseWriter, r *http.Request) {
	report, err := h.analytics.CompareInterests(r.Context(), r.PathValue("email"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toComparisonResponse(report))
}

// ListFriends handles GET /me/friends.
func (h *UserHandler) ListFriends(w http.ResponseWriter, r *http.Request) {
	friends, err := h.users.ListFriends(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]friendResponse, len(friends))
	for i, f := range friends {
		out[i] = toFriendResponse(f)
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

// AddFriend handles PUT /me/friends/{email}.
func (h *UserHandler) AddFriend(w http.ResponseWriter, r *http.Request) {
	f, err := h.users.AddFriend(r.Context(), r.PathValue("email"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toFriendResponse(*f))
}

// RemoveFriend handles DELETE /me/friends/{email}.
func (h *UserHandler) RemoveFriend(w http.ResponseWriter, r *http.Request) {
	if err := h.users.RemoveFriend(r.Context(), r.PathValue("email")); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
