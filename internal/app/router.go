package app

import (
	"net/http"

	"github.com/heartmarshall/polls-backend/internal/transport/middleware"
	"github.com/heartmarshall/polls-backend/internal/transport/rest"
)

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health  *rest.HealthHandler
	Auth    *rest.AuthHandler
	User    *rest.UserHandler
	Admin   *rest.AdminHandler
	Poll    *rest.PollHandler
	Comment *rest.CommentHandler
	Search  *rest.SearchHandler
}

// NewRouter registers all routes. global wraps the whole mux; authLimit
// wraps the credential endpoints only.
func NewRouter(h Handlers, global, authLimit middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.Handle("POST /auth/signup", authLimit.ThenFunc(h.Auth.Signup))
	mux.Handle("POST /auth/login", authLimit.ThenFunc(h.Auth.Login))
	mux.HandleFunc("GET /auth/me", h.Auth.Me)

	mux.HandleFunc("GET /users/availability", h.User.Availability)
	mux.HandleFunc("GET /users/{email}", h.User.Get)
	mux.HandleFunc("PATCH /users/{email}", h.User.Update)
	mux.HandleFunc("DELETE /users/{email}", h.User.Delete)
	mux.HandleFunc("GET /users/{email}/comparison", h.User.Comparison)

	mux.HandleFunc("GET /me/friends", h.User.ListFriends)
	mux.HandleFunc("PUT /me/friends/{email}", h.User.AddFriend)
	mux.HandleFunc("DELETE /me/friends/{email}", h.User.RemoveFriend)

	mux.HandleFunc("PUT /admin/users/{email}/admin", h.Admin.GrantAdmin)

	mux.HandleFunc("GET /polls", h.Poll.List)
	mux.HandleFunc("POST /polls", h.Poll.Create)
	mux.HandleFunc("GET /polls/{id}", h.Poll.Get)
	mux.HandleFunc("PATCH /polls/{id}", h.Poll.Update)
	mux.HandleFunc("DELETE /polls/{id}", h.Poll.Delete)
	mux.HandleFunc("POST /polls/{id}/votes", h.Poll.Vote)
	mux.HandleFunc("GET /polls/{id}/comments", h.Comment.List)
	mux.HandleFunc("POST /polls/{id}/comments", h.Comment.Add)

	mux.HandleFunc("GET /categories", h.Poll.Categories)
	mux.HandleFunc("GET /search", h.Search.Search)

	return global.Then(mux)
}
