package users

import (
	"net/http"

	"github.com/user/bloglist-go/auth"
)

// Handlers exposes the user listing endpoint.
type Handlers struct {
	service *Service
}

// NewHandlers creates the user handlers.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// HandleListUsers handles GET /api/users.
func (h *Handlers) HandleListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := h.service.ListUsers(r.Context())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, users)
	}
}
