package blogs

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/bloglist-go/apperror"
	"github.com/user/bloglist-go/auth"
)

// Handlers exposes the /api/blogs endpoints.
type Handlers struct {
	service Service
}

// NewHandlers creates the blog handlers.
func NewHandlers(service Service) *Handlers {
	return &Handlers{service: service}
}

// HandleList handles GET /api/blogs. No authentication required.
func (h *Handlers) HandleList() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogs, err := h.service.List(r.Context())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, blogs)
	}
}

// HandleCreate handles POST /api/blogs.
func (h *Handlers) HandleCreate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := auth.IdentityFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthenticationError("token missing", nil))
			return
		}

		var req CreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewValidationError("invalid request body: "+err.Error(), err))
			return
		}
		defer r.Body.Close()

		blog, err := h.service.Create(r.Context(), req, identity)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusCreated, blog)
	}
}

// HandleUpdate handles PUT /api/blogs/{id}.
func (h *Handlers) HandleUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := auth.IdentityFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthenticationError("token missing", nil))
			return
		}

		id, err := parseID(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		var req UpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewValidationError("invalid request body: "+err.Error(), err))
			return
		}
		defer r.Body.Close()

		blog, err := h.service.Update(r.Context(), id, req, identity)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, blog)
	}
}

// HandleDelete handles DELETE /api/blogs/{id}.
func (h *Handlers) HandleDelete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := auth.IdentityFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthenticationError("token missing", nil))
			return
		}

		id, err := parseID(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		if err := h.service.Delete(r.Context(), id, identity); err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusNoContent, nil)
	}
}

// parseID reads the {id} route parameter.
func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, apperror.NewValidationError("malformatted id", err)
	}
	return id, nil
}
