package auth

import (
	"encoding/json"
	"net/http"

	"github.com/user/bloglist-go/apperror"
)

// WriteJSON serializes data to the response with the given status. A nil
// payload writes the status line only, which is how 204 responses go out.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	if data == nil {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
	}
}

// WriteError renders any error through the apperror taxonomy. Errors outside
// the taxonomy become a generic 500 with no internal detail disclosed.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("internal server error", err)
	}
	WriteJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
