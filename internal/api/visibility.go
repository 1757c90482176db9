package api

import (
	"net/http"

	"github.com/partdeck/partdeck/internal/settings"
)

// VisibilityHandler serves the field visibility configuration.
type VisibilityHandler struct {
	Settings *settings.Settings
}

// Get handles GET /api/visibility.
func (h *VisibilityHandler) Get(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, h.Settings.Visibility())
}

// Put handles PUT /api/visibility: a full replacement of the
// configuration. Any subset of fields may be hidden, including all.
func (h *VisibilityHandler) Put(w http.ResponseWriter, r *http.Request) {
	// Absent switches fall back to current values, so a partial payload
	// behaves like a merge rather than silently hiding fields.
	vis := h.Settings.Visibility()
	if err := decodeJSON(r, &vis); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.Settings.Replace(r.Context(), vis)
	jsonResponse(w, http.StatusOK, h.Settings.Visibility())
}
