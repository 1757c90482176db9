package web

import (
	"net/http"

	"github.com/partdeck/partdeck/internal/field"
	"github.com/partdeck/partdeck/internal/model"
)

// visToggle is one switch on the settings page.
type visToggle struct {
	Field   field.Def
	Visible bool
}

func toggles(vis model.FieldVisibility, ids []field.ID) []visToggle {
	out := make([]visToggle, 0, len(ids))
	for _, id := range ids {
		def, _ := field.Lookup(id)
		out = append(out, visToggle{Field: def, Visible: field.Visible(vis, id)})
	}
	return out
}

// SettingsPage handles GET /settings.
func (s *Server) SettingsPage(w http.ResponseWriter, r *http.Request) {
	vis := s.Settings.Visibility()
	s.Templates.Render(w, "settings.html", &struct {
		PageData
		Core       []visToggle
		Additional []visToggle
	}{
		PageData:   PageData{Title: "Field Visibility Settings"},
		Core:       toggles(vis, field.SettingsCore),
		Additional: toggles(vis, field.SettingsAdditional),
	})
}

// SettingsToggleSubmit handles POST /settings/{field}: flips one switch
// and persists the whole configuration immediately.
func (s *Server) SettingsToggleSubmit(w http.ResponseWriter, r *http.Request) {
	id := field.ID(r.PathValue("field"))
	visible := r.FormValue("visible") == "true"
	if !s.Settings.Toggle(r.Context(), id, visible) {
		http.Error(w, "unknown field", http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, "/settings", http.StatusSeeOther)
}
