package web

import (
	"net/http"

	"github.com/partdeck/partdeck/internal/model"
	"github.com/partdeck/partdeck/internal/parts"
)

// DashboardPage handles GET /: the stat cards plus the latest records.
func (s *Server) DashboardPage(w http.ResponseWriter, r *http.Request) {
	list := s.Manager.List()

	recent := list
	if len(recent) > 5 {
		recent = recent[:5]
	}

	s.Templates.Render(w, "dashboard.html", &struct {
		PageData
		Stats  parts.Summary
		Recent []model.Part
	}{
		PageData: PageData{Title: "Dashboard"},
		Stats:    parts.Stats(list),
		Recent:   recent,
	})
}
