package web

import (
	"net/http"

	"github.com/partdeck/partdeck/internal/parts"
	"github.com/partdeck/partdeck/internal/settings"
	webembed "github.com/partdeck/partdeck/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(manager *parts.Manager, cfg *settings.Settings) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		Manager:   manager,
		Settings:  cfg,
		Templates: templates,
	}

	mux := http.NewServeMux()

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	mux.HandleFunc("GET /{$}", s.DashboardPage)

	mux.HandleFunc("GET /parts", s.PartsPage)
	mux.HandleFunc("POST /parts", s.PartCreateSubmit)
	mux.HandleFunc("GET /parts/new", s.PartNewPage)
	mux.HandleFunc("GET /parts/export", s.PartsExport)
	mux.HandleFunc("POST /parts/{id}", s.PartUpdateSubmit)
	mux.HandleFunc("POST /parts/{id}/toggle", s.PartToggleSubmit)
	mux.HandleFunc("POST /parts/{id}/delete", s.PartDeleteSubmit)

	mux.HandleFunc("GET /bulk", s.BulkPage)
	mux.HandleFunc("POST /bulk", s.BulkSubmit)

	mux.HandleFunc("GET /settings", s.SettingsPage)
	mux.HandleFunc("POST /settings/{field}", s.SettingsToggleSubmit)

	return mux, nil
}
