package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/partdeck/partdeck/internal/parts"
	"github.com/partdeck/partdeck/internal/settings"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(manager *parts.Manager, cfg *settings.Settings) http.Handler {
	mux := http.NewServeMux()

	validate := validator.New(validator.WithRequiredStructEnabled())
	partsHandler := &PartsHandler{Manager: manager, Settings: cfg, Validate: validate}
	visibilityHandler := &VisibilityHandler{Settings: cfg}

	mux.HandleFunc("GET /api/parts", partsHandler.List)
	mux.HandleFunc("POST /api/parts", partsHandler.Create)
	mux.HandleFunc("POST /api/parts/batch", partsHandler.CreateBatch)
	mux.HandleFunc("GET /api/parts/{id}", partsHandler.Get)
	mux.HandleFunc("PUT /api/parts/{id}", partsHandler.Update)
	mux.HandleFunc("PUT /api/parts/{id}/toggle", partsHandler.Toggle)
	mux.HandleFunc("DELETE /api/parts/{id}", partsHandler.Delete)

	mux.HandleFunc("GET /api/stats", partsHandler.Stats)
	mux.HandleFunc("GET /api/export", partsHandler.Export)

	mux.HandleFunc("GET /api/visibility", visibilityHandler.Get)
	mux.HandleFunc("PUT /api/visibility", visibilityHandler.Put)

	return mux
}
