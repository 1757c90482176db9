package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/partdeck/partdeck/internal/export"
	"github.com/partdeck/partdeck/internal/field"
	"github.com/partdeck/partdeck/internal/model"
	"github.com/partdeck/partdeck/internal/parts"
	"github.com/partdeck/partdeck/internal/settings"
)

// PartsHandler serves the part collection endpoints.
type PartsHandler struct {
	Manager  *parts.Manager
	Settings *settings.Settings
	Validate *validator.Validate
}

// draftRequest mirrors model.Draft with validation tags.
type draftRequest struct {
	PartNumber            string `json:"partNumber" validate:"required"`
	PartDescription       string `json:"partDescription"`
	Supplier              string `json:"supplier"`
	DeliveryDate          string `json:"deliveryDate"`
	BatchNumberBox        string `json:"batchNumberBox"`
	BatchDateCode         string `json:"batchDateCode"`
	Count                 int    `json:"count"`
	ExpectedCount         *int   `json:"expectedCount"`
	SAPPlaced             bool   `json:"sapPlaced"`
	SAPReleased           bool   `json:"sapReleased"`
	Comments              string `json:"comments"`
	Notes                 string `json:"notes"`
	InspectorName         string `json:"inspectorName"`
	InspectionDate        string `json:"inspectionDate"`
	QualityStatus         string `json:"qualityStatus" validate:"omitempty,oneof=pending pass fail hold"`
	PurchaseOrder         string `json:"purchaseOrder"`
	StorageLocation       string `json:"storageLocation"`
	ExpiryDate            string `json:"expiryDate"`
	CertificateCompliance string `json:"certificateCompliance"`
	NonConformance        string `json:"nonConformance"`
}

func (r draftRequest) draft() model.Draft {
	return model.Draft{
		PartNumber:            strings.TrimSpace(r.PartNumber),
		PartDescription:       r.PartDescription,
		Supplier:              r.Supplier,
		DeliveryDate:          r.DeliveryDate,
		BatchNumberBox:        r.BatchNumberBox,
		BatchDateCode:         r.BatchDateCode,
		Count:                 r.Count,
		ExpectedCount:         r.ExpectedCount,
		SAPPlaced:             r.SAPPlaced,
		SAPReleased:           r.SAPReleased,
		Comments:              r.Comments,
		Notes:                 r.Notes,
		InspectorName:         r.InspectorName,
		InspectionDate:        r.InspectionDate,
		QualityStatus:         r.QualityStatus,
		PurchaseOrder:         r.PurchaseOrder,
		StorageLocation:       r.StorageLocation,
		ExpiryDate:            r.ExpiryDate,
		CertificateCompliance: r.CertificateCompliance,
		NonConformance:        r.NonConformance,
	}
}

// listView applies the shared q/sort/dir query parameters.
func listView(m *parts.Manager, r *http.Request) []model.Part {
	list := parts.Filter(m.List(), r.URL.Query().Get("q"))

	sortField := field.ID(r.URL.Query().Get("sort"))
	if _, ok := field.Lookup(sortField); !ok {
		sortField = field.CreatedAt
	}
	desc := r.URL.Query().Get("dir") != "asc"
	if r.URL.Query().Get("sort") == "" {
		// Reference ordering: newest creations first.
		sortField, desc = field.CreatedAt, true
	}
	parts.Sort(list, sortField, desc)
	return list
}

// List handles GET /api/parts.
func (h *PartsHandler) List(w http.ResponseWriter, r *http.Request) {
	list := listView(h.Manager, r)
	if list == nil {
		list = []model.Part{}
	}
	jsonResponse(w, http.StatusOK, list)
}

// Get handles GET /api/parts/{id}.
func (h *PartsHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, ok := h.Manager.Get(r.PathValue("id"))
	if !ok {
		jsonError(w, http.StatusNotFound, "part not found")
		return
	}
	jsonResponse(w, http.StatusOK, p)
}

// Create handles POST /api/parts.
func (h *PartsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req draftRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.PartNumber = strings.TrimSpace(req.PartNumber)
	if err := h.Validate.Struct(req); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	p := h.Manager.Add(r.Context(), req.draft())
	jsonResponse(w, http.StatusCreated, p)
}

// batchRequest carries the bulk entry payload.
type batchRequest struct {
	Parts []draftRequest `json:"parts" validate:"required,min=1,dive"`
}

// CreateBatch handles POST /api/parts/batch. Drafts with a blank part
// number are dropped before commit; at least one must survive.
func (h *PartsHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	drafts := make([]model.Draft, 0, len(req.Parts))
	for _, d := range req.Parts {
		if strings.TrimSpace(d.PartNumber) == "" {
			continue
		}
		if err := h.Validate.Struct(d); err != nil {
			jsonError(w, http.StatusBadRequest, err.Error())
			return
		}
		drafts = append(drafts, d.draft())
	}
	if len(drafts) == 0 {
		jsonError(w, http.StatusBadRequest, "at least one part with a part number is required")
		return
	}

	created := h.Manager.AddBatch(r.Context(), drafts)
	jsonResponse(w, http.StatusCreated, created)
}

// Update handles PUT /api/parts/{id}. Unlike the silent in-process
// no-op, the API reports an unknown id as 404 so clients get a signal.
func (h *PartsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch parts.Patch
	if err := decodeJSON(r, &patch); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if patch.PartNumber != nil && strings.TrimSpace(*patch.PartNumber) == "" {
		jsonError(w, http.StatusBadRequest, "part number cannot be blank")
		return
	}
	if patch.QualityStatus != nil && !model.ValidStatus(*patch.QualityStatus) {
		jsonError(w, http.StatusBadRequest, "unknown quality status")
		return
	}

	if !h.Manager.Update(r.Context(), r.PathValue("id"), patch) {
		jsonError(w, http.StatusNotFound, "part not found")
		return
	}
	p, _ := h.Manager.Get(r.PathValue("id"))
	jsonResponse(w, http.StatusOK, p)
}

// toggleRequest names the SAP flag to flip.
type toggleRequest struct {
	Flag string `json:"flag" validate:"required,oneof=sapPlaced sapReleased"`
}

// Toggle handles PUT /api/parts/{id}/toggle.
func (h *PartsHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req toggleRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !h.Manager.ToggleFlag(r.Context(), r.PathValue("id"), req.Flag == "sapReleased") {
		jsonError(w, http.StatusNotFound, "part not found")
		return
	}
	p, _ := h.Manager.Get(r.PathValue("id"))
	jsonResponse(w, http.StatusOK, p)
}

// Delete handles DELETE /api/parts/{id}.
func (h *PartsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !h.Manager.Delete(r.Context(), r.PathValue("id")) {
		jsonError(w, http.StatusNotFound, "part not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Stats handles GET /api/stats.
func (h *PartsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	jsonResponse(w, http.StatusOK, parts.Stats(h.Manager.List()))
}

// Export handles GET /api/export: the current filtered and sorted view
// as a CSV attachment.
func (h *PartsHandler) Export(w http.ResponseWriter, r *http.Request) {
	list := listView(h.Manager, r)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(time.Now())+`"`)
	if err := export.Write(w, list, h.Settings.Visibility()); err != nil {
		// Headers are already out; nothing left to do but log.
		slog.Error("failed to write csv export", "error", err)
	}
}
