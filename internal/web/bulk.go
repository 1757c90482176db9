package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/partdeck/partdeck/internal/field"
	"github.com/partdeck/partdeck/internal/model"
)

const defaultGridRows = 3

// gridRow is one draft row of the bulk entry grid. SourceID is set when
// the row was loaded from an existing record, so the commit updates it
// in place instead of re-adding a duplicate.
type gridRow struct {
	Index    int
	SourceID string
	Part     model.Part
}

// bulkPageData feeds the bulk.html template.
type bulkPageData struct {
	PageData
	Fields       []field.Def
	Rows         []gridRow
	EditExisting bool
	ShowPlaced   bool
	ShowReleased bool
	CanRemove    bool
}

// BulkPage handles GET /bulk. The grid opens with three blank rows;
// load=existing streams the current collection in for bulk re-editing.
func (s *Server) BulkPage(w http.ResponseWriter, r *http.Request) {
	vis := s.Settings.Visibility()
	editExisting := r.URL.Query().Get("load") == "existing"
	today := time.Now().Format("2006-01-02")

	var rows []gridRow
	if editExisting {
		for i, p := range s.Manager.List() {
			rows = append(rows, gridRow{Index: i, SourceID: p.ID, Part: p})
		}
	}
	if len(rows) == 0 {
		n := defaultGridRows
		if v, err := strconv.Atoi(r.URL.Query().Get("rows")); err == nil && v > 0 {
			n = v
		}
		for i := 0; i < n; i++ {
			rows = append(rows, gridRow{
				Index: i,
				Part:  model.Part{QualityStatus: model.StatusPending, InspectionDate: today},
			})
		}
		editExisting = false
	}

	s.Templates.Render(w, "bulk.html", &bulkPageData{
		PageData:     PageData{Title: "Spreadsheet Input"},
		Fields:       field.GridFields(vis),
		Rows:         rows,
		EditExisting: editExisting,
		ShowPlaced:   vis.SAPPlaced,
		ShowReleased: vis.SAPReleased,
		CanRemove:    len(rows) > 1,
	})
}

// BulkSubmit handles POST /bulk. Rows with a blank part number are
// dropped; at least one must survive. New rows are committed as one
// batch, loaded rows update their source record by id (rows whose
// source record has since been deleted are added as new).
func (s *Server) BulkSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	vis := s.Settings.Visibility()
	defs := field.GridFields(vis)

	rowCount, _ := strconv.Atoi(r.FormValue("rowCount"))
	var drafts []model.Draft
	updated := 0
	for i := 0; i < rowCount; i++ {
		prefix := fmt.Sprintf("row%d.", i)
		if strings.TrimSpace(r.FormValue(prefix+string(field.PartNumber))) == "" {
			continue
		}

		sourceID := r.FormValue(prefix + "id")
		if sourceID != "" {
			if _, ok := s.Manager.Get(sourceID); ok {
				patch := formPatch(r, prefix, defs)
				if vis.SAPPlaced {
					setPatchValue(&patch, field.SAPPlaced, r.FormValue(prefix+string(field.SAPPlaced)))
				}
				if vis.SAPReleased {
					setPatchValue(&patch, field.SAPReleased, r.FormValue(prefix+string(field.SAPReleased)))
				}
				s.Manager.Update(r.Context(), sourceID, patch)
				updated++
				continue
			}
		}

		drafts = append(drafts, formDraft(r, prefix, defs, true))
	}

	if len(drafts) == 0 && updated == 0 {
		s.Templates.Render(w, "bulk.html", &bulkPageData{
			PageData:     PageData{Title: "Spreadsheet Input", Error: "Please enter at least one part with a part number."},
			Fields:       defs,
			Rows:         blankRows(defaultGridRows),
			ShowPlaced:   vis.SAPPlaced,
			ShowReleased: vis.SAPReleased,
			CanRemove:    true,
		})
		return
	}

	if len(drafts) > 0 {
		s.Manager.AddBatch(r.Context(), drafts)
	}
	http.Redirect(w, r, "/parts", http.StatusSeeOther)
}

func blankRows(n int) []gridRow {
	today := time.Now().Format("2006-01-02")
	rows := make([]gridRow, n)
	for i := range rows {
		rows[i] = gridRow{
			Index: i,
			Part:  model.Part{QualityStatus: model.StatusPending, InspectionDate: today},
		}
	}
	return rows
}
