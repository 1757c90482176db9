package web

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/partdeck/partdeck/internal/export"
	"github.com/partdeck/partdeck/internal/field"
	"github.com/partdeck/partdeck/internal/model"
	"github.com/partdeck/partdeck/internal/parts"
)

// tableQuery captures the table's filter/sort state from the URL.
type tableQuery struct {
	Search string
	Sort   field.ID
	Desc   bool
	EditID string
}

func parseTableQuery(r *http.Request) tableQuery {
	q := tableQuery{
		Search: r.URL.Query().Get("q"),
		Sort:   field.ID(r.URL.Query().Get("sort")),
		Desc:   r.URL.Query().Get("dir") != "asc",
		EditID: r.URL.Query().Get("edit"),
	}
	if _, ok := field.Lookup(q.Sort); !ok || q.Sort == "" {
		// Reference ordering: newest creations first.
		q.Sort, q.Desc = field.CreatedAt, true
	}
	return q
}

// view returns the collection filtered and sorted per the query.
func (q tableQuery) view(m *parts.Manager) []model.Part {
	list := parts.Filter(m.List(), q.Search)
	parts.Sort(list, q.Sort, q.Desc)
	return list
}

// headerColumn is one sortable table header cell.
type headerColumn struct {
	Field  field.Def
	URL    string
	Active bool
	Desc   bool
}

// DirParam is the current direction as a query value.
func (q tableQuery) DirParam() string {
	if q.Desc {
		return "desc"
	}
	return "asc"
}

func (q tableQuery) params() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("q", q.Search)
	}
	v.Set("sort", string(q.Sort))
	v.Set("dir", q.DirParam())
	return v
}

// sortURL builds the link for a header click: same column flips the
// direction, a new column starts ascending.
func (q tableQuery) sortURL(id field.ID) string {
	dir := "asc"
	if q.Sort == id && !q.Desc {
		dir = "desc"
	}
	v := q.params()
	v.Set("sort", string(id))
	v.Set("dir", dir)
	return "/parts?" + v.Encode()
}

// baseURL returns to the table with the current filter and sort, out of
// edit mode.
func (q tableQuery) baseURL() string {
	return "/parts?" + q.params().Encode()
}

func (q tableQuery) editURL(id string) string {
	v := q.params()
	v.Set("edit", id)
	return "/parts?" + v.Encode()
}

// tableCell is one rendered cell: either a display value or an input,
// depending on the row's edit state.
type tableCell struct {
	Field field.Def
	Part  model.Part
	Edit  bool
}

// tableRow pairs a part with its cells.
type tableRow struct {
	Part    model.Part
	Edit    bool
	Cells   []tableCell
	EditURL string
}

// partsPageData feeds the parts.html template.
type partsPageData struct {
	PageData
	Query     tableQuery
	Columns   []headerColumn
	Rows      []tableRow
	ExportURL string
	CancelURL string
}

func (s *Server) partsPageData(r *http.Request, errMsg string) *partsPageData {
	q := parseTableQuery(r)
	vis := s.Settings.Visibility()
	list := q.view(s.Manager)

	cols := field.TableFields(vis)
	headers := make([]headerColumn, 0, len(cols)+1)
	pnDef, _ := field.Lookup(field.PartNumber)
	headers = append(headers, headerColumn{
		Field:  pnDef,
		URL:    q.sortURL(field.PartNumber),
		Active: q.Sort == field.PartNumber,
		Desc:   q.Desc,
	})
	for _, c := range cols {
		headers = append(headers, headerColumn{
			Field:  c,
			URL:    q.sortURL(c.ID),
			Active: q.Sort == c.ID,
			Desc:   q.Desc,
		})
	}

	rows := make([]tableRow, 0, len(list))
	for _, p := range list {
		edit := q.EditID != "" && q.EditID == p.ID
		cells := make([]tableCell, 0, len(cols))
		for _, c := range cols {
			cells = append(cells, tableCell{Field: c, Part: p, Edit: edit})
		}
		rows = append(rows, tableRow{Part: p, Edit: edit, Cells: cells, EditURL: q.editURL(p.ID)})
	}

	exportURL := "/parts/export"
	if v := r.URL.Query(); len(v) > 0 {
		v.Del("edit")
		if enc := v.Encode(); enc != "" {
			exportURL += "?" + enc
		}
	}

	return &partsPageData{
		PageData:  PageData{Title: "Parts Inventory", Error: errMsg},
		Query:     q,
		Columns:   headers,
		Rows:      rows,
		ExportURL: exportURL,
		CancelURL: q.baseURL(),
	}
}

// PartsPage handles GET /parts.
func (s *Server) PartsPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "parts.html", s.partsPageData(r, ""))
}

// PartNewPage handles GET /parts/new.
func (s *Server) PartNewPage(w http.ResponseWriter, r *http.Request) {
	s.renderPartForm(w, "")
}

func (s *Server) renderPartForm(w http.ResponseWriter, errMsg string) {
	vis := s.Settings.Visibility()
	s.Templates.Render(w, "part_new.html", &struct {
		PageData
		Fields       []field.Def
		ShowPlaced   bool
		ShowReleased bool
		Today        string
	}{
		PageData:     PageData{Title: "Add New Part", Error: errMsg},
		Fields:       field.FormFields(vis),
		ShowPlaced:   vis.SAPPlaced,
		ShowReleased: vis.SAPReleased,
		Today:        time.Now().Format("2006-01-02"),
	})
}

// PartCreateSubmit handles POST /parts.
func (s *Server) PartCreateSubmit(w http.ResponseWriter, r *http.Request) {
	vis := s.Settings.Visibility()
	draft := formDraft(r, "", field.FormFields(vis), true)
	draft.PartNumber = strings.TrimSpace(draft.PartNumber)
	if draft.PartNumber == "" {
		s.renderPartForm(w, "Part Number is required")
		return
	}

	s.Manager.Add(r.Context(), draft)
	http.Redirect(w, r, "/parts", http.StatusSeeOther)
}

// PartUpdateSubmit handles POST /parts/{id}: saving an inline edit. The
// patch covers exactly the visible columns, so hidden fields survive.
func (s *Server) PartUpdateSubmit(w http.ResponseWriter, r *http.Request) {
	vis := s.Settings.Visibility()
	patch := formPatch(r, "", field.TableFields(vis))
	if patch.PartNumber == nil || strings.TrimSpace(*patch.PartNumber) == "" {
		s.Templates.Render(w, "parts.html", s.partsPageData(r, "Part Number is required"))
		return
	}
	if patch.QualityStatus != nil && !model.ValidStatus(*patch.QualityStatus) {
		patch.QualityStatus = nil
	}

	s.Manager.Update(r.Context(), r.PathValue("id"), patch)
	http.Redirect(w, r, backToTable(r), http.StatusSeeOther)
}

// PartToggleSubmit handles POST /parts/{id}/toggle: the SAP status
// pills outside edit mode flip immediately, no separate save step.
func (s *Server) PartToggleSubmit(w http.ResponseWriter, r *http.Request) {
	released := r.FormValue("flag") == string(field.SAPReleased)
	s.Manager.ToggleFlag(r.Context(), r.PathValue("id"), released)
	http.Redirect(w, r, backToTable(r), http.StatusSeeOther)
}

// PartDeleteSubmit handles POST /parts/{id}/delete. The confirmation
// step lives in the template; an unknown id is a no-op.
func (s *Server) PartDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	s.Manager.Delete(r.Context(), r.PathValue("id"))
	http.Redirect(w, r, backToTable(r), http.StatusSeeOther)
}

// backToTable returns to the table preserving filter and sort state
// passed through the form.
func backToTable(r *http.Request) string {
	v := url.Values{}
	if q := r.FormValue("return_q"); q != "" {
		v.Set("q", q)
	}
	if sortBy := r.FormValue("return_sort"); sortBy != "" {
		v.Set("sort", sortBy)
		v.Set("dir", r.FormValue("return_dir"))
	}
	if enc := v.Encode(); enc != "" {
		return "/parts?" + enc
	}
	return "/parts"
}

// PartsExport handles GET /parts/export: the current filtered and
// sorted view as a CSV download named with the current date.
func (s *Server) PartsExport(w http.ResponseWriter, r *http.Request) {
	q := parseTableQuery(r)
	list := q.view(s.Manager)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(time.Now())+`"`)
	if err := export.Write(w, list, s.Settings.Visibility()); err != nil {
		slog.Error("failed to write csv export", "error", err)
	}
}
