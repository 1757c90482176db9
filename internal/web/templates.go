package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/partdeck/partdeck/internal/field"
	"github.com/partdeck/partdeck/internal/model"
	"github.com/partdeck/partdeck/internal/parts"
	"github.com/partdeck/partdeck/internal/settings"
	webembed "github.com/partdeck/partdeck/web"
)

// Templates holds parsed HTML templates.
type Templates struct {
	templates map[string]*template.Template
}

// FuncMap returns the template function map.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"fieldLabel": func(id field.ID) string { return field.Label(id) },
		"upper":      strings.ToUpper,
		"fmtDate": func(s string) string {
			if s == "" {
				return "-"
			}
			t, err := time.Parse("2006-01-02", s)
			if err != nil {
				return s
			}
			return t.Format("02/01/2006")
		},
		"fmtTime": func(t time.Time) string {
			return t.Local().Format("02/01/2006 15:04")
		},
		"statusClass": func(status string) string {
			switch status {
			case model.StatusPass:
				return "badge-pass"
			case model.StatusFail:
				return "badge-fail"
			case model.StatusHold:
				return "badge-hold"
			default:
				return "badge-pending"
			}
		},
		"yesNo": func(b bool) string {
			if b {
				return "Yes"
			}
			return "No"
		},
		"add": func(a, b int) int { return a + b },
		"kindName": func(k field.Kind) string {
			switch k {
			case field.Number:
				return "number"
			case field.Date:
				return "date"
			case field.Boolean:
				return "boolean"
			case field.Enum:
				return "enum"
			}
			return "text"
		},
		// cellText renders a field's display value outside edit mode.
		"cellText": func(p model.Part, id field.ID) string {
			def, _ := field.Lookup(id)
			v := field.Value(p, id)
			switch def.Kind {
			case field.Number:
				if id == field.ExpectedCount && p.ExpectedCount == nil {
					return "-"
				}
				return strconv.Itoa(v.(int))
			case field.Date:
				s := v.(string)
				if s == "" {
					return "-"
				}
				if t, err := time.Parse("2006-01-02", s); err == nil {
					return t.Format("02/01/2006")
				}
				return s
			}
			if s, ok := v.(string); ok {
				if s == "" {
					return "-"
				}
				return s
			}
			return ""
		},
		// inputValue renders a field's raw value for an input element.
		"inputValue": func(p model.Part, id field.ID) string {
			switch v := field.Value(p, id).(type) {
			case string:
				return v
			case int:
				if id == field.ExpectedCount && p.ExpectedCount == nil {
					return ""
				}
				return strconv.Itoa(v)
			case bool:
				return strconv.FormatBool(v)
			}
			return ""
		},
		"boolValue": func(p model.Part, id field.ID) bool {
			v, _ := field.Value(p, id).(bool)
			return v
		},
		"statuses": func() []string {
			return []string{model.StatusPending, model.StatusPass, model.StatusFail, model.StatusHold}
		},
	}
}

// LoadTemplates parses all page templates with the layout.
func LoadTemplates() (*Templates, error) {
	tfs := webembed.TemplatesFS()

	layoutBytes, err := fs.ReadFile(tfs, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("reading layout template: %w", err)
	}

	pages := []string{
		"dashboard.html",
		"parts.html",
		"part_new.html",
		"bulk.html",
		"settings.html",
	}

	ts := &Templates{templates: make(map[string]*template.Template)}

	for _, page := range pages {
		pageBytes, err := fs.ReadFile(tfs, page)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", page, err)
		}

		tmpl := template.New(page).Funcs(FuncMap())
		tmpl, err = tmpl.Parse(string(layoutBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing layout for %s: %w", page, err)
		}
		tmpl, err = tmpl.Parse(string(pageBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}

		ts.templates[page] = tmpl
	}

	return ts, nil
}

// Render renders a template with the given data.
func (ts *Templates) Render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := ts.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

// PageData is the base data passed to all templates.
type PageData struct {
	Title string
	Error string
}

// Server holds all dependencies for page handlers.
type Server struct {
	Manager   *parts.Manager
	Settings  *settings.Settings
	Templates *Templates
}
