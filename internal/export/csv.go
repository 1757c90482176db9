// Package export serialises the part collection to CSV, honoring the
// field visibility configuration: hidden fields are omitted from both
// header and rows, not just blanked.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/partdeck/partdeck/internal/field"
	"github.com/partdeck/partdeck/internal/model"
)

const (
	dateLayout      = "02/01/2006"
	timestampLayout = "02/01/2006 15:04:05"
)

// Filename returns the download name for an export taken at now.
func Filename(now time.Time) string {
	return fmt.Sprintf("QM-Parts-Export-%s.csv", now.Format("2006-01-02"))
}

// Write emits a header row and one row per part. The header always
// starts with Part Number and always ends with the created/updated/id
// columns; the visible optional fields sit between, in export order.
// Quoting follows RFC 4180 with \n-joined rows.
func Write(w io.Writer, parts []model.Part, vis model.FieldVisibility) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	fields := field.ExportFields(vis)

	header := make([]string, 0, len(fields)+4)
	header = append(header, field.Label(field.PartNumber))
	for _, f := range fields {
		header = append(header, f.Label)
	}
	header = append(header, "Created Date", "Last Updated", "Record ID")
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, p := range parts {
		row := make([]string, 0, len(header))
		row = append(row, p.PartNumber)
		for _, f := range fields {
			row = append(row, cell(p, f))
		}
		row = append(row,
			p.CreatedAt.Local().Format(timestampLayout),
			p.UpdatedAt.Local().Format(timestampLayout),
			p.ID,
		)
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// cell formats one field value by kind: dates locale-formatted, booleans
// Yes/No, the quality status upper-cased, absent numbers blank.
func cell(p model.Part, f field.Def) string {
	v := field.Value(p, f.ID)
	switch f.Kind {
	case field.Number:
		n := v.(int)
		if f.ID == field.ExpectedCount && p.ExpectedCount == nil {
			return ""
		}
		return strconv.Itoa(n)
	case field.Boolean:
		if v.(bool) {
			return "Yes"
		}
		return "No"
	case field.Enum:
		return strings.ToUpper(v.(string))
	case field.Date:
		return formatDate(v.(string))
	}
	return v.(string)
}

// formatDate renders a stored YYYY-MM-DD value for display; anything
// unparseable passes through as entered.
func formatDate(s string) string {
	if s == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return s
	}
	return t.Format(dateLayout)
}
