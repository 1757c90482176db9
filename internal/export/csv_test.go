package export

import (
	"strings"
	"testing"
	"time"

	"github.com/partdeck/partdeck/internal/model"
)

func testPart(pn string) model.Part {
	ts := time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC)
	return model.Part{
		ID:            "id-" + pn,
		PartNumber:    pn,
		QualityStatus: model.StatusPending,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	}
}

func TestFilenameEmbedsDate(t *testing.T) {
	now := time.Date(2026, 8, 29, 15, 0, 0, 0, time.UTC)
	if got := Filename(now); got != "QM-Parts-Export-2026-08-29.csv" {
		t.Errorf("unexpected filename %q", got)
	}
}

func TestAllFieldsHiddenKeepsMandatoryColumns(t *testing.T) {
	var vis model.FieldVisibility // everything hidden
	parts := []model.Part{testPart("A-100"), testPart("B-200")}

	var buf strings.Builder
	if err := Write(&buf, parts, vis); err != nil {
		t.Fatalf("Write: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines", len(lines))
	}
	if lines[0] != "Part Number,Created Date,Last Updated,Record ID" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "A-100,") || !strings.HasSuffix(lines[1], ",id-A-100") {
		t.Errorf("unexpected row %q", lines[1])
	}
}

func TestHiddenFieldOmittedFromHeaderAndRows(t *testing.T) {
	vis := model.DefaultFieldVisibility()
	vis.Supplier = false

	p := testPart("A-100")
	p.Supplier = "Acme"

	var buf strings.Builder
	if err := Write(&buf, []model.Part{p}, vis); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "Supplier") {
		t.Error("expected Supplier column omitted from header")
	}
	if strings.Contains(out, "Acme") {
		t.Error("expected supplier value omitted from rows")
	}
	// Hiding is presentation-only: the record still carries the value.
	if p.Supplier != "Acme" {
		t.Error("export must not mutate the record")
	}
}

func TestValueFormatting(t *testing.T) {
	vis := model.DefaultFieldVisibility()
	exp := 12
	p := testPart("A-100")
	p.DeliveryDate = "2026-03-05"
	p.Count = 7
	p.ExpectedCount = &exp
	p.SAPPlaced = true
	p.QualityStatus = model.StatusHold

	var buf strings.Builder
	if err := Write(&buf, []model.Part{p}, vis); err != nil {
		t.Fatalf("Write: %v", err)
	}
	row := strings.Split(buf.String(), "\n")[1]

	for _, want := range []string{"05/03/2026", ",7,", ",12,", "Yes", "No", "HOLD"} {
		if !strings.Contains(row, want) {
			t.Errorf("expected row to contain %q, got %q", want, row)
		}
	}
}

func TestAbsentExpectedCountBlank(t *testing.T) {
	vis := model.FieldVisibility{ExpectedCount: true}
	p := testPart("A-100")

	var buf strings.Builder
	if err := Write(&buf, []model.Part{p}, vis); err != nil {
		t.Fatal(err)
	}
	row := strings.Split(buf.String(), "\n")[1]
	if !strings.HasPrefix(row, "A-100,,") {
		t.Errorf("expected blank expected-count cell, got %q", row)
	}
}

func TestQuotingAndEscaping(t *testing.T) {
	vis := model.FieldVisibility{Comments: true, PartDescription: true}
	p := testPart(`A,100`)
	p.Comments = `said "ok", then left`
	p.PartDescription = "line one\nline two"

	var buf strings.Builder
	if err := Write(&buf, []model.Part{p}, vis); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.Contains(out, `"A,100"`) {
		t.Error("expected comma-bearing value to be quoted")
	}
	if !strings.Contains(out, `"said ""ok"", then left"`) {
		t.Error("expected internal quotes doubled inside a quoted value")
	}
	if !strings.Contains(out, "\"line one\nline two\"") {
		t.Error("expected newline-bearing value to be quoted")
	}
	if strings.Contains(out, "\r\n") {
		t.Error("expected \\n-joined rows, found CRLF")
	}
}
