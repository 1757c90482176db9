package parts

import (
	"testing"

	"github.com/partdeck/partdeck/internal/field"
	"github.com/partdeck/partdeck/internal/model"
)

func TestFilterMatchesNumberSupplierDescription(t *testing.T) {
	list := []model.Part{
		{PartNumber: "A-100", Supplier: "Acme"},
		{PartNumber: "B-200", Supplier: "Globex"},
		{PartNumber: "C-300", PartDescription: "acme compatible bracket"},
	}

	got := Filter(list, "acme")
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].PartNumber != "A-100" || got[1].PartNumber != "C-300" {
		t.Errorf("unexpected matches: %+v", got)
	}

	only := Filter(list, "ACME")
	if len(only) != 2 {
		t.Error("expected case-insensitive match")
	}

	if len(Filter(list, "")) != 3 {
		t.Error("expected empty query to match all")
	}
	if len(Filter(list, "zzz")) != 0 {
		t.Error("expected no matches for zzz")
	}
}

func TestSearchScenario(t *testing.T) {
	list := []model.Part{
		{PartNumber: "A-100", Supplier: "Acme"},
		{PartNumber: "B-200"},
	}
	got := Filter(list, "acme")
	if len(got) != 1 || got[0].PartNumber != "A-100" {
		t.Errorf(`expected exactly ["A-100"], got %+v`, got)
	}
}

func TestSortByCountAndReverse(t *testing.T) {
	list := []model.Part{
		{PartNumber: "P5", Count: 5},
		{PartNumber: "P1", Count: 1},
		{PartNumber: "P3", Count: 3},
	}

	Sort(list, field.Count, false)
	if list[0].Count != 1 || list[1].Count != 3 || list[2].Count != 5 {
		t.Errorf("expected ascending [1 3 5], got %+v", list)
	}

	Sort(list, field.Count, true)
	if list[0].Count != 5 || list[1].Count != 3 || list[2].Count != 1 {
		t.Errorf("expected descending [5 3 1], got %+v", list)
	}
}

func TestSortByDateField(t *testing.T) {
	list := []model.Part{
		{PartNumber: "B", DeliveryDate: "2026-02-01"},
		{PartNumber: "A", DeliveryDate: "2026-01-15"},
		{PartNumber: "C", DeliveryDate: ""},
	}
	Sort(list, field.DeliveryDate, false)
	if list[0].PartNumber != "C" || list[1].PartNumber != "A" || list[2].PartNumber != "B" {
		t.Errorf("unexpected chronological order: %+v", list)
	}
}

func TestStats(t *testing.T) {
	list := []model.Part{
		{QualityStatus: model.StatusPass, SAPPlaced: true, SAPReleased: true},
		{QualityStatus: model.StatusFail, SAPPlaced: true},
		{QualityStatus: model.StatusHold},
		{QualityStatus: model.StatusPending},
	}
	s := Stats(list)
	if s.Total != 4 || s.SAPPlaced != 2 || s.SAPReleased != 1 || s.QualityIssues != 2 {
		t.Errorf("unexpected summary: %+v", s)
	}
}
