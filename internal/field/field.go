// Package field defines the optional part attributes, their kinds, and
// the canonical order in which every view presents them. Column order in
// the table, input order in the form, and column plus tab order in the
// bulk grid are all derived here, so the views never branch on field
// names themselves.
package field

import (
	"strconv"
	"strings"
	"time"

	"github.com/partdeck/partdeck/internal/model"
)

// Kind classifies a field's value: it decides how the field is rendered,
// parsed, and compared.
type Kind int

const (
	Text Kind = iota
	Number
	Date
	Boolean
	Enum
)

// ID identifies a part attribute. The values double as form input names
// and JSON keys.
type ID string

const (
	PartNumber            ID = "partNumber"
	PartDescription       ID = "partDescription"
	Supplier              ID = "supplier"
	DeliveryDate          ID = "deliveryDate"
	BatchNumberBox        ID = "batchNumberBox"
	BatchDateCode         ID = "batchDateCode"
	Count                 ID = "count"
	ExpectedCount         ID = "expectedCount"
	SAPPlaced             ID = "sapPlaced"
	SAPReleased           ID = "sapReleased"
	Comments              ID = "comments"
	Notes                 ID = "notes"
	InspectorName         ID = "inspectorName"
	InspectionDate        ID = "inspectionDate"
	QualityStatus         ID = "qualityStatus"
	PurchaseOrder         ID = "purchaseOrder"
	StorageLocation       ID = "storageLocation"
	ExpiryDate            ID = "expiryDate"
	CertificateCompliance ID = "certificateCompliance"
	NonConformance        ID = "nonConformance"
	CreatedAt             ID = "createdAt"
	UpdatedAt             ID = "updatedAt"
)

// Def describes one field.
type Def struct {
	ID    ID
	Label string
	Kind  Kind
}

var defs = map[ID]Def{
	PartNumber:            {PartNumber, "Part Number", Text},
	PartDescription:       {PartDescription, "Part Description", Text},
	Supplier:              {Supplier, "Supplier", Text},
	DeliveryDate:          {DeliveryDate, "Delivery Date to Moffat", Date},
	BatchNumberBox:        {BatchNumberBox, "Batch Number (Box)", Text},
	BatchDateCode:         {BatchDateCode, "Batch/Date Code (Part)", Text},
	Count:                 {Count, "Count", Number},
	ExpectedCount:         {ExpectedCount, "Expected Count", Number},
	SAPPlaced:             {SAPPlaced, "SAP Placed", Boolean},
	SAPReleased:           {SAPReleased, "SAP Released", Boolean},
	Comments:              {Comments, "Comments", Text},
	Notes:                 {Notes, "Notes", Text},
	InspectorName:         {InspectorName, "Inspector Name", Text},
	InspectionDate:        {InspectionDate, "Inspection Date", Date},
	QualityStatus:         {QualityStatus, "Quality Status", Enum},
	PurchaseOrder:         {PurchaseOrder, "Purchase Order", Text},
	StorageLocation:       {StorageLocation, "Storage Location", Text},
	ExpiryDate:            {ExpiryDate, "Expiry Date", Date},
	CertificateCompliance: {CertificateCompliance, "Certificate of Compliance", Text},
	NonConformance:        {NonConformance, "Non-Conformance", Text},
	CreatedAt:             {CreatedAt, "Created Date", Date},
	UpdatedAt:             {UpdatedAt, "Last Updated", Date},
}

// formOrder is the canonical input/tab sequence for the form and the bulk
// grid. The part number always leads and is not subject to visibility.
var formOrder = []ID{
	PartDescription, Supplier, DeliveryDate, BatchNumberBox, BatchDateCode,
	Count, ExpectedCount, InspectorName, InspectionDate, QualityStatus,
	Comments, Notes, PurchaseOrder, StorageLocation, ExpiryDate,
	CertificateCompliance, NonConformance,
}

// tableOrder is the table's column subset.
var tableOrder = []ID{
	PartDescription, Supplier, DeliveryDate, Count, BatchDateCode,
	SAPPlaced, SAPReleased, QualityStatus,
}

// exportOrder drives the CSV columns between the leading part number and
// the trailing created/updated/id columns.
var exportOrder = []ID{
	PartDescription, Supplier, DeliveryDate, BatchNumberBox, BatchDateCode,
	Count, ExpectedCount, SAPPlaced, SAPReleased, Comments, Notes,
	InspectorName, InspectionDate, QualityStatus, PurchaseOrder,
	StorageLocation, ExpiryDate, CertificateCompliance, NonConformance,
}

// SettingsCore and SettingsAdditional group the switches for the settings
// page, matching the visibility defaults.
var SettingsCore = []ID{
	PartDescription, Supplier, DeliveryDate, BatchNumberBox, BatchDateCode,
	Count, ExpectedCount, SAPPlaced, SAPReleased, Comments, Notes,
	InspectorName, InspectionDate, QualityStatus,
}

var SettingsAdditional = []ID{
	PurchaseOrder, StorageLocation, ExpiryDate, CertificateCompliance,
	NonConformance,
}

// Lookup returns the definition for id.
func Lookup(id ID) (Def, bool) {
	d, ok := defs[id]
	return d, ok
}

// Label returns the display label for id, or the id itself when unknown.
func Label(id ID) string {
	if d, ok := defs[id]; ok {
		return d.Label
	}
	return string(id)
}

// Visible reports whether the optional field id is enabled in vis.
// Fields outside the toggle set (part number, timestamps) are always
// visible.
func Visible(vis model.FieldVisibility, id ID) bool {
	switch id {
	case PartDescription:
		return vis.PartDescription
	case Supplier:
		return vis.Supplier
	case DeliveryDate:
		return vis.DeliveryDate
	case BatchNumberBox:
		return vis.BatchNumberBox
	case BatchDateCode:
		return vis.BatchDateCode
	case Count:
		return vis.Count
	case ExpectedCount:
		return vis.ExpectedCount
	case SAPPlaced:
		return vis.SAPPlaced
	case SAPReleased:
		return vis.SAPReleased
	case Comments:
		return vis.Comments
	case Notes:
		return vis.Notes
	case InspectorName:
		return vis.InspectorName
	case InspectionDate:
		return vis.InspectionDate
	case QualityStatus:
		return vis.QualityStatus
	case PurchaseOrder:
		return vis.PurchaseOrder
	case StorageLocation:
		return vis.StorageLocation
	case ExpiryDate:
		return vis.ExpiryDate
	case CertificateCompliance:
		return vis.CertificateCompliance
	case NonConformance:
		return vis.NonConformance
	}
	return true
}

// SetVisible flips one switch in vis. It reports whether id names a
// toggleable field.
func SetVisible(vis *model.FieldVisibility, id ID, visible bool) bool {
	switch id {
	case PartDescription:
		vis.PartDescription = visible
	case Supplier:
		vis.Supplier = visible
	case DeliveryDate:
		vis.DeliveryDate = visible
	case BatchNumberBox:
		vis.BatchNumberBox = visible
	case BatchDateCode:
		vis.BatchDateCode = visible
	case Count:
		vis.Count = visible
	case ExpectedCount:
		vis.ExpectedCount = visible
	case SAPPlaced:
		vis.SAPPlaced = visible
	case SAPReleased:
		vis.SAPReleased = visible
	case Comments:
		vis.Comments = visible
	case Notes:
		vis.Notes = visible
	case InspectorName:
		vis.InspectorName = visible
	case InspectionDate:
		vis.InspectionDate = visible
	case QualityStatus:
		vis.QualityStatus = visible
	case PurchaseOrder:
		vis.PurchaseOrder = visible
	case StorageLocation:
		vis.StorageLocation = visible
	case ExpiryDate:
		vis.ExpiryDate = visible
	case CertificateCompliance:
		vis.CertificateCompliance = visible
	case NonConformance:
		vis.NonConformance = visible
	default:
		return false
	}
	return true
}

func project(order []ID, vis model.FieldVisibility) []Def {
	out := make([]Def, 0, len(order))
	for _, id := range order {
		if Visible(vis, id) {
			out = append(out, defs[id])
		}
	}
	return out
}

// FormFields returns the visible optional fields in form/grid order.
func FormFields(vis model.FieldVisibility) []Def { return project(formOrder, vis) }

// GridFields returns the bulk grid's columns after the part number, in
// the same canonical order the form uses.
func GridFields(vis model.FieldVisibility) []Def { return project(formOrder, vis) }

// TableFields returns the visible table columns after the part number.
func TableFields(vis model.FieldVisibility) []Def { return project(tableOrder, vis) }

// ExportFields returns the visible CSV columns between the part number
// and the trailing created/updated/id columns.
func ExportFields(vis model.FieldVisibility) []Def { return project(exportOrder, vis) }

// Value returns the raw value of the field on p as a comparable Go type:
// string for text/date/enum, int for numbers (absent expected count maps
// to -1 so it sorts before zero), bool for flags.
func Value(p model.Part, id ID) any {
	switch id {
	case PartNumber:
		return p.PartNumber
	case PartDescription:
		return p.PartDescription
	case Supplier:
		return p.Supplier
	case DeliveryDate:
		return p.DeliveryDate
	case BatchNumberBox:
		return p.BatchNumberBox
	case BatchDateCode:
		return p.BatchDateCode
	case Count:
		return p.Count
	case ExpectedCount:
		if p.ExpectedCount == nil {
			return -1
		}
		return *p.ExpectedCount
	case SAPPlaced:
		return p.SAPPlaced
	case SAPReleased:
		return p.SAPReleased
	case Comments:
		return p.Comments
	case Notes:
		return p.Notes
	case InspectorName:
		return p.InspectorName
	case InspectionDate:
		return p.InspectionDate
	case QualityStatus:
		return p.QualityStatus
	case PurchaseOrder:
		return p.PurchaseOrder
	case StorageLocation:
		return p.StorageLocation
	case ExpiryDate:
		return p.ExpiryDate
	case CertificateCompliance:
		return p.CertificateCompliance
	case NonConformance:
		return p.NonConformance
	case CreatedAt:
		return p.CreatedAt
	case UpdatedAt:
		return p.UpdatedAt
	}
	return ""
}

// Compare orders two parts by the given field using the field kind's
// natural ordering: folded lexicographic for text, numeric for numbers,
// chronological for dates and timestamps, false-before-true for flags.
func Compare(a, b model.Part, id ID) int {
	av, bv := Value(a, id), Value(b, id)
	switch x := av.(type) {
	case int:
		y := bv.(int)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	case bool:
		y := bv.(bool)
		switch {
		case !x && y:
			return -1
		case x && !y:
			return 1
		}
		return 0
	case string:
		// ISO dates compare correctly as strings.
		return strings.Compare(strings.ToLower(x), strings.ToLower(bv.(string)))
	case time.Time:
		return x.Compare(bv.(time.Time))
	}
	return 0
}

// ParseCount converts a numeric-looking text value to an int, defaulting
// to 0 when unparseable.
func ParseCount(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// ParseOptionalCount converts a numeric-looking text value to an int
// pointer, absent when blank or unparseable.
func ParseOptionalCount(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
