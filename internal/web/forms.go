package web

import (
	"net/http"

	"github.com/partdeck/partdeck/internal/field"
	"github.com/partdeck/partdeck/internal/model"
	"github.com/partdeck/partdeck/internal/parts"
)

// setDraftValue writes one submitted form value onto the draft,
// converting by field kind. Booleans arrive as Yes/No selects or
// checkbox "true" values.
func setDraftValue(d *model.Draft, id field.ID, value string) {
	switch id {
	case field.PartNumber:
		d.PartNumber = value
	case field.PartDescription:
		d.PartDescription = value
	case field.Supplier:
		d.Supplier = value
	case field.DeliveryDate:
		d.DeliveryDate = value
	case field.BatchNumberBox:
		d.BatchNumberBox = value
	case field.BatchDateCode:
		d.BatchDateCode = value
	case field.Count:
		d.Count = field.ParseCount(value)
	case field.ExpectedCount:
		d.ExpectedCount = field.ParseOptionalCount(value)
	case field.SAPPlaced:
		d.SAPPlaced = value == "true"
	case field.SAPReleased:
		d.SAPReleased = value == "true"
	case field.Comments:
		d.Comments = value
	case field.Notes:
		d.Notes = value
	case field.InspectorName:
		d.InspectorName = value
	case field.InspectionDate:
		d.InspectionDate = value
	case field.QualityStatus:
		d.QualityStatus = value
	case field.PurchaseOrder:
		d.PurchaseOrder = value
	case field.StorageLocation:
		d.StorageLocation = value
	case field.ExpiryDate:
		d.ExpiryDate = value
	case field.CertificateCompliance:
		d.CertificateCompliance = value
	case field.NonConformance:
		d.NonConformance = value
	}
}

// setPatchValue writes one submitted form value onto the patch. Only
// fields that were actually submitted get a pointer, so hidden fields
// are never blanked by an edit.
func setPatchValue(p *parts.Patch, id field.ID, value string) {
	str := func() *string { v := value; return &v }
	boolean := func() *bool { v := value == "true"; return &v }

	switch id {
	case field.PartNumber:
		p.PartNumber = str()
	case field.PartDescription:
		p.PartDescription = str()
	case field.Supplier:
		p.Supplier = str()
	case field.DeliveryDate:
		p.DeliveryDate = str()
	case field.BatchNumberBox:
		p.BatchNumberBox = str()
	case field.BatchDateCode:
		p.BatchDateCode = str()
	case field.Count:
		n := field.ParseCount(value)
		p.Count = &n
	case field.ExpectedCount:
		if n := field.ParseOptionalCount(value); n != nil {
			p.ExpectedCount = n
		} else {
			p.ClearExpectedCount = true
		}
	case field.SAPPlaced:
		p.SAPPlaced = boolean()
	case field.SAPReleased:
		p.SAPReleased = boolean()
	case field.Comments:
		p.Comments = str()
	case field.Notes:
		p.Notes = str()
	case field.InspectorName:
		p.InspectorName = str()
	case field.InspectionDate:
		p.InspectionDate = str()
	case field.QualityStatus:
		p.QualityStatus = str()
	case field.PurchaseOrder:
		p.PurchaseOrder = str()
	case field.StorageLocation:
		p.StorageLocation = str()
	case field.ExpiryDate:
		p.ExpiryDate = str()
	case field.CertificateCompliance:
		p.CertificateCompliance = str()
	case field.NonConformance:
		p.NonConformance = str()
	}
}

// formDraft builds a draft from the named form inputs. prefix scopes the
// input names (bulk grid rows use "row<N>."). Only the given fields plus
// the part number and SAP flags are read.
func formDraft(r *http.Request, prefix string, defs []field.Def, withFlags bool) model.Draft {
	var d model.Draft
	setDraftValue(&d, field.PartNumber, r.FormValue(prefix+string(field.PartNumber)))
	for _, f := range defs {
		setDraftValue(&d, f.ID, r.FormValue(prefix+string(f.ID)))
	}
	if withFlags {
		setDraftValue(&d, field.SAPPlaced, r.FormValue(prefix+string(field.SAPPlaced)))
		setDraftValue(&d, field.SAPReleased, r.FormValue(prefix+string(field.SAPReleased)))
	}
	return d
}

// formPatch builds a partial update from the named form inputs,
// covering exactly the submitted fields.
func formPatch(r *http.Request, prefix string, defs []field.Def) parts.Patch {
	var p parts.Patch
	setPatchValue(&p, field.PartNumber, r.FormValue(prefix+string(field.PartNumber)))
	for _, f := range defs {
		setPatchValue(&p, f.ID, r.FormValue(prefix+string(f.ID)))
	}
	return p
}
