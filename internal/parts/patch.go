package parts

import "github.com/partdeck/partdeck/internal/model"

// Patch is a partial update: nil fields are left unchanged on the
// record. The update timestamp is always refreshed by the manager, never
// taken from the patch.
type Patch struct {
	PartNumber            *string `json:"partNumber"`
	PartDescription       *string `json:"partDescription"`
	Supplier              *string `json:"supplier"`
	DeliveryDate          *string `json:"deliveryDate"`
	BatchNumberBox        *string `json:"batchNumberBox"`
	BatchDateCode         *string `json:"batchDateCode"`
	Count                 *int    `json:"count"`
	ExpectedCount         *int    `json:"expectedCount"`
	ClearExpectedCount    bool    `json:"clearExpectedCount,omitempty"`
	SAPPlaced             *bool   `json:"sapPlaced"`
	SAPReleased           *bool   `json:"sapReleased"`
	Comments              *string `json:"comments"`
	Notes                 *string `json:"notes"`
	InspectorName         *string `json:"inspectorName"`
	InspectionDate        *string `json:"inspectionDate"`
	QualityStatus         *string `json:"qualityStatus"`
	PurchaseOrder         *string `json:"purchaseOrder"`
	StorageLocation       *string `json:"storageLocation"`
	ExpiryDate            *string `json:"expiryDate"`
	CertificateCompliance *string `json:"certificateCompliance"`
	NonConformance        *string `json:"nonConformance"`
}

func (p Patch) apply(target *model.Part) {
	if p.PartNumber != nil {
		target.PartNumber = *p.PartNumber
	}
	if p.PartDescription != nil {
		target.PartDescription = *p.PartDescription
	}
	if p.Supplier != nil {
		target.Supplier = *p.Supplier
	}
	if p.DeliveryDate != nil {
		target.DeliveryDate = *p.DeliveryDate
	}
	if p.BatchNumberBox != nil {
		target.BatchNumberBox = *p.BatchNumberBox
	}
	if p.BatchDateCode != nil {
		target.BatchDateCode = *p.BatchDateCode
	}
	if p.Count != nil {
		target.Count = *p.Count
	}
	if p.ClearExpectedCount {
		target.ExpectedCount = nil
	} else if p.ExpectedCount != nil {
		n := *p.ExpectedCount
		target.ExpectedCount = &n
	}
	if p.SAPPlaced != nil {
		target.SAPPlaced = *p.SAPPlaced
	}
	if p.SAPReleased != nil {
		target.SAPReleased = *p.SAPReleased
	}
	if p.Comments != nil {
		target.Comments = *p.Comments
	}
	if p.Notes != nil {
		target.Notes = *p.Notes
	}
	if p.InspectorName != nil {
		target.InspectorName = *p.InspectorName
	}
	if p.InspectionDate != nil {
		target.InspectionDate = *p.InspectionDate
	}
	if p.QualityStatus != nil && model.ValidStatus(*p.QualityStatus) {
		target.QualityStatus = *p.QualityStatus
	}
	if p.PurchaseOrder != nil {
		target.PurchaseOrder = *p.PurchaseOrder
	}
	if p.StorageLocation != nil {
		target.StorageLocation = *p.StorageLocation
	}
	if p.ExpiryDate != nil {
		target.ExpiryDate = *p.ExpiryDate
	}
	if p.CertificateCompliance != nil {
		target.CertificateCompliance = *p.CertificateCompliance
	}
	if p.NonConformance != nil {
		target.NonConformance = *p.NonConformance
	}
}
