package model

// FieldVisibility is the per-installation show/hide configuration for the
// optional part attributes. It is shared by every view; hiding a field is
// presentation-only and never touches stored data.
//
// Readers unmarshal persisted blobs on top of DefaultFieldVisibility so
// that switches absent from old blobs keep their default value.
type FieldVisibility struct {
	PartDescription       bool `json:"partDescription"`
	Supplier              bool `json:"supplier"`
	DeliveryDate          bool `json:"deliveryDate"`
	BatchNumberBox        bool `json:"batchNumberBox"`
	BatchDateCode         bool `json:"batchDateCode"`
	Count                 bool `json:"count"`
	ExpectedCount         bool `json:"expectedCount"`
	SAPPlaced             bool `json:"sapPlaced"`
	SAPReleased           bool `json:"sapReleased"`
	Comments              bool `json:"comments"`
	Notes                 bool `json:"notes"`
	InspectorName         bool `json:"inspectorName"`
	InspectionDate        bool `json:"inspectionDate"`
	QualityStatus         bool `json:"qualityStatus"`
	PurchaseOrder         bool `json:"purchaseOrder"`
	StorageLocation       bool `json:"storageLocation"`
	ExpiryDate            bool `json:"expiryDate"`
	CertificateCompliance bool `json:"certificateCompliance"`
	NonConformance        bool `json:"nonConformance"`
}

// DefaultFieldVisibility returns the initial configuration: the fourteen
// core fields shown, the five additional fields hidden.
func DefaultFieldVisibility() FieldVisibility {
	return FieldVisibility{
		PartDescription: true,
		Supplier:        true,
		DeliveryDate:    true,
		BatchNumberBox:  true,
		BatchDateCode:   true,
		Count:           true,
		ExpectedCount:   true,
		SAPPlaced:       true,
		SAPReleased:     true,
		Comments:        true,
		Notes:           true,
		InspectorName:   true,
		InspectionDate:  true,
		QualityStatus:   true,
	}
}
