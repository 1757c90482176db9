package model

import "time"

// Part represents one tracked inventory/quality record.
//
// Date-like attributes (delivery, inspection, expiry) hold plain
// YYYY-MM-DD strings as entered by the user; CreatedAt and UpdatedAt are
// system-assigned and never user-editable.
type Part struct {
	ID                    string    `json:"id"`
	PartNumber            string    `json:"partNumber"`
	PartDescription       string    `json:"partDescription,omitempty"`
	Supplier              string    `json:"supplier,omitempty"`
	DeliveryDate          string    `json:"deliveryDate,omitempty"`
	BatchNumberBox        string    `json:"batchNumberBox,omitempty"`
	BatchDateCode         string    `json:"batchDateCode,omitempty"`
	Count                 int       `json:"count"`
	ExpectedCount         *int      `json:"expectedCount,omitempty"`
	SAPPlaced             bool      `json:"sapPlaced"`
	SAPReleased           bool      `json:"sapReleased"`
	Comments              string    `json:"comments,omitempty"`
	Notes                 string    `json:"notes,omitempty"`
	InspectorName         string    `json:"inspectorName,omitempty"`
	InspectionDate        string    `json:"inspectionDate,omitempty"`
	QualityStatus         string    `json:"qualityStatus"`
	PurchaseOrder         string    `json:"purchaseOrder,omitempty"`
	StorageLocation       string    `json:"storageLocation,omitempty"`
	ExpiryDate            string    `json:"expiryDate,omitempty"`
	CertificateCompliance string    `json:"certificateCompliance,omitempty"`
	NonConformance        string    `json:"nonConformance,omitempty"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// Quality statuses.
const (
	StatusPending = "pending"
	StatusPass    = "pass"
	StatusFail    = "fail"
	StatusHold    = "hold"
)

// ValidStatus reports whether s is a known quality status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusPass, StatusFail, StatusHold:
		return true
	}
	return false
}

// Draft holds the user-supplied attributes of a part, before the system
// assigns an ID and timestamps.
type Draft struct {
	PartNumber            string `json:"partNumber"`
	PartDescription       string `json:"partDescription"`
	Supplier              string `json:"supplier"`
	DeliveryDate          string `json:"deliveryDate"`
	BatchNumberBox        string `json:"batchNumberBox"`
	BatchDateCode         string `json:"batchDateCode"`
	Count                 int    `json:"count"`
	ExpectedCount         *int   `json:"expectedCount"`
	SAPPlaced             bool   `json:"sapPlaced"`
	SAPReleased           bool   `json:"sapReleased"`
	Comments              string `json:"comments"`
	Notes                 string `json:"notes"`
	InspectorName         string `json:"inspectorName"`
	InspectionDate        string `json:"inspectionDate"`
	QualityStatus         string `json:"qualityStatus"`
	PurchaseOrder         string `json:"purchaseOrder"`
	StorageLocation       string `json:"storageLocation"`
	ExpiryDate            string `json:"expiryDate"`
	CertificateCompliance string `json:"certificateCompliance"`
	NonConformance        string `json:"nonConformance"`
}
