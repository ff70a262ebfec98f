// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EnquiryType distinguishes buy leads from sell leads.
type EnquiryType string

const (
	// EnquiryBuy is a purchase enquiry submitted against a listing.
	EnquiryBuy EnquiryType = "BUY"
	// EnquirySell is a supply offer submitted against a listing.
	EnquirySell EnquiryType = "SELL"
)

// IsValid checks if the EnquiryType is a valid value.
func (t EnquiryType) IsValid() bool {
	return t == EnquiryBuy || t == EnquirySell
}

// EnquiryStatus tracks an enquiry through the sales workflow.
type EnquiryStatus string

const (
	// EnquiryPending is the initial status of every submitted enquiry.
	EnquiryPending EnquiryStatus = "PENDING"
	// EnquiryAssigned means a sales employee owns the enquiry.
	EnquiryAssigned EnquiryStatus = "ASSIGNED"
	// EnquiryCompleted means the enquiry was closed successfully.
	EnquiryCompleted EnquiryStatus = "COMPLETED"
	// EnquiryRejected means the enquiry was closed without a deal.
	EnquiryRejected EnquiryStatus = "REJECTED"
)

// IsValid checks if the EnquiryStatus is a valid value.
func (s EnquiryStatus) IsValid() bool {
	switch s {
	case EnquiryPending, EnquiryAssigned, EnquiryCompleted, EnquiryRejected:
		return true
	default:
		return false
	}
}

// Enquiry is one buy/sell lead captured from the storefront forms.
// Submission is anonymous-friendly: contact details live on the enquiry
// itself rather than requiring a registered account.
type Enquiry struct {
	ID          uuid.UUID     `json:"id"`
	Type        EnquiryType   `json:"type"`
	ProductID   uuid.UUID     `json:"productId"`
	Quantity    int           `json:"quantity"` // Requested quantity in kg.
	CompanyName string        `json:"companyName"`
	Pincode     string        `json:"pincode"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	GST         string        `json:"gst,omitempty"`
	Status      EnquiryStatus `json:"status"`
	AssignedTo  uuid.UUID     `json:"assignedTo,omitzero"` // Sales account that owns the lead; zero when unassigned.
	CreatedAt   time.Time     `json:"createdAt"`
}
