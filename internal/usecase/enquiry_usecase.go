package usecase

import (
	"context"

	"staplewise/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitEnquiryInput defines the data captured from the storefront enquiry
// forms. Submission does not require a registered account.
type SubmitEnquiryInput struct {
	Type        entity.EnquiryType
	ProductID   uuid.UUID
	Quantity    int
	CompanyName string
	Pincode     string
	Email       string
	Phone       string
	GST         string
}

// UpdateEnquiryInput moves an enquiry through the sales workflow.
type UpdateEnquiryInput struct {
	ID         uuid.UUID
	Status     entity.EnquiryStatus
	AssignedTo uuid.UUID
}

// EnquiryUsecase defines the interface for lead management operations.
type EnquiryUsecase interface {
	SubmitEnquiry(ctx context.Context, input *SubmitEnquiryInput) (*entity.Enquiry, error)
	ListEnquiries(ctx context.Context) ([]*entity.Enquiry, error)
	UpdateEnquiry(ctx context.Context, input *UpdateEnquiryInput) (*entity.Enquiry, error)
}
