// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"staplewise/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrEnquiryNotFound is returned when no enquiry matches a lookup.
var ErrEnquiryNotFound = errors.New("enquiry not found")

// EnquiryRepository defines the standard operations for lead persistence.
type EnquiryRepository interface {
	// List returns every enquiry, newest first.
	List(ctx context.Context) ([]*entity.Enquiry, error)

	// FindByID retrieves a single enquiry by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Enquiry, error)

	// Create persists a new enquiry, generating its ID and CreatedAt and
	// stamping the initial PENDING status.
	Create(ctx context.Context, enquiry *entity.Enquiry) error

	// Update persists status/assignment changes to an existing enquiry.
	Update(ctx context.Context, enquiry *entity.Enquiry) error
}
