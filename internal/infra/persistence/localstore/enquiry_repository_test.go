package localstore

import (
	"context"
	"testing"

	"staplewise/internal/domain/entity"
	"staplewise/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnquiryRepository_CreateStampsPending(t *testing.T) {
	repo, err := NewEnquiryRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	enquiry := &entity.Enquiry{
		Type:        entity.EnquiryBuy,
		ProductID:   uuid.New(),
		Quantity:    500,
		CompanyName: "ABC Foods",
		Pincode:     "560001",
		Email:       "buyer@example.com",
		Phone:       "+919876543212",
	}
	require.NoError(t, repo.Create(ctx, enquiry))

	assert.NotZero(t, enquiry.ID)
	assert.Equal(t, entity.EnquiryPending, enquiry.Status)
	assert.False(t, enquiry.CreatedAt.IsZero())
}

func TestEnquiryRepository_UpdateAssignment(t *testing.T) {
	repo, err := NewEnquiryRepository(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	enquiry := &entity.Enquiry{Type: entity.EnquirySell, ProductID: uuid.New(), Quantity: 100, CompanyName: "XYZ Cashews", Pincode: "400001", Email: "seller@example.com", Phone: "+919876543213"}
	require.NoError(t, repo.Create(ctx, enquiry))

	salesID := uuid.New()
	enquiry.Status = entity.EnquiryAssigned
	enquiry.AssignedTo = salesID
	require.NoError(t, repo.Update(ctx, enquiry))

	found, err := repo.FindByID(ctx, enquiry.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.EnquiryAssigned, found.Status)
	assert.Equal(t, salesID, found.AssignedTo)
}

func TestEnquiryRepository_UpdateMissing(t *testing.T) {
	repo, err := NewEnquiryRepository(t.TempDir())
	require.NoError(t, err)

	err = repo.Update(context.Background(), &entity.Enquiry{ID: uuid.New()})
	assert.ErrorIs(t, err, repository.ErrEnquiryNotFound)
}
