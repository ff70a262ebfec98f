package impl

import (
	"context"
	"testing"

	"staplewise/internal/domain/entity"
	domainerrors "staplewise/internal/domain/errors"
	"staplewise/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type enquiryFixture struct {
	usecase     usecase.EnquiryUsecase
	accountRepo *fakeAccountRepo
	productRepo *fakeProductRepo
	enquiryRepo *fakeEnquiryRepo
	product     *entity.Product
}

func newEnquiryFixture(t *testing.T) *enquiryFixture {
	t.Helper()

	accountRepo := &fakeAccountRepo{}
	productRepo := &fakeProductRepo{}
	enquiryRepo := &fakeEnquiryRepo{}

	seller := seedSeller(t, accountRepo)
	product := &entity.Product{
		Name:     "Premium W320 Cashews",
		Grade:    "W320",
		SellerID: seller.ID,
	}
	require.NoError(t, productRepo.Create(context.Background(), product))

	return &enquiryFixture{
		usecase: NewEnquiryService(EnquiryServiceParams{
			EnquiryRepo: enquiryRepo,
			ProductRepo: productRepo,
			AccountRepo: accountRepo,
			Logger:      discardLogger(),
		}),
		accountRepo: accountRepo,
		productRepo: productRepo,
		enquiryRepo: enquiryRepo,
		product:     product,
	}
}

func (f *enquiryFixture) submit(t *testing.T) *entity.Enquiry {
	t.Helper()

	enquiry, err := f.usecase.SubmitEnquiry(context.Background(), &usecase.SubmitEnquiryInput{
		Type:        entity.EnquiryBuy,
		ProductID:   f.product.ID,
		Quantity:    500,
		CompanyName: "ABC Foods",
		Pincode:     "560001",
		Email:       "purchasing@abcfoods.example",
		Phone:       "+91 9876500000",
	})
	require.NoError(t, err)

	return enquiry
}

func TestEnquiryService_SubmitEnquiry(t *testing.T) {
	fixture := newEnquiryFixture(t)

	enquiry := fixture.submit(t)
	assert.NotEqual(t, uuid.Nil, enquiry.ID)
	assert.Equal(t, entity.EnquiryPending, enquiry.Status)
	assert.Equal(t, uuid.Nil, enquiry.AssignedTo)
}

func TestEnquiryService_SubmitEnquiry_UnknownProduct(t *testing.T) {
	fixture := newEnquiryFixture(t)

	_, err := fixture.usecase.SubmitEnquiry(context.Background(), &usecase.SubmitEnquiryInput{
		Type:      entity.EnquiryBuy,
		ProductID: uuid.Must(uuid.NewV7()),
		Quantity:  100,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestEnquiryService_SubmitEnquiry_UnknownType(t *testing.T) {
	fixture := newEnquiryFixture(t)

	_, err := fixture.usecase.SubmitEnquiry(context.Background(), &usecase.SubmitEnquiryInput{
		Type:      entity.EnquiryType("RENT"),
		ProductID: fixture.product.ID,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestEnquiryService_UpdateEnquiry_Assign(t *testing.T) {
	fixture := newEnquiryFixture(t)
	ctx := context.Background()
	enquiry := fixture.submit(t)

	sales := &entity.Account{
		Email: "sales@staplewise.com",
		Name:  "Sales Team",
		Role:  entity.RoleSales,
	}
	require.NoError(t, fixture.accountRepo.Create(ctx, sales))

	updated, err := fixture.usecase.UpdateEnquiry(ctx, &usecase.UpdateEnquiryInput{
		ID:         enquiry.ID,
		Status:     entity.EnquiryAssigned,
		AssignedTo: sales.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.EnquiryAssigned, updated.Status)
	assert.Equal(t, sales.ID, updated.AssignedTo)

	// The assignment persists.
	stored, err := fixture.enquiryRepo.FindByID(ctx, enquiry.ID)
	require.NoError(t, err)
	assert.Equal(t, sales.ID, stored.AssignedTo)
}

func TestEnquiryService_UpdateEnquiry_RejectsNonSalesAssignee(t *testing.T) {
	fixture := newEnquiryFixture(t)
	ctx := context.Background()
	enquiry := fixture.submit(t)

	buyer := &entity.Account{
		Email: "buyer@example.com",
		Name:  "John Buyer",
		Role:  entity.RoleBuyer,
	}
	require.NoError(t, fixture.accountRepo.Create(ctx, buyer))

	_, err := fixture.usecase.UpdateEnquiry(ctx, &usecase.UpdateEnquiryInput{
		ID:         enquiry.ID,
		Status:     entity.EnquiryAssigned,
		AssignedTo: buyer.ID,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestEnquiryService_UpdateEnquiry_NotFound(t *testing.T) {
	fixture := newEnquiryFixture(t)

	_, err := fixture.usecase.UpdateEnquiry(context.Background(), &usecase.UpdateEnquiryInput{
		ID:     uuid.Must(uuid.NewV7()),
		Status: entity.EnquiryCompleted,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEnquiryNotFound))
}
