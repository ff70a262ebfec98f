package impl

import (
	"context"
	"log/slog"

	deliverycontext "staplewise/internal/delivery/context"
	"staplewise/internal/domain/entity"
	domainerrors "staplewise/internal/domain/errors"
	"staplewise/internal/domain/repository"
	"staplewise/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// enquiryService implements the EnquiryUsecase interface.
type enquiryService struct {
	enquiryRepo repository.EnquiryRepository
	productRepo repository.ProductRepository
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// EnquiryServiceParams holds dependencies for enquiryService, injected by Fx.
type EnquiryServiceParams struct {
	fx.In

	EnquiryRepo repository.EnquiryRepository
	ProductRepo repository.ProductRepository
	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewEnquiryService is the constructor for enquiryService.
func NewEnquiryService(params EnquiryServiceParams) usecase.EnquiryUsecase {
	return &enquiryService{
		enquiryRepo: params.EnquiryRepo,
		productRepo: params.ProductRepo,
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

func (srv *enquiryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SubmitEnquiry captures a buy/sell lead from the storefront.
func (srv *enquiryService) SubmitEnquiry(ctx context.Context, input *usecase.SubmitEnquiryInput) (*entity.Enquiry, error) {
	srv.log(ctx).Info("Submitting enquiry", slog.String("type", string(input.Type)), slog.Any("productID", input.ProductID))

	if !input.Type.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown enquiry type")
	}

	if _, err := srv.productRepo.FindByID(ctx, input.ProductID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("enquiry references unknown product")
		}

		return nil, errors.Wrap(err, "failed to check enquiry product")
	}

	enquiry := &entity.Enquiry{
		Type:        input.Type,
		ProductID:   input.ProductID,
		Quantity:    input.Quantity,
		CompanyName: input.CompanyName,
		Pincode:     input.Pincode,
		Email:       input.Email,
		Phone:       input.Phone,
		GST:         input.GST,
	}

	if err := srv.enquiryRepo.Create(ctx, enquiry); err != nil {
		srv.log(ctx).Error("Failed to create enquiry", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create enquiry")
	}

	srv.log(ctx).Debug("Enquiry submitted", slog.Any("enquiryID", enquiry.ID))

	return enquiry, nil
}

// ListEnquiries returns every captured lead, newest first.
func (srv *enquiryService) ListEnquiries(ctx context.Context) ([]*entity.Enquiry, error) {
	enquiries, err := srv.enquiryRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list enquiries", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list enquiries")
	}

	return enquiries, nil
}

// UpdateEnquiry moves a lead through the sales workflow. Assigning a lead
// requires the assignee to be a sales account.
func (srv *enquiryService) UpdateEnquiry(ctx context.Context, input *usecase.UpdateEnquiryInput) (*entity.Enquiry, error) {
	srv.log(ctx).Info("Updating enquiry", slog.Any("enquiryID", input.ID), slog.String("status", string(input.Status)))

	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown enquiry status")
	}

	enquiry, err := srv.enquiryRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrEnquiryNotFound) {
			return nil, domainerrors.ErrEnquiryNotFound.WrapMessage("enquiry lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find enquiry by id")
	}

	if input.AssignedTo != uuid.Nil {
		assignee, err := srv.accountRepo.FindByID(ctx, input.AssignedTo)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return nil, domainerrors.ErrValidationFailed.WrapMessage("assignee account does not exist")
			}

			return nil, errors.Wrap(err, "failed to load assignee account")
		}
		if assignee.Role != entity.RoleSales && assignee.Role != entity.RoleAdmin {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("enquiries can only be assigned to sales staff")
		}

		enquiry.AssignedTo = assignee.ID
	}

	enquiry.Status = input.Status

	if err := srv.enquiryRepo.Update(ctx, enquiry); err != nil {
		srv.log(ctx).Error("Failed to update enquiry", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update enquiry")
	}

	srv.log(ctx).Debug("Enquiry updated", slog.Any("enquiryID", enquiry.ID), slog.String("status", string(enquiry.Status)))

	return enquiry, nil
}
