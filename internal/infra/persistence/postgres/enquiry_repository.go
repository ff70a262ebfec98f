package postgres

import (
	"context"
	"time"

	"staplewise/internal/domain/entity"
	"staplewise/internal/domain/repository"
	"staplewise/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// enquiryRepository implements the repository.EnquiryRepository interface using GORM.
type enquiryRepository struct {
	db *gorm.DB
}

// NewEnquiryRepository is the constructor for enquiryRepository.
func NewEnquiryRepository(db *gorm.DB) repository.EnquiryRepository {
	return &enquiryRepository{db: db}
}

// List returns every enquiry, newest first.
func (repo *enquiryRepository) List(ctx context.Context) ([]*entity.Enquiry, error) {
	var enquiryMs []*model.EnquiryModel
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&enquiryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list enquiries")
	}

	enquiries := make([]*entity.Enquiry, 0, len(enquiryMs))
	for _, enquiryM := range enquiryMs {
		enquiries = append(enquiries, toEnquiryDomain(enquiryM))
	}

	return enquiries, nil
}

// FindByID retrieves a single enquiry by its unique ID.
func (repo *enquiryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Enquiry, error) {
	var enquiryM model.EnquiryModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&enquiryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEnquiryNotFound
		}

		return nil, errors.Wrap(err, "failed to find enquiry by id")
	}

	return toEnquiryDomain(&enquiryM), nil
}

// Create persists a new enquiry. Every lead starts out pending.
func (repo *enquiryRepository) Create(ctx context.Context, enquiry *entity.Enquiry) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate enquiry id")
	}
	enquiry.ID = id
	enquiry.Status = entity.EnquiryPending
	enquiry.CreatedAt = time.Now().UTC()

	if err := repo.db.WithContext(ctx).Create(fromEnquiryDomain(enquiry)).Error; err != nil {
		return errors.Wrap(err, "failed to create enquiry")
	}

	return nil
}

// Update replaces the stored enquiry with the given one.
func (repo *enquiryRepository) Update(ctx context.Context, enquiry *entity.Enquiry) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EnquiryModel{}).
		Where("id = ?", enquiry.ID).
		Select("*").
		Updates(fromEnquiryDomain(enquiry))
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update enquiry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEnquiryNotFound
	}

	return nil
}

func toEnquiryDomain(enquiryM *model.EnquiryModel) *entity.Enquiry {
	enquiry := &entity.Enquiry{
		ID:          enquiryM.ID,
		Type:        entity.EnquiryType(enquiryM.Type),
		ProductID:   enquiryM.ProductID,
		Quantity:    enquiryM.Quantity,
		CompanyName: enquiryM.CompanyName,
		Pincode:     enquiryM.Pincode,
		Email:       enquiryM.Email,
		Phone:       enquiryM.Phone,
		GST:         enquiryM.GST,
		Status:      entity.EnquiryStatus(enquiryM.Status),
		CreatedAt:   enquiryM.CreatedAt,
	}
	if enquiryM.AssignedTo != nil {
		enquiry.AssignedTo = *enquiryM.AssignedTo
	}

	return enquiry
}

func fromEnquiryDomain(enquiry *entity.Enquiry) *model.EnquiryModel {
	enquiryM := &model.EnquiryModel{
		ID:          enquiry.ID,
		Type:        string(enquiry.Type),
		ProductID:   enquiry.ProductID,
		Quantity:    enquiry.Quantity,
		CompanyName: enquiry.CompanyName,
		Pincode:     enquiry.Pincode,
		Email:       enquiry.Email,
		Phone:       enquiry.Phone,
		GST:         enquiry.GST,
		Status:      string(enquiry.Status),
		CreatedAt:   enquiry.CreatedAt,
	}
	if enquiry.AssignedTo != uuid.Nil {
		assigned := enquiry.AssignedTo
		enquiryM.AssignedTo = &assigned
	}

	return enquiryM
}
