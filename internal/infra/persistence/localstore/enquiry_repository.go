package localstore

import (
	"context"
	"sort"
	"time"

	"staplewise/internal/domain/entity"
	"staplewise/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// enquiryRepository implements repository.EnquiryRepository on a JSON blob file.
type enquiryRepository struct {
	enquiries *collection[*entity.Enquiry]
}

// NewEnquiryRepository is the constructor for enquiryRepository.
// Enquiries live in <dir>/enquiries.json as one contiguous collection.
func NewEnquiryRepository(dir string) (repository.EnquiryRepository, error) {
	enquiries, err := newCollection[*entity.Enquiry](dir, "enquiries")
	if err != nil {
		return nil, err
	}

	return &enquiryRepository{enquiries: enquiries}, nil
}

// List returns every enquiry, newest first.
func (repo *enquiryRepository) List(_ context.Context) ([]*entity.Enquiry, error) {
	enquiries, err := repo.enquiries.load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list enquiries")
	}

	sort.SliceStable(enquiries, func(i, j int) bool {
		return enquiries[i].CreatedAt.After(enquiries[j].CreatedAt)
	})

	return enquiries, nil
}

// FindByID retrieves a single enquiry by its unique ID.
func (repo *enquiryRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Enquiry, error) {
	enquiries, err := repo.enquiries.load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load enquiries")
	}

	for _, enquiry := range enquiries {
		if enquiry.ID == id {
			return enquiry, nil
		}
	}

	return nil, repository.ErrEnquiryNotFound
}

// Create generates the enquiry's ID and CreatedAt, stamps the initial
// PENDING status, and appends it to the blob.
func (repo *enquiryRepository) Create(_ context.Context, enquiry *entity.Enquiry) error {
	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate enquiry id")
	}
	enquiry.ID = id
	enquiry.Status = entity.EnquiryPending
	enquiry.CreatedAt = time.Now().UTC()

	err = repo.enquiries.update(func(enquiries []*entity.Enquiry) ([]*entity.Enquiry, error) {
		return append(enquiries, enquiry), nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to create enquiry")
	}

	return nil
}

// Update replaces the stored enquiry that shares the given enquiry's ID.
func (repo *enquiryRepository) Update(_ context.Context, enquiry *entity.Enquiry) error {
	err := repo.enquiries.update(func(enquiries []*entity.Enquiry) ([]*entity.Enquiry, error) {
		for i, existing := range enquiries {
			if existing.ID == enquiry.ID {
				enquiries[i] = enquiry

				return enquiries, nil
			}
		}

		return nil, repository.ErrEnquiryNotFound
	})
	if err != nil {
		return errors.Wrap(err, "failed to update enquiry")
	}

	return nil
}
