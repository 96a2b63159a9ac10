package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"hireflow/resume-intake/internal/models"
)

type DocumentRequestRepository interface {
	Create(request *models.DocumentRequest) error
	FindByCandidateID(candidateID uint) ([]models.DocumentRequest, error)
	Update(request *models.DocumentRequest) error
}

type documentRequestRepository struct {
	db *gorm.DB
}

func NewDocumentRequestRepository(db *gorm.DB) DocumentRequestRepository {
	return &documentRequestRepository{db: db}
}

// Create implements DocumentRequestRepository.
func (r *documentRequestRepository) Create(request *models.DocumentRequest) error {
	if err := r.db.Create(request).Error; err != nil {
		return fmt.Errorf("failed to create document request: %w", err)
	}

	return nil
}

// FindByCandidateID implements DocumentRequestRepository.
func (r *documentRequestRepository) FindByCandidateID(candidateID uint) ([]models.DocumentRequest, error) {
	var requests []models.DocumentRequest
	err := r.db.
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list document requests: %w", err)
	}

	return requests, nil
}

// Update implements DocumentRequestRepository.
func (r *documentRequestRepository) Update(request *models.DocumentRequest) error {
	if request.ID == 0 {
		return fmt.Errorf("cannot update document request: %w", models.ErrMissingID)
	}

	if err := r.db.Save(request).Error; err != nil {
		return fmt.Errorf("failed to update document request: %w", err)
	}

	return nil
}
