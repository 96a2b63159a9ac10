package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"hireflow/resume-intake/internal/models"
)

type DocumentSubmissionRepository interface {
	Create(submission *models.DocumentSubmission) error
	FindByCandidateID(candidateID uint) ([]models.DocumentSubmission, error)
}

type documentSubmissionRepository struct {
	db *gorm.DB
}

func NewDocumentSubmissionRepository(db *gorm.DB) DocumentSubmissionRepository {
	return &documentSubmissionRepository{db: db}
}

// Create implements DocumentSubmissionRepository.
func (r *documentSubmissionRepository) Create(submission *models.DocumentSubmission) error {
	if err := r.db.Create(submission).Error; err != nil {
		return fmt.Errorf("failed to create document submission: %w", err)
	}

	return nil
}

// FindByCandidateID implements DocumentSubmissionRepository.
func (r *documentSubmissionRepository) FindByCandidateID(candidateID uint) ([]models.DocumentSubmission, error) {
	var submissions []models.DocumentSubmission
	err := r.db.
		Where("candidate_id = ?", candidateID).
		Order("uploaded_at DESC").
		Find(&submissions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list document submissions: %w", err)
	}

	return submissions, nil
}
