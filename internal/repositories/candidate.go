package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hireflow/resume-intake/internal/models"
)

type CandidateRepository interface {
	Create(candidate *models.Candidate) error
	FindByID(id uint) (*models.Candidate, error)
	FindAll() ([]models.Candidate, error)
	Update(candidate *models.Candidate) error
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

// Create implements CandidateRepository.
func (r *candidateRepository) Create(candidate *models.Candidate) error {
	if err := r.db.Create(candidate).Error; err != nil {
		return fmt.Errorf("failed to create candidate: %w", err)
	}

	return nil
}

// FindByID implements CandidateRepository.
func (r *candidateRepository) FindByID(id uint) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.Where("id = ?", id).First(&candidate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrCandidateNotFound
		}

		return nil, fmt.Errorf("failed to find candidate: %w", err)
	}

	return &candidate, nil
}

// FindAll implements CandidateRepository. Listing is newest first.
func (r *candidateRepository) FindAll() ([]models.Candidate, error) {
	var candidates []models.Candidate
	if err := r.db.Order("created_at DESC").Find(&candidates).Error; err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	return candidates, nil
}

// Update implements CandidateRepository.
func (r *candidateRepository) Update(candidate *models.Candidate) error {
	if candidate.ID == 0 {
		return fmt.Errorf("cannot update candidate: %w", models.ErrMissingID)
	}

	if err := r.db.Save(candidate).Error; err != nil {
		return fmt.Errorf("failed to update candidate: %w", err)
	}

	return nil
}
