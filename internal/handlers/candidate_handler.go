package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"hireflow/resume-intake/internal/models"
	"hireflow/resume-intake/internal/services"
)

type CandidateHandler struct {
	candidateService services.CandidateService
	maxFileSize      int64
}

func NewCandidateHandler(candidateService services.CandidateService, maxFileSize int64) *CandidateHandler {
	return &CandidateHandler{
		candidateService: candidateService,
		maxFileSize:      maxFileSize,
	}
}

// HandleUpload handles POST /candidates/upload
func (h *CandidateHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file is required",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	candidate, err := h.candidateService.UploadResume(c.Context(), file)
	if err != nil {
		return domainErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(candidate)
}

// HandleList handles GET /candidates
func (h *CandidateHandler) HandleList(c *fiber.Ctx) error {
	candidates, err := h.candidateService.ListCandidates(c.Context())
	if err != nil {
		return domainErrorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"candidates": candidates,
		"count":      len(candidates),
	})
}

// HandleDetail handles GET /candidates/:id
func (h *CandidateHandler) HandleDetail(c *fiber.Ctx) error {
	candidateID, err := parseCandidateID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
		})
	}

	detail, err := h.candidateService.GetCandidateDetail(c.Context(), candidateID)
	if err != nil {
		return domainErrorResponse(c, err)
	}

	return c.JSON(detail)
}

func parseCandidateID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// domainErrorResponse maps domain errors to status codes: not-found,
// bad-input, or an opaque internal error.
func domainErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrCandidateNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, models.ErrUnsupportedFormat), errors.Is(err, models.ErrInvalidResumeFile):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, models.ErrExtractionFailed):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "internal server error",
		})
	}
}
