package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"hireflow/resume-intake/internal/models"
	"hireflow/resume-intake/internal/services"
)

type DocumentHandler struct {
	candidateService services.CandidateService
	maxFileSize      int64
}

func NewDocumentHandler(candidateService services.CandidateService, maxFileSize int64) *DocumentHandler {
	return &DocumentHandler{
		candidateService: candidateService,
		maxFileSize:      maxFileSize,
	}
}

// HandleRequestDocuments handles POST /candidates/:id/request-documents
func (h *DocumentHandler) HandleRequestDocuments(c *fiber.Ctx) error {
	candidateID, err := parseCandidateID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
		})
	}

	var req models.RequestDocumentsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	requestType, err := models.ParseRequestType(req.RequestType)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	channel, err := models.ParseCommunicationChannel(req.CommunicationChannel)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	request, err := h.candidateService.RequestDocuments(c.Context(), candidateID, requestType, channel)
	if err != nil {
		return domainErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(request)
}

// HandleSubmitDocument handles POST /candidates/:id/submit-document
func (h *DocumentHandler) HandleSubmitDocument(c *fiber.Ctx) error {
	candidateID, err := parseCandidateID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid candidate ID format",
		})
	}

	documentType, err := models.ParseDocumentType(c.FormValue("document_type"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	file, err := c.FormFile("document")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "document file is required",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("document file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	submission, err := h.candidateService.SubmitDocument(c.Context(), candidateID, documentType, file)
	if err != nil {
		return domainErrorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(submission)
}
