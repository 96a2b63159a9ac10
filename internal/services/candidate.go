package services

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"path/filepath"

	"hireflow/resume-intake/internal/models"
	"hireflow/resume-intake/internal/repositories"
)

// CandidateService holds the intake use cases: resume upload with
// extraction, listing, detail, document requests and document submissions.
// Each call runs synchronously within the request; the only resilience for
// the model calls is the fallback built into the extraction capabilities.
type CandidateService interface {
	UploadResume(ctx context.Context, file *multipart.FileHeader) (*models.CandidateResponse, error)
	ListCandidates(ctx context.Context) ([]models.CandidateListItem, error)
	GetCandidateDetail(ctx context.Context, candidateID uint) (*models.CandidateDetailResponse, error)
	RequestDocuments(ctx context.Context, candidateID uint, requestType models.RequestType, channel models.CommunicationChannel) (*models.DocumentRequestResponse, error)
	SubmitDocument(ctx context.Context, candidateID uint, documentType models.DocumentType, file *multipart.FileHeader) (*models.DocumentSubmissionResponse, error)
}

type candidateService struct {
	candidateRepo    repositories.CandidateRepository
	requestRepo      repositories.DocumentRequestRepository
	submissionRepo   repositories.DocumentSubmissionRepository
	textService      ResumeTextService
	dataExtractor    ResumeDataExtractor
	messageGenerator DocumentRequestGenerator
	emailService     EmailService
	storage          StorageService
}

func NewCandidateService(
	candidateRepo repositories.CandidateRepository,
	requestRepo repositories.DocumentRequestRepository,
	submissionRepo repositories.DocumentSubmissionRepository,
	textService ResumeTextService,
	dataExtractor ResumeDataExtractor,
	messageGenerator DocumentRequestGenerator,
	emailService EmailService,
	storage StorageService,
) CandidateService {
	return &candidateService{
		candidateRepo:    candidateRepo,
		requestRepo:      requestRepo,
		submissionRepo:   submissionRepo,
		textService:      textService,
		dataExtractor:    dataExtractor,
		messageGenerator: messageGenerator,
		emailService:     emailService,
		storage:          storage,
	}
}

// UploadResume implements CandidateService. The candidate row is persisted
// before extraction starts, so a tracking record survives any later failure.
// A text-extraction failure leaves the row marked failed on purpose; it is
// not rolled back.
func (s *candidateService) UploadResume(ctx context.Context, file *multipart.FileHeader) (*models.CandidateResponse, error) {
	if !s.textService.SupportsFile(file.Filename) {
		return nil, fmt.Errorf("%w: %s", models.ErrUnsupportedFormat, filepath.Ext(file.Filename))
	}

	_, filePath, err := s.storage.SaveFile(file, "resume")
	if err != nil {
		return nil, fmt.Errorf("failed to store resume: %w", err)
	}

	candidate := &models.Candidate{
		ResumeFilePath: filePath,
	}
	candidate.MarkExtractionProcessing()

	if err := s.candidateRepo.Create(candidate); err != nil {
		return nil, err
	}

	resumeText, err := s.textService.ExtractText(candidate.ResumeFilePath)
	if err != nil {
		candidate.MarkExtractionFailed(err.Error())
		if updateErr := s.candidateRepo.Update(candidate); updateErr != nil {
			log.Printf("❌ Failed to persist failed extraction for candidate %d: %v", candidate.ID, updateErr)
		}
		return nil, fmt.Errorf("%w: %v", models.ErrExtractionFailed, err)
	}

	// Structured extraction cannot fail; it degrades to the regex fallback.
	extracted := s.dataExtractor.Extract(ctx, resumeText)
	candidate.UpdateExtractionData(extracted)

	if err := s.candidateRepo.Update(candidate); err != nil {
		return nil, err
	}

	resp := s.toCandidateResponse(candidate)
	return &resp, nil
}

// ListCandidates implements CandidateService. Results are newest first.
func (s *candidateService) ListCandidates(ctx context.Context) ([]models.CandidateListItem, error) {
	candidates, err := s.candidateRepo.FindAll()
	if err != nil {
		return nil, err
	}

	items := make([]models.CandidateListItem, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, models.CandidateListItem{
			ID:               c.ID,
			Name:             c.Name,
			Email:            c.Email,
			Phone:            c.Phone,
			Company:          c.Company,
			Designation:      c.Designation,
			ExtractionStatus: string(c.ExtractionStatus),
			CreatedAt:        c.CreatedAt,
		})
	}

	return items, nil
}

// GetCandidateDetail implements CandidateService.
func (s *candidateService) GetCandidateDetail(ctx context.Context, candidateID uint) (*models.CandidateDetailResponse, error) {
	candidate, err := s.candidateRepo.FindByID(candidateID)
	if err != nil {
		return nil, err
	}

	requests, err := s.requestRepo.FindByCandidateID(candidateID)
	if err != nil {
		return nil, err
	}

	submissions, err := s.submissionRepo.FindByCandidateID(candidateID)
	if err != nil {
		return nil, err
	}

	detail := &models.CandidateDetailResponse{
		Candidate:           s.toCandidateResponse(candidate),
		DocumentRequests:    make([]models.DocumentRequestResponse, 0, len(requests)),
		DocumentSubmissions: make([]models.DocumentSubmissionResponse, 0, len(submissions)),
	}

	for _, r := range requests {
		detail.DocumentRequests = append(detail.DocumentRequests, toRequestResponse(&r))
	}
	for _, sub := range submissions {
		detail.DocumentSubmissions = append(detail.DocumentSubmissions, s.toSubmissionResponse(&sub))
	}

	return detail, nil
}

// RequestDocuments implements CandidateService. The request is created
// pending and marked sent within the same invocation.
func (s *candidateService) RequestDocuments(
	ctx context.Context,
	candidateID uint,
	requestType models.RequestType,
	channel models.CommunicationChannel,
) (*models.DocumentRequestResponse, error) {
	candidate, err := s.candidateRepo.FindByID(candidateID)
	if err != nil {
		return nil, err
	}

	messageText := s.messageGenerator.Generate(
		ctx,
		candidate.Name,
		candidate.Email,
		candidate.Phone,
		requestType,
		channel,
	)

	message, err := models.NewDocumentRequestMessage(messageText, requestType, channel)
	if err != nil {
		return nil, fmt.Errorf("failed to build request message: %w", err)
	}

	request := &models.DocumentRequest{
		CandidateID: candidateID,
		Status:      models.RequestPending,
	}
	request.UpdateMessage(message)

	if err := s.requestRepo.Create(request); err != nil {
		return nil, err
	}

	// TODO: dispatch message.Message through emailService once outbound
	// delivery is approved; the request is marked sent without it for now.
	request.MarkAsSent()
	if err := s.requestRepo.Update(request); err != nil {
		return nil, err
	}

	resp := toRequestResponse(request)
	return &resp, nil
}

// SubmitDocument implements CandidateService. Submissions start pending;
// verification belongs to a future workflow.
func (s *candidateService) SubmitDocument(
	ctx context.Context,
	candidateID uint,
	documentType models.DocumentType,
	file *multipart.FileHeader,
) (*models.DocumentSubmissionResponse, error) {
	if _, err := s.candidateRepo.FindByID(candidateID); err != nil {
		return nil, err
	}

	_, filePath, err := s.storage.SaveFile(file, "document")
	if err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}

	submission := &models.DocumentSubmission{
		CandidateID:        candidateID,
		DocumentType:       documentType,
		DocumentFilePath:   filePath,
		VerificationStatus: models.VerificationPending,
	}

	if err := s.submissionRepo.Create(submission); err != nil {
		return nil, err
	}

	resp := s.toSubmissionResponse(submission)
	return &resp, nil
}

func (s *candidateService) toCandidateResponse(c *models.Candidate) models.CandidateResponse {
	return models.CandidateResponse{
		ID:                   c.ID,
		Name:                 c.Name,
		Email:                c.Email,
		Phone:                c.Phone,
		Company:              c.Company,
		Designation:          c.Designation,
		Skills:               c.Skills,
		ResumeFileURL:        s.storage.FileURL(c.ResumeFilePath),
		ExtractionStatus:     string(c.ExtractionStatus),
		ExtractionConfidence: c.ExtractionConfidence,
		RawExtractedData:     c.RawExtractedData,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}

func toRequestResponse(r *models.DocumentRequest) models.DocumentRequestResponse {
	return models.DocumentRequestResponse{
		ID:                   r.ID,
		RequestType:          string(r.RequestType),
		RequestMessage:       r.RequestMessage,
		CommunicationChannel: string(r.CommunicationChannel),
		Status:               string(r.Status),
		CreatedAt:            r.CreatedAt,
	}
}

func (s *candidateService) toSubmissionResponse(sub *models.DocumentSubmission) models.DocumentSubmissionResponse {
	return models.DocumentSubmissionResponse{
		ID:                 sub.ID,
		DocumentType:       string(sub.DocumentType),
		DocumentFileURL:    s.storage.FileURL(sub.DocumentFilePath),
		VerificationStatus: string(sub.VerificationStatus),
		UploadedAt:         sub.UploadedAt,
	}
}
