package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"hireflow/resume-intake/internal/models"
)

const generatorSystemInstruction = `You are a professional HR assistant. Generate a polite,
personalized email or message requesting identity documents (PAN and/or Aadhaar)
from a candidate. The message should be:
- Professional and courteous
- Clear about what documents are needed
- Reassuring about data security
- Personalized with the candidate's name
Keep it concise (2-3 paragraphs).`

// DocumentRequestGenerator produces the outreach text asking a candidate for
// identity documents. Generate never fails; on any model error it falls back
// to a fixed template.
type DocumentRequestGenerator interface {
	Generate(ctx context.Context, candidateName, candidateEmail, candidatePhone string, requestType models.RequestType, channel models.CommunicationChannel) string
}

type documentRequestGenerator struct {
	gemini GeminiService
}

// NewDocumentRequestGenerator builds the generator. A nil gemini service
// means no credentials are configured and every call uses the template.
func NewDocumentRequestGenerator(gemini GeminiService) DocumentRequestGenerator {
	return &documentRequestGenerator{gemini: gemini}
}

// Generate implements DocumentRequestGenerator.
func (g *documentRequestGenerator) Generate(
	ctx context.Context,
	candidateName, candidateEmail, candidatePhone string,
	requestType models.RequestType,
	channel models.CommunicationChannel,
) string {
	if g.gemini == nil {
		return fallbackRequestMessage(candidateName, requestType, channel)
	}

	prompt := fmt.Sprintf(`Generate a document request message for:
Candidate Name: %s
Email: %s
Phone: %s
Documents Needed: %s
Communication Channel: %s

Generate the message now:`, candidateName, candidateEmail, candidatePhone, requestType, channel)

	message, err := g.gemini.GenerateText(ctx, generatorSystemInstruction, prompt, 0.7)
	if err != nil {
		log.Printf("⚠️ Message generation failed, using fallback: %v", err)
		return fallbackRequestMessage(candidateName, requestType, channel)
	}

	return strings.TrimSpace(message)
}

func fallbackRequestMessage(candidateName string, requestType models.RequestType, channel models.CommunicationChannel) string {
	docText := "PAN card and Aadhaar card"
	switch requestType {
	case models.RequestPAN:
		docText = "PAN card"
	case models.RequestAadhaar:
		docText = "Aadhaar card"
	}

	channelText := "email"
	if channel == models.ChannelPhone {
		channelText = "phone"
	}

	if candidateName == "" {
		candidateName = "Candidate"
	}

	return fmt.Sprintf(`Dear %s,

We hope this message finds you well. As part of our onboarding process, we kindly request you to provide your %s for verification purposes.

Please upload the documents through our portal or send them via %s. All documents will be handled with strict confidentiality and in accordance with data protection regulations.

Thank you for your cooperation.

Best regards,
HR Team`, candidateName, docText, channelText)
}
