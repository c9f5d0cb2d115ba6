package envelope

import (
	"envelope-orchestrator/internal/model"
	"fmt"
)

const pdfExtension = "pdf"

// Composition : всё, из чего собирается конверт
type Composition struct {
	EmailSubject string
	Status       model.EnvelopeStatus
	// Supplementary идут в конверте раньше Generated
	Supplementary []model.DocumentSource
	Generated     []model.DocumentSource
	Signers       []model.Signer
	CarbonCopies  []model.CarbonCopy
}

// ComposeEnvelope : собирает тело запроса к провайдеру без дальнейших преобразований
func ComposeEnvelope(c Composition) (*model.EnvelopeDefinition, error) {
	if len(c.Supplementary)+len(c.Generated) == 0 {
		return nil, model.NewValidationError("конверт должен содержать хотя бы один документ")
	}

	status := c.Status
	if status == "" {
		status = model.EnvelopeStatusCreated
	}
	if status != model.EnvelopeStatusCreated && status != model.EnvelopeStatusSent {
		return nil, model.NewValidationError(fmt.Sprintf("неизвестный статус конверта %q", status))
	}

	documents := make([]model.EnvelopeDocument, 0, len(c.Supplementary)+len(c.Generated))
	for _, source := range c.Supplementary {
		documents = append(documents, envelopeDocument(source))
	}
	for _, source := range c.Generated {
		documents = append(documents, envelopeDocument(source))
	}

	signers := c.Signers
	if signers == nil {
		signers = make([]model.Signer, 0)
	}
	carbonCopies := c.CarbonCopies
	if carbonCopies == nil {
		carbonCopies = make([]model.CarbonCopy, 0)
	}

	return &model.EnvelopeDefinition{
		Documents:    documents,
		EmailSubject: c.EmailSubject,
		Recipients: model.EnvelopeRecipients{
			Signers:      signers,
			CarbonCopies: carbonCopies,
		},
		EnforceSignerVisibility: true,
		Status:                  status,
	}, nil
}

func envelopeDocument(source model.DocumentSource) model.EnvelopeDocument {
	return model.EnvelopeDocument{
		DocumentBase64: source.ContentBase64,
		DocumentID:     source.DocumentID,
		FileExtension:  pdfExtension,
		Name:           source.DisplayName,
	}
}
