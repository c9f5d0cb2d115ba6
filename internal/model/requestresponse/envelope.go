package requestresponse

import "envelope-orchestrator/internal/model"

// FormSigner : подписант формы, сопоставляется с полями по роли
type FormSigner struct {
	Email     string `json:"email" example:"owner@example.com"`
	FirstName string `json:"firstName" example:"Jane"`
	LastName  string `json:"lastName" example:"Doe"`
	Role      string `json:"role" example:"1own"`
}

// CarbonCopyRecipient : получатель копии формы
type CarbonCopyRecipient struct {
	Name  string `json:"name" example:"Branch Manager"`
	Email string `json:"email" example:"manager@example.com"`
}

// Form : форма движка, из которой генерируется PDF
type Form struct {
	FormID     model.FlexString      `json:"formId" swaggertype:"string" example:"71259"`
	Signers    []FormSigner          `json:"signers"`
	CC         []CarbonCopyRecipient `json:"cc,omitempty"`
	FormFields map[string]string     `json:"formFields"`
}

// SignLocation : явная координата на клиентском PDF
type SignLocation struct {
	XPosition  float64 `json:"xPosition" example:"120.4"`
	YPosition  float64 `json:"yPosition" example:"640.5"`
	PageNumber string  `json:"pageNumber" example:"1"`
}

type SignLocations struct {
	SignHere       []SignLocation        `json:"signHere,omitempty"`
	InitialHere    []SignLocation        `json:"initialHere,omitempty"`
	DateSigned     []SignLocation        `json:"dateSigned,omitempty"`
	AttachmentTabs []model.AttachmentTab `json:"attachmentTabs,omitempty"`
}

type AdditionalPDFSigner struct {
	Email         string         `json:"email" example:"owner@example.com"`
	FirstName     string         `json:"firstName" example:"Jane"`
	LastName      string         `json:"lastName" example:"Doe"`
	SignLocations *SignLocations `json:"signLocations,omitempty"`
}

// AdditionalPDF : документ, переданный клиентом в base64
type AdditionalPDF struct {
	DocumentName   string                `json:"documentName" example:"terms.pdf"`
	DocumentBase64 string                `json:"documentBase64"`
	Signers        []AdditionalPDFSigner `json:"signers,omitempty"`
}

// CreateEnvelopeRequest : тело запроса создания конверта
type CreateEnvelopeRequest struct {
	EmailSubject   string               `json:"emailSubject" example:"Please sign your account documents"`
	Forms          []Form               `json:"forms,omitempty"`
	AdditionalPDFs []AdditionalPDF      `json:"additionalPDFs,omitempty"`
	Status         model.EnvelopeStatus `json:"status,omitempty" example:"created"`
}

// LinkedForm : форма с идентификатором документа, выбранным клиентом
type LinkedForm struct {
	DocumentID string                 `json:"documentId" example:"1"`
	FormID     model.FlexString       `json:"formId" swaggertype:"string" example:"71259"`
	FormFields []model.FormFieldValue `json:"formFields"`
}

// DocumentLink : привязка получателя к документу. Пустой roles означает все роли документа
type DocumentLink struct {
	DocumentID string   `json:"documentId" example:"1"`
	Roles      []string `json:"roles,omitempty"`
}

type LinkedRecipient struct {
	Email       string                `json:"email" example:"owner@example.com"`
	Name        string                `json:"name" example:"Jane Doe"`
	Documents   []DocumentLink        `json:"documents"`
	Attachments []model.AttachmentTab `json:"attachments,omitempty"`
}

// CreateLinkedEnvelopeRequest : вариант с явными ссылками получателей на документы
type CreateLinkedEnvelopeRequest struct {
	EmailSubject string               `json:"emailSubject" example:"Please sign"`
	Forms        []LinkedForm         `json:"forms"`
	Recipients   []LinkedRecipient    `json:"recipientDetails"`
	Status       model.EnvelopeStatus `json:"status,omitempty" example:"sent"`
}

// DownloadResponse : ссылка на скачивание документов конверта
type DownloadResponse struct {
	URL       string `json:"url"`
	FileName  string `json:"fileName" example:"envelope-123-combined.pdf"`
	ExpiresIn string `json:"expiresIn" example:"15m0s"`
}

// HealthResponse : ответ проверки работоспособности
type HealthResponse struct {
	Status    string `json:"status" example:"ok"`
	Timestamp string `json:"timestamp" example:"2025-08-23T12:34:56Z"`
}
