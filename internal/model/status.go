package model

type DocumentSigningStatus string

const (
	DocumentSigned    DocumentSigningStatus = "signed"
	DocumentNotSigned DocumentSigningStatus = "not_signed"
)

type TimelineStatus string

const (
	TimelineCreated   TimelineStatus = "created"
	TimelineSent      TimelineStatus = "sent"
	TimelineDelivered TimelineStatus = "delivered"
	TimelineSigned    TimelineStatus = "signed"
	TimelineCompleted TimelineStatus = "completed"
)

type SignerDocument struct {
	DocumentID     string                `json:"documentId"`
	DocumentName   string                `json:"documentName"`
	Status         DocumentSigningStatus `json:"status"`
	SignedDateTime string                `json:"signedDateTime,omitempty"`
}

type SignerStatus struct {
	Email          string           `json:"email"`
	Name           string           `json:"name"`
	SignedCount    int              `json:"signedCount"`
	TotalDocuments int              `json:"totalDocuments"`
	Documents      []SignerDocument `json:"documents"`
}

type TimelineEvent struct {
	Status    TimelineStatus `json:"status"`
	DateTime  string         `json:"dateTime"`
	Completed bool           `json:"completed"`
}

// EnvelopeSignersStatus : сводка прогресса подписания, пересчитывается на каждый запрос
type EnvelopeSignersStatus struct {
	EnvelopeID string          `json:"envelopeId"`
	Status     string          `json:"status"`
	Timeline   []TimelineEvent `json:"timeline"`
	Signers    []SignerStatus  `json:"signers"`
}

// Сырые данные провайдера

type RawEnvelope struct {
	EnvelopeID            string `json:"envelopeId"`
	Status                string `json:"status"`
	CreatedDateTime       string `json:"createdDateTime"`
	SentDateTime          string `json:"sentDateTime"`
	DeliveredDateTime     string `json:"deliveredDateTime"`
	CompletedDateTime     string `json:"completedDateTime"`
	StatusChangedDateTime string `json:"statusChangedDateTime"`
}

type RawTab struct {
	DocumentID     string `json:"documentId"`
	TabType        string `json:"tabType"`
	Status         string `json:"status"`
	Value          string `json:"value"`
	SignedDateTime string `json:"signedDateTime"`
}

type RawTabs struct {
	SignHereTabs    []RawTab `json:"signHereTabs"`
	InitialHereTabs []RawTab `json:"initialHereTabs"`
	DateSignedTabs  []RawTab `json:"dateSignedTabs"`
	TextTabs        []RawTab `json:"textTabs"`
	CheckboxTabs    []RawTab `json:"checkboxTabs"`
}

type RawSigner struct {
	Email          string   `json:"email"`
	Name           string   `json:"name"`
	RecipientID    string   `json:"recipientId"`
	Status         string   `json:"status"`
	SignedDateTime string   `json:"signedDateTime"`
	Tabs           *RawTabs `json:"tabs"`
}

type RawRecipients struct {
	Signers []RawSigner `json:"signers"`
}

type RawDocument struct {
	DocumentID string `json:"documentId"`
	Name       string `json:"name"`
	Type       string `json:"type"`
}

type RawDocuments struct {
	EnvelopeID        string        `json:"envelopeId"`
	EnvelopeDocuments []RawDocument `json:"envelopeDocuments"`
}
