package model

// DocumentOrigin : источник документа конверта
type DocumentOrigin string

const (
	OriginClientSupplied DocumentOrigin = "client-supplied"
	OriginGeneratedForm  DocumentOrigin = "generated-form"
)

type EnvelopeStatus string

const (
	EnvelopeStatusCreated EnvelopeStatus = "created"
	EnvelopeStatusSent    EnvelopeStatus = "sent"
)

// CarbonCopyRoutingOrder : копии получают конверт только после всех подписантов
const CarbonCopyRoutingOrder = "2"

// DocumentSource : единица содержимого для подписания
type DocumentSource struct {
	DocumentID    string
	Origin        DocumentOrigin
	ContentBase64 string
	DisplayName   string
}

// TabPlacement : место вкладки на документе. Координаты всегда целые
type TabPlacement struct {
	DocumentID string `json:"documentId"`
	PageNumber string `json:"pageNumber"`
	XPosition  int    `json:"xPosition"`
	YPosition  int    `json:"yPosition"`
}

// AttachmentTab : вкладка для вложения, задаётся клиентом как есть
type AttachmentTab struct {
	DocumentID string `json:"documentId"`
	Name       string `json:"name"`
	TabLabel   string `json:"tabLabel"`
	PageNumber string `json:"pageNumber"`
	XPosition  string `json:"xPosition"`
	YPosition  string `json:"yPosition"`
	Required   bool   `json:"required"`
}

type Tabs struct {
	SignHereTabs    []TabPlacement  `json:"signHereTabs"`
	DateSignedTabs  []TabPlacement  `json:"dateSignedTabs"`
	InitialHereTabs []TabPlacement  `json:"initialHereTabs"`
	AttachmentTabs  []AttachmentTab `json:"attachmentTabs"`
}

// NewTabs : пустой набор, все последовательности сериализуются как []
func NewTabs() Tabs {
	return Tabs{
		SignHereTabs:    make([]TabPlacement, 0),
		DateSignedTabs:  make([]TabPlacement, 0),
		InitialHereTabs: make([]TabPlacement, 0),
		AttachmentTabs:  make([]AttachmentTab, 0),
	}
}

type Signer struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	RecipientID string `json:"recipientId"`
	Tabs        Tabs   `json:"tabs"`
}

type CarbonCopy struct {
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	RecipientID       string   `json:"recipientId"`
	RoutingOrder      string   `json:"routingOrder"`
	ExcludedDocuments []string `json:"excludedDocuments"`
}

type EnvelopeDocument struct {
	DocumentBase64 string `json:"documentBase64"`
	DocumentID     string `json:"documentId"`
	FileExtension  string `json:"fileExtension"`
	Name           string `json:"name"`
}

type EnvelopeRecipients struct {
	Signers      []Signer     `json:"signers"`
	CarbonCopies []CarbonCopy `json:"carbonCopies"`
}

// EnvelopeDefinition : тело запроса создания конверта у провайдера
type EnvelopeDefinition struct {
	Documents               []EnvelopeDocument `json:"documents"`
	EmailSubject            string             `json:"emailSubject"`
	Recipients              EnvelopeRecipients `json:"recipients"`
	EnforceSignerVisibility bool               `json:"enforceSignerVisibility"`
	Status                  EnvelopeStatus     `json:"status"`
}

// EnvelopeSummary : ответ провайдера на создание конверта
type EnvelopeSummary struct {
	EnvelopeID     string `json:"envelopeId"`
	Status         string `json:"status"`
	StatusDateTime string `json:"statusDateTime,omitempty"`
	URI            string `json:"uri,omitempty"`
}
