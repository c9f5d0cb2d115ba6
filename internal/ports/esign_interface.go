package ports

import (
	"context"
	"encoding/json"
	"envelope-orchestrator/internal/model"
)

// DownloadKind : что скачивать из конверта
type DownloadKind string

const (
	DownloadCombined   DownloadKind = "combined"
	DownloadArchive    DownloadKind = "archive"
	DownloadIndividual DownloadKind = "individual"
)

// ESignProvider : REST API провайдера подписи
type ESignProvider interface {
	SubmitEnvelope(ctx context.Context, creds *model.ProviderCredentials, definition *model.EnvelopeDefinition) (*model.EnvelopeSummary, error)
	GetEnvelope(ctx context.Context, creds *model.ProviderCredentials, envelopeID string) (*model.RawEnvelope, error)
	GetRecipients(ctx context.Context, creds *model.ProviderCredentials, envelopeID string) (*model.RawRecipients, error)
	GetDocuments(ctx context.Context, creds *model.ProviderCredentials, envelopeID string) (*model.RawDocuments, error)
	ListEnvelopes(ctx context.Context, creds *model.ProviderCredentials) (*model.EnvelopeList, error)
	GetEnvelopeDetails(ctx context.Context, creds *model.ProviderCredentials, envelopeID string) (json.RawMessage, error)
	DownloadDocuments(ctx context.Context, creds *model.ProviderCredentials, envelopeID string, kind DownloadKind, documentID string) (*model.DownloadedFile, error)
}
