package ports

import (
	"context"
	"encoding/json"
	"envelope-orchestrator/internal/model"
	"envelope-orchestrator/internal/model/requestresponse"
)

type EnvelopeService interface {
	CreateEnvelope(ctx context.Context, userID, accountID string, req *requestresponse.CreateEnvelopeRequest) (*model.EnvelopeSummary, error)
	CreateLinkedEnvelope(ctx context.Context, userID, accountID string, req *requestresponse.CreateLinkedEnvelopeRequest) (*model.EnvelopeSummary, error)
	ListEnvelopes(ctx context.Context, userID, accountID string) (*requestresponse.EnvelopeListResponse, error)
	GetEnvelope(ctx context.Context, userID, accountID, envelopeID string) (json.RawMessage, error)
	DownloadEnvelope(ctx context.Context, userID, accountID, envelopeID string, kind DownloadKind, documentID string) (*requestresponse.DownloadResponse, error)
}

type StatusService interface {
	GetSignersStatus(ctx context.Context, userID, accountID, envelopeID string) (*model.EnvelopeSignersStatus, error)
}
