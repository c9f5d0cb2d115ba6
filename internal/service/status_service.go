package service

import (
	"context"
	"envelope-orchestrator/internal/envelope"
	"envelope-orchestrator/internal/model"
	"envelope-orchestrator/internal/ports"
	"envelope-orchestrator/internal/util"

	"golang.org/x/sync/errgroup"
)

// StatusService : прогресс подписания по текущему снимку провайдера, без хранения
type StatusService struct {
	provider    ports.ESignProvider
	credentials ports.CredentialsResolver
}

func NewStatusService(provider ports.ESignProvider, credentials ports.CredentialsResolver) *StatusService {
	return &StatusService{provider: provider, credentials: credentials}
}

func (s *StatusService) GetSignersStatus(ctx context.Context, userID, accountID, envelopeID string) (*model.EnvelopeSignersStatus, error) {
	creds, err := s.credentials.Resolve(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	var (
		envelopeState *model.RawEnvelope
		recipients    *model.RawRecipients
		documents     *model.RawDocuments
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		envelopeState, err = s.provider.GetEnvelope(gctx, creds, envelopeID)
		return err
	})
	g.Go(func() error {
		var err error
		recipients, err = s.provider.GetRecipients(gctx, creds, envelopeID)
		return err
	})
	g.Go(func() error {
		var err error
		documents, err = s.provider.GetDocuments(gctx, creds, envelopeID)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, util.LogError("[StatusService] не удалось получить состояние конверта", err)
	}

	status := envelope.ReduceSigningStatus(envelopeID, envelopeState, recipients, documents)
	return &status, nil
}
