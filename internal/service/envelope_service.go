package service

import (
	"context"
	"encoding/json"
	"envelope-orchestrator/internal/envelope"
	"envelope-orchestrator/internal/model"
	"envelope-orchestrator/internal/model/requestresponse"
	"envelope-orchestrator/internal/ports"
	"envelope-orchestrator/internal/util"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// EnvelopeService : сборка и отправка конвертов, чтение конвертов провайдера
type EnvelopeService struct {
	formFill    ports.FormFillEngine
	provider    ports.ESignProvider
	credentials ports.CredentialsResolver
	storage     ports.S3Storage
	downloadTTL time.Duration
}

func NewEnvelopeService(
	formFill ports.FormFillEngine,
	provider ports.ESignProvider,
	credentials ports.CredentialsResolver,
	storage ports.S3Storage,
	downloadTTL time.Duration,
) *EnvelopeService {
	return &EnvelopeService{
		formFill:    formFill,
		provider:    provider,
		credentials: credentials,
		storage:     storage,
		downloadTTL: downloadTTL,
	}
}

// CreateEnvelope : формы и клиентские PDF в одном конверте. Клиентские PDF
// получают идентификаторы первыми
func (s *EnvelopeService) CreateEnvelope(ctx context.Context, userID, accountID string, req *requestresponse.CreateEnvelopeRequest) (*model.EnvelopeSummary, error) {
	if err := envelope.ValidateCreateRequest(req); err != nil {
		return nil, err
	}
	return s.submit(ctx, userID, accountID, envelope.PlanCreateRequest(req))
}

// CreateLinkedEnvelope : идентификаторы документов и привязки получателей задаёт клиент
func (s *EnvelopeService) CreateLinkedEnvelope(ctx context.Context, userID, accountID string, req *requestresponse.CreateLinkedEnvelopeRequest) (*model.EnvelopeSummary, error) {
	if err := envelope.ValidateLinkedRequest(req); err != nil {
		return nil, err
	}
	return s.submit(ctx, userID, accountID, envelope.PlanLinkedRequest(req))
}

func (s *EnvelopeService) submit(ctx context.Context, userID, accountID string, plan *envelope.Plan) (*model.EnvelopeSummary, error) {
	var (
		generated []model.GeneratedDocument
		locations map[string]*model.FieldLocationBundle
		creds     *model.ProviderCredentials
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		documents, err := s.formFill.GenerateDocuments(gctx, plan.Generate)
		if err != nil {
			return err
		}
		generated = documents
		return nil
	})
	g.Go(func() error {
		bundles, err := s.formFill.FetchFieldLocations(gctx, plan.UniqueFormIDs())
		if err != nil {
			log.Printf("[EnvelopeService] координаты полей не получены, вкладки форм будут пустыми: %v", err)
		}
		locations = bundles
		return nil
	})
	g.Go(func() error {
		resolved, err := s.credentials.Resolve(gctx, userID, accountID)
		if err != nil {
			return err
		}
		creds = resolved
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, util.LogError("[EnvelopeService] не удалось подготовить конверт", err)
	}

	plan.ApplyFieldLocations(locations)
	definition, err := plan.Compose(generated)
	if err != nil {
		return nil, util.LogError("[EnvelopeService] не удалось собрать конверт", err)
	}

	summary, err := s.provider.SubmitEnvelope(ctx, creds, definition)
	if err != nil {
		return nil, util.LogError("[EnvelopeService] провайдер не принял конверт", err)
	}

	log.Printf("[EnvelopeService] конверт %s создан: документов %d, подписантов %d, копий %d",
		summary.EnvelopeID, len(definition.Documents), len(definition.Recipients.Signers), len(definition.Recipients.CarbonCopies))
	return summary, nil
}

// ListEnvelopes : только сохранённые аккаунты пользователя
func (s *EnvelopeService) ListEnvelopes(ctx context.Context, userID, accountID string) (*requestresponse.EnvelopeListResponse, error) {
	creds, err := s.credentials.ResolveStored(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	list, err := s.provider.ListEnvelopes(ctx, creds)
	if err != nil {
		return nil, util.LogError("[EnvelopeService] не удалось получить список конвертов", err)
	}

	return &requestresponse.EnvelopeListResponse{
		Envelopes:    list.Envelopes,
		TotalResults: list.TotalSetSize.String(),
	}, nil
}

func (s *EnvelopeService) GetEnvelope(ctx context.Context, userID, accountID, envelopeID string) (json.RawMessage, error) {
	creds, err := s.credentials.Resolve(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	details, err := s.provider.GetEnvelopeDetails(ctx, creds, envelopeID)
	if err != nil {
		return nil, util.LogError("[EnvelopeService] не удалось получить конверт", err)
	}
	return details, nil
}

// DownloadEnvelope : документы конверта сохраняются в S3, клиент получает временную ссылку
func (s *EnvelopeService) DownloadEnvelope(ctx context.Context, userID, accountID, envelopeID string, kind ports.DownloadKind, documentID string) (*requestresponse.DownloadResponse, error) {
	if kind == "" {
		kind = ports.DownloadCombined
	}
	switch kind {
	case ports.DownloadCombined, ports.DownloadArchive:
	case ports.DownloadIndividual:
		if documentID == "" {
			return nil, model.NewValidationError("для type=individual нужен documentId")
		}
	default:
		return nil, model.NewValidationError(fmt.Sprintf("type должен быть combined, archive или individual, получено %q", kind))
	}

	creds, err := s.credentials.Resolve(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	file, err := s.provider.DownloadDocuments(ctx, creds, envelopeID, kind, documentID)
	if err != nil {
		return nil, util.LogError("[EnvelopeService] не удалось скачать документы", err)
	}

	key := fmt.Sprintf("envelopes/%s/%s/%s", envelopeID, uuid.NewString(), file.FileName)
	if err := s.storage.PutObject(ctx, key, file.ContentType, file.Content); err != nil {
		return nil, util.LogError("[EnvelopeService] не удалось сохранить документы", err)
	}

	getURL, err := s.storage.GeneratePresignedGetURL(ctx, key, s.downloadTTL)
	if err != nil {
		if deleteErr := s.storage.DeleteObject(ctx, key); deleteErr != nil {
			log.Printf("[EnvelopeService] не удалось удалить объект %s: %v", key, deleteErr)
		}
		return nil, util.LogError("[EnvelopeService] не удалось сгенерировать ссылку", err)
	}

	return &requestresponse.DownloadResponse{
		URL:       getURL,
		FileName:  file.FileName,
		ExpiresIn: s.downloadTTL.String(),
	}, nil
}
