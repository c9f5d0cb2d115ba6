package service

import (
	"bytes"
	"context"
	"encoding/json"
	"envelope-orchestrator/internal/model"
	"envelope-orchestrator/internal/ports"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	listEnvelopeStatuses = "sent,delivered,completed,signed"
	listEnvelopeCount    = "50"
	listEnvelopeWindow   = 30 * 24 * time.Hour
)

// ESignService : HTTP-клиент REST API провайдера подписи
type ESignService struct {
	client *http.Client
	now    func() time.Time
}

func NewESignService(client *http.Client) *ESignService {
	return &ESignService{client: client, now: time.Now}
}

// WithClock : подмена времени для окна списка конвертов
func (s *ESignService) WithClock(now func() time.Time) *ESignService {
	s.now = now
	return s
}

func envelopesURL(creds *model.ProviderCredentials) string {
	return fmt.Sprintf("%s/accounts/%s/envelopes", creds.APIBaseURL, url.PathEscape(creds.AccountID))
}

func envelopeURL(creds *model.ProviderCredentials, envelopeID string) string {
	return envelopesURL(creds) + "/" + url.PathEscape(envelopeID)
}

// SubmitEnvelope : тело конверта отправляется как есть
func (s *ESignService) SubmitEnvelope(ctx context.Context, creds *model.ProviderCredentials, definition *model.EnvelopeDefinition) (*model.EnvelopeSummary, error) {
	body, err := json.Marshal(definition)
	if err != nil {
		return nil, fmt.Errorf("%w: ошибка сериализации конверта: %v", model.ErrUpstreamSubmission, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, envelopesURL(creds), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUpstreamSubmission, err)
	}
	req.Header.Set("Content-Type", "application/json")

	var summary model.EnvelopeSummary
	if err := s.doJSON(req, creds, &summary); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUpstreamSubmission, err)
	}
	if summary.EnvelopeID == "" {
		return nil, fmt.Errorf("%w: провайдер не вернул envelopeId", model.ErrUpstreamSubmission)
	}
	return &summary, nil
}

func (s *ESignService) GetEnvelope(ctx context.Context, creds *model.ProviderCredentials, envelopeID string) (*model.RawEnvelope, error) {
	var envelope model.RawEnvelope
	if err := s.get(ctx, creds, envelopeURL(creds, envelopeID), &envelope); err != nil {
		return nil, fmt.Errorf("%w: конверт: %v", model.ErrStatusSnapshot, err)
	}
	if envelope.Status == "" {
		return nil, fmt.Errorf("%w: в ответе нет статуса конверта %s", model.ErrStatusSnapshot, envelopeID)
	}
	return &envelope, nil
}

func (s *ESignService) GetRecipients(ctx context.Context, creds *model.ProviderCredentials, envelopeID string) (*model.RawRecipients, error) {
	var recipients model.RawRecipients
	if err := s.get(ctx, creds, envelopeURL(creds, envelopeID)+"/recipients?include_tabs=true", &recipients); err != nil {
		return nil, fmt.Errorf("%w: получатели: %v", model.ErrStatusSnapshot, err)
	}
	if recipients.Signers == nil {
		return nil, fmt.Errorf("%w: в ответе нет списка подписантов конверта %s", model.ErrStatusSnapshot, envelopeID)
	}
	return &recipients, nil
}

func (s *ESignService) GetDocuments(ctx context.Context, creds *model.ProviderCredentials, envelopeID string) (*model.RawDocuments, error) {
	var documents model.RawDocuments
	if err := s.get(ctx, creds, envelopeURL(creds, envelopeID)+"/documents", &documents); err != nil {
		return nil, fmt.Errorf("%w: документы: %v", model.ErrStatusSnapshot, err)
	}
	if documents.EnvelopeDocuments == nil {
		return nil, fmt.Errorf("%w: в ответе нет списка документов конверта %s", model.ErrStatusSnapshot, envelopeID)
	}
	return &documents, nil
}

// ListEnvelopes : конверты за последние 30 дней, новые первыми
func (s *ESignService) ListEnvelopes(ctx context.Context, creds *model.ProviderCredentials) (*model.EnvelopeList, error) {
	query := url.Values{
		"status":    {listEnvelopeStatuses},
		"count":     {listEnvelopeCount},
		"order_by":  {"created"},
		"order":     {"desc"},
		"from_date": {s.now().UTC().Add(-listEnvelopeWindow).Format(time.RFC3339)},
	}

	var list model.EnvelopeList
	if err := s.get(ctx, creds, envelopesURL(creds)+"?"+query.Encode(), &list); err != nil {
		return nil, fmt.Errorf("%w: список конвертов: %v", model.ErrProviderRequest, err)
	}
	if list.Envelopes == nil {
		list.Envelopes = make([]model.EnvelopeListItem, 0)
	}
	return &list, nil
}

// GetEnvelopeDetails : конверт с получателями и вкладками без разбора
func (s *ESignService) GetEnvelopeDetails(ctx context.Context, creds *model.ProviderCredentials, envelopeID string) (json.RawMessage, error) {
	var details json.RawMessage
	if err := s.get(ctx, creds, envelopeURL(creds, envelopeID)+"?include=recipients,tabs", &details); err != nil {
		return nil, fmt.Errorf("%w: конверт %s: %v", model.ErrProviderRequest, envelopeID, err)
	}
	return details, nil
}

func (s *ESignService) DownloadDocuments(ctx context.Context, creds *model.ProviderCredentials, envelopeID string, kind ports.DownloadKind, documentID string) (*model.DownloadedFile, error) {
	var path, fileName, contentType string
	switch kind {
	case ports.DownloadCombined:
		path = "/documents/combined"
		fileName = fmt.Sprintf("envelope-%s-combined.pdf", envelopeID)
		contentType = "application/pdf"
	case ports.DownloadArchive:
		path = "/documents/archive"
		fileName = fmt.Sprintf("envelope-%s-archive.zip", envelopeID)
		contentType = "application/zip"
	case ports.DownloadIndividual:
		if documentID == "" {
			return nil, model.NewValidationError("для type=individual нужен documentId")
		}
		path = "/documents/" + url.PathEscape(documentID)
		fileName = fmt.Sprintf("document-%s.pdf", documentID)
		contentType = "application/pdf"
	default:
		return nil, model.NewValidationError(fmt.Sprintf("неизвестный тип скачивания %q", kind))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, envelopeURL(creds, envelopeID)+path, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrProviderRequest, err)
	}
	req.Header.Set("Accept", contentType)

	content, header, err := s.do(req, creds)
	if err != nil {
		return nil, fmt.Errorf("%w: скачивание конверта %s: %v", model.ErrProviderRequest, envelopeID, err)
	}
	if responseType := header.Get("Content-Type"); responseType != "" {
		contentType = responseType
	}

	return &model.DownloadedFile{
		FileName:    fileName,
		ContentType: contentType,
		Content:     content,
	}, nil
}

func (s *ESignService) get(ctx context.Context, creds *model.ProviderCredentials, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	return s.doJSON(req, creds, out)
}

func (s *ESignService) doJSON(req *http.Request, creds *model.ProviderCredentials, out any) error {
	body, _, err := s.do(req, creds)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("ошибка разбора ответа: %w", err)
	}
	return nil
}

func (s *ESignService) do(req *http.Request, creds *model.ProviderCredentials) ([]byte, http.Header, error) {
	req.Header.Set("Authorization", "Bearer "+creds.AccessToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("ошибка чтения ответа: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil, fmt.Errorf("статус %d, ответ: %s", resp.StatusCode, string(body))
	}
	return body, resp.Header, nil
}
