package service

import (
	"bytes"
	"context"
	"encoding/json"
	"envelope-orchestrator/config"
	"envelope-orchestrator/internal/model"
	"envelope-orchestrator/internal/ports"
	"envelope-orchestrator/internal/util"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

const formFillTokenCachePrefix = "formfill:"

// FormFillService : HTTP-клиент движка генерации PDF-форм
type FormFillService struct {
	cfg         *config.FormFillConfig
	client      *http.Client
	cache       ports.TokenCache
	tokenSafety time.Duration
	static      map[string]*model.FieldLocationBundle
}

func NewFormFillService(cfg *config.FormFillConfig, client *http.Client, cache ports.TokenCache, tokenSafety time.Duration) *FormFillService {
	return &FormFillService{
		cfg:         cfg,
		client:      client,
		cache:       cache,
		tokenSafety: tokenSafety,
		static:      StaticFieldLocations(cfg.StaticFieldLocations),
	}
}

// StaticFieldLocations : координаты из конфигурации в том же виде, что отдаёт движок
func StaticFieldLocations(static map[string]config.StaticFieldLocations) map[string]*model.FieldLocationBundle {
	bundles := make(map[string]*model.FieldLocationBundle, len(static))
	for formID, fields := range static {
		bundles[formID] = &model.FieldLocationBundle{
			FormID:             model.FlexString(formID),
			SignFields:         staticLocations(fields.SignFields),
			SignDateFields:     staticLocations(fields.SignDateFields),
			SignInitialsFields: staticLocations(fields.SignInitialsFields),
		}
	}
	return bundles
}

func staticLocations(fields []config.StaticField) []model.FieldLocation {
	locations := make([]model.FieldLocation, 0, len(fields))
	for _, field := range fields {
		locations = append(locations, model.FieldLocation{
			XCoord: field.X,
			YCoord: field.Y,
			Page:   field.Page,
			Role:   field.Role,
		})
	}
	return locations
}

type formFillTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

type generatePDFRequest struct {
	HostFormOnQuik bool                   `json:"HostFormOnQuik"`
	FormFields     []model.FormFieldValue `json:"FormFields"`
	QuikFormID     string                 `json:"QuikFormID"`
}

type generatePDFResponse struct {
	Errors     json.RawMessage `json:"Errors"`
	ResultData *struct {
		PDF           string `json:"PDF"`
		FormShortName string `json:"FormShortName"`
	} `json:"ResultData"`
}

type fieldLocationsResponse struct {
	Errors     json.RawMessage             `json:"Errors"`
	ResultData []model.FieldLocationBundle `json:"ResultData"`
}

// GenerateDocuments : генерирует PDF для всех форм параллельно.
// Ошибка любой формы означает ошибку всей генерации
func (s *FormFillService) GenerateDocuments(ctx context.Context, forms []model.GenerateFormRequest) ([]model.GeneratedDocument, error) {
	if len(forms) == 0 {
		return []model.GeneratedDocument{}, nil
	}

	token, err := s.token(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUpstreamGeneration, err)
	}

	documents := make([]model.GeneratedDocument, len(forms))
	g, gctx := errgroup.WithContext(ctx)
	for i, form := range forms {
		g.Go(func() error {
			document, err := s.generate(gctx, token, form)
			if err != nil {
				return err
			}
			documents[i] = *document
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, util.LogError("[FormFillService] ошибка генерации PDF", err)
	}
	return documents, nil
}

func (s *FormFillService) generate(ctx context.Context, token string, form model.GenerateFormRequest) (*model.GeneratedDocument, error) {
	fields := form.Fields
	if fields == nil {
		fields = make([]model.FormFieldValue, 0)
	}
	body, err := json.Marshal(generatePDFRequest{
		HostFormOnQuik: true,
		FormFields:     fields,
		QuikFormID:     form.FormID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: форма %s: %v", model.ErrUpstreamGeneration, form.FormID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+"/rest/QuikFormsEngine/qfe/execute/pdf", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: форма %s: %v", model.ErrUpstreamGeneration, form.FormID, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	var resp generatePDFResponse
	if err := s.do(req, &resp); err != nil {
		return nil, fmt.Errorf("%w: форма %s: %v", model.ErrUpstreamGeneration, form.FormID, err)
	}
	if hasErrors(resp.Errors) || resp.ResultData == nil || resp.ResultData.PDF == "" {
		return nil, fmt.Errorf("%w: движок не вернул PDF для формы %s: %s", model.ErrUpstreamGeneration, form.FormID, string(resp.Errors))
	}

	return &model.GeneratedDocument{
		DocumentID: form.DocumentID,
		PDFBase64:  resp.ResultData.PDF,
		FileName:   resp.ResultData.FormShortName + "-" + form.DocumentID,
	}, nil
}

// FetchFieldLocations : один запрос на форму, формы из конфигурации не запрашиваются.
// Ошибка по форме только логируется, форма в результат не попадает
func (s *FormFillService) FetchFieldLocations(ctx context.Context, formIDs []string) (map[string]*model.FieldLocationBundle, error) {
	result := make(map[string]*model.FieldLocationBundle, len(formIDs))

	remote := make([]string, 0, len(formIDs))
	for _, formID := range formIDs {
		if bundle, ok := s.static[formID]; ok {
			result[formID] = bundle
			continue
		}
		remote = append(remote, formID)
	}
	if len(remote) == 0 {
		return result, nil
	}

	token, err := s.token(ctx)
	if err != nil {
		return result, fmt.Errorf("%w: %v", model.ErrUpstreamLookup, err)
	}

	var mu sync.Mutex
	var g errgroup.Group
	for _, formID := range remote {
		g.Go(func() error {
			bundle, err := s.fetchFieldLocations(ctx, token, formID)
			if err != nil {
				log.Printf("[FormFillService] координаты полей формы %s не получены: %v", formID, err)
				return nil
			}
			mu.Lock()
			result[formID] = bundle
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return result, nil
}

func (s *FormFillService) fetchFieldLocations(ctx context.Context, token, formID string) (*model.FieldLocationBundle, error) {
	endpoint := s.cfg.BaseURL + "/rest/QFEM/v2000/fields/esign?formIds=" + url.QueryEscape(formID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUpstreamLookup, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	var resp fieldLocationsResponse
	if err := s.do(req, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUpstreamLookup, err)
	}
	if hasErrors(resp.Errors) || len(resp.ResultData) == 0 {
		return nil, fmt.Errorf("%w: пустой ответ движка: %s", model.ErrUpstreamLookup, string(resp.Errors))
	}

	return &resp.ResultData[0], nil
}

// token : токен движка по паролю мастер-пользователя, кэшируется в Redis
func (s *FormFillService) token(ctx context.Context) (string, error) {
	key := formFillTokenCachePrefix + s.cfg.Username

	cached, err := s.cache.GetToken(ctx, key)
	if err != nil {
		log.Printf("[FormFillService] кэш токенов недоступен: %v", err)
	}
	if cached != nil && cached.AccessToken != "" {
		return cached.AccessToken, nil
	}

	form := url.Values{
		"grant_type": {"password"},
		"username":   {s.cfg.Username},
		"password":   {s.cfg.Password},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+"/rest_authentication/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", util.LogError("[FormFillService] ошибка создания запроса", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var tokens formFillTokenResponse
	if err := s.do(req, &tokens); err != nil {
		return "", util.LogError("[FormFillService] не удалось получить токен движка", err)
	}
	if tokens.AccessToken == "" {
		return "", fmt.Errorf("в ответе движка нет access_token")
	}

	ttl := time.Duration(tokens.ExpiresIn)*time.Second - s.tokenSafety
	if err := s.cache.SetToken(ctx, key, &model.CachedToken{AccessToken: tokens.AccessToken}, ttl); err != nil {
		log.Printf("[FormFillService] не удалось сохранить токен в кэш: %v", err)
	}

	return tokens.AccessToken, nil
}

func (s *FormFillService) do(req *http.Request, out any) error {
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("ошибка выполнения запроса: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("статус %d, ответ: %s", resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("ошибка разбора ответа: %w", err)
	}
	return nil
}

// hasErrors : null и пустой список ошибками не считаются
func hasErrors(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed != "" && trimmed != "null" && trimmed != "[]" && trimmed != "{}"
}
