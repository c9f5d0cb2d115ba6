package security

import (
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
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	jwtBearerGrantType   = "urn:ietf:params:oauth:grant-type:jwt-bearer"
	refreshTokenGrant    = "refresh_token"
	assertionTTL         = time.Hour
	serviceTokenCacheKey = "esign:service"
	apiVersionPath       = "/restapi/v2.1"
)

// OAuthService : авторизация у провайдера подписи. Сервисный токен получается
// JWT-грантом от имени пользователя из конфигурации и кэшируется в Redis
type OAuthService struct {
	cfg         *config.ESignConfig
	client      *http.Client
	cache       ports.TokenCache
	tokenSafety time.Duration
}

func NewOAuthService(cfg *config.ESignConfig, client *http.Client, cache ports.TokenCache, tokenSafety time.Duration) *OAuthService {
	return &OAuthService{
		cfg:         cfg,
		client:      client,
		cache:       cache,
		tokenSafety: tokenSafety,
	}
}

type userInfoAccount struct {
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
	IsDefault   bool   `json:"is_default"`
	BaseURI     string `json:"base_uri"`
}

type userInfo struct {
	Sub      string            `json:"sub"`
	Email    string            `json:"email"`
	Accounts []userInfoAccount `json:"accounts"`
}

// ServiceCredentials : токен сервисного пользователя и его аккаунт по умолчанию
func (s *OAuthService) ServiceCredentials(ctx context.Context) (*model.ProviderCredentials, error) {
	cached, err := s.cache.GetToken(ctx, serviceTokenCacheKey)
	if err != nil {
		log.Printf("[OAuthService] кэш токенов недоступен: %v", err)
	}
	if cached != nil && cached.AccessToken != "" && cached.AccountID != "" {
		return &model.ProviderCredentials{
			AccessToken: cached.AccessToken,
			AccountID:   cached.AccountID,
			APIBaseURL:  cached.APIBaseURL,
		}, nil
	}

	tokens, err := s.requestJWTGrant(ctx)
	if err != nil {
		return nil, err
	}

	account, err := s.defaultAccount(ctx, tokens.AccessToken)
	if err != nil {
		return nil, err
	}

	creds := &model.ProviderCredentials{
		AccessToken: tokens.AccessToken,
		AccountID:   account.AccountID,
		APIBaseURL:  strings.TrimRight(account.BaseURI, "/") + apiVersionPath,
	}

	ttl := time.Duration(tokens.ExpiresIn)*time.Second - s.tokenSafety
	err = s.cache.SetToken(ctx, serviceTokenCacheKey, &model.CachedToken{
		AccessToken: creds.AccessToken,
		AccountID:   creds.AccountID,
		APIBaseURL:  creds.APIBaseURL,
	}, ttl)
	if err != nil {
		log.Printf("[OAuthService] не удалось сохранить токен в кэш: %v", err)
	}

	return creds, nil
}

// RefreshTokens : обмен refresh-токена сохранённого аккаунта на новую пару
func (s *OAuthService) RefreshTokens(ctx context.Context, refreshToken string) (*model.OAuthTokens, error) {
	form := url.Values{
		"grant_type":    {refreshTokenGrant},
		"refresh_token": {refreshToken},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.authBaseURL()+"/oauth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, util.LogError("[OAuthService] ошибка создания запроса", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(s.cfg.IntegrationKey, s.cfg.ClientSecret)

	var tokens model.OAuthTokens
	if err := s.do(req, &tokens); err != nil {
		return nil, util.LogError("[OAuthService] не удалось обновить токен", err)
	}
	if tokens.AccessToken == "" {
		return nil, fmt.Errorf("%w: в ответе нет access_token", model.ErrCredentials)
	}
	return &tokens, nil
}

// SignAssertion : RS256-утверждение для JWT-гранта
func (s *OAuthService) SignAssertion(now time.Time) (string, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(s.cfg.PrivateKey))
	if err != nil {
		return "", util.LogError("[OAuthService] неверный приватный ключ", err)
	}

	claims := jwt.MapClaims{
		"iss":   s.cfg.IntegrationKey,
		"sub":   s.cfg.UserID,
		"aud":   s.audience(),
		"scope": s.cfg.Scope,
		"iat":   now.Unix(),
		"exp":   now.Add(assertionTTL).Unix(),
	}

	assertion, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	if err != nil {
		return "", util.LogError("[OAuthService] ошибка подписи утверждения", err)
	}
	return assertion, nil
}

func (s *OAuthService) requestJWTGrant(ctx context.Context) (*model.OAuthTokens, error) {
	assertion, err := s.SignAssertion(time.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrCredentials, err)
	}

	form := url.Values{
		"grant_type": {jwtBearerGrantType},
		"assertion":  {assertion},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.authBaseURL()+"/oauth/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, util.LogError("[OAuthService] ошибка создания запроса", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var tokens model.OAuthTokens
	if err := s.do(req, &tokens); err != nil {
		return nil, util.LogError("[OAuthService] JWT-грант отклонён", err)
	}
	if tokens.AccessToken == "" {
		return nil, fmt.Errorf("%w: в ответе нет access_token", model.ErrCredentials)
	}
	return &tokens, nil
}

func (s *OAuthService) defaultAccount(ctx context.Context, accessToken string) (*userInfoAccount, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.authBaseURL()+"/oauth/userinfo", nil)
	if err != nil {
		return nil, util.LogError("[OAuthService] ошибка создания запроса", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	var info userInfo
	if err := s.do(req, &info); err != nil {
		return nil, util.LogError("[OAuthService] не удалось получить userinfo", err)
	}

	for i := range info.Accounts {
		if info.Accounts[i].IsDefault {
			return &info.Accounts[i], nil
		}
	}
	return nil, fmt.Errorf("%w: у сервисного пользователя нет аккаунта по умолчанию", model.ErrCredentials)
}

func (s *OAuthService) do(req *http.Request, out any) error {
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrCredentials, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: ошибка чтения ответа: %v", model.ErrCredentials, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: статус %d, ответ: %s", model.ErrCredentials, resp.StatusCode, string(body))
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: ошибка разбора ответа: %v", model.ErrCredentials, err)
	}
	return nil
}

// authBaseURL : authHost без схемы означает https
func (s *OAuthService) authBaseURL() string {
	host := strings.TrimRight(s.cfg.AuthHost, "/")
	if strings.HasPrefix(host, "http://") || strings.HasPrefix(host, "https://") {
		return host
	}
	return "https://" + host
}

func (s *OAuthService) audience() string {
	host := strings.TrimPrefix(s.cfg.AuthHost, "https://")
	host = strings.TrimPrefix(host, "http://")
	return strings.TrimRight(host, "/")
}
