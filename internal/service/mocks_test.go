package service_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"envelope-orchestrator/internal/model"
	"envelope-orchestrator/internal/ports"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
	"sync"
	"time"
)

type MockAccountRepository struct{ mock.Mock }

func (m *MockAccountRepository) ListByUser(ctx context.Context, exec sqlx.ExtContext, userID string) ([]model.Account, error) {
	args := m.Called(ctx, exec, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByAccountID(ctx context.Context, exec sqlx.ExtContext, userID, accountID string) (*model.Account, error) {
	args := m.Called(ctx, exec, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountRepository) GetDefault(ctx context.Context, exec sqlx.ExtContext, userID string) (*model.Account, error) {
	args := m.Called(ctx, exec, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountRepository) SetDefault(ctx context.Context, exec sqlx.ExtContext, userID, accountID string) (bool, error) {
	args := m.Called(ctx, exec, userID, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) Delete(ctx context.Context, exec sqlx.ExtContext, userID, accountID string) (bool, error) {
	args := m.Called(ctx, exec, userID, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) UpdateTokens(ctx context.Context, exec sqlx.ExtContext, accountID, accessToken, refreshToken string, expiresAt time.Time) error {
	return m.Called(ctx, exec, accountID, accessToken, refreshToken, expiresAt).Error(0)
}

func (m *MockAccountRepository) BeginTX(ctx context.Context) (sqlx.ExtContext, func() error, func() error, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, nil, nil, args.Error(3)
	}
	return args.Get(0).(sqlx.ExtContext), args.Get(1).(func() error), args.Get(2).(func() error), args.Error(3)
}

func (m *MockAccountRepository) Executor() sqlx.ExtContext {
	return &fakeTx{}
}

type MockOAuthClient struct{ mock.Mock }

func (m *MockOAuthClient) ServiceCredentials(ctx context.Context) (*model.ProviderCredentials, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProviderCredentials), args.Error(1)
}

func (m *MockOAuthClient) RefreshTokens(ctx context.Context, refreshToken string) (*model.OAuthTokens, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.OAuthTokens), args.Error(1)
}

type MockCredentialsResolver struct{ mock.Mock }

func (m *MockCredentialsResolver) Resolve(ctx context.Context, userID, accountID string) (*model.ProviderCredentials, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProviderCredentials), args.Error(1)
}

func (m *MockCredentialsResolver) ResolveStored(ctx context.Context, userID, accountID string) (*model.ProviderCredentials, error) {
	args := m.Called(ctx, userID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProviderCredentials), args.Error(1)
}

type MockFormFillEngine struct{ mock.Mock }

func (m *MockFormFillEngine) GenerateDocuments(ctx context.Context, forms []model.GenerateFormRequest) ([]model.GeneratedDocument, error) {
	args := m.Called(ctx, forms)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.GeneratedDocument), args.Error(1)
}

func (m *MockFormFillEngine) FetchFieldLocations(ctx context.Context, formIDs []string) (map[string]*model.FieldLocationBundle, error) {
	args := m.Called(ctx, formIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*model.FieldLocationBundle), args.Error(1)
}

type MockESignProvider struct{ mock.Mock }

func (m *MockESignProvider) SubmitEnvelope(ctx context.Context, creds *model.ProviderCredentials, definition *model.EnvelopeDefinition) (*model.EnvelopeSummary, error) {
	args := m.Called(ctx, creds, definition)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EnvelopeSummary), args.Error(1)
}

func (m *MockESignProvider) GetEnvelope(ctx context.Context, creds *model.ProviderCredentials, envelopeID string) (*model.RawEnvelope, error) {
	args := m.Called(ctx, creds, envelopeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RawEnvelope), args.Error(1)
}

func (m *MockESignProvider) GetRecipients(ctx context.Context, creds *model.ProviderCredentials, envelopeID string) (*model.RawRecipients, error) {
	args := m.Called(ctx, creds, envelopeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RawRecipients), args.Error(1)
}

func (m *MockESignProvider) GetDocuments(ctx context.Context, creds *model.ProviderCredentials, envelopeID string) (*model.RawDocuments, error) {
	args := m.Called(ctx, creds, envelopeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RawDocuments), args.Error(1)
}

func (m *MockESignProvider) ListEnvelopes(ctx context.Context, creds *model.ProviderCredentials) (*model.EnvelopeList, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EnvelopeList), args.Error(1)
}

func (m *MockESignProvider) GetEnvelopeDetails(ctx context.Context, creds *model.ProviderCredentials, envelopeID string) (json.RawMessage, error) {
	args := m.Called(ctx, creds, envelopeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(json.RawMessage), args.Error(1)
}

func (m *MockESignProvider) DownloadDocuments(ctx context.Context, creds *model.ProviderCredentials, envelopeID string, kind ports.DownloadKind, documentID string) (*model.DownloadedFile, error) {
	args := m.Called(ctx, creds, envelopeID, kind, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DownloadedFile), args.Error(1)
}

type MockS3Storage struct{ mock.Mock }

func (m *MockS3Storage) PutObject(ctx context.Context, key, contentType string, content []byte) error {
	return m.Called(ctx, key, contentType, content).Error(0)
}

func (m *MockS3Storage) GeneratePresignedGetURL(ctx context.Context, key string, expire time.Duration) (string, error) {
	args := m.Called(ctx, key, expire)
	return args.String(0), args.Error(1)
}

func (m *MockS3Storage) DeleteObject(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

// memoryTokenCache : кэш токенов в памяти для HTTP-тестов
type memoryTokenCache struct {
	mu     sync.Mutex
	tokens map[string]*model.CachedToken
	ttls   map[string]time.Duration
}

func newMemoryTokenCache() *memoryTokenCache {
	return &memoryTokenCache{
		tokens: make(map[string]*model.CachedToken),
		ttls:   make(map[string]time.Duration),
	}
}

func (c *memoryTokenCache) GetToken(ctx context.Context, key string) (*model.CachedToken, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tokens[key], nil
}

func (c *memoryTokenCache) SetToken(ctx context.Context, key string, token *model.CachedToken, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokens[key] = token
	c.ttls[key] = ttl
	return nil
}

type fakeTx struct{}

func (f *fakeTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (f *fakeTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (f *fakeTx) QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error) {
	return nil, nil
}

func (f *fakeTx) QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row {
	return nil
}

func (f *fakeTx) DriverName() string {
	return "postgres"
}

func (f *fakeTx) Rebind(query string) string {
	return query
}

func (f *fakeTx) BindNamed(query string, arg interface{}) (string, []interface{}, error) {
	return query, nil, nil
}
