package service_test

import (
	"context"
	"encoding/json"
	"envelope-orchestrator/config"
	"envelope-orchestrator/internal/model"
	"envelope-orchestrator/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

type formFillServer struct {
	tokenCalls    atomic.Int32
	locationCalls atomic.Int32
	failForm      string
}

func (s *formFillServer) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/rest_authentication/token", func(w http.ResponseWriter, r *http.Request) {
		s.tokenCalls.Add(1)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "password", r.PostForm.Get("grant_type"))
		assert.Equal(t, "master", r.PostForm.Get("username"))
		_ = json.NewEncoder(w).Encode(map[string]any{"access_token": "ff-token", "expires_in": 3600})
	})
	mux.HandleFunc("/rest/QuikFormsEngine/qfe/execute/pdf", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer ff-token", r.Header.Get("Authorization"))
		var body struct {
			HostFormOnQuik bool                   `json:"HostFormOnQuik"`
			FormFields     []model.FormFieldValue `json:"FormFields"`
			QuikFormID     string                 `json:"QuikFormID"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.True(t, body.HostFormOnQuik)
		assert.NotNil(t, body.FormFields)

		if body.QuikFormID == s.failForm {
			_ = json.NewEncoder(w).Encode(map[string]any{"Errors": []string{"form not found"}})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"Errors":     nil,
			"ResultData": map[string]any{"PDF": "cGRm-" + body.QuikFormID, "FormShortName": "F" + body.QuikFormID},
		})
	})
	mux.HandleFunc("/rest/QFEM/v2000/fields/esign", func(w http.ResponseWriter, r *http.Request) {
		s.locationCalls.Add(1)
		formID := r.URL.Query().Get("formIds")
		if formID == s.failForm {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// движок отдаёт FormId числом
		_, _ = w.Write([]byte(`{"Errors":[],"ResultData":[{"FormId":` + formID + `,"SignFields":[{"DocusignXCoord":10.5,"DocusignYCoord":20.4,"Page":1,"FieldRole":"1own"}],"SignDateFields":[],"SignInitialsFields":[]}]}`))
	})
	return mux
}

func newTestFormFillService(t *testing.T, fake *formFillServer, static map[string]config.StaticFieldLocations) *service.FormFillService {
	server := httptest.NewServer(fake.handler(t))
	t.Cleanup(server.Close)

	cfg := &config.FormFillConfig{
		BaseURL:              server.URL,
		Username:             "master",
		Password:             "secret",
		StaticFieldLocations: static,
	}
	return service.NewFormFillService(cfg, server.Client(), newMemoryTokenCache(), time.Minute)
}

func TestFormFillService_GenerateDocuments(t *testing.T) {
	fake := &formFillServer{}
	svc := newTestFormFillService(t, fake, nil)

	documents, err := svc.GenerateDocuments(context.Background(), []model.GenerateFormRequest{
		{FormID: "71259", DocumentID: "1"},
		{FormID: "80001", DocumentID: "2", Fields: []model.FormFieldValue{{FieldName: "a", FieldValue: "b"}}},
	})

	require.NoError(t, err)
	require.Len(t, documents, 2)
	assert.Equal(t, model.GeneratedDocument{DocumentID: "1", PDFBase64: "cGRm-71259", FileName: "F71259-1"}, documents[0])
	assert.Equal(t, model.GeneratedDocument{DocumentID: "2", PDFBase64: "cGRm-80001", FileName: "F80001-2"}, documents[1])
	assert.Equal(t, int32(1), fake.tokenCalls.Load())
}

func TestFormFillService_GenerateDocuments_AnyFailureIsFatal(t *testing.T) {
	fake := &formFillServer{failForm: "80001"}
	svc := newTestFormFillService(t, fake, nil)

	documents, err := svc.GenerateDocuments(context.Background(), []model.GenerateFormRequest{
		{FormID: "71259", DocumentID: "1"},
		{FormID: "80001", DocumentID: "2"},
	})

	assert.Nil(t, documents)
	assert.ErrorIs(t, err, model.ErrUpstreamGeneration)
}

func TestFormFillService_TokenIsCached(t *testing.T) {
	fake := &formFillServer{}
	svc := newTestFormFillService(t, fake, nil)
	ctx := context.Background()

	_, err := svc.GenerateDocuments(ctx, []model.GenerateFormRequest{{FormID: "71259", DocumentID: "1"}})
	require.NoError(t, err)
	_, err = svc.FetchFieldLocations(ctx, []string{"71259"})
	require.NoError(t, err)

	assert.Equal(t, int32(1), fake.tokenCalls.Load())
}

func TestFormFillService_FetchFieldLocations(t *testing.T) {
	static := map[string]config.StaticFieldLocations{
		"99999": {
			SignFields: []config.StaticField{{X: 1, Y: 2, Page: 3, Role: "1own"}},
		},
	}
	fake := &formFillServer{failForm: "80001"}
	svc := newTestFormFillService(t, fake, static)

	locations, err := svc.FetchFieldLocations(context.Background(), []string{"71259", "80001", "99999"})

	require.NoError(t, err)
	require.Contains(t, locations, "71259")
	assert.Equal(t, model.FlexString("71259"), locations["71259"].FormID)
	assert.Equal(t, []model.FieldLocation{{XCoord: 10.5, YCoord: 20.4, Page: 1, Role: "1own"}}, locations["71259"].SignFields)

	assert.NotContains(t, locations, "80001")

	require.Contains(t, locations, "99999")
	assert.Equal(t, []model.FieldLocation{{XCoord: 1, YCoord: 2, Page: 3, Role: "1own"}}, locations["99999"].SignFields)
	assert.Empty(t, locations["99999"].SignDateFields)

	assert.Equal(t, int32(2), fake.locationCalls.Load())
}

func TestFormFillService_StaticOnlySkipsEngine(t *testing.T) {
	static := map[string]config.StaticFieldLocations{"99999": {}}
	fake := &formFillServer{}
	svc := newTestFormFillService(t, fake, static)

	locations, err := svc.FetchFieldLocations(context.Background(), []string{"99999"})

	require.NoError(t, err)
	assert.Contains(t, locations, "99999")
	assert.Equal(t, int32(0), fake.tokenCalls.Load())
	assert.Equal(t, int32(0), fake.locationCalls.Load())
}
