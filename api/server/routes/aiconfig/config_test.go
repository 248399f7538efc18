package aiconfig

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanZai233/LPH/api/types"
	"github.com/DanZai233/LPH/internal/store"
)

func testRouter(t *testing.T) (*gin.Engine, *store.ConfigStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	configs := store.NewConfigStore(t.TempDir())
	router := gin.New()
	AddRoutes(router.Group("/api"), configs)
	return router, configs
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMaskKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"sk-test-abcd1234", "***1234"},
		{"abcde", "***bcde"},
		{"abcd", "***"},
		{"x", "***"},
		{"", "***"},
	}
	for _, tt := range tests {
		if got := maskKey(tt.key); got != tt.want {
			t.Errorf("maskKey(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestCreateMasksKey(t *testing.T) {
	router, configs := testRouter(t)

	w := doJSON(t, router, "POST", "/api/config/ai", gin.H{
		"provider": "openai",
		"name":     "work",
		"apiKey":   "sk-test-abcd1234",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var got types.AIConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "***1234", got.APIKey)
	assert.True(t, got.Enabled, "enabled should default to true")
	assert.NotEmpty(t, got.ID)

	// the stored record keeps the real key
	stored, err := configs.GetByID(got.ID)
	require.NoError(t, err)
	assert.Equal(t, "sk-test-abcd1234", stored.APIKey)
}

func TestCreateValidation(t *testing.T) {
	router, _ := testRouter(t)

	tests := []struct {
		name     string
		body     gin.H
		wantCode int
		wantErr  string
	}{
		{
			name:     "missing api key",
			body:     gin.H{"provider": "openai", "name": "work"},
			wantCode: http.StatusBadRequest,
			wantErr:  "Provider, name, and API key are required",
		},
		{
			name:     "unknown provider",
			body:     gin.H{"provider": "grok", "name": "work", "apiKey": "k"},
			wantCode: http.StatusBadRequest,
			wantErr:  "Invalid provider",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, router, "POST", "/api/config/ai", tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
			var e types.GenericError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
			assert.Equal(t, tt.wantErr, e.Error)
		})
	}
}

func TestUpdateMaskedKeyKeepsStored(t *testing.T) {
	router, configs := testRouter(t)

	created, err := configs.Create(types.AIConfig{
		Provider: types.OpenAI,
		Name:     "work",
		APIKey:   "sk-test-abcd1234",
		Enabled:  true,
	})
	require.NoError(t, err)

	// the frontend echoes the masked placeholder back on save
	w := doJSON(t, router, "PUT", "/api/config/ai/"+created.ID, gin.H{
		"name":   "renamed",
		"apiKey": "***1234",
	})
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := configs.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "sk-test-abcd1234", stored.APIKey, "masked key must not overwrite the secret")
	assert.Equal(t, "renamed", stored.Name)

	// a real replacement key is stored
	w = doJSON(t, router, "PUT", "/api/config/ai/"+created.ID, gin.H{"apiKey": "sk-new-key-9999"})
	require.Equal(t, http.StatusOK, w.Code)
	stored, err = configs.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "sk-new-key-9999", stored.APIKey)
}

func TestListNeverLeaksKeys(t *testing.T) {
	router, configs := testRouter(t)

	_, err := configs.Create(types.AIConfig{Provider: types.OpenAI, Name: "a", APIKey: "sk-secret-1111", Enabled: true})
	require.NoError(t, err)
	_, err = configs.Create(types.AIConfig{Provider: types.Gemini, Name: "b", APIKey: "zz", Enabled: true})
	require.NoError(t, err)

	w := doJSON(t, router, "GET", "/api/config/ai", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "sk-secret-1111")

	var got []types.AIConfig
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 2)
	for _, cfg := range got {
		assert.Contains(t, cfg.APIKey, "***")
	}
}

func TestActivate(t *testing.T) {
	router, configs := testRouter(t)

	first, err := configs.Create(types.AIConfig{Provider: types.OpenAI, Name: "a", APIKey: "k1", IsActive: true, Enabled: true})
	require.NoError(t, err)
	second, err := configs.Create(types.AIConfig{Provider: types.Gemini, Name: "b", APIKey: "k2", Enabled: true})
	require.NoError(t, err)

	w := doJSON(t, router, "POST", "/api/config/ai/"+second.ID+"/activate", nil)
	require.Equal(t, http.StatusOK, w.Code)

	active, err := configs.GetActive()
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)

	prev, err := configs.GetByID(first.ID)
	require.NoError(t, err)
	assert.False(t, prev.IsActive)
}

func TestActivateDisabledOrMissing(t *testing.T) {
	router, configs := testRouter(t)

	disabled, err := configs.Create(types.AIConfig{Provider: types.OpenAI, Name: "off", APIKey: "k", Enabled: false})
	require.NoError(t, err)

	for _, id := range []string{disabled.ID, "ai-config-0-deadbeef"} {
		w := doJSON(t, router, "POST", "/api/config/ai/"+id+"/activate", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		var e types.GenericError
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
		assert.Equal(t, "Configuration not found or disabled", e.Error)
	}
}

func TestDelete(t *testing.T) {
	router, configs := testRouter(t)

	created, err := configs.Create(types.AIConfig{Provider: types.OpenAI, Name: "a", APIKey: "k", Enabled: true})
	require.NoError(t, err)

	w := doJSON(t, router, "DELETE", "/api/config/ai/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "DELETE", "/api/config/ai/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProviders(t *testing.T) {
	router, _ := testRouter(t)

	w := doJSON(t, router, "GET", "/api/config/ai-providers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got struct {
		Providers []types.ProviderInfo `json:"providers"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got.Providers, len(types.AIProviders))

	byValue := map[types.AIProvider]types.ProviderInfo{}
	for _, p := range got.Providers {
		byValue[p.Value] = p
	}
	assert.Equal(t, "gpt-3.5-turbo", byValue[types.OpenAI].DefaultModel)
	assert.Equal(t, "https://api.anthropic.com/v1", byValue[types.Anthropic].DefaultBaseURL)
}
