package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darrkasamna/catalog/internal/auth"
	"github.com/darrkasamna/catalog/internal/content"
	"github.com/darrkasamna/catalog/internal/db"
	"github.com/darrkasamna/catalog/internal/models"
	"github.com/darrkasamna/catalog/internal/remote"
	"github.com/darrkasamna/catalog/internal/store"
	"github.com/darrkasamna/catalog/pkg/config"
)

type testServer struct {
	engine    *gin.Engine
	authority *auth.Authority
}

func newTestServer(t *testing.T, limiter *IPRateLimiter) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := db.New(&config.DatabaseConfig{URL: "sqlite://:memory:"}, "error")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, database.Migrate(context.Background()))

	authority, err := auth.NewAuthority("test-secret", time.Hour)
	require.NoError(t, err)

	registry := prometheus.NewRegistry()
	router := NewRouter(database, store.New(database, content.DefaultMaxMediaBytes), RouterOptions{
		Authority:  authority,
		Limiter:    limiter,
		Registerer: registry,
		Gatherer:   registry,
	})
	engine := gin.New()
	router.SetupRoutes(engine)
	return &testServer{engine: engine, authority: authority}
}

func (s *testServer) token(t *testing.T, subject string, admin bool) string {
	t.Helper()
	token, err := s.authority.Issue(subject, admin)
	require.NoError(t, err)
	return token
}

func (s *testServer) call(t *testing.T, token, method string, params interface{}) (*httptest.ResponseRecorder, JSONRPCResponse) {
	t.Helper()
	raw, err := json.Marshal(params)
	require.NoError(t, err)
	body, err := json.Marshal(JSONRPCRequest{JSONRPC: "2.0", ID: 1, Method: method, Params: raw})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/rpc", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var resp JSONRPCResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestRouter_Health(t *testing.T) {
	s := newTestServer(t, nil)

	for _, path := range []string{"/health", "/.well-known/healthcheck.json"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		s.engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), "catalog-api")
	}
}

func TestRouter_AddAndReadStory(t *testing.T) {
	s := newTestServer(t, nil)
	admin := s.token(t, "editor", true)

	_, resp := s.call(t, admin, remote.MethodAddStory, models.NewStory{
		Title:    "The Well",
		Content:  "Nobody draws water after dark.",
		Category: models.CategoryIndianHorror,
	})
	require.Nil(t, resp.Error)

	_, resp = s.call(t, "", remote.MethodGetLatestStories, remote.LatestParams{Limit: 10})
	require.Nil(t, resp.Error)
	stories, ok := resp.Result.([]interface{})
	require.True(t, ok)
	require.Len(t, stories, 1)
	assert.Equal(t, "The Well", stories[0].(map[string]interface{})["title"])
}

func TestRouter_ErrorCodes(t *testing.T) {
	s := newTestServer(t, nil)
	reader := s.token(t, "reader", false)

	tests := []struct {
		name   string
		method string
		params interface{}
		code   int
	}{
		{"reader cannot add", remote.MethodAddStory, models.NewStory{Title: "t", Content: "c", Category: models.CategoryTrueStories}, ErrUnauthorized},
		{"missing story", remote.MethodGetStory, remote.StoryIDParams{ID: 404}, ErrNotFound},
		{"unknown method", "catalog.nope", nil, ErrMethodNotFound},
		{"bad params", remote.MethodGetStory, []int{1, 2}, ErrInvalidParams},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, resp := s.call(t, reader, tt.method, tt.params)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestRouter_UnauthorizedMessageSurvivesTransport(t *testing.T) {
	s := newTestServer(t, nil)

	_, resp := s.call(t, "", remote.MethodDeleteLogo, nil)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrUnauthorized, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "Unauthorized")
	assert.Nil(t, resp.Error.Data)
}

func TestRouter_RejectsInvalidToken(t *testing.T) {
	s := newTestServer(t, nil)

	w, _ := s.call(t, "not-a-jwt", remote.MethodIsCallerAdmin, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRouter_IsCallerAdmin(t *testing.T) {
	s := newTestServer(t, nil)

	_, resp := s.call(t, s.token(t, "editor", true), remote.MethodIsCallerAdmin, nil)
	require.Nil(t, resp.Error)
	assert.Equal(t, map[string]interface{}{"admin": true}, resp.Result)

	_, resp = s.call(t, "", remote.MethodIsCallerAdmin, nil)
	require.Nil(t, resp.Error)
	assert.Equal(t, map[string]interface{}{"admin": false}, resp.Result)
}

func TestRouter_RateLimited(t *testing.T) {
	s := newTestServer(t, NewIPRateLimiter(1, 1, time.Minute))

	w, _ := s.call(t, "", remote.MethodGetFollowerCount, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = s.call(t, "", remote.MethodGetFollowerCount, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRouter_InvalidVersion(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"jsonrpc":"1.0","id":1,"method":"catalog.get_logo"}`))
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	var resp JSONRPCResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrInvalidRequest, resp.Error.Code)
}

func TestRouter_Metrics(t *testing.T) {
	s := newTestServer(t, nil)
	s.call(t, "", remote.MethodGetFollowerCount, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `catalog_rpc_calls_total{code="0",method="catalog.get_follower_count"} 1`)
}
