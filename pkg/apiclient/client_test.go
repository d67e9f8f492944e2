package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/taskdeck/client/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, onExpired ExpiredFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(Config{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
	}, onExpired, zap.NewNop())
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth, gotRequestID string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{}`))
	}, nil)

	client.SetToken("secret-token")
	require.NoError(t, client.Get(context.Background(), "/tasks", nil, nil))
	require.Equal(t, "Bearer secret-token", gotAuth)
	require.NotEmpty(t, gotRequestID)
}

func TestClient_OmitsAuthorizationWhenAnonymous(t *testing.T) {
	var hasHeader bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, hasHeader = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}, nil)

	require.NoError(t, client.Get(context.Background(), "/tasks", nil, nil))
	require.False(t, hasHeader, "anonymous requests must not carry an Authorization header at all")
}

func TestClient_ClearedTokenDropsHeader(t *testing.T) {
	var hasHeader bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, hasHeader = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}, nil)

	client.SetToken("secret-token")
	client.SetToken("")
	require.NoError(t, client.Get(context.Background(), "/tasks", nil, nil))
	require.False(t, hasHeader)
}

func TestClient_SessionExpiredCallback(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expired"}`))
	}, func() { calls++ })

	client.SetToken("stale")
	err := client.Get(context.Background(), "/tasks", nil, nil)

	require.Error(t, err)
	require.True(t, domain.IsDomainError(err, domain.ErrCodeUnauthorized))
	require.Equal(t, "token expired", domain.ErrorMessage(err, ""))
	require.Equal(t, 1, calls, "the expired callback must fire exactly once per failing response")
}

func TestClient_NoCallbackStillSurfacesUnauthorized(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}, nil)

	err := client.Post(context.Background(), "/auth/login", map[string]string{}, nil)
	require.True(t, domain.IsDomainError(err, domain.ErrCodeUnauthorized))
}

func TestClient_ServerMessageTakesPrecedence(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"database unavailable"}`))
	}, nil)

	err := client.Get(context.Background(), "/tasks", nil, nil)
	require.True(t, domain.IsDomainError(err, domain.ErrCodeTransport))
	require.Equal(t, "database unavailable", domain.ErrorMessage(err, ""))
}

func TestClient_GenericMessageWhenBodyUnreadable(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>gateway</html>"))
	}, nil)

	err := client.Get(context.Background(), "/tasks", nil, nil)
	require.True(t, domain.IsDomainError(err, domain.ErrCodeTransport))
	require.Equal(t, "server error", domain.ErrorMessage(err, ""))
}

func TestClient_NotFoundMapsToTypedError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"task not found"}`))
	}, nil)

	err := client.Get(context.Background(), "/tasks/42", nil, nil)
	require.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}

func TestClient_DecodesResponseBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"7","title":"Buy milk","status":"TODO"}`))
	}, nil)

	var task domain.Task
	require.NoError(t, client.Get(context.Background(), "/tasks/7", nil, &task))
	require.Equal(t, "7", task.ID)
	require.Equal(t, domain.StatusTodo, task.Status)
}
