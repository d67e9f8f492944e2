package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/taskdeck/client/domain"
	"github.com/taskdeck/client/pkg/apiclient"
	"github.com/taskdeck/client/repository"
)

func newAuthRepo(t *testing.T, handler http.HandlerFunc) repository.AuthRepository {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := apiclient.New(apiclient.Config{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
	}, nil, zap.NewNop())
	return NewAuthRepository(client)
}

func TestAuthRepository_LoginWithUserObject(t *testing.T) {
	var body map[string]string
	repo := newAuthRepo(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/login", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		w.Write([]byte(`{"token":"jwt-abc","user":{"id":"u1","email":"ada@example.com","name":"Ada"}}`))
	})

	res, err := repo.Login(context.Background(), "ada@example.com", "pw")
	require.NoError(t, err)
	require.Equal(t, "jwt-abc", res.Token)
	require.NotNil(t, res.User)
	require.Equal(t, "u1", res.User.ID)
	require.Equal(t, "ada@example.com", body["email"])
}

func TestAuthRepository_LoginTokenOnly(t *testing.T) {
	repo := newAuthRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"token":"jwt-abc"}`))
	})

	res, err := repo.Login(context.Background(), "ada@example.com", "pw")
	require.NoError(t, err)
	require.Equal(t, "jwt-abc", res.Token)
	require.Nil(t, res.User)
}

func TestAuthRepository_LoginRejected(t *testing.T) {
	repo := newAuthRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid credentials"}`))
	})

	_, err := repo.Login(context.Background(), "ada@example.com", "wrong")
	require.Error(t, err)
	require.Equal(t, "invalid credentials", domain.ErrorMessage(err, ""))
}

func TestAuthRepository_RegisterSendsProfile(t *testing.T) {
	var body map[string]string
	repo := newAuthRepo(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"token":"jwt-new"}`))
	})

	res, err := repo.Register(context.Background(), repository.RegisterProfile{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "supersecret",
	})
	require.NoError(t, err)
	require.Equal(t, "jwt-new", res.Token)
	require.Equal(t, "Ada", body["name"])
	require.Equal(t, "ada@example.com", body["email"])
}
