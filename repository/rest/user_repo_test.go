package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/taskdeck/client/pkg/apiclient"
)

func TestUserRepository_ListAndCurrent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/users":
			w.Write([]byte(`[{"id":"u1","name":"Ada"},{"id":"u2","name":"Grace"}]`))
		case "/users/me":
			w.Write([]byte(`{"id":"u1","email":"ada@example.com","name":"Ada"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)

	client := apiclient.New(apiclient.Config{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
	}, nil, zap.NewNop())
	repo := NewUserRepository(client)

	users, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "Grace", users[1].Name)

	me, err := repo.Current(context.Background())
	require.NoError(t, err)
	require.Equal(t, "u1", me.ID)
}
