package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/taskdeck/client/domain"
	"github.com/taskdeck/client/pkg/apiclient"
	"github.com/taskdeck/client/repository"
)

func newTestRepo(t *testing.T, handler http.HandlerFunc) repository.TaskRepository {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := apiclient.New(apiclient.Config{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
	}, nil, zap.NewNop())
	return NewTaskRepository(client)
}

func TestTaskRepository_ListOmitsEmptyFilters(t *testing.T) {
	var gotQuery url.Values
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`[]`))
	})

	_, err := repo.List(context.Background(), repository.TaskFilter{
		Status: "TODO",
		Search: "milk",
	})
	require.NoError(t, err)

	require.Equal(t, "TODO", gotQuery.Get("status"))
	require.Equal(t, "milk", gotQuery.Get("search"))
	_, hasAssigned := gotQuery["assignedTo"]
	_, hasCreated := gotQuery["createdBy"]
	require.False(t, hasAssigned, "unset filters must not appear as empty parameters")
	require.False(t, hasCreated)
}

func TestTaskRepository_ListDecodesNestedUsers(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id":"1","title":"Buy milk","description":"2l","status":"TODO",
			 "createdBy":{"id":"u1","email":"ada@example.com"},
			 "assignedTo":{"id":"u2","name":"Grace"}}
		]`))
	})

	tasks, err := repo.List(context.Background(), repository.TaskFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "u1", tasks[0].CreatorID())
	require.Equal(t, "u2", tasks[0].AssigneeID())
}

func TestTaskRepository_CreateSendsFlatIDs(t *testing.T) {
	var body map[string]interface{}
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"9","title":"Buy milk","status":"TODO"}`))
	})

	created, err := repo.Create(context.Background(), &domain.Task{
		Title:       "Buy milk",
		Description: "2l",
		Status:      domain.StatusTodo,
		CreatedBy:   &domain.User{ID: "u1"},
		AssignedTo:  &domain.User{ID: "u2"},
	})
	require.NoError(t, err)
	require.Equal(t, "9", created.ID)

	require.Equal(t, "u1", body["createdById"])
	require.Equal(t, "u2", body["assignedToId"])
	_, hasNested := body["createdBy"]
	require.False(t, hasNested, "payload must reference users by id, not nested objects")
}

func TestTaskRepository_UpdateSendsFullObject(t *testing.T) {
	var method, path string
	var body map[string]interface{}
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		w.Write([]byte(`{"id":"9","title":"Buy milk","status":"DONE"}`))
	})

	_, err := repo.Update(context.Background(), &domain.Task{
		ID:          "9",
		Title:       "Buy milk",
		Description: "2l",
		Status:      domain.StatusDone,
		CreatedBy:   &domain.User{ID: "u1"},
	})
	require.NoError(t, err)
	require.Equal(t, http.MethodPut, method)
	require.Equal(t, "/tasks/9", path)
	require.Equal(t, "DONE", body["status"])
	require.Equal(t, "Buy milk", body["title"])
}

func TestTaskRepository_UpdateRejectsMissingID(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an invalid payload")
	})

	_, err := repo.Update(context.Background(), &domain.Task{Title: "no id"})
	require.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))
}

func TestTaskRepository_DeleteAcceptsNoContent(t *testing.T) {
	var path string
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, repo.Delete(context.Background(), "9"))
	require.Equal(t, "/tasks/9", path)
}

func TestTaskRepository_GetByIDNotFound(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"task not found"}`))
	})

	_, err := repo.GetByID(context.Background(), "missing")
	require.True(t, domain.IsDomainError(err, domain.ErrCodeNotFound))
}
