package rest

import (
	"context"
	"net/url"

	"github.com/taskdeck/client/api/transport"
	"github.com/taskdeck/client/domain"
	"github.com/taskdeck/client/pkg/apiclient"
	"github.com/taskdeck/client/repository"
)

type taskRepository struct {
	client *apiclient.Client
}

// NewTaskRepository returns a REST-backed implementation of
// TaskRepository bound to the /tasks endpoints.
func NewTaskRepository(client *apiclient.Client) repository.TaskRepository {
	return &taskRepository{client: client}
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	var task domain.Task
	if err := r.client.Get(ctx, "/tasks/"+url.PathEscape(id), nil, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	query := url.Values{}
	setIfPresent(query, "status", filter.Status)
	setIfPresent(query, "assignedTo", filter.AssignedTo)
	setIfPresent(query, "createdBy", filter.CreatedBy)
	setIfPresent(query, "search", filter.Search)

	var tasks []domain.Task
	if err := r.client.Get(ctx, "/tasks", query, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}
	var created domain.Task
	if err := r.client.Post(ctx, "/tasks", transport.PayloadFromTask(task), &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil || task.ID == "" {
		return nil, domain.ErrInvalidPayload
	}
	var updated domain.Task
	if err := r.client.Put(ctx, "/tasks/"+url.PathEscape(task.ID), transport.PayloadFromTask(task), &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	return r.client.Delete(ctx, "/tasks/"+url.PathEscape(id))
}

// setIfPresent adds the parameter only when the value is non-empty, so
// unset filters never reach the wire as empty strings.
func setIfPresent(query url.Values, key, value string) {
	if value != "" {
		query.Set(key, value)
	}
}
