package tasklist

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/taskdeck/client/domain"
	"github.com/taskdeck/client/repository"
)

// Controller owns the task collection shown to the user, the active
// filter set, and the loading flag. The collection is never patched
// locally: every successful mutation triggers a full reload so the
// client cannot diverge from server-computed fields.
type Controller struct {
	tasks  repository.TaskRepository
	logger *zap.Logger

	mu        sync.Mutex
	items     []domain.Task
	filter    repository.TaskFilter
	loading   bool
	reloadGen uint64
}

func New(tasks repository.TaskRepository, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		tasks:  tasks,
		logger: logger,
	}
}

// Reload fetches the listing with the current filter set and replaces
// the whole collection. Results of a reload overtaken by a newer one
// are discarded.
func (c *Controller) Reload(ctx context.Context) error {
	c.mu.Lock()
	c.reloadGen++
	gen := c.reloadGen
	filter := c.filter
	c.loading = true
	c.mu.Unlock()

	items, err := c.tasks.List(ctx, filter)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.reloadGen {
		// a newer reload owns the collection now
		return nil
	}
	c.loading = false
	if err != nil {
		return err
	}
	c.items = items
	return nil
}

// SetFilters replaces the filter set. Callers reload afterwards to
// make the view reflect it.
func (c *Controller) SetFilters(filter repository.TaskFilter) {
	c.mu.Lock()
	c.filter = filter
	c.mu.Unlock()
}

func (c *Controller) Filters() repository.TaskFilter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filter
}

// Tasks returns a copy of the collection from the most recently
// completed reload.
func (c *Controller) Tasks() []domain.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Task, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Create submits a draft and reloads on success. On failure the local
// state is left untouched and the error is propagated.
func (c *Controller) Create(ctx context.Context, task *domain.Task) error {
	if _, err := c.tasks.Create(ctx, task); err != nil {
		return err
	}
	return c.Reload(ctx)
}

// Update submits the full task object and reloads on success.
func (c *Controller) Update(ctx context.Context, task *domain.Task) error {
	if _, err := c.tasks.Update(ctx, task); err != nil {
		return err
	}
	return c.Reload(ctx)
}

// Remove deletes the task and reloads on success. Confirmation happens
// at the caller; by the time Remove runs the decision is made.
func (c *Controller) Remove(ctx context.Context, id string) error {
	if err := c.tasks.Delete(ctx, id); err != nil {
		return err
	}
	return c.Reload(ctx)
}

// ChangeStatus reads the task from local state, replaces only the
// status, and submits the complete object. Unknown ids are a no-op:
// no call is made and nothing changes.
func (c *Controller) ChangeStatus(ctx context.Context, id string, status domain.TaskStatus) error {
	c.mu.Lock()
	var found *domain.Task
	for i := range c.items {
		if c.items[i].ID == id {
			cp := c.items[i]
			found = &cp
			break
		}
	}
	c.mu.Unlock()

	if found == nil {
		c.logger.Debug("status change for unknown task ignored", zap.String("task_id", id))
		return nil
	}
	found.Status = status
	return c.Update(ctx, found)
}

// ApplyFilters returns the tasks matching every populated predicate.
// Empty predicates match everything; search is a case-insensitive
// substring match against title or description.
func ApplyFilters(tasks []domain.Task, filter repository.TaskFilter) []domain.Task {
	if filter.IsZero() {
		return tasks
	}
	search := strings.ToLower(filter.Search)

	var out []domain.Task
	for _, t := range tasks {
		if filter.Status != "" && string(t.Status) != filter.Status {
			continue
		}
		if filter.AssignedTo != "" && t.AssigneeID() != filter.AssignedTo {
			continue
		}
		if filter.CreatedBy != "" && t.CreatorID() != filter.CreatedBy {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(t.Title), search) &&
			!strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// CountByStatus returns how many tasks carry the given status.
func CountByStatus(tasks []domain.Task, status domain.TaskStatus) int {
	count := 0
	for _, t := range tasks {
		if t.Status == status {
			count++
		}
	}
	return count
}
