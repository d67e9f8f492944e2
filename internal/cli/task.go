package cli

import (
	"context"
	"flag"
	"io"
	"time"

	"github.com/taskdeck/client/domain"
	"github.com/taskdeck/client/internal/validation"
	"github.com/taskdeck/client/repository"
)

const dueDateLayout = "2006-01-02"

func (a *App) cmdList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	status := fs.String("status", "", "filter by status")
	assignee := fs.String("assignee", "", "filter by assignee id")
	creator := fs.String("creator", "", "filter by creator id")
	search := fs.String("search", "", "filter by title or description")
	if err := fs.Parse(args); err != nil {
		a.printf("usage: %s\n", a.commands["list"].usage)
		return nil
	}

	a.tasks.SetFilters(repository.TaskFilter{
		Status:     *status,
		AssignedTo: *assignee,
		CreatedBy:  *creator,
		Search:     *search,
	})

	opCtx, cancel := a.adapter.Operation(ctx)
	defer cancel()

	if err := a.tasks.Reload(opCtx); err != nil {
		return err
	}
	a.renderBoard()
	return nil
}

func (a *App) cmdAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	title := fs.String("title", "", "task title")
	desc := fs.String("desc", "", "task description")
	status := fs.String("status", string(domain.StatusTodo), "initial status")
	due := fs.String("due", "", "due date (YYYY-MM-DD)")
	assignee := fs.String("assignee", "", "assignee user id")
	if err := fs.Parse(args); err != nil {
		a.printf("usage: %s\n", a.commands["add"].usage)
		return nil
	}

	dueDate, err := parseDueDate(*due)
	if err != nil {
		return err
	}

	creatorID := a.session.Current().User.ID
	if err := validation.Check(validation.TaskForm{
		Title:        *title,
		Description:  *desc,
		Status:       *status,
		CreatedByID:  creatorID,
		AssignedToID: *assignee,
		DueDate:      dueDate,
	}); err != nil {
		return err
	}

	draft := &domain.Task{
		Title:       *title,
		Description: *desc,
		Status:      domain.TaskStatus(*status),
		DueDate:     dueDate,
		CreatedBy:   &domain.User{ID: creatorID},
	}
	if *assignee != "" {
		draft.AssignedTo = &domain.User{ID: *assignee}
	}

	opCtx, cancel := a.adapter.Operation(ctx)
	defer cancel()

	if err := a.tasks.Create(opCtx, draft); err != nil {
		return err
	}
	a.printf("task created\n")
	a.renderBoard()
	return nil
}

func (a *App) cmdEdit(ctx context.Context, args []string) error {
	if len(args) < 1 {
		a.printf("usage: %s\n", a.commands["edit"].usage)
		return nil
	}
	id := args[0]

	task := a.findLocal(id)
	if task == nil {
		a.printf("unknown task id %q — run 'list' first\n", id)
		return nil
	}

	fs := flag.NewFlagSet("edit", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	title := fs.String("title", task.Title, "task title")
	desc := fs.String("desc", task.Description, "task description")
	status := fs.String("status", string(task.Status), "task status")
	due := fs.String("due", "", "due date (YYYY-MM-DD)")
	assignee := fs.String("assignee", task.AssigneeID(), "assignee user id")
	if err := fs.Parse(args[1:]); err != nil {
		a.printf("usage: %s\n", a.commands["edit"].usage)
		return nil
	}

	dueDate := task.DueDate
	if *due != "" {
		parsed, err := parseDueDate(*due)
		if err != nil {
			return err
		}
		dueDate = parsed
	}

	if err := validation.Check(validation.TaskForm{
		Title:        *title,
		Description:  *desc,
		Status:       *status,
		CreatedByID:  task.CreatorID(),
		AssignedToID: *assignee,
		DueDate:      dueDate,
	}); err != nil {
		return err
	}

	task.Title = *title
	task.Description = *desc
	task.Status = domain.TaskStatus(*status)
	task.DueDate = dueDate
	if *assignee == "" {
		task.AssignedTo = nil
	} else {
		task.AssignedTo = &domain.User{ID: *assignee}
	}

	opCtx, cancel := a.adapter.Operation(ctx)
	defer cancel()

	if err := a.tasks.Update(opCtx, task); err != nil {
		return err
	}
	a.printf("task updated\n")
	a.renderBoard()
	return nil
}

func (a *App) cmdStatus(ctx context.Context, args []string) error {
	if len(args) != 2 {
		a.printf("usage: %s\n", a.commands["status"].usage)
		return nil
	}
	id := args[0]
	status := domain.TaskStatus(args[1])
	if !status.Valid() {
		a.printf("invalid status %q — use TODO, IN_PROGRESS or DONE\n", args[1])
		return nil
	}

	opCtx, cancel := a.adapter.Operation(ctx)
	defer cancel()

	if err := a.tasks.ChangeStatus(opCtx, id, status); err != nil {
		return err
	}
	a.renderBoard()
	return nil
}

func (a *App) cmdRemove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		a.printf("usage: %s\n", a.commands["rm"].usage)
		return nil
	}
	id := args[0]

	if !a.confirm.Confirm("delete task " + id + "?") {
		a.printf("aborted\n")
		return nil
	}

	opCtx, cancel := a.adapter.Operation(ctx)
	defer cancel()

	if err := a.tasks.Remove(opCtx, id); err != nil {
		return err
	}
	a.printf("task deleted\n")
	a.renderBoard()
	return nil
}

func (a *App) cmdUsers(ctx context.Context, _ []string) error {
	opCtx, cancel := a.adapter.Operation(ctx)
	defer cancel()

	users, err := a.directory.Users(opCtx)
	if err != nil {
		return err
	}
	a.renderUsers(users)
	return nil
}

func (a *App) findLocal(id string) *domain.Task {
	for _, t := range a.tasks.Tasks() {
		if t.ID == id {
			cp := t
			return &cp
		}
	}
	return nil
}

func parseDueDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dueDateLayout, value)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeInvalid, "due date must look like "+dueDateLayout, err)
	}
	return &parsed, nil
}
