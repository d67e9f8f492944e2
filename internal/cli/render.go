package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/taskdeck/client/domain"
	"github.com/taskdeck/client/usecase/tasklist"
)

// renderBoard prints the filtered task view plus per-status counts
// derived from the full collection.
func (a *App) renderBoard() {
	all := a.tasks.Tasks()
	filter := a.tasks.Filters()
	visible := tasklist.ApplyFilters(all, filter)

	a.printf("total %d | TODO %d | IN_PROGRESS %d | DONE %d\n",
		len(all),
		tasklist.CountByStatus(all, domain.StatusTodo),
		tasklist.CountByStatus(all, domain.StatusInProgress),
		tasklist.CountByStatus(all, domain.StatusDone),
	)

	if len(visible) == 0 {
		a.printf("no tasks match\n")
		return
	}

	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTATUS\tTITLE\tDUE\tASSIGNEE")
	for _, t := range visible {
		due := "-"
		if t.DueDate != nil {
			due = t.DueDate.Format(dueDateLayout)
		}
		assignee := "-"
		if t.AssignedTo != nil {
			assignee = t.AssignedTo.DisplayName()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", t.ID, t.Status, t.Title, due, assignee)
	}
	w.Flush()
}

func (a *App) renderUsers(users []domain.User) {
	if len(users) == 0 {
		a.printf("no users\n")
		return
	}
	w := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL")
	for _, u := range users {
		fmt.Fprintf(w, "%s\t%s\t%s\n", u.ID, u.DisplayName(), u.Email)
	}
	w.Flush()
}
