package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/taskdeck/client/pkg/httpcontext"
	"github.com/taskdeck/client/usecase/directory"
	"github.com/taskdeck/client/usecase/session"
	"github.com/taskdeck/client/usecase/tasklist"
)

// errQuit stops the command loop without reporting an error.
var errQuit = errors.New("quit")

// Handler executes a single user command.
type Handler func(ctx context.Context, args []string) error

type command struct {
	usage  string
	help   string
	authed bool
	run    Handler
}

// Deps carries everything the command loop needs. Confirm may be nil,
// in which case destructive commands prompt on the input stream.
type Deps struct {
	Session   *session.Manager
	Tasks     *tasklist.Controller
	Directory *directory.Service
	Adapter   *httpcontext.Adapter
	Confirm   Confirmer
	Logger    *zap.Logger
	In        io.Reader
	Out       io.Writer
}

// App is the interactive command loop. It consumes the task view state
// (tasks, loading flag, filters) and turns typed commands into use
// case calls.
type App struct {
	session   *session.Manager
	tasks     *tasklist.Controller
	directory *directory.Service
	adapter   *httpcontext.Adapter
	confirm   Confirmer
	logger    *zap.Logger
	out       io.Writer
	in        io.Reader
	lines     chan string

	commands map[string]command
}

func New(deps Deps) *App {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{
		session:   deps.Session,
		tasks:     deps.Tasks,
		directory: deps.Directory,
		adapter:   deps.Adapter,
		confirm:   deps.Confirm,
		logger:    logger,
		out:       deps.Out,
		in:        deps.In,
		lines:     make(chan string),
	}
	if a.confirm == nil {
		a.confirm = &loopConfirmer{app: a}
	}
	a.register()
	return a
}

func (a *App) register() {
	a.commands = map[string]command{
		"help": {
			usage: "help",
			help:  "show available commands",
			run:   a.cmdHelp,
		},
		"quit": {
			usage: "quit",
			help:  "leave taskdeck",
			run:   func(context.Context, []string) error { return errQuit },
		},
		"login": {
			usage: "login <email> <password>",
			help:  "sign in and open the task board",
			run:   a.cmdLogin,
		},
		"register": {
			usage: "register <name> <email> <password>",
			help:  "create an account and sign in",
			run:   a.cmdRegister,
		},
		"logout": {
			usage: "logout",
			help:  "discard the current session",
			run:   a.cmdLogout,
		},
		"whoami": {
			usage:  "whoami",
			help:   "show the signed-in identity",
			authed: true,
			run:    a.cmdWhoami,
		},
		"list": {
			usage:  "list [-status S] [-assignee ID] [-creator ID] [-search TEXT]",
			help:   "reload and show the task board with the given filters",
			authed: true,
			run:    a.cmdList,
		},
		"add": {
			usage:  "add -title T -desc D [-status S] [-due YYYY-MM-DD] [-assignee ID]",
			help:   "create a task",
			authed: true,
			run:    a.cmdAdd,
		},
		"edit": {
			usage:  "edit <id> [-title T] [-desc D] [-status S] [-due YYYY-MM-DD] [-assignee ID]",
			help:   "update a task",
			authed: true,
			run:    a.cmdEdit,
		},
		"status": {
			usage:  "status <id> <TODO|IN_PROGRESS|DONE>",
			help:   "change only the status of a task",
			authed: true,
			run:    a.cmdStatus,
		},
		"rm": {
			usage:  "rm <id>",
			help:   "delete a task (asks for confirmation)",
			authed: true,
			run:    a.cmdRemove,
		},
		"users": {
			usage:  "users",
			help:   "list users for assignment",
			authed: true,
			run:    a.cmdUsers,
		},
	}
}

// Run drives the interactive loop until quit, EOF, or cancellation.
func (a *App) Run(ctx context.Context) error {
	go a.readLines()

	a.printf("taskdeck — type 'help' for commands\n")
	for {
		a.printPrompt()
		select {
		case <-ctx.Done():
			a.printf("\nbye\n")
			return nil
		case line, ok := <-a.lines:
			if !ok {
				return nil
			}
			if err := a.dispatch(ctx, line); err != nil {
				if errors.Is(err, errQuit) {
					a.printf("bye\n")
					return nil
				}
				a.renderErr(err)
			}
		}
	}
}

func (a *App) readLines() {
	scanner := bufio.NewScanner(a.in)
	for scanner.Scan() {
		a.lines <- scanner.Text()
	}
	close(a.lines)
}

func (a *App) dispatch(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name := strings.ToLower(fields[0])
	cmd, ok := a.commands[name]
	if !ok {
		a.printf("unknown command %q — type 'help'\n", name)
		return nil
	}
	if cmd.authed && !a.session.IsAuthenticated() {
		a.printf("sign in first: login <email> <password>\n")
		return nil
	}
	return cmd.run(ctx, fields[1:])
}

func (a *App) cmdHelp(_ context.Context, _ []string) error {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cmd := a.commands[name]
		a.printf("  %-70s %s\n", cmd.usage, cmd.help)
	}
	return nil
}

// SessionExpired is wired into the API client: a 401 on any
// authenticated call clears the session and returns the prompt to the
// signed-out mode. The failing call still surfaces its own error.
func (a *App) SessionExpired() {
	a.session.Logout()
	a.printf("session expired — please sign in again\n")
}

func (a *App) printPrompt() {
	if a.session != nil && a.session.IsAuthenticated() {
		a.printf("taskdeck> ")
		return
	}
	a.printf("taskdeck (signed out)> ")
}
