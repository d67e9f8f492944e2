package cli

import (
	"context"

	"github.com/taskdeck/client/internal/validation"
	"github.com/taskdeck/client/repository"
)

func (a *App) cmdLogin(ctx context.Context, args []string) error {
	if len(args) != 2 {
		a.printf("usage: %s\n", a.commands["login"].usage)
		return nil
	}
	email, password := args[0], args[1]

	if err := validation.Check(validation.Credentials{
		Email:    email,
		Password: password,
	}); err != nil {
		return err
	}

	opCtx, cancel := a.adapter.Operation(ctx)
	defer cancel()

	res := a.session.Login(opCtx, email, password)
	if !res.Success {
		a.printf("sign-in failed: %s\n", res.Message)
		return nil
	}

	a.printf("signed in as %s\n", a.session.Current().User.DisplayName())
	return a.showBoard(ctx)
}

func (a *App) cmdRegister(ctx context.Context, args []string) error {
	if len(args) != 3 {
		a.printf("usage: %s\n", a.commands["register"].usage)
		return nil
	}
	profile := repository.RegisterProfile{
		Name:     args[0],
		Email:    args[1],
		Password: args[2],
	}

	if err := validation.Check(validation.Profile{
		Name:     profile.Name,
		Email:    profile.Email,
		Password: profile.Password,
	}); err != nil {
		return err
	}

	opCtx, cancel := a.adapter.Operation(ctx)
	defer cancel()

	res := a.session.Register(opCtx, profile)
	if !res.Success {
		a.printf("registration failed: %s\n", res.Message)
		return nil
	}

	a.printf("account created — signed in as %s\n", a.session.Current().User.DisplayName())
	return a.showBoard(ctx)
}

func (a *App) cmdLogout(_ context.Context, _ []string) error {
	a.session.Logout()
	a.printf("signed out\n")
	return nil
}

func (a *App) cmdWhoami(ctx context.Context, _ []string) error {
	local := a.session.Current().User

	opCtx, cancel := a.adapter.Operation(ctx)
	defer cancel()

	// prefer the server's record; the local identity may be synthesized
	if user, err := a.directory.Current(opCtx); err == nil && user != nil {
		a.printf("%s <%s> (id %s)\n", user.DisplayName(), user.Email, user.ID)
		return nil
	}

	a.printf("%s <%s> (id %s)\n", local.DisplayName(), local.Email, local.ID)
	return nil
}

// showBoard is the post-auth navigation target: reset filters, reload,
// render.
func (a *App) showBoard(ctx context.Context) error {
	a.tasks.SetFilters(repository.TaskFilter{})

	opCtx, cancel := a.adapter.Operation(ctx)
	defer cancel()

	if err := a.tasks.Reload(opCtx); err != nil {
		return err
	}
	a.renderBoard()
	return nil
}
