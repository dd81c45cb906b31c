package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/localauth/internal/common"
	"github.com/dmitrijs2005/localauth/internal/services"
)

// getSimpleText and getPassword are swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Signup prompts for name, email and password and creates the account.
// On success the new user is logged in.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.Signup(ctx, services.SignupCredentials{
		Name:     name,
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		a.report(ctx, "signup", err)
		return err
	}

	a.current = user
	a.println(fmt.Sprintf("Welcome, %s!", user.Name))
	return nil
}

// Login prompts for email and password. A successful login replaces any
// previous session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	user, err := a.authService.Login(ctx, services.LoginCredentials{
		Email:    email,
		Password: string(password),
	})
	if err != nil {
		a.report(ctx, "login", err)
		return err
	}

	a.current = user
	a.println(fmt.Sprintf("Logged in as %s.", user.Name))
	return nil
}

// Logout ends the session. On failure the current user is kept.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		a.report(ctx, "logout", err)
		return err
	}
	a.current = nil
	a.println("Logged out.")
	return nil
}

// Whoami re-reads the stored session and prints its user.
func (a *App) Whoami(ctx context.Context) error {
	a.current = a.authService.Bootstrap(ctx)
	if a.current == nil {
		a.println("Not logged in.")
		return nil
	}
	a.println(fmt.Sprintf("%s <%s>, member since %s",
		a.current.Name, a.current.Email, a.current.CreatedAt.Format("2006-01-02")))
	return nil
}

// Stats prints the operation counters collected in this process.
func (a *App) Stats(_ context.Context) error {
	if a.stats == nil {
		a.println("Stats are not available.")
		return nil
	}
	samples, err := a.stats.Snapshot()
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		a.println("No operations recorded yet.")
		return nil
	}
	for _, s := range samples {
		a.println(s.String())
	}
	return nil
}
