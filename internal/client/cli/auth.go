package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/interviewdesk/internal/client/models"
	"github.com/dmitrijs2005/interviewdesk/internal/client/services"
	"github.com/dmitrijs2005/interviewdesk/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var errNotLoggedIn = fmt.Errorf("%w: not logged in", common.ErrorUnauthorized)

// Signup prompts for email, password and display name and registers a new
// account, which becomes the active session. The password byte slice is
// wiped before returning.
func (a *App) Signup(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	name, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}

	return a.report(services.FromContext(ctx).Signup(ctx, email, string(password), name))
}

// Login prompts for credentials and authenticates. The password byte slice
// is wiped before returning.
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

	svc := services.FromContext(ctx)
	if err := a.report(svc.Login(ctx, email, string(password))); err != nil {
		return err
	}
	if u, ok := svc.CurrentUser(); ok {
		fmt.Fprintf(a.out, "Welcome, %s\n", u.Name)
	}
	return nil
}

// Logout drops the active session. It is safe to call when logged out.
func (a *App) Logout(ctx context.Context) error {
	services.FromContext(ctx).Logout(ctx)
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// WhoAmI prints the active profile.
func (a *App) WhoAmI(ctx context.Context) error {
	u, ok := services.FromContext(ctx).CurrentUser()
	if !ok {
		return errNotLoggedIn
	}

	fmt.Fprintf(a.out, "Name:        %s\n", u.Name)
	fmt.Fprintf(a.out, "Email:       %s\n", u.Email)
	fmt.Fprintf(a.out, "Member since %s\n", u.CreatedAt.Format("2006-01-02"))
	fmt.Fprintf(a.out, "Interviews:  %d (avg %.1f)\n", u.TotalInterviews, u.AverageScore)
	fmt.Fprintf(a.out, "Streak:      %d days\n", u.StreakDays)
	fmt.Fprintf(a.out, "Badges:      %v\n", u.Badges)
	return nil
}

// report prints the outcome of an auth call. Expected failures (unknown
// account, bad password and so on) are shown to the user and swallowed;
// anything else is returned.
func (a *App) report(err error) error {
	res := models.NewResult(err)
	if res.Success {
		fmt.Fprintln(a.out, "Success!")
		return nil
	}

	var ae *services.AuthError
	if errors.As(err, &ae) && !errors.Is(err, common.ErrorInternal) {
		fmt.Fprintln(a.out, res.Error)
		return nil
	}
	return err
}
