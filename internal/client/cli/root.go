package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/interviewdesk/internal/client/proctoring"
	"github.com/dmitrijs2005/interviewdesk/internal/client/services"
)

func (a *App) getStatus(ctx context.Context) string {
	u, ok := services.FromContext(ctx).CurrentUser()
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s)", u.Email)
}

// Root mounts the overlay and runs the REPL on ctx, which must carry the
// auth service.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to interviewdesk (type 'help' for commands)")

	if u, ok := services.FromContext(ctx).CurrentUser(); ok {
		fmt.Fprintf(a.out, "Welcome back, %s\n", u.Name)
	}

	a.overlay.SetOnReady(func() { a.log.Debug(ctx, "proctoring overlay ready") })
	remove := a.overlay.OnRender(func(v proctoring.View) {
		a.log.Debug(ctx, "proctoring state changed", "warnings", v.Warnings, "violations", v.Violations)
	})
	a.overlay.Mount()
	defer func() {
		remove()
		a.overlay.Unmount()
	}()

	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader)
}
