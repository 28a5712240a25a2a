package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/dmitrijs2005/interviewdesk/internal/client/models"
	"github.com/dmitrijs2005/interviewdesk/internal/client/services"
	"github.com/dmitrijs2005/interviewdesk/internal/common"
)

func usage(format string) error {
	return fmt.Errorf("%w: usage: %s", common.ErrorInvalidInput, format)
}

// Rename prompts for a new display name.
func (a *App) Rename(ctx context.Context) error {
	svc := services.FromContext(ctx)
	if _, ok := svc.CurrentUser(); !ok {
		return errNotLoggedIn
	}

	name, err := getSimpleText(a.reader, "Enter new name", a.out)
	if err != nil {
		return err
	}
	if err := svc.UpdateProfile(ctx, models.ProfileUpdate{Name: &name}); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Name changed to %s\n", name)
	return nil
}

// Score records a finished interview with the given score and updates the
// running average.
func (a *App) Score(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("score <0-100>")
	}
	score, err := strconv.Atoi(args[0])
	if err != nil || score < 0 || score > 100 {
		return usage("score <0-100>")
	}

	svc := services.FromContext(ctx)
	u, ok := svc.CurrentUser()
	if !ok {
		return errNotLoggedIn
	}

	total := u.TotalInterviews + 1
	avg := (u.AverageScore*float64(u.TotalInterviews) + float64(score)) / float64(total)
	if err := svc.UpdateProfile(ctx, models.ProfileUpdate{TotalInterviews: &total, AverageScore: &avg}); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Recorded interview #%d, average %.1f\n", total, avg)
	return nil
}

// Badge awards a badge to the active profile. Awarding one twice is a no-op.
func (a *App) Badge(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("badge <name>")
	}

	svc := services.FromContext(ctx)
	u, ok := svc.CurrentUser()
	if !ok {
		return errNotLoggedIn
	}
	if slices.Contains(u.Badges, args[0]) {
		fmt.Fprintf(a.out, "Badge %q already awarded\n", args[0])
		return nil
	}

	badges := append(u.Badges, args[0])
	if err := svc.UpdateProfile(ctx, models.ProfileUpdate{Badges: badges}); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Badge %q awarded\n", args[0])
	return nil
}
