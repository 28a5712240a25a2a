package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/interviewdesk/internal/client/proctoring"
)

// Camera switches the primary camera surface on or off. The overlay mirror
// follows it.
func (a *App) Camera(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("camera on|off")
	}

	switch args[0] {
	case "on":
		stream, err := proctoring.NewMediaStream("camera")
		if err != nil {
			return err
		}
		a.camera.SetSrcObject(stream)
		a.overlay.SetCameraEnabled(true)
		a.log.Info(ctx, "camera on", "stream", stream.ID)
	case "off":
		a.camera.SetSrcObject(nil)
		a.overlay.SetCameraEnabled(false)
		a.log.Info(ctx, "camera off")
	default:
		return usage("camera on|off")
	}

	fmt.Fprintf(a.out, "Camera %s\n", args[0])
	return nil
}

// Warn records a proctoring warning.
func (a *App) Warn(ctx context.Context) error {
	a.proctor.AddWarning()
	fmt.Fprintf(a.out, "Warnings: %d\n", a.proctor.Warnings())
	return nil
}

// Violation records a proctoring violation of the given kind; any further
// words are kept as the detail.
func (a *App) Violation(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usage("violation <kind> [detail]")
	}
	a.proctor.RecordViolation(args[0], strings.Join(args[1:], " "))
	fmt.Fprintf(a.out, "Violations: %d\n", len(a.proctor.Violations()))
	return nil
}

// Overlay prints the proctoring panel, as HTML when asked.
func (a *App) Overlay(ctx context.Context, args []string) error {
	if len(args) > 0 && args[0] == "html" {
		return a.overlay.RenderHTML(a.out)
	}
	return a.overlay.RenderText(a.out)
}
