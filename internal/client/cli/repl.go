package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Signup(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Rename(ctx context.Context) error
	Score(ctx context.Context, args []string) error
	Badge(ctx context.Context, args []string) error
	Camera(ctx context.Context, args []string) error
	Warn(ctx context.Context) error
	Violation(ctx context.Context, args []string) error
	Overlay(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the interviewdesk CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF, once ctx is done, or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help              — show available commands
//	  - camera on|off     — toggle the camera feed
//	  - warn              — record a proctoring warning
//	  - violation <kind>  — record a proctoring violation
//	  - overlay [html]    — print the proctoring panel
//	  - exit | quit       — leave the program
//
//	Not logged in:
//	  - signup            — create an account
//	  - login             — authenticate
//
//	Logged in:
//	  - whoami            — show the profile
//	  - rename            — change the display name
//	  - score <0-100>     — record a finished interview
//	  - badge <name>      — award a badge
//	  - logout            — log out
//
// Handler errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("interviewdesk %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil || ctx.Err() != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: whoami, rename, score, badge, camera, warn, violation, overlay, logout, exit")
			} else {
				printlnFn("Available commands: signup, login, camera, warn, violation, overlay, exit")
			}

		case "signup", "register":
			err = a.Signup(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "whoami":
			err = a.WhoAmI(ctx)

		case "rename":
			err = a.Rename(ctx)

		case "score":
			err = a.Score(ctx, args)

		case "badge":
			err = a.Badge(ctx, args)

		case "camera":
			err = a.Camera(ctx, args)

		case "warn":
			err = a.Warn(ctx)

		case "violation":
			err = a.Violation(ctx, args)

		case "overlay":
			err = a.Overlay(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
