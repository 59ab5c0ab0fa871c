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
	isLoggedIn() bool
	isAdmin() bool
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Docs(ctx context.Context) error
	ShowDoc(ctx context.Context) error
	Upload(ctx context.Context) error
	RemoveDoc(ctx context.Context) error
	Ask(ctx context.Context) error
	Faq(ctx context.Context) error
	Users(ctx context.Context) error
	AddUser(ctx context.Context) error
	EditUser(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the docboard CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands that require a session are rejected while logged out; the admin
// commands additionally pass through the App's authorization checkpoint.
// Any errors returned by command handlers are ignored here; handlers report
// their own outcomes through the notifier. This keeps the REPL loop
// resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("db> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			switch {
			case a.isAdmin():
				printlnFn("Available commands: docs, show, upload, rm, ask, faq, users, adduser, edituser, whoami, logout, exit")
			case a.isLoggedIn():
				printlnFn("Available commands: docs, show, upload, rm, ask, faq, whoami, logout, exit")
			default:
				printlnFn("Available commands: login, signup, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if !a.isLoggedIn() {
				printlnFn("Please log in first")
				continue
			}

			switch cmd {
			case "docs":
				_ = a.Docs(ctx)

			case "show":
				_ = a.ShowDoc(ctx)

			case "upload":
				_ = a.Upload(ctx)

			case "rm":
				_ = a.RemoveDoc(ctx)

			case "ask":
				_ = a.Ask(ctx)

			case "faq":
				_ = a.Faq(ctx)

			case "users":
				_ = a.Users(ctx)

			case "adduser":
				_ = a.AddUser(ctx)

			case "edituser":
				_ = a.EditUser(ctx)

			case "whoami":
				_ = a.WhoAmI(ctx)

			case "logout":
				_ = a.Logout(ctx)

			default:
				printlnFn("Unknown command:", cmd)
			}
		}
	}
}
