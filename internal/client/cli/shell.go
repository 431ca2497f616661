// Package cli is the interactive shell over the Courtside client: team grid,
// dual-slot comparison, account commands, and the admin panel.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/courtside/internal/client/app"
	"github.com/dmitrijs2005/courtside/internal/logging"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// commandSet defines the minimal command surface the shell loop needs.
// The real Shell satisfies this interface; tests can provide a stub.
type commandSet interface {
	isLoggedIn() bool
	isAdmin() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Teams(ctx context.Context) error
	Select(ctx context.Context, abbr string) error
	Board(ctx context.Context) error
	Status(ctx context.Context) error
	ActiveUsers(ctx context.Context) error
	SearchUser(ctx context.Context, username string) error
	Donate(ctx context.Context, username string) error
}

// Shell binds the interactive commands to a wired App.
type Shell struct {
	app    *app.App
	log    logging.Logger
	reader *bufio.Reader
}

func NewShell(a *app.App, log logging.Logger) *Shell {
	return &Shell{app: a, log: log, reader: bufio.NewReader(os.Stdin)}
}

// Run starts the shell loop on stdin. It returns when the user exits or
// stdin is closed.
func (s *Shell) Run(ctx context.Context) {
	printlnFn("Courtside (type 'help' for commands)")
	runShell(ctx, s, s.status, bufio.NewScanner(os.Stdin))
}

// runShell is a read-eval loop over the command set.
//
// It reads a line from the scanner, parses the first token as the command,
// and dispatches to methods on 'c'. Unknown commands are reported back to
// the user. The loop exits on scanner EOF or when the user types "exit" or
// "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the loop resilient and focused on I/O.
func runShell(ctx context.Context, c commandSet, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("courtside> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if c.isLoggedIn() {
				if c.isAdmin() {
					printlnFn("Available commands: (t)eams, select <abbr>, board, status, active, search <name>, donate <name>, logout, exit")
				} else {
					printlnFn("Available commands: (t)eams, select <abbr>, board, status, logout, exit")
				}
			} else {
				printlnFn("Available commands: (t)eams, select <abbr>, board, status, register, login, exit")
			}

		case "register":
			_ = c.Register(ctx)

		case "login":
			_ = c.Login(ctx)

		case "logout":
			_ = c.Logout(ctx)

		case "t", "teams":
			_ = c.Teams(ctx)

		case "select":
			if len(args) == 0 {
				printlnFn("Usage: select <abbr>")
				continue
			}
			_ = c.Select(ctx, args[0])

		case "board":
			_ = c.Board(ctx)

		case "status":
			_ = c.Status(ctx)

		case "active":
			_ = c.ActiveUsers(ctx)

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <username>")
				continue
			}
			_ = c.SearchUser(ctx, args[0])

		case "donate":
			if len(args) == 0 {
				printlnFn("Usage: donate <username>")
				continue
			}
			_ = c.Donate(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func (s *Shell) isLoggedIn() bool {
	return s.app.Session().Current().IsAuthenticated
}

func (s *Shell) isAdmin() bool {
	sess := s.app.Session().Current()
	return sess.IsAuthenticated && sess.User.IsAdmin()
}

// status renders the prompt segment: the signed-in email with a star for
// donors, or "guest".
func (s *Shell) status() string {
	sess := s.app.Session().Current()
	if sess.Loading {
		return "loading"
	}
	if !sess.IsAuthenticated {
		return "guest"
	}
	if sess.Donated() {
		return sess.User.Email + " *"
	}
	return sess.User.Email
}
