package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubCommands records which commands the loop dispatched.
type stubCommands struct {
	loggedIn bool
	admin    bool
	calls    []string
}

func (s *stubCommands) isLoggedIn() bool { return s.loggedIn }
func (s *stubCommands) isAdmin() bool    { return s.admin }

func (s *stubCommands) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubCommands) Login(ctx context.Context) error    { return s.record("login") }
func (s *stubCommands) Register(ctx context.Context) error { return s.record("register") }
func (s *stubCommands) Logout(ctx context.Context) error   { return s.record("logout") }
func (s *stubCommands) Teams(ctx context.Context) error    { return s.record("teams") }
func (s *stubCommands) Select(ctx context.Context, abbr string) error {
	return s.record("select " + abbr)
}
func (s *stubCommands) Board(ctx context.Context) error       { return s.record("board") }
func (s *stubCommands) Status(ctx context.Context) error      { return s.record("status") }
func (s *stubCommands) ActiveUsers(ctx context.Context) error { return s.record("active") }
func (s *stubCommands) SearchUser(ctx context.Context, username string) error {
	return s.record("search " + username)
}
func (s *stubCommands) Donate(ctx context.Context, username string) error {
	return s.record("donate " + username)
}

func runLines(t *testing.T, c *stubCommands, input string) []string {
	t.Helper()

	var lines []string
	old := printlnFn
	printlnFn = func(a ...any) (int, error) {
		parts := make([]string, 0, len(a))
		for _, v := range a {
			if s, ok := v.(string); ok {
				parts = append(parts, s)
			}
		}
		lines = append(lines, strings.Join(parts, " "))
		return 0, nil
	}
	defer func() { printlnFn = old }()

	runShell(context.Background(), c, func() string { return "test" }, bufio.NewScanner(strings.NewReader(input)))
	return lines
}

func TestRunShell_Dispatch(t *testing.T) {
	c := &stubCommands{}
	runLines(t, c, "teams\nselect BOS\nboard\nstatus\nexit\n")
	assert.Equal(t, []string{"teams", "select BOS", "board", "status"}, c.calls)
}

func TestRunShell_AdminCommands(t *testing.T) {
	c := &stubCommands{loggedIn: true, admin: true}
	runLines(t, c, "active\nsearch bob\ndonate bob\nexit\n")
	assert.Equal(t, []string{"active", "search bob", "donate bob"}, c.calls)
}

func TestRunShell_SelectNeedsArg(t *testing.T) {
	c := &stubCommands{}
	lines := runLines(t, c, "select\nexit\n")
	assert.Empty(t, c.calls)
	assert.Contains(t, lines, "Usage: select <abbr>")
}

func TestRunShell_UnknownCommand(t *testing.T) {
	c := &stubCommands{}
	lines := runLines(t, c, "frobnicate\nexit\n")
	assert.Empty(t, c.calls)
	assert.Contains(t, lines, "Unknown command: frobnicate")
}

func TestRunShell_ExitsOnEOF(t *testing.T) {
	c := &stubCommands{}
	runLines(t, c, "teams\n")
	assert.Equal(t, []string{"teams"}, c.calls)
}
