package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) isLoggedIn(context.Context) bool { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Whoami(context.Context) error { f.calls = append(f.calls, "whoami"); return nil }
func (f *fakeExec) Status(context.Context) error { f.calls = append(f.calls, "status"); return nil }
func (f *fakeExec) Reset(context.Context) error  { f.calls = append(f.calls, "reset"); return nil }

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	input := strings.NewReader(strings.Join([]string{
		"help",
		"register",
		"login",
		"help",
		"",
		"whoami",
		"status",
		"reset",
		"logout",
		"foobar",
		"exit",
		"login",
	}, "\n"))

	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewReader(input), &out)

	assert.Equal(t, []string{"register", "login", "whoami", "status", "reset", "logout"}, exec.calls)
	got := out.String()
	assert.Contains(t, got, "vote> status > \n")
	assert.Contains(t, got, "Available commands: register, login, status, reset, exit\n")
	assert.Contains(t, got, "Available commands: whoami, status, logout, reset, exit\n")
	assert.Contains(t, got, "Unknown command: foobar\n")
	assert.True(t, strings.HasSuffix(got, "Bye!\n"))
}

func TestRunREPL_EOFWithoutNewline(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("status")), &out)

	assert.Equal(t, []string{"status"}, exec.calls)
}

func TestRunREPL_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(ctx, exec, func() string { return "" }, bufio.NewReader(strings.NewReader("login\n")), &out)

	assert.Empty(t, exec.calls)
	assert.Empty(t, out.String())
}
