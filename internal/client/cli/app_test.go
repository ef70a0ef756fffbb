package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/voteportal/internal/client/models"
	"github.com/dmitrijs2005/voteportal/internal/logging"
)

func TestSetMode_ChangesAndLogsOnce(t *testing.T) {
	var buf bytes.Buffer
	app := NewApp(&fakeAuth{}, logging.New(&buf, "info", logging.FormatText), strings.NewReader(""), &bytes.Buffer{})
	ctx := context.Background()

	app.setMode(ctx, ModeOnline)
	require.Equal(t, ModeOnline, app.Mode())
	require.Contains(t, buf.String(), "mode=online")

	buf.Reset()
	app.setMode(ctx, ModeOnline)
	require.Empty(t, buf.String(), "no log when mode doesn't change")

	app.setMode(ctx, ModeOffline)
	require.Equal(t, ModeOffline, app.Mode())
	require.Contains(t, buf.String(), "mode=offline")
}

func TestGetStatus(t *testing.T) {
	tests := []struct {
		name string
		f    *fakeAuth
		mode Mode
		want string
	}{
		{"empty", &fakeAuth{}, ModeUnknown, ""},
		{"mode only", &fakeAuth{}, ModeOffline, "(offline)"},
		{"opaque session", &fakeAuth{loggedIn: true}, ModeOnline, "(session online)"},
		{"identity", &fakeAuth{loggedIn: true, identity: &models.Identity{MatricNumber: "M100"}}, ModeOffline, "(M100 offline)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestApp(tt.f)
			a.mode = tt.mode
			assert.Equal(t, tt.want, a.getStatus())
		})
	}
}

func TestRun_PingsThenExits(t *testing.T) {
	var out bytes.Buffer
	f := &fakeAuth{pingErr: errors.New("down")}
	a := NewApp(f, logging.Nop(), strings.NewReader("status\nexit\n"), &out)

	done := make(chan struct{})
	go func() {
		a.Run(context.Background(), time.Hour)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
	}
	assert.Equal(t, ModeOffline, a.Mode())
	assert.Contains(t, out.String(), "Student Voting Portal")
	assert.Contains(t, out.String(), "API unreachable: down")
	assert.Contains(t, out.String(), "vote> (offline) > ")
	assert.Contains(t, out.String(), "Bye!")
}

func TestStartOnlineStatusWatcher_StopsOnCancel(t *testing.T) {
	f := &fakeAuth{}
	a, _ := newTestApp(f)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		a.StartOnlineStatusWatcher(ctx, 5*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return a.Mode() == ModeOnline }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}
