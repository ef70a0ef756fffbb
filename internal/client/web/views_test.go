package web

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/voteportal/internal/client/models"
)

func renderPage(t *testing.T, page string, d pageData) string {
	t.Helper()
	content, ok := pages[page]
	require.True(t, ok, page)
	var b bytes.Buffer
	require.NoError(t, layout(d, content(d)).Render(context.Background(), &b))
	return b.String()
}

func TestPages_RenderInLayout(t *testing.T) {
	for _, name := range []string{pageRegister, pageLogin, pageDashboard, pageVote, pageProfile, pageError} {
		t.Run(name, func(t *testing.T) {
			got := renderPage(t, name, pageData{Title: "T"})
			assert.True(t, strings.HasPrefix(got, "<!DOCTYPE html>"))
			assert.Contains(t, got, "<title>T · Student Voting Portal</title>")
			assert.True(t, strings.HasSuffix(got, "</html>\n"))
			assert.NotContains(t, got, "http-equiv")
		})
	}
}

func TestLayout_EscapesUserText(t *testing.T) {
	got := renderPage(t, pageLogin, pageData{
		Error: `<script>alert(1)</script>`,
		Form:  formValues{MatricNo: `"><b>x`},
	})
	assert.NotContains(t, got, "<script>alert(1)</script>")
	assert.Contains(t, got, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.Contains(t, got, `value="&#34;&gt;&lt;b&gt;x"`)
}

func TestProfile_ShowsIdentity(t *testing.T) {
	got := renderPage(t, pageProfile, pageData{Identity: &models.Identity{Name: "Ada <Obi>", MatricNumber: "M100"}})
	assert.Contains(t, got, "<dd>Ada &lt;Obi&gt;</dd>")
	assert.Contains(t, got, "<dd>M100</dd>")
	assert.Contains(t, got, `action="/logout"`)

	got = renderPage(t, pageProfile, pageData{})
	assert.NotContains(t, got, `class="identity"`)
}

func TestRegister_PasswordNeverHasValue(t *testing.T) {
	got := renderPage(t, pageRegister, pageData{Form: formValues{Surname: "Obi"}})
	assert.Contains(t, got, `<input name="password" type="password" placeholder="Password">`)
	assert.Contains(t, got, `value="Obi"`)
}

func TestLayout_Redirect(t *testing.T) {
	got := renderPage(t, pageRegister, pageData{
		Success:  "done",
		Redirect: &redirect{URL: "/login", After: 1500 * time.Millisecond},
	})
	assert.Contains(t, got, `<meta http-equiv="refresh" content="2; url=/login">`)
	assert.Contains(t, got, `window.location.assign("/login"); }, 1500);`)
	assert.NotContains(t, got, "<form")
}

func TestRedirect_Seconds(t *testing.T) {
	tests := []struct {
		after time.Duration
		want  int
	}{
		{1500 * time.Millisecond, 2},
		{1200 * time.Millisecond, 2},
		{time.Second, 1},
		{0, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, redirect{After: tt.after}.Seconds(), tt.after.String())
	}
}
