package web

import (
	"context"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"

	"github.com/dmitrijs2005/voteportal/internal/client/models"
)

const (
	pageRegister  = "register"
	pageLogin     = "login"
	pageDashboard = "dashboard"
	pageVote      = "vote"
	pageProfile   = "profile"
	pageError     = "error"
)

// pages maps a page name to the component drawn inside the layout.
var pages = map[string]func(pageData) templ.Component{
	pageRegister:  registerContent,
	pageLogin:     loginContent,
	pageDashboard: dashboardContent,
	pageVote:      voteContent,
	pageProfile:   profileContent,
	pageError:     errorContent,
}

// formValues echoes submitted values back into a re-rendered form. The
// password is never echoed.
type formValues struct {
	Surname   string
	FirstName string
	Email     string
	MatricNo  string
	Phone     string
}

func formFromCredential(c models.Credential) formValues {
	return formValues{
		Surname:   c.Surname,
		FirstName: c.FirstName,
		Email:     c.Email,
		MatricNo:  c.MatricNo,
		Phone:     c.Phone,
	}
}

// redirect is a delayed client-side navigation.
type redirect struct {
	URL   string
	After time.Duration
}

// Seconds is the meta refresh delay. Browsers only honour whole seconds.
func (r redirect) Seconds() int {
	return int(math.Ceil(r.After.Seconds()))
}

func (r redirect) Millis() int64 {
	return r.After.Milliseconds()
}

type pageData struct {
	Title    string
	Error    string
	Success  string
	Form     formValues
	Identity *models.Identity
	Redirect *redirect
}

func (h *handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data pageData) {
	content, ok := pages[page]
	if !ok {
		h.logger.Error(r.Context(), "unknown page", "page", page)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	templ.Handler(layout(data, content(data)), templ.WithStatus(status)).ServeHTTP(w, r)
}

func (h *handler) renderErrorPage(w http.ResponseWriter, r *http.Request, status int, message string) {
	h.render(w, r, status, pageError, pageData{
		Title: http.StatusText(status),
		Error: message,
	})
}

func writeStrings(w io.Writer, ss ...string) error {
	for _, s := range ss {
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}

// layout wraps content in the page shell with the header bar. A redirect adds
// a meta refresh plus a script for sub-second delays.
func layout(d pageData, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		err := writeStrings(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
`)
		if err != nil {
			return err
		}
		if d.Redirect != nil {
			err = writeStrings(w, `<meta http-equiv="refresh" content="`,
				strconv.Itoa(d.Redirect.Seconds()), "; url=", templ.EscapeString(d.Redirect.URL), `">`, "\n")
			if err != nil {
				return err
			}
		}
		title := "Student Voting Portal"
		if d.Title != "" {
			title = d.Title + " · " + title
		}
		err = writeStrings(w, "<title>", templ.EscapeString(title), `</title>
</head>
<body>
<div class="min-h-screen">
<header class="w-full header-blue">
<div class="bar">
<div class="brand">Student Voting Portal</div>
<div class="greeting">Welcome</div>
</div>
</header>
<main class="container">
`)
		if err != nil {
			return err
		}
		if err = content.Render(ctx, w); err != nil {
			return err
		}
		if err = writeStrings(w, "</main>\n</div>\n"); err != nil {
			return err
		}
		if d.Redirect != nil {
			target, err := templ.JSONString(d.Redirect.URL)
			if err != nil {
				return err
			}
			err = writeStrings(w, "<script>setTimeout(function () { window.location.assign(", target, "); }, ",
				strconv.FormatInt(d.Redirect.Millis(), 10), ");</script>\n")
			if err != nil {
				return err
			}
		}
		return writeStrings(w, "</body>\n</html>\n")
	})
}

func cardHeader(w io.Writer, d pageData) error {
	if err := writeStrings(w, "<div class=\"card-header\">\n<h2>Student Voting Portal</h2>\n</div>\n"); err != nil {
		return err
	}
	if d.Error != "" {
		if err := writeStrings(w, `<div class="error" role="alert">`, templ.EscapeString(d.Error), "</div>\n"); err != nil {
			return err
		}
	}
	if d.Success != "" {
		return writeStrings(w, `<div class="success" role="status">`, templ.EscapeString(d.Success), "</div>\n")
	}
	return nil
}

func sessionNav(w io.Writer) error {
	return writeStrings(w, `<nav class="session">
<a href="/">Dashboard</a>
<a href="/vote">Vote</a>
<a href="/profile">Profile</a>
<form method="post" action="/logout"><button type="submit">Logout</button></form>
</nav>
`)
}

func input(w io.Writer, name, typ, placeholder, value string) error {
	if err := writeStrings(w, `<input name="`, name, `"`); err != nil {
		return err
	}
	if typ != "" {
		if err := writeStrings(w, ` type="`, typ, `"`); err != nil {
			return err
		}
	}
	if err := writeStrings(w, ` placeholder="`, placeholder, `"`); err != nil {
		return err
	}
	if typ != "password" {
		if err := writeStrings(w, ` value="`, templ.EscapeString(value), `"`); err != nil {
			return err
		}
	}
	return writeStrings(w, ">\n")
}

func registerContent(d pageData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if err := writeStrings(w, "<div class=\"card\">\n"); err != nil {
			return err
		}
		if err := cardHeader(w, d); err != nil {
			return err
		}
		if d.Success == "" {
			fields := []struct{ name, typ, placeholder, value string }{
				{"surname", "", "Surname", d.Form.Surname},
				{"firstName", "", "First Name", d.Form.FirstName},
				{"email", "email", "Email", d.Form.Email},
				{"matricNo", "", "Matric No", d.Form.MatricNo},
				{"phone", "", "Phone number", d.Form.Phone},
				{"password", "password", "Password", ""},
			}
			if err := writeStrings(w, "<form method=\"post\" action=\"/register\">\n"); err != nil {
				return err
			}
			for _, f := range fields {
				if err := input(w, f.name, f.typ, f.placeholder, f.value); err != nil {
					return err
				}
			}
			if err := writeStrings(w, "<button type=\"submit\" class=\"btn-primary\">Submit</button>\n</form>\n"); err != nil {
				return err
			}
		}
		return writeStrings(w, "<div class=\"links\"><a href=\"/login\">Back to login</a></div>\n</div>\n")
	})
}

func loginContent(d pageData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if err := writeStrings(w, "<div class=\"card\">\n"); err != nil {
			return err
		}
		if err := cardHeader(w, d); err != nil {
			return err
		}
		if err := writeStrings(w, "<form method=\"post\" action=\"/login\">\n"); err != nil {
			return err
		}
		if err := input(w, "matric", "", "Matric Number", d.Form.MatricNo); err != nil {
			return err
		}
		if err := input(w, "password", "password", "Password", ""); err != nil {
			return err
		}
		return writeStrings(w, `<button type="submit" class="btn-primary">Login</button>
</form>
<div class="links"><a href="/register">Register</a></div>
</div>
`)
	})
}

// placeholder is a private page that only shows its label and the session nav.
func placeholder(label string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if err := writeStrings(w, `<div class="page">`, label, "</div>\n"); err != nil {
			return err
		}
		return sessionNav(w)
	})
}

func dashboardContent(pageData) templ.Component { return placeholder("Dashboard content...") }

func voteContent(pageData) templ.Component { return placeholder("Vote Page...") }

func profileContent(d pageData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if err := writeStrings(w, "<div class=\"page\">Profile Page...</div>\n"); err != nil {
			return err
		}
		if id := d.Identity; id != nil {
			err := writeStrings(w, "<dl class=\"identity\">\n<dt>Name</dt><dd>", templ.EscapeString(id.Name),
				"</dd>\n<dt>Matric Number</dt><dd>", templ.EscapeString(id.MatricNumber), "</dd>\n</dl>\n")
			if err != nil {
				return err
			}
		}
		return sessionNav(w)
	})
}

func errorContent(d pageData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return writeStrings(w, "<div class=\"card\">\n<h2>", templ.EscapeString(d.Title),
			"</h2>\n<div class=\"error\" role=\"alert\">", templ.EscapeString(d.Error),
			"</div>\n<div class=\"links\"><a href=\"/\">Home</a></div>\n</div>\n")
	})
}
