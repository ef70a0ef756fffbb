package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/voteportal/internal/client/models"
	"github.com/dmitrijs2005/voteportal/internal/client/services"
	"github.com/dmitrijs2005/voteportal/internal/logging"
)

type handler struct {
	auth   services.AuthService
	logger logging.Logger
}

// NewHandler builds the portal's route table.
//
//	/register, /login   GET form, POST submit
//	/, /vote, /profile  GET, session required
//	/logout             POST
//	/healthz            GET
//	anything else       302 to /
func NewHandler(auth services.AuthService, logger logging.Logger) http.Handler {
	h := &handler{auth: auth, logger: logger.With("component", "web")}

	r := mux.NewRouter()
	r.Use(withLogging(h.logger))

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if _, err := fmt.Fprintln(w, "OK"); err != nil {
			h.logger.Debug(r.Context(), "write healthz", "error", err)
		}
	}).Methods(http.MethodGet)

	r.HandleFunc("/register", h.registerForm).Methods(http.MethodGet)
	r.HandleFunc("/register", h.registerSubmit).Methods(http.MethodPost)
	r.HandleFunc("/login", h.loginForm).Methods(http.MethodGet)
	r.HandleFunc("/login", h.loginSubmit).Methods(http.MethodPost)
	r.HandleFunc("/logout", h.logout).Methods(http.MethodPost)

	private := r.NewRoute().Subrouter()
	private.Use(requireSession(h))
	private.HandleFunc("/", h.dashboard).Methods(http.MethodGet)
	private.HandleFunc("/vote", h.vote).Methods(http.MethodGet)
	private.HandleFunc("/profile", h.profile).Methods(http.MethodGet)

	r.NotFoundHandler = withLogging(h.logger)(http.HandlerFunc(redirectHome))
	return r
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *handler) registerForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageRegister, pageData{Title: "Register"})
}

func (h *handler) registerSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderErrorPage(w, r, http.StatusBadRequest, "Invalid form submission")
		return
	}
	c := models.Credential{
		Surname:   r.PostForm.Get("surname"),
		FirstName: r.PostForm.Get("firstName"),
		Email:     r.PostForm.Get("email"),
		MatricNo:  r.PostForm.Get("matricNo"),
		Phone:     r.PostForm.Get("phone"),
		Password:  r.PostForm.Get("password"),
	}

	res, err := h.auth.Register(r.Context(), c)
	if err != nil {
		status := http.StatusOK
		if !errors.Is(err, services.ErrValidation) {
			h.logger.Error(r.Context(), "registration failed", "error", err)
			status = http.StatusInternalServerError
		}
		h.render(w, r, status, pageRegister, pageData{
			Title: "Register",
			Error: services.UserMessage(err),
			Form:  formFromCredential(c),
		})
		return
	}

	h.render(w, r, http.StatusOK, pageRegister, pageData{
		Title:    "Register",
		Success:  res.Message,
		Redirect: &redirect{URL: "/login", After: res.RedirectAfter},
	})
}

func (h *handler) loginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageLogin, pageData{Title: "Login"})
}

func (h *handler) loginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderErrorPage(w, r, http.StatusBadRequest, "Invalid form submission")
		return
	}
	matric := r.PostForm.Get("matric")
	password := r.PostForm.Get("password")

	if _, err := h.auth.Login(r.Context(), matric, password); err != nil {
		status := http.StatusOK
		if !isLoginRejection(err) {
			h.logger.Error(r.Context(), "login failed", "error", err)
			status = http.StatusInternalServerError
		}
		h.render(w, r, status, pageLogin, pageData{
			Title: "Login",
			Error: services.UserMessage(err),
			Form:  formValues{MatricNo: matric},
		})
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func isLoginRejection(err error) bool {
	return errors.Is(err, services.ErrValidation) ||
		errors.Is(err, services.ErrNoToken) ||
		errors.Is(err, services.ErrLoginFailed)
}

func (h *handler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.auth.Logout(r.Context()); err != nil {
		h.logger.Error(r.Context(), "logout failed", "error", err)
		h.renderErrorPage(w, r, http.StatusInternalServerError, services.UserMessage(err))
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *handler) dashboard(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageDashboard, pageData{Title: "Dashboard"})
}

func (h *handler) vote(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pageVote, pageData{Title: "Vote"})
}

func (h *handler) profile(w http.ResponseWriter, r *http.Request) {
	id, err := h.auth.CurrentIdentity(r.Context())
	if err != nil {
		// The page is still shown; the identity is display-only.
		h.logger.Warn(r.Context(), "read identity", "error", err)
	}
	h.render(w, r, http.StatusOK, pageProfile, pageData{Title: "Profile", Identity: id})
}
