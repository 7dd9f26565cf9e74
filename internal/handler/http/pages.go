package http

import (
	"errors"
	"net/http"

	"phishguard/internal/logger"
	"phishguard/internal/service"
	"phishguard/internal/session"
	"phishguard/internal/store"
	"phishguard/models"
)

// home renders the landing page. It peeks at the session cookie to show the
// signed-in navigation but never requires one.
func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	var data pageData
	if sess, err := h.sessions.FromRequest(r); err == nil {
		data.User = sess.User
	}
	h.renderPage(w, r, "home.html", data)
}

// registerPage shows the registration form and creates the account on POST.
// A duplicate login re-renders the form with an inline error instead of
// failing the request.
func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.renderPage(w, r, "register.html", pageData{})
		return
	}

	user := models.User{
		Login:    r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	err := h.services.AuthService.RegisterUser(r.Context(), user)
	switch {
	case err == nil:
		http.Redirect(w, r, "/login", http.StatusFound)
	case errors.Is(err, store.ErrLoginAlreadyExists):
		h.renderPage(w, r, "register.html", pageData{Error: "User already exists"})
	case errors.Is(err, service.ErrInvalidDataProvided):
		h.renderPage(w, r, "register.html", pageData{Error: "Username and password are required"})
	default:
		logger.FromRequest(r).Err(err).Msg("registration failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// loginPage shows the login form and establishes the session cookie on POST.
// Unknown logins and wrong passwords get the same inline message.
func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.renderPage(w, r, "login.html", pageData{})
		return
	}

	user := models.User{
		Login:    r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	verified, err := h.services.AuthService.Login(r.Context(), user)
	switch {
	case err == nil:
		if err := h.sessions.Write(w, session.Session{User: verified.Login}); err != nil {
			logger.FromRequest(r).Err(err).Msg("failed to write session cookie")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		http.Redirect(w, r, "/predict", http.StatusFound)
	case errors.Is(err, store.ErrNoUserWasFound),
		errors.Is(err, service.ErrWrongPassword),
		errors.Is(err, service.ErrInvalidDataProvided):
		h.renderPage(w, r, "login.html", pageData{Error: "Invalid credentials"})
	default:
		logger.FromRequest(r).Err(err).Msg("login failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// logout drops the session cookie and sends the client home.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w)
	http.Redirect(w, r, "/", http.StatusFound)
}
