// ABOUTME: Sign-in, sign-out and the sidebar toggle action
// ABOUTME: The credential token is stored in the authToken cookie

package webadmin

import (
	"errors"
	"net/http"
	"strings"

	"github.com/K25anjali/local-Konnect/internal/client"
	"github.com/K25anjali/local-Konnect/internal/nav"
	"github.com/K25anjali/local-Konnect/internal/resources"
	"github.com/K25anjali/local-Konnect/internal/session"
)

type signInData struct {
	Email  string
	Error  string
	Fields resources.FieldErrors
}

func (a *Admin) handleSignInPage(w http.ResponseWriter, r *http.Request) {
	a.render(w, r, "auth_sign_in", signInData{})
}

func (a *Admin) handleSignIn(w http.ResponseWriter, r *http.Request) {
	form := resources.SignInForm{
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
	}

	if errs := resources.Validate(form); errs != nil {
		a.renderStatus(w, r, http.StatusBadRequest, "auth_sign_in", signInData{Email: form.Email, Fields: errs})
		return
	}

	result, err := a.client.Login(r.Context(), form.Email, form.Password)
	if err != nil {
		a.logger.Warn("sign-in failed", "email", form.Email, "error", err)
		msg := "Login failed. Please try again."
		if client.KindOf(err) == client.KindUnauthorized {
			msg = userMessage(err, msg)
		}
		a.renderStatus(w, r, http.StatusUnauthorized, "auth_sign_in", signInData{Email: form.Email, Error: msg})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     session.TokenKey,
		Value:    result.Token,
		Path:     "/",
		MaxAge:   int(TokenCookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   a.secure(r),
		SameSite: http.SameSiteLaxMode,
	})

	a.logger.Info("user signed in", "user_id", result.User.ID)
	http.Redirect(w, r, session.HomeAddress, http.StatusSeeOther)
}

func (a *Admin) handleSignOut(w http.ResponseWriter, r *http.Request) {
	if !a.validateCSRF(r) {
		a.logger.Warn("sign-out without csrf token")
	}
	a.endSession(w, r)
	http.Redirect(w, r, session.SignInAddress, http.StatusSeeOther)
}

// handleNavToggle flips one sidebar group in the caller's shell
func (a *Admin) handleNavToggle(w http.ResponseWriter, r *http.Request) {
	key := nav.Key(r.FormValue("key"))
	if key == "" {
		http.Error(w, "missing group key", http.StatusBadRequest)
		return
	}

	if exp := a.expansion(r); exp != nil {
		exp.Toggle(key)
	}

	returnTo := safeReturn(r.FormValue("return_to"))
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		items := nav.Build(a.tree.InArea(session.AdminArea), returnTo, a.expansion(r))
		if err := sidebar(items, getCSRFToken(r), returnTo).Render(w); err != nil {
			a.logger.Error("failed to render sidebar", "error", err)
		}
		return
	}
	http.Redirect(w, r, returnTo, http.StatusSeeOther)
}

// safeReturn keeps redirects inside the admin area
func safeReturn(to string) string {
	if strings.HasPrefix(to, session.AdminArea+"/") && !strings.HasPrefix(to, "//") {
		return to
	}
	return session.HomeAddress
}

// fetchFailed handles an API error while loading a page. An unauthorized
// response ends the session and redirects to sign-in (done is true);
// anything else yields an error toast and the page renders without data.
func (a *Admin) fetchFailed(w http.ResponseWriter, r *http.Request, title string, err error) (t *toast, done bool) {
	a.logger.Error("api call failed", "op", title, "error", err)
	if errors.Is(err, client.ErrUnauthorized) {
		a.endSession(w, r)
		http.Redirect(w, r, session.SignInAddress, http.StatusSeeOther)
		return nil, true
	}
	return &toast{Level: toastError, Message: title + ": " + userMessage(err, client.GenericMessage)}, false
}

// actionFailed handles an API error from a form action and redirects to back.
func (a *Admin) actionFailed(w http.ResponseWriter, r *http.Request, title, back string, err error) {
	a.forgetSubmission(r)
	a.logger.Error("api call failed", "op", title, "error", err)
	if errors.Is(err, client.ErrUnauthorized) {
		a.endSession(w, r)
		http.Redirect(w, r, session.SignInAddress, http.StatusSeeOther)
		return
	}
	a.setFlash(w, r, toastError, title+": "+userMessage(err, client.GenericMessage))
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// userMessage returns the server's message for err, or fallback.
func userMessage(err error, fallback string) string {
	if msg := client.MessageOf(err); msg != "" {
		return msg
	}
	return fallback
}

// actionDone flashes a success message and redirects to back.
func (a *Admin) actionDone(w http.ResponseWriter, r *http.Request, back, message string) {
	a.setFlash(w, r, toastSuccess, message)
	http.Redirect(w, r, back, http.StatusSeeOther)
}
