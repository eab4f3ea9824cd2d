// ABOUTME: One-shot toast messages carried across redirects in a cookie
// ABOUTME: The next rendered page shows the toast and clears the cookie

package webadmin

import (
	"net/http"
	"net/url"
	"strings"
)

// Toast levels.
const (
	toastSuccess = "success"
	toastError   = "error"
)

// toast is a transient notification shown above the page content.
type toast struct {
	Level   string
	Message string
}

// setFlash stores a toast for the next page render.
func (a *Admin) setFlash(w http.ResponseWriter, r *http.Request, level, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     FlashCookieName,
		Value:    url.QueryEscape(level + ":" + message),
		Path:     "/",
		HttpOnly: true,
		Secure:   a.secure(r),
		SameSite: http.SameSiteLaxMode,
	})
}

// takeFlash reads and clears the pending toast, if any.
func takeFlash(w http.ResponseWriter, r *http.Request) *toast {
	cookie, err := r.Cookie(FlashCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	http.SetCookie(w, &http.Cookie{Name: FlashCookieName, Value: "", Path: "/", MaxAge: -1})

	raw, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return nil
	}
	level, message, ok := strings.Cut(raw, ":")
	if !ok || message == "" {
		return nil
	}
	if level != toastSuccess {
		level = toastError
	}
	return &toast{Level: level, Message: message}
}
