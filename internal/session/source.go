// ABOUTME: Token sources for the session gate: request cookies and fixed values
// ABOUTME: CookieSource maps a missing cookie to ErrNoToken

package session

import (
	"errors"
	"net/http"
)

// CookieSource reads tokens from the cookies of one request.
type CookieSource struct {
	Request *http.Request
}

// Token returns the value of the cookie named key.
func (c CookieSource) Token(key string) (string, error) {
	cookie, err := c.Request.Cookie(key)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrNoToken
		}
		return "", err
	}
	if cookie.Value == "" {
		return "", ErrNoToken
	}
	return cookie.Value, nil
}

// StaticSource always returns the same token. An empty value means no token.
type StaticSource string

// Token returns the fixed token.
func (s StaticSource) Token(string) (string, error) {
	if s == "" {
		return "", ErrNoToken
	}
	return string(s), nil
}
