// ABOUTME: Session gate state machine: Checking -> Authenticated | Unauthenticated
// ABOUTME: Decides redirects between the sign-in area and the admin area

package session

import (
	"errors"
	"fmt"
	"strings"
)

// TokenKey is the fixed storage key of the credential token.
const TokenKey = "authToken"

// Well-known addresses of the two areas.
const (
	AdminArea     = "/admin"
	AuthArea      = "/auth"
	HomeAddress   = "/admin/default"
	SignInAddress = "/auth/sign-in"
)

// ErrNoToken is returned by a TokenSource when no token is stored.
var ErrNoToken = errors.New("no stored token")

// ErrAlreadyBooted is returned when Boot is called on a gate that already left Checking.
var ErrAlreadyBooted = errors.New("session gate already booted")

// State is the gate state.
type State int

const (
	Checking State = iota
	Authenticated
	Unauthenticated
)

func (s State) String() string {
	switch s {
	case Checking:
		return "checking"
	case Authenticated:
		return "authenticated"
	case Unauthenticated:
		return "unauthenticated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// TokenSource reads a stored value by key. Implementations return ErrNoToken
// when nothing is stored.
type TokenSource interface {
	Token(key string) (string, error)
}

// Session carries the credential token read at boot.
type Session struct {
	token string
}

// New returns a session carrying token.
func New(token string) Session {
	return Session{token: token}
}

// Token returns the stored token, possibly empty.
func (s Session) Token() string { return s.token }

// Present reports whether a token was stored.
func (s Session) Present() bool { return s.token != "" }

// Gate is the session gate. It is not safe for concurrent Boot calls; each
// request or process boots its own gate.
type Gate struct {
	state   State
	session Session
}

// NewGate returns a gate in the Checking state.
func NewGate() *Gate {
	return &Gate{state: Checking}
}

// Boot creates a gate and boots it from src.
func Boot(src TokenSource) (*Gate, error) {
	g := NewGate()
	return g, g.Boot(src)
}

// Boot reads the token once and moves the gate to its terminal state. A
// source error other than ErrNoToken leaves the gate Unauthenticated and is
// returned.
func (g *Gate) Boot(src TokenSource) error {
	if g.state != Checking {
		return ErrAlreadyBooted
	}

	token, err := src.Token(TokenKey)
	if err != nil && !errors.Is(err, ErrNoToken) {
		g.state = Unauthenticated
		return fmt.Errorf("reading %s: %w", TokenKey, err)
	}

	g.session = New(token)
	if g.session.Present() {
		g.state = Authenticated
	} else {
		g.state = Unauthenticated
	}
	return nil
}

// State returns the current state.
func (g *Gate) State() State { return g.state }

// Session returns the session read at boot.
func (g *Gate) Session() Session { return g.session }

// Redirect returns where a request for location must go instead, if anywhere.
//
//   - "/" goes home when signed in and to sign-in otherwise
//   - the auth area redirects home when signed in
//   - the admin area redirects to sign-in when signed out; its bare root goes home
func (g *Gate) Redirect(location string) (string, bool) {
	if g.state == Checking {
		return "", false
	}
	signedIn := g.state == Authenticated

	switch {
	case location == "" || location == "/":
		if signedIn {
			return HomeAddress, true
		}
		return SignInAddress, true
	case inArea(location, AuthArea):
		if signedIn {
			return HomeAddress, true
		}
	case inArea(location, AdminArea):
		if !signedIn {
			return SignInAddress, true
		}
		if location == AdminArea || location == AdminArea+"/" {
			return HomeAddress, true
		}
	}
	return "", false
}

func inArea(location, area string) bool {
	return location == area || strings.HasPrefix(location, area+"/")
}
