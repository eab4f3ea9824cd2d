// Package auth issues and verifies the bearer tokens of the reference REST
// backend.
//
// Tokens are HS256 JWTs whose "sub" claim is the user ID. BearerMiddleware
// rejects requests without a valid token and attaches the signed-in user to
// the request context:
//
//	issuer, err := auth.NewJWTIssuer(secret)
//	protected := auth.BearerMiddleware(users, issuer)(handler)
//
// Passwords are stored as bcrypt hashes; see HashPassword and CheckPassword.
package auth
