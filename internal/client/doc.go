// Package client is the dashboard's REST request helper.
//
// # Overview
//
// Client wraps net/http with the four verbs the dashboard views need:
//
//	raw, err := c.Fetch(ctx, "/api/roles/", nil)
//	raw, err := c.Create(ctx, "/api/roles", form)
//	raw, err := c.Update(ctx, "/api/roles/:id", id, form)
//	raw, err := c.Delete(ctx, "/api/roles/:id", id)
//
// The ":id" placeholder is replaced by the escaped id. The Into variants decode
// the response envelope into a value.
//
// # Authentication
//
// The session read by the gate is passed to New. When it carries a token,
// every request sends "Authorization: Bearer <token>".
//
// # Errors
//
// Every failure is an *Error with a Kind:
//
//   - KindUnreachable: transport failure, no response
//   - KindUnauthorized: 401 or 403
//   - KindNotFound: 404
//   - KindInvalid: 400 or 422
//   - KindServer: 5xx
//   - KindDecode: the body was not the expected JSON
//
// Match with errors.Is against ErrUnreachable, ErrUnauthorized, ErrNotFound,
// ErrInvalid, ErrServer and ErrDecode, or errors.As for the full detail.
// No request is retried.
package client
