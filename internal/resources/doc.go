// Package resources wraps the REST client with one typed service per
// dashboard resource.
//
// Each service unwraps the backend's response envelope ({"roles": [...]},
// {"role": {...}}, ...) so pages deal in plain values. Form types carry
// validation rules; Validate returns the per-field messages shown next to
// form inputs.
package resources
