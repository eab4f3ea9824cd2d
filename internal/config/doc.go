// Package config loads the YAML file shared by the dashboard, the REST backend and the CLI.
//
// # Where the file lives
//
// ResolvePath picks the first of:
//
//  1. The --config flag
//  2. Path from KONNECT_CONFIG environment variable
//  3. $XDG_CONFIG_HOME/konnect/config.yaml
//  4. ~/.config/konnect/config.yaml
//
// "konnect init" writes Default() to the resolved path.
//
// # Secrets from the environment
//
// Any ${NAME} in the file is replaced before parsing, which keeps the signing key out of it:
//
//	auth:
//	  jwt_secret: "${KONNECT_JWT_SECRET}"
//
// Unset variables expand to the empty string.
//
// # Timeouts and lifetimes
//
// Written as time.ParseDuration strings and parsed after unmarshalling:
//
//	api:
//	  request_timeout: "30s"
//	auth:
//	  token_ttl: "24h"
//
// # Full example
//
//	server:
//	  http_addr: "127.0.0.1:3000"       # dashboard
//
//	api:
//	  http_addr: "127.0.0.1:5000"       # reference REST backend
//	  base_url: "http://127.0.0.1:5000" # where the dashboard reaches the API
//	  allowed_origins: ["http://localhost:*"]
//	  seed: true
//
//	database:
//	  path: "~/.local/share/konnect/konnect.db"
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
//
//	webadmin:
//	  base_url: "https://admin.example.com"
//	  cookie_secure: true
package config
