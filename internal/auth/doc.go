// Package auth holds the login-flow collaborators: verification-token
// validation, the session-issuer client, rejection-code mapping, and the
// callback URL sanitizer.
package auth
