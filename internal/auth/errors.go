package auth

import "errors"

// ErrMissingEmailClaim marks a token that verified cryptographically but
// carries no usable email claim.
var ErrMissingEmailClaim = errors.New("token has no email claim")
