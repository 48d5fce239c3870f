package auth

import "errors"

var (
	ErrInvalidToken      = errors.New("token is invalid or expired")
	ErrRevokedToken      = errors.New("token has been revoked")
	ErrOAuthStateInvalid = errors.New("oauth state does not match")
)
