package auth

import "errors"

// ErrInvalidCredentials indicates that no user matches the login or the
// password check failed.
var ErrInvalidCredentials = errors.New("invalid login or password")

// ErrTokenExpired indicates that a token's expiry is in the past.
var ErrTokenExpired = errors.New("token expired")

// ErrTokenInvalid indicates a malformed token, a bad signature or claims
// that failed validation.
var ErrTokenInvalid = errors.New("invalid token")

// ErrTokenRevoked indicates that the refresh token's ID was revoked.
var ErrTokenRevoked = errors.New("refresh token revoked")

// ErrRefreshTokenExpected indicates that an access token was presented
// where a refresh token is required.
var ErrRefreshTokenExpected = errors.New("refresh token expected")

// ErrAccessTokenExpected indicates that a refresh token was presented
// where an access token is required.
var ErrAccessTokenExpected = errors.New("access token expected")
