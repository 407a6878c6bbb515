// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"errors"
)

var ErrInvalidPassword = errors.New("invalid upload password")

// CheckUploadPassword compares the supplied password with the configured
// shared secret in constant time. An empty secret never matches, so a
// misconfigured server rejects every upload.
func CheckUploadPassword(supplied, secret string) error {
	if secret == "" {
		return ErrInvalidPassword
	}
	if !hmac.Equal([]byte(supplied), []byte(secret)) {
		return ErrInvalidPassword
	}
	return nil
}
