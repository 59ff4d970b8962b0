// Package deeplink extracts parameters from password-reset links,
// e.g. labersaler://redefinir-senha?token=abc123.
package deeplink

import "strings"

// ResetToken returns the reset token carried by a redefinir-senha link.
// The second return value is false when the URL is not a reset link or
// carries no token.
func ResetToken(url string) (string, bool) {
	if !strings.Contains(url, "redefinir-senha") {
		return "", false
	}
	_, rest, found := strings.Cut(url, "token=")
	if !found {
		return "", false
	}
	token, _, _ := strings.Cut(rest, "&")
	if token == "" {
		return "", false
	}
	return token, true
}
