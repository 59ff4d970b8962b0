package deeplink

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResetToken(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		token string
		ok    bool
	}{
		{"scheme link", "labersaler://redefinir-senha?token=abc123", "abc123", true},
		{"https link", "https://example.com/redefinir-senha?token=xyz", "xyz", true},
		{"extra query params", "labersaler://redefinir-senha?token=abc&lang=pt", "abc", true},
		{"not a reset link", "labersaler://home?token=abc", "", false},
		{"reset link without token", "labersaler://redefinir-senha", "", false},
		{"empty token", "labersaler://redefinir-senha?token=", "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			token, ok := ResetToken(tt.url)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.token, token)
		})
	}
}
