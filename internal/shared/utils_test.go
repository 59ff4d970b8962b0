package shared

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWipeByteArray(t *testing.T) {
	b := []byte("senha-secreta")
	WipeByteArray(b)
	for i, v := range b {
		require.Zerof(t, v, "byte %d not wiped", i)
	}
}

func TestWipeByteArray_NilIsNoop(t *testing.T) {
	require.NotPanics(t, func() { WipeByteArray(nil) })
}
