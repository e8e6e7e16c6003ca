package helpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOnlyDigits(t *testing.T) {
	t.Run(`masked cnpj check`, func(t *testing.T) {
		require.Equal(t, "12345678000195", OnlyDigits("12.345.678/0001-95"))
	})
	t.Run(`already clean check`, func(t *testing.T) {
		require.Equal(t, "12345678000195", OnlyDigits("12345678000195"))
	})
	t.Run(`empty check`, func(t *testing.T) {
		require.Equal(t, "", OnlyDigits(""))
	})
}
