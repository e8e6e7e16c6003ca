package cnpj

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run(`valid cnpj check`, func(t *testing.T) {
		require.Nil(t, Validate("11222333000181"))
	})

	t.Run(`wrong length check`, func(t *testing.T) {
		require.NotNil(t, Validate("1122233300018"))
		require.NotNil(t, Validate(""))
	})

	t.Run(`repeated digits check`, func(t *testing.T) {
		require.NotNil(t, Validate("00000000000000"))
		require.NotNil(t, Validate("11111111111111"))
	})

	t.Run(`wrong check digit check`, func(t *testing.T) {
		require.NotNil(t, Validate("11222333000182"))
		require.NotNil(t, Validate("11222333000191"))
	})
}
