package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStageKindIsTerminal(t *testing.T) {
	t.Run(`normal stage is not terminal check`, func(t *testing.T) {
		require.False(t, StageNormal.IsTerminal())
	})

	t.Run(`final stage is terminal check`, func(t *testing.T) {
		require.True(t, StageFinal.IsTerminal())
	})

	t.Run(`frozen stage is terminal check`, func(t *testing.T) {
		require.True(t, StageFrozen.IsTerminal())
	})

	t.Run(`canceled stage is terminal check`, func(t *testing.T) {
		require.True(t, StageCanceled.IsTerminal())
	})
}
