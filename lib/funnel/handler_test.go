package funnel

import (
	"testing"

	"github.com/stretchr/testify/require"

	"talentos-backend/lib/funnel/catalog"
	"talentos-backend/models"
)

func TestCheckTransition(t *testing.T) {
	cat := catalog.ForEntity(models.EntityVaga)

	t.Run(`normal stage moves forward check`, func(t *testing.T) {
		require.NoError(t, checkTransition(cat, catalog.VagaStageDiscovery, catalog.VagaStageTriagem))
	})

	t.Run(`normal stage moves backward check`, func(t *testing.T) {
		require.NoError(t, checkTransition(cat, catalog.VagaStageShortlist, catalog.VagaStageTriagem))
	})

	t.Run(`normal stage reaches a sink check`, func(t *testing.T) {
		require.NoError(t, checkTransition(cat, catalog.VagaStageEntrevistas, catalog.VagaStageCongelada))
	})

	t.Run(`same stage rejected check`, func(t *testing.T) {
		require.Error(t, checkTransition(cat, catalog.VagaStageTriagem, catalog.VagaStageTriagem))
	})

	t.Run(`final stage blocks new moves check`, func(t *testing.T) {
		require.Error(t, checkTransition(cat, catalog.VagaStageContratacao, catalog.VagaStageTriagem))
	})

	t.Run(`frozen stage blocks new moves check`, func(t *testing.T) {
		require.Error(t, checkTransition(cat, catalog.VagaStageCongelada, catalog.VagaStageTriagem))
	})

	t.Run(`canceled stage blocks new moves check`, func(t *testing.T) {
		require.Error(t, checkTransition(cat, catalog.VagaStageCancelada, catalog.VagaStageDiscovery))
	})
}

func TestMoveRejectsBeforeWriting(t *testing.T) {
	engine := impl{}

	t.Run(`unknown entity kind check`, func(t *testing.T) {
		_, err := engine.Move(MoveRequest{Entity: "tipo-inexistente", EntityID: "id", ToStage: catalog.VagaStageTriagem})
		require.Error(t, err)
	})

	t.Run(`unknown target stage check`, func(t *testing.T) {
		_, err := engine.Move(MoveRequest{Entity: models.EntityVaga, EntityID: "id", ToStage: "etapa-inexistente"})
		require.Error(t, err)
	})
}
