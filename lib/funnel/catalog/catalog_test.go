package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"talentos-backend/models"
)

func TestCatalogInvariants(t *testing.T) {
	for _, entity := range []models.EntityKind{models.EntityVaga, models.EntityCandidato, models.EntityCliente} {
		c := ForEntity(entity)
		require.NotNil(t, c)

		t.Run(string(entity)+` order unique and ascending check`, func(t *testing.T) {
			lastOrder := 0
			for _, stage := range c.Stages() {
				require.Greater(t, stage.Order, lastOrder)
				lastOrder = stage.Order
			}
		})

		t.Run(string(entity)+` exactly one final stage check`, func(t *testing.T) {
			finals := 0
			for _, stage := range c.Stages() {
				if stage.Kind == models.StageFinal {
					finals++
				}
			}
			require.Equal(t, 1, finals)
		})

		t.Run(string(entity)+` progress monotonic over normal stages check`, func(t *testing.T) {
			last := 0
			for _, stage := range c.Stages() {
				if stage.Kind != models.StageNormal {
					continue
				}
				p := c.Progress(stage.Slug)
				require.GreaterOrEqual(t, p, last)
				require.LessOrEqual(t, p, 100)
				last = p
			}
		})

		t.Run(string(entity)+` final stage short-circuits to 100 check`, func(t *testing.T) {
			for _, stage := range c.Stages() {
				if stage.Kind == models.StageFinal {
					require.Equal(t, 100, c.Progress(stage.Slug))
				}
			}
		})
	}
}

func TestCatalogLookup(t *testing.T) {
	vagas := ForEntity(models.EntityVaga)

	t.Run(`lookup by slug check`, func(t *testing.T) {
		stage := vagas.Get(VagaStageTriagem)
		require.NotNil(t, stage)
		require.Equal(t, "Triagem", stage.Nome)
	})

	t.Run(`lookup by display name check`, func(t *testing.T) {
		stage := vagas.Get("Entrevista com Cliente")
		require.NotNil(t, stage)
		require.Equal(t, VagaStageEntrevistaCliente, stage.Slug)
	})

	t.Run(`lookup by legacy name check`, func(t *testing.T) {
		stage := vagas.Get("Hunting")
		require.NotNil(t, stage)
		require.Equal(t, VagaStageDiscovery, stage.Slug)
	})

	t.Run(`unknown name check`, func(t *testing.T) {
		require.Nil(t, vagas.Get("etapa-inexistente"))
	})

	t.Run(`initial stage check`, func(t *testing.T) {
		require.Equal(t, VagaStageDiscovery, vagas.Initial().Slug)
		require.Equal(t, CandidatoStageBancoTalentos, ForEntity(models.EntityCandidato).Initial().Slug)
	})
}

func TestProgressScenario(t *testing.T) {
	t.Run(`discovery is first of six normal stages check`, func(t *testing.T) {
		vagas := ForEntity(models.EntityVaga)
		require.Equal(t, 6, vagas.TotalNormal())
		require.Equal(t, 17, vagas.Progress(VagaStageDiscovery))
		require.Equal(t, 100, vagas.Progress(VagaStageContratacao))
	})
}

func TestMapLegacyName(t *testing.T) {
	t.Run(`known legacy names check`, func(t *testing.T) {
		require.Equal(t, CandidatoStageBancoTalentos, MapLegacyName("Banco de Talento"))
		require.Equal(t, CandidatoStageReprovado, MapLegacyName(" não aprovado "))
		require.Equal(t, VagaStageCongelada, MapLegacyName("Pausada"))
	})

	t.Run(`unknown legacy name check`, func(t *testing.T) {
		require.Equal(t, "", MapLegacyName("status qualquer"))
	})
}
