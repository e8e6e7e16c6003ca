package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"talentos-backend/lib/funnel/catalog"
	"talentos-backend/models"
	dbmodels "talentos-backend/models/db"
)

func transitionAt(id string, at time.Time, from, to string) dbmodels.Evento {
	rec := dbmodels.Evento{
		EntityKind: models.EntityVaga,
		EntityID:   "vaga-1",
		EventType:  models.EventTypeStageChange,
		FromStage:  from,
		ToStage:    to,
		UserName:   "Ana Souza",
	}
	rec.ID = id
	rec.CreatedAt = at
	return rec
}

func TestBuild(t *testing.T) {
	// 02/06/2025 é segunda-feira
	monday := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	nextMonday := monday.AddDate(0, 0, 7)

	t.Run(`entries ordered by timestamp check`, func(t *testing.T) {
		eventos := []dbmodels.Evento{
			transitionAt("b", nextMonday, catalog.VagaStageDiscovery, catalog.VagaStageTriagem),
			transitionAt("a", monday, "", catalog.VagaStageDiscovery),
		}
		entries := Build(models.EntityVaga, eventos)
		require.Len(t, entries, 2)
		require.Equal(t, "Discovery", entries[0].Label)
		require.Equal(t, "Triagem", entries[1].Label)
		for idx := 1; idx < len(entries); idx++ {
			require.False(t, entries[idx].Timestamp.Before(entries[idx-1].Timestamp))
		}
	})

	t.Run(`duration in business days check`, func(t *testing.T) {
		eventos := []dbmodels.Evento{
			transitionAt("a", monday, "", catalog.VagaStageDiscovery),
			transitionAt("b", nextMonday, catalog.VagaStageDiscovery, catalog.VagaStageTriagem),
		}
		entries := Build(models.EntityVaga, eventos)
		require.Len(t, entries, 2)
		require.Equal(t, 0, entries[0].DiasNaEtapa)
		require.Equal(t, 6, entries[1].DiasNaEtapa)
	})

	t.Run(`tie on timestamp broken by id check`, func(t *testing.T) {
		eventos := []dbmodels.Evento{
			transitionAt("b", monday, catalog.VagaStageDiscovery, catalog.VagaStageTriagem),
			transitionAt("a", monday, "", catalog.VagaStageDiscovery),
		}
		entries := Build(models.EntityVaga, eventos)
		require.Len(t, entries, 2)
		require.Equal(t, catalog.VagaStageDiscovery, entries[0].StageSlug)
		require.Equal(t, catalog.VagaStageTriagem, entries[1].StageSlug)
	})

	t.Run(`non transition events are ignored check`, func(t *testing.T) {
		comment := dbmodels.Evento{EntityKind: models.EntityVaga, EntityID: "vaga-1", EventType: models.EventTypeComment}
		comment.ID = "c"
		comment.CreatedAt = monday
		eventos := []dbmodels.Evento{
			comment,
			transitionAt("a", monday, "", catalog.VagaStageDiscovery),
		}
		entries := Build(models.EntityVaga, eventos)
		require.Len(t, entries, 1)
	})

	t.Run(`legacy stage name resolved to catalog label check`, func(t *testing.T) {
		eventos := []dbmodels.Evento{
			transitionAt("a", monday, "", "Hunting"),
		}
		entries := Build(models.EntityVaga, eventos)
		require.Len(t, entries, 1)
		require.Equal(t, "Discovery", entries[0].Label)
		require.Equal(t, catalog.VagaStageDiscovery, entries[0].StageSlug)
	})
}
