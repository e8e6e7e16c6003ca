package timeline

import (
	"sort"
	"time"

	"talentos-backend/lib/funnel/catalog"
	"talentos-backend/lib/utils/dateutils"
	"talentos-backend/models"
	dbmodels "talentos-backend/models/db"
)

// Entry é um ponto da linha do tempo de um registro no funil.
type Entry struct {
	Label        string    `json:"label"`         // nome da etapa de destino
	StageSlug    string    `json:"stage_slug"`    // slug da etapa de destino
	Color        string    `json:"color"`         // cor da etapa
	Timestamp    time.Time `json:"timestamp"`     // momento da transição
	DiasNaEtapa  int       `json:"dias_na_etapa"` // dias úteis desde a transição anterior
	MovedBy      string    `json:"moved_by"`      // autor da transição
	Description  string    `json:"description"`
}

// Build reconstrói a linha do tempo a partir dos eventos de transição de um
// registro. A ordenação é por momento da transição, empate desfeito pelo id
// do evento para o resultado ser determinístico.
func Build(entity models.EntityKind, eventos []dbmodels.Evento) []Entry {
	transitions := make([]dbmodels.Evento, 0, len(eventos))
	for _, rec := range eventos {
		if rec.EventType == models.EventTypeStageChange {
			transitions = append(transitions, rec)
		}
	}
	sort.SliceStable(transitions, func(a, b int) bool {
		if transitions[a].CreatedAt.Equal(transitions[b].CreatedAt) {
			return transitions[a].ID < transitions[b].ID
		}
		return transitions[a].CreatedAt.Before(transitions[b].CreatedAt)
	})

	cat := catalog.ForEntity(entity)
	result := make([]Entry, 0, len(transitions))
	var prev *dbmodels.Evento
	for idx := range transitions {
		rec := transitions[idx]
		entry := Entry{
			Label:       rec.ToStage,
			StageSlug:   rec.ToStage,
			Timestamp:   rec.CreatedAt,
			MovedBy:     rec.UserName,
			Description: rec.Description,
		}
		if stage := cat.Get(rec.ToStage); stage != nil {
			entry.Label = stage.Nome
			entry.StageSlug = stage.Slug
			entry.Color = stage.Color
		}
		if prev != nil {
			entry.DiasNaEtapa = dateutils.BusinessDaysBetween(prev.CreatedAt, rec.CreatedAt)
		}
		result = append(result, entry)
		prev = &transitions[idx]
	}
	return result
}
