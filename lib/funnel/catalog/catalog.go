package catalog

import (
	"fmt"
	"math"
	"strings"

	"talentos-backend/models"
)

// Stage é uma etapa fixa de um funil, definida em tempo de build.
type Stage struct {
	Slug  string
	Nome  string
	Order int
	Color string
	Kind  models.StageKind
}

type Catalog struct {
	entity      models.EntityKind
	stages      []Stage
	bySlug      map[string]Stage
	byNome      map[string]Stage
	totalNormal int
}

func newCatalog(entity models.EntityKind, stages []Stage) *Catalog {
	c := &Catalog{
		entity: entity,
		stages: stages,
		bySlug: make(map[string]Stage, len(stages)),
		byNome: make(map[string]Stage, len(stages)),
	}
	finalCount := 0
	lastOrder := 0
	for _, stage := range stages {
		if _, ok := c.bySlug[stage.Slug]; ok {
			panic(fmt.Sprintf("funil %v: slug duplicado %v", entity, stage.Slug))
		}
		if stage.Order <= lastOrder {
			panic(fmt.Sprintf("funil %v: ordem fora de sequência em %v", entity, stage.Slug))
		}
		lastOrder = stage.Order
		c.bySlug[stage.Slug] = stage
		c.byNome[strings.ToLower(stage.Nome)] = stage
		switch stage.Kind {
		case models.StageNormal:
			c.totalNormal++
		case models.StageFinal:
			finalCount++
		}
	}
	if finalCount != 1 {
		panic(fmt.Sprintf("funil %v: deve existir exatamente uma etapa final", entity))
	}
	return c
}

var catalogs = map[models.EntityKind]*Catalog{
	models.EntityVaga:      newCatalog(models.EntityVaga, vagaStages),
	models.EntityCandidato: newCatalog(models.EntityCandidato, candidatoStages),
	models.EntityCliente:   newCatalog(models.EntityCliente, clienteStages),
}

// ForEntity retorna o catálogo de etapas do tipo de registro informado.
func ForEntity(entity models.EntityKind) *Catalog {
	return catalogs[entity]
}

// Get resolve um slug ou um nome de exibição (inclusive nomes legados de
// status em texto livre) para a etapa correspondente; nil quando desconhecido.
func (c *Catalog) Get(slugOrNome string) *Stage {
	if stage, ok := c.bySlug[slugOrNome]; ok {
		return &stage
	}
	key := strings.ToLower(strings.TrimSpace(slugOrNome))
	if stage, ok := c.byNome[key]; ok {
		return &stage
	}
	if slug, ok := legacyNames[key]; ok {
		if stage, found := c.bySlug[slug]; found {
			return &stage
		}
	}
	return nil
}

func (c *Catalog) Stages() []Stage {
	result := make([]Stage, len(c.stages))
	copy(result, c.stages)
	return result
}

// Initial é a etapa de entrada do funil (primeira etapa normal).
func (c *Catalog) Initial() Stage {
	return c.stages[0]
}

func (c *Catalog) TotalNormal() int {
	return c.totalNormal
}

// Progress retorna o percentual de avanço no funil: order/totalNormal × 100
// arredondado. Etapa final vale sempre 100; etapas congelada/cancelada não
// representam avanço e valem 0; etapa desconhecida vale 0.
func (c *Catalog) Progress(slugOrNome string) int {
	stage := c.Get(slugOrNome)
	if stage == nil {
		return 0
	}
	switch stage.Kind {
	case models.StageFinal:
		return 100
	case models.StageFrozen, models.StageCanceled:
		return 0
	}
	if c.totalNormal == 0 {
		return 0
	}
	return int(math.Round(float64(stage.Order) / float64(c.totalNormal) * 100))
}
