package board

import (
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Card é um registro exibido em uma coluna do kanban.
type Card struct {
	ID        string    `json:"id"`
	Titulo    string    `json:"titulo"`
	Subtitulo string    `json:"subtitulo,omitempty"`
	StageSlug string    `json:"stage_slug"`
	MovedAt   time.Time `json:"moved_at"`
}

// Column é uma coluna do kanban, na ordem do catálogo de etapas.
type Column struct {
	StageSlug string `json:"stage_slug"`
	Nome      string `json:"nome"`
	Color     string `json:"color"`
	Cards     []Card `json:"cards"`
}

// Cache é o cache de leitura compartilhado das colunas do kanban. A mutação
// otimista aplica o movimento antes da escrita no banco resolver; o chamador
// recebe uma função de rollback única para desfazer em caso de falha.
// Política last-write-wins, sem resolução de conflito além do mutex.
type Cache struct {
	mu     sync.RWMutex
	boards map[string][]Column
}

func NewCache() *Cache {
	return &Cache{
		boards: map[string][]Column{},
	}
}

// Get devolve uma cópia das colunas do board; ok=false quando não há cache.
func (c *Cache) Get(boardKey string) (columns []Column, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cached, ok := c.boards[boardKey]
	if !ok {
		return nil, false
	}
	return cloneColumns(cached), true
}

func (c *Cache) Set(boardKey string, columns []Column) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.boards[boardKey] = cloneColumns(columns)
}

// Invalidate remove o board do cache; a próxima leitura volta ao banco.
func (c *Cache) Invalidate(boardKey string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.boards, boardKey)
}

// Clear descarta todos os boards em cache e devolve quantos foram removidos.
func (c *Cache) Clear() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := len(c.boards)
	c.boards = map[string][]Column{}
	return count
}

// ApplyMove move o card para a coluna de destino de forma otimista e devolve
// o rollback que restaura o estado anterior do board. Erro quando o board não
// está em cache ou o card/coluna não existem.
func (c *Cache) ApplyMove(boardKey, cardID, toStage string) (rollback func(), err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	cached, ok := c.boards[boardKey]
	if !ok {
		return nil, errors.New("board não está em cache")
	}
	snapshot := cloneColumns(cached)

	var card *Card
	for colIdx := range cached {
		for cardIdx := range cached[colIdx].Cards {
			if cached[colIdx].Cards[cardIdx].ID == cardID {
				found := cached[colIdx].Cards[cardIdx]
				cached[colIdx].Cards = append(cached[colIdx].Cards[:cardIdx], cached[colIdx].Cards[cardIdx+1:]...)
				card = &found
				break
			}
		}
		if card != nil {
			break
		}
	}
	if card == nil {
		return nil, errors.New("card não encontrado no board")
	}

	moved := false
	for colIdx := range cached {
		if cached[colIdx].StageSlug == toStage {
			card.StageSlug = toStage
			card.MovedAt = time.Now()
			cached[colIdx].Cards = append(cached[colIdx].Cards, *card)
			moved = true
			break
		}
	}
	if !moved {
		c.boards[boardKey] = snapshot
		return nil, errors.New("coluna de destino não existe no board")
	}
	c.boards[boardKey] = cached

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.boards[boardKey] = snapshot
	}, nil
}

func cloneColumns(columns []Column) []Column {
	result := make([]Column, len(columns))
	for idx, col := range columns {
		cards := make([]Card, len(col.Cards))
		copy(cards, col.Cards)
		col.Cards = cards
		result[idx] = col
	}
	return result
}
