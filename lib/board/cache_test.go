package board

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testBoard() []Column {
	return []Column{
		{StageSlug: "banco-talentos", Nome: "Banco de Talentos", Cards: []Card{
			{ID: "cand-1", Titulo: "Maria Lima", StageSlug: "banco-talentos"},
			{ID: "cand-2", Titulo: "João Prado", StageSlug: "banco-talentos"},
		}},
		{StageSlug: "triagem", Nome: "Triagem", Cards: []Card{}},
	}
}

func findCards(columns []Column, stageSlug string) []Card {
	for _, col := range columns {
		if col.StageSlug == stageSlug {
			return col.Cards
		}
	}
	return nil
}

func TestCache(t *testing.T) {
	t.Run(`get on empty cache check`, func(t *testing.T) {
		c := NewCache()
		_, ok := c.Get("vaga-1")
		require.Equal(t, false, ok)
	})

	t.Run(`set and get returns copy check`, func(t *testing.T) {
		c := NewCache()
		c.Set("vaga-1", testBoard())
		columns, ok := c.Get("vaga-1")
		require.Equal(t, true, ok)
		columns[0].Cards[0].Titulo = "alterado fora do cache"
		again, _ := c.Get("vaga-1")
		require.Equal(t, "Maria Lima", again[0].Cards[0].Titulo)
	})

	t.Run(`invalidate check`, func(t *testing.T) {
		c := NewCache()
		c.Set("vaga-1", testBoard())
		c.Invalidate("vaga-1")
		_, ok := c.Get("vaga-1")
		require.Equal(t, false, ok)
	})

	t.Run(`optimistic move check`, func(t *testing.T) {
		c := NewCache()
		c.Set("vaga-1", testBoard())
		rollback, err := c.ApplyMove("vaga-1", "cand-1", "triagem")
		require.Nil(t, err)
		require.NotNil(t, rollback)
		columns, _ := c.Get("vaga-1")
		require.Len(t, findCards(columns, "banco-talentos"), 1)
		require.Len(t, findCards(columns, "triagem"), 1)
		require.Equal(t, "triagem", findCards(columns, "triagem")[0].StageSlug)
	})

	t.Run(`rollback restores previous state check`, func(t *testing.T) {
		c := NewCache()
		c.Set("vaga-1", testBoard())
		rollback, err := c.ApplyMove("vaga-1", "cand-1", "triagem")
		require.Nil(t, err)
		rollback()
		columns, _ := c.Get("vaga-1")
		require.Len(t, findCards(columns, "banco-talentos"), 2)
		require.Len(t, findCards(columns, "triagem"), 0)
		require.Equal(t, "banco-talentos", findCards(columns, "banco-talentos")[0].StageSlug)
	})

	t.Run(`move to unknown column restores state check`, func(t *testing.T) {
		c := NewCache()
		c.Set("vaga-1", testBoard())
		_, err := c.ApplyMove("vaga-1", "cand-1", "coluna-inexistente")
		require.NotNil(t, err)
		columns, _ := c.Get("vaga-1")
		require.Len(t, findCards(columns, "banco-talentos"), 2)
	})

	t.Run(`move of unknown card check`, func(t *testing.T) {
		c := NewCache()
		c.Set("vaga-1", testBoard())
		_, err := c.ApplyMove("vaga-1", "cand-99", "triagem")
		require.NotNil(t, err)
	})
}
