package workers

import (
	"context"
	"time"

	"talentos-backend/lib/board"
	baseworker "talentos-backend/lib/utils/base-worker"
)

const (
	boardJanitorFirstRunDelay = 15 * time.Minute
	boardJanitorRunInterval   = 15 * time.Minute
)

// boardJanitorWorker descarta periodicamente os boards em cache para que as
// leituras voltem ao banco e não fiquem servindo colunas antigas.
type boardJanitorWorker struct {
	base *baseworker.BaseImpl
}

func newBoardJanitorWorker() boardJanitorWorker {
	return boardJanitorWorker{
		base: baseworker.NewInstance("board-janitor-worker", boardJanitorFirstRunDelay, boardJanitorRunInterval),
	}
}

func (w boardJanitorWorker) start(ctx context.Context) {
	go w.base.Run(ctx, func(ctx context.Context) {
		removed := board.Instance.Clear()
		w.base.GetLogger().
			WithField("boards_removidos", removed).
			Info("cache de boards limpo")
	})
}
