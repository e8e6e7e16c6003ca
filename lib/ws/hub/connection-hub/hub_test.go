package connectionhub

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/stretchr/testify/require"

	apimodels "talentos-backend/models/api"
	dbmodels "talentos-backend/models/db"
	wsmodels "talentos-backend/models/ws"
)

type emptyNotificacaoStore struct{}

func (emptyNotificacaoStore) Create(rec dbmodels.Notificacao) (string, error) { return "", nil }
func (emptyNotificacaoStore) List(userID string, filter dbmodels.NotificacaoFilter, pagination apimodels.Pagination) ([]dbmodels.Notificacao, error) {
	return nil, nil
}
func (emptyNotificacaoStore) ListCount(userID string, filter dbmodels.NotificacaoFilter) (int64, error) {
	return 0, nil
}
func (emptyNotificacaoStore) ListNaoLidas(userID string) ([]dbmodels.Notificacao, error) {
	return nil, nil
}
func (emptyNotificacaoStore) MarkLida(userID, id string) error   { return nil }
func (emptyNotificacaoStore) MarkTodasLidas(userID string) error { return nil }

func TestHubConcurrentAccess(t *testing.T) {
	hub := &impl{
		clients: map[string]clientSession{},
		store:   emptyNotificacaoStore{},
	}

	t.Run(`parallel connect, push and disconnect check`, func(t *testing.T) {
		var wg sync.WaitGroup
		for n := 0; n < 50; n++ {
			userID := fmt.Sprintf("user-%v", n%10)
			wg.Add(1)
			go func() {
				defer wg.Done()
				hub.AddClient(userID, &websocket.Conn{})
				hub.SendMessage(wsmodels.ServerMessage{
					ToUserID: userID,
					Type:     wsmodels.MsgTypeNotificacao,
					SentAt:   time.Now(),
				})
				hub.IsConnected(userID)
				hub.DeleteClient(userID)
			}()
		}
		wg.Wait()
	})

	t.Run(`push after disconnect does not panic check`, func(t *testing.T) {
		hub.AddClient("user-solo", &websocket.Conn{})
		hub.DeleteClient("user-solo")
		require.False(t, hub.IsConnected("user-solo"))
		require.NotPanics(t, func() {
			hub.SendMessage(wsmodels.ServerMessage{ToUserID: "user-solo", Type: wsmodels.MsgTypeNotificacao})
			hub.SendMessage(wsmodels.ServerMessage{ToUserID: "user-solo", Type: wsmodels.MsgTypeNotificacao})
		})
	})

	t.Run(`reconnect replaces the previous session check`, func(t *testing.T) {
		hub.AddClient("user-re", &websocket.Conn{})
		hub.AddClient("user-re", &websocket.Conn{})
		require.False(t, hub.IsConnected("user-re")) // conn sem transporte conta como desconectado
		hub.DeleteClient("user-re")
	})
}
