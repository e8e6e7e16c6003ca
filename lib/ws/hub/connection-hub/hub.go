package connectionhub

import (
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"

	"talentos-backend/db"
	notificacaostore "talentos-backend/lib/notificacao/store"
	wsmodels "talentos-backend/models/ws"
)

type Provider interface {
	AddClient(userID string, conn *websocket.Conn)
	DeleteClient(userID string)
	SendMessage(msg wsmodels.ServerMessage)
	SendClose(userID string)
	IsConnected(userID string) bool
}

var Instance Provider

func Init() {
	Instance = &impl{
		clients: map[string]clientSession{},
		store:   notificacaostore.NewInstance(db.DB),
	}
}

type impl struct {
	mu      sync.RWMutex
	clients map[string]clientSession //map[userID]
	store   notificacaostore.Provider
}

func (i *impl) DeleteClient(userID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[userID]
	if !ok {
		return
	}
	delete(i.clients, userID)
	sess.stop()
}

func (i *impl) AddClient(userID string, conn *websocket.Conn) {
	i.mu.Lock()
	oldSess, ok := i.clients[userID]
	if ok {
		oldSess.stop()
	}
	i.clients[userID] = newSession(conn)
	i.mu.Unlock()
	go i.sendPendingNotifications(userID)
}

func (i *impl) SendMessage(msg wsmodels.ServerMessage) {
	i.mu.RLock()
	sess, ok := i.clients[msg.ToUserID]
	i.mu.RUnlock()
	if !ok {
		return
	}
	select {
	case sess.sendCh <- msg:
	default:
		// sessão parada ou saturada; notificações persistem não lidas e
		// reaparecem no próximo connect
	}
}

func (i *impl) SendClose(userID string) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	sess, ok := i.clients[userID]
	if ok {
		sess.stop()
	}
}

func (i *impl) IsConnected(userID string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()
	sess, ok := i.clients[userID]
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}

// sendPendingNotifications reenvia as notificações não lidas assim que o
// usuário conecta; elas seguem não lidas até o usuário marcar.
func (i *impl) sendPendingNotifications(userID string) {
	logger := log.WithField("user_id", userID)
	list, err := i.store.ListNaoLidas(userID)
	if err != nil {
		logger.WithError(err).Error("erro ao obter notificações pendentes")
		return
	}
	for _, item := range list {
		if !i.IsConnected(userID) {
			return
		}
		msg := wsmodels.ServerMessage{
			ToUserID: userID,
			Type:     wsmodels.MsgTypeNotificacao,
			SentAt:   time.Now(),
			Data: wsmodels.NotificacaoData{
				ID:       item.ID,
				Titulo:   item.Titulo,
				Mensagem: item.Mensagem,
				VagaID:   item.VagaID,
			},
		}
		i.SendMessage(msg)
	}
}
