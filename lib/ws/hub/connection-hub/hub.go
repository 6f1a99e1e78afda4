package connectionhub

import (
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"

	wsmodels "labo-isometeer-backend/models/ws"
)

type Provider interface {
	AddClient(userID string, conn *websocket.Conn)
	DeleteClient(userID string)
	SendMessage(msg wsmodels.ServerMessage)
	Broadcast(code, message string)
	SendClose(userID string)
	IsConnected(userID string) bool
}

var Instance Provider

func Init() {
	Instance = &impl{
		clients: map[string]clientSession{},
	}
}

type impl struct {
	mx      sync.RWMutex
	clients map[string]clientSession //map[userID]
}

func (i *impl) DeleteClient(userID string) {
	i.mx.Lock()
	defer i.mx.Unlock()
	sess, ok := i.clients[userID]
	if !ok {
		return
	}
	delete(i.clients, userID)
	sess.stop()
	close(sess.sendCh)
}

func (i *impl) AddClient(userID string, conn *websocket.Conn) {
	i.mx.Lock()
	defer i.mx.Unlock()
	oldSess, ok := i.clients[userID]
	if ok {
		oldSess.stop()
	}
	i.clients[userID] = newSession(conn)
}

func (i *impl) SendMessage(msg wsmodels.ServerMessage) {
	i.mx.RLock()
	defer i.mx.RUnlock()
	sess, ok := i.clients[msg.ToUserID]
	if ok {
		sess.sendCh <- msg
	}
}

// Broadcast notifica a todos los conectados; se usa para refrescar
// el tablero cuando cambia una OT o una asignación.
func (i *impl) Broadcast(code, message string) {
	i.mx.RLock()
	defer i.mx.RUnlock()
	now := time.Now().Format("02.01.2006 15:04:05")
	for _, sess := range i.clients {
		sess.sendCh <- wsmodels.ServerMessage{
			Time: now,
			Code: code,
			Msg:  message,
		}
	}
}

func (i *impl) SendClose(userID string) {
	i.mx.RLock()
	defer i.mx.RUnlock()
	sess, ok := i.clients[userID]
	if ok {
		sess.stop()
	}
}

func (i *impl) IsConnected(userID string) bool {
	i.mx.RLock()
	defer i.mx.RUnlock()
	sess, ok := i.clients[userID]
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}
