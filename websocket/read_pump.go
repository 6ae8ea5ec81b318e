// websocket/read_pump.go
package websocket

import (
	"time"

	"github.com/LilVoxy/department_summary/ETL/utils"
	"github.com/gorilla/websocket"
)

// readPump читает управляющие кадры и вызывает onClose при отключении клиента
func (c *Client) readPump(logger *utils.ETLLogger, onClose func()) {
	defer onClose()

	// Устанавливаем параметры подключения
	c.Socket.SetReadLimit(maxMessageSize)
	c.Socket.SetReadDeadline(time.Now().Add(pongWait))
	c.Socket.SetPongHandler(func(string) error {
		c.Socket.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		// Содержимое входящих сообщений не используется
		if _, _, err := c.Socket.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("Клиент отключился: %v", err)
			}
			return
		}
	}
}
