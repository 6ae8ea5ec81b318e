// websocket/write_pump.go
package websocket

import (
	"time"

	"github.com/LilVoxy/department_summary/ETL/utils"
	"github.com/gorilla/websocket"
)

// writePump отвечает за отправку сообщений клиенту
func (c *Client) writePump(logger *utils.ETLLogger) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Socket.Close()
		close(c.done)
		logger.Debug("Завершение writePump для %s", c.Socket.RemoteAddr())
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Socket.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Канал закрыт: поток завершен
				c.Socket.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			// Каждое сообщение - отдельный кадр, чтобы клиент разбирал JSON по одному
			if err := c.Socket.WriteMessage(websocket.TextMessage, message); err != nil {
				logger.Debug("Ошибка отправки сообщения: %v", err)
				c.drain()
				return
			}
		case <-ticker.C:
			c.Socket.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Socket.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.drain()
				return
			}
		}
	}
}

// drain освобождает отправителей после обрыва соединения
func (c *Client) drain() {
	go func() {
		for range c.Send {
		}
	}()
}
