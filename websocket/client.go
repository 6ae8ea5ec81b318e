// websocket/client.go
package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
)

// Client - одно соединение потока агрегации
type Client struct {
	Socket *websocket.Conn
	Send   chan []byte
	done   chan struct{}
}

func newClient(conn *websocket.Conn) *Client {
	return &Client{
		Socket: conn,
		Send:   make(chan []byte, sendBufferSize),
		done:   make(chan struct{}),
	}
}

// send кодирует сообщение и ставит его в очередь отправки.
// Возвращает ошибку, если клиент отключился.
func (c *Client) send(ctx context.Context, msg StreamMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("ошибка кодирования сообщения: %w", err)
	}

	select {
	case c.Send <- data:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// finish закрывает очередь и ждет, пока writePump отправит остаток
func (c *Client) finish() {
	close(c.Send)
	<-c.done
}
