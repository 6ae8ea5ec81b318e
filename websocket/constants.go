// websocket/constants.go
package websocket

import "time"

// Тайминги потока агрегации
const (
	// Запись одного кадра должна уложиться в этот срок
	writeWait = 10 * time.Second

	// Без pong от клиента соединение считается потерянным
	pongWait = 60 * time.Second

	// Ping отправляется чаще, чем истекает pongWait
	pingPeriod = pongWait * 9 / 10
)

// Ограничения соединения
const (
	// Входящие кадры только управляющие, поэтому лимит маленький
	maxMessageSize = 4 << 10

	// Очередь исходящих сообщений: по одному на запись плюс итог
	sendBufferSize = 256
)
