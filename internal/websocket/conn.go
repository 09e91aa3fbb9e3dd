package websocket

// Conn is the part of a websocket connection a chat session needs.
// *github.com/gofiber/websocket/v2.Conn satisfies it.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	Close() error
}

type readLimiter interface {
	SetReadLimit(limit int64)
}
