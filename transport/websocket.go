package transport

import (
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lab1702/waypointwars/world"
)

const (
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
	writeWait  = 10 * time.Second
	sendBuffer = 256
)

// isValidOrigin rejects cross-origin browser connections while allowing
// non-browser clients (no Origin header) and localhost development.
func isValidOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	originURL, err := url.Parse(origin)
	if err != nil {
		log.Printf("invalid origin url: %s", origin)
		return false
	}

	if r.Host == originURL.Host {
		return true
	}

	if strings.HasPrefix(originURL.Host, "localhost:") ||
		strings.HasPrefix(originURL.Host, "127.0.0.1:") ||
		originURL.Host == "localhost" ||
		originURL.Host == "127.0.0.1" {
		return true
	}

	log.Printf("rejected websocket connection from origin: %s", origin)
	return false
}

var upgrader = websocket.Upgrader{
	CheckOrigin:       isValidOrigin,
	EnableCompression: true,
}

// wsConn adapts one gorilla websocket connection to Conn. Send is
// non-blocking: a full buffer reports ChannelSendFailure to the caller
// rather than backpressuring the simulation goroutine.
type wsConn struct {
	token world.PlayerId
	ws    *websocket.Conn
	send  chan []byte
}

func (c *wsConn) Token() world.PlayerId { return c.token }

func (c *wsConn) Send(payload []byte) error {
	select {
	case c.send <- payload:
		return nil
	default:
		return fmt.Errorf("send buffer full for player %d", c.token)
	}
}

// Listener upgrades HTTP requests to websocket connections and emits Events
// onto the channel the caller supplied, one per Open/Message/Close. It is
// the one concrete transport this repository ships; the match package only
// ever sees the Conn/Event types in conn.go.
type Listener struct {
	events    chan<- Event
	nextToken int64
}

// NewListener returns a Listener that reports connection activity on
// events. events should be buffered enough to absorb bursts; the listener
// never drops an Open or Close event (only Send on the outbound side is
// best-effort).
func NewListener(events chan<- Event) *Listener {
	return &Listener{events: events}
}

// HandleWebSocket is an http.HandlerFunc-shaped method suitable for
// mux.HandleFunc("/ws", listener.HandleWebSocket).
func (l *Listener) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	token := world.PlayerId(atomic.AddInt64(&l.nextToken, 1) - 1)
	conn := &wsConn{token: token, ws: ws, send: make(chan []byte, sendBuffer)}

	l.events <- Event{Kind: Open, Token: token, Conn: conn}

	go conn.writePump()
	go l.readPump(conn)
}

func (l *Listener) readPump(c *wsConn) {
	defer func() {
		l.events <- Event{Kind: Close, Token: c.token}
		c.ws.Close()
	}()

	c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		c.ws.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, payload, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("websocket read error for player %d: %v", c.token, err)
			}
			return
		}
		l.events <- Event{Kind: Message, Token: c.token, Payload: payload}
	}
}

func (c *wsConn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
