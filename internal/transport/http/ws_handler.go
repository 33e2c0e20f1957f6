package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"knlang-arcade/internal/app"
	"knlang-arcade/internal/domain"
)

// WSHandler hosts one game session per websocket connection.
type WSHandler struct {
	quiz     *app.QuizService
	world    *domain.World
	sessions app.SessionRegistry
	upgrader websocket.Upgrader
}

func NewWSHandler(quiz *app.QuizService, world *domain.World, sessions app.SessionRegistry) *WSHandler {
	return &WSHandler{
		quiz:     quiz,
		world:    world,
		sessions: sessions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type linePayload struct {
	Text string `json:"text"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type sessionPayload struct {
	ID   string          `json:"id"`
	Game domain.GameKind `json:"game"`
}

type outputPayload struct {
	Text string `json:"text"`
}

type promptPayload struct {
	Label string `json:"label"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// toucher is implemented by registries that keep a liveness marker per session.
type toucher interface {
	Touch(ctx context.Context, id string) error
}

// ServeAdventure plays the text adventure over a websocket. The optional name query parameter names the hero.
func (h *WSHandler) ServeAdventure(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	h.serve(w, r, domain.GameAdventure, func(ctx context.Context, c *wsClient) (string, any, error) {
		session := app.NewAdventureSession(h.world, name, c, c)
		if err := session.Run(ctx); err != nil {
			return "", nil, err
		}
		return "summary", session.Summary(), nil
	})
}

// ServeQuiz plays one quiz round over a websocket.
func (h *WSHandler) ServeQuiz(w http.ResponseWriter, r *http.Request) {
	h.serve(w, r, domain.GameQuiz, func(ctx context.Context, c *wsClient) (string, any, error) {
		result, err := h.quiz.NewSession(c, c).Run(ctx)
		if err != nil {
			return "", nil, err
		}
		return "result", result, nil
	})
}

type gameFunc func(ctx context.Context, c *wsClient) (string, any, error)

func (h *WSHandler) serve(w http.ResponseWriter, r *http.Request, kind domain.GameKind, play gameFunc) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	id := uuid.NewString()
	h.sessions.Register(id, kind)
	defer h.sessions.Unregister(id)

	send := make(chan outboundMessage[any], 16)
	writerDone := make(chan struct{})
	inbound := make(chan inboundMessage)

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				cancel()
				// drain so the game never blocks on a dead connection
				for range send {
				}
				return
			}
		}
	}()

	go func() {
		defer close(inbound)
		for {
			var msg inboundMessage
			if err := conn.ReadJSON(&msg); err != nil {
				return
			}
			select {
			case inbound <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()

	client := &wsClient{id: id, send: send, inbound: inbound}
	if t, ok := h.sessions.(toucher); ok {
		client.touch = t.Touch
	}

	send <- outboundMessage[any]{Type: "session", Payload: sessionPayload{ID: id, Game: kind}}

	typ, payload, err := play(ctx, client)
	if err != nil {
		log.Printf("ws %s session %s failed: %v", kind, id, err)
		send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
	} else {
		send <- outboundMessage[any]{Type: typ, Payload: payload}
	}

	close(send)
	<-writerDone
	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "game over"))
}

// wsClient adapts a websocket connection to the prompt.Prompter and io.Writer a game session expects.
// Only the game goroutine uses it.
type wsClient struct {
	id      string
	send    chan<- outboundMessage[any]
	inbound <-chan inboundMessage
	touch   func(ctx context.Context, id string) error
}

func (c *wsClient) Write(p []byte) (int, error) {
	c.send <- outboundMessage[any]{Type: "output", Payload: outputPayload{Text: string(p)}}
	return len(p), nil
}

func (c *wsClient) ReadLine(ctx context.Context, label string) (string, error) {
	c.send <- outboundMessage[any]{Type: "prompt", Payload: promptPayload{Label: label}}
	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case msg, ok := <-c.inbound:
			if !ok {
				return "", domain.ErrInputClosed
			}
			if msg.Type != "line" {
				c.send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "unsupported message type"}}
				continue
			}
			var payload linePayload
			if err := json.Unmarshal(msg.Payload, &payload); err != nil {
				c.send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: "invalid line payload"}}
				continue
			}
			if c.touch != nil {
				if err := c.touch(ctx, c.id); err != nil {
					log.Printf("ws touch session %s: %v", c.id, err)
				}
			}
			return payload.Text, nil
		}
	}
}
