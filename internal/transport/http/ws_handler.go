package http

import (
	"encoding/json"
	"log"
	"net/http"

	"jeoparty-service/internal/app"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type WSHandler struct {
	service  *app.GameService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.GameService) *WSHandler {
	return &WSHandler{
		service: service,
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

type configurePayload struct {
	PlayerCount int      `json:"playerCount"`
	Names       []string `json:"names"`
	CategoryIDs []string `json:"categoryIds"`
}

type selectCellPayload struct {
	QuestionID string `json:"questionId"`
}

type chooseOptionPayload struct {
	Option string `json:"option"`
}

type connectedPayload struct {
	GameID string `json:"gameId"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades HTTP requests to websockets and wires them into the game
// session use cases. A client drives one game, identified by the gameId query
// parameter; omitting it starts a fresh game with a generated id.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("gameId")
	if gameID == "" {
		gameID = uuid.NewString()
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	updates, cancel, err := h.service.Subscribe(r.Context(), gameID)
	if err != nil {
		_ = conn.WriteJSON(outboundMessage[errorPayload]{Type: "error", Payload: errorPayload{Message: err.Error()}})
		return
	}
	defer cancel()
	defer h.service.Leave(r.Context(), gameID)

	send := make(chan outboundMessage[any], 32)
	closeSignals := make(chan struct{})
	writerDone := make(chan struct{})
	updatesDone := make(chan struct{})

	// Single writer goroutine; gorilla connections do not allow concurrent writes.
	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	go func() {
		defer close(updatesDone)
		for {
			select {
			case update, ok := <-updates:
				if !ok {
					return
				}
				for _, event := range update.Events {
					select {
					case send <- outboundMessage[any]{Type: "event", Payload: event}:
					case <-closeSignals:
						return
					}
				}
				select {
				case send <- outboundMessage[any]{Type: "session", Payload: update.Session}:
				case <-closeSignals:
					return
				}
			case <-closeSignals:
				return
			}
		}
	}()

	send <- outboundMessage[any]{Type: "connected", Payload: connectedPayload{GameID: gameID}}

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		if err := h.dispatch(r, gameID, inbound, send); err != nil {
			send <- outboundMessage[any]{Type: "error", Payload: errorPayload{Message: err.Error()}}
		}
	}

	close(closeSignals)
	<-updatesDone
	close(send)
	<-writerDone
}

func (h *WSHandler) dispatch(r *http.Request, gameID string, inbound inboundMessage, send chan outboundMessage[any]) error {
	ctx := r.Context()
	switch inbound.Type {
	case "categories":
		summaries, err := h.service.Categories(ctx)
		if err != nil {
			return err
		}
		send <- outboundMessage[any]{Type: "categories", Payload: summaries}
		return nil
	case "configure":
		var payload configurePayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return errInvalidPayload
		}
		return h.service.Configure(ctx, gameID, payload.PlayerCount, payload.Names, payload.CategoryIDs)
	case "start":
		return h.service.Start(ctx, gameID)
	case "selectCell":
		var payload selectCellPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return errInvalidPayload
		}
		return h.service.SelectCell(ctx, gameID, payload.QuestionID)
	case "chooseOption":
		var payload chooseOptionPayload
		if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
			return errInvalidPayload
		}
		return h.service.ChooseOption(ctx, gameID, payload.Option)
	case "pass":
		return h.service.PassOrTimeout(ctx, gameID)
	case "finish":
		return h.service.FinishQuestion(ctx, gameID)
	case "reset":
		return h.service.Reset(ctx, gameID)
	default:
		return errUnsupportedType
	}
}
