package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/DoyleJ11/paint-duel-backend/internal/engine"
	"github.com/DoyleJ11/paint-duel-backend/internal/hub"
	"github.com/DoyleJ11/paint-duel-backend/internal/types"
)

func Handler(h *hub.Hub, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			// In dev ONLY, you can loosen origin checks:
			// OriginPatterns: []string{"http://localhost:*", "http://127.0.0.1:*"},
		})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "bye")

		client := &hub.Client{
			ID:     uuid.NewString(),
			Outbox: make(chan types.ServerMessage, 16),
		}
		h.Inbox() <- hub.Connect{C: client}
		defer func() { h.Inbox() <- hub.Disconnect{C: client} }()

		// Writer goroutine: drains the outbox until the hub closes it.
		writeCtx, writeCancel := context.WithCancel(r.Context())
		defer writeCancel()
		go func() {
			for m := range client.Outbox {
				payload, err := json.Marshal(m)
				if err != nil {
					log.Warn("marshal failed", zap.String("clientId", client.ID), zap.Error(err))
					continue
				}
				ctx, cancel := context.WithTimeout(writeCtx, 3*time.Second)
				_ = conn.Write(ctx, websocket.MessageText, payload)
				cancel()
			}
		}()

		// Reader loop. No read deadline: no phase of the protocol has a
		// timeout, an idle painter stays connected.
		for {
			_, data, err := conn.Read(r.Context())
			if err != nil {
				// Clean close, going-away, or a broken pipe all end the
				// session the same way; hub.Disconnect in the defer.
				return
			}

			var cm types.ClientMessage
			if err := json.Unmarshal(data, &cm); err != nil {
				writeError(r.Context(), conn, "malformed message")
				continue
			}

			msg, ok := toHubMsg(client, cm)
			if !ok {
				writeError(r.Context(), conn, "unknown type")
				continue
			}
			h.Inbox() <- msg
		}
	}
}

// toHubMsg translates a wire envelope into a hub message. The envelope's
// room field is ignored: the hub resolves the sender's room from its own
// binding, so a client can't relay into a room it never joined.
func toHubMsg(c *hub.Client, m types.ClientMessage) (hub.Msg, bool) {
	switch m.Type {
	case "create_room":
		mode, ok := engine.ParseMode(m.Mode)
		if !ok {
			return nil, false
		}
		return hub.CreateRoom{C: c, Mode: mode}, true
	case "join_room":
		return hub.JoinRoom{C: c, Code: m.Code}, true
	case "player_move":
		return hub.PlayerMove{C: c, Position: m.Position, Rotation: m.Rotation}, true
	case "player_paint":
		return hub.PlayerPaint{C: c, Position: m.Position, Color: m.Color}, true
	case "start_round", "round_finished", "next_round":
		// Older clients sent next_round, newer ones round_finished; all
		// three advance the round.
		return hub.NextRound{C: c}, true
	case "guess_word":
		return hub.GuessWord{C: c, Guess: m.Guess, Correct: m.Correct}, true
	case "end_match":
		return hub.EndMatch{C: c}, true
	default:
		return nil, false
	}
}

func writeError(ctx context.Context, conn *websocket.Conn, msg string) {
	payload, _ := json.Marshal(types.ServerMessage{Type: "error", Msg: msg})
	_ = conn.Write(ctx, websocket.MessageText, payload)
}
