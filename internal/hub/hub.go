package hub

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/DoyleJ11/paint-duel-backend/internal/code"
	"github.com/DoyleJ11/paint-duel-backend/internal/engine"
	"github.com/DoyleJ11/paint-duel-backend/internal/types"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomFull     = errors.New("room full")
)

// Client is the hub's handle to one websocket connection. The transport
// layer fills ID and Outbox; the binding fields below are owned and
// mutated only by the hub loop.
type Client struct {
	ID     string
	Outbox chan types.ServerMessage

	roomCode string
	isHost   bool
	gone     bool
}

type Msg interface{ isHubMsg() }

type Connect struct{ C *Client }

type Disconnect struct{ C *Client }

type CreateRoom struct {
	C    *Client
	Mode engine.Mode
}

type JoinRoom struct {
	C    *Client
	Code string
}

type PlayerMove struct {
	C        *Client
	Position []byte
	Rotation []byte
}

type PlayerPaint struct {
	C        *Client
	Position []byte
	Color    []byte
}

type NextRound struct{ C *Client }

type GuessWord struct {
	C       *Client
	Guess   string
	Correct bool
}

type EndMatch struct{ C *Client }

type GetStats struct{ Reply chan Stats }

type Shutdown struct{}

func (Connect) isHubMsg() {}
func (Disconnect) isHubMsg() {}
func (CreateRoom) isHubMsg() {}
func (JoinRoom) isHubMsg() {}
func (PlayerMove) isHubMsg() {}
func (PlayerPaint) isHubMsg() {}
func (NextRound) isHubMsg() {}
func (GuessWord) isHubMsg() {}
func (EndMatch) isHubMsg() {}
func (GetStats) isHubMsg() {}
func (Shutdown) isHubMsg() {}

type Stats struct {
	Rooms       int
	Connections int
}

type room struct {
	code      string
	mode      engine.Mode
	createdAt time.Time
	players   []*Client // host first, joiner second
	draw      engine.State
}

// Hub owns the room registry and every connection binding. One goroutine
// processes each inbound message to completion before the next, so room
// state needs no locks.
type Hub struct {
	inbox    chan Msg
	rooms    map[string]*room
	conns    map[string]*Client
	pickWord func() string
	log      *zap.Logger
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewHub(parent context.Context, log *zap.Logger) *Hub {
	ctx, cancel := context.WithCancel(parent)
	h := &Hub{
		inbox:    make(chan Msg, 64),
		rooms:    make(map[string]*room),
		conns:    make(map[string]*Client),
		pickWord: engine.RandomWord,
		log:      log,
		ctx:      ctx,
		cancel:   cancel,
	}
	go h.loop()
	return h
}

func (h *Hub) Inbox() chan<- Msg { return h.inbox }

func (h *Hub) loop() {
	for {
		select {
		case <-h.ctx.Done():
			h.shutdown()
			return

		case m := <-h.inbox:
			switch msg := m.(type) {
			case Connect:
				h.conns[msg.C.ID] = msg.C
				h.log.Info("client connected", zap.String("clientId", msg.C.ID))

			case Disconnect:
				h.disconnect(msg.C)

			case CreateRoom:
				h.createRoom(msg.C, msg.Mode)

			case JoinRoom:
				h.joinRoom(msg.C, msg.Code)

			case PlayerMove:
				h.relay(msg.C, types.ServerMessage{
					Type:     "opponent_move",
					Position: msg.Position,
					Rotation: msg.Rotation,
				})

			case PlayerPaint:
				h.relay(msg.C, types.ServerMessage{
					Type:     "opponent_paint",
					Position: msg.Position,
					Color:    msg.Color,
				})

			case NextRound:
				h.nextRound(msg.C)

			case GuessWord:
				h.guessWord(msg.C, msg.Correct)

			case EndMatch:
				h.endMatch(msg.C)

			case GetStats:
				msg.Reply <- Stats{Rooms: len(h.rooms), Connections: len(h.conns)}

			case Shutdown:
				h.shutdown()
				return
			}
		}
	}
}

func (h *Hub) shutdown() {
	for id, c := range h.conns {
		c.gone = true
		close(c.Outbox)
		delete(h.conns, id)
	}
	clear(h.rooms)
	h.cancel()
}

func (h *Hub) createRoom(c *Client, mode engine.Mode) {
	if c.gone {
		return
	}
	if c.roomCode != "" {
		h.sendError(c, "already in a room")
		return
	}

	var roomCode string
	for {
		rc, err := code.Generate()
		if err != nil {
			h.sendError(c, "failed to generate code")
			return
		}
		if _, taken := h.rooms[rc]; !taken {
			roomCode = rc
			break
		}
		h.log.Warn("room code collision, regenerating", zap.String("code", rc))
	}

	h.rooms[roomCode] = &room{
		code:      roomCode,
		mode:      mode,
		createdAt: time.Now(),
		players:   []*Client{c},
		draw:      engine.NewState(),
	}
	c.roomCode = roomCode
	c.isHost = true

	h.send(c, types.ServerMessage{Type: "room_created", Code: roomCode, Mode: string(mode)})
	h.log.Info("room created",
		zap.String("code", roomCode),
		zap.String("mode", string(mode)),
		zap.String("clientId", c.ID))
}

func (h *Hub) joinRoom(c *Client, roomCode string) {
	if c.gone {
		return
	}
	if c.roomCode != "" {
		h.sendError(c, "already in a room")
		return
	}
	r := h.rooms[roomCode]
	if r == nil {
		h.sendError(c, ErrRoomNotFound.Error())
		return
	}
	if len(r.players) >= 2 {
		h.sendError(c, ErrRoomFull.Error())
		return
	}

	r.players = append(r.players, c)
	c.roomCode = r.code
	c.isHost = false
	h.log.Info("client joined room",
		zap.String("code", r.code),
		zap.String("mode", string(r.mode)),
		zap.String("clientId", c.ID))

	// Join-completion: the paint mode just starts, the guessing mode also
	// begins round 1.
	if r.mode == engine.ModeDraw {
		r.draw = engine.NextRound(r.draw, h.pickWord)
		h.broadcastRound(r, "game_start", true)
	} else {
		for _, p := range r.players {
			h.send(p, types.ServerMessage{Type: "game_start", Mode: string(r.mode)})
		}
	}
}

func (h *Hub) disconnect(c *Client) {
	if c.gone {
		return
	}
	c.gone = true
	delete(h.conns, c.ID)
	close(c.Outbox)
	h.log.Info("client disconnected", zap.String("clientId", c.ID))

	if c.roomCode == "" {
		return
	}
	r := h.rooms[c.roomCode]
	c.roomCode = ""
	if r == nil {
		return
	}

	for i, p := range r.players {
		if p == c {
			r.players = append(r.players[:i], r.players[i+1:]...)
			break
		}
	}
	if len(r.players) == 0 {
		delete(h.rooms, r.code)
		h.log.Info("room deleted", zap.String("code", r.code))
		return
	}
	for _, p := range r.players {
		h.send(p, types.ServerMessage{Type: "opponent_disconnected"})
	}
}

func (h *Hub) nextRound(c *Client) {
	r := h.roomOf(c)
	// Round advancement only applies once the match has begun; before the
	// second player arrives the room is still waiting.
	if r == nil || r.mode != engine.ModeDraw || !r.draw.Started() {
		return
	}
	r.draw = engine.NextRound(r.draw, h.pickWord)
	h.broadcastRound(r, "round_changed", false)
	h.log.Info("round advanced",
		zap.String("code", r.code),
		zap.Int("round", r.draw.Round),
		zap.Bool("drawerIsHost", engine.DrawerIsHost(r.draw.Round)))
}

func (h *Hub) guessWord(c *Client, correct bool) {
	r := h.roomOf(c)
	if r == nil || r.mode != engine.ModeDraw || !r.draw.Started() {
		return
	}
	r.draw = engine.RecordGuess(r.draw, c.isHost, correct)
	guesserWon := correct && engine.RoleOf(r.draw.Round, c.isHost) == engine.RoleGuesser
	hs, js := r.draw.HostScore, r.draw.JoinScore
	for _, p := range r.players {
		h.send(p, types.ServerMessage{
			Type:       "round_ended",
			GuesserWon: &guesserWon,
			HostScore:  &hs,
			JoinScore:  &js,
		})
	}
}

func (h *Hub) endMatch(c *Client) {
	r := h.roomOf(c)
	if r == nil || r.mode != engine.ModeDraw {
		return
	}
	hs, js := r.draw.HostScore, r.draw.JoinScore
	for _, p := range r.players {
		h.send(p, types.ServerMessage{Type: "match_ended", HostScore: &hs, JoinScore: &js})
	}
	h.log.Info("match ended",
		zap.String("code", r.code),
		zap.Int("hostScore", hs),
		zap.Int("joinScore", js))
}

// broadcastRound sends the current round info to both players. Only the
// drawer's copy carries the secret word; the guesser's omits the field
// entirely.
func (h *Hub) broadcastRound(r *room, msgType string, withMode bool) {
	drawerIsHost := engine.DrawerIsHost(r.draw.Round)
	for _, p := range r.players {
		m := types.ServerMessage{
			Type:         msgType,
			Round:        r.draw.Round,
			DrawerIsHost: &drawerIsHost,
		}
		if withMode {
			m.Mode = string(r.mode)
		}
		if engine.RoleOf(r.draw.Round, p.isHost) == engine.RoleDrawer {
			m.Word = r.draw.Word
		}
		h.send(p, m)
	}
}

// relay forwards a gameplay payload to every other player in the sender's
// room. A gameplay event from an unbound connection has no room and is
// dropped.
func (h *Hub) relay(c *Client, m types.ServerMessage) {
	r := h.roomOf(c)
	if r == nil {
		return
	}
	for _, p := range r.players {
		if p == c {
			continue
		}
		h.send(p, m)
	}
}

func (h *Hub) roomOf(c *Client) *room {
	if c.gone || c.roomCode == "" {
		return nil
	}
	return h.rooms[c.roomCode]
}

// send is at-most-once, best-effort: a departed client or a full outbox is
// skipped, never queued or retried.
func (h *Hub) send(c *Client, m types.ServerMessage) {
	if c.gone {
		return
	}
	select {
	case c.Outbox <- m:
	default:
	}
}

func (h *Hub) sendError(c *Client, msg string) {
	h.send(c, types.ServerMessage{Type: "error", Msg: msg})
}
