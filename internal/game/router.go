package game

import (
	"encoding/json"
	"errors"

	"sketchparty/internal/logger"
)

// SessionRouter ties inbound connections to rooms. Each connection gets a
// session holding its current (room, player) pair explicitly; every message
// is dispatched against that pair rather than anything captured in a
// long-lived closure.
type SessionRouter struct {
	registry *Registry
}

func NewSessionRouter(registry *Registry) *SessionRouter {
	return &SessionRouter{registry: registry}
}

type session struct {
	conn     NetworkSession
	registry *Registry
	room     *Room
	player   *Player
}

// HandleConnection runs the read loop for one connection and blocks until
// it drops. A read error is the disconnect signal and drives Leave.
func (sr *SessionRouter) HandleConnection(conn NetworkSession) {
	s := &session{conn: conn, registry: sr.registry}

	for {
		data, err := s.conn.Read()
		if err != nil {
			break
		}

		var envelope Envelope
		if err := json.Unmarshal(data, &envelope); err != nil {
			logger.Debugf("[Session] Dropping malformed message: %v", err)
			continue
		}
		s.dispatch(envelope, data)
	}

	if s.room != nil {
		s.room.Leave(s.player)
		s.room = nil
	} else if s.player != nil {
		s.player.Release()
	}
	s.conn.Close("")
}

func (s *session) dispatch(envelope Envelope, raw []byte) {
	switch envelope.Type {
	case EventRoomCreate:
		var req CreateRoomRequest
		if err := json.Unmarshal(envelope.Data, &req); err != nil {
			return
		}
		if err := s.handleCreate(req); err != nil {
			s.toastError(err)
		}

	case EventRoomJoin:
		var req JoinRoomRequest
		if err := json.Unmarshal(envelope.Data, &req); err != nil {
			return
		}
		if err := s.handleJoin(req); err != nil {
			s.toastError(err)
		}

	case EventGameStart:
		var req StartGameRequest
		if err := json.Unmarshal(envelope.Data, &req); err != nil {
			return
		}
		if s.room == nil {
			s.toast("Join a room first")
			return
		}
		if err := s.room.Start(req.RoundsEach, req.SecondsPerRound); err != nil {
			s.toastError(err)
		}

	case EventDrawStart, EventDrawMove, EventDrawClear:
		// Drawing payloads are opaque; forward the envelope verbatim.
		if s.room != nil {
			s.room.Relay(s.player, raw)
		}

	case EventGuessNew:
		var req GuessRequest
		if err := json.Unmarshal(envelope.Data, &req); err != nil {
			return
		}
		s.handleGuess(req.Text)

	default:
		logger.Debugf("[Session] Unknown event type %q", envelope.Type)
	}
}

func (s *session) handleCreate(req CreateRoomRequest) error {
	if s.room != nil {
		return ErrAlreadyInRoom
	}
	s.ensurePlayer(req.Name)
	room := s.registry.Create()
	if err := room.AddPlayer(s.player, EventRoomCreated); err != nil {
		return err
	}
	s.room = room
	return nil
}

func (s *session) handleJoin(req JoinRoomRequest) error {
	if s.room != nil {
		return ErrAlreadyInRoom
	}
	room, ok := s.registry.Get(req.Code)
	if !ok {
		return ErrRoomNotFound
	}
	s.ensurePlayer(req.Name)
	// The room may have emptied and deregistered between Get and here;
	// AddPlayer refuses to strand us in it.
	if err := room.AddPlayer(s.player, EventRoomJoined); err != nil {
		return err
	}
	s.room = room
	return nil
}

func (s *session) handleGuess(text string) {
	if s.room == nil {
		return
	}
	if !s.player.rateLimiter.Allow() {
		s.toast("Slow down")
		return
	}
	if err := s.room.Guess(s.player, text); err != nil {
		s.toastError(err)
	}
}

// ensurePlayer creates the connection's player identity on first use, so a
// failed join can be retried without leaking identities.
func (s *session) ensurePlayer(name string) {
	if s.player != nil {
		return
	}
	s.player = NewPlayer(name, s.conn)
	go s.player.WritePump()
}

func (s *session) toastError(err error) {
	switch {
	case errors.Is(err, ErrRoomNotFound):
		s.toast("Room not found")
	case errors.Is(err, ErrAlreadyInRoom):
		s.toast("Already in a room")
	case errors.Is(err, ErrInvalidStart):
		s.toast("Cannot start game")
	case errors.Is(err, ErrDrawerGuess):
		s.toast("The drawer cannot guess")
	default:
		s.toast("Something went wrong")
	}
}

func (s *session) toast(msg string) {
	if s.player != nil {
		s.player.send(marshalEvent(EventErrorToast, msg))
		return
	}
	if data := marshalEvent(EventErrorToast, msg); data != nil {
		_ = s.conn.Write(data)
	}
}
