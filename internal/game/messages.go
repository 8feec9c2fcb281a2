package game

import (
	"encoding/json"

	"sketchparty/internal/logger"
)

// Client events.
const (
	EventRoomCreate = "room:create"
	EventRoomJoin   = "room:join"
	EventGameStart  = "game:start"
	EventDrawStart  = "draw:start"
	EventDrawMove   = "draw:move"
	EventDrawClear  = "draw:clear"
	EventGuessNew   = "guess:new"
)

// Server events.
const (
	EventRoomCreated  = "room:created"
	EventRoomJoined   = "room:joined"
	EventRoomState    = "room:state"
	EventGameState    = "game:state"
	EventGameBegin    = "game:begin"
	EventTimerTick    = "timer:tick"
	EventGuessCorrect = "guess:correct"
	EventChatNew      = "chat:new"
	EventErrorToast   = "error:toast"
)

type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

type CreateRoomRequest struct {
	Name string `json:"name"`
}

type JoinRoomRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type StartGameRequest struct {
	RoundsEach      int `json:"roundsEach"`
	SecondsPerRound int `json:"secondsPerRound"`
}

type GuessRequest struct {
	Text string `json:"text"`
}

type PlayerInfo struct {
	Id    string `json:"id"`
	Name  string `json:"name"`
	Score int    `json:"score"`
}

// StateSnapshot is the per-recipient view of a room. Word is only set when
// the recipient is the current drawer.
type StateSnapshot struct {
	Code        string       `json:"code"`
	Players     []PlayerInfo `json:"players"`
	Me          PlayerInfo   `json:"me"`
	DrawerId    string       `json:"drawerId,omitempty"`
	Word        *string      `json:"word"`
	MaskedWord  []string     `json:"maskedWord"`
	Round       int          `json:"round"`
	TotalRounds int          `json:"totalRounds"`
	TimeLeft    int          `json:"timeLeft"`
}

type GuessCorrectNotice struct {
	By   string `json:"by"`
	Word string `json:"word"`
}

func marshalEvent(eventType string, data any) []byte {
	raw, err := json.Marshal(data)
	if err != nil {
		logger.Criticalf("Failed to marshal %s payload: %v", eventType, err)
		return nil
	}
	bytes, err := json.Marshal(Envelope{Type: eventType, Data: raw})
	if err != nil {
		logger.Criticalf("Failed to marshal %s envelope: %v", eventType, err)
		return nil
	}
	return bytes
}
