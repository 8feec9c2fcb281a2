package game

import (
	"fmt"
	"strings"
	"sync"

	"github.com/samber/lo"

	"sketchparty/internal/logger"
)

type WordProvider interface {
	Pick() (word string, masked []string)
}

// RoomParent owns the room table. A room asks to be removed once its last
// player is gone, passing itself so the parent can verify it still owns
// the registration for that code.
type RoomParent interface {
	RemoveRoom(room *Room)
}

const defaultTotalRounds = 3

// Room is one isolated game. Every transition runs under r.mu, including
// snapshot fan-out; player sends are buffered and never block, so the lock
// is never held across a suspension point. Timer callbacks re-enter through
// handleTick/handleTimeout and must carry the turn index they were
// scheduled for.
type Room struct {
	mu     sync.Mutex
	code   string
	parent RoomParent
	words  WordProvider

	players []*Player
	started bool

	// destroyed is set when the last player leaves; the room is gone from
	// the registry at that point and a racing join that still holds a
	// stale reference must be turned away.
	destroyed bool

	// generation counts game starts, so timer callbacks from a previous
	// game can never match a turn index of the current one.
	generation int

	round           int
	totalRounds     int
	secondsPerRound int

	// turnIndex is a monotonic counter over the whole game, never reset.
	// order holds player ids, one roster permutation per round; entries of
	// departed players are skipped at consumption time.
	turnIndex int
	order     []string

	drawerID   string
	word       string
	maskedWord []string
	timeLeft   int

	// At most one live timer per room. startTurnTimer cancels any previous
	// one before arming the next.
	timer *roundTimer
}

func NewRoom(code string, parent RoomParent, words WordProvider) *Room {
	return &Room{
		code:        code,
		parent:      parent,
		words:       words,
		round:       1,
		totalRounds: defaultTotalRounds,
	}
}

func (r *Room) Code() string {
	return r.code
}

// AddPlayer appends a player to the roster in whatever state the room is
// in. A mid-game joiner only participates from the next game start, since
// the turn order is fixed when a game begins. Joining a room whose last
// player already left fails: that room is deregistered and nobody would
// ever reach the joiner again.
func (r *Room) AddPlayer(p *Player, joinEvent string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.destroyed {
		return ErrRoomNotFound
	}

	r.players = append(r.players, p)
	logger.Infof("[Room %s] Player %s joined. Roster size: %d", r.code, p.name, len(r.players))
	p.send(marshalEvent(joinEvent, r.snapshotFor(p)))
	r.broadcastState()
	return nil
}

// Start begins a new game with the current roster. Valid from the lobby
// and after a finished game; the roster and scores carry over, the order
// is rebuilt.
func (r *Room) Start(roundsEach, secondsPerRound int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started || len(r.players) == 0 || roundsEach < 1 || secondsPerRound < 1 {
		return ErrInvalidStart
	}

	r.totalRounds = roundsEach
	r.secondsPerRound = secondsPerRound
	r.started = true
	r.generation++
	r.round = 1
	r.turnIndex = 0
	r.order = buildOrder(r.players, roundsEach)
	logger.Infof("[Room %s] Game started: %d rounds, %ds per turn, %d players",
		r.code, roundsEach, secondsPerRound, len(r.players))

	r.advanceTurn()
	return nil
}

// Guess evaluates a submitted guess. Misses are echoed as chat only; a hit
// scores the guesser and drawer, reveals the word and advances the turn.
func (r *Room) Guess(guesser *Player, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started && guesser.id == r.drawerID {
		return ErrDrawerGuess
	}

	r.broadcastChat(fmt.Sprintf("%s: %s", guesser.name, text))

	if !r.started || r.word == "" {
		return nil
	}
	if !strings.EqualFold(strings.TrimSpace(text), r.word) {
		return nil
	}

	guesser.score += max(100, r.timeLeft*10)
	if drawer, ok := r.playerByID(r.drawerID); ok {
		drawer.score += 50
	}
	logger.Infof("[Room %s] %s guessed the word %q", r.code, guesser.name, r.word)
	r.broadcastEvent(EventGuessCorrect, GuessCorrectNotice{By: guesser.name, Word: r.word})

	r.stopTimer()
	r.turnIndex++
	r.advanceTurn()
	return nil
}

// Relay forwards an opaque drawing payload to everyone but the sender.
func (r *Room) Relay(from *Player, raw []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.players {
		if p != from {
			p.send(raw)
		}
	}
}

// Leave removes a player. The last player leaving destroys the room; a
// departing drawer cancels the turn and advances it when at least two
// players remain, otherwise the room falls back to the lobby awaiting a
// fresh start.
func (r *Room) Leave(p *Player) {
	r.mu.Lock()

	_, idx, found := lo.FindIndexOf(r.players, func(other *Player) bool {
		return other.id == p.id
	})
	if !found {
		r.mu.Unlock()
		return
	}
	r.players = append(r.players[:idx], r.players[idx+1:]...)
	logger.Infof("[Room %s] Player %s left. Remaining: %d", r.code, p.name, len(r.players))

	if len(r.players) == 0 {
		r.stopTimer()
		r.destroyed = true
		r.mu.Unlock()
		r.parent.RemoveRoom(r)
		p.Release()
		return
	}

	r.broadcastChat(fmt.Sprintf("👋 %s left the room", p.name))

	if r.started && r.drawerID == p.id {
		r.stopTimer()
		r.turnIndex++
		if len(r.players) >= 2 {
			r.advanceTurn()
		} else {
			// Not enough players to keep drawing. Hold in the lobby until
			// someone joins and a fresh start is requested.
			r.started = false
			r.drawerID = ""
			r.word = ""
			r.maskedWord = nil
			r.timeLeft = 0
			r.broadcastState()
		}
	} else {
		r.broadcastState()
	}

	r.mu.Unlock()
	p.Release()
}

// advanceTurn picks the next live drawer from the order, hands them a fresh
// word and arms the countdown. Entries of departed players are skipped, at
// most once per order entry. Caller holds r.mu.
func (r *Room) advanceTurn() {
	if !r.started {
		return
	}

	for attempts := 0; attempts <= len(r.order); attempts++ {
		if len(r.players) == 0 || len(r.order) == 0 {
			return
		}

		round := r.turnIndex/len(r.players) + 1
		if round > r.totalRounds {
			r.finishGame()
			return
		}

		drawerID := r.order[r.turnIndex%len(r.order)]
		drawer, ok := r.playerByID(drawerID)
		if !ok {
			r.turnIndex++
			continue
		}

		r.round = round
		r.drawerID = drawer.id
		r.word, r.maskedWord = r.words.Pick()
		r.timeLeft = r.secondsPerRound
		logger.Infof("[Room %s] Turn %d (round %d/%d): drawer %s",
			r.code, r.turnIndex, r.round, r.totalRounds, drawer.name)

		r.broadcastSnapshots(EventGameBegin)
		r.broadcastState()
		r.startTurnTimer()
		return
	}

	// Every remaining order entry references a departed player.
	r.finishGame()
}

// finishGame ends the game exactly once: the first advance past the last
// round lands here while started is still true.
func (r *Room) finishGame() {
	r.stopTimer()
	r.started = false
	r.drawerID = ""
	r.word = ""
	r.maskedWord = nil
	r.timeLeft = 0
	logger.Infof("[Room %s] Game over after turn %d", r.code, r.turnIndex)
	r.broadcastChat("🏁 Game over!")
	r.broadcastState()
}

func (r *Room) startTurnTimer() {
	r.stopTimer()
	gen, turnIdx := r.generation, r.turnIndex
	r.timer = startRoundTimer(r.secondsPerRound,
		func(remaining int) { r.handleTick(gen, turnIdx, remaining) },
		func() { r.handleTimeout(gen, turnIdx) },
	)
}

func (r *Room) stopTimer() {
	if r.timer != nil {
		r.timer.Cancel()
		r.timer = nil
	}
}

// handleTick runs once per second while a turn is live. Ticks scheduled
// for an earlier turn, or for a turn of an earlier game, are ignored.
func (r *Room) handleTick(gen, turnIdx, remaining int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.started || gen != r.generation || turnIdx != r.turnIndex {
		return
	}
	r.timeLeft = remaining
	r.broadcastEvent(EventTimerTick, remaining)
}

// handleTimeout fires when a turn runs out of time. A cancellation racing
// the final tick can leave a stale expiry in flight; the generation and
// turn index guards drop it, even when a restarted game reuses the same
// turn index.
func (r *Room) handleTimeout(gen, turnIdx int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.started || gen != r.generation || turnIdx != r.turnIndex {
		logger.Debugf("[Room %s] Stale timer fired for turn %d, ignoring", r.code, turnIdx)
		return
	}

	r.stopTimer()
	r.broadcastChat(fmt.Sprintf("⏱️ Time up! Word was: %s", r.word))
	r.turnIndex++
	r.advanceTurn()
}

func (r *Room) playerByID(id string) (*Player, bool) {
	return lo.Find(r.players, func(p *Player) bool {
		return p.id == id
	})
}

// snapshotFor builds the recipient's view of the room. The secret word is
// visible to the drawer alone; everyone else sees the mask.
func (r *Room) snapshotFor(viewer *Player) StateSnapshot {
	var word *string
	if r.drawerID != "" && viewer.id == r.drawerID {
		w := r.word
		word = &w
	}
	return StateSnapshot{
		Code: r.code,
		Players: lo.Map(r.players, func(p *Player, _ int) PlayerInfo {
			return PlayerInfo{Id: p.id, Name: p.name, Score: p.score}
		}),
		Me:          PlayerInfo{Id: viewer.id, Name: viewer.name, Score: viewer.score},
		DrawerId:    r.drawerID,
		Word:        word,
		MaskedWord:  r.maskedWord,
		Round:       r.round,
		TotalRounds: r.totalRounds,
		TimeLeft:    r.timeLeft,
	}
}

func (r *Room) broadcastSnapshots(eventType string) {
	for _, p := range r.players {
		p.send(marshalEvent(eventType, r.snapshotFor(p)))
	}
}

// broadcastState follows every externally visible mutation; the game view
// is mirrored only while a game is running.
func (r *Room) broadcastState() {
	r.broadcastSnapshots(EventRoomState)
	if r.started {
		r.broadcastSnapshots(EventGameState)
	}
}

func (r *Room) broadcastEvent(eventType string, payload any) {
	data := marshalEvent(eventType, payload)
	for _, p := range r.players {
		p.send(data)
	}
}

func (r *Room) broadcastChat(text string) {
	r.broadcastEvent(EventChatNew, text)
}
