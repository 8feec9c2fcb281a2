package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"sketchparty/internal/logger"
)

type NetworkSession interface {
	Close(errCode string)
	Write(data []byte) error
	Read() ([]byte, error)
	Ping() error
}

type Player struct {
	id          string
	name        string
	score       int
	rateLimiter *rate.Limiter
	socket      NetworkSession
	outbox      chan []byte
	closeOnce   sync.Once
}

func NewPlayer(name string, socket NetworkSession) *Player {
	return &Player{
		id:          uuid.NewString(),
		name:        name,
		rateLimiter: rate.NewLimiter(1, 5),
		socket:      socket,
		outbox:      make(chan []byte, 256),
	}
}

// send queues a message for the write pump. Sends never block a room
// transition; a full outbox drops the message instead.
func (p *Player) send(data []byte) {
	if data == nil {
		return
	}
	select {
	case p.outbox <- data:
	default:
		logger.Warningf("[Player %s] Outbox full, dropping message", p.name)
	}
}

func (p *Player) Release() {
	p.closeOnce.Do(func() {
		close(p.outbox)
	})
}

func (p *Player) WritePump() {
	pingTicker := time.NewTicker(time.Second * 30)
	defer pingTicker.Stop()

	for {
		select {
		case data, ok := <-p.outbox:
			if !ok {
				return
			}
			if err := p.socket.Write(data); err != nil {
				return
			}
		case <-pingTicker.C:
			if err := p.socket.Ping(); err != nil {
				return
			}
		}
	}
}
