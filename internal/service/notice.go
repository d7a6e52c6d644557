package service

import (
	"sync"
	"time"

	"treasury-simulator/internal/models"
)

// Notice временное сообщение для пользователя, очищается по таймеру.
// Новое сообщение отменяет отложенную очистку предыдущего.
type Notice struct {
	mu      sync.Mutex
	ttl     time.Duration
	message string
	kind    models.NoticeKind
	gen     uint64
	timer   *time.Timer
}

func NewNotice(ttl time.Duration) *Notice {
	return &Notice{ttl: ttl}
}

func (n *Notice) Show(message string, kind models.NoticeKind) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}

	n.gen++
	gen := n.gen
	n.message = message
	n.kind = kind
	n.timer = time.AfterFunc(n.ttl, func() { n.clear(gen) })
}

// clear срабатывает только для того поколения, которое его запланировало
func (n *Notice) clear(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.gen != gen {
		return
	}
	n.message = ""
	n.kind = ""
	n.timer = nil
}

func (n *Notice) Current() models.NoticeResponse {
	n.mu.Lock()
	defer n.mu.Unlock()

	return models.NoticeResponse{Message: n.message, Kind: n.kind}
}

// Stop отменяет отложенную очистку, текущее сообщение остается
func (n *Notice) Stop() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
