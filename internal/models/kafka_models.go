package models

import (
	"time"

	"github.com/google/uuid"
)

// событие о выполненном переводе, уходит в журнал и (если крупный) в kafka
type TransferEvent struct {
	SessionID   uuid.UUID   `json:"session_id"`  // ID сессии симулятора
	Transaction Transaction `json:"transaction"` // Запись журнала
	Large       bool        `json:"large"`       // Сумма не меньше порога
	Timestamp   time.Time   `json:"timestamp"`   // Время постановки в очередь
}

// EventKey ключ сообщения kafka и журнала
func (e TransferEvent) EventKey() string {
	return e.SessionID.String() + ":" + itoa(e.Transaction.ID)
}
