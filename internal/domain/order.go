package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is the committed intake record persisted to the record store.
type Order struct {
	ID          int64
	Reference   uuid.UUID
	ClientName  string
	PhotoURL    string
	Amount      decimal.Decimal
	Appointment string
	Status      string
	ChatID      int64
	CreatedAt   time.Time
}
