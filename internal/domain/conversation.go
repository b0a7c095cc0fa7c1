package domain

import (
	"fmt"
	"time"
)

// Step identifies the current position of a conversation in the intake flow.
type Step string

const (
	StepAwaitingName    Step = "awaiting_name"
	StepAwaitingPhoto   Step = "awaiting_photo"
	StepSelectingMonth  Step = "selecting_month"
	StepSelectingDay    Step = "selecting_day"
	StepSelectingHour   Step = "selecting_hour"
	StepSelectingMinute Step = "selecting_minute"
)

// Appointment holds the date/time parts picked one selection step at a time.
// Each field is a two-digit code exactly as selected.
type Appointment struct {
	Month  string
	Day    string
	Hour   string
	Minute string
}

// Complete reports whether all four parts have been selected.
func (a Appointment) Complete() bool {
	return a.Month != "" && a.Day != "" && a.Hour != "" && a.Minute != ""
}

// String renders the final appointment as "MM-DD HH:MM".
func (a Appointment) String() string {
	return fmt.Sprintf("%s-%s %s:%s", a.Month, a.Day, a.Hour, a.Minute)
}

// Conversation is the per-user intake progress record. It lives in the
// in-memory session store from /start until the order is committed.
type Conversation struct {
	UserID       int64
	ChatID       int64
	Step         Step
	ClientName   string
	PhotoBytes   []byte
	Appointment  Appointment
	LastActivity time.Time
}

func NewConversation(userID, chatID int64) *Conversation {
	return &Conversation{
		UserID:       userID,
		ChatID:       chatID,
		Step:         StepAwaitingName,
		LastActivity: time.Now(),
	}
}

// Touch records user activity for the optional expiry sweep.
func (c *Conversation) Touch() {
	c.LastActivity = time.Now()
}
