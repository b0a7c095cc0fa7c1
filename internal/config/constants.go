package config

import "time"

const (
	// Fixed order amount
	OrderAmount = 300000

	// Initial order status
	OrderStatusPending = "pending"

	// Object key derivation
	ObjectKeyNameMaxLen = 50
	ObjectKeyFallback   = "client"
	ObjectKeyExtension  = ".jpg"
	PhotoContentType    = "image/jpeg"

	// Telegram limits
	MaxTelegramMessageLen = 4096

	// Rate limits (per minute)
	RateLimitPerChat = 20
	RateLimitPerIP   = 60

	// Rate limit window cleanup interval
	RateLimitCleanup = 60 * time.Second

	// Session expiry sweep interval
	SessionSweep = 60 * time.Second

	// Timeout for admin notifications
	NotifierTimeout = 10 * time.Second

	// Delay before /restart terminates the process
	RestartDelay = 3 * time.Second
)

// MinuteOptions offered on the last selection step.
var MinuteOptions = []string{"00", "15", "30", "45"}
