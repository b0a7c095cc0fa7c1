package domain

import "errors"

var (
	ErrNoConversation = errors.New("no active conversation")
	ErrEmptyName      = errors.New("empty client name")
	ErrNoPublicURL    = errors.New("no public url for uploaded object")
	ErrEmptyPhoto     = errors.New("photo payload is empty")
)
