package model

import (
	"time"

	"github.com/google/uuid"
)

// EntryType discriminates notification entries.
type EntryType string

const (
	EntryNewMatch      EntryType = "new_match"
	EntryMatchAccepted EntryType = "match_accepted"
	EntryMatchDeclined EntryType = "match_declined"
	EntryUrgentRequest EntryType = "urgent_request"
)

// Entry represents a notification shown in a profile's notification panel.
type Entry struct {
	ID        uuid.UUID `json:"id"`        // locally generated, time ordered
	Type      EntryType `json:"type"`      // new_match, match_accepted, match_declined or urgent_request
	Title     string    `json:"title"`     // headline built from the triggering event
	Message   string    `json:"message"`   // body built from the triggering event
	Timestamp time.Time `json:"timestamp"` // local creation time
	Read      bool      `json:"read"`      // toggled by the user
	Data      EntryData `json:"data"`      // correlation ids for deep links
}

// EntryData correlates an entry with the records it was built from.
type EntryData struct {
	RequestID uuid.UUID `json:"request_id"`
	MatchID   uuid.UUID `json:"match_id"`
}

// EntryView is an entry decorated for display.
type EntryView struct {
	Entry
	Icon         string `json:"icon"`
	RelativeTime string `json:"relative_time"`
}

// NotificationFeed is the content of the notification panel.
type NotificationFeed struct {
	Notifications []EntryView `json:"notifications"`
	UnreadCount   int         `json:"unread_count"`
	Badge         string      `json:"badge"`
}
