package model

import "time"

type Direction int

const (
	DirectionInbound Direction = iota
	DirectionOutbound
)

// InboundMessage is the single user message the dispatcher extracts from a
// provider envelope. Read-only once built.
type InboundMessage struct {
	SenderID   string
	Text       string
	ReceivedAt time.Time
	Platform   Platform
}

// OutboundMessage carries a rendered reply to the send primitive, which
// owns delivery and the provider message identifier from here on.
type OutboundMessage struct {
	RecipientID string
	Sector      Sector
	Body        string
}

type InteractionRecord struct {
	ID        string    `db:"ID"`
	SenderID  string    `db:"SenderID"`
	Sector    Sector    `db:"Sector"`
	Direction Direction `db:"Direction"`
	Body      string    `db:"Body"`
	Timestamp time.Time `db:"Timestamp"`
}
