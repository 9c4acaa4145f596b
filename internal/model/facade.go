package model

import "time"

// Params and result objects for the operator-facing send façade. Results
// carry provider-shaped identifiers; in sample mode they are generated
// locally rather than returned by the platform.

type SendMessageParams struct {
	To     string `json:"to"`
	Body   string `json:"body"`
	Sector string `json:"sector"`
}

type SendMessageResult struct {
	MessageID string `json:"messageId"`
	To        string `json:"to"`
	Sector    Sector `json:"sector"`
	Status    string `json:"status"`
}

type CreatePostParams struct {
	Message string `json:"message"`
	LinkURL string `json:"linkUrl,omitempty"`
	Sector  string `json:"sector"`
}

type PostResult struct {
	PostID      string    `json:"postId"`
	Sector      Sector    `json:"sector"`
	Status      string    `json:"status"`
	PublishedAt time.Time `json:"publishedAt"`
}

type PublishMediaParams struct {
	ImageURL string `json:"imageUrl"`
	Caption  string `json:"caption,omitempty"`
	Sector   string `json:"sector"`
}

type MediaResult struct {
	MediaID     string    `json:"mediaId"`
	Sector      Sector    `json:"sector"`
	Status      string    `json:"status"`
	PublishedAt time.Time `json:"publishedAt"`
}

type TrackEventParams struct {
	EventName string  `json:"eventName"`
	Value     float64 `json:"value,omitempty"`
	Currency  string  `json:"currency,omitempty"`
	Sector    string  `json:"sector"`
}

type EventResult struct {
	EventsReceived int    `json:"eventsReceived"`
	TraceID        string `json:"traceId"`
	Sector         Sector `json:"sector"`
}

// AnalyticsSnapshot is sample data standing in for a real analytics
// backend; see the analytics service for the generator.
type AnalyticsSnapshot struct {
	Sector      Sector    `json:"sector"`
	Followers   int       `json:"followers"`
	Impressions int       `json:"impressions"`
	Engagements int       `json:"engagements"`
	Messages    int       `json:"messages"`
	GeneratedAt time.Time `json:"generatedAt"`
}
