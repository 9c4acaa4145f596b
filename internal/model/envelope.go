package model

// MessagingObject is the discriminator the messaging provider stamps on
// every webhook delivery. Anything else is rejected before processing.
const MessagingObject = "whatsapp_business_account"

// Envelope is the top-level JSON object a provider posts to a webhook
// endpoint: a discriminator plus nested event data.
type Envelope struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

type Entry struct {
	ID      string   `json:"id"`
	Changes []Change `json:"changes"`
}

type Change struct {
	Field string      `json:"field"`
	Value ChangeValue `json:"value"`
}

type ChangeValue struct {
	MessagingProduct string          `json:"messaging_product"`
	Contacts         []Contact       `json:"contacts,omitempty"`
	Messages         []EntryMessage  `json:"messages,omitempty"`
	Statuses         []MessageStatus `json:"statuses,omitempty"`
}

type Contact struct {
	WaID    string `json:"wa_id"`
	Profile struct {
		Name string `json:"name"`
	} `json:"profile"`
}

type EntryMessage struct {
	From      string    `json:"from"`
	ID        string    `json:"id"`
	Timestamp string    `json:"timestamp"`
	Type      string    `json:"type"`
	Text      *TextBody `json:"text,omitempty"`
}

type TextBody struct {
	Body string `json:"body"`
}

type MessageStatus struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	RecipientID string `json:"recipient_id"`
}

// Body returns the message text, empty for non-text messages.
func (m *EntryMessage) Body() string {
	if m.Text == nil {
		return ""
	}
	return m.Text.Body
}
