// Package dispatch handles inbound webhook envelopes: it extracts the
// embedded user messages, classifies each into a sector, renders the
// canned reply and hands it to the outbound sender.
package dispatch

import (
	"context"
	"time"

	"github.com/labstack/gommon/log"

	"com.hawanagroup.socialbridge/internal/classify"
	"com.hawanagroup.socialbridge/internal/model"
)

type Sender interface {
	Send(ctx context.Context, recipientID, body string, sector model.Sector) (string, error)
}

type Recorder interface {
	Record(record *model.InteractionRecord) error
}

type Bank interface {
	Render(sector model.Sector, text string) string
}

type service struct {
	sender   Sender
	recorder Recorder
	bank     Bank
	now      func() time.Time
}

func New(sender Sender, recorder Recorder, bank Bank) *service {
	return &service{
		sender:   sender,
		recorder: recorder,
		bank:     bank,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Handle processes one webhook delivery. Messages are handled in array
// order but independently: a failure for one never stops the rest. The
// only error surfaced to the caller is an unknown discriminator; every
// other outcome acknowledges success, which is what the provider webhook
// contract expects.
func (s *service) Handle(ctx context.Context, envelope *model.Envelope) error {
	if envelope == nil || envelope.Object != model.MessagingObject {
		return model.ErrorUnknownObject
	}

	for _, entry := range envelope.Entry {
		for _, change := range entry.Changes {
			for i := range change.Value.Messages {
				s.handleMessage(ctx, &change.Value.Messages[i])
			}
		}
	}

	return nil
}

func (s *service) handleMessage(ctx context.Context, message *model.EntryMessage) {
	inbound := model.InboundMessage{
		SenderID:   message.From,
		Text:       message.Body(),
		ReceivedAt: s.now(),
		Platform:   model.PlatformMessaging,
	}
	sector := classify.Classify(inbound.Text)

	if body := s.bank.Render(sector, inbound.Text); body != "" {
		if _, err := s.sender.Send(ctx, inbound.SenderID, body, sector); err != nil {
			log.Errorf("sending reply to %s: %+v", inbound.SenderID, err)
		} else {
			s.record(inbound.SenderID, sector, model.DirectionOutbound, body)
		}
	}

	// The inbound record is attempted regardless of how the reply went.
	s.record(inbound.SenderID, sector, model.DirectionInbound, inbound.Text)
}

func (s *service) record(senderID string, sector model.Sector, direction model.Direction, body string) {
	record := &model.InteractionRecord{
		SenderID:  senderID,
		Sector:    sector,
		Direction: direction,
		Body:      body,
		Timestamp: s.now(),
	}
	if err := s.recorder.Record(record); err != nil {
		// Audit writes never fail the webhook.
		log.Errorf("recording interaction for %s: %+v", senderID, err)
	}
}
